/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/intel/rsp-sw-toolkit-im-suite-gs1/ai"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type aiInfo struct {
	Key       string `json:"key" yaml:"key"`
	Name      string `json:"name" yaml:"name"`
	Format    string `json:"format" yaml:"format"`
	MinLength int    `json:"minLength" yaml:"minLength"`
	MaxLength int    `json:"maxLength" yaml:"maxLength"`
}

func newAIInfo(e ai.Entry) aiInfo {
	return aiInfo{
		Key:       e.Key,
		Name:      e.Name,
		Format:    e.Format.String(),
		MinLength: e.MinLength,
		MaxLength: e.MaxLength,
	}
}

func (a *app) aiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ai [key...]",
		Short: "Describe Application Identifiers; lists all of them without arguments",
		RunE: func(cmd *cobra.Command, args []string) error {
			var infos []aiInfo
			if len(args) == 0 {
				for _, e := range ai.Entries() {
					infos = append(infos, newAIInfo(e))
				}
			}

			for _, key := range args {
				if e, ok := ai.Lookup(key); ok {
					infos = append(infos, newAIInfo(e))
					continue
				}
				m, ok := ai.MatchAt(key, 0)
				if ok && m.Registered() && m.Format.HasDecimalIndicator() &&
					len(key) == len(m.Key)+1 && key[len(key)-1] >= '0' && key[len(key)-1] <= '9' {
					// the decimal point indicator written as part of the AI, e.g. 3103
					info := newAIInfo(m.ID.Entry())
					info.Key = key
					infos = append(infos, info)
					continue
				}
				// family members aren't registered individually
				if !ok || m.Key != key {
					return errors.Errorf("unknown AI %q", key)
				}
				infos = append(infos, aiInfo{
					Key:       key,
					Name:      ai.FamilyName(key),
					Format:    m.Format.String(),
					MinLength: m.MinLength,
					MaxLength: m.MaxLength,
				})
			}

			return a.write(infos, func(tw *tabwriter.Writer) {
				for _, info := range infos {
					fmt.Fprintf(tw, "(%s)\t%s\t%s\t%d..%d\n",
						info.Key, info.Name, info.Format, info.MinLength, info.MaxLength)
				}
			})
		},
	}
}
