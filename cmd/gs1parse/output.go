/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// write renders v in the configured structured format; text output is
// handled by the caller through writeText.
func (a *app) write(v interface{}, writeText func(*tabwriter.Writer)) error {
	switch a.v.GetString(keyFormat) {
	case formatJSON:
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(v), "failed to write JSON")
	case formatYAML:
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "failed to write YAML")
		}
		return errors.Wrap(enc.Close(), "failed to write YAML")
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	writeText(tw)
	return errors.Wrap(tw.Flush(), "failed to write output")
}

func (a *app) writeRecords(records []record) error {
	return a.write(records, func(tw *tabwriter.Writer) {
		for i, rec := range records {
			if i > 0 {
				fmt.Fprintln(tw)
			}
			fmt.Fprintf(tw, "%s\n", rec.HRI)
			for _, f := range rec.Elements {
				fmt.Fprintf(tw, "  (%s)\t%s\t%s\n", f.AI, f.Name, f.Value)
			}
			for _, uri := range rec.EPC {
				fmt.Fprintf(tw, "  epc\t%s\n", uri)
			}
			if rec.Error != "" {
				fmt.Fprintf(tw, "  error\t%s\n", rec.Error)
			}
		}
	})
}
