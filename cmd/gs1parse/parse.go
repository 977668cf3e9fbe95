/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"bufio"
	"strings"

	"github.com/intel/rsp-sw-toolkit-im-suite-gs1/ai"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1/elementstring"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1/epc"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// symbologyIDs are the AIM symbology identifiers of symbols that carry GS1
// element strings; scanners often prefix them to the data.
var symbologyIDs = []string{
	"]C1", // GS1-128
	"]e0", // GS1 DataBar
	"]e1", // GS1 Composite, 2D component
	"]e2", // GS1 Composite, escaped 2D component
	"]d2", // GS1 DataMatrix
	"]Q3", // GS1 QR Code
	"]J1", // GS1 DotCode
}

// field is a decoded element as it is printed.
type field struct {
	AI    string              `json:"ai" yaml:"ai"`
	Name  string              `json:"name" yaml:"name"`
	Raw   string              `json:"raw" yaml:"raw"`
	Value elementstring.Value `json:"value" yaml:"value"`
}

// record is the outcome of parsing one input.
type record struct {
	Input    string   `json:"input" yaml:"input"`
	HRI      string   `json:"hri" yaml:"hri"`
	Elements []field  `json:"elements" yaml:"elements"`
	EPC      []string `json:"epc,omitempty" yaml:"epc,omitempty"`
	Error    string   `json:"error,omitempty" yaml:"error,omitempty"`
}

func (a *app) parseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [element-string...]",
		Short: "Parse element strings given as arguments, or one per line on stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if len(inputs) == 0 {
				var err error
				if inputs, err = a.readLines(); err != nil {
					return err
				}
			}

			records := make([]record, 0, len(inputs))
			partial := 0
			for _, in := range inputs {
				rec := a.parseOne(in)
				if rec.Error != "" {
					partial++
				}
				records = append(records, rec)
			}

			if err := a.writeRecords(records); err != nil {
				return err
			}
			if partial > 0 && a.v.GetBool(keyStrict) {
				return errors.Errorf("%d of %d element strings could not be fully parsed",
					partial, len(records))
			}
			return nil
		},
	}
}

func (a *app) readLines() ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(a.in)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, errors.Wrap(sc.Err(), "failed to read input")
}

// prepare turns user input into an element string: it strips a symbology
// identifier and replaces the separator stand-in.
func (a *app) prepare(in string) string {
	if a.v.GetBool(keyStripSymbology) {
		for _, id := range symbologyIDs {
			if strings.HasPrefix(in, id) {
				in = in[len(id):]
				break
			}
		}
	}
	if gs := a.v.GetString(keyGS); gs != "" {
		in = strings.ReplaceAll(in, gs, string(elementstring.Separator))
	}
	return in
}

func (a *app) parseOne(in string) record {
	r := elementstring.Parse(a.prepare(in))
	rec := record{
		Input:    in,
		HRI:      r.HRI(),
		Elements: make([]field, 0, r.Len()),
	}

	for _, el := range r.Elements() {
		f := field{AI: el.Key, Raw: el.Raw, Value: el.Value}
		if el.ID.IsValid() {
			f.Name = el.ID.String()
		} else {
			f.Name = ai.FamilyName(el.Key)
		}
		rec.Elements = append(rec.Elements, f)
	}

	logger := a.log.WithField("input", in)
	var pe *elementstring.ParseError
	if errors.As(r.Err(), &pe) {
		rec.Error = pe.Error()
		logger.WithFields(logrus.Fields{
			"position": pe.Position,
			"key":      pe.Key,
		}).Warn("element string was only partially parsed")
	} else {
		logger.WithField("elements", r.Len()).Debug("parsed element string")
	}

	if n := a.v.GetInt(keyCompanyPrefix); n > 0 {
		uris, err := epc.PureURIs(r, n)
		if err != nil {
			logger.WithError(err).Warn("failed to build EPC URIs")
		}
		rec.EPC = uris
	}
	return rec
}
