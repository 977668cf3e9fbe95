/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/intel/rsp-sw-toolkit-im-suite-gs1/checkdigit"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1/gln"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1/gtin"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1/sscc"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type checkResult struct {
	Input string   `json:"input" yaml:"input"`
	Kinds []string `json:"kinds,omitempty" yaml:"kinds,omitempty"`
	Valid bool     `json:"valid" yaml:"valid"`
	Error string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// identifierKinds names the GS1 identifiers that code has the format of.
func identifierKinds(code string) []string {
	var kinds []string
	switch {
	case gtin.IsGTIN14(code):
		kinds = append(kinds, "GTIN-14")
	case gtin.IsGTIN13(code):
		kinds = append(kinds, "GTIN-13")
	case gtin.IsGTIN12(code):
		kinds = append(kinds, "GTIN-12")
	case gtin.IsGTIN8(code):
		kinds = append(kinds, "GTIN-8")
	}
	if gln.IsGLN(code) {
		kinds = append(kinds, "GLN")
	}
	if sscc.IsSSCC(code) {
		kinds = append(kinds, "SSCC")
	}
	return kinds
}

func (a *app) checkCommand() *cobra.Command {
	var appendDigit bool
	cmd := &cobra.Command{
		Use:   "check <digits...>",
		Short: "Validate check digits, or calculate and append them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]checkResult, 0, len(args))
			invalid := 0
			for _, in := range args {
				res := checkResult{Input: in}
				var err error
				if appendDigit {
					res.Input, err = checkdigit.CalculateAndAppend(in)
				} else {
					_, err = checkdigit.Validate(in)
				}
				if err != nil {
					invalid++
					res.Error = err.Error()
					a.log.WithError(err).WithField("input", in).Debug("check failed")
				} else {
					res.Valid = true
					res.Kinds = identifierKinds(res.Input)
				}
				results = append(results, res)
			}

			err := a.write(results, func(tw *tabwriter.Writer) {
				for _, res := range results {
					if res.Valid {
						fmt.Fprintf(tw, "%s\tvalid\t%v\n", res.Input, res.Kinds)
					} else {
						fmt.Fprintf(tw, "%s\tinvalid\t%s\n", res.Input, res.Error)
					}
				}
			})
			if err != nil {
				return err
			}
			if invalid > 0 {
				return errors.Errorf("%d of %d inputs are invalid", invalid, len(args))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&appendDigit, "append", "a", false,
		"treat inputs as lacking a check digit and append one")
	return cmd
}

type gtinInfo struct {
	Input      string   `json:"input" yaml:"input"`
	Formats    []string `json:"formats,omitempty" yaml:"formats,omitempty"`
	Normalized string   `json:"normalized,omitempty" yaml:"normalized,omitempty"`
	Price      string   `json:"price,omitempty" yaml:"price,omitempty"`
	WeightG    int      `json:"weightGrams,omitempty" yaml:"weightGrams,omitempty"`
	Error      string   `json:"error,omitempty" yaml:"error,omitempty"`
}

func describeGTIN(code string) (gtinInfo, error) {
	info := gtinInfo{Input: code}
	if err := gtin.ValidateFormatAndCheckDigit(code); err != nil {
		return info, err
	}

	var err error
	if info.Formats, err = gtin.AllPossibleFormats(code); err != nil {
		return info, err
	}
	if info.Normalized, err = gtin.Normalize(code); err != nil {
		return info, err
	}

	switch {
	case gtin.IsWeightItemWithPrice(code):
		price, err := gtin.ExtractPriceFromWeightItem(code)
		if err != nil {
			return info, err
		}
		info.Price = price.StringFixed(2)
	case gtin.IsWeightItemWithWeight(code):
		if info.WeightG, err = gtin.ExtractWeightFromWeightItem(code); err != nil {
			return info, err
		}
	}
	return info, nil
}

func (a *app) gtinCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "gtin <gtin...>",
		Short: "Show the equivalent forms of GTINs and their variable measure data",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := make([]gtinInfo, 0, len(args))
			invalid := 0
			for _, in := range args {
				info, err := describeGTIN(in)
				if err != nil {
					invalid++
					info.Error = err.Error()
				}
				infos = append(infos, info)
			}

			err := a.write(infos, func(tw *tabwriter.Writer) {
				for _, info := range infos {
					if info.Error != "" {
						fmt.Fprintf(tw, "%s\tinvalid\t%s\n", info.Input, info.Error)
						continue
					}
					fmt.Fprintf(tw, "%s\tformats\t%v\n", info.Input, info.Formats)
					fmt.Fprintf(tw, "\tnormalized\t%s\n", info.Normalized)
					if info.Price != "" {
						fmt.Fprintf(tw, "\tprice\t%s\n", info.Price)
					}
					if info.WeightG != 0 {
						fmt.Fprintf(tw, "\tweight\t%dg\n", info.WeightG)
					}
				}
			})
			if err != nil {
				return err
			}
			if invalid > 0 {
				return errors.Errorf("%d of %d GTINs are invalid", invalid, len(args))
			}
			return nil
		},
	}
}
