/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package sscc validates Serial Shipping Container Codes: 18 digit keys,
// ending in a check digit, that identify a logistic unit. AI (00) carries
// an SSCC; the first digit is an extension digit chosen by the company that
// assigns it.
package sscc

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1/checkdigit"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1/internal/digits"
)

// Length is the number of digits in an SSCC, including the check digit.
const Length = 18

// IsSSCC returns true if s is 18 digits. It doesn't check the check digit.
func IsSSCC(s string) bool {
	return digits.IsDigits(s) && len(s) == Length
}

// IsValid returns true if s is an SSCC with a correct check digit.
func IsValid(s string) bool {
	return IsSSCC(s) && checkdigit.IsValid(s)
}

func ValidateFormat(s string) error {
	return digits.ValidateFormat("SSCC", Length, s)
}

func ValidateFormatAndCheckDigit(s string) error {
	if err := ValidateFormat(s); err != nil {
		return err
	}
	_, err := checkdigit.Validate(s)
	return err
}
