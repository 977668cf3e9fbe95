/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package gln validates Global Location Numbers: 13 digit keys, ending in a
// check digit, that identify a party or a physical location. They appear in
// AIs 410-417, and with AI (254) as an extension in SGLN EPCs.
package gln

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1/checkdigit"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1/internal/digits"
)

// Length is the number of digits in a GLN, including the check digit.
const Length = 13

// IsGLN returns true if s is 13 digits. It doesn't check the check digit.
func IsGLN(s string) bool {
	return digits.IsDigits(s) && len(s) == Length
}

// IsValid returns true if s is a GLN with a correct check digit.
func IsValid(s string) bool {
	return IsGLN(s) && checkdigit.IsValid(s)
}

func ValidateFormat(s string) error {
	return digits.ValidateFormat("GLN", Length, s)
}

func ValidateFormatAndCheckDigit(s string) error {
	if err := ValidateFormat(s); err != nil {
		return err
	}
	_, err := checkdigit.Validate(s)
	return err
}
