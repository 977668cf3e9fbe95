/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package checkdigit calculates and validates the GS1 mod-10 check digit used
// by GTINs, GLNs, SSCCs and the other fixed-length GS1 keys.
//
// The check digit is calculated over the digits preceding it: counting from
// the right, starting at 1, digits in odd positions get weight 3 and digits in
// even positions get weight 1. The check digit is the value that brings the
// weighted sum up to the next multiple of 10: (10 - (sum % 10)) % 10.
package checkdigit

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1/internal/digits"
	"github.com/pkg/errors"
)

var (
	ErrNotDigits         = errors.New("invalid sequence, must be digits")
	ErrTooShort          = errors.New("invalid sequence, must be at least 2 digits")
	ErrInvalidCheckDigit = errors.New("check digit is not correct")
)

// checkSum returns the weighted GS1 sum of s, treating the character after
// the last one as the check digit position.
func checkSum(s string) (sum int) {
	for i, pos := 0, len(s); i < len(s); i, pos = i+1, pos-1 {
		n := int(s[i] - '0')
		// odd positions from the right: n*3; even: n*1
		sum += n * (((pos & 1) << 1) | 1)
	}
	return
}

// digit converts a weighted sum to its check digit character.
func digit(sum int) byte {
	// mod 10 additive inverse
	return byte('0' + (10-(sum%10))%10)
}

// Calculate returns the check digit for a sequence of at least one digit.
func Calculate(s string) (byte, error) {
	if !digits.IsDigits(s) {
		return 0, errors.Wrapf(ErrNotDigits, "cannot calculate check digit of %q", s)
	}
	return digit(checkSum(s)), nil
}

// CalculateAndAppend returns s with its check digit appended.
func CalculateAndAppend(s string) (string, error) {
	c, err := Calculate(s)
	if err != nil {
		return "", err
	}
	return s + string(c), nil
}

// Recalculate returns the check digit for s, ignoring its final character,
// which is assumed to be an existing check digit.
func Recalculate(s string) (byte, error) {
	if !digits.IsDigits(s) {
		return 0, errors.Wrapf(ErrNotDigits, "cannot recalculate check digit of %q", s)
	}
	if len(s) < 2 {
		return 0, errors.Wrapf(ErrTooShort, "cannot recalculate check digit of %q", s)
	}
	return digit(checkSum(s[:len(s)-1])), nil
}

// RecalculateAndApply returns s with its final character replaced by the
// correct check digit.
func RecalculateAndApply(s string) (string, error) {
	c, err := Recalculate(s)
	if err != nil {
		return "", err
	}
	return s[:len(s)-1] + string(c), nil
}

// IsValid returns true if s is at least two digits and its final digit is the
// correct check digit for the digits before it. It never returns an error;
// malformed input is simply not valid.
func IsValid(s string) bool {
	if len(s) < 2 || !digits.IsDigits(s) {
		return false
	}
	return s[len(s)-1] == digit(checkSum(s[:len(s)-1]))
}

// Validate returns s if IsValid(s), or an error otherwise.
func Validate(s string) (string, error) {
	if !IsValid(s) {
		return "", errors.Wrapf(ErrInvalidCheckDigit, "%q", s)
	}
	return s, nil
}
