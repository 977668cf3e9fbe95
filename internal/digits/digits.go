/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package digits holds the digit-class checks shared by the GS1 key packages.
package digits

import (
	"strings"

	"github.com/pkg/errors"
)

// IsDigits returns true if s is non-empty and consists only of '0'-'9'.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// StartsWithNZeros returns true if the first n characters of s are all '0'.
func StartsWithNZeros(s string, n int) bool {
	if n < 0 || len(s) < n {
		return false
	}
	for i := 0; i < n; i++ {
		if s[i] != '0' {
			return false
		}
	}
	return true
}

// LeftPadZeros left-pads s with '0's to length n. Strings already at least n
// characters long are returned unchanged.
func LeftPadZeros(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return strings.Repeat("0", n-len(s)) + s
}

// ValidateFormat returns an error naming the key type unless s is exactly
// length digits.
func ValidateFormat(keyType string, length int, s string) error {
	if !IsDigits(s) {
		return errors.Errorf("invalid %s %s, must be digits", keyType, s)
	}
	if len(s) != length {
		return errors.Errorf("invalid %s %s, must be %d digits long", keyType, s, length)
	}
	return nil
}
