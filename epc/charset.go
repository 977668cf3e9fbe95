/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	// characters that must be percent-encoded in the pure identity URI
	gs1Escaper = strings.NewReplacer(
		`"`, "%22",
		`#`, "%23",
		`%`, "%25",
		`&`, "%26",
		`/`, "%2F",
		`<`, "%3C",
		`>`, "%3E",
		`?`, "%3F",
	)

	gs1Unescaper = strings.NewReplacer(
		"%22", `"`,
		"%23", `#`,
		"%25", `%`,
		"%26", `&`,
		"%2F", `/`,
		"%3C", `<`,
		"%3E", `>`,
		"%3F", `?`,
	)

	// GS1 AI encodable character set 82
	gs1AICharSet = [128]bool{
		'!': true, '"': true, '%': true, '&': true, '\'': true, '(': true, ')': true,
		'*': true, '+': true, ',': true, '-': true, '.': true, '/': true,
		':': true, ';': true, '<': true, '=': true, '>': true, '?': true, '_': true,
		'0': true, '1': true, '2': true, '3': true, '4': true,
		'5': true, '6': true, '7': true, '8': true, '9': true,
		'A': true, 'B': true, 'C': true, 'D': true, 'E': true, 'F': true, 'G': true,
		'H': true, 'I': true, 'J': true, 'K': true, 'L': true, 'M': true, 'N': true,
		'O': true, 'P': true, 'Q': true, 'R': true, 'S': true, 'T': true, 'U': true,
		'V': true, 'W': true, 'X': true, 'Y': true, 'Z': true,
		'a': true, 'b': true, 'c': true, 'd': true, 'e': true, 'f': true, 'g': true,
		'h': true, 'i': true, 'j': true, 'k': true, 'l': true, 'm': true, 'n': true,
		'o': true, 'p': true, 'q': true, 'r': true, 's': true, 't': true, 'u': true,
		'v': true, 'w': true, 'x': true, 'y': true, 'z': true,
	}

	// GS1 AI encodable character set 39, used by component/part identifiers
	gs1AICPCharSet = [128]bool{
		'#': true, '-': true, '/': true,
		'0': true, '1': true, '2': true, '3': true, '4': true,
		'5': true, '6': true, '7': true, '8': true, '9': true,
		'A': true, 'B': true, 'C': true, 'D': true, 'E': true, 'F': true, 'G': true,
		'H': true, 'I': true, 'J': true, 'K': true, 'L': true, 'M': true, 'N': true,
		'O': true, 'P': true, 'Q': true, 'R': true, 'S': true, 'T': true, 'U': true,
		'V': true, 'W': true, 'X': true, 'Y': true, 'Z': true,
	}
)

func inCharSet(set *[128]bool, s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 128 || !set[s[i]] {
			return false
		}
	}
	return true
}

// EscapeGS1 percent-encodes the characters of s that are reserved in EPC
// URIs: " # % & / < > and ?.
func EscapeGS1(s string) string {
	return gs1Escaper.Replace(s)
}

// UnescapeGS1 reverses EscapeGS1. Other percent sequences are left alone.
func UnescapeGS1(s string) string {
	return gs1Unescaper.Replace(s)
}

// IsGS1AIEncodable returns true if s contains only characters from the GS1 AI
// encodable character set 82, the set allowed in alphanumeric AI data fields
// such as serial numbers.
func IsGS1AIEncodable(s string) bool {
	return inCharSet(&gs1AICharSet, s)
}

// IsGS1CompPartEncodable returns true if s contains only characters from the
// GS1 AI encodable character set 39: digits, upper case letters, # - and /.
func IsGS1CompPartEncodable(s string) bool {
	return inCharSet(&gs1AICPCharSet, s)
}

// validateAlphanumeric checks a field that becomes the final, escaped
// component of a URI.
func validateAlphanumeric(what, s string, maxLen int) error {
	if s == "" {
		return errors.Errorf("%s is empty", what)
	}
	if len(s) > maxLen {
		return errors.Errorf("%s is limited to at most %d characters, "+
			"but has %d characters", what, maxLen, len(s))
	}
	if !IsGS1AIEncodable(s) {
		return errors.Errorf("%s may only contain characters in the GS1 AI "+
			"Encodable Character Set 82, but is %q", what, s)
	}
	return nil
}
