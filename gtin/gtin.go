/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package gtin validates and converts Global Trade Item Numbers.
//
// A GTIN is 8, 12, 13 or 14 digits, the last of which is a check digit. The
// shorter forms are the longer ones with leading zeros removed, so a GTIN-8,
// GTIN-12 or GTIN-13 can always be widened to a GTIN-14 by left-padding, while
// narrowing is only possible when the removed digits are all zero. AI (01)
// always carries the GTIN-14 form.
package gtin

import (
	"strconv"

	"github.com/intel/rsp-sw-toolkit-im-suite-gs1/checkdigit"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1/internal/digits"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

func hasGTINLength(gtin string) bool {
	switch len(gtin) {
	case 14, 13, 12, 8:
		return true
	}
	return false
}

// IsGTIN returns true if gtin is 14, 13, 12 or 8 digits. It doesn't check the
// check digit; see IsValid.
func IsGTIN(gtin string) bool {
	return digits.IsDigits(gtin) && hasGTINLength(gtin)
}

func IsGTIN14(gtin string) bool {
	return digits.IsDigits(gtin) && len(gtin) == 14
}

func IsGTIN13(gtin string) bool {
	return digits.IsDigits(gtin) && len(gtin) == 13
}

func IsGTIN12(gtin string) bool {
	return digits.IsDigits(gtin) && len(gtin) == 12
}

func IsGTIN8(gtin string) bool {
	return digits.IsDigits(gtin) && len(gtin) == 8
}

// IsValid returns true if gtin is a GTIN with a correct check digit.
func IsValid(gtin string) bool {
	return IsGTIN(gtin) && checkdigit.IsValid(gtin)
}

// ValidateFormat returns an error if gtin isn't a GTIN.
func ValidateFormat(gtin string) error {
	if !digits.IsDigits(gtin) {
		return errors.Errorf("invalid GTIN %s, must be digits", gtin)
	}
	if !hasGTINLength(gtin) {
		return errors.Errorf("invalid GTIN %s, must be 14, 13, 12 or 8 digits long", gtin)
	}
	return nil
}

// ValidateFormatAndCheckDigit returns an error if gtin isn't a GTIN or its
// check digit isn't correct.
func ValidateFormatAndCheckDigit(gtin string) error {
	if err := ValidateFormat(gtin); err != nil {
		return err
	}
	_, err := checkdigit.Validate(gtin)
	return err
}

// IsISSN returns true if gtin is a GTIN-13 or GTIN-14 in the 977 prefix
// reserved for serial publications.
func IsISSN(gtin string) bool {
	s, ok := asGTIN13(gtin)
	return ok && s[:3] == "977"
}

// IsISBN returns true if gtin is a GTIN-13 or GTIN-14 in the book prefixes:
// 978, or 979 other than 9790.
func IsISBN(gtin string) bool {
	s, ok := asGTIN13(gtin)
	return ok && (s[:3] == "978" || (s[:3] == "979" && s[3] != '0'))
}

// IsISMN returns true if gtin is a GTIN-13 or GTIN-14 in the 9790 prefix
// reserved for printed music.
func IsISMN(gtin string) bool {
	s, ok := asGTIN13(gtin)
	return ok && s[:4] == "9790"
}

// asGTIN13 returns the 13 significant digits of a GTIN-13, or of a GTIN-14
// with a leading zero.
func asGTIN13(gtin string) (string, bool) {
	if !IsGTIN(gtin) {
		return "", false
	}
	switch {
	case len(gtin) == 13:
		return gtin, true
	case len(gtin) == 14 && gtin[0] == '0':
		return gtin[1:], true
	}
	return "", false
}

// narrow returns gtin at the given length, if possible.
func narrow(gtin string, length int) (string, error) {
	if err := ValidateFormat(gtin); err != nil {
		return "", err
	}
	if len(gtin) > length {
		if !digits.StartsWithNZeros(gtin, len(gtin)-length) {
			return "", errors.Errorf("GTIN %s could not be converted to GTIN-%d", gtin, length)
		}
		return gtin[len(gtin)-length:], nil
	}
	return digits.LeftPadZeros(gtin, length), nil
}

// ToGTIN14 left-pads gtin to 14 digits.
func ToGTIN14(gtin string) (string, error) {
	return narrow(gtin, 14)
}

// ToGTIN13 converts gtin to a GTIN-13, which fails for GTIN-14s that don't
// start with a zero.
func ToGTIN13(gtin string) (string, error) {
	return narrow(gtin, 13)
}

func ToGTIN12(gtin string) (string, error) {
	return narrow(gtin, 12)
}

// ToGTIN8 converts gtin to a GTIN-8. Only GTIN-8s, or longer GTINs padded
// with zeros, can be converted.
func ToGTIN8(gtin string) (string, error) {
	return narrow(gtin, 8)
}

func convertible(gtin string, length int) bool {
	return IsGTIN(gtin) && (len(gtin) <= length || digits.StartsWithNZeros(gtin, len(gtin)-length))
}

func ConvertibleToGTIN14(gtin string) bool {
	return IsGTIN(gtin)
}

func ConvertibleToGTIN13(gtin string) bool {
	return convertible(gtin, 13)
}

func ConvertibleToGTIN12(gtin string) bool {
	return convertible(gtin, 12)
}

func ConvertibleToGTIN8(gtin string) bool {
	return convertible(gtin, 8)
}

// Shorten returns the shortest form of gtin: GTIN-8 if possible, then
// GTIN-12, then GTIN-13.
func Shorten(gtin string) (string, error) {
	if err := ValidateFormat(gtin); err != nil {
		return "", err
	}
	for _, length := range []int{8, 12, 13} {
		if len(gtin) == length {
			return gtin, nil
		}
		if len(gtin) > length && digits.StartsWithNZeros(gtin, len(gtin)-length) {
			return gtin[len(gtin)-length:], nil
		}
	}
	return gtin, nil
}

// Normalize returns the shortest form of gtin, after zeroing the price or
// weight of variable measure items so that all instances of the same item
// normalize to the same GTIN.
func Normalize(gtin string) (string, error) {
	if err := ValidateFormat(gtin); err != nil {
		return "", err
	}
	if IsWeightItem(gtin) {
		var err error
		if gtin, err = NormalizeWeightItem(gtin); err != nil {
			return "", err
		}
	}
	return Shorten(gtin)
}

// AllPossibleFormats returns every form gtin can be converted to, shortest
// first; the GTIN-14 form is always last.
func AllPossibleFormats(gtin string) ([]string, error) {
	if err := ValidateFormat(gtin); err != nil {
		return nil, err
	}
	formats := make([]string, 0, 4)
	for _, length := range []int{8, 12, 13} {
		if convertible(gtin, length) {
			s, err := narrow(gtin, length)
			if err != nil {
				return nil, err
			}
			formats = append(formats, s)
		}
	}
	return append(formats, digits.LeftPadZeros(gtin, 14)), nil
}

// variableMeasureGTIN13 returns the GTIN-13 form of a GTIN in the restricted
// circulation prefix 2, used for variable measure items.
func variableMeasureGTIN13(gtin string) (string, bool) {
	s, ok := asGTIN13(gtin)
	if !ok || s[0] != '2' {
		return "", false
	}
	return s, true
}

// IsWeightItem returns true if gtin is a variable measure item with an
// embedded price (prefixes 20-22) or weight (prefixes 23-25).
func IsWeightItem(gtin string) bool {
	s, ok := variableMeasureGTIN13(gtin)
	return ok && s[1] >= '0' && s[1] <= '5'
}

func IsWeightItemWithPrice(gtin string) bool {
	s, ok := variableMeasureGTIN13(gtin)
	return ok && s[1] >= '0' && s[1] <= '2'
}

func IsWeightItemWithWeight(gtin string) bool {
	s, ok := variableMeasureGTIN13(gtin)
	return ok && s[1] >= '3' && s[1] <= '5'
}

func validateFormat13or14(gtin string) error {
	if !digits.IsDigits(gtin) {
		return errors.Errorf("invalid GTIN %s, must be digits", gtin)
	}
	if len(gtin) != 14 && len(gtin) != 13 {
		return errors.Errorf("invalid GTIN %s, must be 13 or 14 digits long", gtin)
	}
	return nil
}

// embeddedValue returns the four digit price or weight of a variable measure
// item and the digit that says how to scale it.
func embeddedValue(s string) (int64, byte) {
	n, _ := strconv.ParseInt(s[8:12], 10, 64)
	return n, s[1]
}

// ExtractPriceFromWeightItem returns the price embedded in a variable measure
// item, always with two decimal places. Prefix 20 embeds hundredths, 21
// tenths and 22 whole units.
func ExtractPriceFromWeightItem(gtin string) (decimal.Decimal, error) {
	if err := validateFormat13or14(gtin); err != nil {
		return decimal.Decimal{}, err
	}
	if !IsWeightItemWithPrice(gtin) {
		return decimal.Decimal{}, errors.Errorf("GTIN %s is not a weight item with price", gtin)
	}
	s, _ := variableMeasureGTIN13(gtin)
	n, scale := embeddedValue(s)
	// 20 -> n/100, 21 -> n/10, 22 -> n
	exp := int32(scale-'0') - 2
	return decimal.New(n, exp).Round(2), nil
}

// ExtractWeightFromWeightItem returns the weight in grams embedded in a
// variable measure item. Prefix 23 embeds grams, 24 tens of grams and 25
// hundreds of grams.
func ExtractWeightFromWeightItem(gtin string) (int, error) {
	if err := validateFormat13or14(gtin); err != nil {
		return 0, err
	}
	if !IsWeightItemWithWeight(gtin) {
		return 0, errors.Errorf("GTIN %s is not a weight item with weight", gtin)
	}
	s, _ := variableMeasureGTIN13(gtin)
	n, scale := embeddedValue(s)
	switch scale {
	case '3':
		return int(n), nil
	case '4':
		return int(n) * 10, nil
	}
	return int(n) * 100, nil
}

// NormalizeWeightItem zeros the embedded price or weight of a variable measure
// item and recalculates its check digit, keeping its length.
func NormalizeWeightItem(gtin string) (string, error) {
	if err := validateFormat13or14(gtin); err != nil {
		return "", err
	}
	if !IsWeightItem(gtin) {
		return "", errors.Errorf("GTIN %s is not a weight item", gtin)
	}
	// the item reference ends 5 digits before the check digit
	return checkdigit.CalculateAndAppend(gtin[:len(gtin)-5] + "0000")
}
