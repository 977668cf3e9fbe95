/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package ai

import (
	"strconv"
)

// Format is the grammar of an AI's data field.
//
// The first six formats are parameterized by the entry's MinLength and
// MaxLength; the rest have a fixed internal layout and ignore them (except
// where noted on the registry entry).
type Format int

const (
	NumericFixed = Format(iota)
	NumericVariable
	AlphanumericFixed
	AlphanumericVariable
	// Decimal is a single decimal point indicator digit followed by a numeric
	// field; the indicator gives the number of digits right of the point.
	Decimal
	// Date is YYMMDD, where DD=00 means the last day of the month.
	Date

	// CurrencyAmount is a decimal point indicator, a 3 digit ISO 4217 currency
	// code and a 1-15 digit amount.
	CurrencyAmount
	// PostalCodeCountry is a 3 digit ISO 3166 country code followed by a 1-9
	// character postal code.
	PostalCodeCountry
	// CountryList is one to five 3 digit ISO 3166 country codes.
	CountryList
	// DateTimeNoSeconds is YYMMDDHHMM.
	DateTimeNoSeconds
	// DateOrDateRange is YYMMDD, optionally followed by a second YYMMDD.
	DateOrDateRange
	// DateTimeOptionalMinSec is YYMMDDHH, optionally followed by MMSS.
	DateTimeOptionalMinSec
	// ProcessorWithCountry is a 3 digit ISO 3166 country code followed by a
	// 1-27 character approval number (the 703x family).
	ProcessorWithCountry
)

// IsCustom returns true for formats with their own internal layout.
func (f Format) IsCustom() bool {
	return f >= CurrencyAmount && f <= ProcessorWithCountry
}

// HasDecimalIndicator returns true for formats whose data field starts with
// a decimal point indicator digit. In the human readable interpretation that
// digit is written as the last digit of the AI, e.g. (3103) and (3912).
func (f Format) HasDecimalIndicator() bool {
	return f == Decimal || f == CurrencyAmount
}

func (f Format) String() string {
	switch f {
	case NumericFixed:
		return "N fixed"
	case NumericVariable:
		return "N variable"
	case AlphanumericFixed:
		return "X fixed"
	case AlphanumericVariable:
		return "X variable"
	case Decimal:
		return "decimal"
	case Date:
		return "date"
	case CurrencyAmount:
		return "currency+amount"
	case PostalCodeCountry:
		return "country+postal code"
	case CountryList:
		return "country list"
	case DateTimeNoSeconds:
		return "date+time"
	case DateOrDateRange:
		return "date range"
	case DateTimeOptionalMinSec:
		return "date+time, optional min/sec"
	case ProcessorWithCountry:
		return "country+processor"
	}
	return "Unknown format: " + strconv.Itoa(int(f))
}
