/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package elementstring

import (
	"strconv"
	"strings"
	"time"

	"github.com/intel/rsp-sw-toolkit-im-suite-gs1/ai"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// decodeField reads the data field for m at the cursor, which must be just
// past the AI key. On success, the cursor is past the field and at most one
// trailing separator; raw is the field text without separators.
func (p *Parser) decodeField(m ai.Match, c *cursor) (v Value, raw string, err error) {
	start := c.pos
	if v, err = p.decodeFormat(m, c); err != nil {
		return Value{}, "", err
	}
	raw = strings.Replace(c.seq[start:c.pos], string(Separator), "", -1)
	c.skipSeparator()
	return v, raw, nil
}

func (p *Parser) decodeFormat(m ai.Match, c *cursor) (Value, error) {
	switch m.Format {
	case ai.NumericFixed, ai.NumericVariable:
		field, err := c.readNumeric(m.MinLength, m.MaxLength)
		return TextValue(field), err

	case ai.AlphanumericFixed, ai.AlphanumericVariable:
		field, err := c.readField(m.MinLength, m.MaxLength)
		return TextValue(field), err

	case ai.Decimal:
		places, err := c.readDecimalIndicator()
		if err != nil {
			return Value{}, err
		}
		d, err := readDecimal(c, places, m.MinLength, m.MaxLength)
		return DecimalValue(d), err

	case ai.Date:
		field, err := c.readNumeric(6, 6)
		if err != nil {
			return Value{}, err
		}
		t, err := p.parseDateTime(field)
		return DateValue(t), err

	case ai.CurrencyAmount:
		places, err := c.readDecimalIndicator()
		if err != nil {
			return Value{}, err
		}
		currency, err := c.readNumeric(3, 3)
		if err != nil {
			return Value{}, err
		}
		amount, err := readDecimal(c, places, 1, 15)
		if err != nil {
			return Value{}, err
		}
		return PairValue(TextValue(currency), DecimalValue(amount)), nil

	case ai.PostalCodeCountry:
		country, err := c.readNumeric(3, 3)
		if err != nil {
			return Value{}, err
		}
		postalCode, err := c.readField(1, 9)
		if err != nil {
			return Value{}, err
		}
		return PairValue(TextValue(country), TextValue(postalCode)), nil

	case ai.CountryList:
		field, err := c.readNumeric(3, 15)
		if err != nil {
			return Value{}, err
		}
		if len(field)%3 != 0 {
			return Value{}, ErrInvalidLength
		}
		countries := make([]Value, 0, len(field)/3)
		for i := 0; i < len(field); i += 3 {
			countries = append(countries, TextValue(field[i:i+3]))
		}
		return ListValue(countries...), nil

	case ai.DateTimeNoSeconds:
		field, err := c.readNumeric(10, 10)
		if err != nil {
			return Value{}, err
		}
		t, err := p.parseDateTime(field)
		return DateValue(t), err

	case ai.DateOrDateRange:
		field, err := c.readNumeric(6, 12)
		if err != nil {
			return Value{}, err
		}
		if len(field) != 6 && len(field) != 12 {
			return Value{}, ErrInvalidLength
		}
		var dates []Value
		for i := 0; i < len(field); i += 6 {
			t, err := p.parseDateTime(field[i : i+6])
			if err != nil {
				return Value{}, err
			}
			dates = append(dates, DateValue(t))
		}
		return ListValue(dates...), nil

	case ai.DateTimeOptionalMinSec:
		field, err := c.readNumeric(8, 12)
		if err != nil {
			return Value{}, err
		}
		if len(field) != 8 && len(field) != 12 {
			return Value{}, ErrInvalidLength
		}
		t, err := p.parseDateTime(field)
		return DateValue(t), err

	case ai.ProcessorWithCountry:
		country, err := c.readNumeric(3, 3)
		if err != nil {
			return Value{}, err
		}
		c.skipSeparator()
		approval, err := c.readField(1, 27)
		if err != nil {
			return Value{}, err
		}
		return PairValue(TextValue(country), TextValue(approval)), nil
	}

	return Value{}, errors.Errorf("unsupported data field format %v", m.Format)
}

// readDecimal reads a numeric field and places the decimal point so that
// places digits are to its right.
func readDecimal(c *cursor, places int32, minLen, maxLen int) (decimal.Decimal, error) {
	field, err := c.readNumeric(minLen, maxLen)
	if err != nil {
		return decimal.Decimal{}, err
	}
	n, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return decimal.Decimal{}, ErrInvalidDecimal
	}
	return decimal.New(n, -places), nil
}

// parseDateTime converts YYMMDD[HH[MM[SS]]] to a time.
//
// The century follows GS1 General Specifications section 7.12: two-digit years
// more than 50 years ahead of the current year belong to the previous century,
// and those 50 or more years behind it belong to the next. A day of 00 means
// the last day of the month.
func (p *Parser) parseDateTime(s string) (time.Time, error) {
	if len(s) < 6 || len(s)%2 != 0 {
		return time.Time{}, ErrInvalidLength
	}
	f := [6]int{} // year, month, day, hour, minute, second
	for i := 0; i*2 < len(s) && i < len(f); i++ {
		n, err := strconv.Atoi(s[i*2 : i*2+2])
		if err != nil {
			return time.Time{}, ErrNotNumeric
		}
		f[i] = n
	}
	yy, month, day, hour, minute, second := f[0], f[1], f[2], f[3], f[4], f[5]

	currentYear := p.now().In(p.loc).Year()
	currentCentury := currentYear - currentYear%100
	century := currentCentury
	switch x := yy - currentYear%100; {
	case x >= 51 && x <= 99:
		century = currentCentury - 100
	case x >= -99 && x <= -50:
		century = currentCentury + 100
	}
	year := century + yy

	if month < 1 || month > 12 || hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, ErrInvalidDate
	}

	if day == 0 {
		first := time.Date(year, time.Month(month), 1, hour, minute, second, 0, p.loc)
		return first.AddDate(0, 1, -1), nil
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, p.loc)
	// time.Date normalizes out of range days (Feb 30 -> Mar 2)
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
