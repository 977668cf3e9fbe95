/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gtin

import (
	"fmt"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1/checkdigit"
)

func TestIsGTIN(t *testing.T) {
	type test struct {
		s                           string
		any, is14, is13, is12, is8 bool
	}
	for i, tt := range []test{
		{s: ""},
		{s: " "},
		{s: "1234567"},
		{s: "12345678", any: true, is8: true},
		{s: "123456789"},
		{s: "1234567890"},
		{s: "12345678901"},
		{s: "123456789012", any: true, is12: true},
		{s: "1234567890123", any: true, is13: true},
		{s: "12345678901234", any: true, is14: true},
		{s: "123456789012345"},
		{s: "1234567890123456"},
		{s: "1234567890123A"},
	} {
		t.Run(fmt.Sprintf("%02d_%q", i, tt.s), func(t *testing.T) {
			w := expect.WrapT(t)
			w.ShouldBeEqual(IsGTIN(tt.s), tt.any)
			w.ShouldBeEqual(IsGTIN14(tt.s), tt.is14)
			w.ShouldBeEqual(IsGTIN13(tt.s), tt.is13)
			w.ShouldBeEqual(IsGTIN12(tt.s), tt.is12)
			w.ShouldBeEqual(IsGTIN8(tt.s), tt.is8)
			w.ShouldBeEqual(ConvertibleToGTIN14(tt.s), tt.any)
		})
	}
}

func TestIsValid(t *testing.T) {
	w := expect.WrapT(t)
	w.ShouldBeFalse(IsValid(""))
	w.ShouldBeFalse(IsValid(" "))
	w.ShouldBeTrue(IsValid("4006381333931"))
	w.ShouldBeFalse(IsValid("4006381333930"))

	w.ShouldSucceed(ValidateFormatAndCheckDigit("4006381333931"))
	w.ShouldFail(ValidateFormatAndCheckDigit("4006381333930"))
	w.ShouldFail(ValidateFormatAndCheckDigit("40063813339"))

	w.ShouldBeEqual(ValidateFormat("1234").Error(),
		"invalid GTIN 1234, must be 14, 13, 12 or 8 digits long")
	w.ShouldBeEqual(ValidateFormat("ABCDEFGHIJKL").Error(),
		"invalid GTIN ABCDEFGHIJKL, must be digits")
}

func TestBookland(t *testing.T) {
	type test struct {
		s                  string
		issn, isbn, isismn bool
	}
	for i, tt := range []test{
		{s: ""},
		{s: " "},
		{s: "9772049363002", issn: true},
		{s: "09772049363002", issn: true},
		{s: "19772049363002"},
		{s: "9789137138114", isbn: true},
		{s: "09789137138114", isbn: true},
		{s: "9799137138114", isbn: true},
		{s: "09799137138114", isbn: true},
		{s: "9790137138114", isismn: true},
		{s: "09790137138114", isismn: true},
		{s: "9791137138114", isbn: true},
		{s: "123456789012"},
		{s: "97801234"},
	} {
		t.Run(fmt.Sprintf("%02d_%q", i, tt.s), func(t *testing.T) {
			w := expect.WrapT(t)
			w.ShouldBeEqual(IsISSN(tt.s), tt.issn)
			w.ShouldBeEqual(IsISBN(tt.s), tt.isbn)
			w.ShouldBeEqual(IsISMN(tt.s), tt.isismn)
		})
	}
}

func TestConvert(t *testing.T) {
	type test struct {
		name, in, out, err string
		conv               func(string) (string, error)
	}
	pass := func(n string, conv func(string) (string, error), in, out string) test {
		return test{name: n, conv: conv, in: in, out: out}
	}
	fail := func(n string, conv func(string) (string, error), in, err string) test {
		return test{name: n, conv: conv, in: in, err: err}
	}

	for i, tt := range []test{
		pass("14 from 14", ToGTIN14, "12345678901234", "12345678901234"),
		pass("14 from 13", ToGTIN14, "1234567890123", "01234567890123"),
		pass("14 from 12", ToGTIN14, "123456789012", "00123456789012"),
		pass("14 from 8", ToGTIN14, "12345678", "00000012345678"),
		fail("14 short", ToGTIN14, "1234", "invalid GTIN 1234, must be 14, 13, 12 or 8 digits long"),

		pass("13 from 14", ToGTIN13, "01234567890123", "1234567890123"),
		pass("13 from 13", ToGTIN13, "1234567890123", "1234567890123"),
		pass("13 from 12", ToGTIN13, "123456789012", "0123456789012"),
		pass("13 from 8", ToGTIN13, "12345678", "0000012345678"),
		fail("13 from full 14", ToGTIN13, "12345678901234", "GTIN 12345678901234 could not be converted to GTIN-13"),
		fail("13 not digits", ToGTIN13, "ABCDEFGHIJKL", "invalid GTIN ABCDEFGHIJKL, must be digits"),

		pass("12 from 14", ToGTIN12, "00000012345678", "000012345678"),
		pass("12 from 13", ToGTIN12, "0000012345678", "000012345678"),
		pass("12 from 12", ToGTIN12, "123456789012", "123456789012"),
		pass("12 from 8", ToGTIN12, "12345678", "000012345678"),
		fail("12 from full 14", ToGTIN12, "12345678901234", "GTIN 12345678901234 could not be converted to GTIN-12"),
		fail("12 from full 13", ToGTIN12, "1234567890123", "GTIN 1234567890123 could not be converted to GTIN-12"),

		pass("8 from 14", ToGTIN8, "00000012345678", "12345678"),
		pass("8 from 13", ToGTIN8, "0000012345678", "12345678"),
		pass("8 from 12", ToGTIN8, "000012345678", "12345678"),
		pass("8 from 8", ToGTIN8, "12345678", "12345678"),
		fail("8 from full 14", ToGTIN8, "12345678901234", "GTIN 12345678901234 could not be converted to GTIN-8"),
		fail("8 from full 13", ToGTIN8, "1234567890123", "GTIN 1234567890123 could not be converted to GTIN-8"),
		fail("8 from full 12", ToGTIN8, "123456789012", "GTIN 123456789012 could not be converted to GTIN-8"),
		fail("8 short", ToGTIN8, "1234", "invalid GTIN 1234, must be 14, 13, 12 or 8 digits long"),

		pass("shorten 8", Shorten, "12345678", "12345678"),
		pass("shorten 12 to 8", Shorten, "000012345678", "12345678"),
		pass("shorten 13 to 8", Shorten, "0000012345678", "12345678"),
		pass("shorten 14 to 8", Shorten, "00000012345678", "12345678"),
		pass("shorten 12", Shorten, "123456789012", "123456789012"),
		pass("shorten 13 to 12", Shorten, "0123456789012", "123456789012"),
		pass("shorten 14 to 12", Shorten, "00123456789012", "123456789012"),
		pass("shorten 13", Shorten, "1234567890123", "1234567890123"),
		pass("shorten 14 to 13", Shorten, "01234567890123", "1234567890123"),
		pass("shorten 14", Shorten, "12345678901234", "12345678901234"),
		fail("shorten bad", Shorten, "12", "invalid GTIN 12, must be 14, 13, 12 or 8 digits long"),

		pass("normalize weight item", Normalize, "02388060112344", "2388060100006"),
		pass("normalize plain", Normalize, "00000012345678", "12345678"),
		fail("normalize bad", Normalize, "X", "invalid GTIN X, must be digits"),
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			out, err := tt.conv(tt.in)
			if tt.err != "" {
				w.StopOnMismatch().ShouldFail(err)
				w.ShouldBeEqual(err.Error(), tt.err)
				return
			}
			w.StopOnMismatch().ShouldSucceed(err)
			w.ShouldBeEqual(out, tt.out)
		})
	}
}

func TestConvertible(t *testing.T) {
	type test struct {
		s              string
		to13, to12, to8 bool
	}
	for i, tt := range []test{
		{s: "12345678901234"},
		{s: "01234567890123", to13: true},
		{s: "00123456789012", to13: true, to12: true},
		{s: "00000012345678", to13: true, to12: true, to8: true},
		{s: "1234567890123", to13: true},
		{s: "0000012345678", to13: true, to12: true, to8: true},
		{s: "123456789012", to13: true, to12: true},
		{s: "12345678", to13: true, to12: true, to8: true},
		// not GTINs at all, even though every digit is zero
		{s: "0000000000"},
		{s: ""},
	} {
		t.Run(fmt.Sprintf("%02d_%q", i, tt.s), func(t *testing.T) {
			w := expect.WrapT(t)
			w.ShouldBeEqual(ConvertibleToGTIN13(tt.s), tt.to13)
			w.ShouldBeEqual(ConvertibleToGTIN12(tt.s), tt.to12)
			w.ShouldBeEqual(ConvertibleToGTIN8(tt.s), tt.to8)
		})
	}
}

func TestAllPossibleFormats(t *testing.T) {
	w := expect.WrapT(t)

	formats, err := AllPossibleFormats("00000012345678")
	w.ShouldSucceed(err)
	w.ShouldBeEqual(formats, []string{"12345678", "000012345678", "0000012345678", "00000012345678"})

	formats, err = AllPossibleFormats("1234567890123")
	w.ShouldSucceed(err)
	w.ShouldBeEqual(formats, []string{"1234567890123", "01234567890123"})

	formats, err = AllPossibleFormats("12345678901234")
	w.ShouldSucceed(err)
	w.ShouldBeEqual(formats, []string{"12345678901234"})

	_, err = AllPossibleFormats("123")
	w.ShouldFail(err)
}

func TestWeightItems(t *testing.T) {
	type test struct {
		s                          string
		weight, withPrice, withWgt bool
	}
	for i, tt := range []test{
		{s: ""},
		{s: " "},
		{s: "1234"},
		{s: "ABCD"},
		{s: "22345678"},
		{s: "223456789012"},
		{s: "2088060112344", weight: true, withPrice: true},
		{s: "2188060112344", weight: true, withPrice: true},
		{s: "2288060112344", weight: true, withPrice: true},
		{s: "2388060112344", weight: true, withWgt: true},
		{s: "2488060112344", weight: true, withWgt: true},
		{s: "2588060112344", weight: true, withWgt: true},
		{s: "2688060112344"},
		{s: "2788060112344"},
		{s: "2888060112344"},
		{s: "2988060112344"},
		{s: "02388060112344", weight: true, withWgt: true},
		{s: "12388060112344"},
	} {
		t.Run(fmt.Sprintf("%02d_%q", i, tt.s), func(t *testing.T) {
			w := expect.WrapT(t)
			w.ShouldBeEqual(IsWeightItem(tt.s), tt.weight)
			w.ShouldBeEqual(IsWeightItemWithPrice(tt.s), tt.withPrice)
			w.ShouldBeEqual(IsWeightItemWithWeight(tt.s), tt.withWgt)
		})
	}
}

func TestExtractPriceFromWeightItem(t *testing.T) {
	w := expect.WrapT(t)
	for gtin, price := range map[string]string{
		"02088060112344": "12.34",
		"02188060112344": "123.40",
		"02288060112344": "1234.00",
		"2088060100006":  "0.00",
	} {
		p, err := ExtractPriceFromWeightItem(gtin)
		w.As(gtin).ShouldSucceed(err)
		w.As(gtin).ShouldBeEqual(p.StringFixed(2), price)
		w.As(gtin).ShouldBeEqual(p.Exponent(), int32(-2))
	}

	for gtin, msg := range map[string]string{
		"ABCD":           "invalid GTIN ABCD, must be digits",
		"1234":           "invalid GTIN 1234, must be 13 or 14 digits long",
		"12334567890123": "GTIN 12334567890123 is not a weight item with price",
		"02388060112344": "GTIN 02388060112344 is not a weight item with price",
	} {
		_, err := ExtractPriceFromWeightItem(gtin)
		w.As(gtin).StopOnMismatch().ShouldFail(err)
		w.As(gtin).ShouldBeEqual(err.Error(), msg)
	}
}

func TestExtractWeightFromWeightItem(t *testing.T) {
	w := expect.WrapT(t)
	for gtin, grams := range map[string]int{
		"02388060112344": 1234,
		"02488060112344": 12340,
		"02588060112344": 123400,
		"2388060112344":  1234,
	} {
		g, err := ExtractWeightFromWeightItem(gtin)
		w.As(gtin).ShouldSucceed(err)
		w.As(gtin).ShouldBeEqual(g, grams)
	}

	for gtin, msg := range map[string]string{
		"ABCD":           "invalid GTIN ABCD, must be digits",
		"1234":           "invalid GTIN 1234, must be 13 or 14 digits long",
		"12334567890123": "GTIN 12334567890123 is not a weight item with weight",
	} {
		_, err := ExtractWeightFromWeightItem(gtin)
		w.As(gtin).StopOnMismatch().ShouldFail(err)
		w.As(gtin).ShouldBeEqual(err.Error(), msg)
	}
}

func TestNormalizeWeightItem(t *testing.T) {
	w := expect.WrapT(t)

	s, err := NormalizeWeightItem("02388060112344")
	w.ShouldSucceed(err)
	w.ShouldBeEqual(s, "02388060100006")
	w.ShouldBeTrue(checkdigit.IsValid(s))

	s, err = NormalizeWeightItem("2388060112344")
	w.ShouldSucceed(err)
	w.ShouldBeEqual(s, "2388060100006")

	for gtin, msg := range map[string]string{
		"ABCD":           "invalid GTIN ABCD, must be digits",
		"1234":           "invalid GTIN 1234, must be 13 or 14 digits long",
		"12334567890123": "GTIN 12334567890123 is not a weight item",
	} {
		_, err := NormalizeWeightItem(gtin)
		w.As(gtin).StopOnMismatch().ShouldFail(err)
		w.As(gtin).ShouldBeEqual(err.Error(), msg)
	}
}
