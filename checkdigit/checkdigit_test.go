/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package checkdigit

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"github.com/pkg/errors"
)

const (
	ean13        = "4006381333931"
	issn         = "9772049363002"
	isbn         = "9789137138114"
	gtin14Weight = "02388060112344"
	upcA         = "036000291452"
)

func randomDigits(n int) string {
	b := &strings.Builder{}
	for i := 0; i < n; i++ {
		b.WriteByte(byte('0' + rand.Intn(10)))
	}
	return b.String()
}

func TestIsValid(t *testing.T) {
	type test struct {
		name, s string
		valid   bool
	}
	pass := func(n, s string) test { return test{name: n, s: s, valid: true} }
	fail := func(n, s string) test { return test{name: n, s: s} }

	for i, tt := range []test{
		fail("empty", ""),
		fail("space", " "),
		fail("letter", "a"),
		fail("single digit", "1"),
		pass("two digits", "17"),
		fail("wrong check digit", "4006381333932"),
		fail("letters", "ABCDEFGHIJKLM"),
		pass("EAN-13", ean13),
		pass("ISSN", issn),
		pass("ISBN", isbn),
		pass("GTIN-14 weight item", gtin14Weight),
		pass("UPC-A", upcA),
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			w.As(tt.s).ShouldBeEqual(IsValid(tt.s), tt.valid)
		})
	}
}

func TestCalculate(t *testing.T) {
	w := expect.WrapT(t)

	_, err := Calculate("")
	w.StopOnMismatch().ShouldFail(err)
	w.ShouldBeTrue(errors.Is(err, ErrNotDigits))
	_, err = Calculate("ABC")
	w.StopOnMismatch().ShouldFail(err)
	w.ShouldBeTrue(errors.Is(err, ErrNotDigits))

	w.ShouldBeEqual(w.ShouldHaveResult(Calculate("400638133393")).(byte), byte('1'))
	w.ShouldBeEqual(w.ShouldHaveResult(Calculate("200739410000")).(byte), byte('0'))
	w.ShouldBeEqual(w.ShouldHaveResult(CalculateAndAppend("400638133393")).(string), ean13)

	_, err = CalculateAndAppend("40063813339X")
	w.StopOnMismatch().ShouldFail(err)
	w.ShouldBeTrue(errors.Is(err, ErrNotDigits))
}

func TestRecalculate(t *testing.T) {
	w := expect.WrapT(t)

	_, err := Recalculate("")
	w.StopOnMismatch().ShouldFail(err)
	w.ShouldBeTrue(errors.Is(err, ErrNotDigits))
	_, err = Recalculate("ABC")
	w.StopOnMismatch().ShouldFail(err)
	w.ShouldBeTrue(errors.Is(err, ErrNotDigits))
	_, err = Recalculate("1")
	w.StopOnMismatch().ShouldFail(err)
	w.ShouldBeTrue(errors.Is(err, ErrTooShort))
	_, err = RecalculateAndApply("1")
	w.StopOnMismatch().ShouldFail(err)
	w.ShouldBeTrue(errors.Is(err, ErrTooShort))

	w.ShouldBeEqual(w.ShouldHaveResult(Recalculate(ean13)).(byte), byte('1'))
	w.ShouldBeEqual(w.ShouldHaveResult(RecalculateAndApply("4006381333930")).(string), ean13)
}

func TestValidate(t *testing.T) {
	w := expect.WrapT(t)

	w.ShouldBeEqual(w.ShouldHaveResult(Validate(upcA)).(string), upcA)
	_, err := Validate("4006381333930")
	w.StopOnMismatch().ShouldFail(err)
	w.ShouldBeTrue(errors.Is(err, ErrInvalidCheckDigit))
	_, err = Validate("")
	w.StopOnMismatch().ShouldFail(err)
	w.ShouldBeTrue(errors.Is(err, ErrInvalidCheckDigit))
}

func TestCalculateAndAppend_alwaysValid(t *testing.T) {
	w := expect.WrapT(t)
	for i := 0; i < 1000; i++ {
		s := randomDigits(1 + rand.Intn(20))
		withCD := w.StopOnMismatch().ShouldHaveResult(CalculateAndAppend(s)).(string)
		w.As(s).ShouldBeTrue(IsValid(withCD))
		w.As(s).ShouldBeEqual(withCD[:len(s)], s)
	}
}

func TestRecalculateAndApply_replacesOnlyLast(t *testing.T) {
	w := expect.WrapT(t)
	for i := 0; i < 1000; i++ {
		s := randomDigits(2 + rand.Intn(20))
		applied := w.StopOnMismatch().ShouldHaveResult(RecalculateAndApply(s)).(string)
		w.As(s).ShouldBeEqual(len(applied), len(s))
		w.As(s).ShouldBeEqual(applied[:len(s)-1], s[:len(s)-1])
		w.As(s).ShouldBeTrue(IsValid(applied))
	}
}

func TestCheckDigit_singleNonZeroDigit(t *testing.T) {
	// With a single non-zero digit d, the check digit is 10-d when d sits in
	// an even position and 10-(3*d)%10 when it sits in an odd one.
	oddCDs := []byte{'7', '4', '1', '8', '5', '2', '9', '6', '3'}
	w := expect.WrapT(t)
	for d := 1; d <= 9; d++ {
		for pos := 1; pos <= 17; pos++ {
			s := string(byte('0'+d)) + strings.Repeat("0", pos-1)
			c := w.ShouldHaveResult(Calculate(s)).(byte)
			expected := byte('0' + 10 - d)
			if pos&1 == 1 {
				expected = oddCDs[d-1]
			}
			w.As(s).ShouldBeEqual(c, expected)
		}
	}
}
