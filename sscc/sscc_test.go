/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package sscc

import (
	"fmt"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1/checkdigit"
	"github.com/pkg/errors"
)

func TestSSCC(t *testing.T) {
	type test struct {
		s             string
		isSSCC, valid bool
		fmtErr        string
	}
	fail := func(s, fmtErr string) test {
		return test{s: s, fmtErr: fmtErr}
	}

	for i, tt := range []test{
		fail("", "invalid SSCC , must be digits"),
		fail("A", "invalid SSCC A, must be digits"),
		fail("ABCDEFGHIJKLMNOPQR", "invalid SSCC ABCDEFGHIJKLMNOPQR, must be digits"),
		fail("12345678901", "invalid SSCC 12345678901, must be 18 digits long"),
		fail("12345678901234567", "invalid SSCC 12345678901234567, must be 18 digits long"),
		fail("1234567890123456789", "invalid SSCC 1234567890123456789, must be 18 digits long"),
		{s: "123456789012345678", isSSCC: true},
		{s: "106141411234567897", isSSCC: true, valid: true},
		{s: "376104250021234569", isSSCC: true, valid: true},
		{s: "106141411234567890", isSSCC: true},
	} {
		t.Run(fmt.Sprintf("%02d_%q", i, tt.s), func(t *testing.T) {
			w := expect.WrapT(t)
			w.ShouldBeEqual(IsSSCC(tt.s), tt.isSSCC)
			w.ShouldBeEqual(IsValid(tt.s), tt.valid)

			if tt.fmtErr != "" {
				err := ValidateFormat(tt.s)
				w.StopOnMismatch().ShouldFail(err)
				w.ShouldBeEqual(err.Error(), tt.fmtErr)
				return
			}
			err := ValidateFormatAndCheckDigit(tt.s)
			if tt.valid {
				w.ShouldSucceed(err)
			} else {
				w.ShouldBeTrue(errors.Is(err, checkdigit.ErrInvalidCheckDigit))
			}
		})
	}
}
