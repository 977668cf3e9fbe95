/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package ai

import (
	"fmt"
	"strings"
	"testing"

	"github.com/intel/rsp-sw-toolkit-im-suite-expect"
)

// linearMatch is the reference behavior: scan the registry in declaration
// order and take the first key that prefixes the input.
func linearMatch(seq string, pos int) (Identifier, bool) {
	for _, e := range registry {
		if strings.HasPrefix(seq[pos:], e.Key) {
			return e.ID, true
		}
	}
	return 0, false
}

func TestRegistry_order(t *testing.T) {
	w := expect.WrapT(t)
	entries := Entries()
	w.ShouldBeEqual(len(entries), len(registry))
	for i, e := range entries {
		w.As(e.Key).ShouldBeEqual(e.ID, Identifier(i+1))
		w.As(e.Key).ShouldBeTrue(e.ID.IsValid())
		w.As(e.Key).ShouldBeEqual(e.ID.Key(), e.Key)
		if e.Format == NumericFixed || e.Format == AlphanumericFixed || e.Format == Date {
			w.As(e.Key).ShouldBeEqual(e.MinLength, e.MaxLength)
		}
	}
	w.ShouldBeEqual(SSCC.Entry().Key, "00")
	w.ShouldBeEqual(MutuallyAgreedInformation.Entry().Key, "90")
	w.ShouldBeFalse(Identifier(0).IsValid())
	w.ShouldBeEqual(Identifier(0).Key(), "")
}

func TestLookup(t *testing.T) {
	w := expect.WrapT(t)

	e, ok := Lookup("01")
	w.ShouldBeTrue(ok)
	w.ShouldBeEqual(e.ID, GTIN)
	w.ShouldBeEqual(e.Format, NumericFixed)
	w.ShouldBeEqual(e.MaxLength, 14)

	e, ok = Lookup("255")
	w.ShouldBeTrue(ok)
	w.ShouldBeEqual(e.MinLength, 13)
	w.ShouldBeEqual(e.MaxLength, 25)

	// the duplicate key resolves to its first declaration
	e, ok = Lookup("7021")
	w.ShouldBeTrue(ok)
	w.ShouldBeEqual(e.ID, FunctionalStatus)
	w.ShouldBeEqual(RevisionStatus.Key(), "7021")

	for _, key := range []string{"", "0", "31", "7030", "91", "ab", "0x"} {
		_, ok = Lookup(key)
		w.As(key).ShouldBeFalse(ok)
	}
}

func TestMatchAt(t *testing.T) {
	type test struct {
		name, seq string
		pos       int
		key       string
		id        Identifier
		format    Format
		ok        bool
	}
	pass := func(n, seq string, pos int, key string, id Identifier, format Format) test {
		return test{name: n, seq: seq, pos: pos, key: key, id: id, format: format, ok: true}
	}
	fail := func(n, seq string, pos int) test {
		return test{name: n, seq: seq, pos: pos}
	}

	for i, tt := range []test{
		pass("SSCC", "00106141411234567897", 0, "00", SSCC, NumericFixed),
		pass("mid-sequence", "0101234567890128" + "10ABC", 16, "10", BatchOrLotNumber, AlphanumericVariable),
		pass("3 digit decimal", "3103123456", 0, "310", ItemNetWeightKg, Decimal),
		pass("4 digit", "7003170501", 0, "7003", ExpirationDateAndTime, DateTimeNoSeconds),
		pass("duplicate key", "7021ABC", 0, "7021", FunctionalStatus, AlphanumericVariable),
		pass("registered 90 beats family", "90ABC", 0, "90", MutuallyAgreedInformation, AlphanumericVariable),
		pass("703 family", "7030111ABC", 0, "7030", 0, ProcessorWithCountry),
		pass("703 family upper", "7039111ABC", 0, "7039", 0, ProcessorWithCountry),
		pass("71 family", "710ABC", 0, "710", 0, AlphanumericVariable),
		pass("9 family", "91ABC", 0, "91", 0, AlphanumericVariable),
		pass("9 family at end", "99", 0, "99", 0, AlphanumericVariable),

		fail("empty", "", 0),
		fail("leading space", " 00", 0),
		fail("single digit", "0", 0),
		fail("703 too short", "703", 0),
		fail("703 non-digit", "703A", 0),
		fail("71 non-digit", "71A", 0),
		fail("9 then 0 is not a family", "9", 0),
		fail("unassigned", "3", 0),
		fail("separator", "\x1d00", 0),
	} {
		t.Run(fmt.Sprintf("%02d_%s", i, tt.name), func(t *testing.T) {
			w := expect.WrapT(t)
			m, ok := MatchAt(tt.seq, tt.pos)
			w.ShouldBeEqual(ok, tt.ok)
			if !tt.ok {
				return
			}
			w.ShouldBeEqual(m.Key, tt.key)
			w.ShouldBeEqual(m.ID, tt.id)
			w.ShouldBeEqual(m.Format, tt.format)
			w.ShouldBeEqual(m.Registered(), tt.id != 0)
		})
	}
}

func TestMatchAt_familyBounds(t *testing.T) {
	w := expect.WrapT(t)

	m, ok := MatchAt("719X", 0)
	w.ShouldBeTrue(ok)
	w.ShouldBeEqual(m.MinLength, 1)
	w.ShouldBeEqual(m.MaxLength, 20)

	m, ok = MatchAt("95X", 0)
	w.ShouldBeTrue(ok)
	w.ShouldBeEqual(m.MaxLength, 30)

	w.ShouldBeEqual(FamilyName("7031"), "Number of processor with ISO country code")
	w.ShouldBeEqual(FamilyName("712"), "National healthcare reimbursement number")
	w.ShouldBeEqual(FamilyName("98"), "Company internal information")
	w.ShouldBeEqual(FamilyName("90"), "")
	w.ShouldBeEqual(FamilyName("01"), "")
}

func TestMatchAt_agreesWithLinearScan(t *testing.T) {
	w := expect.WrapT(t)
	var candidates []string
	for _, e := range registry {
		candidates = append(candidates, e.Key+"123", e.Key)
	}
	for d := 0; d < 10000; d += 7 {
		candidates = append(candidates, fmt.Sprintf("%04d", d))
	}
	for _, seq := range candidates {
		id, ok := linearMatch(seq, 0)
		m, mok := MatchAt(seq, 0)
		if !ok {
			// either unmatched or matched by a family rule
			w.As(seq).ShouldBeFalse(m.Registered())
			continue
		}
		w.As(seq).ShouldBeTrue(mok)
		w.As(seq).ShouldBeEqual(m.ID, id)
	}
}

func TestFormat_String(t *testing.T) {
	w := expect.WrapT(t)
	w.ShouldBeEqual(Date.String(), "date")
	w.ShouldBeTrue(CountryList.IsCustom())
	w.ShouldBeFalse(Decimal.IsCustom())
	w.ShouldBeTrue(Decimal.HasDecimalIndicator())
	w.ShouldBeTrue(CurrencyAmount.HasDecimalIndicator())
	w.ShouldBeFalse(NumericFixed.HasDecimalIndicator())
	w.ShouldBeFalse(Date.HasDecimalIndicator())
	w.ShouldBeEqual(Format(99).String(), "Unknown format: 99")
	w.ShouldBeEqual(GTIN.Entry().String(), "(01) GTIN")
}
