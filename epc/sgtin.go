/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/intel/rsp-sw-toolkit-im-suite-gs1/ai"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1/checkdigit"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1/elementstring"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1/gtin"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1/internal/digits"
	"github.com/pkg/errors"
)

const (
	SGTINPureURIPrefix = "urn:epc:id:sgtin"

	MinCompanyPrefixLength = 6
	MaxCompanyPrefixLength = 12

	maxSerialLength = 20
)

// SGTIN does not directly correspond to a GS1 identifier, but instead is a
// combination of a GS1 GTIN (global trade identification number) and a serial
// "number" to identify the specific instance of that GTIN. In an element
// string, they're AI (01) and AI (21).
//
// Although the serial value is frequently referenced as a serial "number", the
// GS1 General Specifications permits _alphanumeric_ serial numbers, not just
// the digits 0-9. Moreover, it specifies that those serial *must* be treated
// as a string, wherein two serials are distinct if their string comparisons are
// distinct, including leading '0's. In other words, '0', '07', '007' are all
// valid, distinct serial numbers.
//
// In the URI representation, certain characters of the serial must be
// percent-encoded; see EscapeGS1.
//
// The GTIN doesn't say where its GS1 Company Prefix ends and its item
// reference begins, so the company prefix length has to be supplied by
// whoever knows it, typically from the GS1 Company Prefix list.
type SGTIN struct {
	companyPrefix string
	indicator     byte
	itemRef       string
	serial        string
}

func (s SGTIN) Serial() string {
	return s.serial
}

func (s SGTIN) CompanyPrefix() string {
	return s.companyPrefix
}

func (s SGTIN) Indicator() byte {
	return s.indicator
}

func (s SGTIN) ItemReference() string {
	return s.itemRef
}

// Partition returns the EPC partition value implied by the company prefix
// length: 0 for a 12 digit prefix through 6 for a 6 digit prefix.
func (s SGTIN) Partition() int {
	return MaxCompanyPrefixLength - len(s.companyPrefix)
}

func validateCompanyPrefixLength(n int) error {
	if n < MinCompanyPrefixLength || n > MaxCompanyPrefixLength {
		return errors.Errorf("company prefix length must be in [%d,%d], but is %d",
			MinCompanyPrefixLength, MaxCompanyPrefixLength, n)
	}
	return nil
}

// NewSGTIN splits a GTIN (any of GTIN-8, 12, 13 or 14) into the parts of an
// SGTIN. The GTIN must have a correct check digit.
//
// If the serial is inconsistent with the SGTIN standard, error is non-nil, but
// this still returns the SGTIN, so that URI and GTIN still return a value.
func NewSGTIN(gtin14, serial string, companyPrefixLen int) (SGTIN, error) {
	if err := validateCompanyPrefixLength(companyPrefixLen); err != nil {
		return SGTIN{}, err
	}
	if err := gtin.ValidateFormatAndCheckDigit(gtin14); err != nil {
		return SGTIN{}, err
	}
	g, err := gtin.ToGTIN14(gtin14)
	if err != nil {
		return SGTIN{}, err
	}

	s := SGTIN{
		indicator:     g[0],
		companyPrefix: g[1 : 1+companyPrefixLen],
		itemRef:       g[1+companyPrefixLen : 13],
		serial:        serial,
	}
	return s, s.ValidateRanges()
}

// SGTINFromElementString builds an SGTIN from the GTIN (01) and serial
// number (21) of a parsed element string.
//
// A partial result is accepted as long as both AIs were decoded.
func SGTINFromElementString(r *elementstring.Result, companyPrefixLen int) (SGTIN, error) {
	g, ok := r.GetID(ai.GTIN)
	if !ok {
		return SGTIN{}, errors.New("element string has no GTIN (01)")
	}
	serial, ok := r.GetID(ai.SerialNumber)
	if !ok {
		return SGTIN{}, errors.New("element string has no serial number (21)")
	}
	return NewSGTIN(g.Text(), serial.Text(), companyPrefixLen)
}

// SGTINToPureURI is a convenience method for converting a GTIN and serial to
// its corresponding GS1 Pure Identity URI.
//
// The SGTIN's values ARE validated using ValidateRanges, and if they are
// invalid, this function returns that error.
func SGTINToPureURI(gtin14, serial string, companyPrefixLen int) (string, error) {
	s, err := NewSGTIN(gtin14, serial, companyPrefixLen)
	if err != nil {
		return "", err
	}
	return s.URI(), nil
}

// ParseSGTINURI is the inverse of SGTIN.URI. It accepts only the pure
// identity form, urn:epc:id:sgtin:CompanyPrefix.IndicatorItemRef.Serial.
func ParseSGTINURI(uri string) (SGTIN, error) {
	if !strings.HasPrefix(uri, SGTINPureURIPrefix+":") {
		return SGTIN{}, errors.Errorf("%q is not an SGTIN pure identity URI", uri)
	}
	parts := strings.SplitN(uri[len(SGTINPureURIPrefix)+1:], ".", 3)
	if len(parts) != 3 {
		return SGTIN{}, errors.Errorf("SGTIN URI %q must have 3 parts", uri)
	}
	cp, iir := parts[0], parts[1]
	if !digits.IsDigits(cp) || !digits.IsDigits(iir) || len(cp)+len(iir) != 13 {
		return SGTIN{}, errors.Errorf("SGTIN URI %q must have 13 digits of "+
			"company prefix, indicator and item reference", uri)
	}
	if err := validateCompanyPrefixLength(len(cp)); err != nil {
		return SGTIN{}, err
	}

	s := SGTIN{
		companyPrefix: cp,
		indicator:     iir[0],
		itemRef:       iir[1:],
		serial:        UnescapeGS1(parts[2]),
	}
	return s, s.ValidateRanges()
}

// ValidateRanges checks an SGTIN's values to ensure they fit the restrictions
// of their respective fields.
//
// Note that GS1 and EPCGlobal standards restrict many potential values that
// would otherwise fit within their relevant fields (for example, RCNs with GS1
// Prefix '02' are not valid GTINs and should not be encoded to SGTIN); this
// method only validates that they fit within the available ranges, but not that
// they are otherwise legal.
func (s SGTIN) ValidateRanges() error {
	if s.indicator < '0' || s.indicator > '9' {
		return errors.Errorf("indicator must be in [0,9], but is %q", s.indicator)
	}
	if err := validateCompanyPrefixLength(len(s.companyPrefix)); err != nil {
		return err
	}
	if len(s.companyPrefix)+len(s.itemRef) != 12 {
		return errors.Errorf("company prefix and item reference must have 12 "+
			"digits, but have %d", len(s.companyPrefix)+len(s.itemRef))
	}
	return errors.Wrap(validateAlphanumeric("SGTIN serial", s.serial, maxSerialLength),
		"invalid SGTIN")
}

// CanSGTIN96 returns nil if the SGTIN's serial may be encoded as SGTIN-96.
//
// The EPC Tag Data Standard specifies that SGTIN-96 encoded serial numbers must
// consist only of decimal values (0-9) less than 2^(38), with no leading '0's,
// except for a single '0'. Serials that don't fit need SGTIN-198.
func (s SGTIN) CanSGTIN96() error {
	if s.serial == "" {
		return errors.New("serial is empty")
	}
	_, err := strconv.ParseUint(s.serial, 10, 38)
	if err != nil {
		return errors.Wrap(err, "SGTIN96 serial numbers must be numeric")
	}
	if s.serial[0] == '0' && s.serial != "0" {
		return errors.New("serials cannot have leading '0's, " +
			"except for the unique value '0'")
	}
	return nil
}

// GTIN returns the GTIN-14 represented by this SGTIN, check digit included.
func (s SGTIN) GTIN() string {
	g, _ := checkdigit.CalculateAndAppend(string(s.indicator) + s.companyPrefix + s.itemRef)
	return g
}

// ElementString returns the AI (01) and AI (21) element string of this SGTIN.
func (s SGTIN) ElementString() string {
	return "01" + s.GTIN() + "21" + s.serial
}

// URI returns the EPC Pure Identity URI for this SGTIN, of the format:
//     urn:epc:id:sgtin:CompanyPrefix.IndicatorItemRef.SerialNumber
// The serial number is escaped, if necessary, to conform with GS1 specs, but
// it is not validated.
func (s SGTIN) URI() string {
	return fmt.Sprintf("%s:%s.%c%s.%s",
		SGTINPureURIPrefix,
		s.companyPrefix,
		s.indicator, s.itemRef,
		EscapeGS1(s.serial))
}
