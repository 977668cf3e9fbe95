/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package epc

import (
	"fmt"

	"github.com/intel/rsp-sw-toolkit-im-suite-gs1/ai"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1/elementstring"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1/gln"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1/internal/digits"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1/sscc"
	"github.com/pkg/errors"
)

const (
	SSCCPureURIPrefix = "urn:epc:id:sscc"
	SGLNPureURIPrefix = "urn:epc:id:sgln"
	CPIPureURIPrefix  = "urn:epc:id:cpi"

	// the GLN extension used when a location has no AI (254)
	noGLNExtension = "0"

	maxCPIRefLength    = 30
	maxCPISerialLength = 12
)

func requireText(r *elementstring.Result, id ai.Identifier) (string, error) {
	v, ok := r.GetID(id)
	if !ok {
		return "", errors.Errorf("element string has no %s (%s)", id, id.Key())
	}
	return v.Text(), nil
}

// SSCCToPureURI returns the pure identity URI of an SSCC:
//     urn:epc:id:sscc:CompanyPrefix.ExtensionSerialRef
// The extension digit moves behind the company prefix, and the check digit is
// dropped.
func SSCCToPureURI(code string, companyPrefixLen int) (string, error) {
	if err := validateCompanyPrefixLength(companyPrefixLen); err != nil {
		return "", err
	}
	if err := sscc.ValidateFormatAndCheckDigit(code); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s.%c%s",
		SSCCPureURIPrefix,
		code[1:1+companyPrefixLen],
		code[0], code[1+companyPrefixLen:sscc.Length-1]), nil
}

// SSCCURI returns the pure identity URI of the SSCC (00) in r.
func SSCCURI(r *elementstring.Result, companyPrefixLen int) (string, error) {
	code, err := requireText(r, ai.SSCC)
	if err != nil {
		return "", err
	}
	return SSCCToPureURI(code, companyPrefixLen)
}

// SGLNToPureURI returns the pure identity URI of a GLN and extension:
//     urn:epc:id:sgln:CompanyPrefix.LocationRef.Extension
// An empty extension is encoded as "0", which means "no extension".
func SGLNToPureURI(code, extension string, companyPrefixLen int) (string, error) {
	if err := validateCompanyPrefixLength(companyPrefixLen); err != nil {
		return "", err
	}
	if err := gln.ValidateFormatAndCheckDigit(code); err != nil {
		return "", err
	}
	if extension == "" {
		extension = noGLNExtension
	} else if err := validateAlphanumeric("GLN extension", extension, maxSerialLength); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s.%s.%s",
		SGLNPureURIPrefix,
		code[:companyPrefixLen],
		code[companyPrefixLen:gln.Length-1],
		EscapeGS1(extension)), nil
}

// SGLNURI returns the pure identity URI of the physical location (414) in r,
// with its extension component (254) if present.
func SGLNURI(r *elementstring.Result, companyPrefixLen int) (string, error) {
	code, err := requireText(r, ai.PhysicalLocation)
	if err != nil {
		return "", err
	}
	ext := r.Text(ai.GLNExtensionComponent)
	return SGLNToPureURI(code, ext, companyPrefixLen)
}

// CPIToPureURI returns the pure identity URI of a component/part identifier
// and serial:
//     urn:epc:id:cpi:CompanyPrefix.ComponentPartRef.Serial
// The identifier starts with the company prefix and may only use the
// characters of IsGS1CompPartEncodable.
func CPIToPureURI(cpi, serial string, companyPrefixLen int) (string, error) {
	if err := validateCompanyPrefixLength(companyPrefixLen); err != nil {
		return "", err
	}
	if len(cpi) <= companyPrefixLen || len(cpi) > maxCPIRefLength {
		return "", errors.Errorf("component/part identifier %q must be longer "+
			"than its company prefix and at most %d characters", cpi, maxCPIRefLength)
	}
	if !digits.IsDigits(cpi[:companyPrefixLen]) {
		return "", errors.Errorf("component/part identifier %q must start with "+
			"a %d digit company prefix", cpi, companyPrefixLen)
	}
	if !IsGS1CompPartEncodable(cpi) {
		return "", errors.Errorf("component/part identifier %q may only contain "+
			"characters in the GS1 AI Encodable Character Set 39", cpi)
	}
	if !digits.IsDigits(serial) || len(serial) > maxCPISerialLength {
		return "", errors.Errorf("component/part serial %q must be 1 to %d digits",
			serial, maxCPISerialLength)
	}
	return fmt.Sprintf("%s:%s.%s.%s",
		CPIPureURIPrefix,
		cpi[:companyPrefixLen],
		EscapeGS1(cpi[companyPrefixLen:]),
		serial), nil
}

// CPIURI returns the pure identity URI of the component/part identifier
// (8010) and its serial number (8011) in r.
func CPIURI(r *elementstring.Result, companyPrefixLen int) (string, error) {
	cpi, err := requireText(r, ai.ComponentOrPartIdentifier)
	if err != nil {
		return "", err
	}
	serial, err := requireText(r, ai.ComponentOrPartIdentifierSerialNumber)
	if err != nil {
		return "", err
	}
	return CPIToPureURI(cpi, serial, companyPrefixLen)
}

// PureURIs returns the pure identity URIs of every EPC that r carries: SGTIN,
// SSCC, SGLN and CPI, in that order. Identifiers whose AIs aren't present are
// skipped; identifiers that are present but invalid are an error.
func PureURIs(r *elementstring.Result, companyPrefixLen int) ([]string, error) {
	var uris []string
	if r.ContainsID(ai.GTIN) && r.ContainsID(ai.SerialNumber) {
		s, err := SGTINFromElementString(r, companyPrefixLen)
		if err != nil {
			return nil, err
		}
		uris = append(uris, s.URI())
	}

	for _, conv := range []struct {
		id ai.Identifier
		fn func(*elementstring.Result, int) (string, error)
	}{
		{ai.SSCC, SSCCURI},
		{ai.PhysicalLocation, SGLNURI},
		{ai.ComponentOrPartIdentifier, CPIURI},
	} {
		if !r.ContainsID(conv.id) {
			continue
		}
		uri, err := conv.fn(r, companyPrefixLen)
		if err != nil {
			return nil, err
		}
		uris = append(uris, uri)
	}
	return uris, nil
}
