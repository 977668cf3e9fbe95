/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package epc converts GS1 keys read from element strings into EPC pure
// identity URIs, as defined by the EPC Tag Data Standard, Release 1.12.
//
// The following are links to the GS1 General Standard and EPC Tag Data
// Standard; this code is based on these guides and does its best to both
// follow its guidelines and properly implement its definitions.
// - https://www.gs1.org/sites/default/files/docs/barcodes/GS1_General_Specifications.pdf
// - https://www.gs1.org/sites/default/files/docs/epc/GS1_EPC_TDS_i1_12.pdf
//
// Most significant in GS1's recommendations is the following idea:
//     "The canonical representation of an EPC is the pure-identity URI
//     	representation, which is intended for communicating and storing EPCs in
//     	information systems, databases and applications, in order to insulate
//     	them from knowledge about the physical nature of the tag [...]"
//		- GS1 EPCglobal Tag Data Translation (TDT) 1.6
// A barcode and an RFID tag carrying the same GTIN and serial number identify
// the same object, and both should end up as the same URI. Two EPCs are the
// same if and only if their pure identity URIs are character for character
// identical.
//
// Element strings don't mark where the GS1 Company Prefix ends inside a key,
// but the URI needs it, so every conversion takes the company prefix length
// (6 to 12 digits). The check digit of the key is not part of the URI; it's
// validated on the way in and recalculated on the way out.
//
//     r := elementstring.Parse("0100614141007349" + "21" + "314159")
//     s, err := epc.SGTINFromElementString(r, 7)
//     s.URI() // urn:epc:id:sgtin:0614141.000734.314159
package epc
