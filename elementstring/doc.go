/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package elementstring decodes GS1 Element Strings: the concatenated
// Application Identifier (AI) and data field pairs carried by GS1-128, GS1
// DataBar, GS1 DataMatrix and GS1 QR Code symbols, as they come out of a
// scanner.
//
// Each AI fixes the grammar of the data field that follows it. Fixed length
// fields simply end after their length; variable length fields end at their
// maximum length, at the end of the input, or at a group separator (GS, 0x1D),
// which is what the FNC1 character of a symbol transmits as. For example, the
// element string
//     "0109506000134352" + "17201225" + "10ABC123" + "\x1d" + "21XYZ"
// holds a GTIN (01), an expiration date (17), a batch number (10) and a
// serial number (21); the separator is needed only because the batch number
// is variable length and not at the end.
//
// Decoding is forgiving in what it accepts around separators: a separator
// after a fixed length field, or at the very end of the input, is ignored.
// It's strict about data fields: the first field that doesn't match its AI's
// grammar ends the parse, and the Result reports which AI failed, where it
// started, and why:
//     r := elementstring.Parse(scan)
//     if r.Partial() {
//         log.Println(r.Err()) // Error parsing data field for AI 17 at position 16, invalid date
//     }
//     gtin, _ := r.GetID(ai.GTIN)
//
// Dates use two-digit years, so their century depends on when they're read;
// see WithClock.
package elementstring
