/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package elementstring

import (
	"strings"
)

// HRI returns the human readable interpretation of the decoded elements, the
// text printed beneath a GS1 barcode, e.g. "(01)09506000134352(17)201225".
//
// Data fields are rendered as they were encoded, except that a decimal point
// indicator is written as the last digit of the AI: "3103001200" becomes
// "(3103)001200".
func (r *Result) HRI() string {
	var sb strings.Builder
	for _, el := range r.elements {
		key, data := el.Key, el.Raw
		if el.ID.IsValid() && el.ID.Entry().Format.HasDecimalIndicator() && data != "" {
			key, data = key+data[:1], data[1:]
		}
		sb.WriteByte('(')
		sb.WriteString(key)
		sb.WriteByte(')')
		sb.WriteString(data)
	}
	return sb.String()
}

// ElementString re-encodes the decoded elements, inserting a Separator after
// every field except the last. It's the inverse of Parse for complete
// results, modulo separators the input had after fixed length fields.
func (r *Result) ElementString() string {
	var sb strings.Builder
	for i, el := range r.elements {
		if i > 0 {
			sb.WriteByte(Separator)
		}
		sb.WriteString(el.Key)
		sb.WriteString(el.Raw)
	}
	return sb.String()
}
