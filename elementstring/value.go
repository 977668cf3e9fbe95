/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package elementstring

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind is the type of a decoded data field.
type Kind int

const (
	TextKind = Kind(iota)
	DateKind
	DecimalKind
	ListKind
	PairKind
)

func (k Kind) String() string {
	switch k {
	case TextKind:
		return "text"
	case DateKind:
		return "date"
	case DecimalKind:
		return "decimal"
	case ListKind:
		return "list"
	case PairKind:
		return "pair"
	}
	return "Unknown kind: " + strconv.Itoa(int(k))
}

// Value is a decoded data field: text, a date, a decimal number, an ordered
// list of values or a pair of values.
//
// Accessors for a kind other than the Value's return the zero value; check
// Kind first when the AI's format isn't known.
type Value struct {
	kind  Kind
	text  string
	date  time.Time
	dec   decimal.Decimal
	items []Value
}

func TextValue(s string) Value {
	return Value{kind: TextKind, text: s}
}

func DateValue(t time.Time) Value {
	return Value{kind: DateKind, date: t}
}

func DecimalValue(d decimal.Decimal) Value {
	return Value{kind: DecimalKind, dec: d}
}

func ListValue(items ...Value) Value {
	return Value{kind: ListKind, items: items}
}

func PairValue(first, second Value) Value {
	return Value{kind: PairKind, items: []Value{first, second}}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) Text() string {
	return v.text
}

func (v Value) Date() time.Time {
	return v.date
}

func (v Value) Decimal() decimal.Decimal {
	return v.dec
}

// Items returns a copy of the values of a list or pair.
func (v Value) Items() []Value {
	if v.items == nil {
		return nil
	}
	items := make([]Value, len(v.items))
	copy(items, v.items)
	return items
}

// Pair returns both halves of a pair. It returns zero Values for other kinds.
func (v Value) Pair() (Value, Value) {
	if v.kind != PairKind {
		return Value{}, Value{}
	}
	return v.items[0], v.items[1]
}

// formatDecimal keeps the scale given by the data, so "1.200" stays "1.200".
func formatDecimal(d decimal.Decimal) string {
	if d.Exponent() < 0 {
		return d.StringFixed(-d.Exponent())
	}
	return d.String()
}

func formatDate(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02T15:04:05")
}

// String formats the value for display: dates as ISO 8601, decimals with the
// scale they were encoded with, lists in brackets and pairs space separated.
func (v Value) String() string {
	switch v.kind {
	case DateKind:
		return formatDate(v.date)
	case DecimalKind:
		return formatDecimal(v.dec)
	case ListKind:
		parts := make([]string, len(v.items))
		for i := range v.items {
			parts[i] = v.items[i].String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case PairKind:
		return v.items[0].String() + " " + v.items[1].String()
	}
	return v.text
}

// Interface returns the value as plain Go data: a string for text, dates and
// decimals, or a []interface{} for lists and pairs.
func (v Value) Interface() interface{} {
	switch v.kind {
	case DateKind, DecimalKind:
		return v.String()
	case ListKind, PairKind:
		items := make([]interface{}, len(v.items))
		for i := range v.items {
			items[i] = v.items[i].Interface()
		}
		return items
	}
	return v.text
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

func (v Value) MarshalYAML() (interface{}, error) {
	return v.Interface(), nil
}
