/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package elementstring

import (
	"fmt"

	"github.com/intel/rsp-sw-toolkit-im-suite-gs1/ai"
	"github.com/pkg/errors"
)

// ErrUnrecognizedAI is the cause of a ParseError when no registered AI or AI
// family matches the input.
var ErrUnrecognizedAI = errors.New("unrecognized AI")

// ParseError describes where and why parsing stopped.
type ParseError struct {
	// Key is the AI whose data field couldn't be decoded; it's empty when
	// the AI itself wasn't recognized.
	Key string
	// Position is the zero-based offset of the AI key in the input.
	Position int
	Cause    error
}

func (e *ParseError) Error() string {
	if errors.Cause(e.Cause) == ErrUnrecognizedAI {
		return fmt.Sprintf("Unrecognized AI at position %d", e.Position)
	}
	return fmt.Sprintf("Error parsing data field for AI %s at position %d, %s",
		e.Key, e.Position, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Element is a single AI and its decoded data field.
type Element struct {
	Key string
	// ID is zero for AIs matched by family (703x, 71x, 9x) rather than
	// by registry entry.
	ID    ai.Identifier
	Value Value
	// Raw is the data field as it appeared in the input, less separators.
	Raw string
}

// Result holds the elements decoded from an element string, in the order they
// were found.
//
// A partial Result holds everything decoded before the first error; check
// Partial (or Err) before trusting that it's complete.
type Result struct {
	elements []Element
	byKey    map[string]int
	byID     map[ai.Identifier]int
	err      *ParseError
}

func newResult() *Result {
	return &Result{
		byKey: map[string]int{},
		byID:  map[ai.Identifier]int{},
	}
}

// put records an element. A repeated key keeps its original position and
// takes the new value.
func (r *Result) put(el Element) {
	if idx, ok := r.byKey[el.Key]; ok {
		r.elements[idx] = el
		return
	}
	r.byKey[el.Key] = len(r.elements)
	if el.ID.IsValid() {
		r.byID[el.ID] = len(r.elements)
	}
	r.elements = append(r.elements, el)
}

// Partial returns true if parsing stopped before the end of the input.
func (r *Result) Partial() bool {
	return r.err != nil
}

// Err returns the *ParseError that stopped parsing, or nil.
func (r *Result) Err() error {
	if r.err == nil {
		return nil
	}
	return r.err
}

// ErrorMessage returns the text of Err, or "" if parsing completed.
func (r *Result) ErrorMessage() string {
	if r.err == nil {
		return ""
	}
	return r.err.Error()
}

func (r *Result) IsEmpty() bool {
	return len(r.elements) == 0
}

func (r *Result) Len() int {
	return len(r.elements)
}

// Elements returns a copy of the decoded elements, in input order.
func (r *Result) Elements() []Element {
	elements := make([]Element, len(r.elements))
	copy(elements, r.elements)
	return elements
}

// Keys returns the raw AI keys, in input order.
func (r *Result) Keys() []string {
	keys := make([]string, len(r.elements))
	for i := range r.elements {
		keys[i] = r.elements[i].Key
	}
	return keys
}

func (r *Result) Contains(key string) bool {
	_, ok := r.byKey[key]
	return ok
}

func (r *Result) ContainsID(id ai.Identifier) bool {
	_, ok := r.byID[id]
	return ok
}

// Get returns the value for a raw AI key such as "01" or "7030".
func (r *Result) Get(key string) (Value, bool) {
	idx, ok := r.byKey[key]
	if !ok {
		return Value{}, false
	}
	return r.elements[idx].Value, true
}

// GetID returns the value for a registered AI.
func (r *Result) GetID(id ai.Identifier) (Value, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return Value{}, false
	}
	return r.elements[idx].Value, true
}

// Text is a shortcut for the text of a registered AI's value; it returns ""
// if the AI is missing or isn't text.
func (r *Result) Text(id ai.Identifier) string {
	v, _ := r.GetID(id)
	return v.Text()
}
