/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package elementstring

import (
	"time"

	"github.com/intel/rsp-sw-toolkit-im-suite-gs1/ai"
	"github.com/pkg/errors"
)

// ErrNoData is returned by ParseBytes when given a nil slice. It's the only
// structural error; everything else is reported in the Result.
var ErrNoData = errors.New("no element string data")

// Parser decodes element strings. The zero value isn't usable; use NewParser.
//
// A Parser holds no per-parse state, so one may be shared by many goroutines.
type Parser struct {
	now func() time.Time
	loc *time.Location
}

// Option configures a Parser.
type Option func(*Parser)

// WithClock sets the function used to find the current year when inferring
// the century of two-digit years.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		p.now = now
	}
}

// WithLocation sets the location of decoded dates. The default is UTC.
func WithLocation(loc *time.Location) Option {
	return func(p *Parser) {
		p.loc = loc
	}
}

func NewParser(opts ...Option) *Parser {
	p := &Parser{now: time.Now, loc: time.UTC}
	for _, opt := range opts {
		opt(p)
	}
	if p.now == nil {
		p.now = time.Now
	}
	if p.loc == nil {
		p.loc = time.UTC
	}
	return p
}

var defaultParser = NewParser()

// Parse decodes seq using the wall clock for century inference.
func Parse(seq string) *Result {
	return defaultParser.Parse(seq)
}

// ParseBytes is Parse for raw scanner output.
func ParseBytes(b []byte) (*Result, error) {
	return defaultParser.ParseBytes(b)
}

func (p *Parser) ParseBytes(b []byte) (*Result, error) {
	if b == nil {
		return nil, ErrNoData
	}
	return p.Parse(string(b)), nil
}

// Parse decodes the AIs and data fields of seq, in order.
//
// Parsing stops at the first AI that isn't recognized or whose data field
// can't be decoded. The returned Result is never nil; it holds every element
// decoded before the failure, and its Err describes the failure with the
// position of the offending AI.
func (p *Parser) Parse(seq string) *Result {
	r := newResult()
	c := &cursor{seq: seq}

	for c.remaining() > 0 {
		start := c.pos
		m, ok := ai.MatchAt(seq, start)
		if !ok {
			r.err = &ParseError{Position: start, Cause: ErrUnrecognizedAI}
			break
		}
		c.pos += len(m.Key)

		v, raw, err := p.decodeField(m, c)
		if err != nil {
			r.err = &ParseError{Key: m.Key, Position: start, Cause: err}
			break
		}
		r.put(Element{Key: m.Key, ID: m.ID, Value: v, Raw: raw})
	}

	return r
}
