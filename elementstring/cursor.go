/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package elementstring

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1/internal/digits"
	"github.com/pkg/errors"
)

// Separator is the ASCII group separator (GS, 0x1D) that terminates variable
// length fields; it's what an FNC1 in the symbol decodes to.
const Separator = '\x1d'

var (
	ErrNotNumeric       = errors.New("data field must be numeric")
	ErrDecimalIndicator = errors.New("decimal point indicator must be a digit")
	ErrInvalidDecimal   = errors.New("invalid decimal")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidLength    = errors.New("invalid data field length")
)

// cursor reads data fields from an element string. It's owned by a single
// parse and only ever moves forward.
type cursor struct {
	seq string
	pos int
}

func (c *cursor) remaining() int {
	return len(c.seq) - c.pos
}

// readField reads up to maxLen characters, stopping early at a separator or
// the end of input, and fails if fewer than minLen were available. The
// separator itself is not consumed.
func (c *cursor) readField(minLen, maxLen int) (string, error) {
	end := c.pos
	for end-c.pos < maxLen && end < len(c.seq) && c.seq[end] != Separator {
		end++
	}

	n := end - c.pos
	if n < minLen {
		if minLen == maxLen {
			return "", errors.Errorf("data field must be exactly %d characters long", minLen)
		}
		return "", errors.Errorf("data field must be at least %d characters long", minLen)
	}

	field := c.seq[c.pos:end]
	c.pos = end
	return field, nil
}

// readNumeric is readField restricted to the digits 0-9.
func (c *cursor) readNumeric(minLen, maxLen int) (string, error) {
	field, err := c.readField(minLen, maxLen)
	if err != nil {
		return "", err
	}
	if !digits.IsDigits(field) {
		return "", ErrNotNumeric
	}
	return field, nil
}

// readDecimalIndicator reads the single digit giving the number of digits
// to the right of the decimal point.
func (c *cursor) readDecimalIndicator() (int32, error) {
	if c.remaining() == 0 {
		return 0, ErrDecimalIndicator
	}
	ind := c.seq[c.pos]
	if ind < '0' || ind > '9' {
		return 0, ErrDecimalIndicator
	}
	c.pos++
	return int32(ind - '0'), nil
}

func (c *cursor) skipSeparator() {
	if c.pos < len(c.seq) && c.seq[c.pos] == Separator {
		c.pos++
	}
}
