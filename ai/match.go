/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package ai

const maxKeyLen = 4

// node is a digit-indexed trie node; id is the earliest declared entry whose
// key ends at this node.
type node struct {
	next [10]*node
	id   Identifier
}

var root = &node{}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func (n *node) insert(key string, id Identifier) {
	for i := 0; i < len(key); i++ {
		if !isDigit(key[i]) {
			panic("AI registry key " + key + " is not numeric")
		}
		d := key[i] - '0'
		if n.next[d] == nil {
			n.next[d] = &node{}
		}
		n = n.next[d]
	}
	// keep the first declaration of a duplicated key
	if n.id == 0 {
		n.id = id
	}
}

func (n *node) find(key string) *node {
	for i := 0; i < len(key) && n != nil; i++ {
		if !isDigit(key[i]) {
			return nil
		}
		n = n.next[key[i]-'0']
	}
	return n
}

// Match is the result of recognizing an AI key in an element string.
type Match struct {
	// Key is the raw AI key as it appears in the input.
	Key string
	// ID is the matched registry entry, or zero for family matches.
	ID        Identifier
	Format    Format
	MinLength int
	MaxLength int
}

// Registered returns true if the match came from the registry rather than a
// family rule.
func (m Match) Registered() bool {
	return m.ID.IsValid()
}

// family describes AI ranges that aren't individually registered.
type family struct {
	prefix     string
	keyLen     int
	lo, hi     byte // allowed range of the final key character
	format     Format
	minLength  int
	maxLength  int
	familyName string
}

// families are tried in order, and only when no registry entry matches.
var families = []family{
	{"703", 4, '0', '9', ProcessorWithCountry, 0, 0, "Number of processor with ISO country code"},
	{"71", 3, '0', '9', AlphanumericVariable, 1, 20, "National healthcare reimbursement number"},
	{"9", 2, '1', '9', AlphanumericVariable, 1, 30, "Company internal information"},
}

// FamilyName returns a description of the AI family key belongs to, or "" if
// it isn't part of a family.
func FamilyName(key string) string {
	for _, f := range families {
		if len(key) == f.keyLen && f.matches(key, 0) {
			return f.familyName
		}
	}
	return ""
}

func (f family) matches(seq string, pos int) bool {
	if len(seq)-pos < f.keyLen {
		return false
	}
	if seq[pos:pos+len(f.prefix)] != f.prefix {
		return false
	}
	c := seq[pos+f.keyLen-1]
	return c >= f.lo && c <= f.hi
}

// MatchAt recognizes the AI key starting at seq[pos:].
//
// Among registry entries whose key is a prefix of the remaining input, the
// earliest declared wins. If none match, the 703x, 71x and 9x family rules
// are tried in that order. The second return value is false if the position
// holds no recognizable AI.
func MatchAt(seq string, pos int) (Match, bool) {
	var best Identifier
	n := root
	for i := pos; i < len(seq) && i-pos < maxKeyLen; i++ {
		if !isDigit(seq[i]) {
			break
		}
		if n = n.next[seq[i]-'0']; n == nil {
			break
		}
		if n.id != 0 && (best == 0 || n.id < best) {
			best = n.id
		}
	}
	if best != 0 {
		e := best.Entry()
		return Match{
			Key:       e.Key,
			ID:        e.ID,
			Format:    e.Format,
			MinLength: e.MinLength,
			MaxLength: e.MaxLength,
		}, true
	}

	for _, f := range families {
		if f.matches(seq, pos) {
			return Match{
				Key:       seq[pos : pos+f.keyLen],
				Format:    f.format,
				MinLength: f.minLength,
				MaxLength: f.maxLength,
			}, true
		}
	}
	return Match{}, false
}
