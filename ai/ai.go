/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

// Package ai holds the registry of GS1 Application Identifiers and matches AI
// keys at a position in an element string.
//
// An AI is a 2-4 digit key preceding a data field; the AI determines both the
// meaning of the field and its grammar (see Format). The registry is static
// data built at init time and only read afterwards, so it is safe for
// concurrent use.
package ai

import (
	"fmt"
	"strconv"
)

// Identifier identifies one registry entry. The zero value identifies nothing.
//
// Two identifiers may share a key (see FunctionalStatus and RevisionStatus);
// an Identifier is the identity of the entry, not of the key.
type Identifier int

// Entry describes a single registered AI.
type Entry struct {
	ID     Identifier
	Key    string
	Name   string
	Format Format
	// MinLength and MaxLength bound the data field, not counting the key. They
	// are equal for fixed length formats and unused by most custom formats.
	MinLength int
	MaxLength int
}

func (e Entry) String() string {
	return fmt.Sprintf("(%s) %s", e.Key, e.Name)
}

// IsValid returns true if id identifies a registry entry.
func (id Identifier) IsValid() bool {
	return id > 0 && int(id) <= len(registry)
}

// Entry returns the registry entry for id. It panics if id is not valid.
func (id Identifier) Entry() Entry {
	if !id.IsValid() {
		panic(fmt.Sprintf("invalid AI identifier %d", int(id)))
	}
	return registry[id-1]
}

// Key returns the AI key of id, or "" if id is not valid.
func (id Identifier) Key() string {
	if !id.IsValid() {
		return ""
	}
	return registry[id-1].Key
}

func (id Identifier) String() string {
	if !id.IsValid() {
		return "Unknown AI identifier: " + strconv.Itoa(int(id))
	}
	return registry[id-1].Name
}

// Entries returns a copy of the registry, in declaration order.
func Entries() []Entry {
	entries := make([]Entry, len(registry))
	copy(entries, registry)
	return entries
}

// Lookup returns the first declared entry with exactly the given key.
func Lookup(key string) (Entry, bool) {
	n := root.find(key)
	if n == nil || n.id == 0 {
		return Entry{}, false
	}
	return n.id.Entry(), true
}

func init() {
	for i, e := range registry {
		if e.ID != Identifier(i+1) {
			panic(fmt.Sprintf("AI registry entry %d (%s) is out of order", i, e.Key))
		}
		if len(e.Key) < 2 || len(e.Key) > maxKeyLen {
			panic(fmt.Sprintf("AI registry key %q has an invalid length", e.Key))
		}
		root.insert(e.Key, e.ID)
	}
}
