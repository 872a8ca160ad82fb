// Copyright 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sets provides a simple string set implementation.
package sets

import "sort"

type present struct{}

// StringSet stores a set of unique string elements.
type StringSet struct {
	set map[string]present
}

// NewStringSet creates a StringSet containing the supplied initial string
// values.
func NewStringSet(values ...string) *StringSet {
	s := &StringSet{set: make(map[string]present, len(values))}
	s.Insert(values...)
	return s
}

// Copy returns a newly allocated copy of the supplied StringSet.
func (s *StringSet) Copy() *StringSet {
	c := NewStringSet()
	if s != nil {
		for e := range s.set {
			c.set[e] = present{}
		}
	}
	return c
}

// Insert zero or more string values into the StringSet. Duplicate values are
// collapsed.
func (s *StringSet) Insert(values ...string) {
	for _, v := range values {
		s.set[v] = present{}
	}
}

// Delete zero or more string values from the StringSet. Deleting a
// non-existent value is a no-op.
func (s *StringSet) Delete(values ...string) {
	for _, v := range values {
		delete(s.set, v)
	}
}

// Contains returns true if the value is present in the StringSet.
func (s *StringSet) Contains(value string) bool {
	_, ok := s.set[value]
	return ok
}

// Len returns the number of unique elements in the StringSet.
func (s *StringSet) Len() int {
	return len(s.set)
}

// Empty returns true if the StringSet contains no elements.
func (s *StringSet) Empty() bool {
	return len(s.set) == 0
}

// Elements returns the unique elements in the StringSet in unspecified
// order.
func (s *StringSet) Elements() []string {
	elements := make([]string, 0, len(s.set))
	for e := range s.set {
		elements = append(elements, e)
	}
	return elements
}

// Sorted returns the unique elements in the StringSet in sorted order.
func (s *StringSet) Sorted() []string {
	elements := s.Elements()
	sort.Strings(elements)
	return elements
}
