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

package licensepolicy

import (
	"strings"
	"testing"
)

func TestCatalog_RequiredEntries(t *testing.T) {
	required := []string{
		"MIT", "Apache-2.0", "BSD-2-Clause", "BSD-3-Clause", "ISC",
		"Unlicense", "WTFPL", "HPND", "MPL-2.0", "LGPL-3.0-only",
		"GPL-3.0-only", "AGPL-3.0-only", "JSON", "CC-BY-NC-4.0", "SSPL-1.0",
	}
	for _, id := range required {
		if _, ok := Lookup(id); !ok {
			t.Errorf("Lookup(%q) not found, want a catalog entry", id)
		}
	}
}

func TestCatalog_Wellformed(t *testing.T) {
	seenIDs := make(map[string]string)
	seenAliases := make(map[string]string)
	for _, e := range Catalog() {
		lower := strings.ToLower(e.ID)
		if prev, ok := seenIDs[lower]; ok {
			t.Errorf("catalog id %q duplicates %q", e.ID, prev)
		}
		seenIDs[lower] = e.ID

		if e.Category == "" {
			t.Errorf("catalog entry %q has no category", e.ID)
		}
		for _, a := range e.Aliases {
			if a != strings.ToLower(strings.TrimSpace(a)) {
				t.Errorf("alias %q of %q is not lowercase and trimmed", a, e.ID)
			}
			if prev, ok := seenAliases[a]; ok && prev != e.ID {
				t.Errorf("alias %q of %q already claimed by %q", a, e.ID, prev)
			}
			seenAliases[a] = e.ID
		}
	}
}

func TestCatalog_AliasesResolve(t *testing.T) {
	for _, e := range Catalog() {
		want := strings.ToLower(e.ID)
		for _, alias := range append([]string{want}, e.Aliases...) {
			n := Normalize(alias)
			if n == nil {
				t.Errorf("Normalize(%q) = nil, want %q", alias, want)
				continue
			}
			if n.ID != want {
				t.Errorf("Normalize(%q).ID = %q, want %q", alias, n.ID, want)
			}
			if n.Confidence != 1.0 {
				t.Errorf("Normalize(%q).Confidence = %v, want 1.0", alias, n.Confidence)
			}
			if n.Method != MethodDirect {
				t.Errorf("Normalize(%q).Method = %q, want %q", alias, n.Method, MethodDirect)
			}
			if n.Category != e.Category {
				t.Errorf("Normalize(%q).Category = %q, want %q", alias, n.Category, e.Category)
			}
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"mit", true},
		{"MIT", true},
		{"Gpl-3.0-Only", true},
		{"no-such-license", false},
		{"", false},
	}
	for _, tt := range tests {
		if _, got := Lookup(tt.id); got != tt.want {
			t.Errorf("Lookup(%q) found = %v, want %v", tt.id, got, tt.want)
		}
	}
}
