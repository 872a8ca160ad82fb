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

import "testing"

func TestIsCompatible(t *testing.T) {
	tests := []struct {
		project string
		dep     string
		want    bool
	}{
		// Permissive dependencies go anywhere the table knows about.
		{"gpl-3.0-only", "mit", true},
		{"mit", "mit", true},
		{"mit", "apache-2.0", true},
		{"agpl-3.0-only", "mit", true},

		// Copyleft into permissive projects does not work.
		{"mit", "agpl-3.0-only", false},
		{"mit", "gpl-3.0-only", false},
		{"apache-2.0", "sspl-1.0", false},

		// Weak copyleft is fine for permissive projects.
		{"mit", "mpl-2.0", true},
		{"bsd-3-clause", "lgpl-3.0-only", true},

		// GPLv2 cannot take Apache-2.0 code.
		{"gpl-2.0-only", "apache-2.0", false},
		{"gpl-2.0-only", "mit", true},
		{"gpl-3.0-only", "apache-2.0", true},

		// The AGPL row is a wildcard.
		{"agpl-3.0-only", "sspl-1.0", true},
		{"agpl-3.0-only", "gpl-3.0-only", true},

		// Unknown project licenses are conservatively incompatible.
		{"busl-1.1", "mit", false},
		{"no-such-license", "mit", false},

		// Case-insensitive on both sides.
		{"MIT", "MPL-2.0", true},
	}
	for _, tt := range tests {
		if got := IsCompatible(tt.project, tt.dep); got != tt.want {
			t.Errorf("IsCompatible(%q, %q) = %v, want %v", tt.project, tt.dep, got, tt.want)
		}
	}
}
