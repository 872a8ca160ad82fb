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

import "strings"

// Category classifies the legal effect a license has on code that
// incorporates it.
type Category string

// The license categories, ordered roughly from least to most restrictive.
const (
	// Permissive licenses allow proprietary use with minimal conditions.
	Permissive Category = "permissive"
	// WeakCopyleft licenses apply copyleft terms per-file or per-library.
	WeakCopyleft Category = "weak-copyleft"
	// StrongCopyleft licenses extend their terms to the whole derived work.
	StrongCopyleft Category = "strong-copyleft"
	// NetworkCopyleft licenses trigger source obligations on network use,
	// not only on distribution.
	NetworkCopyleft Category = "network-copyleft"
	// NonCommercial licenses forbid commercial use.
	NonCommercial Category = "non-commercial"
	// Proprietary licenses require a separate agreement with the licensor.
	Proprietary Category = "proprietary"
	// Unknown marks licenses the catalog cannot classify.
	Unknown Category = "unknown"
)

// CatalogEntry describes one canonical license: the identifier it resolves
// to, the free-form strings known to mean it, its category, and any caveats
// worth surfacing to a reviewer.
type CatalogEntry struct {
	// ID is the SPDX-style canonical identifier, e.g. "GPL-3.0-only".
	ID string
	// Aliases are lowercase strings and phrases that identify this license.
	Aliases []string
	// Category is the legal classification of this license.
	Category Category
	// Notes are human-readable caveats surfaced as warnings when the
	// license appears in an evaluation.
	Notes []string
}

// catalog is the ordered knowledge base of known licenses. The order is the
// alias search order: when two entries could claim the same token, the
// earlier entry wins.
var catalog = []CatalogEntry{
	{
		ID:       "MIT",
		Aliases:  []string{"mit", "mit license", "the mit license", "expat", "expat license", "x11"},
		Category: Permissive,
	},
	{
		ID: "Apache-2.0",
		Aliases: []string{
			"apache-2.0", "apache 2.0", "apache 2", "apache-2", "apache2",
			"apache license 2.0", "apache license, version 2.0",
			"apache software license", "apache software license 2.0", "asl 2.0",
		},
		Category: Permissive,
	},
	{
		ID:       "Apache-1.1",
		Aliases:  []string{"apache-1.1", "apache 1.1", "apache license 1.1", "apache software license 1.1"},
		Category: Permissive,
		Notes:    []string{"superseded by Apache-2.0; lacks the express patent grant"},
	},
	{
		ID: "BSD-2-Clause",
		Aliases: []string{
			"bsd-2-clause", "bsd 2-clause license", "2-clause bsd license",
			"simplified bsd license", "freebsd license",
		},
		Category: Permissive,
	},
	{
		ID: "BSD-3-Clause",
		Aliases: []string{
			"bsd-3-clause", "bsd 3-clause license", "3-clause bsd license",
			"new bsd license", "modified bsd license", "bsd", "bsd license",
		},
		Category: Permissive,
	},
	{
		ID:       "BSD-4-Clause",
		Aliases:  []string{"bsd-4-clause", "bsd 4-clause license", "original bsd license"},
		Category: Permissive,
		Notes:    []string{"the advertising clause is widely considered burdensome"},
	},
	{
		ID:       "ISC",
		Aliases:  []string{"isc", "isc license"},
		Category: Permissive,
	},
	{
		ID:       "Unlicense",
		Aliases:  []string{"unlicense", "the unlicense", "public domain"},
		Category: Permissive,
		Notes:    []string{"public-domain dedication; some jurisdictions do not recognize it"},
	},
	{
		ID:       "WTFPL",
		Aliases:  []string{"wtfpl", "do what the fuck you want to public license"},
		Category: Permissive,
		Notes:    []string{"not OSI-approved"},
	},
	{
		ID:       "HPND",
		Aliases:  []string{"hpnd", "historical permission notice and disclaimer"},
		Category: Permissive,
	},
	{
		ID:       "Zlib",
		Aliases:  []string{"zlib", "zlib license", "zlib/libpng license"},
		Category: Permissive,
	},
	{
		ID:       "CC0-1.0",
		Aliases:  []string{"cc0-1.0", "cc0", "creative commons zero"},
		Category: Permissive,
		Notes:    []string{"public-domain dedication; patent rights are expressly not waived"},
	},
	{
		ID:       "CC-BY-4.0",
		Aliases:  []string{"cc-by-4.0", "creative commons attribution 4.0"},
		Category: Permissive,
		Notes:    []string{"intended for content rather than software"},
	},
	{
		ID:       "JSON",
		Aliases:  []string{"json", "json license"},
		Category: Permissive,
		Notes: []string{
			"not OSI-approved",
			`the "shall be used for Good, not Evil" clause makes the grant ambiguous`,
		},
	},
	{
		ID:       "MPL-2.0",
		Aliases:  []string{"mpl-2.0", "mpl 2.0", "mpl2", "mozilla public license 2.0"},
		Category: WeakCopyleft,
	},
	{
		ID:       "EPL-2.0",
		Aliases:  []string{"epl-2.0", "epl 2.0", "eclipse public license 2.0"},
		Category: WeakCopyleft,
	},
	{
		ID: "LGPL-2.1-only",
		Aliases: []string{
			"lgpl-2.1-only", "lgpl-2.1", "lgpl 2.1", "lgplv2.1",
			"gnu lesser general public license v2.1",
		},
		Category: WeakCopyleft,
	},
	{
		ID:       "LGPL-2.1-or-later",
		Aliases:  []string{"lgpl-2.1-or-later", "lgpl-2.1+", "lgplv2.1+"},
		Category: WeakCopyleft,
	},
	{
		ID: "LGPL-3.0-only",
		Aliases: []string{
			"lgpl-3.0-only", "lgpl-3.0", "lgpl 3.0", "lgplv3", "lgpl3",
			"gnu lesser general public license v3.0",
			"gnu lesser general public license v3",
		},
		Category: WeakCopyleft,
	},
	{
		ID:       "LGPL-3.0-or-later",
		Aliases:  []string{"lgpl-3.0-or-later", "lgpl-3.0+", "lgplv3+"},
		Category: WeakCopyleft,
	},
	{
		ID: "GPL-2.0-only",
		Aliases: []string{
			"gpl-2.0-only", "gpl-2.0", "gpl 2.0", "gplv2", "gpl2",
			"gnu general public license v2.0",
			"gnu general public license v2",
			"gnu general public license, version 2",
		},
		Category: StrongCopyleft,
	},
	{
		ID:       "GPL-2.0-or-later",
		Aliases:  []string{"gpl-2.0-or-later", "gpl-2.0+", "gplv2+", "gpl2+", "gnu general public license v2.0 or later"},
		Category: StrongCopyleft,
	},
	{
		ID: "GPL-3.0-only",
		Aliases: []string{
			"gpl-3.0-only", "gpl-3.0", "gpl 3.0", "gplv3", "gpl3",
			"gnu general public license v3.0",
			"gnu general public license v3",
			"gnu general public license, version 3",
		},
		Category: StrongCopyleft,
	},
	{
		ID:       "GPL-3.0-or-later",
		Aliases:  []string{"gpl-3.0-or-later", "gpl-3.0+", "gplv3+", "gpl3+", "gnu general public license v3.0 or later"},
		Category: StrongCopyleft,
	},
	{
		ID:       "CC-BY-SA-4.0",
		Aliases:  []string{"cc-by-sa-4.0", "creative commons attribution share alike 4.0"},
		Category: StrongCopyleft,
		Notes:    []string{"share-alike terms apply to adaptations; intended for content rather than software"},
	},
	{
		ID: "AGPL-3.0-only",
		Aliases: []string{
			"agpl-3.0-only", "agpl-3.0", "agpl 3.0", "agplv3", "agpl3",
			"gnu affero general public license v3.0",
			"gnu affero general public license v3",
		},
		Category: NetworkCopyleft,
	},
	{
		ID:       "AGPL-3.0-or-later",
		Aliases:  []string{"agpl-3.0-or-later", "agpl-3.0+", "agplv3+"},
		Category: NetworkCopyleft,
	},
	{
		ID:       "SSPL-1.0",
		Aliases:  []string{"sspl-1.0", "sspl", "server side public license"},
		Category: NetworkCopyleft,
		Notes:    []string{"not OSI-approved"},
	},
	{
		ID:       "CC-BY-NC-4.0",
		Aliases:  []string{"cc-by-nc-4.0", "cc-by-nc", "creative commons attribution non commercial 4.0"},
		Category: NonCommercial,
		Notes:    []string{"not an open source license; commercial use is forbidden"},
	},
	{
		ID:       "BUSL-1.1",
		Aliases:  []string{"busl-1.1", "bsl 1.1", "business source license 1.1", "business source license"},
		Category: Proprietary,
		Notes:    []string{"source-available; converts to an open license on the change date", "not OSI-approved"},
	},
}

// catalogByID indexes the catalog by lowercase canonical identifier.
var catalogByID = make(map[string]*CatalogEntry)

func init() {
	for i := range catalog {
		catalogByID[strings.ToLower(catalog[i].ID)] = &catalog[i]
	}
}

// Lookup returns the catalog entry for a canonical identifier. The lookup is
// case-insensitive. The returned entry is shared, read-only data; callers
// must not modify it.
func Lookup(id string) (*CatalogEntry, bool) {
	e, ok := catalogByID[strings.ToLower(id)]
	return e, ok
}

// Catalog returns the ordered list of known licenses. The returned slice is
// shared, read-only data; callers must not modify it.
func Catalog() []CatalogEntry {
	return catalog
}
