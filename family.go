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
	"regexp"
	"strconv"
	"strings"
)

// family is the versioned-license view of a canonical identifier:
// "gpl-2.0-or-later" has base "gpl", version 2.0 and permits later versions.
// Identifiers without a version suffix (e.g. "mit", "bsd-3-clause") have no
// family.
type family struct {
	base    string
	version float64
	orLater bool
}

var familyRE = regexp.MustCompile(`^(.+?)-(\d+(?:\.\d+)?)(-only|-or-later)?$`)

// parseFamily splits a lowercase canonical identifier into its license
// family, reporting false for identifiers that do not carry a version.
func parseFamily(id string) (family, bool) {
	m := familyRE.FindStringSubmatch(id)
	if m == nil {
		return family{}, false
	}
	v, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return family{}, false
	}
	return family{base: m[1], version: v, orLater: m[3] == "-or-later"}, true
}

// familyCovers reports whether an "-or-later" policy entry covers the given
// identifier: same base and a version at or above the entry's. An entry that
// is not an "-or-later" variant covers nothing beyond its exact identifier.
func familyCovers(policyID, id string) bool {
	pf, ok := parseFamily(policyID)
	if !ok || !pf.orLater {
		return false
	}
	f, ok := parseFamily(id)
	if !ok {
		return false
	}
	return f.base == pf.base && f.version >= pf.version
}

// orLaterID converts a canonical identifier to its "-or-later" variant.
func orLaterID(id string) string {
	switch {
	case strings.HasSuffix(id, "-or-later"):
		return id
	case strings.HasSuffix(id, "-only"):
		return strings.TrimSuffix(id, "-only") + "-or-later"
	default:
		return id + "-or-later"
	}
}
