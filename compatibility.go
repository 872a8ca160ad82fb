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

	"github.com/google/licensepolicy/internal/sets"
)

// compatEntry lists which dependency licenses a project license can
// incorporate. any marks project licenses that can absorb everything the
// catalog knows about.
type compatEntry struct {
	any  bool
	with *sets.StringSet
}

// permissiveDeps are the dependency licenses any open project can take in
// without changing its own terms.
var permissiveDeps = []string{
	"mit", "apache-2.0", "apache-1.1", "bsd-2-clause", "bsd-3-clause",
	"bsd-4-clause", "isc", "unlicense", "wtfpl", "hpnd", "zlib", "cc0-1.0",
	"cc-by-4.0", "json",
}

// compatibility approximates which dependency licenses may be incorporated
// into a project under a given license. It is a coarse heuristic, not legal
// advice: it does not model dual licensing, additional permissions, or
// exception clauses. Missing project licenses are treated as incompatible
// with everything, on the grounds that no news is not good news.
var compatibility = map[string]compatEntry{
	// Permissive projects can absorb permissive and weak-copyleft code;
	// pulling in strong or network copyleft would force relicensing.
	"mit":          {with: permissiveProject()},
	"apache-2.0":   {with: permissiveProject()},
	"bsd-2-clause": {with: permissiveProject()},
	"bsd-3-clause": {with: permissiveProject()},
	"isc":          {with: permissiveProject()},
	"zlib":         {with: permissiveProject()},
	"unlicense":    {with: permissiveProject()},

	// Weak-copyleft projects.
	"mpl-2.0":       {with: sets.NewStringSet(append(permissiveDeps, "mpl-2.0")...)},
	"epl-2.0":       {with: sets.NewStringSet(append(permissiveDeps, "epl-2.0")...)},
	"lgpl-2.1-only": {with: sets.NewStringSet(append(permissiveDeps, "lgpl-2.1-only", "lgpl-2.1-or-later")...)},
	"lgpl-3.0-only": {with: sets.NewStringSet(append(permissiveDeps, "mpl-2.0", "lgpl-2.1-or-later", "lgpl-3.0-only", "lgpl-3.0-or-later")...)},

	// GPLv2 projects famously cannot take Apache-2.0 code.
	"gpl-2.0-only": {with: sets.NewStringSet(
		"mit", "bsd-2-clause", "bsd-3-clause", "isc", "zlib", "unlicense",
		"cc0-1.0", "hpnd", "wtfpl",
		"lgpl-2.1-only", "lgpl-2.1-or-later",
		"gpl-2.0-only", "gpl-2.0-or-later",
	)},
	"gpl-3.0-only": {with: sets.NewStringSet(append(permissiveDeps,
		"mpl-2.0",
		"lgpl-2.1-only", "lgpl-2.1-or-later", "lgpl-3.0-only", "lgpl-3.0-or-later",
		"gpl-2.0-or-later", "gpl-3.0-only", "gpl-3.0-or-later",
	)...)},

	// Network copyleft is the most demanding set of terms in the catalog;
	// in this approximation such projects can absorb anything.
	"agpl-3.0-only": {any: true},
}

// permissiveProject builds the dependency set shared by all permissive
// project licenses.
func permissiveProject() *sets.StringSet {
	return sets.NewStringSet(append(permissiveDeps, "mpl-2.0", "epl-2.0",
		"lgpl-2.1-only", "lgpl-2.1-or-later", "lgpl-3.0-only", "lgpl-3.0-or-later")...)
}

// IsCompatible reports whether a dependency licensed under depID may be
// incorporated into a project licensed under projectID. Unknown project
// licenses are conservatively incompatible with everything.
func IsCompatible(projectID, depID string) bool {
	e, ok := compatibility[strings.ToLower(projectID)]
	if !ok {
		return false
	}
	if e.any {
		return true
	}
	return e.with.Contains(strings.ToLower(depID))
}
