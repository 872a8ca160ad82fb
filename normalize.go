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
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// The diff/match/patch algorithm, used by the fuzzy matching tier.
var dmp = diffmatchpatch.New()

// Method identifies which matching tier produced a normalization result.
type Method string

const (
	// MethodDirect is an exact match against a catalog alias.
	MethodDirect Method = "direct"
	// MethodRegex is a match against one of the fixed high-precision patterns.
	MethodRegex Method = "regex"
	// MethodFuzzy is a similarity match against the catalog aliases.
	MethodFuzzy Method = "fuzzy"
	// MethodFallback is a slugified token that matched nothing.
	MethodFallback Method = "fallback"
)

const (
	// regexConfidence is the confidence assigned to pattern-tier matches.
	regexConfidence = 0.95
	// fuzzyThreshold is the minimum similarity the fuzzy tier accepts.
	fuzzyThreshold = 0.88
	// fallbackConfidence is the confidence of a slugified non-match.
	fallbackConfidence = 0.1
	// minLengthRatio eliminates aliases whose length differs too much from
	// the token's to plausibly match, before the expensive comparison.
	minLengthRatio = 0.75
)

// Normalization is the result of resolving one free-form license token to a
// canonical identifier.
type Normalization struct {
	// ID is the lowercase canonical identifier, or a best-effort slug when
	// nothing in the catalog matched.
	ID string
	// Confidence is in [0, 1]; 1.0 means an exact alias match. Each looser
	// tier reports a lower confidence.
	Confidence float64
	// Method names the tier that produced this result.
	Method Method
	// Category is the catalog category of the matched entry; Unknown when
	// no entry matched.
	Category Category
}

// matcher is one tier of the normalization chain. It returns nil when the
// tier has no answer for the token.
type matcher func(token string) *Normalization

// matchers are attempted in order; the first non-nil result wins. The order
// is the confidence order: exact, pattern, fuzzy, fallback.
var matchers = []matcher{matchDirect, matchPattern, matchFuzzy, matchFallback}

// Normalize resolves a free-form license token to a canonical identifier
// with a confidence score. It never fails: tokens that match nothing fall
// through to a low-confidence slug. An empty token returns nil, which
// callers must treat as "no license".
//
// A trailing "+" resolves to the "-or-later" variant of the base license.
// A "WITH <exception>" suffix is dropped; compliance is judged against the
// base license.
func Normalize(token string) *Normalization {
	cleaned := strings.ToLower(strings.TrimSpace(token))
	if cleaned == "" {
		return nil
	}
	if i := strings.Index(cleaned, " with "); i >= 0 {
		cleaned = strings.TrimSpace(cleaned[:i])
	}
	if r := matchDirect(cleaned); r != nil {
		return r
	}
	if strings.HasSuffix(cleaned, "+") {
		base := strings.TrimSpace(strings.TrimSuffix(cleaned, "+"))
		if base != "" {
			return promoteOrLater(normalizeCleaned(base))
		}
	}
	return normalizeCleaned(cleaned)
}

// normalizeCleaned runs the tier chain over an already-cleaned token.
func normalizeCleaned(token string) *Normalization {
	for _, m := range matchers {
		if r := m(token); r != nil {
			return r
		}
	}
	// Unreachable: the fallback tier always matches.
	return nil
}

// promoteOrLater rewrites a base-license result as its "-or-later" variant,
// keeping the base tier's confidence and preferring the variant's own
// catalog entry for the category when one exists.
func promoteOrLater(r *Normalization) *Normalization {
	if r == nil {
		return nil
	}
	id := orLaterID(r.ID)
	category := r.Category
	if e, ok := Lookup(id); ok {
		category = e.Category
	}
	return &Normalization{ID: id, Confidence: r.Confidence, Method: r.Method, Category: category}
}

// matchDirect returns an exact alias match with full confidence. The catalog
// is scanned in order, so earlier entries win ties.
func matchDirect(token string) *Normalization {
	for i := range catalog {
		e := &catalog[i]
		if strings.ToLower(e.ID) == token {
			return direct(e)
		}
		for _, a := range e.Aliases {
			if a == token {
				return direct(e)
			}
		}
	}
	return nil
}

func direct(e *CatalogEntry) *Normalization {
	return &Normalization{
		ID:         strings.ToLower(e.ID),
		Confidence: 1.0,
		Method:     MethodDirect,
		Category:   e.Category,
	}
}

// patterns are the fixed high-precision recognizers for common free-form
// phrasings. Order matters: "agpl" must be checked before "lgpl", and both
// before the bare "gpl" patterns, because the broader pattern would claim
// the narrower token.
var patterns = []struct {
	re *regexp.Regexp
	id string
}{
	{regexp.MustCompile(`affero|agpl`), "AGPL-3.0-only"},
	{regexp.MustCompile(`(lgpl|lesser general public license)[^0-9]*2\.1`), "LGPL-2.1-only"},
	{regexp.MustCompile(`(lgpl|lesser general public license)[^0-9]*v?3`), "LGPL-3.0-only"},
	{regexp.MustCompile(`(gpl|general public license)[^0-9]*v?3`), "GPL-3.0-only"},
	{regexp.MustCompile(`(gpl|general public license)[^0-9]*v?2`), "GPL-2.0-only"},
	{regexp.MustCompile(`(apache|asl)[^0-9]*2(\.0)?`), "Apache-2.0"},
	{regexp.MustCompile(`(3[- ]clause|three[- ]clause).*bsd|bsd.*(3[- ]clause|three[- ]clause)`), "BSD-3-Clause"},
	{regexp.MustCompile(`(2[- ]clause|two[- ]clause|simplified).*bsd|bsd.*(2[- ]clause|two[- ]clause)`), "BSD-2-Clause"},
	{regexp.MustCompile(`(mpl|mozilla public license)[^0-9]*2(\.0)?`), "MPL-2.0"},
	{regexp.MustCompile(`server side public license|sspl`), "SSPL-1.0"},
	{regexp.MustCompile(`(cc|creative commons).*(nc\b|non[- ]?commercial)`), "CC-BY-NC-4.0"},
}

// matchPattern returns the first pattern match at the fixed pattern-tier
// confidence.
func matchPattern(token string) *Normalization {
	for _, p := range patterns {
		if !p.re.MatchString(token) {
			continue
		}
		e, ok := Lookup(p.id)
		if !ok {
			continue
		}
		return &Normalization{
			ID:         strings.ToLower(e.ID),
			Confidence: regexConfidence,
			Method:     MethodRegex,
			Category:   e.Category,
		}
	}
	return nil
}

// matchFuzzy compares the token against every catalog alias and keeps the
// best similarity above the acceptance threshold. The confidence is the
// similarity itself. Earlier catalog entries win ties.
func matchFuzzy(token string) *Normalization {
	var best *CatalogEntry
	var bestScore float64
	for i := range catalog {
		e := &catalog[i]
		for _, a := range append([]string{strings.ToLower(e.ID)}, e.Aliases...) {
			if lengthRatio(token, a) < minLengthRatio {
				continue
			}
			if s := similarity(token, a); s > bestScore {
				best, bestScore = e, s
			}
		}
	}
	if best == nil || bestScore < fuzzyThreshold {
		return nil
	}
	return &Normalization{
		ID:         strings.ToLower(best.ID),
		Confidence: bestScore,
		Method:     MethodFuzzy,
		Category:   best.Category,
	}
}

// slugRE collapses every run of non-alphanumeric characters.
var slugRE = regexp.MustCompile(`[^a-z0-9]+`)

// matchFallback slugifies the token so downstream policy matching still has
// a stable identifier to work with. The category is unknown by definition:
// a fallback result never claims to know what the license means.
func matchFallback(token string) *Normalization {
	slug := strings.Trim(slugRE.ReplaceAllString(token, "-"), "-")
	if slug == "" {
		slug = "unknown"
	}
	return &Normalization{
		ID:         slug,
		Confidence: fallbackConfidence,
		Method:     MethodFallback,
		Category:   Unknown,
	}
}

// similarity computes a normalized similarity in [0, 1] between two strings
// from their Levenshtein distance: 1.0 is identical, 0.0 is a complete
// mismatch.
func similarity(a, b string) float64 {
	diffs := dmp.DiffMain(a, b, false)
	distance := dmp.DiffLevenshtein(diffs)
	return confidencePercentage(len(a), len(b), distance)
}

// confidencePercentage calculates how confident we are in the result of the
// match. A percentage of "1.0" means an identical match. A confidence of
// "0.0" means a complete mismatch.
func confidencePercentage(alen, blen, distance int) float64 {
	if alen == 0 && blen == 0 {
		return 1.0
	}
	if alen == 0 || blen == 0 || (distance > alen && distance > blen) {
		return 0.0
	}
	longest := alen
	if blen > longest {
		longest = blen
	}
	return 1.0 - float64(distance)/float64(longest)
}

// lengthRatio is the ratio of the shorter string's length to the longer's.
// Strings whose lengths differ greatly cannot be close matches.
func lengthRatio(a, b string) float64 {
	x, y := len(a), len(b)
	if x == 0 && y == 0 {
		return 1.0
	}
	if x < y {
		return float64(x) / float64(y)
	}
	return float64(y) / float64(x)
}
