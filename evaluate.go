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

// Package licensepolicy decides whether a dependency's license is acceptable
// under a caller-supplied allow/deny policy, and which obligations it
// imposes. It normalizes free-form license strings ("MIT", "Apache Software
// License", "(MIT OR Apache-2.0)") to canonical identifiers with a
// confidence score, evaluates boolean license expressions against the
// policy, derives obligations and a risk score, and checks pairwise
// compatibility with the project's own license.
//
// Example Usage:
//
//	policy := licensepolicy.NewPolicy(
//		[]string{"MIT", "Apache-2.0", "BSD-3-Clause"},
//		[]string{"AGPL-3.0-only"},
//		"mit",
//	)
//	result := licensepolicy.Evaluate("(MIT OR GPL-3.0-only)", policy)
//	log.Printf("%s: %s (risk %.2f)", result.Status, result.Reason, result.RiskScore)
//
// Evaluate is a pure function of its inputs and the static catalog tables;
// it performs no I/O and is safe for concurrent use.
package licensepolicy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/licensepolicy/internal/sets"
)

// Status is the outcome of a policy evaluation.
type Status string

const (
	// StatusCompliant means the policy allows the license expression.
	StatusCompliant Status = "compliant"
	// StatusNonCompliant means the policy denies the license expression.
	StatusNonCompliant Status = "non-compliant"
	// StatusUnknown means the policy has no verdict; a human should triage.
	StatusUnknown Status = "unknown"
)

// invalidRisk is the risk assigned when there is no license information at
// all.
const invalidRisk = 0.7

// Policy is the caller-supplied allow/deny configuration for an evaluation.
// Identifiers must be lowercase canonical ids; NewPolicy takes care of that.
// An "-or-later" entry covers the whole base family from that version up, on
// both the allow and the deny side.
type Policy struct {
	Allowed []string
	Denied  []string
	// MainLicense optionally names the project's own license. When set,
	// every resolved dependency license is checked for compatibility
	// against it.
	MainLicense string
}

// NewPolicy builds a Policy, lowercasing and trimming every identifier so
// the matching contract cannot be violated by caller-supplied casing.
func NewPolicy(allowed, denied []string, mainLicense string) Policy {
	return Policy{
		Allowed:     lowerAll(allowed),
		Denied:      lowerAll(denied),
		MainLicense: strings.ToLower(strings.TrimSpace(mainLicense)),
	}
}

func lowerAll(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.ToLower(strings.TrimSpace(id)); id != "" {
			out = append(out, id)
		}
	}
	return out
}

// TraceEntry records how one token of the expression was resolved, for audit
// and debugging.
type TraceEntry struct {
	Token      string
	ID         string
	Confidence float64
	Method     Method
	Category   Category
}

// CompatibilityIssue records a dependency license that cannot be combined
// with the project's main license.
type CompatibilityIssue struct {
	// From is the dependency license.
	From string
	// To is the project's main license.
	To string
}

// EvaluationResult is the verdict for one license expression.
type EvaluationResult struct {
	Status Status
	// Reason names the token or rule that decided the status.
	Reason string
	// RiskScore is in [0, 1]; see Score for how leaf risk is derived. OR
	// picks the least risky alternative, AND assumes the worst.
	RiskScore float64
	// Obligations accumulated from every license in the expression,
	// deduplicated, highest risk first.
	Obligations []Obligation
	// Trace holds one entry per token, in evaluation order.
	Trace []TraceEntry
	// Warnings are catalog caveats and compatibility complaints, sorted.
	Warnings []string
	// Suggestions are actionable remediation hints, sorted.
	Suggestions []string
	// CompatibilityIssues lists dependency licenses that clash with the
	// main license, in evaluation order.
	CompatibilityIssues []CompatibilityIssue
}

// Evaluate parses a license expression and evaluates it against the policy.
// It never fails: missing or unusable input yields StatusUnknown with a
// fixed risk score, and malformed expression structure degrades to opaque
// tokens that resolve with low confidence.
//
// Obligations, warnings, suggestions and compatibility issues accumulate
// from every leaf of the expression, not only the branch that decided the
// verdict: an OR alternative the policy rejects still tells a reviewer
// something about the dependency.
func Evaluate(expression string, policy Policy) EvaluationResult {
	if invalidExpression(expression) {
		return EvaluationResult{
			Status:      StatusUnknown,
			Reason:      "no license information available",
			RiskScore:   invalidRisk,
			Warnings:    []string{"the dependency's license could not be determined"},
			Suggestions: []string{"verify the dependency's license manually"},
		}
	}

	e := newEvaluation(policy)
	v := e.evalNode(Parse(expression))

	sort.SliceStable(e.obligations, func(i, j int) bool {
		return e.obligations[i].RiskLevel > e.obligations[j].RiskLevel
	})
	return EvaluationResult{
		Status:              v.status,
		Reason:              v.reason,
		RiskScore:           v.risk,
		Obligations:         e.obligations,
		Trace:               e.trace,
		Warnings:            e.warnings.Sorted(),
		Suggestions:         e.suggestions.Sorted(),
		CompatibilityIssues: e.issues,
	}
}

// invalidExpression recognizes input that carries no license information:
// empty strings, placeholder values, and upstream fetch-error sentinels.
// These short-circuit the evaluation without attempting to parse.
func invalidExpression(expression string) bool {
	s := strings.ToLower(strings.TrimSpace(expression))
	return s == "" || s == "n/a" || s == "unknown" || strings.HasPrefix(s, "error")
}

// verdict is the per-node outcome propagated up the expression tree.
type verdict struct {
	status Status
	reason string
	risk   float64
}

// evaluation accumulates the leaf-level findings of one tree walk. The
// dedup sets keep accumulation linear in the number of leaves.
type evaluation struct {
	policy  Policy
	allowed *sets.StringSet
	denied  *sets.StringSet

	trace       []TraceEntry
	obligations []Obligation
	obKeys      *sets.StringSet
	warnings    *sets.StringSet
	suggestions *sets.StringSet
	issues      []CompatibilityIssue
	issueKeys   *sets.StringSet
}

func newEvaluation(policy Policy) *evaluation {
	return &evaluation{
		policy:      policy,
		allowed:     sets.NewStringSet(lowerAll(policy.Allowed)...),
		denied:      sets.NewStringSet(lowerAll(policy.Denied)...),
		obKeys:      sets.NewStringSet(),
		warnings:    sets.NewStringSet(),
		suggestions: sets.NewStringSet(),
		issueKeys:   sets.NewStringSet(),
	}
}

func (e *evaluation) evalNode(n *Node) verdict {
	if n.IsLeaf() {
		return e.evalLeaf(n.Token)
	}

	verdicts := make([]verdict, 0, len(n.Children))
	for _, child := range n.Children {
		verdicts = append(verdicts, e.evalNode(child))
	}
	if n.Op == OpOr {
		return combineOr(verdicts)
	}
	return combineAnd(verdicts)
}

// evalLeaf normalizes a single token, records its trace, obligations and
// compatibility findings, and classifies it against the policy. Denial
// always takes precedence over an allow match on the same token.
func (e *evaluation) evalLeaf(token string) verdict {
	n := Normalize(token)
	if n == nil {
		e.warnings.Insert("an empty license token was encountered")
		e.suggestions.Insert("verify the dependency's license manually")
		return verdict{
			status: StatusUnknown,
			reason: "empty license token",
			risk:   invalidRisk,
		}
	}

	e.trace = append(e.trace, TraceEntry{
		Token:      token,
		ID:         n.ID,
		Confidence: n.Confidence,
		Method:     n.Method,
		Category:   n.Category,
	})
	risk := Score(n)

	for _, ob := range obligationsFor(n.Category) {
		if !e.obKeys.Contains(ob.Key) {
			e.obKeys.Insert(ob.Key)
			e.obligations = append(e.obligations, ob)
		}
	}
	if entry, ok := Lookup(n.ID); ok {
		for _, note := range entry.Notes {
			e.warnings.Insert(fmt.Sprintf("%s: %s", n.ID, note))
		}
	}
	e.checkCompatibility(n)

	switch {
	case e.deniedBy(n.ID):
		e.suggestions.Insert(fmt.Sprintf("replace the dependency or seek an exception for %s", n.ID))
		return verdict{
			status: StatusNonCompliant,
			reason: fmt.Sprintf("license %q is denied by policy", n.ID),
			risk:   risk,
		}
	case e.allowedBy(n.ID):
		return verdict{
			status: StatusCompliant,
			reason: fmt.Sprintf("license %q is allowed by policy", n.ID),
			risk:   risk,
		}
	default:
		e.suggestions.Insert(fmt.Sprintf("triage license %s and add it to the allow or deny list", n.ID))
		return verdict{
			status: StatusUnknown,
			reason: fmt.Sprintf("license %q is not covered by policy", n.ID),
			risk:   risk,
		}
	}
}

// checkCompatibility records a warning and an issue when the resolved
// license cannot be combined with the project's main license. Unknown
// categories are skipped: there is no point reporting a clash with a
// license we could not even identify.
func (e *evaluation) checkCompatibility(n *Normalization) {
	main := e.policy.MainLicense
	if main == "" || n.Category == Unknown {
		return
	}
	if IsCompatible(main, n.ID) {
		return
	}
	key := n.ID + "->" + main
	if e.issueKeys.Contains(key) {
		return
	}
	e.issueKeys.Insert(key)
	e.issues = append(e.issues, CompatibilityIssue{From: n.ID, To: main})
	e.warnings.Insert(fmt.Sprintf("%s may be incompatible with the project license %s", n.ID, main))
}

// deniedBy reports whether the policy denies the identifier, either exactly
// or through an "-or-later" family entry that covers its version.
func (e *evaluation) deniedBy(id string) bool {
	if e.denied.Contains(id) {
		return true
	}
	for _, d := range e.denied.Elements() {
		if familyCovers(d, id) {
			return true
		}
	}
	return false
}

// allowedBy reports whether the policy allows the identifier, either exactly
// or through an "-or-later" family entry that covers its version.
func (e *evaluation) allowedBy(id string) bool {
	if e.allowed.Contains(id) {
		return true
	}
	for _, a := range e.allowed.Elements() {
		if familyCovers(a, id) {
			return true
		}
	}
	return false
}

// combineOr resolves an OR node: one compliant alternative satisfies the
// node, and the risk is the risk of the safest alternative available.
func combineOr(verdicts []verdict) verdict {
	var best *verdict
	for i := range verdicts {
		v := &verdicts[i]
		if v.status != StatusCompliant {
			continue
		}
		if best == nil || v.risk < best.risk {
			best = v
		}
	}
	if best != nil {
		return verdict{
			status: StatusCompliant,
			reason: "at least one OR alternative is compliant",
			risk:   best.risk,
		}
	}

	allDenied := true
	maxRisk := 0.0
	for _, v := range verdicts {
		if v.status != StatusNonCompliant {
			allDenied = false
		}
		if v.risk > maxRisk {
			maxRisk = v.risk
		}
	}
	if allDenied {
		return verdict{
			status: StatusNonCompliant,
			reason: "no OR alternative is compliant",
			risk:   maxRisk,
		}
	}
	return verdict{
		status: StatusUnknown,
		reason: "no OR alternative is known to be compliant",
		risk:   maxRisk,
	}
}

// combineAnd resolves an AND node: every operand must be satisfied, and the
// risk is the worst operand's, since every obligation applies.
func combineAnd(verdicts []verdict) verdict {
	maxRisk := 0.0
	for _, v := range verdicts {
		if v.risk > maxRisk {
			maxRisk = v.risk
		}
	}
	for _, v := range verdicts {
		if v.status == StatusNonCompliant {
			return verdict{
				status: StatusNonCompliant,
				reason: fmt.Sprintf("AND operand rejected: %s", v.reason),
				risk:   maxRisk,
			}
		}
	}
	for _, v := range verdicts {
		if v.status != StatusCompliant {
			return verdict{
				status: StatusUnknown,
				reason: fmt.Sprintf("AND operand unresolved: %s", v.reason),
				risk:   maxRisk,
			}
		}
	}
	return verdict{
		status: StatusCompliant,
		reason: "all AND operands are compliant",
		risk:   maxRisk,
	}
}
