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

// Operator distinguishes the combinator kinds of an expression node.
type Operator string

const (
	// OpAnd requires every child to be satisfied.
	OpAnd Operator = "AND"
	// OpOr requires at least one child to be satisfied.
	OpOr Operator = "OR"
)

// Node is one node of a parsed license expression: either a leaf holding a
// single raw token, or an AND/OR combinator holding ordered children. Leaves
// have an empty Op and no children.
type Node struct {
	Op       Operator
	Token    string
	Children []*Node
}

// IsLeaf reports whether the node is a single raw token.
func (n *Node) IsLeaf() bool { return n.Op == "" }

// Parse builds an expression tree from a license expression string.
//
// The grammar is deliberately simpler than full SPDX expression syntax:
// top-level splitting is attempted for AND first and, only when no top-level
// AND exists, for OR. Mixed expressions like "A AND B OR C" therefore parse
// as AND(A, OR(B, C)) rather than by boolean precedence. Real-world license
// expressions almost always use a single operator, and the mixed case has no
// established interpretation to prefer.
//
// Operators are case-insensitive, a "/" separator is treated as OR, and
// redundant outer parentheses are stripped. Parse never fails: input whose
// structure cannot be understood (e.g. unbalanced parentheses) is kept whole
// as a single opaque leaf for the normalizer to judge.
func Parse(expression string) *Node {
	// "/" is a common non-SPDX alternative separator in manifests,
	// e.g. "MIT/Apache-2.0".
	expression = strings.ReplaceAll(expression, "/", " OR ")
	return parseExpr(expression)
}

func parseExpr(s string) *Node {
	s = stripOuterParens(strings.TrimSpace(s))
	if parts := splitTopLevel(s, "and"); parts != nil {
		return &Node{Op: OpAnd, Children: parseAll(parts)}
	}
	if parts := splitTopLevel(s, "or"); parts != nil {
		return &Node{Op: OpOr, Children: parseAll(parts)}
	}
	return &Node{Token: s}
}

func parseAll(parts []string) []*Node {
	children := make([]*Node, 0, len(parts))
	for _, p := range parts {
		children = append(children, parseExpr(p))
	}
	return children
}

// splitTopLevel splits s on the given operator word wherever it occurs
// outside parentheses. It returns nil when no top-level occurrence exists,
// so that "(A OR B) AND C" splits on AND but never inside the group.
func splitTopLevel(s, op string) []string {
	sep := " " + op + " "

	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		default:
			// Compare in place rather than against a lowercased copy:
			// lowercasing can change byte length for some Unicode
			// characters, and a shifted index would misread tokens.
			if depth == 0 && i+len(sep) <= len(s) && strings.EqualFold(s[i:i+len(sep)], sep) {
				parts = append(parts, s[start:i])
				start = i + len(sep)
				i = start - 1
			}
		}
	}
	if parts == nil {
		return nil
	}
	return append(parts, s[start:])
}

// stripOuterParens removes parentheses that enclose the whole expression, so
// "(X)" parses the same as "X". Parentheses that close before the end (as in
// "(A) AND (B)") are left alone.
func stripOuterParens(s string) string {
	for len(s) > 1 && s[0] == '(' && s[len(s)-1] == ')' {
		depth := 0
		whole := true
		for i := 0; i < len(s)-1; i++ {
			switch s[i] {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					whole = false
				}
			}
		}
		if !whole || depth != 1 {
			return s
		}
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}
