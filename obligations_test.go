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

func obligationKeys(obs []Obligation) []string {
	keys := make([]string, 0, len(obs))
	for _, ob := range obs {
		keys = append(keys, ob.Key)
	}
	return keys
}

func TestObligationsFor(t *testing.T) {
	tests := []struct {
		category Category
		want     []string
	}{
		{Permissive, []string{"retain-notice"}},
		{WeakCopyleft, []string{"retain-notice", "state-changes", "disclose-modified"}},
		{StrongCopyleft, []string{"retain-notice", "state-changes", "disclose-source", "same-license"}},
		{NetworkCopyleft, []string{"retain-notice", "state-changes", "disclose-source", "same-license", "network-source"}},
		{NonCommercial, []string{"no-commercial"}},
		{Proprietary, []string{"licensor-agreement"}},
		{Unknown, nil},
	}
	for _, tt := range tests {
		got := obligationKeys(obligationsFor(tt.category))
		if len(got) != len(tt.want) {
			t.Errorf("obligationsFor(%s) = %v, want %v", tt.category, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("obligationsFor(%s)[%d] = %q, want %q", tt.category, i, got[i], tt.want[i])
			}
		}
	}
}

func TestObligationRules_UniqueKeys(t *testing.T) {
	seen := make(map[string]bool)
	for _, rule := range obligationRules {
		if seen[rule.ob.Key] {
			t.Errorf("obligation key %q appears twice", rule.ob.Key)
		}
		seen[rule.ob.Key] = true
		if rule.ob.Summary == "" {
			t.Errorf("obligation %q has no summary", rule.ob.Key)
		}
		if len(rule.categories) == 0 {
			t.Errorf("obligation %q applies to no category", rule.ob.Key)
		}
	}
}

func TestRiskLevel_String(t *testing.T) {
	tests := []struct {
		level RiskLevel
		want  string
	}{
		{RiskHigh, "high"},
		{RiskMedium, "medium"},
		{RiskLow, "low"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("RiskLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}
