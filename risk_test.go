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

func TestScore_CategoryOrdering(t *testing.T) {
	// Most to least risky at full confidence.
	order := []Category{
		Proprietary, NetworkCopyleft, StrongCopyleft,
		NonCommercial, WeakCopyleft, Permissive,
	}
	for i := 1; i < len(order); i++ {
		higher := Score(&Normalization{Category: order[i-1], Confidence: 1.0})
		lower := Score(&Normalization{Category: order[i], Confidence: 1.0})
		if higher <= lower {
			t.Errorf("Score(%s) = %v, want greater than Score(%s) = %v",
				order[i-1], higher, order[i], lower)
		}
	}

	// Unknown sits between strong copyleft and network copyleft: an
	// un-vetted license may hide anything.
	unknown := Score(&Normalization{Category: Unknown, Confidence: 1.0})
	strong := Score(&Normalization{Category: StrongCopyleft, Confidence: 1.0})
	network := Score(&Normalization{Category: NetworkCopyleft, Confidence: 1.0})
	if unknown <= strong || unknown >= network {
		t.Errorf("Score(unknown) = %v, want between %v and %v", unknown, strong, network)
	}
}

func TestScore_ConfidenceUplift(t *testing.T) {
	sure := Score(&Normalization{Category: Permissive, Confidence: 1.0})
	unsure := Score(&Normalization{Category: Permissive, Confidence: 0.5})
	if want := sure + 0.25; unsure != want {
		t.Errorf("Score(permissive, 0.5) = %v, want %v", unsure, want)
	}
}

func TestScore_Capped(t *testing.T) {
	// An unknown category at fallback confidence would exceed 1 without
	// the cap.
	got := Score(&Normalization{Category: Unknown, Confidence: fallbackConfidence})
	if got != 1.0 {
		t.Errorf("Score(unknown, %v) = %v, want 1.0", fallbackConfidence, got)
	}
	for c := range categoryRisk {
		if s := Score(&Normalization{Category: c, Confidence: 0}); s > 1 {
			t.Errorf("Score(%s, 0) = %v, want at most 1", c, s)
		}
	}
}
