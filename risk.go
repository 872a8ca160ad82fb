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

// categoryRisk is the base risk per category. The ordering is the point:
// proprietary > network-copyleft > strong-copyleft > non-commercial >
// weak-copyleft > permissive. Unknown sits mid-high because an un-vetted
// license may hide anything.
var categoryRisk = map[Category]float64{
	Permissive:      0.05,
	WeakCopyleft:    0.25,
	NonCommercial:   0.45,
	StrongCopyleft:  0.55,
	Unknown:         0.6,
	NetworkCopyleft: 0.75,
	Proprietary:     0.9,
}

// Score maps a normalization to a risk value in [0, 1]. Lower normalization
// confidence raises the score: an uncertain identification deserves more
// scrutiny than a sure one. The result is capped at 1.
func Score(n *Normalization) float64 {
	s := categoryRisk[n.Category] + (1-n.Confidence)*0.5
	if s > 1 {
		s = 1
	}
	return s
}
