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

// RiskLevel ranks an obligation for presentation, highest first.
type RiskLevel int

const (
	// RiskLow marks routine duties, such as keeping notices intact.
	RiskLow RiskLevel = iota
	// RiskMedium marks duties that constrain how changes are handled.
	RiskMedium
	// RiskHigh marks duties that constrain the whole work or its use.
	RiskHigh
)

func (l RiskLevel) String() string {
	switch l {
	case RiskHigh:
		return "high"
	case RiskMedium:
		return "medium"
	default:
		return "low"
	}
}

// Obligation is one legal duty a license imposes on its consumer.
type Obligation struct {
	// Key is the stable identity used for deduplication across an
	// evaluation.
	Key string
	// Summary is the human-readable statement of the duty.
	Summary string
	// RiskLevel ranks how much the duty constrains the consumer.
	RiskLevel RiskLevel
}

// obligationRule binds an obligation to the license categories that impose
// it.
type obligationRule struct {
	ob         Obligation
	categories []Category
}

// obligationRules is the category-keyed duty table the evaluator draws from.
// Obligations are modeled per category rather than per license; that is an
// approximation in the same spirit as the compatibility table.
var obligationRules = []obligationRule{
	{
		ob:         Obligation{Key: "retain-notice", Summary: "Retain copyright and license notices in distributions", RiskLevel: RiskLow},
		categories: []Category{Permissive, WeakCopyleft, StrongCopyleft, NetworkCopyleft},
	},
	{
		ob:         Obligation{Key: "state-changes", Summary: "Mark modified files as changed", RiskLevel: RiskLow},
		categories: []Category{WeakCopyleft, StrongCopyleft, NetworkCopyleft},
	},
	{
		ob:         Obligation{Key: "disclose-modified", Summary: "Disclose the source of modified files under the same terms", RiskLevel: RiskMedium},
		categories: []Category{WeakCopyleft},
	},
	{
		ob:         Obligation{Key: "disclose-source", Summary: "Disclose complete corresponding source when distributing", RiskLevel: RiskHigh},
		categories: []Category{StrongCopyleft, NetworkCopyleft},
	},
	{
		ob:         Obligation{Key: "same-license", Summary: "Distribute derived works under the same license", RiskLevel: RiskHigh},
		categories: []Category{StrongCopyleft, NetworkCopyleft},
	},
	{
		ob:         Obligation{Key: "network-source", Summary: "Offer source to users who interact with the software over a network", RiskLevel: RiskHigh},
		categories: []Category{NetworkCopyleft},
	},
	{
		ob:         Obligation{Key: "no-commercial", Summary: "Do not use the software commercially", RiskLevel: RiskHigh},
		categories: []Category{NonCommercial},
	},
	{
		ob:         Obligation{Key: "licensor-agreement", Summary: "Obtain a separate agreement from the licensor before use", RiskLevel: RiskHigh},
		categories: []Category{Proprietary},
	},
}

// obligationsFor returns the obligations licenses of the given category
// impose, in table order.
func obligationsFor(c Category) []Obligation {
	var obs []Obligation
	for _, rule := range obligationRules {
		for _, rc := range rule.categories {
			if rc == c {
				obs = append(obs, rule.ob)
				break
			}
		}
	}
	return obs
}
