// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package unwind

import (
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/dh73/hw-cbmc/pkg/expr"
)

// ObligationMap is the ordered mapping timeframe -> obligations.
// Obligations at the same timeframe are combined by conjunction on read
// (via At's caller); the map itself just accumulates.
type ObligationMap struct {
	entries map[int][]expr.Expr
}

// NewObligationMap returns an empty ObligationMap.
func NewObligationMap() *ObligationMap {
	return &ObligationMap{entries: make(map[int][]expr.Expr)}
}

// Add attaches e as an obligation of timeframe t.
func (m *ObligationMap) Add(t int, e expr.Expr) {
	m.entries[t] = append(m.entries[t], e)
}

// Union merges other's entries into m.
func (m *ObligationMap) Union(other *ObligationMap) {
	if other == nil {
		return
	}
	for t, es := range other.entries {
		m.entries[t] = append(m.entries[t], es...)
	}
}

// Timeframes returns every timeframe with at least one obligation, sorted
// ascending.
func (m *ObligationMap) Timeframes() []int {
	ts := make([]int, 0, len(m.entries))
	for t := range m.entries {
		ts = append(ts, t)
	}
	sort.Ints(ts)
	return ts
}

// At returns the obligations attached to timeframe t, or nil if none.
func (m *ObligationMap) At(t int) []expr.Expr {
	return m.entries[t]
}

// PropertyObligations is the top-level entry point, which always starts
// recursion at timeframe 0.
func PropertyObligations(phi expr.Expr, bound int, ns Namespace) (*ObligationMap, error) {
	return propertyObligationsRec(phi, 0, bound, ns)
}

func propertyObligationsRec(phi expr.Expr, current, bound int, ns Namespace) (*ObligationMap, error) {
	switch v := phi.(type) {
	case *expr.AG:
		return obligationsOverRange(v.Op, current, bound, ns)
	case *expr.G:
		return obligationsOverRange(v.Op, current, bound, ns)
	case *expr.SVAAlways:
		return obligationsOverRange(v.Op, current, bound, ns)

	case *expr.AF:
		return livenessObligations(v.Op, current, bound, ns)
	case *expr.F:
		return livenessObligations(v.Op, current, bound, ns)
	case *expr.SVASEventually:
		return livenessObligations(v.Op, current, bound, ns)

	case *expr.SVARangedAlways:
		return rangedAlwaysObligations(v.Lo, v.Hi, v.Op, bound, ns)
	case *expr.SVASAlways:
		return rangedAlwaysObligations(v.Lo, v.Hi, v.Op, bound, ns)

	case *expr.And:
		obligations := NewObligationMap()
		for _, conjunct := range v.Args {
			rec, err := propertyObligationsRec(conjunct, current, bound, ns)
			if err != nil {
				return nil, err
			}
			obligations.Union(rec)
		}
		return obligations, nil

	case *expr.X:
		return instantiateAsObligation(phi, current, bound, ns)
	case *expr.AX:
		return instantiateAsObligation(phi, current, bound, ns)

	default:
		return instantiateAsObligation(phi, current, bound, ns)
	}
}

// instantiateAsObligation instantiates phi at current and records the
// result as its sole obligation at that timeframe. X and AX route here
// explicitly since Instantiate itself performs their current+1 shift;
// every other kind with no dedicated obligation-generator case (plain
// boolean structure, or a bare temporal atom already reduced to one) also
// falls through here.
func instantiateAsObligation(phi expr.Expr, current, bound int, ns Namespace) (*ObligationMap, error) {
	inst, err := Instantiate(phi, current, bound, ns)
	if err != nil {
		return nil, err
	}
	obligations := NewObligationMap()
	obligations.Add(current, inst)
	return obligations, nil
}

// obligationsOverRange implements the AG/G/sva_always case: for each t in
// [current, bound), recurse on op at t and union.
func obligationsOverRange(op expr.Expr, current, bound int, ns Namespace) (*ObligationMap, error) {
	obligations := NewObligationMap()
	for t := current; t < bound; t++ {
		rec, err := propertyObligationsRec(op, t, bound, ns)
		if err != nil {
			return nil, err
		}
		obligations.Union(rec)
	}
	return obligations, nil
}

// livenessObligations implements the AF/F/sva_s_eventually case. For
// N == 1 (current+1 == bound) the outer loop is empty and no obligation
// is produced.
func livenessObligations(op expr.Expr, current, bound int, ns Namespace) (*ObligationMap, error) {
	obligations := NewObligationMap()
	for k := current + 1; k < bound; k++ {
		for l := current; l < k; l++ {
			disjuncts := []expr.Expr{expr.NewNot(LassoSymbol(l, k))}
			for j := current; j <= k; j++ {
				inst, err := Instantiate(op, j, bound, ns)
				if err != nil {
					return nil, err
				}
				disjuncts = append(disjuncts, inst)
			}
			obligations.Add(k, expr.NewOr(disjuncts...))
			log.WithFields(log.Fields{"k": k, "l": l}).Debug("emitted liveness obligation")
		}
	}
	return obligations, nil
}

// rangedAlwaysObligations implements the sva_ranged_always/sva_s_always
// case: from = max(0, lo); to = bound-1 when hi is infinity, else
// min(hi, bound-1); recurse on op over [from, to].
func rangedAlwaysObligations(lo, hi, op expr.Expr, bound int, ns Namespace) (*ObligationMap, error) {
	loInt, err := signedBoundToInt(lo)
	if err != nil {
		return nil, err
	}

	to := bound - 1
	if _, isInf := hi.(expr.Infinity); !isInf {
		hiInt, err := boundToInt(hi)
		if err != nil {
			return nil, err
		}
		to = min(hiInt, bound-1)
	}
	from := max(0, loInt)

	obligations := NewObligationMap()
	for c := from; c <= to; c++ {
		rec, err := propertyObligationsRec(op, c, bound, ns)
		if err != nil {
			return nil, err
		}
		obligations.Union(rec)
	}
	return obligations, nil
}
