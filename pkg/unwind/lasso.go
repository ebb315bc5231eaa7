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
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/dh73/hw-cbmc/pkg/expr"
)

// LassoIdentifier renders a lasso identifier as `lasso::<i>-back-to-<k>`.
func LassoIdentifier(k, i int) string {
	return fmt.Sprintf("lasso::%d-back-to-%d", i, k)
}

// LassoSymbol returns the fresh boolean symbol standing for "the trace
// loops from timeframe i back to timeframe k". It panics if
// k >= i: every caller in this package only ever asks for a lasso symbol
// over a pair it has already established is properly ordered, and a
// mis-ordered pair here is a programming error, not malformed input.
func LassoSymbol(k, i int) expr.Symbol {
	if k >= i {
		panic(fmt.Sprintf("unwind: LassoSymbol: k must be < i, got k=%d i=%d", k, i))
	}
	return expr.Symbol{Id: LassoIdentifier(k, i), Tp: expr.Bool}
}

// comparisonVector builds the comparison vector V: every symbol of
// module's symbol table flagged as a state variable, followed by every
// port of module that is an input but not an output.
func comparisonVector(ns Namespace, module string) ([]expr.Symbol, error) {
	mod, err := ns.LookupModule(module)
	if err != nil {
		return nil, err
	}

	var v []expr.Symbol
	for _, sym := range ns.SymbolsByModule(module) {
		if sym.IsStateVar {
			v = append(v, expr.Symbol{Id: sym.Name, Tp: sym.Type})
		}
	}
	for _, port := range mod.Ports {
		if port.Input && !port.Output {
			v = append(v, expr.Symbol{Id: port.Identifier, Tp: port.Type})
		}
	}
	return v, nil
}

// StatesEqual builds states_equal(k,i): the conjunction of v@i == v@k
// over every v in the comparison vector.
func StatesEqual(k, i int, v []expr.Symbol) expr.Expr {
	conjuncts := make([]expr.Expr, len(v))
	for idx, sym := range v {
		conjuncts[idx] = &expr.Equal{
			Lhs: expr.TimeframeSymbol(i, sym),
			Rhs: expr.TimeframeSymbol(k, sym),
		}
	}
	return expr.NewAnd(conjuncts...)
}

// RequiresLassoConstraints reports whether phi contains an operator whose
// unwinding needs lasso reasoning: sva_until, sva_s_until,
// sva_eventually, sva_s_eventually, AF, F.
func RequiresLassoConstraints(phi expr.Expr) bool {
	return expr.HasSubexpr(phi, func(e expr.Expr) bool {
		switch e.(type) {
		case *expr.F, *expr.AF, *expr.SVAUntil, *expr.SVASUntil, *expr.SVAEventually, *expr.SVASEventually:
			return true
		default:
			return false
		}
	})
}

// LassoConstraints asserts, for every pair (k,i) with 0 <= k < i < bound,
// lasso(k,i) <=> states_equal(k,i) to
// solver. It is intended to be called at most once per module per bound,
// independently of Property, since the definition is shared by every
// property of the module that needs it.
func LassoConstraints(solver Solver, ns Namespace, module string, bound int) error {
	v, err := comparisonVector(ns, module)
	if err != nil {
		return err
	}

	for i := 1; i < bound; i++ {
		for k := 0; k < i; k++ {
			lasso := LassoSymbol(k, i)
			eq := StatesEqual(k, i, v)
			solver.Assert(&expr.Equal{Lhs: lasso, Rhs: eq})
			log.WithFields(log.Fields{"k": k, "i": i, "module": module}).Debug("asserted lasso constraint")
		}
	}
	return nil
}
