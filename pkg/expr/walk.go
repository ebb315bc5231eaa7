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
package expr

// NewAnd builds a conjunction, flattening trivial cases so that passes which
// repeatedly conjoin partial results (the obligation generator, the lasso
// emitter) do not build up long chains of degenerate And nodes. An empty
// argument list yields True.
func NewAnd(args ...Expr) Expr {
	filtered := make([]Expr, 0, len(args))

	for _, a := range args {
		if _, ok := a.(True); ok {
			continue
		}

		if _, ok := a.(False); ok {
			return False{}
		}

		filtered = append(filtered, a)
	}

	switch len(filtered) {
	case 0:
		return True{}
	case 1:
		return filtered[0]
	default:
		return &And{Args: filtered}
	}
}

// NewOr builds a disjunction, flattening trivial cases symmetrically to
// NewAnd. An empty argument list yields False.
func NewOr(args ...Expr) Expr {
	filtered := make([]Expr, 0, len(args))

	for _, a := range args {
		if _, ok := a.(False); ok {
			continue
		}

		if _, ok := a.(True); ok {
			return True{}
		}

		filtered = append(filtered, a)
	}

	switch len(filtered) {
	case 0:
		return False{}
	case 1:
		return filtered[0]
	default:
		return &Or{Args: filtered}
	}
}

// NewNot builds a negation, collapsing double negation and the boolean
// literals directly rather than leaving that to NNF; this keeps
// intermediate trees built by the obligation generator and instantiator
// small even before NNF runs.
func NewNot(a Expr) Expr {
	switch v := a.(type) {
	case *Not:
		return v.Arg
	case True:
		return False{}
	case False:
		return True{}
	default:
		return &Not{Arg: a}
	}
}

// HasSubexpr reports whether expr or any of its descendants (inclusive)
// satisfies the given predicate.
func HasSubexpr(e Expr, pred func(Expr) bool) bool {
	if pred(e) {
		return true
	}

	for _, op := range e.Operands() {
		if op == nil {
			continue
		}

		if HasSubexpr(op, pred) {
			return true
		}
	}

	return false
}

// Walk visits expr and every descendant, inclusive, in pre-order. Nil
// operands (the possibly-absent To of an SVACycleDelay single-offset form)
// are skipped.
func Walk(e Expr, visit func(Expr)) {
	visit(e)

	for _, op := range e.Operands() {
		if op == nil {
			continue
		}

		Walk(op, visit)
	}
}
