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
	"strconv"

	"github.com/dh73/hw-cbmc/pkg/expr"
)

// Instantiate replaces symbol/next_symbol references with timeframed
// symbols and recursively expands SVA temporal operators into boolean
// formulas over the window [0, bound). current is the timeframe phi is
// evaluated at, threaded as an explicit parameter rather than a mutable
// cursor, so siblings of a rewrite that changes current for its own
// recursion are unaffected.
//
// X and AX shift current by one timeframe exactly like SVANextTime, since
// all three mean "next" over the discrete unrolling. F/G/AF/AG are
// consumed by the obligation generator when they appear at the top of a
// property or of one of its top-level conjuncts. Any of them reaching
// Instantiate, and U, R, StrongR, WeakU or any other kind not recognised
// as either a temporal operator handled here or plain boolean structure,
// falls through to UnsupportedPropertyError rather than being silently
// walked.
func Instantiate(phi expr.Expr, current, bound int, ns Namespace) (expr.Expr, error) {
	switch v := phi.(type) {
	case expr.Symbol:
		return expr.TimeframeSymbol(current, v), nil

	case expr.NextSymbol:
		return expr.Symbol{Id: expr.TimeframeIdentifier(v.Id, current+1), Tp: v.Tp}, nil

	case *expr.SVAOverlappedImplication:
		lhs, err := Instantiate(v.Lhs, current, bound, ns)
		if err != nil {
			return nil, err
		}
		rhs, err := Instantiate(v.Rhs, current, bound, ns)
		if err != nil {
			return nil, err
		}
		return &expr.Implies{Lhs: lhs, Rhs: rhs}, nil

	case *expr.SVANonOverlappedImplication:
		lhs, err := Instantiate(v.Lhs, current, bound, ns)
		if err != nil {
			return nil, err
		}
		var rhs expr.Expr = expr.True{}
		if current+1 < bound {
			rhs, err = Instantiate(v.Rhs, current+1, bound, ns)
			if err != nil {
				return nil, err
			}
		}
		return &expr.Implies{Lhs: lhs, Rhs: rhs}, nil

	case *expr.SVACycleDelay:
		return instantiateCycleDelay(v, current, bound, ns)

	case *expr.SVASequenceConcatenation:
		args, err := instantiateAll(v.Args, current, bound, ns)
		if err != nil {
			return nil, err
		}
		return expr.NewAnd(args...), nil

	case *expr.SVAAlways:
		var conjuncts []expr.Expr
		for t := current; t < bound; t++ {
			inst, err := Instantiate(v.Op, t, bound, ns)
			if err != nil {
				return nil, err
			}
			conjuncts = append(conjuncts, inst)
		}
		return expr.NewAnd(conjuncts...), nil

	case *expr.SVANextTime:
		if current+1 >= bound {
			return expr.True{}, nil
		}
		return Instantiate(v.Op, current+1, bound, ns)

	case *expr.SVASNextTime:
		if current+1 >= bound {
			return expr.True{}, nil
		}
		return Instantiate(v.Op, current+1, bound, ns)

	case *expr.X:
		if current+1 >= bound {
			return expr.True{}, nil
		}
		return Instantiate(v.Op, current+1, bound, ns)

	case *expr.AX:
		if current+1 >= bound {
			return expr.True{}, nil
		}
		return Instantiate(v.Op, current+1, bound, ns)

	case *expr.SVAEventually:
		return instantiateEventually(v.Op, current, bound, ns)

	case *expr.SVASEventually:
		return instantiateEventually(v.Op, current, bound, ns)

	case *expr.SVAUntil:
		return instantiateUntil(v.Lhs, v.Rhs, current, bound, ns, func(lhs, rhs expr.Expr) expr.Expr {
			return &expr.SVAUntil{Lhs: lhs, Rhs: rhs}
		})

	case *expr.SVASUntil:
		return instantiateUntil(v.Lhs, v.Rhs, current, bound, ns, func(lhs, rhs expr.Expr) expr.Expr {
			return &expr.SVASUntil{Lhs: lhs, Rhs: rhs}
		})

	case *expr.SVAUntilWith:
		rewritten := &expr.SVAUntil{Lhs: v.Lhs, Rhs: &expr.SVANextTime{Op: v.Rhs}}
		return Instantiate(rewritten, current, bound, ns)

	case *expr.SVASUntilWith:
		rewritten := &expr.SVASUntil{Lhs: v.Lhs, Rhs: &expr.SVASNextTime{Op: v.Rhs}}
		return Instantiate(rewritten, current, bound, ns)

	default:
		if !isBooleanStructure(phi) {
			return nil, &UnsupportedPropertyError{Property: phi}
		}
		return instantiateChildren(phi, current, bound, ns)
	}
}

// isBooleanStructure reports whether e is one of the plain boolean
// connectives or literals that Instantiate can safely walk generically
// via instantiateChildren. Any other kind reaching the default branch is
// a temporal operator this function has no rewrite rule for, and is
// reported via UnsupportedPropertyError instead of being passed through
// unrewritten.
func isBooleanStructure(e expr.Expr) bool {
	switch e.(type) {
	case *expr.And, *expr.Or, *expr.Not, *expr.Implies, *expr.Equal,
		expr.True, expr.False, expr.Constant, expr.Infinity:
		return true
	default:
		return false
	}
}

// instantiateCycleDelay implements the two sva_cycle_delay shapes: a
// single offset (v.To == nil) and a half-open range [from, to).
func instantiateCycleDelay(v *expr.SVACycleDelay, current, bound int, ns Namespace) (expr.Expr, error) {
	from, err := boundToInt(v.From)
	if err != nil {
		return nil, err
	}

	if v.To == nil {
		next := current + from
		if next >= bound {
			return expr.True{}, nil
		}
		return Instantiate(v.Body, next, bound, ns)
	}

	to := bound - 1
	if _, isInf := v.To.(expr.Infinity); !isInf {
		to, err = boundToInt(v.To)
		if err != nil {
			return nil, err
		}
	}

	var disjuncts []expr.Expr
	for offset := from; offset < to; offset++ {
		t := current + offset
		if t >= bound {
			continue
		}
		inst, err := Instantiate(v.Body, t, bound, ns)
		if err != nil {
			return nil, err
		}
		disjuncts = append(disjuncts, inst)
	}
	return expr.NewOr(disjuncts...), nil
}

// instantiateEventually implements the backward-looking lasso encoding
// shared by sva_eventually and sva_s_eventually; contrast with the
// forward-looking F/AF obligation-generator case.
func instantiateEventually(op expr.Expr, current, bound int, ns Namespace) (expr.Expr, error) {
	var conjuncts []expr.Expr
	for k := 0; k < current; k++ {
		disjuncts := []expr.Expr{expr.NewNot(LassoSymbol(k, current))}
		for j := k; j <= current; j++ {
			inst, err := Instantiate(op, j, bound, ns)
			if err != nil {
				return nil, err
			}
			disjuncts = append(disjuncts, inst)
		}
		conjuncts = append(conjuncts, expr.NewOr(disjuncts...))
	}
	return expr.NewAnd(conjuncts...), nil
}

// instantiateUntil implements the one-step unfolding shared by sva_until
// and sva_s_until: ψ ∨ (φ ∧ X(φ U ψ)), dropping the tail conjunct
// entirely at the boundary rather than substituting true for it. rebuild
// reconstructs the same until kind for the recursive tail.
func instantiateUntil(lhs, rhs expr.Expr, current, bound int, ns Namespace, rebuild func(lhs, rhs expr.Expr) expr.Expr) (expr.Expr, error) {
	q, err := Instantiate(rhs, current, bound, ns)
	if err != nil {
		return nil, err
	}
	p, err := Instantiate(lhs, current, bound, ns)
	if err != nil {
		return nil, err
	}

	expansion := p
	if current+1 < bound {
		tail, err := Instantiate(rebuild(lhs, rhs), current+1, bound, ns)
		if err != nil {
			return nil, err
		}
		expansion = expr.NewAnd(p, tail)
	}
	return expr.NewOr(q, expansion), nil
}

// instantiateChildren is the "walk children with the same current" case
// used by every node kind that has no timeframe-shifting semantics of its
// own.
func instantiateChildren(phi expr.Expr, current, bound int, ns Namespace) (expr.Expr, error) {
	var firstErr error
	result := expr.MapChildren(phi, func(child expr.Expr) expr.Expr {
		if firstErr != nil || child == nil {
			return child
		}
		inst, err := Instantiate(child, current, bound, ns)
		if err != nil {
			firstErr = err
			return child
		}
		return inst
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return result, nil
}

func instantiateAll(args []expr.Expr, current, bound int, ns Namespace) ([]expr.Expr, error) {
	out := make([]expr.Expr, len(args))
	for i, a := range args {
		inst, err := Instantiate(a, current, bound, ns)
		if err != nil {
			return nil, err
		}
		out[i] = inst
	}
	return out, nil
}

// boundToInt converts a range-endpoint expression to a nonnegative int.
// Only Constant is convertible; anything else, or a negative value, is a
// BoundConversionError. Used where a negative literal is genuinely
// malformed input (an SVACycleDelay offset, an SVARangedAlways/SVASAlways
// upper bound).
func boundToInt(e expr.Expr) (int, error) {
	n, err := signedBoundToInt(e)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, &BoundConversionError{Bound: e, Cause: "negative bound"}
	}
	return n, nil
}

// signedBoundToInt converts a range-endpoint expression to an int without
// rejecting negative values. sva_ranged_always/sva_s_always's lower bound
// is legitimately allowed to be negative (it is clamped to 0 by the
// caller, not rejected), so it goes through this instead of boundToInt.
func signedBoundToInt(e expr.Expr) (int, error) {
	c, ok := e.(expr.Constant)
	if !ok {
		return 0, &BoundConversionError{Bound: e, Cause: "not a constant"}
	}
	n, err := strconv.Atoi(c.Value)
	if err != nil {
		return 0, &BoundConversionError{Bound: e, Cause: "not an integer: " + err.Error()}
	}
	return n, nil
}
