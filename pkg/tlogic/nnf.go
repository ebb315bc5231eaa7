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
package tlogic

import "github.com/dh73/hw-cbmc/pkg/expr"

// NNF rewrites e into negation normal form: negation is pushed inward via
// operator duals until it appears only immediately around an atom. It is
// total: NNF never fails on well-formed input.
func NNF(e expr.Expr) expr.Expr {
	if n, ok := e.(*expr.Not); ok {
		if pushed, ok := negateNode(n.Arg); ok {
			return NNF(pushed)
		}
		// Atomic case: no rule applies, the negation remains and its
		// operand is not rewritten further. This covers atoms (a
		// symbol, an equality, a constant or a literal) and also every
		// operator negateNode has no dual for (e.g. the CTL operators,
		// sva_always, sva_cycle_delay), whose subtrees are left as
		// they are.
		return &expr.Not{Arg: n.Arg}
	}

	return expr.MapChildren(e, NNF)
}

// negateNode is the per-node negator: given the operand of a Not, it
// returns the negation pushed one level down, or ok=false if e is atomic
// and the negation cannot be pushed any further.
func negateNode(e expr.Expr) (result expr.Expr, ok bool) {
	switch v := e.(type) {
	case *expr.U:
		// ¬(phi U psi) = ¬phi R ¬psi
		return &expr.R{Lhs: &expr.Not{Arg: v.Lhs}, Rhs: &expr.Not{Arg: v.Rhs}}, true
	case *expr.R:
		// ¬(phi R psi) = ¬phi U ¬psi
		return &expr.U{Lhs: &expr.Not{Arg: v.Lhs}, Rhs: &expr.Not{Arg: v.Rhs}}, true
	case *expr.G:
		// ¬G phi = F ¬phi
		return &expr.F{Op: &expr.Not{Arg: v.Op}}, true
	case *expr.F:
		// ¬F phi = G ¬phi
		return &expr.G{Op: &expr.Not{Arg: v.Op}}, true
	case *expr.X:
		// ¬X phi = X ¬phi
		return &expr.X{Op: &expr.Not{Arg: v.Op}}, true
	case *expr.Implies:
		// ¬(a -> b) = a and ¬b
		return &expr.And{Args: []expr.Expr{v.Lhs, &expr.Not{Arg: v.Rhs}}}, true
	case *expr.And:
		return &expr.Or{Args: negateEach(v.Args)}, true
	case *expr.Or:
		return &expr.And{Args: negateEach(v.Args)}, true
	case *expr.Not:
		// ¬¬a = a
		return v.Arg, true
	case *expr.SVAUntil:
		// ¬(phi W psi) = ¬phi strongR ¬psi   (W = weak, non-overlapping until)
		return &expr.StrongR{Lhs: &expr.Not{Arg: v.Lhs}, Rhs: &expr.Not{Arg: v.Rhs}}, true
	case *expr.SVASUntil:
		// ¬(phi U psi) = ¬phi R ¬psi   (strong, non-overlapping until)
		return &expr.R{Lhs: &expr.Not{Arg: v.Lhs}, Rhs: &expr.Not{Arg: v.Rhs}}, true
	case *expr.SVAUntilWith:
		// ¬(phi until_with psi) = ¬psi sva_until ¬phi (operands swapped)
		return &expr.SVAUntil{Lhs: &expr.Not{Arg: v.Rhs}, Rhs: &expr.Not{Arg: v.Lhs}}, true
	case *expr.SVASUntilWith:
		// ¬(phi s_until_with psi) = ¬psi weak_U ¬phi (operands swapped)
		return &expr.WeakU{Lhs: &expr.Not{Arg: v.Rhs}, Rhs: &expr.Not{Arg: v.Lhs}}, true
	default:
		return nil, false
	}
}

func negateEach(args []expr.Expr) []expr.Expr {
	out := make([]expr.Expr, len(args))
	for i, a := range args {
		out[i] = &expr.Not{Arg: a}
	}
	return out
}
