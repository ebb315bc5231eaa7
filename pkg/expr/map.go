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

import "fmt"

// MapChildren rebuilds e with f applied to each of its immediate children,
// preserving e's kind. Leaves (True, False, Symbol, NextSymbol, Constant,
// Infinity) are returned unchanged, since f has nothing to apply to. This
// is the one place that knows how to reconstruct every node kind from new
// children; the NNF rewriter and the word-level instantiator both use it
// for their "recurse into children unchanged otherwise" cases, rather than
// each re-deriving the same 30-case switch.
//
// A nil To on SVACycleDelay (the single-offset form) is left nil rather
// than passed to f.
func MapChildren(e Expr, f func(Expr) Expr) Expr {
	switch v := e.(type) {
	case True, False, Infinity, Symbol, NextSymbol, Constant:
		return v
	case *And:
		return &And{Args: mapAll(v.Args, f)}
	case *Or:
		return &Or{Args: mapAll(v.Args, f)}
	case *Not:
		return &Not{Arg: f(v.Arg)}
	case *Implies:
		return &Implies{Lhs: f(v.Lhs), Rhs: f(v.Rhs)}
	case *Equal:
		return &Equal{Lhs: f(v.Lhs), Rhs: f(v.Rhs)}
	case *X:
		return &X{Op: f(v.Op)}
	case *F:
		return &F{Op: f(v.Op)}
	case *G:
		return &G{Op: f(v.Op)}
	case *U:
		return &U{Lhs: f(v.Lhs), Rhs: f(v.Rhs)}
	case *R:
		return &R{Lhs: f(v.Lhs), Rhs: f(v.Rhs)}
	case *AX:
		return &AX{Op: f(v.Op)}
	case *AF:
		return &AF{Op: f(v.Op)}
	case *AG:
		return &AG{Op: f(v.Op)}
	case *SVAAlways:
		return &SVAAlways{Op: f(v.Op)}
	case *SVARangedAlways:
		return &SVARangedAlways{Lo: f(v.Lo), Hi: f(v.Hi), Op: f(v.Op)}
	case *SVASAlways:
		return &SVASAlways{Lo: f(v.Lo), Hi: f(v.Hi), Op: f(v.Op)}
	case *SVANextTime:
		return &SVANextTime{Op: f(v.Op)}
	case *SVASNextTime:
		return &SVASNextTime{Op: f(v.Op)}
	case *SVAEventually:
		return &SVAEventually{Op: f(v.Op)}
	case *SVASEventually:
		return &SVASEventually{Op: f(v.Op)}
	case *SVAUntil:
		return &SVAUntil{Lhs: f(v.Lhs), Rhs: f(v.Rhs)}
	case *SVASUntil:
		return &SVASUntil{Lhs: f(v.Lhs), Rhs: f(v.Rhs)}
	case *SVAUntilWith:
		return &SVAUntilWith{Lhs: f(v.Lhs), Rhs: f(v.Rhs)}
	case *SVASUntilWith:
		return &SVASUntilWith{Lhs: f(v.Lhs), Rhs: f(v.Rhs)}
	case *SVACycleDelay:
		var to Expr
		if v.To != nil {
			to = f(v.To)
		}
		return &SVACycleDelay{From: f(v.From), To: to, Body: f(v.Body)}
	case *SVASequenceConcatenation:
		return &SVASequenceConcatenation{Args: mapAll(v.Args, f)}
	case *SVAOverlappedImplication:
		return &SVAOverlappedImplication{Lhs: f(v.Lhs), Rhs: f(v.Rhs)}
	case *SVANonOverlappedImplication:
		return &SVANonOverlappedImplication{Lhs: f(v.Lhs), Rhs: f(v.Rhs)}
	case *StrongR:
		return &StrongR{Lhs: f(v.Lhs), Rhs: f(v.Rhs)}
	case *WeakU:
		return &WeakU{Lhs: f(v.Lhs), Rhs: f(v.Rhs)}
	default:
		panic(fmt.Sprintf("expr: MapChildren: unknown node kind %T", e))
	}
}

func mapAll(args []Expr, f func(Expr) Expr) []Expr {
	out := make([]Expr, len(args))
	for i, a := range args {
		out[i] = f(a)
	}
	return out
}
