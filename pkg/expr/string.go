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

import (
	"fmt"
	"reflect"
	"strings"
)

// render implements String for every node kind by dispatching on its
// concrete type. Kept in one place, rather than one method definition per
// file, so the mapping from kind to surface syntax is easy to audit in one
// pass.
func render(e Expr) string {
	switch v := e.(type) {
	case True:
		return "true"
	case False:
		return "false"
	case Infinity:
		return "$inf"
	case Symbol:
		return v.Id
	case NextSymbol:
		return "next(" + v.Id + ")"
	case Constant:
		return v.Value
	case *And:
		return join("and", exprs(v.Args))
	case *Or:
		return join("or", exprs(v.Args))
	case *Not:
		return join("not", []Expr{v.Arg})
	case *Implies:
		return join("=>", []Expr{v.Lhs, v.Rhs})
	case *Equal:
		return join("=", []Expr{v.Lhs, v.Rhs})
	case *X:
		return join("X", []Expr{v.Op})
	case *F:
		return join("F", []Expr{v.Op})
	case *G:
		return join("G", []Expr{v.Op})
	case *U:
		return join("U", []Expr{v.Lhs, v.Rhs})
	case *R:
		return join("R", []Expr{v.Lhs, v.Rhs})
	case *AX:
		return join("AX", []Expr{v.Op})
	case *AF:
		return join("AF", []Expr{v.Op})
	case *AG:
		return join("AG", []Expr{v.Op})
	case *SVAAlways:
		return join("sva_always", []Expr{v.Op})
	case *SVARangedAlways:
		return join("sva_ranged_always", []Expr{v.Lo, v.Hi, v.Op})
	case *SVASAlways:
		return join("sva_s_always", []Expr{v.Lo, v.Hi, v.Op})
	case *SVANextTime:
		return join("sva_nexttime", []Expr{v.Op})
	case *SVASNextTime:
		return join("sva_s_nexttime", []Expr{v.Op})
	case *SVAEventually:
		return join("sva_eventually", []Expr{v.Op})
	case *SVASEventually:
		return join("sva_s_eventually", []Expr{v.Op})
	case *SVAUntil:
		return join("sva_until", []Expr{v.Lhs, v.Rhs})
	case *SVASUntil:
		return join("sva_s_until", []Expr{v.Lhs, v.Rhs})
	case *SVAUntilWith:
		return join("sva_until_with", []Expr{v.Lhs, v.Rhs})
	case *SVASUntilWith:
		return join("sva_s_until_with", []Expr{v.Lhs, v.Rhs})
	case *SVACycleDelay:
		if v.To == nil {
			return join("sva_cycle_delay", []Expr{v.From, nil, v.Body})
		}
		return join("sva_cycle_delay", []Expr{v.From, v.To, v.Body})
	case *SVASequenceConcatenation:
		return join("sva_sequence_concatenation", v.Args)
	case *SVAOverlappedImplication:
		return join("sva_overlapped_implication", []Expr{v.Lhs, v.Rhs})
	case *SVANonOverlappedImplication:
		return join("sva_non_overlapped_implication", []Expr{v.Lhs, v.Rhs})
	case *StrongR:
		return join("strong_R", []Expr{v.Lhs, v.Rhs})
	case *WeakU:
		return join("weak_U", []Expr{v.Lhs, v.Rhs})
	default:
		panic(fmt.Sprintf("expr: unknown node kind %s", reflect.TypeOf(e)))
	}
}

func exprs(args []Expr) []Expr { return args }

func join(op string, args []Expr) string {
	parts := make([]string, 0, len(args))

	for _, a := range args {
		if a == nil {
			parts = append(parts, "-")
			continue
		}
		parts = append(parts, a.String())
	}

	return "(" + op + " " + strings.Join(parts, " ") + ")"
}

func (True) String() string                        { return render(True{}) }
func (False) String() string                        { return render(False{}) }
func (Infinity) String() string                     { return render(Infinity{}) }
func (s Symbol) String() string                     { return render(s) }
func (n NextSymbol) String() string                 { return render(n) }
func (c Constant) String() string                   { return render(c) }
func (e *And) String() string                       { return render(e) }
func (e *Or) String() string                        { return render(e) }
func (e *Not) String() string                       { return render(e) }
func (e *Implies) String() string                   { return render(e) }
func (e *Equal) String() string                     { return render(e) }
func (e *X) String() string                         { return render(e) }
func (e *F) String() string                         { return render(e) }
func (e *G) String() string                         { return render(e) }
func (e *U) String() string                         { return render(e) }
func (e *R) String() string                         { return render(e) }
func (e *AX) String() string                        { return render(e) }
func (e *AF) String() string                        { return render(e) }
func (e *AG) String() string                        { return render(e) }
func (e *SVAAlways) String() string                 { return render(e) }
func (e *SVARangedAlways) String() string           { return render(e) }
func (e *SVASAlways) String() string                { return render(e) }
func (e *SVANextTime) String() string               { return render(e) }
func (e *SVASNextTime) String() string              { return render(e) }
func (e *SVAEventually) String() string             { return render(e) }
func (e *SVASEventually) String() string            { return render(e) }
func (e *SVAUntil) String() string                  { return render(e) }
func (e *SVASUntil) String() string                 { return render(e) }
func (e *SVAUntilWith) String() string               { return render(e) }
func (e *SVASUntilWith) String() string              { return render(e) }
func (e *SVACycleDelay) String() string             { return render(e) }
func (e *SVASequenceConcatenation) String() string  { return render(e) }
func (e *SVAOverlappedImplication) String() string  { return render(e) }
func (e *SVANonOverlappedImplication) String() string { return render(e) }
func (e *StrongR) String() string                   { return render(e) }
func (e *WeakU) String() string                     { return render(e) }
