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

// This file holds the SVA (SystemVerilog Assertions) temporal operators.
// SVA distinguishes weak ("until", "eventually", "always" without an 's_'
// prefix, "nexttime") from strong (the 's_'-prefixed forms) variants, and
// overlapping ("_with") from non-overlapping until.

// ============================================================================
// SVAAlways / SVARangedAlways / SVASAlways
// ============================================================================

// SVAAlways is the unranged `always Op`.
type SVAAlways struct{ Op Expr }

// Operands implements Expr.
func (e *SVAAlways) Operands() []Expr { return []Expr{e.Op} }

// Type implements Expr.
func (e *SVAAlways) Type() Type { return Bool }

// SVARangedAlways is `always [Lo:Hi] Op` (weak: vacuously true if the range
// is never reached within the trace).
type SVARangedAlways struct {
	Lo, Hi Expr
	Op     Expr
}

// Operands implements Expr.
func (e *SVARangedAlways) Operands() []Expr { return []Expr{e.Lo, e.Hi, e.Op} }

// Type implements Expr.
func (e *SVARangedAlways) Type() Type { return Bool }

// SVASAlways is the strong ranged always, `s_always [Lo:Hi] Op`. Its
// obligation-generator treatment is identical to SVARangedAlways; the two
// are kept distinct because SVA gives them distinct surface syntax and the
// classifier and NNF passes must recognise both spellings.
type SVASAlways struct {
	Lo, Hi Expr
	Op     Expr
}

// Operands implements Expr.
func (e *SVASAlways) Operands() []Expr { return []Expr{e.Lo, e.Hi, e.Op} }

// Type implements Expr.
func (e *SVASAlways) Type() Type { return Bool }

// ============================================================================
// SVANextTime / SVASNextTime
// ============================================================================

// SVANextTime is the weak `nexttime Op`.
type SVANextTime struct{ Op Expr }

// Operands implements Expr.
func (e *SVANextTime) Operands() []Expr { return []Expr{e.Op} }

// Type implements Expr.
func (e *SVANextTime) Type() Type { return Bool }

// SVASNextTime is the strong `s_nexttime Op`.
type SVASNextTime struct{ Op Expr }

// Operands implements Expr.
func (e *SVASNextTime) Operands() []Expr { return []Expr{e.Op} }

// Type implements Expr.
func (e *SVASNextTime) Type() Type { return Bool }

// ============================================================================
// SVAEventually / SVASEventually
// ============================================================================

// SVAEventually is the weak `eventually Op`.
type SVAEventually struct{ Op Expr }

// Operands implements Expr.
func (e *SVAEventually) Operands() []Expr { return []Expr{e.Op} }

// Type implements Expr.
func (e *SVAEventually) Type() Type { return Bool }

// SVASEventually is the strong `s_eventually Op`, the SVA form that
// requires a lasso to refute.
type SVASEventually struct{ Op Expr }

// Operands implements Expr.
func (e *SVASEventually) Operands() []Expr { return []Expr{e.Op} }

// Type implements Expr.
func (e *SVASEventually) Type() Type { return Bool }

// ============================================================================
// SVAUntil / SVASUntil (non-overlapping)
// ============================================================================

// SVAUntil is the weak, non-overlapping `Lhs until Rhs`.
type SVAUntil struct{ Lhs, Rhs Expr }

// Operands implements Expr.
func (e *SVAUntil) Operands() []Expr { return []Expr{e.Lhs, e.Rhs} }

// Type implements Expr.
func (e *SVAUntil) Type() Type { return Bool }

// SVASUntil is the strong, non-overlapping `Lhs s_until Rhs`.
type SVASUntil struct{ Lhs, Rhs Expr }

// Operands implements Expr.
func (e *SVASUntil) Operands() []Expr { return []Expr{e.Lhs, e.Rhs} }

// Type implements Expr.
func (e *SVASUntil) Type() Type { return Bool }

// ============================================================================
// SVAUntilWith / SVASUntilWith (overlapping)
// ============================================================================

// SVAUntilWith is the weak, overlapping `Lhs until_with Rhs`.
type SVAUntilWith struct{ Lhs, Rhs Expr }

// Operands implements Expr.
func (e *SVAUntilWith) Operands() []Expr { return []Expr{e.Lhs, e.Rhs} }

// Type implements Expr.
func (e *SVAUntilWith) Type() Type { return Bool }

// SVASUntilWith is the strong, overlapping `Lhs s_until_with Rhs`.
type SVASUntilWith struct{ Lhs, Rhs Expr }

// Operands implements Expr.
func (e *SVASUntilWith) Operands() []Expr { return []Expr{e.Lhs, e.Rhs} }

// Type implements Expr.
func (e *SVASUntilWith) Type() Type { return Bool }

// ============================================================================
// SVACycleDelay
// ============================================================================

// SVACycleDelay is `##from Body` when To is nil, or `##[from:to] Body`
// (half-open) when To is non-nil. To may be an Infinity literal.
type SVACycleDelay struct {
	From Expr
	To   Expr // nil for the single-offset form
	Body Expr
}

// Operands implements Expr.
//
// The nil To of the single-offset form is preserved as a nil entry rather
// than omitted, so that callers walking Operands() blindly (e.g. a generic
// "has any operand matching predicate P" walk) still see this node's fixed
// arity of 3.
func (e *SVACycleDelay) Operands() []Expr { return []Expr{e.From, e.To, e.Body} }

// Type implements Expr.
func (e *SVACycleDelay) Type() Type { return Bool }

// ============================================================================
// SVASequenceConcatenation
// ============================================================================

// SVASequenceConcatenation is the concatenation of zero or more SVA
// sequences, instantiated as a conjunction.
type SVASequenceConcatenation struct{ Args []Expr }

// Operands implements Expr.
func (e *SVASequenceConcatenation) Operands() []Expr { return e.Args }

// Type implements Expr.
func (e *SVASequenceConcatenation) Type() Type { return Bool }

// ============================================================================
// SVAOverlappedImplication / SVANonOverlappedImplication
// ============================================================================

// SVAOverlappedImplication is `Lhs |-> Rhs`: if the antecedent sequence
// matches, the consequent must hold starting in the same timeframe.
type SVAOverlappedImplication struct{ Lhs, Rhs Expr }

// Operands implements Expr.
func (e *SVAOverlappedImplication) Operands() []Expr { return []Expr{e.Lhs, e.Rhs} }

// Type implements Expr.
func (e *SVAOverlappedImplication) Type() Type { return Bool }

// SVANonOverlappedImplication is `Lhs |=> Rhs`: the consequent must hold
// starting one timeframe after the antecedent matches.
type SVANonOverlappedImplication struct{ Lhs, Rhs Expr }

// Operands implements Expr.
func (e *SVANonOverlappedImplication) Operands() []Expr { return []Expr{e.Lhs, e.Rhs} }

// Type implements Expr.
func (e *SVANonOverlappedImplication) Type() Type { return Bool }
