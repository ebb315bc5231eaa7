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

// This file holds the five core LTL (Linear Temporal Logic) path operators.
// All are unary except U and R, which are binary.

// ============================================================================
// X (next)
// ============================================================================

// X is "next": Op holds in the following timeframe.
type X struct{ Op Expr }

// Operands implements Expr.
func (e *X) Operands() []Expr { return []Expr{e.Op} }

// Type implements Expr.
func (e *X) Type() Type { return Bool }

// ============================================================================
// F (eventually)
// ============================================================================

// F is "eventually": Op holds at some current or future timeframe.
type F struct{ Op Expr }

// Operands implements Expr.
func (e *F) Operands() []Expr { return []Expr{e.Op} }

// Type implements Expr.
func (e *F) Type() Type { return Bool }

// ============================================================================
// G (globally)
// ============================================================================

// G is "globally": Op holds at every current and future timeframe.
type G struct{ Op Expr }

// Operands implements Expr.
func (e *G) Operands() []Expr { return []Expr{e.Op} }

// Type implements Expr.
func (e *G) Type() Type { return Bool }

// ============================================================================
// U (until)
// ============================================================================

// U is "until": Lhs holds until Rhs holds, and Rhs eventually holds
// (strong until).
type U struct{ Lhs, Rhs Expr }

// Operands implements Expr.
func (e *U) Operands() []Expr { return []Expr{e.Lhs, e.Rhs} }

// Type implements Expr.
func (e *U) Type() Type { return Bool }

// ============================================================================
// R (release)
// ============================================================================

// R is "release", the dual of U: Rhs holds until and including the
// timeframe (if any) where Lhs first holds; if Lhs never holds, Rhs holds
// forever.
type R struct{ Lhs, Rhs Expr }

// Operands implements Expr.
func (e *R) Operands() []Expr { return []Expr{e.Lhs, e.Rhs} }

// Type implements Expr.
func (e *R) Type() Type { return Bool }
