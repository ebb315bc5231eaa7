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

// StrongR and WeakU are not part of the input expression language; they
// are introduced by the NNF rewriter: StrongR as the negation-normal form
// of a negated sva_until, and WeakU as that of a negated sva_s_until_with.
// They exist as distinct kinds (rather than being folded back into R and
// U) because their SVA semantics differ from plain LTL release/until, and later
// passes need to be able to tell them apart from an ordinary R or U that
// happened to originate elsewhere.

// ============================================================================
// StrongR
// ============================================================================

// StrongR is the strong form of release: like R, but additionally requires
// that Lhs eventually holds.
type StrongR struct{ Lhs, Rhs Expr }

// Operands implements Expr.
func (e *StrongR) Operands() []Expr { return []Expr{e.Lhs, e.Rhs} }

// Type implements Expr.
func (e *StrongR) Type() Type { return Bool }

// ============================================================================
// WeakU
// ============================================================================

// WeakU is the weak form of until: like U, but does not require that Rhs
// ever holds (Lhs may hold forever instead).
type WeakU struct{ Lhs, Rhs Expr }

// Operands implements Expr.
func (e *WeakU) Operands() []Expr { return []Expr{e.Lhs, e.Rhs} }

// Type implements Expr.
func (e *WeakU) Type() Type { return Bool }
