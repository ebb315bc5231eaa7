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

// Expr is the interface implemented by every node in the expression tree.
// Concrete node types are found across this package's files, grouped by
// role (boolean connectives here, symbols and literals in symbol.go, LTL
// operators in ltl.go, CTL operators in ctl.go, SVA operators in sva.go,
// and the extended operators introduced by NNF in extended.go).
type Expr interface {
	// Operands returns this node's children, in order. Leaf nodes return
	// nil.
	Operands() []Expr
	// Type returns the static type of this node.
	Type() Type
	// String renders this node and its subtree as a parenthesised,
	// human-readable expression, primarily for debugging and test
	// failure messages.
	String() string
}

// ============================================================================
// And
// ============================================================================

// And is the conjunction of zero or more operands. An empty And is
// logically true; callers generally use the NewAnd constructor in walk.go
// rather than constructing this directly, so that trivial cases collapse.
type And struct{ Args []Expr }

// Operands implements Expr.
func (e *And) Operands() []Expr { return e.Args }

// Type implements Expr.
func (e *And) Type() Type { return Bool }

// ============================================================================
// Or
// ============================================================================

// Or is the disjunction of zero or more operands.
type Or struct{ Args []Expr }

// Operands implements Expr.
func (e *Or) Operands() []Expr { return e.Args }

// Type implements Expr.
func (e *Or) Type() Type { return Bool }

// ============================================================================
// Not
// ============================================================================

// Not is boolean negation of a single operand. After NNF rewriting, a Not
// appears only immediately around an atom.
type Not struct{ Arg Expr }

// Operands implements Expr.
func (e *Not) Operands() []Expr { return []Expr{e.Arg} }

// Type implements Expr.
func (e *Not) Type() Type { return Bool }

// ============================================================================
// Implies
// ============================================================================

// Implies is `Lhs -> Rhs`.
type Implies struct{ Lhs, Rhs Expr }

// Operands implements Expr.
func (e *Implies) Operands() []Expr { return []Expr{e.Lhs, e.Rhs} }

// Type implements Expr.
func (e *Implies) Type() Type { return Bool }

// ============================================================================
// True / False
// ============================================================================

// True is the boolean literal true.
type True struct{}

// Operands implements Expr.
func (True) Operands() []Expr { return nil }

// Type implements Expr.
func (True) Type() Type { return Bool }

// False is the boolean literal false.
type False struct{}

// Operands implements Expr.
func (False) Operands() []Expr { return nil }

// Type implements Expr.
func (False) Type() Type { return Bool }

// ============================================================================
// Equal
// ============================================================================

// Equal is `Lhs == Rhs`, used both for ordinary equalities and, once
// timeframed, for the lasso state-equality conjunction.
type Equal struct{ Lhs, Rhs Expr }

// Operands implements Expr.
func (e *Equal) Operands() []Expr { return []Expr{e.Lhs, e.Rhs} }

// Type implements Expr.
func (e *Equal) Type() Type { return Bool }
