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

// ============================================================================
// Symbol
// ============================================================================

// Symbol references a named value of the transition system: a state
// variable, an input, or (once timeframed by the instantiator) a
// `<id>@<t>` value.
type Symbol struct {
	Id string
	Tp Type
}

// Operands implements Expr.
func (Symbol) Operands() []Expr { return nil }

// Type implements Expr.
func (s Symbol) Type() Type { return s.Tp }

// NewSymbol constructs a boolean-typed symbol, the common case for
// properties over state predicates.
func NewSymbol(id string) Symbol { return Symbol{Id: id, Tp: Bool} }

// ============================================================================
// NextSymbol
// ============================================================================

// NextSymbol references the value a symbol takes in the following
// timeframe. It is legal only inside the instantiator's input; the
// instantiator eliminates it by rewriting to a Symbol one timeframe ahead.
type NextSymbol struct {
	Id string
	Tp Type
}

// Operands implements Expr.
func (NextSymbol) Operands() []Expr { return nil }

// Type implements Expr.
func (n NextSymbol) Type() Type { return n.Tp }

// ============================================================================
// Constant
// ============================================================================

// Constant is a literal value of a fixed type, carried as a decimal string
// so this package need not depend on any particular bit-vector
// representation.
type Constant struct {
	Value string
	Tp    Type
}

// Operands implements Expr.
func (Constant) Operands() []Expr { return nil }

// Type implements Expr.
func (c Constant) Type() Type { return c.Tp }

// ============================================================================
// Infinity
// ============================================================================

// Infinity is the sentinel used as the upper bound of an unbounded SVA
// range, e.g. `sva_ranged_always(lo, infinity, phi)`.
type Infinity struct{}

// Operands implements Expr.
func (Infinity) Operands() []Expr { return nil }

// Type implements Expr.
func (Infinity) Type() Type { return Bool }

// TimeframeIdentifier renders a timeframed identifier as `<id>@<t>`. Both
// the instantiator (pkg/unwind) and the lasso emitter use this to name
// timeframed copies of a symbol.
func TimeframeIdentifier(id string, t int) string {
	return fmt.Sprintf("%s@%d", id, t)
}

// TimeframeSymbol returns a copy of sym renamed to its timeframe-t
// identifier, preserving its type.
func TimeframeSymbol(t int, sym Symbol) Symbol {
	return Symbol{Id: TimeframeIdentifier(sym.Id, t), Tp: sym.Tp}
}
