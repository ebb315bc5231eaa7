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

import "github.com/dh73/hw-cbmc/pkg/expr"

// Solver is the decision-procedure collaborator. The core never
// inspects what a Solver does with an expression; it only relies on the
// two operations below being available. A concrete decision procedure
// (e.g. pkg/unwind/z3) implements this against a real SMT context.
type Solver interface {
	// Assert adds e as a hard constraint.
	Assert(e expr.Expr)

	// Handle registers e and returns a reference suitable for later use.
	// A Solver is free to return e unchanged, or a stable substitute
	// (e.g. a fresh named term standing in for a large formula); callers
	// must treat the return value, not e itself, as the durable handle.
	Handle(e expr.Expr) expr.Expr
}

// RecordingSolver is a reference Solver that keeps every asserted and
// handled expression in memory, in call order. It performs no
// simplification: Handle returns its argument unchanged. It exists for
// tests that need to inspect what the core asserted or handled without
// standing up a real decision procedure.
type RecordingSolver struct {
	Asserted []expr.Expr
	Handled  []expr.Expr
}

// NewRecordingSolver returns an empty RecordingSolver.
func NewRecordingSolver() *RecordingSolver {
	return &RecordingSolver{}
}

// Assert implements Solver.
func (s *RecordingSolver) Assert(e expr.Expr) {
	s.Asserted = append(s.Asserted, e)
}

// Handle implements Solver.
func (s *RecordingSolver) Handle(e expr.Expr) expr.Expr {
	s.Handled = append(s.Handled, e)
	return e
}
