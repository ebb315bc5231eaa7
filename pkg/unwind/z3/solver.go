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

// Package z3 provides a Solver (pkg/unwind's collaborator interface)
// backed by github.com/mitchellh/go-z3. It translates the closed
// expr.Expr node set that reaches a Solver after instantiation (booleans,
// symbols and equalities, never a temporal operator) into z3.AST values,
// one node kind at a time.
package z3

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	z3 "github.com/mitchellh/go-z3"

	"github.com/dh73/hw-cbmc/pkg/expr"
)

// Solver adapts a *z3.Context/*z3.Solver pair to pkg/unwind.Solver. It
// caches one *z3.AST per symbol identifier so that repeated references to
// the same timeframed or lasso symbol resolve to the same z3 constant.
type Solver struct {
	ctx    *z3.Context
	solver *z3.Solver
	consts map[string]*z3.AST
}

// New wires a fresh z3.Context and z3.Solver, mirroring
// processSmtlFile's ctx.NewSolver() call.
func New() *Solver {
	config := z3.NewConfig()
	ctx := z3.NewContext(config)
	config.Close()

	return &Solver{
		ctx:    ctx,
		solver: ctx.NewSolver(),
		consts: make(map[string]*z3.AST),
	}
}

// Close releases the underlying z3 solver and context.
func (s *Solver) Close() {
	s.solver.Close()
	s.ctx.Close()
}

// Assert implements unwind.Solver.
func (s *Solver) Assert(e expr.Expr) {
	ast := s.build(e)
	s.solver.Assert(ast)
	log.WithField("expr", e.String()).Debug("z3: asserted")
}

// Handle implements unwind.Solver. It returns e unchanged: this adapter
// has no notion of a cheaper stand-in reference, unlike a decision
// procedure that might return a fresh boolean naming a large subformula.
func (s *Solver) Handle(e expr.Expr) expr.Expr {
	s.build(e)
	return e
}

// build translates e into a z3.AST, the same per-node-kind dispatch shape
// as processExpr, restricted to the boolean/symbol/equality subset that
// can appear once instantiation has eliminated every temporal operator.
func (s *Solver) build(e expr.Expr) *z3.AST {
	switch v := e.(type) {
	case expr.True:
		return s.ctx.True()
	case expr.False:
		return s.ctx.False()
	case expr.Symbol:
		return s.constFor(v.Id)
	case *expr.And:
		return s.buildAll(v.Args).and(s.ctx)
	case *expr.Or:
		return s.buildAll(v.Args).or(s.ctx)
	case *expr.Not:
		return s.build(v.Arg).Not()
	case *expr.Implies:
		return s.build(v.Lhs).Implies(s.build(v.Rhs))
	case *expr.Equal:
		return s.build(v.Lhs).Eq(s.build(v.Rhs))
	default:
		panic(fmt.Sprintf("unwind/z3: build: unsupported node after instantiation: %T", e))
	}
}

type astList []*z3.AST

func (l astList) and(ctx *z3.Context) *z3.AST {
	if len(l) == 0 {
		return ctx.True()
	}
	acc := l[0]
	for _, a := range l[1:] {
		acc = acc.And(a)
	}
	return acc
}

func (l astList) or(ctx *z3.Context) *z3.AST {
	if len(l) == 0 {
		return ctx.False()
	}
	acc := l[0]
	for _, a := range l[1:] {
		acc = acc.Or(a)
	}
	return acc
}

func (s *Solver) buildAll(args []expr.Expr) astList {
	out := make(astList, len(args))
	for i, a := range args {
		out[i] = s.build(a)
	}
	return out
}

// constFor returns the cached z3.AST boolean constant for id, creating it
// on first reference, following processVarSpec's ctx.Const(ctx.Symbol(...),
// sort) pattern.
func (s *Solver) constFor(id string) *z3.AST {
	if ast, ok := s.consts[id]; ok {
		return ast
	}
	ast := s.ctx.Const(s.ctx.Symbol(id), s.ctx.BoolSort())
	s.consts[id] = ast
	return ast
}
