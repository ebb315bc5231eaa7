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

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dh73/hw-cbmc/pkg/expr"
)

func TestNNFDoubleNegationCollapses(t *testing.T) {
	p := expr.NewSymbol("p")
	got := NNF(&expr.Not{Arg: &expr.Not{Arg: p}})
	assert.Equal(t, p, got)
}

func TestNNFPushesUntilDual(t *testing.T) {
	p, q := expr.NewSymbol("p"), expr.NewSymbol("q")
	got := NNF(&expr.Not{Arg: &expr.U{Lhs: p, Rhs: q}})

	want := &expr.R{Lhs: &expr.Not{Arg: p}, Rhs: &expr.Not{Arg: q}}
	assert.Equal(t, want, got)
}

func TestNNFPushesReleaseDual(t *testing.T) {
	p, q := expr.NewSymbol("p"), expr.NewSymbol("q")
	got := NNF(&expr.Not{Arg: &expr.R{Lhs: p, Rhs: q}})

	want := &expr.U{Lhs: &expr.Not{Arg: p}, Rhs: &expr.Not{Arg: q}}
	assert.Equal(t, want, got)
}

func TestNNFDeMorganAndOr(t *testing.T) {
	p, q := expr.NewSymbol("p"), expr.NewSymbol("q")

	gotAnd := NNF(&expr.Not{Arg: &expr.And{Args: []expr.Expr{p, q}}})
	wantAnd := &expr.Or{Args: []expr.Expr{&expr.Not{Arg: p}, &expr.Not{Arg: q}}}
	assert.Equal(t, wantAnd, gotAnd)

	gotOr := NNF(&expr.Not{Arg: &expr.Or{Args: []expr.Expr{p, q}}})
	wantOr := &expr.And{Args: []expr.Expr{&expr.Not{Arg: p}, &expr.Not{Arg: q}}}
	assert.Equal(t, wantOr, gotOr)
}

func TestNNFImplies(t *testing.T) {
	a, b := expr.NewSymbol("a"), expr.NewSymbol("b")
	got := NNF(&expr.Not{Arg: &expr.Implies{Lhs: a, Rhs: b}})
	want := &expr.And{Args: []expr.Expr{a, &expr.Not{Arg: b}}}
	assert.Equal(t, want, got)
}

func TestNNFGAndFDuals(t *testing.T) {
	p := expr.NewSymbol("p")

	assert.Equal(t, &expr.F{Op: &expr.Not{Arg: p}}, NNF(&expr.Not{Arg: &expr.G{Op: p}}))
	assert.Equal(t, &expr.G{Op: &expr.Not{Arg: p}}, NNF(&expr.Not{Arg: &expr.F{Op: p}}))
	assert.Equal(t, &expr.X{Op: &expr.Not{Arg: p}}, NNF(&expr.Not{Arg: &expr.X{Op: p}}))
}

func TestNNFSVAUntilWithSwapsOperandsPerNormativeResult(t *testing.T) {
	p, q := expr.NewSymbol("p"), expr.NewSymbol("q")

	got := NNF(&expr.Not{Arg: &expr.SVAUntilWith{Lhs: p, Rhs: q}})
	want := &expr.SVAUntil{Lhs: &expr.Not{Arg: q}, Rhs: &expr.Not{Arg: p}}
	assert.Equal(t, want, got)

	gotStrong := NNF(&expr.Not{Arg: &expr.SVASUntilWith{Lhs: p, Rhs: q}})
	wantStrong := &expr.WeakU{Lhs: &expr.Not{Arg: q}, Rhs: &expr.Not{Arg: p}}
	assert.Equal(t, wantStrong, gotStrong)
}

func TestNNFIsIdempotent(t *testing.T) {
	p, q := expr.NewSymbol("p"), expr.NewSymbol("q")
	phi := &expr.Not{Arg: &expr.G{Op: &expr.Implies{Lhs: p, Rhs: &expr.U{Lhs: q, Rhs: p}}}}

	once := NNF(phi)
	twice := NNF(once)
	assert.Equal(t, once, twice)
}

func TestNNFLeavesAtomicNegationInPlace(t *testing.T) {
	p := expr.NewSymbol("p")
	got := NNF(&expr.Not{Arg: p})
	assert.Equal(t, &expr.Not{Arg: p}, got)
}

func TestNNFRecursesUnderTemporalOperators(t *testing.T) {
	p := expr.NewSymbol("p")
	// G(not(not(p))) should simplify the double negation beneath G.
	got := NNF(&expr.G{Op: &expr.Not{Arg: &expr.Not{Arg: p}}})
	assert.Equal(t, &expr.G{Op: p}, got)
}
