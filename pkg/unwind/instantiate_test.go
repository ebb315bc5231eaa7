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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dh73/hw-cbmc/pkg/expr"
)

func TestInstantiateSymbolRenamesToCurrentTimeframe(t *testing.T) {
	p := expr.NewSymbol("p")
	got, err := Instantiate(p, 2, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, expr.NewSymbol("p@2"), got)
}

func TestInstantiateNextSymbolAdvancesOneTimeframe(t *testing.T) {
	next := expr.NextSymbol{Id: "p", Tp: expr.Bool}
	got, err := Instantiate(next, 2, 5, nil)
	require.NoError(t, err)
	assert.Equal(t, expr.NewSymbol("p@3"), got)
}

func TestInstantiateSVANextTimeOutOfBoundsIsTrue(t *testing.T) {
	p := expr.NewSymbol("p")
	got, err := Instantiate(&expr.SVANextTime{Op: p}, 2, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, expr.True{}, got)

	got, err = Instantiate(&expr.SVANextTime{Op: p}, 0, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, expr.NewSymbol("p@1"), got)

	got, err = Instantiate(&expr.SVANextTime{Op: p}, 1, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, expr.NewSymbol("p@2"), got)
}

func TestInstantiateSVACycleDelayRangeDropsOutOfBoundOffsets(t *testing.T) {
	p := expr.NewSymbol("p")
	delay := &expr.SVACycleDelay{
		From: expr.Constant{Value: "1", Tp: expr.Bool},
		To:   expr.Constant{Value: "3", Tp: expr.Bool},
		Body: p,
	}
	got, err := Instantiate(delay, 0, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, expr.NewOr(expr.NewSymbol("p@1"), expr.NewSymbol("p@2")), got)
}

func TestInstantiateSVACycleDelaySingleOffsetOutOfBoundIsTrue(t *testing.T) {
	p := expr.NewSymbol("p")
	delay := &expr.SVACycleDelay{From: expr.Constant{Value: "5", Tp: expr.Bool}, Body: p}
	got, err := Instantiate(delay, 0, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, expr.True{}, got)
}

func TestInstantiateSVAUntilBoundaryDropsTailConjunct(t *testing.T) {
	p, q := expr.NewSymbol("p"), expr.NewSymbol("q")
	got, err := Instantiate(&expr.SVASUntil{Lhs: p, Rhs: q}, 0, 2, nil)
	require.NoError(t, err)

	want := expr.NewOr(
		expr.NewSymbol("q@0"),
		expr.NewAnd(
			expr.NewSymbol("p@0"),
			expr.NewOr(expr.NewSymbol("q@1"), expr.NewSymbol("p@1")),
		),
	)
	assert.Equal(t, want, got)
}

func TestInstantiateSVAUntilWithRewritesToNonOverlapping(t *testing.T) {
	p, q := expr.NewSymbol("p"), expr.NewSymbol("q")
	overlapping, err := Instantiate(&expr.SVAUntilWith{Lhs: p, Rhs: q}, 0, 2, nil)
	require.NoError(t, err)

	rewritten, err := Instantiate(&expr.SVAUntil{Lhs: p, Rhs: &expr.SVANextTime{Op: q}}, 0, 2, nil)
	require.NoError(t, err)

	assert.Equal(t, rewritten, overlapping)
}

func TestInstantiateSVAEventuallyLooksBackwardWithLasso(t *testing.T) {
	p := expr.NewSymbol("p")
	got, err := Instantiate(&expr.SVASEventually{Op: p}, 0, 3, nil)
	require.NoError(t, err)
	// current == 0: the backward loop over k in [0, current) is empty.
	assert.Equal(t, expr.True{}, got)

	got, err = Instantiate(&expr.SVAEventually{Op: p}, 1, 3, nil)
	require.NoError(t, err)
	want := expr.NewOr(expr.NewNot(LassoSymbol(0, 1)), expr.NewSymbol("p@0"), expr.NewSymbol("p@1"))
	assert.Equal(t, want, got)
}

func TestInstantiateSVAOverlappedImplication(t *testing.T) {
	p, q := expr.NewSymbol("p"), expr.NewSymbol("q")
	got, err := Instantiate(&expr.SVAOverlappedImplication{Lhs: p, Rhs: q}, 0, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, &expr.Implies{Lhs: expr.NewSymbol("p@0"), Rhs: expr.NewSymbol("q@0")}, got)
}

func TestInstantiateSVANonOverlappedImplicationOutOfBoundIsTrue(t *testing.T) {
	p, q := expr.NewSymbol("p"), expr.NewSymbol("q")
	got, err := Instantiate(&expr.SVANonOverlappedImplication{Lhs: p, Rhs: q}, 2, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, &expr.Implies{Lhs: expr.NewSymbol("p@2"), Rhs: expr.True{}}, got)
}

func TestInstantiateWalksChildrenOfUnhandledKinds(t *testing.T) {
	p, q := expr.NewSymbol("p"), expr.NewSymbol("q")
	got, err := Instantiate(&expr.And{Args: []expr.Expr{p, q}}, 4, 5, nil)
	require.NoError(t, err)
	assert.Equal(t, &expr.And{Args: []expr.Expr{expr.NewSymbol("p@4"), expr.NewSymbol("q@4")}}, got)
}

func TestInstantiateXAdvancesOneTimeframeLikeSVANextTime(t *testing.T) {
	p := expr.NewSymbol("p")
	got, err := Instantiate(&expr.X{Op: p}, 0, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, expr.NewSymbol("p@1"), got)

	got, err = Instantiate(&expr.X{Op: p}, 2, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, expr.True{}, got)
}

func TestInstantiateAXAdvancesOneTimeframeLikeSVANextTime(t *testing.T) {
	p := expr.NewSymbol("p")
	got, err := Instantiate(&expr.AX{Op: p}, 0, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, expr.NewSymbol("p@1"), got)

	got, err = Instantiate(&expr.AX{Op: p}, 2, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, expr.True{}, got)
}

func TestInstantiateRejectsUnhandledTemporalOperators(t *testing.T) {
	p := expr.NewSymbol("p")
	_, err := Instantiate(&expr.G{Op: p}, 0, 3, nil)
	require.Error(t, err)
	assert.ErrorAs(t, err, new(*UnsupportedPropertyError))
}

func TestInstantiateOutputHasNoTemporalOperatorsOrNextSymbol(t *testing.T) {
	p, q := expr.NewSymbol("p"), expr.NewSymbol("q")
	phi := &expr.SVAAlways{Op: &expr.SVASUntil{Lhs: &expr.X{Op: p}, Rhs: &expr.SVACycleDelay{
		From: expr.Constant{Value: "1", Tp: expr.Bool}, Body: &expr.AX{Op: q},
	}}}

	got, err := Instantiate(phi, 0, 3, nil)
	require.NoError(t, err)

	assert.False(t, expr.HasSubexpr(got, func(e expr.Expr) bool {
		switch e.(type) {
		case expr.NextSymbol,
			*expr.X, *expr.F, *expr.G, *expr.U, *expr.R,
			*expr.AX, *expr.AF, *expr.AG,
			*expr.SVAAlways, *expr.SVARangedAlways, *expr.SVASAlways,
			*expr.SVANextTime, *expr.SVASNextTime,
			*expr.SVAEventually, *expr.SVASEventually,
			*expr.SVAUntil, *expr.SVASUntil, *expr.SVAUntilWith, *expr.SVASUntilWith,
			*expr.SVACycleDelay, *expr.SVASequenceConcatenation,
			*expr.SVAOverlappedImplication, *expr.SVANonOverlappedImplication:
			return true
		default:
			return false
		}
	}))
}

func TestBoundToIntRejectsNonConstant(t *testing.T) {
	_, err := boundToInt(expr.NewSymbol("p"))
	require.Error(t, err)
	var boundErr *BoundConversionError
	assert.ErrorAs(t, err, &boundErr)
}

func TestBoundToIntRejectsNegative(t *testing.T) {
	_, err := boundToInt(expr.Constant{Value: "-1", Tp: expr.Bool})
	require.Error(t, err)
}

func TestSignedBoundToIntAcceptsNegative(t *testing.T) {
	n, err := signedBoundToInt(expr.Constant{Value: "-1", Tp: expr.Bool})
	require.NoError(t, err)
	assert.Equal(t, -1, n)
}
