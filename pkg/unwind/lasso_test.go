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

func TestLassoSymbolFormatsIdentifier(t *testing.T) {
	sym := LassoSymbol(0, 2)
	assert.Equal(t, "lasso::2-back-to-0", sym.Id)
	assert.Equal(t, expr.Bool, sym.Tp)
}

func TestLassoSymbolPanicsOnMisorderedPair(t *testing.T) {
	assert.Panics(t, func() { LassoSymbol(2, 2) })
	assert.Panics(t, func() { LassoSymbol(3, 2) })
}

func TestRequiresLassoConstraintsDetectsLivenessOperators(t *testing.T) {
	p := expr.NewSymbol("p")
	assert.True(t, RequiresLassoConstraints(&expr.F{Op: p}))
	assert.True(t, RequiresLassoConstraints(&expr.AF{Op: p}))
	assert.True(t, RequiresLassoConstraints(&expr.SVAEventually{Op: p}))
	assert.True(t, RequiresLassoConstraints(&expr.SVASUntil{Lhs: p, Rhs: p}))
	assert.False(t, RequiresLassoConstraints(&expr.AG{Op: p}))
	assert.False(t, RequiresLassoConstraints(p))
}

func newTestNamespace() *StaticNamespace {
	ns := NewStaticNamespace()
	ns.AddSymbol("m", TableSymbol{Name: "state", Type: expr.Bool, IsStateVar: true})
	ns.AddSymbol("m", TableSymbol{Name: "aux", Type: expr.Bool, IsStateVar: false})
	ns.AddModule(Module{
		Identifier: "m",
		Ports: []Port{
			{Identifier: "in", Type: expr.Bool, Input: true, Output: false},
			{Identifier: "inout", Type: expr.Bool, Input: true, Output: true},
			{Identifier: "out", Type: expr.Bool, Input: false, Output: true},
		},
	})
	return ns
}

func TestComparisonVectorIncludesStateVarsAndPureInputs(t *testing.T) {
	ns := newTestNamespace()
	v, err := comparisonVector(ns, "m")
	require.NoError(t, err)

	var ids []string
	for _, s := range v {
		ids = append(ids, s.Id)
	}
	assert.Equal(t, []string{"state", "in"}, ids)
}

func TestLassoConstraintsAssertsEveryOrderedPair(t *testing.T) {
	ns := newTestNamespace()
	solver := NewRecordingSolver()

	err := LassoConstraints(solver, ns, "m", 3)
	require.NoError(t, err)

	assert.Len(t, solver.Asserted, 3)

	seen := map[string]bool{}
	for _, a := range solver.Asserted {
		eq, ok := a.(*expr.Equal)
		require.True(t, ok)
		lasso, ok := eq.Lhs.(expr.Symbol)
		require.True(t, ok)
		seen[lasso.Id] = true
	}
	assert.True(t, seen[LassoIdentifier(0, 1)])
	assert.True(t, seen[LassoIdentifier(0, 2)])
	assert.True(t, seen[LassoIdentifier(1, 2)])
}

func TestLassoConstraintsErrorsOnUnknownModule(t *testing.T) {
	ns := NewStaticNamespace()
	solver := NewRecordingSolver()
	err := LassoConstraints(solver, ns, "nope", 2)
	assert.Error(t, err)
}
