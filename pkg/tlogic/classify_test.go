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

func TestSupportsPropertyLTL(t *testing.T) {
	p, q := expr.NewSymbol("p"), expr.NewSymbol("q")

	tests := []struct {
		name string
		phi  expr.Expr
		want bool
	}{
		{"propositional", p, true},
		{"nested X", &expr.X{Op: &expr.X{Op: p}}, true},
		{"F of X-only", &expr.F{Op: &expr.X{Op: p}}, true},
		{"G of X-only", &expr.G{Op: &expr.X{Op: p}}, true},
		{"GF of X-only", &expr.G{Op: &expr.F{Op: &expr.X{Op: p}}}, true},
		{"conjunction of supported", &expr.And{Args: []expr.Expr{&expr.G{Op: p}, &expr.F{Op: p}}}, true},
		{"F of G is unsupported", &expr.F{Op: &expr.G{Op: p}}, false},
		{"bare U is unsupported", &expr.U{Lhs: p, Rhs: q}, false},
		{"G of U is unsupported", &expr.G{Op: &expr.U{Lhs: p, Rhs: q}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SupportsProperty(tt.phi))
		})
	}
}

func TestSupportsPropertyCTL(t *testing.T) {
	p := expr.NewSymbol("p")

	tests := []struct {
		name string
		phi  expr.Expr
		want bool
	}{
		{"state predicate", p, true},
		{"AG", &expr.AG{Op: p}, true},
		{"AF", &expr.AF{Op: p}, true},
		{"AX AG", &expr.AX{Op: &expr.AG{Op: p}}, true},
		{"conjunction", &expr.And{Args: []expr.Expr{&expr.AG{Op: p}, &expr.AF{Op: p}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SupportsProperty(tt.phi))
		})
	}
}

func TestSupportsPropertySVA(t *testing.T) {
	p, q := expr.NewSymbol("p"), expr.NewSymbol("q")

	tests := []struct {
		name string
		phi  expr.Expr
		want bool
	}{
		{"state predicate", p, true},
		{"implies of state predicates", &expr.Implies{Lhs: p, Rhs: q}, true},
		{"sva_always", &expr.SVAAlways{Op: p}, true},
		{"sva_ranged_always", &expr.SVARangedAlways{Lo: expr.Constant{Value: "0", Tp: expr.Bool}, Hi: expr.Infinity{}, Op: p}, true},
		{"sva_nexttime of state predicate", &expr.SVANextTime{Op: p}, true},
		{"sva_nexttime of temporal is unsupported", &expr.SVANextTime{Op: &expr.SVAAlways{Op: p}}, false},
		{"sva_cycle_delay of state predicate", &expr.SVACycleDelay{From: expr.Constant{Value: "1", Tp: expr.Bool}, Body: p}, true},
		{"sva_eventually is unsupported", &expr.SVAEventually{Op: p}, false},
		{"sva_until is unsupported", &expr.SVAUntil{Lhs: p, Rhs: q}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SupportsProperty(tt.phi))
		})
	}
}

func TestIsLTLIsCTLDialectDetection(t *testing.T) {
	p := expr.NewSymbol("p")

	assert.True(t, IsLTL(&expr.G{Op: p}))
	assert.False(t, IsCTL(&expr.G{Op: p}))

	assert.True(t, IsCTL(&expr.AG{Op: p}))
	assert.False(t, IsLTL(&expr.AG{Op: p}))
}
