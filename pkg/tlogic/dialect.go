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

// Package tlogic implements the two passes that operate purely on the
// shape of a temporal-logic property, without reference to a bound or a
// transition system: the support classifier and the negation normal form
// rewriter.
package tlogic

import "github.com/dh73/hw-cbmc/pkg/expr"

// IsLTLOperator reports whether e's top-level kind is one of the core LTL
// path operators.
func IsLTLOperator(e expr.Expr) bool {
	switch e.(type) {
	case *expr.X, *expr.F, *expr.G, *expr.U, *expr.R:
		return true
	default:
		return false
	}
}

// IsCTLOperator reports whether e's top-level kind is one of the
// universal-path CTL operators this engine models; the existential forms
// are never supported and are not represented in pkg/expr at all.
func IsCTLOperator(e expr.Expr) bool {
	switch e.(type) {
	case *expr.AX, *expr.AF, *expr.AG:
		return true
	default:
		return false
	}
}

// IsSVATemporalOperator reports whether e's top-level kind is one of the
// SVA temporal operators.
func IsSVATemporalOperator(e expr.Expr) bool {
	switch e.(type) {
	case *expr.SVAAlways, *expr.SVARangedAlways, *expr.SVASAlways,
		*expr.SVANextTime, *expr.SVASNextTime,
		*expr.SVAEventually, *expr.SVASEventually,
		*expr.SVAUntil, *expr.SVASUntil,
		*expr.SVAUntilWith, *expr.SVASUntilWith,
		*expr.SVACycleDelay, *expr.SVASequenceConcatenation,
		*expr.SVAOverlappedImplication, *expr.SVANonOverlappedImplication:
		return true
	default:
		return false
	}
}

// IsTemporalOperator reports whether e's top-level kind is any LTL, CTL or
// SVA temporal operator.
func IsTemporalOperator(e expr.Expr) bool {
	return IsLTLOperator(e) || IsCTLOperator(e) || IsSVATemporalOperator(e)
}

// HasTemporalOperator reports whether e or any descendant is a temporal
// operator.
func HasTemporalOperator(e expr.Expr) bool {
	return expr.HasSubexpr(e, IsTemporalOperator)
}

// HasCTLOperator reports whether e or any descendant is a CTL operator.
func HasCTLOperator(e expr.Expr) bool {
	return expr.HasSubexpr(e, IsCTLOperator)
}

// IsCTL reports whether e belongs to the CTL dialect: it or a descendant
// uses a CTL operator. Checked before IsLTL, since a mixed property (which
// this engine never produces itself, but a host might construct) is
// treated as CTL if it contains any CTL operator at all.
func IsCTL(e expr.Expr) bool {
	return HasCTLOperator(e)
}

// IsLTL reports whether e belongs to the LTL dialect: it is not CTL, and
// it or a descendant uses a core LTL operator.
func IsLTL(e expr.Expr) bool {
	if IsCTL(e) {
		return false
	}

	return expr.HasSubexpr(e, IsLTLOperator)
}
