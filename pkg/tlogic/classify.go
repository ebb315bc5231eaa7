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

import "github.com/dh73/hw-cbmc/pkg/expr"

// SupportsProperty decides whether the BMC engine can soundly handle e,
// dispatching on dialect. It never fails;
// unsupported input simply yields false, and the caller (a host BMC
// driver, out of scope here) must not proceed to unwind e.
func SupportsProperty(e expr.Expr) bool {
	switch {
	case IsLTL(e):
		return supportsLTL(e)
	case IsCTL(e):
		return supportsCTL(e)
	default:
		return supportsSVA(e)
	}
}

// isNonXLTLOperator reports whether e is an LTL operator other than X.
// bounded LTL support (below) only ever needs to know whether a subtree
// contains any LTL operator besides "next".
func isNonXLTLOperator(e expr.Expr) bool {
	if _, ok := e.(*expr.X); ok {
		return false
	}
	return IsLTLOperator(e)
}

// supportsLTL implements the LTL support rules.
func supportsLTL(e expr.Expr) bool {
	if !expr.HasSubexpr(e, isNonXLTLOperator) {
		// Purely propositional, or built only from X: always supported.
		return true
	}

	switch v := e.(type) {
	case *expr.F:
		return !expr.HasSubexpr(v.Op, isNonXLTLOperator)
	case *expr.G:
		if inner, ok := v.Op.(*expr.F); ok {
			// GF phi, where phi uses only X.
			return !expr.HasSubexpr(inner.Op, isNonXLTLOperator)
		}
		return !expr.HasSubexpr(v.Op, isNonXLTLOperator)
	case *expr.And:
		for _, op := range v.Args {
			if !supportsLTL(op) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// supportsCTL implements the CTL support rules (the Maidl ACTL∩LTL
// fragment).
func supportsCTL(e expr.Expr) bool {
	if !HasCTLOperator(e) {
		return true
	}

	switch v := e.(type) {
	case *expr.And:
		for _, op := range v.Args {
			if !supportsCTL(op) {
				return false
			}
		}
		return true
	case *expr.AX:
		return supportsCTL(v.Op)
	case *expr.AF:
		return supportsCTL(v.Op)
	case *expr.AG:
		return supportsCTL(v.Op)
	default:
		return false
	}
}

// supportsSVA implements the SVA support rules.
func supportsSVA(e expr.Expr) bool {
	if !IsTemporalOperator(e) {
		if !HasTemporalOperator(e) {
			return true // state predicate, initial timeframe only
		}

		switch v := e.(type) {
		case *expr.And:
			return allSupported(v.Args)
		case *expr.Or:
			return allSupported(v.Args)
		case *expr.Implies:
			return SupportsProperty(v.Lhs) && SupportsProperty(v.Rhs)
		default:
			return false
		}
	}

	switch v := e.(type) {
	case *expr.SVACycleDelay:
		return !HasTemporalOperator(v.Body)
	case *expr.SVANextTime:
		return !HasTemporalOperator(v.Op)
	case *expr.SVASNextTime:
		return !HasTemporalOperator(v.Op)
	case *expr.SVAAlways:
		return true
	case *expr.SVARangedAlways:
		return true
	default:
		return false
	}
}

func allSupported(args []expr.Expr) bool {
	for _, op := range args {
		if !SupportsProperty(op) {
			return false
		}
	}
	return true
}
