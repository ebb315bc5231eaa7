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

// Package unwind implements the obligation generator, the word-level
// instantiator and the lasso-constraint emitter. It is the business-logic
// layer of this engine: it walks NNF'd expression trees and talks to two
// external collaborators, Solver and Namespace.
package unwind

import "fmt"

// UnsupportedPropertyError is returned when a pass is asked to unwind a
// property that tlogic.SupportsProperty would reject. The core itself
// never calls SupportsProperty (that is the host driver's job); this
// error exists so a pass that stumbles on an operator combination it
// cannot handle fails with a precise diagnosis rather than a generic one.
type UnsupportedPropertyError struct {
	Property fmt.Stringer
}

func (e *UnsupportedPropertyError) Error() string {
	return fmt.Sprintf("unsupported property: %s", e.Property)
}

// BoundConversionError is returned when a range bound (an SVACycleDelay
// offset, or an SVARangedAlways/SVASAlways lower or upper bound) cannot be
// converted to an integer, or is negative. A negative SVARangedAlways/
// SVASAlways lower bound is not an error: it is clamped to 0.
type BoundConversionError struct {
	Bound fmt.Stringer
	Cause string
}

func (e *BoundConversionError) Error() string {
	return fmt.Sprintf("failed to convert bound %s: %s", e.Bound, e.Cause)
}

// MalformedExpressionError reports input this package cannot interpret.
// StaticNamespace.LookupModule returns it for an unknown module. No pass in
// this package checks operator arity (the node structs fix it) or rejects
// a NextSymbol: Instantiate rewrites a NextSymbol wherever it appears.
type MalformedExpressionError struct {
	Reason string
}

func (e *MalformedExpressionError) Error() string {
	return "malformed expression: " + e.Reason
}

// InvariantViolationError indicates a bug in a pass: an obligation
// timeframe fell outside [0, N). It is never expected to occur in
// practice; a caller seeing this should treat it as a defect in this
// package, not in its input.
type InvariantViolationError struct {
	Reason string
}

func (e *InvariantViolationError) Error() string {
	return "invariant violation: " + e.Reason
}
