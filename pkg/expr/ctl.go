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

// This file holds the "A" (universal path quantifier) CTL operators this
// engine supports, following the Maidl ACTL∩LTL fragment. The
// existential ("E") forms exist in the wider CTL language but are never
// supported by the classifier, so this package does not model them: adding
// unsupported node kinds would only invite silent misuse.

// ============================================================================
// AX
// ============================================================================

// AX is "on all paths, next": Op holds in the following timeframe of every
// path.
type AX struct{ Op Expr }

// Operands implements Expr.
func (e *AX) Operands() []Expr { return []Expr{e.Op} }

// Type implements Expr.
func (e *AX) Type() Type { return Bool }

// ============================================================================
// AF
// ============================================================================

// AF is "on all paths, eventually".
type AF struct{ Op Expr }

// Operands implements Expr.
func (e *AF) Operands() []Expr { return []Expr{e.Op} }

// Type implements Expr.
func (e *AF) Type() Type { return Bool }

// ============================================================================
// AG
// ============================================================================

// AG is "on all paths, globally".
type AG struct{ Op Expr }

// Operands implements Expr.
func (e *AG) Operands() []Expr { return []Expr{e.Op} }

// Type implements Expr.
func (e *AG) Type() Type { return Bool }
