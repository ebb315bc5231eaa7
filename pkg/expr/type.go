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

// Package expr defines the immutable expression-tree data model shared by
// the classifier, NNF rewriter, obligation generator and word-level
// instantiator. Every pass consumes trees of this shape and returns freshly
// constructed trees; nodes are never mutated in place.
package expr

import "fmt"

// Type identifies the static type of an expression node: boolean, a
// bit-vector of a fixed width, or a module-port type carried through
// unmodified from the transition system.
type Type interface {
	isType()
	String() string
}

// BoolType is the type of every node this engine ultimately cares about:
// obligations, lasso equalities and their subexpressions are all boolean.
type BoolType struct{}

func (BoolType) isType() {}

// String implements Type.
func (BoolType) String() string { return "bool" }

// BitVectorType is the type of a hardware register or port of a fixed
// width. The core never interprets the bits; it only threads the width
// through so equalities between timeframed copies of a symbol type-check.
type BitVectorType struct {
	Width uint
}

func (BitVectorType) isType() {}

// String implements Type.
func (b BitVectorType) String() string { return fmt.Sprintf("bv[%d]", b.Width) }

// PortType wraps an opaque type name supplied by the transition system for
// module ports whose representation this engine does not need to inspect.
type PortType struct {
	Name string
}

func (PortType) isType() {}

// String implements Type.
func (p PortType) String() string { return p.Name }

// Bool is the canonical boolean type value, since it carries no fields.
var Bool = BoolType{}
