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

import "github.com/dh73/hw-cbmc/pkg/expr"

// TableSymbol is one entry of a module's symbol table: a name, its type,
// and whether it is a state variable (as opposed to a purely
// combinational or auxiliary symbol).
type TableSymbol struct {
	Name       string
	Type       expr.Type
	IsStateVar bool
}

// Port is one port of a module: an identifier, a type, and its
// input/output direction flags. A port may be both input and output
// (inout).
type Port struct {
	Identifier string
	Type       expr.Type
	Input      bool
	Output     bool
}

// Module groups a transition system's ports under a single identifier.
type Module struct {
	Identifier string
	Ports      []Port
}

// Namespace is the collaborator that the lasso-constraint emitter
// consults to build the comparison vector: it exposes a module's symbol
// table and its ports without requiring the core to understand HDL
// elaboration.
type Namespace interface {
	// SymbolsByModule returns every symbol of the symbol table belonging
	// to module. Order is significant: the comparison vector is built by
	// walking this slice in order, then the module's ports.
	SymbolsByModule(module string) []TableSymbol

	// LookupModule resolves module to its Module record. It returns an
	// error if no such module exists in the namespace.
	LookupModule(module string) (Module, error)
}

// StaticNamespace is a fixed, in-memory Namespace, sufficient for tests
// and for hosts that have already flattened their symbol table into
// plain slices before invoking this core.
type StaticNamespace struct {
	Symbols map[string][]TableSymbol
	Modules map[string]Module
}

// NewStaticNamespace returns an empty StaticNamespace ready to be
// populated via AddSymbol/AddModule.
func NewStaticNamespace() *StaticNamespace {
	return &StaticNamespace{
		Symbols: make(map[string][]TableSymbol),
		Modules: make(map[string]Module),
	}
}

// AddSymbol registers sym as belonging to module.
func (ns *StaticNamespace) AddSymbol(module string, sym TableSymbol) {
	ns.Symbols[module] = append(ns.Symbols[module], sym)
}

// AddModule registers mod under its own identifier.
func (ns *StaticNamespace) AddModule(mod Module) {
	ns.Modules[mod.Identifier] = mod
}

// SymbolsByModule implements Namespace.
func (ns *StaticNamespace) SymbolsByModule(module string) []TableSymbol {
	return ns.Symbols[module]
}

// LookupModule implements Namespace.
func (ns *StaticNamespace) LookupModule(module string) (Module, error) {
	mod, ok := ns.Modules[module]
	if !ok {
		return Module{}, &MalformedExpressionError{Reason: "no such module: " + module}
	}
	return mod, nil
}
