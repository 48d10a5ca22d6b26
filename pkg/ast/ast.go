// Copyright Consensys Software Inc.
//
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

// Package ast defines the tree shape produced by the parser, mutated in place
// by the resolver and rename passes, and finally read by the emitter. Every
// node carries a source.Loc used only for diagnostics: locations are
// preserved through every pass but never compared for equality.
package ast

import "github.com/mxxo/trashcan-go/pkg/source"

// Node provides the functionality common to every element of the tree.
type Node interface {
	// Location returns the byte range in the original source text this node
	// was parsed from (or source.Nowhere() for a synthesized node).
	Location() source.Loc
}

// Ident is a case-sensitive source identifier together with the location it
// was parsed from. Two idents with the same Name but different Locs still
// denote the "same" name for resolution purposes; the Loc exists purely to
// point diagnostics at the right place.
type Ident struct {
	Name string
	Loc  source.Loc
}

// NewIdent constructs an identifier at the given location.
func NewIdent(name string, loc source.Loc) Ident {
	return Ident{name, loc}
}

// Location implements Node.
func (i Ident) Location() source.Loc {
	return i.Loc
}

// String returns the identifier's source text.
func (i Ident) String() string {
	return i.Name
}

// Access is the visibility of a module or item.
type Access uint8

const (
	// Public items are visible from any module.
	Public Access = iota
	// Private items are visible only from within their declaring module.
	Private
)

// String renders an access mode the way it appears in diagnostics.
func (a Access) String() string {
	if a == Private {
		return "private"
	}

	return "public"
}

// ParamMode is the passing convention of a function parameter (or, re-used,
// of a for-loop induction variable).
type ParamMode uint8

const (
	// ByVal passes a copy of the argument.
	ByVal ParamMode = iota
	// ByRef passes the argument by reference.
	ByRef
)

// String renders a parameter mode the way it appears in diagnostics.
func (m ParamMode) String() string {
	if m == ByRef {
		return "byref"
	}

	return "byval"
}

// ModuleKind distinguishes a plain code module from a class module.
type ModuleKind uint8

const (
	// NormalModule is an ordinary (non-instantiable) code module.
	NormalModule ModuleKind = iota
	// ClassModule is an instantiable class module.
	ClassModule
)

// Dumpster is the whole compilation unit: every module being compiled
// together, in the order they were parsed.
type Dumpster struct {
	Modules []*Module
}

// NewDumpster constructs a dumpster from an ordered set of modules.
func NewDumpster(modules ...*Module) *Dumpster {
	return &Dumpster{modules}
}

// ModuleNames returns the declared name of every module, in declaration
// order. Useful for diagnostics and for tests asserting on dumpster shape.
func (d *Dumpster) ModuleNames() []string {
	names := make([]string, len(d.Modules))
	for i, m := range d.Modules {
		names[i] = m.Name.Name
	}

	return names
}

// Module is a named container of items. Module names are unique within a
// Dumpster (enforced by the symbol table builder, not by this type).
type Module struct {
	NodeLoc source.Loc
	Name    Ident
	Kind    ModuleKind
	Access  Access
	Items   []Item
}

// Location implements Node.
func (m *Module) Location() source.Loc {
	return m.NodeLoc
}

// Add appends a new item to this module.
func (m *Module) Add(item Item) {
	m.Items = append(m.Items, item)
}
