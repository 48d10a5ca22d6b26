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
package ast

import "github.com/mxxo/trashcan-go/pkg/source"

// Item is the tagged union of the four things which may appear directly
// inside a Module.
type Item interface {
	Node
	// ItemName returns the declared name of this item.
	ItemName() Ident
	isItem()
}

// Param is one fixed (required) function parameter.
type Param struct {
	Name Ident
	Type Type
	Mode ParamMode
}

// OptionalParams is the tagged union of the two ways a function's optional
// tail can be declared: an explicit list of (param, default) pairs, or a
// single trailing ParamArray absorbing any number of extra arguments.
type OptionalParams interface {
	isOptionalParams()
}

// OptionalParam is one `name : type = default` entry of an OptionalParamList.
type OptionalParam struct {
	Name    Ident
	Type    Type
	Default Literal
}

// OptionalParamList is an explicit, ordered list of optional parameters, each
// with its own default value.
type OptionalParamList struct {
	Params []OptionalParam
}

func (OptionalParamList) isOptionalParams() {}

// ParamArraySpec is a single variadic parameter absorbing any number of
// trailing arguments (VBA's ParamArray).
type ParamArraySpec struct {
	Param Param
}

func (ParamArraySpec) isOptionalParams() {}

// FunDef is a function (or sub, when Ret is nil) definition.
type FunDef struct {
	NodeLoc  source.Loc
	Name     Ident
	Access   Access
	Ret      Type // nil for a sub with no return value
	Params   []Param
	Optional OptionalParams // nil if this function has no optional tail
	Body     []Stmt
}

// Location implements Node.
func (f *FunDef) Location() source.Loc { return f.NodeLoc }

// ItemName implements Item.
func (f *FunDef) ItemName() Ident { return f.Name }
func (f *FunDef) isItem()         {}

// Member is one typed field of a StructDef.
type Member struct {
	NodeLoc source.Loc
	Name    Ident
	Type    Type
}

// Location implements Node.
func (m Member) Location() source.Loc { return m.NodeLoc }

// StructDef is a custom structure type definition.
type StructDef struct {
	NodeLoc source.Loc
	Name    Ident
	Access  Access
	Members []Member
}

// Location implements Node.
func (s *StructDef) Location() source.Loc { return s.NodeLoc }

// ItemName implements Item.
func (s *StructDef) ItemName() Ident { return s.Name }
func (s *StructDef) isItem()         {}

// Static is a module-level mutable binding.
type Static struct {
	NodeLoc source.Loc
	Name    Ident
	Type    Type
	Init    Expr // nil if uninitialized
}

// Location implements Node.
func (s *Static) Location() source.Loc { return s.NodeLoc }

// ItemName implements Item.
func (s *Static) ItemName() Ident { return s.Name }
func (s *Static) isItem()         {}

// Constant is a compile-time constant definition.
type Constant struct {
	NodeLoc source.Loc
	Name    Ident
	Type    Type
	Value   Literal
}

// Location implements Node.
func (c *Constant) Location() source.Loc { return c.NodeLoc }

// ItemName implements Item.
func (c *Constant) ItemName() Ident { return c.Name }
func (c *Constant) isItem()         {}
