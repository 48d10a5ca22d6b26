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

// Package visitor implements the traversal engine shared by the symbol table
// builder and the rename passes. It threads a NameCtxt through every
// identifier it visits so that a hook never has to re-derive "is this a
// definition or a use, and in what namespace" for itself. The names of
// named call arguments, the name of an ObjectType, and the text of a RawExpr
// are not visited.
package visitor

import "github.com/mxxo/trashcan-go/pkg/ast"

// NameCtxt describes why a particular identifier is being visited: which
// namespace it belongs to, and whether this is the site defining it or a site
// using it.
type NameCtxt interface {
	isNameCtxt()
}

// DefModule marks an identifier as the name of a module being defined.
type DefModule struct{}

func (DefModule) isNameCtxt() {}

// DefType marks an identifier as the name of a type (struct) being defined in
// Module.
type DefType struct {
	Module string
}

func (DefType) isNameCtxt() {}

// DefFunction marks an identifier as the name of a function being defined in
// Module.
type DefFunction struct {
	Module string
}

func (DefFunction) isNameCtxt() {}

// DefValue marks an identifier as a variable or constant being defined.
// Function is nil for a module-level binding (Static), or names the
// enclosing function for a local (let-bound) value.
type DefValue struct {
	Module   string
	Function *string
	Type     ast.Type
	Mode     *ast.ParamMode
}

func (DefValue) isNameCtxt() {}

// DefParam marks an identifier as a function parameter being defined.
type DefParam struct {
	Module   string
	Function string
	Type     ast.Type
	Mode     ast.ParamMode
}

func (DefParam) isNameCtxt() {}

// DefConstant marks an identifier as a module-level constant being defined.
type DefConstant struct {
	Module string
	Type   ast.Type
	Access ast.Access
}

func (DefConstant) isNameCtxt() {}

// DefMember marks an identifier as a struct member name being defined.
type DefMember struct {
	Module string
	Struct string
	Type   ast.Type
}

func (DefMember) isNameCtxt() {}

// UseFunction marks an identifier as a use-site reference to a function.
// AccessScope is Private when the reference originates within Module
// (private functions of Module are visible), Public otherwise.
type UseFunction struct {
	Module      string
	AccessScope ast.Access
}

func (UseFunction) isNameCtxt() {}

// UseType marks an identifier as a use-site reference to a type.
type UseType struct {
	Module      string
	AccessScope ast.Access
}

func (UseType) isNameCtxt() {}

// UseValue marks an identifier as a use-site reference to a value (variable,
// parameter or constant). Function, if non-nil, is the function enclosing
// the use, so that locals can shadow module-level symbols of the same name.
type UseValue struct {
	Module      string
	Function    *string
	AccessScope ast.Access
}

func (UseValue) isNameCtxt() {}

// IdentCtxtFromPath strips the module qualifier (if any) from path, and
// returns the final identifier together with the ctxt under which it should
// be looked up: a qualified path is always looked up with Public access
// scope (qualification crosses a module boundary), while an unqualified path
// inherits ctxt's own access scope and module.
func IdentCtxtFromPath(path ast.Path, ctxt NameCtxt) (ast.Ident, NameCtxt) {
	if !path.IsQualified() {
		return path.Name, ctxt
	}

	module := path.Module.Name

	switch ctxt.(type) {
	case UseFunction:
		return path.Name, UseFunction{module, ast.Public}
	case UseType:
		return path.Name, UseType{module, ast.Public}
	case UseValue:
		return path.Name, UseValue{module, nil, ast.Public}
	default:
		return path.Name, ctxt
	}
}
