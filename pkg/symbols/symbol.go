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

// Package symbols implements the symbol table builder (§4.3): the
// algorithmic core of the middle end. It exposes a read interface the code
// emitter consumes, and a three-pass Build function the resolver drives.
package symbols

import (
	"github.com/mxxo/trashcan-go/pkg/ast"
	"github.com/mxxo/trashcan-go/pkg/util"
)

// Symbol is one entry of the symbol table. Every Symbol knows its own access
// mode, which governs whether it is visible from outside its declaring
// module.
type Symbol interface {
	// Access returns the visibility of this symbol. Const and Value symbols
	// are always Public: their visibility is already governed entirely by
	// whether they are reached through module or local scope, not by a
	// separate access modifier.
	Access() ast.Access
}

// ConstSymbol is a compile-time constant definition.
type ConstSymbol struct {
	Type ast.Type
}

// Access implements Symbol.
func (ConstSymbol) Access() ast.Access { return ast.Public }

// ValueSymbol is a variable or parameter binding. Mode is nil for a plain
// local or module-level static; it is set for a function parameter and for a
// for-loop induction variable.
type ValueSymbol struct {
	Type ast.Type
	Mode *ast.ParamMode
}

// Access implements Symbol.
func (ValueSymbol) Access() ast.Access { return ast.Public }

// FunSymbol is a function definition, together with the symbol table of its
// locals (parameters and declared variables).
type FunSymbol struct {
	Def    *ast.FunDef
	Locals *Scope
}

// Access implements Symbol.
func (s FunSymbol) Access() ast.Access { return s.Def.Access }

// StructSymbol is a struct definition, together with the resolved type of
// each of its members.
type StructSymbol struct {
	Def     *ast.StructDef
	Members map[string]ast.Type
}

// Access implements Symbol.
func (s StructSymbol) Access() ast.Access { return s.Def.Access }

// MemberTypes returns a shallow clone of this struct's resolved member
// types, so that a caller (e.g. the emitter) consulting the symbol table
// cannot reach in and mutate the table's own internal map.
func (s StructSymbol) MemberTypes() map[string]ast.Type {
	return util.ShallowCloneMap(s.Members)
}

// IsFun reports whether sym is a FunSymbol.
func IsFun(sym Symbol) bool {
	_, ok := sym.(FunSymbol)
	return ok
}

// IsStruct reports whether sym is a StructSymbol.
func IsStruct(sym Symbol) bool {
	_, ok := sym.(StructSymbol)
	return ok
}

// IsValue reports whether sym is a ConstSymbol or a ValueSymbol: the two
// kinds which may appear in a value-position use.
func IsValue(sym Symbol) bool {
	switch sym.(type) {
	case ConstSymbol, ValueSymbol:
		return true
	default:
		return false
	}
}

// kindName describes a symbol's kind for error messages.
func kindName(sym Symbol) string {
	switch sym.(type) {
	case ConstSymbol, ValueSymbol:
		return "a value"
	case FunSymbol:
		return "a function"
	case StructSymbol:
		return "a type"
	default:
		return "unknown"
	}
}
