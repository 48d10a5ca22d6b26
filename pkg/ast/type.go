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

// Type is the tagged union of every type expression which can appear in the
// tree. Deferred is the one variant which must not survive the symbol table
// build: once symbols.Build has run, every Deferred node has been rewritten
// into a Struct node (or the build has failed).
type Type interface {
	Node
	isType()
}

// Primitive enumerates the built-in (non-composite) types.
type Primitive uint8

// The primitive type kinds, grouped the way the target dialect groups its
// built-in types.
const (
	BoolType Primitive = iota
	Int8
	Int16
	Int32
	IntPtr
	Float32
	Float64
	CurrencyType
	DateType
	VariantType
	StringType
)

// String renders a primitive kind for diagnostics.
func (p Primitive) String() string {
	switch p {
	case BoolType:
		return "bool"
	case Int8:
		return "i8"
	case Int16:
		return "i16"
	case Int32:
		return "i32"
	case IntPtr:
		return "iptr"
	case Float32:
		return "f32"
	case Float64:
		return "f64"
	case CurrencyType:
		return "currency"
	case DateType:
		return "date"
	case VariantType:
		return "variant"
	case StringType:
		return "string"
	default:
		return "?"
	}
}

// PrimitiveType is a reference to one of the built-in primitive kinds.
type PrimitiveType struct {
	NodeLoc source.Loc
	Kind    Primitive
}

// NewPrimitiveType constructs a primitive type reference.
func NewPrimitiveType(kind Primitive, loc source.Loc) *PrimitiveType {
	return &PrimitiveType{loc, kind}
}

// Location implements Node.
func (t *PrimitiveType) Location() source.Loc { return t.NodeLoc }
func (t *PrimitiveType) isType()              {}

// ObjectType is a reference to a host-provided (COM) object type, named but
// never resolved against the symbol table.
type ObjectType struct {
	NodeLoc source.Loc
	Name    Ident
}

// Location implements Node.
func (t *ObjectType) Location() source.Loc { return t.NodeLoc }
func (t *ObjectType) isType()              {}

// StructType is a resolved reference to a struct declared somewhere in the
// dumpster.
type StructType struct {
	NodeLoc source.Loc
	Target  Path
}

// Location implements Node.
func (t *StructType) Location() source.Loc { return t.NodeLoc }
func (t *StructType) isType()              {}

// EnumType is a resolved reference to an enum declared somewhere in the
// dumpster.
type EnumType struct {
	NodeLoc source.Loc
	Target  Path
}

// Location implements Node.
func (t *EnumType) Location() source.Loc { return t.NodeLoc }
func (t *EnumType) isType()              {}

// ArrayType is an array of some element type, optionally with a fixed static
// bound (nil means dynamically sized).
type ArrayType struct {
	NodeLoc source.Loc
	Elem    Type
	Bound   *uint32
}

// Location implements Node.
func (t *ArrayType) Location() source.Loc { return t.NodeLoc }
func (t *ArrayType) isType()              {}

// DeferredType is a parsed-but-unresolved named type reference. It is the one
// transient variant of Type: the symbol table build rewrites every
// DeferredType node into a StructType node, or fails with a NotDefined /
// TypeError diagnostic.
type DeferredType struct {
	NodeLoc source.Loc
	Target  Path
}

// NewDeferredType constructs a deferred type reference awaiting resolution.
func NewDeferredType(target Path, loc source.Loc) *DeferredType {
	return &DeferredType{loc, target}
}

// Location implements Node.
func (t *DeferredType) Location() source.Loc { return t.NodeLoc }
func (t *DeferredType) isType()              {}

// TypeString renders t for diagnostics and symbol table dumps.
func TypeString(t Type) string {
	switch v := t.(type) {
	case *PrimitiveType:
		return v.Kind.String()
	case *ObjectType:
		return v.Name.Name
	case *StructType:
		return v.Target.String()
	case *EnumType:
		return v.Target.String()
	case *ArrayType:
		if v.Bound != nil {
			return TypeString(v.Elem) + "[]"
		}

		return TypeString(v.Elem) + "[..]"
	case *DeferredType:
		return v.Target.String() + "?"
	default:
		return "?"
	}
}
