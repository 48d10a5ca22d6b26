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

// Expr is the tagged union of every expression form.
type Expr interface {
	Node
	isExpr()
}

// BinOp enumerates the binary operators.
type BinOp uint8

// Binary operator kinds, in the precedence ladder the parser is presumed to
// implement (§9 of the design notes): "^" binds tightest, then "*","/","\",
// "Mod", then "+","-", then the comparisons, then "And"/"Or"/"Xor".
const (
	Add BinOp = iota
	Sub
	Mul
	Div
	IntDiv
	Mod
	Pow
	Eq
	Neq
	Lt
	Lte
	Gt
	Gte
	And
	Or
	Xor
	Concat
)

// UnOp enumerates the unary operators.
type UnOp uint8

const (
	// Neg negates a numeric expression.
	Neg UnOp = iota
	// Not logically (or bitwise) inverts a boolean/integer expression.
	Not
)

// ExtentKind enumerates the array-extent queries.
type ExtentKind uint8

const (
	// FirstIndex queries the first valid index of a dimension.
	FirstIndex ExtentKind = iota
	// LastIndex queries the last valid index of a dimension.
	LastIndex
	// Length queries the number of elements along a dimension.
	Length
)

// LiteralKind enumerates the literal forms.
type LiteralKind uint8

const (
	// IntLiteral is a signed integer constant.
	IntLiteral LiteralKind = iota
	// FloatLiteral is a floating point constant.
	FloatLiteral
	// StringLiteral is a quoted string constant.
	StringLiteral
	// BoolLiteral is True/False.
	BoolLiteral
)

// Literal is a constant value appearing directly in source, or used as a
// parameter default.
type Literal struct {
	NodeLoc source.Loc
	Kind    LiteralKind
	Int     int64
	Float   float64
	Str     string
	Bool    bool
}

// NewIntLiteral constructs an integer literal.
func NewIntLiteral(v int64, loc source.Loc) Literal {
	return Literal{NodeLoc: loc, Kind: IntLiteral, Int: v}
}

// NewFloatLiteral constructs a floating point literal.
func NewFloatLiteral(v float64, loc source.Loc) Literal {
	return Literal{NodeLoc: loc, Kind: FloatLiteral, Float: v}
}

// NewStringLiteral constructs a string literal.
func NewStringLiteral(v string, loc source.Loc) Literal {
	return Literal{NodeLoc: loc, Kind: StringLiteral, Str: v}
}

// NewBoolLiteral constructs a boolean literal.
func NewBoolLiteral(v bool, loc source.Loc) Literal {
	return Literal{NodeLoc: loc, Kind: BoolLiteral, Bool: v}
}

// Location implements Node.
func (l Literal) Location() source.Loc { return l.NodeLoc }

// LiteralExpr wraps a Literal as an expression.
type LiteralExpr struct {
	Value Literal
}

// Location implements Node.
func (e *LiteralExpr) Location() source.Loc { return e.Value.NodeLoc }
func (e *LiteralExpr) isExpr()              {}

// NameExpr refers to a value (variable, parameter, or constant) by path.
type NameExpr struct {
	NodeLoc source.Loc
	Target  Path
}

// Location implements Node.
func (e *NameExpr) Location() source.Loc { return e.NodeLoc }
func (e *NameExpr) isExpr()              {}

// BinaryExpr applies a binary operator to two operands.
type BinaryExpr struct {
	NodeLoc     source.Loc
	Op          BinOp
	Left, Right Expr
}

// Location implements Node.
func (e *BinaryExpr) Location() source.Loc { return e.NodeLoc }
func (e *BinaryExpr) isExpr()              {}

// UnaryExpr applies a unary operator to one operand.
type UnaryExpr struct {
	NodeLoc source.Loc
	Op      UnOp
	Operand Expr
}

// Location implements Node.
func (e *UnaryExpr) Location() source.Loc { return e.NodeLoc }
func (e *UnaryExpr) isExpr()              {}

// CondExpr is the ternary conditional expression `cond ? then : else`.
type CondExpr struct {
	NodeLoc          source.Loc
	Cond, Then, Else Expr
}

// Location implements Node.
func (e *CondExpr) Location() source.Loc { return e.NodeLoc }
func (e *CondExpr) isExpr()              {}

// IndexExpr indexes into an array-typed expression.
type IndexExpr struct {
	NodeLoc source.Loc
	Array   Expr
	Index   []Expr
}

// Location implements Node.
func (e *IndexExpr) Location() source.Loc { return e.NodeLoc }
func (e *IndexExpr) isExpr()              {}

// MemberExpr accesses a struct member.
type MemberExpr struct {
	NodeLoc source.Loc
	Object  Expr
	Member  Ident
}

// Location implements Node.
func (e *MemberExpr) Location() source.Loc { return e.NodeLoc }
func (e *MemberExpr) isExpr()              {}

// Arg is one argument of a call: either positional (Name == nil) or
// named-optional (Name != nil), per the function's optional-parameter block.
type Arg struct {
	Name  *Ident
	Value Expr
}

// MemberInvokeExpr invokes a method on an object.
type MemberInvokeExpr struct {
	NodeLoc source.Loc
	Object  Expr
	Method  Ident
	Args    []Arg
}

// Location implements Node.
func (e *MemberInvokeExpr) Location() source.Loc { return e.NodeLoc }
func (e *MemberInvokeExpr) isExpr()              {}

// CallExpr invokes a free function by path, with positional arguments
// followed by any named-optional arguments.
type CallExpr struct {
	NodeLoc source.Loc
	Callee  Path
	Args    []Arg
}

// Location implements Node.
func (e *CallExpr) Location() source.Loc { return e.NodeLoc }
func (e *CallExpr) isExpr()              {}

// CastExpr is an `as`-cast of an expression to an explicit type.
type CastExpr struct {
	NodeLoc source.Loc
	Operand Expr
	Target  Type
}

// Location implements Node.
func (e *CastExpr) Location() source.Loc { return e.NodeLoc }
func (e *CastExpr) isExpr()              {}

// ExtentExpr queries the first index, last index, or length of one dimension
// of an array-typed expression.
type ExtentExpr struct {
	NodeLoc source.Loc
	Kind    ExtentKind
	Array   Expr
	Dim     Expr
}

// Location implements Node.
func (e *ExtentExpr) Location() source.Loc { return e.NodeLoc }
func (e *ExtentExpr) isExpr()              {}

// RawExpr is an opaque passthrough fragment of target-language text, emitted
// verbatim by the code generator. The core treats its contents as inert: no
// identifier inside a RawExpr is visited, resolved, or renamed.
type RawExpr struct {
	NodeLoc  source.Loc
	Fragment string
}

// Location implements Node.
func (e *RawExpr) Location() source.Loc { return e.NodeLoc }
func (e *RawExpr) isExpr()              {}
