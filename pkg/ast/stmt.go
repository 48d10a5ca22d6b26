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

// Stmt is the tagged union of every statement form.
type Stmt interface {
	Node
	isStmt()
}

// CompoundOp enumerates the assignment operators (`=`, `+=`, ...).
type CompoundOp uint8

const (
	// Assign is plain `=`.
	Assign CompoundOp = iota
	// AddAssign is `+=`.
	AddAssign
	// SubAssign is `-=`.
	SubAssign
	// MulAssign is `*=`.
	MulAssign
	// DivAssign is `/=`.
	DivAssign
)

// ExprStmt evaluates an expression for its side effects.
type ExprStmt struct {
	NodeLoc source.Loc
	Value   Expr
}

// Location implements Node.
func (s *ExprStmt) Location() source.Loc { return s.NodeLoc }
func (s *ExprStmt) isStmt()              {}

// VarDeclEntry is one `name : type [= init]` clause of a declaration
// statement.
type VarDeclEntry struct {
	Name Ident
	Type Type
	Init Expr // nil if uninitialized
}

// VarDecl declares one or more local variables.
type VarDecl struct {
	NodeLoc source.Loc
	Entries []VarDeclEntry
}

// Location implements Node.
func (s *VarDecl) Location() source.Loc { return s.NodeLoc }
func (s *VarDecl) isStmt()              {}

// AssignStmt assigns a (possibly compound) value to a place expression.
type AssignStmt struct {
	NodeLoc source.Loc
	Place   Expr
	Op      CompoundOp
	Value   Expr
}

// Location implements Node.
func (s *AssignStmt) Location() source.Loc { return s.NodeLoc }
func (s *AssignStmt) isStmt()              {}

// ReturnStmt returns from the enclosing function, optionally with a value.
type ReturnStmt struct {
	NodeLoc source.Loc
	Value   Expr // nil for a bare return
}

// Location implements Node.
func (s *ReturnStmt) Location() source.Loc { return s.NodeLoc }
func (s *ReturnStmt) isStmt()              {}

// PrintStmt is a debug print statement.
type PrintStmt struct {
	NodeLoc source.Loc
	Args    []Expr
}

// Location implements Node.
func (s *PrintStmt) Location() source.Loc { return s.NodeLoc }
func (s *PrintStmt) isStmt()              {}

// ElsifClause is one `elsif cond { body }` arm of an IfStmt.
type ElsifClause struct {
	Cond Expr
	Body []Stmt
}

// IfStmt is a conditional with zero or more elsif arms and an optional else
// arm (Else == nil means no else arm).
type IfStmt struct {
	NodeLoc source.Loc
	Cond    Expr
	Body    []Stmt
	Elsif   []ElsifClause
	Else    []Stmt
}

// Location implements Node.
func (s *IfStmt) Location() source.Loc { return s.NodeLoc }
func (s *IfStmt) isStmt()              {}

// WhileLoop repeats its body while its condition holds.
type WhileLoop struct {
	NodeLoc source.Loc
	Cond    Expr
	Body    []Stmt
}

// Location implements Node.
func (s *WhileLoop) Location() source.Loc { return s.NodeLoc }
func (s *WhileLoop) isStmt()              {}

// ForSpec is the tagged union of the two forms a for-loop's iteration domain
// can take.
type ForSpec interface {
	isForSpec()
}

// RangeSpec iterates a loop variable from From to To (inclusive), optionally
// stepping by Step each iteration (Step == nil means a step of 1).
type RangeSpec struct {
	From, To Expr
	Step     Expr
}

func (RangeSpec) isForSpec() {}

// EachSpec iterates a loop variable over the elements of an array-typed
// expression.
type EachSpec struct {
	Array Expr
}

func (EachSpec) isForSpec() {}

// ForLoopVar is the induction variable declared by a ForLoop.
type ForLoopVar struct {
	Name Ident
	Type Type
	Mode ParamMode
}

// ForLoop iterates its body once per value of its induction variable, per
// Spec.
type ForLoop struct {
	NodeLoc source.Loc
	Var     ForLoopVar
	Spec    ForSpec
	Body    []Stmt
}

// Location implements Node.
func (s *ForLoop) Location() source.Loc { return s.NodeLoc }
func (s *ForLoop) isStmt()              {}

// ForAlong iterates a tuple of induction variables in lock-step over the
// dimensions of an array-typed expression (e.g. "for i, j along arr").
type ForAlong struct {
	NodeLoc source.Loc
	Vars    []Ident
	Along   Expr
	Body    []Stmt
}

// Location implements Node.
func (s *ForAlong) Location() source.Loc { return s.NodeLoc }
func (s *ForAlong) isStmt()              {}
