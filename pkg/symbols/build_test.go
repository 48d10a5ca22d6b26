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
package symbols

import (
	"testing"

	"github.com/mxxo/trashcan-go/pkg/ast"
	"github.com/mxxo/trashcan-go/pkg/source"
	"github.com/mxxo/trashcan-go/pkg/visitor"
)

func ident(name string) ast.Ident {
	return ast.NewIdent(name, source.Nowhere())
}

func i32() ast.Type {
	return ast.NewPrimitiveType(ast.Int32, source.Nowhere())
}

// S1 — forward-referenced struct: struct A { x: B } declared before struct B.
func TestBuildResolvesForwardReferencedStruct(t *testing.T) {
	structA := &ast.StructDef{
		Name:   ident("A"),
		Access: ast.Public,
		Members: []ast.Member{
			{Name: ident("x"), Type: ast.NewDeferredType(ast.NewPath(ident("B")), source.Nowhere())},
		},
	}
	structB := &ast.StructDef{
		Name:    ident("B"),
		Access:  ast.Public,
		Members: []ast.Member{{Name: ident("y"), Type: i32()}},
	}
	module := &ast.Module{Name: ident("M"), Items: []ast.Item{structA, structB}}
	d := ast.NewDumpster(module)

	table, err := Build(d)
	if err != nil {
		t.Fatalf("Build() failed: %s", err)
	}

	mt, ok := table.Module("M")
	if !ok {
		t.Fatalf("module M not found in symbol table")
	}

	sym, ok := mt.Scope.Lookup("A")
	if !ok {
		t.Fatalf("struct A not found")
	}

	ss, ok := sym.(StructSymbol)
	if !ok {
		t.Fatalf("A resolved to %T, want StructSymbol", sym)
	}

	xType, ok := ss.Members["x"].(*ast.StructType)
	if !ok {
		t.Fatalf("A.members[x] is %T, want *ast.StructType", ss.Members["x"])
	}

	if xType.Target.String() != "B" {
		t.Errorf("A.members[x] targets %q, want %q", xType.Target.String(), "B")
	}
}

// S3 — duplicate item: two `fn foo` in one module.
func TestBuildRejectsDuplicateFunction(t *testing.T) {
	fn1 := &ast.FunDef{Name: ident("foo"), Access: ast.Public}
	fn2 := &ast.FunDef{Name: ident("foo"), Access: ast.Public}
	module := &ast.Module{Name: ident("M"), Items: []ast.Item{fn1, fn2}}
	d := ast.NewDumpster(module)

	_, err := Build(d)
	if err == nil {
		t.Fatal("Build() succeeded, want DuplicateSymbol error")
	}

	if err.Kind != DuplicateSymbol {
		t.Errorf("Build() error kind = %s, want %s", err.Kind, DuplicateSymbol)
	}
}

// S4 — access violation: module B references module A's private function.
func TestBuildRejectsAccessViolation(t *testing.T) {
	helper := &ast.FunDef{Name: ident("helper"), Access: ast.Private}
	moduleA := &ast.Module{Name: ident("A"), Items: []ast.Item{helper}}

	caller := &ast.FunDef{
		Name:   ident("caller"),
		Access: ast.Public,
		Body: []ast.Stmt{
			&ast.ExprStmt{Value: &ast.CallExpr{Callee: ast.NewQualifiedPath(ident("A"), ident("helper"))}},
		},
	}
	moduleB := &ast.Module{Name: ident("B"), Items: []ast.Item{caller}}

	d := ast.NewDumpster(moduleA, moduleB)

	_, err := Build(d)
	if err == nil {
		t.Fatal("Build() succeeded, want SymbolAccess error")
	}

	if err.Kind != SymbolAccess {
		t.Errorf("Build() error kind = %s, want %s", err.Kind, SymbolAccess)
	}
}

// Invariant 6 — round-trip lookup of every module-level symbol.
func TestRoundTripLookup(t *testing.T) {
	constDef := &ast.Constant{Name: ident("Pi"), Type: i32(), Value: ast.NewIntLiteral(3, source.Nowhere())}
	module := &ast.Module{Name: ident("M"), Items: []ast.Item{constDef}}
	d := ast.NewDumpster(module)

	table, err := Build(d)
	if err != nil {
		t.Fatalf("Build() failed: %s", err)
	}

	path := ast.NewPath(ident("Pi"))
	sym, lookupErr := table.SymbolAtPath(path, visitor.UseValue{Module: "M", AccessScope: ast.Private}, source.Nowhere())
	if lookupErr != nil {
		t.Fatalf("SymbolAtPath() failed: %s", lookupErr)
	}

	if _, ok := sym.(ConstSymbol); !ok {
		t.Errorf("SymbolAtPath() returned %T, want ConstSymbol", sym)
	}
}

// Invariant 7 — shadowing precedence: a function-local value shadows a
// module-level static of the same name.
func TestLocalShadowsModuleLevelSymbol(t *testing.T) {
	staticDef := &ast.Static{Name: ident("x"), Type: i32()}
	fn := &ast.FunDef{
		Name: ident("f"),
		Body: []ast.Stmt{
			&ast.VarDecl{Entries: []ast.VarDeclEntry{{Name: ident("x"), Type: i32()}}},
		},
	}
	module := &ast.Module{Name: ident("M"), Items: []ast.Item{staticDef, fn}}
	d := ast.NewDumpster(module)

	table, err := Build(d)
	if err != nil {
		t.Fatalf("Build() failed: %s", err)
	}

	fname := "f"
	path := ast.NewPath(ident("x"))
	sym, lookupErr := table.SymbolAtPath(
		path,
		visitor.UseValue{Module: "M", Function: &fname, AccessScope: ast.Private},
		source.Nowhere(),
	)
	if lookupErr != nil {
		t.Fatalf("SymbolAtPath() failed: %s", lookupErr)
	}

	local, ok := sym.(ValueSymbol)
	if !ok {
		t.Fatalf("SymbolAtPath() returned %T, want ValueSymbol", sym)
	}

	if local.Mode != nil {
		t.Errorf("resolved symbol looks like a parameter (Mode != nil); expected the plain local declared in f's body")
	}

	if local.Type != fn.Body[0].(*ast.VarDecl).Entries[0].Type {
		t.Errorf("resolved symbol is not the local declared in f's body (the module-level static was returned)")
	}
}

// A module-level static's initializer must be checked like any other
// value-position expression: a reference to an undeclared name must not
// silently build.
func TestBuildRejectsUndefinedNameInStaticInit(t *testing.T) {
	bad := &ast.Static{
		Name: ident("y"),
		Type: i32(),
		Init: &ast.BinaryExpr{
			Op:    ast.Add,
			Left:  &ast.NameExpr{Target: ast.NewPath(ident("x"))},
			Right: &ast.LiteralExpr{Value: ast.NewIntLiteral(1, source.Nowhere())},
		},
	}
	module := &ast.Module{Name: ident("M"), Items: []ast.Item{bad}}
	d := ast.NewDumpster(module)

	_, err := Build(d)
	if err == nil {
		t.Fatal("Build() succeeded, want NotDefined error for undefined name in static initializer")
	}

	if err.Kind != NotDefined {
		t.Errorf("Build() error kind = %s, want %s", err.Kind, NotDefined)
	}
}

// A static initializer referencing a previously-declared module-level
// constant must still build successfully.
func TestBuildAcceptsStaticInitReferencingConstant(t *testing.T) {
	constDef := &ast.Constant{Name: ident("One"), Type: i32(), Value: ast.NewIntLiteral(1, source.Nowhere())}
	static := &ast.Static{
		Name: ident("y"),
		Type: i32(),
		Init: &ast.NameExpr{Target: ast.NewPath(ident("One"))},
	}
	module := &ast.Module{Name: ident("M"), Items: []ast.Item{constDef, static}}
	d := ast.NewDumpster(module)

	if _, err := Build(d); err != nil {
		t.Fatalf("Build() failed: %s", err)
	}
}

func TestBuildFailsOnUnresolvableDeferredType(t *testing.T) {
	structA := &ast.StructDef{
		Name:   ident("A"),
		Access: ast.Public,
		Members: []ast.Member{
			{Name: ident("x"), Type: ast.NewDeferredType(ast.NewPath(ident("Ghost")), source.Nowhere())},
		},
	}
	module := &ast.Module{Name: ident("M"), Items: []ast.Item{structA}}
	d := ast.NewDumpster(module)

	_, err := Build(d)
	if err == nil {
		t.Fatal("Build() succeeded, want NotDefined error for unresolvable deferred type")
	}

	if err.Kind != NotDefined {
		t.Errorf("Build() error kind = %s, want %s", err.Kind, NotDefined)
	}
}
