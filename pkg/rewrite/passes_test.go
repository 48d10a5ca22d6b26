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
package rewrite

import (
	"testing"

	"github.com/mxxo/trashcan-go/pkg/ast"
	"github.com/mxxo/trashcan-go/pkg/gensym"
	"github.com/mxxo/trashcan-go/pkg/source"
)

func ident(name string) ast.Ident {
	return ast.NewIdent(name, source.Nowhere())
}

func nameExpr(name string) *ast.NameExpr {
	return &ast.NameExpr{Target: ast.NewPath(ident(name))}
}

func i32() ast.Type {
	return ast.NewPrimitiveType(ast.Int32, source.Nowhere())
}

// S2 — a function named after a reserved word of the target dialect gets
// gensym'd, and every call site follows along.
func TestVBKeywordGensymRenamesReservedWordAndItsCallSites(t *testing.T) {
	printFn := &ast.FunDef{Name: ident("Print"), Access: ast.Public}

	caller := &ast.FunDef{
		Name:   ident("caller"),
		Access: ast.Public,
		Body: []ast.Stmt{
			&ast.ExprStmt{Value: &ast.CallExpr{Callee: ast.NewPath(ident("Print"))}},
		},
	}

	module := &ast.Module{Name: ident("M"), Items: []ast.Item{printFn, caller}}
	d := ast.NewDumpster(module)

	VBKeywordGensym(d)

	if printFn.Name.Name == "Print" {
		t.Fatalf("function named after reserved word %q was not renamed", "Print")
	}

	if !gensym.IsGensym(printFn.Name.Name) {
		t.Errorf("renamed function name %q is not a recognisable gensym", printFn.Name.Name)
	}

	callee := caller.Body[0].(*ast.ExprStmt).Value.(*ast.CallExpr).Callee.Name.Name
	if callee != printFn.Name.Name {
		t.Errorf("call site still refers to %q, want renamed %q", callee, printFn.Name.Name)
	}
}

// A struct member whose name collides with a reserved word is renamed, and
// so is every member-access use site, even though a member's definition and
// use classify with different (module, function) scopes (DefMember carries
// its declaring module; UseMember carries none, per member.go's flat
// whole-program member namespace).
func TestVBKeywordGensymRenamesMemberAndItsUseSites(t *testing.T) {
	structDef := &ast.StructDef{
		Name:    ident("Foo"),
		Access:  ast.Public,
		Members: []ast.Member{{Name: ident("Print"), Type: i32()}},
	}

	accessor := &ast.FunDef{
		Name: ident("accessor"),
		Body: []ast.Stmt{
			&ast.ExprStmt{Value: &ast.MemberExpr{Object: nameExpr("obj"), Member: ident("Print")}},
		},
	}

	module := &ast.Module{Name: ident("M"), Items: []ast.Item{structDef, accessor}}
	d := ast.NewDumpster(module)

	VBKeywordGensym(d)

	memberName := structDef.Members[0].Name.Name
	if memberName == "Print" {
		t.Fatalf("member named after reserved word %q was not renamed", "Print")
	}

	if !gensym.IsGensym(memberName) {
		t.Errorf("renamed member %q is not a recognisable gensym", memberName)
	}

	use := accessor.Body[0].(*ast.ExprStmt).Value.(*ast.MemberExpr).Member.Name
	if use != memberName {
		t.Errorf("member-access use site still refers to %q, want renamed %q", use, memberName)
	}
}

// A name which is not a reserved word is left alone; sanity check that an
// ordinary function name survives untouched.
func TestVBKeywordGensymLeavesOrdinaryNamesAlone(t *testing.T) {
	fn := &ast.FunDef{Name: ident("ComputeTotal"), Access: ast.Public}
	module := &ast.Module{Name: ident("M"), Items: []ast.Item{fn}}
	d := ast.NewDumpster(module)

	VBKeywordGensym(d)

	if fn.Name.Name != "ComputeTotal" {
		t.Errorf("ordinary function name was renamed to %q", fn.Name.Name)
	}
}

// §4.4 pass B — a local variable shadowing its own enclosing function's name
// is renamed, and so is any use of it within that function's body.
func TestFnNameLocalGensymRenamesShadowingLocal(t *testing.T) {
	fn := &ast.FunDef{
		Name: ident("f"),
		Body: []ast.Stmt{
			&ast.VarDecl{Entries: []ast.VarDeclEntry{{Name: ident("f"), Type: i32()}}},
			&ast.ReturnStmt{Value: nameExpr("f")},
		},
	}
	module := &ast.Module{Name: ident("M"), Items: []ast.Item{fn}}
	d := ast.NewDumpster(module)

	FnNameLocalGensym(d)

	decl := fn.Body[0].(*ast.VarDecl)
	localName := decl.Entries[0].Name.Name

	if localName == "f" {
		t.Fatalf("local shadowing its enclosing function's name was not renamed")
	}

	if !gensym.IsGensym(localName) {
		t.Errorf("renamed local %q is not a recognisable gensym", localName)
	}

	if fn.Name.Name != "f" {
		t.Errorf("enclosing function's own name was renamed to %q, want unchanged", fn.Name.Name)
	}

	ret := fn.Body[1].(*ast.ReturnStmt).Value.(*ast.NameExpr).Target.Name.Name
	if ret != localName {
		t.Errorf("use site within the function still refers to %q, want renamed %q", ret, localName)
	}
}

// §4.4 pass C / S6 — two sibling for-loops reusing the same induction
// variable name must each get a distinct gensym, and each loop's own body
// must follow its own loop's rename without bleeding into the other's.
func TestForLoopVarGensymKeepsSiblingLoopsDistinct(t *testing.T) {
	loop1 := &ast.ForLoop{
		Var:  ast.ForLoopVar{Name: ident("i"), Type: i32()},
		Spec: ast.RangeSpec{From: &ast.LiteralExpr{Value: ast.NewIntLiteral(0, source.Nowhere())}, To: &ast.LiteralExpr{Value: ast.NewIntLiteral(9, source.Nowhere())}},
		Body: []ast.Stmt{
			&ast.ExprStmt{Value: nameExpr("i")},
		},
	}
	loop2 := &ast.ForLoop{
		Var:  ast.ForLoopVar{Name: ident("i"), Type: i32()},
		Spec: ast.RangeSpec{From: &ast.LiteralExpr{Value: ast.NewIntLiteral(0, source.Nowhere())}, To: &ast.LiteralExpr{Value: ast.NewIntLiteral(9, source.Nowhere())}},
		Body: []ast.Stmt{
			&ast.ExprStmt{Value: nameExpr("i")},
		},
	}

	fn := &ast.FunDef{Name: ident("f"), Body: []ast.Stmt{loop1, loop2}}
	module := &ast.Module{Name: ident("M"), Items: []ast.Item{fn}}
	d := ast.NewDumpster(module)

	ForLoopVarGensym(d)

	name1 := loop1.Var.Name.Name
	name2 := loop2.Var.Name.Name

	if name1 == "i" || name2 == "i" {
		t.Fatalf("for-loop induction variables were not renamed: %q, %q", name1, name2)
	}

	if name1 == name2 {
		t.Fatalf("sibling for-loops received the same gensym %q, want distinct", name1)
	}

	use1 := loop1.Body[0].(*ast.ExprStmt).Value.(*ast.NameExpr).Target.Name.Name
	use2 := loop2.Body[0].(*ast.ExprStmt).Value.(*ast.NameExpr).Target.Name.Name

	if use1 != name1 {
		t.Errorf("loop1 body refers to %q, want its own loop's renamed variable %q", use1, name1)
	}

	if use2 != name2 {
		t.Errorf("loop2 body refers to %q, want its own loop's renamed variable %q", use2, name2)
	}
}

// §4.4 pass D / S5 — two locals differing only in case collide once the
// target dialect's case-insensitive names are considered; the second
// declaration is renamed, the first is left alone.
func TestCaseFoldingDuplicateGensymRenamesSecondDeclaration(t *testing.T) {
	fn := &ast.FunDef{
		Name: ident("f"),
		Body: []ast.Stmt{
			&ast.VarDecl{Entries: []ast.VarDeclEntry{
				{Name: ident("Foo"), Type: i32()},
				{Name: ident("foo"), Type: i32()},
			}},
		},
	}
	module := &ast.Module{Name: ident("M"), Items: []ast.Item{fn}}
	d := ast.NewDumpster(module)

	CaseFoldingDuplicateGensym(d)

	decl := fn.Body[0].(*ast.VarDecl)
	first := decl.Entries[0].Name.Name
	second := decl.Entries[1].Name.Name

	if first != "Foo" {
		t.Errorf("first declaration was renamed to %q, want unchanged %q", first, "Foo")
	}

	if second == "foo" {
		t.Fatalf("second, case-colliding declaration was not renamed")
	}

	if !gensym.IsGensym(second) {
		t.Errorf("renamed second declaration %q is not a recognisable gensym", second)
	}
}

// RenameAll runs the four passes in the order §4.4/§4.5 demand; a smoke test
// that composing them end-to-end doesn't panic and leaves no reserved word
// as a definition's name.
func TestRenameAllLeavesNoReservedWordDefinitions(t *testing.T) {
	fn := &ast.FunDef{
		Name: ident("Next"),
		Body: []ast.Stmt{
			&ast.VarDecl{Entries: []ast.VarDeclEntry{{Name: ident("Next"), Type: i32()}}},
		},
	}
	module := &ast.Module{Name: ident("M"), Items: []ast.Item{fn}}
	d := ast.NewDumpster(module)

	RenameAll(d)

	if fn.Name.Name == "Next" {
		t.Errorf("function named after a reserved word survived RenameAll")
	}

	if local := fn.Body[0].(*ast.VarDecl).Entries[0].Name.Name; isVBKeyword(local) {
		t.Errorf("local named after a reserved word survived RenameAll as %q", local)
	}
}
