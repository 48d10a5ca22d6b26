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
package main

import (
	"github.com/mxxo/trashcan-go/pkg/ast"
	"github.com/mxxo/trashcan-go/pkg/source"
)

// sampleDumpster builds a small Dumpster in memory, standing in for what the
// (out-of-scope) parser would otherwise produce from source text. It
// exercises the forward-referenced struct, reserved-word collision, and
// for-loop-variable scenarios described for the middle end.
func sampleDumpster() *ast.Dumpster {
	i32 := func() ast.Type { return ast.NewPrimitiveType(ast.Int32, source.Nowhere()) }
	ident := func(name string) ast.Ident { return ast.NewIdent(name, source.Nowhere()) }

	// struct Line { Start: Point, End: Point } -- declared before Point,
	// forcing Start/End's types to be parsed as Deferred references.
	lineDef := &ast.StructDef{
		Name:   ident("Line"),
		Access: ast.Public,
		Members: []ast.Member{
			{Name: ident("Start"), Type: ast.NewDeferredType(ast.NewPath(ident("Point")), source.Nowhere())},
			{Name: ident("End"), Type: ast.NewDeferredType(ast.NewPath(ident("Point")), source.Nowhere())},
		},
	}

	// struct Point { X: i32, Y: i32 }
	pointDef := &ast.StructDef{
		Name:   ident("Point"),
		Access: ast.Public,
		Members: []ast.Member{
			{Name: ident("X"), Type: i32()},
			{Name: ident("Y"), Type: i32()},
		},
	}

	// fn Print(Print: i32) -> i32 { ... }
	//
	// Both the function's own name and its parameter collide with the
	// reserved word PRINT, and the parameter additionally shadows the
	// function's own name.
	sumFn := &ast.FunDef{
		Name:   ident("Print"),
		Access: ast.Public,
		Ret:    i32(),
		Params: []ast.Param{
			{Name: ident("Print"), Type: i32(), Mode: ast.ByVal},
		},
		Body: []ast.Stmt{
			&ast.VarDecl{
				Entries: []ast.VarDeclEntry{
					{Name: ident("total"), Type: i32(), Init: nil},
				},
			},
			// For i = 0 To 9 { total = total + i }
			&ast.ForLoop{
				Var:  ast.ForLoopVar{Name: ident("i"), Type: i32()},
				Spec: ast.RangeSpec{From: intLit(0), To: intLit(9)},
				Body: []ast.Stmt{
					&ast.AssignStmt{
						Place: &ast.NameExpr{Target: ast.NewPath(ident("total"))},
						Op:    ast.AddAssign,
						Value: &ast.NameExpr{Target: ast.NewPath(ident("i"))},
					},
				},
			},
			// For j = 0 To 4 { total = total + j } -- a sibling loop with its
			// own variable: symbols.Build keeps one flat local scope per
			// function, so reusing "i" here would fail the pre-rename build.
			&ast.ForLoop{
				Var:  ast.ForLoopVar{Name: ident("j"), Type: i32()},
				Spec: ast.RangeSpec{From: intLit(0), To: intLit(4)},
				Body: []ast.Stmt{
					&ast.AssignStmt{
						Place: &ast.NameExpr{Target: ast.NewPath(ident("total"))},
						Op:    ast.AddAssign,
						Value: &ast.NameExpr{Target: ast.NewPath(ident("j"))},
					},
				},
			},
			&ast.ReturnStmt{Value: &ast.NameExpr{Target: ast.NewPath(ident("total"))}},
		},
	}

	module := &ast.Module{
		Name:   ident("Example"),
		Kind:   ast.NormalModule,
		Access: ast.Public,
		Items:  []ast.Item{lineDef, pointDef, sumFn},
	}

	return ast.NewDumpster(module)
}

func intLit(v int64) ast.Expr {
	return &ast.LiteralExpr{Value: ast.NewIntLiteral(v, source.Nowhere())}
}
