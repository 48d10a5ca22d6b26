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
package visitor

import "github.com/mxxo/trashcan-go/pkg/ast"

// Visitor is a table of overridable traversal hooks. Every field is
// initialised by New to a function which simply walks that node's children
// (via the package-level Walk* helpers); a caller overrides only the hooks it
// cares about, and calls the matching Walk* helper explicitly from inside an
// override if it still wants the default recursion to happen.
//
// The same Visitor type serves both read-only analysis (a hook which only
// reads its arguments) and in-place rewriting (a hook which mutates through
// the pointers it is given): VisitIdent, VisitPath and VisitType are always
// handed addressable pointers into the tree, so a hook is free to overwrite
// an identifier, a path, or a type in place. Passes which only read never
// assign through these pointers.
type Visitor struct {
	VisitModule    func(v *Visitor, d *ast.Dumpster, m *ast.Module)
	VisitItem      func(v *Visitor, m *ast.Module, item ast.Item)
	VisitStructDef func(v *Visitor, m *ast.Module, def *ast.StructDef)
	VisitStructMem func(v *Visitor, m *ast.Module, def *ast.StructDef, mem *ast.Member)
	VisitFunDef    func(v *Visitor, m *ast.Module, def *ast.FunDef)
	VisitStmt      func(v *Visitor, m *ast.Module, f *ast.FunDef, s ast.Stmt)
	VisitExpr      func(v *Visitor, m *ast.Module, f *ast.FunDef, e ast.Expr)
	VisitPath      func(v *Visitor, p *ast.Path, ctxt NameCtxt)
	VisitIdent     func(v *Visitor, id *ast.Ident, ctxt NameCtxt)
	VisitType      func(v *Visitor, t *ast.Type, module string)
}

// New constructs a Visitor whose every hook is the default (walk children).
func New() *Visitor {
	return &Visitor{
		VisitModule:    WalkModule,
		VisitItem:      WalkItem,
		VisitStructDef: WalkStructDef,
		VisitStructMem: WalkStructMem,
		VisitFunDef:    WalkFunDef,
		VisitStmt:      WalkStmt,
		VisitExpr:      WalkExpr,
		VisitPath:      WalkPath,
		VisitIdent:     WalkIdent,
		VisitType:      WalkType,
	}
}

// WalkDumpster visits every module of d, in order.
func WalkDumpster(v *Visitor, d *ast.Dumpster) {
	for _, m := range d.Modules {
		v.VisitModule(v, d, m)
	}
}

// WalkModule is the default VisitModule: it visits the module's own name as a
// DefModule, then every item it contains.
func WalkModule(v *Visitor, d *ast.Dumpster, m *ast.Module) {
	v.VisitIdent(v, &m.Name, DefModule{})

	for _, item := range m.Items {
		v.VisitItem(v, m, item)
	}
}

// WalkItem is the default VisitItem: it dispatches to VisitFunDef /
// VisitStructDef for those item kinds, and otherwise walks a Static or
// Constant's name, type, and initializer/value directly.
func WalkItem(v *Visitor, m *ast.Module, item ast.Item) {
	switch it := item.(type) {
	case *ast.FunDef:
		v.VisitFunDef(v, m, it)

	case *ast.StructDef:
		v.VisitStructDef(v, m, it)

	case *ast.Static:
		v.VisitType(v, &it.Type, m.Name.Name)
		v.VisitIdent(v, &it.Name, DefValue{Module: m.Name.Name, Type: it.Type})

		if it.Init != nil {
			v.VisitExpr(v, m, nil, it.Init)
		}

	case *ast.Constant:
		v.VisitType(v, &it.Type, m.Name.Name)
		v.VisitIdent(v, &it.Name, DefConstant{Module: m.Name.Name, Type: it.Type, Access: ast.Public})
	}
}

// WalkStructDef is the default VisitStructDef: it visits the struct's own
// name as a DefType, then every member.
func WalkStructDef(v *Visitor, m *ast.Module, def *ast.StructDef) {
	v.VisitIdent(v, &def.Name, DefType{Module: m.Name.Name})

	for i := range def.Members {
		v.VisitStructMem(v, m, def, &def.Members[i])
	}
}

// WalkStructMem is the default VisitStructMem: it visits the member's type,
// then its name as a DefMember.
func WalkStructMem(v *Visitor, m *ast.Module, def *ast.StructDef, mem *ast.Member) {
	v.VisitType(v, &mem.Type, m.Name.Name)
	v.VisitIdent(v, &mem.Name, DefMember{Module: m.Name.Name, Struct: def.Name.Name, Type: mem.Type})
}

// WalkFunDef is the default VisitFunDef: it visits the function's own name,
// its parameters, its optional-parameter block (if any), its return type,
// and finally its body.
func WalkFunDef(v *Visitor, m *ast.Module, def *ast.FunDef) {
	module := m.Name.Name

	v.VisitIdent(v, &def.Name, DefFunction{Module: module})

	for i := range def.Params {
		p := &def.Params[i]
		v.VisitType(v, &p.Type, module)

		mode := p.Mode
		v.VisitIdent(v, &p.Name, DefParam{Module: module, Function: def.Name.Name, Type: p.Type, Mode: mode})
	}

	switch opt := def.Optional.(type) {
	case *ast.OptionalParamList:
		for i := range opt.Params {
			p := &opt.Params[i]
			v.VisitType(v, &p.Type, module)
			v.VisitIdent(v, &p.Name, DefParam{Module: module, Function: def.Name.Name, Type: p.Type, Mode: ast.ByVal})
		}

	case *ast.ParamArraySpec:
		v.VisitType(v, &opt.Param.Type, module)

		mode := opt.Param.Mode
		v.VisitIdent(v, &opt.Param.Name, DefParam{Module: module, Function: def.Name.Name, Type: opt.Param.Type, Mode: mode})
	}

	if def.Ret != nil {
		v.VisitType(v, &def.Ret, module)
	}

	for _, s := range def.Body {
		v.VisitStmt(v, m, def, s)
	}
}

// WalkStmt is the default VisitStmt: it recurses into every child statement
// and expression of s, deriving DefValue contexts for declarations.
func WalkStmt(v *Visitor, m *ast.Module, f *ast.FunDef, s ast.Stmt) {
	module := m.Name.Name

	var function *string
	if f != nil {
		name := f.Name.Name
		function = &name
	}

	switch st := s.(type) {
	case *ast.ExprStmt:
		v.VisitExpr(v, m, f, st.Value)

	case *ast.VarDecl:
		for i := range st.Entries {
			e := &st.Entries[i]
			v.VisitType(v, &e.Type, module)
			v.VisitIdent(v, &e.Name, DefValue{Module: module, Function: function, Type: e.Type})

			if e.Init != nil {
				v.VisitExpr(v, m, f, e.Init)
			}
		}

	case *ast.AssignStmt:
		v.VisitExpr(v, m, f, st.Place)
		v.VisitExpr(v, m, f, st.Value)

	case *ast.ReturnStmt:
		if st.Value != nil {
			v.VisitExpr(v, m, f, st.Value)
		}

	case *ast.PrintStmt:
		for _, a := range st.Args {
			v.VisitExpr(v, m, f, a)
		}

	case *ast.IfStmt:
		v.VisitExpr(v, m, f, st.Cond)

		for _, s := range st.Body {
			v.VisitStmt(v, m, f, s)
		}

		for _, clause := range st.Elsif {
			v.VisitExpr(v, m, f, clause.Cond)

			for _, s := range clause.Body {
				v.VisitStmt(v, m, f, s)
			}
		}

		for _, s := range st.Else {
			v.VisitStmt(v, m, f, s)
		}

	case *ast.WhileLoop:
		v.VisitExpr(v, m, f, st.Cond)

		for _, s := range st.Body {
			v.VisitStmt(v, m, f, s)
		}

	case *ast.ForLoop:
		v.VisitType(v, &st.Var.Type, module)
		mode := st.Var.Mode
		v.VisitIdent(v, &st.Var.Name, DefValue{Module: module, Function: function, Type: st.Var.Type, Mode: &mode})

		switch spec := st.Spec.(type) {
		case ast.RangeSpec:
			v.VisitExpr(v, m, f, spec.From)
			v.VisitExpr(v, m, f, spec.To)

			if spec.Step != nil {
				v.VisitExpr(v, m, f, spec.Step)
			}

		case ast.EachSpec:
			v.VisitExpr(v, m, f, spec.Array)
		}

		for _, s := range st.Body {
			v.VisitStmt(v, m, f, s)
		}

	case *ast.ForAlong:
		for i := range st.Vars {
			v.VisitIdent(v, &st.Vars[i], DefValue{Module: module, Function: function})
		}

		v.VisitExpr(v, m, f, st.Along)

		for _, s := range st.Body {
			v.VisitStmt(v, m, f, s)
		}
	}
}

// WalkExpr is the default VisitExpr: it recurses into every child
// expression, and resolves Path/Ident uses against the enclosing module and
// function.
func WalkExpr(v *Visitor, m *ast.Module, f *ast.FunDef, e ast.Expr) {
	module := m.Name.Name

	var function *string
	if f != nil {
		name := f.Name.Name
		function = &name
	}

	// A use site always starts out relative to its own enclosing module, so
	// private symbols of that module are visible; IdentCtxtFromPath widens
	// this to Public if the path turns out to be module-qualified.
	access := ast.Private

	switch ex := e.(type) {
	case *ast.LiteralExpr:
		// no children

	case *ast.NameExpr:
		v.VisitPath(v, &ex.Target, UseValue{Module: module, Function: function, AccessScope: access})

	case *ast.BinaryExpr:
		v.VisitExpr(v, m, f, ex.Left)
		v.VisitExpr(v, m, f, ex.Right)

	case *ast.UnaryExpr:
		v.VisitExpr(v, m, f, ex.Operand)

	case *ast.CondExpr:
		v.VisitExpr(v, m, f, ex.Cond)
		v.VisitExpr(v, m, f, ex.Then)
		v.VisitExpr(v, m, f, ex.Else)

	case *ast.IndexExpr:
		v.VisitExpr(v, m, f, ex.Array)

		for _, idx := range ex.Index {
			v.VisitExpr(v, m, f, idx)
		}

	case *ast.MemberExpr:
		v.VisitExpr(v, m, f, ex.Object)
		v.VisitIdent(v, &ex.Member, UseMember{})

	case *ast.MemberInvokeExpr:
		v.VisitExpr(v, m, f, ex.Object)
		v.VisitIdent(v, &ex.Method, UseMember{})

		for i := range ex.Args {
			v.VisitExpr(v, m, f, ex.Args[i].Value)
		}

	case *ast.CallExpr:
		v.VisitPath(v, &ex.Callee, UseFunction{Module: module, AccessScope: access})

		for i := range ex.Args {
			v.VisitExpr(v, m, f, ex.Args[i].Value)
		}

	case *ast.CastExpr:
		v.VisitExpr(v, m, f, ex.Operand)
		v.VisitType(v, &ex.Target, module)

	case *ast.ExtentExpr:
		v.VisitExpr(v, m, f, ex.Array)
		v.VisitExpr(v, m, f, ex.Dim)

	case *ast.RawExpr:
		// opaque passthrough: no identifier within it is visited.
	}
}

// WalkPath is the default VisitPath: it visits a module qualifier (if any) as
// a UseModule, then the remaining identifier under the ctxt
// IdentCtxtFromPath derives.
func WalkPath(v *Visitor, p *ast.Path, ctxt NameCtxt) {
	if p.Module != nil {
		v.VisitIdent(v, p.Module, UseModule{})
	}

	_, useCtxt := IdentCtxtFromPath(*p, ctxt)
	v.VisitIdent(v, &p.Name, useCtxt)
}

// WalkIdent is the default VisitIdent: a leaf, so there is nothing to
// recurse into.
func WalkIdent(v *Visitor, id *ast.Ident, ctxt NameCtxt) {
}

// WalkType is the default VisitType: it recurses into the element type of an
// array, and visits the target path of a struct, enum or deferred type
// reference as a UseType. An ObjectType's name is not visited.
func WalkType(v *Visitor, t *ast.Type, module string) {
	use := UseType{Module: module, AccessScope: ast.Private}

	switch ty := (*t).(type) {
	case *ast.ArrayType:
		v.VisitType(v, &ty.Elem, module)
	case *ast.StructType:
		v.VisitPath(v, &ty.Target, use)
	case *ast.EnumType:
		v.VisitPath(v, &ty.Target, use)
	case *ast.DeferredType:
		v.VisitPath(v, &ty.Target, use)
	}
}
