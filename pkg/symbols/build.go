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
	"github.com/mxxo/trashcan-go/pkg/ast"
	"github.com/mxxo/trashcan-go/pkg/visitor"
)

// Build runs the three-pass symbol table construction over d (§4.3):
//
//  1. collect every module and struct skeleton, so type references anywhere
//     in the tree have something to resolve against;
//  2. resolve every DeferredType node in place, against the skeletons from
//     (1);
//  3. collect every constant, static, and function, then walk each function
//     body declaring locals and checking value references are declared
//     before use and call targets resolve to an accessible function.
//
// Each pass must fully succeed before the next runs: unlike a compiler
// hunting for every diagnostic in one run, Build stops at the first error so
// that later passes never have to reason about a tree left half-resolved by
// an earlier one.
func Build(d *ast.Dumpster) (*SymbolTable, *AnalysisError) {
	t, err := collectTypes(d)
	if err != nil {
		return nil, err
	}

	if err := resolveDeferred(t, d); err != nil {
		return nil, err
	}

	finalizeStructMembers(t)

	if err := collectValues(t, d); err != nil {
		return nil, err
	}

	return t, nil
}

// collectTypes is pass 1: it declares every module and every struct, so that
// pass 2 has a complete picture of every type name in scope no matter where
// in the tree (or in which module) it is referenced from. Struct members are
// reserved (duplicate member names are rejected) but their types are not
// copied into the symbol table yet, since pass 2 has not resolved them.
func collectTypes(d *ast.Dumpster) (*SymbolTable, *AnalysisError) {
	t := newSymbolTable()

	for _, m := range d.Modules {
		name := m.Name.Name
		if _, exists := t.modules[name]; exists {
			return nil, newError(DuplicateSymbol, name, m.Name.Loc)
		}

		mt := t.declareModule(name)

		for _, item := range m.Items {
			sd, ok := item.(*ast.StructDef)
			if !ok {
				continue
			}

			seen := make(map[string]bool, len(sd.Members))

			for _, mem := range sd.Members {
				if seen[mem.Name.Name] {
					return nil, newError(DuplicateSymbol, mem.Name.Name, mem.Name.Loc)
				}

				seen[mem.Name.Name] = true
			}

			sym := StructSymbol{Def: sd, Members: make(map[string]ast.Type, len(sd.Members))}
			if err := mt.Scope.Declare(sd.Name.Name, sym, sd.Name.Loc); err != nil {
				return nil, err
			}
		}
	}

	return t, nil
}

// resolveDeferred is pass 2: it walks the whole tree rewriting every
// DeferredType into a StructType, looking each one up against the module
// skeletons pass 1 built. A Deferred reference which does not resolve to a
// struct fails the whole build (§3 invariant 1: no Deferred node may survive
// a successful build).
func resolveDeferred(t *SymbolTable, d *ast.Dumpster) *AnalysisError {
	var firstErr *AnalysisError

	v := visitor.New()
	v.VisitType = func(vv *visitor.Visitor, ty *ast.Type, module string) {
		if firstErr != nil {
			return
		}

		visitor.WalkType(vv, ty, module)

		def, ok := (*ty).(*ast.DeferredType)
		if !ok {
			return
		}

		sym, err := t.SymbolAtPath(def.Target, visitor.UseType{Module: module, AccessScope: ast.Private}, def.Location())
		if err != nil {
			firstErr = err
			return
		}

		if !IsStruct(sym) {
			panic("internal compiler error: UseType lookup returned a non-struct symbol")
		}

		*ty = &ast.StructType{NodeLoc: def.NodeLoc, Target: def.Target}
	}

	visitor.WalkDumpster(v, d)

	return firstErr
}

// finalizeStructMembers copies each struct's now-resolved member types into
// its StructSymbol, once resolveDeferred has finished rewriting them in
// place. It must not run until resolveDeferred has returned without error.
func finalizeStructMembers(t *SymbolTable) {
	for _, name := range t.order {
		mt := t.modules[name]

		for _, itemName := range mt.Scope.order {
			ss, ok := mt.Scope.items[itemName].(StructSymbol)
			if !ok {
				continue
			}

			for _, mem := range ss.Def.Members {
				ss.Members[mem.Name.Name] = mem.Type
			}
		}
	}
}

// collectValues is pass 3: it declares every module-level constant, static,
// and function up front (so mutual references between functions of one
// module resolve regardless of textual order), then walks each function
// body in sequence, declaring parameters and locals as they are encountered
// and immediately checking that every value reference resolves against
// what has been declared so far. A value used before its declaration within
// the same function body is a NotDefined error; module-level symbols are
// always visible since they were all declared before any body is walked.
func collectValues(t *SymbolTable, d *ast.Dumpster) *AnalysisError {
	for _, m := range d.Modules {
		mt, _ := t.Module(m.Name.Name)

		for _, item := range m.Items {
			switch it := item.(type) {
			case *ast.FunDef:
				sym := FunSymbol{Def: it, Locals: NewScope()}
				if err := mt.Scope.Declare(it.Name.Name, sym, it.Name.Loc); err != nil {
					return err
				}

			case *ast.Static:
				if err := mt.Scope.Declare(it.Name.Name, ValueSymbol{Type: it.Type}, it.Name.Loc); err != nil {
					return err
				}

			case *ast.Constant:
				if err := mt.Scope.Declare(it.Name.Name, ConstSymbol{Type: it.Type}, it.Name.Loc); err != nil {
					return err
				}
			}
		}
	}

	for _, m := range d.Modules {
		for _, item := range m.Items {
			st, ok := item.(*ast.Static)
			if !ok || st.Init == nil {
				continue
			}

			if err := checkModuleLevelExpr(t, m, st.Init); err != nil {
				return err
			}
		}
	}

	for _, m := range d.Modules {
		mt, _ := t.Module(m.Name.Name)

		for _, item := range m.Items {
			fd, ok := item.(*ast.FunDef)
			if !ok {
				continue
			}

			if err := collectFunctionLocals(t, mt, m, fd); err != nil {
				return err
			}
		}
	}

	return nil
}

// checkModuleLevelExpr walks e (a module-level Static's initializer) the
// same way collectFunctionLocals walks a function body, surfacing a
// NotDefined error for any bare name which does not resolve against the
// module-level symbols collectValues has already declared. A static's
// initializer has no enclosing function, so there is no Locals scope to
// populate — only the UseValue and UseFunction checks apply.
func checkModuleLevelExpr(t *SymbolTable, m *ast.Module, e ast.Expr) *AnalysisError {
	var firstErr *AnalysisError

	v := visitor.New()

	v.VisitPath = func(vv *visitor.Visitor, p *ast.Path, ctxt visitor.NameCtxt) {
		if firstErr != nil {
			return
		}

		switch ctxt.(type) {
		case visitor.UseValue, visitor.UseFunction:
			if _, err := t.SymbolAtPath(*p, ctxt, p.Location()); err != nil {
				firstErr = err
			}

			return
		}

		visitor.WalkPath(vv, p, ctxt)
	}

	v.VisitExpr(v, m, nil, e)

	return firstErr
}

// collectFunctionLocals walks fd's body, declaring its parameters and locals
// into its FunSymbol's Locals scope as they are encountered, and checking
// every value-position reference against what has been declared so far and
// every call-position reference against the functions visible from m.
func collectFunctionLocals(t *SymbolTable, mt *ModuleTable, m *ast.Module, fd *ast.FunDef) *AnalysisError {
	funSym, _ := mt.Scope.Lookup(fd.Name.Name)

	locals := funSym.(FunSymbol).Locals

	var firstErr *AnalysisError

	v := visitor.New()

	v.VisitIdent = func(vv *visitor.Visitor, id *ast.Ident, ctxt visitor.NameCtxt) {
		if firstErr != nil {
			return
		}

		switch c := ctxt.(type) {
		case visitor.DefParam:
			if c.Function == fd.Name.Name {
				mode := c.Mode
				if err := locals.Declare(id.Name, ValueSymbol{Type: c.Type, Mode: &mode}, id.Loc); err != nil {
					firstErr = err
				}

				return
			}

		case visitor.DefValue:
			if c.Function != nil && *c.Function == fd.Name.Name {
				if err := locals.Declare(id.Name, ValueSymbol{Type: c.Type, Mode: c.Mode}, id.Loc); err != nil {
					firstErr = err
				}

				return
			}
		}

		visitor.WalkIdent(vv, id, ctxt)
	}

	v.VisitPath = func(vv *visitor.Visitor, p *ast.Path, ctxt visitor.NameCtxt) {
		if firstErr != nil {
			return
		}

		switch ctxt.(type) {
		case visitor.UseValue, visitor.UseFunction:
			if _, err := t.SymbolAtPath(*p, ctxt, p.Location()); err != nil {
				firstErr = err
			}

			return
		}

		visitor.WalkPath(vv, p, ctxt)
	}

	v.VisitFunDef(v, m, fd)

	return firstErr
}
