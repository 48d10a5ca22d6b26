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
	"strings"

	"github.com/mxxo/trashcan-go/pkg/ast"
	"github.com/mxxo/trashcan-go/pkg/gensym"
	"github.com/mxxo/trashcan-go/pkg/visitor"
)

// RenameAll runs the four rename passes over d, in the order the target
// dialect's rules demand: reserved words first, then the local shadowing a
// function's own name, then for-loop variables, and finally case-folding
// duplicates (which must run last since the earlier passes can themselves
// introduce new case collisions by renaming things into each other's way).
func RenameAll(d *ast.Dumpster) {
	VBKeywordGensym(d)
	FnNameLocalGensym(d)
	ForLoopVarGensym(d)
	CaseFoldingDuplicateGensym(d)
}

// categoryOrder is the order in which a batch of collected substitutions is
// applied: values before types before functions before members before
// modules. Applying values first means a type rename can never accidentally
// shadow an as-yet-unrenamed value reference, and so on down the list.
var categoryOrder = []category{catValue, catType, catFunction, catMember, catModule}

func applyInCategoryOrder(d *ast.Dumpster, subs []*scopedSubstitution) {
	for _, cat := range categoryOrder {
		for _, s := range subs {
			if s.Categories[cat] {
				s.Apply(d)
			}
		}
	}
}

// VBKeywordGensym renames every definition whose upper-cased name collides
// with a reserved word of the target dialect (§4.4 pass A).
func VBKeywordGensym(d *ast.Dumpster) {
	var collected []*scopedSubstitution

	v := visitor.New()
	v.VisitIdent = func(vv *visitor.Visitor, id *ast.Ident, ctxt visitor.NameCtxt) {
		cat, module, function, isDefn, ok := classify(ctxt)
		if ok && isDefn && isVBKeyword(id.Name) {
			if cat == catMember {
				module, function = nil, nil
			}

			orig := id.Name
			repl := gensym.New(id)
			collected = append(collected, newSubstitution(orig, repl.Name, module, function, true, cat))
		}

		visitor.WalkIdent(vv, id, ctxt)
	}

	visitor.WalkDumpster(v, d)
	applyInCategoryOrder(d, collected)
}

// FnNameLocalGensym renames a parameter or local variable which shadows the
// name of its own enclosing function (§4.4 pass B): the target dialect
// cannot tell a recursive call to the function from a reference to such a
// local, so the local must go.
func FnNameLocalGensym(d *ast.Dumpster) {
	var collected []*scopedSubstitution

	v := visitor.New()
	v.VisitIdent = func(vv *visitor.Visitor, id *ast.Ident, ctxt visitor.NameCtxt) {
		switch c := ctxt.(type) {
		case visitor.DefValue:
			if c.Function != nil && id.Name == *c.Function {
				orig := id.Name
				repl := gensym.New(id)
				module, function := c.Module, *c.Function
				collected = append(collected, newSubstitution(orig, repl.Name, &module, &function, true, catValue))
			}

		case visitor.DefParam:
			if id.Name == c.Function {
				orig := id.Name
				repl := gensym.New(id)
				module, function := c.Module, c.Function
				collected = append(collected, newSubstitution(orig, repl.Name, &module, &function, true, catValue))
			}
		}

		visitor.WalkIdent(vv, id, ctxt)
	}

	visitor.WalkDumpster(v, d)

	for _, s := range collected {
		s.Apply(d)
	}
}

// ForLoopVarGensym renames every for-loop induction variable to a fresh
// gensym (§4.4 pass C). It processes nested loops before the loop enclosing
// them, and confines each rewrite to the owning loop's own body, so that two
// sibling (non-nested) loops reusing the same variable name in one function
// never bleed into one another.
func ForLoopVarGensym(d *ast.Dumpster) {
	for _, m := range d.Modules {
		for _, item := range m.Items {
			if fd, ok := item.(*ast.FunDef); ok {
				rewriteForLoopsIn(m, fd, fd.Body)
			}
		}
	}
}

func rewriteForLoopsIn(m *ast.Module, fd *ast.FunDef, stmts []ast.Stmt) {
	for _, s := range stmts {
		recurseIntoNestedBlocks(m, fd, s)

		switch st := s.(type) {
		case *ast.ForLoop:
			module, function := m.Name.Name, fd.Name.Name

			orig := st.Var.Name.Name
			repl := gensym.New(&st.Var.Name)
			st.Var.Name = repl

			sub := newSubstitution(orig, repl.Name, &module, &function, false, catValue)
			sub.ApplyToStmts(m, fd, st.Body)

		case *ast.ForAlong:
			module, function := m.Name.Name, fd.Name.Name

			for i := range st.Vars {
				orig := st.Vars[i].Name
				repl := gensym.New(&st.Vars[i])
				st.Vars[i] = repl

				sub := newSubstitution(orig, repl.Name, &module, &function, false, catValue)
				sub.ApplyToStmts(m, fd, st.Body)
			}
		}
	}
}

// recurseIntoNestedBlocks walks into every statement-list-bearing child of s
// before s itself is handled by rewriteForLoopsIn, giving the post-order
// (innermost-first) traversal ForLoopVarGensym's doc comment promises.
func recurseIntoNestedBlocks(m *ast.Module, fd *ast.FunDef, s ast.Stmt) {
	switch st := s.(type) {
	case *ast.IfStmt:
		rewriteForLoopsIn(m, fd, st.Body)

		for _, clause := range st.Elsif {
			rewriteForLoopsIn(m, fd, clause.Body)
		}

		rewriteForLoopsIn(m, fd, st.Else)

	case *ast.WhileLoop:
		rewriteForLoopsIn(m, fd, st.Body)

	case *ast.ForLoop:
		rewriteForLoopsIn(m, fd, st.Body)

	case *ast.ForAlong:
		rewriteForLoopsIn(m, fd, st.Body)
	}
}

// caseFoldKey identifies a definition slot for case-folding purposes: its
// namespace, its case-folded name, and the module/function scope it was
// declared in. Struct member keys carry neither a module nor a struct, so
// all members share one whole-program scope.
type caseFoldKey struct {
	cat      category
	name     string
	module   string
	scope    string
	hasScope bool
}

// CaseFoldingDuplicateGensym renames the second and later definitions whose
// case-folded names collide within the same scope (§4.4 pass D). The target
// dialect's identifiers are case-insensitive, so two definitions which
// differ only in case are indistinguishable to it even though the source
// language treats them as distinct. Struct member names are deliberately
// treated as an unscoped, whole-program namespace: resolving which struct a
// given member access belongs to would require type information this
// traversal does not have.
func CaseFoldingDuplicateGensym(d *ast.Dumpster) {
	seen := make(map[caseFoldKey]bool)

	var collected []*scopedSubstitution

	v := visitor.New()
	v.VisitIdent = func(vv *visitor.Visitor, id *ast.Ident, ctxt visitor.NameCtxt) {
		cat, module, function, isDefn, ok := classify(ctxt)
		if !ok || !isDefn {
			visitor.WalkIdent(vv, id, ctxt)
			return
		}

		if cat == catMember {
			module, function = nil, nil
		}

		key := caseFoldKey{cat: cat, name: strings.ToUpper(id.Name)}
		if module != nil {
			key.module = *module
		}

		if function != nil {
			key.scope, key.hasScope = *function, true
		}

		if seen[key] {
			orig := id.Name
			repl := gensym.New(id)
			collected = append(collected, newSubstitution(orig, repl.Name, module, function, true, cat))
		} else {
			seen[key] = true
		}

		visitor.WalkIdent(vv, id, ctxt)
	}

	visitor.WalkDumpster(v, d)
	applyInCategoryOrder(d, collected)
}
