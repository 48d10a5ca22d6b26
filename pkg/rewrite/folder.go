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
	"github.com/mxxo/trashcan-go/pkg/ast"
	"github.com/mxxo/trashcan-go/pkg/visitor"
)

// category is the namespace a renameable identifier belongs to.
type category int

const (
	catNone category = iota
	catValue
	catType
	catFunction
	catMember
	catModule
)

// scopedSubstitution renames every occurrence of orig to replace within a
// given scope and namespace (§4.4). A nil Module or Function means
// unscoped in that dimension: the substitution applies regardless of which
// module, or which function, the occurrence is in.
//
// Defns controls whether definition sites are eligible: passes which gensym
// a binding in place at its declaration (e.g. the for-loop-variable pass)
// set this false, since the declaration itself was already rewritten
// directly and only the body's use sites still need to follow along.
type scopedSubstitution struct {
	Orig, Replace string
	Module        *string
	Function      *string
	Defns         bool
	Categories    map[category]bool
}

func newSubstitution(orig, replace string, module, function *string, defns bool, cats ...category) *scopedSubstitution {
	set := make(map[category]bool, len(cats))
	for _, c := range cats {
		set[c] = true
	}

	return &scopedSubstitution{
		Orig:       orig,
		Replace:    replace,
		Module:     module,
		Function:   function,
		Defns:      defns,
		Categories: set,
	}
}

func (s *scopedSubstitution) matches(cat category, module, function *string, isDefn bool) bool {
	if !s.Categories[cat] {
		return false
	}

	if isDefn && !s.Defns {
		return false
	}

	if s.Module != nil && (module == nil || *module != *s.Module) {
		return false
	}

	if s.Function != nil && (function == nil || *function != *s.Function) {
		return false
	}

	return true
}

// applyIdent renames id in place if it matches s, given the classification
// of its ctxt.
func (s *scopedSubstitution) applyIdent(id *ast.Ident, ctxt visitor.NameCtxt) {
	cat, module, function, isDefn, ok := classify(ctxt)
	if !ok {
		return
	}

	if id.Name == s.Orig && s.matches(cat, module, function, isDefn) {
		id.Name = s.Replace
	}
}

// Apply rewrites every matching occurrence across the whole dumpster.
func (s *scopedSubstitution) Apply(d *ast.Dumpster) {
	v := visitor.New()
	v.VisitIdent = func(vv *visitor.Visitor, id *ast.Ident, ctxt visitor.NameCtxt) {
		s.applyIdent(id, ctxt)
		visitor.WalkIdent(vv, id, ctxt)
	}

	visitor.WalkDumpster(v, d)
}

// ApplyToStmts rewrites every matching occurrence within stmts only, which
// must lexically belong to fd's body in module m. The for-loop-variable pass
// uses this to confine a rewrite to one loop's body, so that two sibling
// loops reusing the same loop-variable name in one function don't bleed into
// each other.
func (s *scopedSubstitution) ApplyToStmts(m *ast.Module, fd *ast.FunDef, stmts []ast.Stmt) {
	v := visitor.New()
	v.VisitIdent = func(vv *visitor.Visitor, id *ast.Ident, ctxt visitor.NameCtxt) {
		s.applyIdent(id, ctxt)
		visitor.WalkIdent(vv, id, ctxt)
	}

	for _, stmt := range stmts {
		v.VisitStmt(v, m, fd, stmt)
	}
}

// classify maps a NameCtxt to the (namespace, module, function, is-a-
// definition-site) tuple the substitution machinery reasons about. The
// last return is false for any ctxt classify does not recognise
// (there are none at present, but a future NameCtxt variant should fail
// closed rather than be silently renamed).
func classify(ctxt visitor.NameCtxt) (cat category, module, function *string, isDefn bool, ok bool) {
	switch c := ctxt.(type) {
	case visitor.DefModule:
		return catModule, nil, nil, true, true

	case visitor.DefType:
		m := c.Module
		return catType, &m, nil, true, true

	case visitor.DefFunction:
		m := c.Module
		return catFunction, &m, nil, true, true

	case visitor.DefValue:
		m := c.Module
		return catValue, &m, c.Function, true, true

	case visitor.DefParam:
		m, f := c.Module, c.Function
		return catValue, &m, &f, true, true

	case visitor.DefConstant:
		m := c.Module
		return catValue, &m, nil, true, true

	case visitor.DefMember:
		m := c.Module
		return catMember, &m, nil, true, true

	case visitor.UseFunction:
		m := c.Module
		return catFunction, &m, nil, false, true

	case visitor.UseType:
		m := c.Module
		return catType, &m, nil, false, true

	case visitor.UseValue:
		m := c.Module
		return catValue, &m, c.Function, false, true

	case visitor.UseMember:
		return catMember, nil, nil, false, true

	case visitor.UseModule:
		return catModule, nil, nil, false, true

	default:
		return catNone, nil, nil, false, false
	}
}
