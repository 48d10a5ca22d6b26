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
	"fmt"
	"io"
	"strings"

	"github.com/mxxo/trashcan-go/pkg/ast"
	"github.com/mxxo/trashcan-go/pkg/source"
	"github.com/mxxo/trashcan-go/pkg/visitor"
)

// Scope is an insertion-ordered set of bindings. It backs both a module's
// top-level table and a function's local table: dump output and diagnostics
// are stable across runs only because lookups never range over a plain Go
// map directly.
type Scope struct {
	items map[string]Symbol
	order []string
}

// NewScope returns an empty scope.
func NewScope() *Scope {
	return &Scope{items: make(map[string]Symbol)}
}

// Declare inserts sym under name. It reports DuplicateSymbol if name is
// already bound in this scope.
func (s *Scope) Declare(name string, sym Symbol, loc source.Loc) *AnalysisError {
	if _, exists := s.items[name]; exists {
		return newError(DuplicateSymbol, name, loc)
	}

	s.items[name] = sym
	s.order = append(s.order, name)

	return nil
}

// Lookup returns the symbol bound to name in this scope, if any.
func (s *Scope) Lookup(name string) (Symbol, bool) {
	sym, ok := s.items[name]
	return sym, ok
}

// Names returns the bound names in declaration order.
func (s *Scope) Names() []string {
	return append([]string(nil), s.order...)
}

// ModuleTable is the per-module slice of the symbol table: one Scope for
// top-level items (constants, statics, functions, structs), nested FunSymbol
// scopes for locals.
type ModuleTable struct {
	Name  string
	Scope *Scope
}

// SymbolTable is the fully-built, queryable result of the symbol table
// construction pipeline (§4.3). It is immutable once Build returns
// successfully.
type SymbolTable struct {
	modules map[string]*ModuleTable
	order   []string
}

func newSymbolTable() *SymbolTable {
	return &SymbolTable{modules: make(map[string]*ModuleTable)}
}

func (t *SymbolTable) moduleTable(name string) (*ModuleTable, bool) {
	mt, ok := t.modules[name]
	return mt, ok
}

func (t *SymbolTable) declareModule(name string) *ModuleTable {
	if mt, ok := t.modules[name]; ok {
		return mt
	}

	mt := &ModuleTable{Name: name, Scope: NewScope()}
	t.modules[name] = mt
	t.order = append(t.order, name)

	return mt
}

// Modules returns the known module names in declaration order.
func (t *SymbolTable) Modules() []string {
	return append([]string(nil), t.order...)
}

// Module returns the table for the named module.
func (t *SymbolTable) Module(name string) (*ModuleTable, bool) {
	return t.moduleTable(name)
}

// SymbolAtPath resolves path under ctxt, and checks that the symbol found has
// a kind matching ctxt (§4.3 step 5, §6). loc is used only for the error it
// may return.
func (t *SymbolTable) SymbolAtPath(path ast.Path, ctxt visitor.NameCtxt, loc source.Loc) (Symbol, *AnalysisError) {
	sym, err := t.symbolAtPathUnchecked(path, ctxt, loc)
	if err != nil {
		return nil, err
	}

	switch ctxt.(type) {
	case visitor.UseFunction:
		if !IsFun(sym) {
			return nil, newError(FnCallError, fmt.Sprintf("%s denotes %s, not a function", path, kindName(sym)), loc)
		}
	case visitor.UseType:
		if !IsStruct(sym) {
			return nil, newError(TypeError, fmt.Sprintf("%s denotes %s, not a type", path, kindName(sym)), loc)
		}
	case visitor.UseValue:
		if !IsValue(sym) {
			return nil, newError(TypeError, fmt.Sprintf("%s denotes %s, not a value", path, kindName(sym)), loc)
		}
	default:
		panic("internal compiler error: SymbolAtPath called with a definition-site NameCtxt")
	}

	return sym, nil
}

// symbolAtPathUnchecked performs steps 1-4 of §4.3's path resolution: derive
// the effective (module, function scope, access scope) from path and ctxt,
// then search function-local scope (if any) before module scope.
func (t *SymbolTable) symbolAtPathUnchecked(path ast.Path, ctxt visitor.NameCtxt, loc source.Loc) (Symbol, *AnalysisError) {
	module, function, accessScope := effectiveScope(path, ctxt)

	mt, ok := t.moduleTable(module)
	if !ok {
		return nil, newError(NotDefined, path.String(), loc)
	}

	if function != nil {
		if fnSym, ok := mt.Scope.Lookup(*function); ok {
			if fn, ok := fnSym.(FunSymbol); ok {
				if local, ok := fn.Locals.Lookup(path.Name.Name); ok {
					if accessScope == ast.Private || local.Access() == ast.Public {
						return local, nil
					}
				}
			}
		}
	}

	sym, ok := mt.Scope.Lookup(path.Name.Name)
	if !ok {
		return nil, newError(NotDefined, path.String(), loc)
	}

	if accessScope == ast.Private || sym.Access() == ast.Public {
		return sym, nil
	}

	return nil, newError(SymbolAccess, path.String(), loc)
}

// effectiveScope derives the module, optional enclosing-function name, and
// access scope a path lookup should use. A module-qualified path always
// crosses into Public access scope on the named module, discarding whatever
// function scope ctxt carried: a local of a *different* module's function is
// never in play.
func effectiveScope(path ast.Path, ctxt visitor.NameCtxt) (module string, function *string, accessScope ast.Access) {
	if path.IsQualified() {
		return path.Module.Name, nil, ast.Public
	}

	switch c := ctxt.(type) {
	case visitor.UseFunction:
		return c.Module, nil, c.AccessScope
	case visitor.UseType:
		return c.Module, nil, c.AccessScope
	case visitor.UseValue:
		return c.Module, c.Function, c.AccessScope
	default:
		panic("internal compiler error: path lookup with a definition-site NameCtxt")
	}
}

// Dump writes a human-readable rendering of the whole table to w. Each
// module's items are indented by ind spaces, and each further nesting level
// (function locals, struct members) by two more. The format is stable across
// runs (module and item order are both preserved from declaration), which
// makes it usable as
// golden-file test output.
func (t *SymbolTable) Dump(w io.Writer, ind int) error {
	if _, err := io.WriteString(w, "SYMBOL TABLE DUMP\n"); err != nil {
		return err
	}

	for _, name := range t.order {
		mt := t.modules[name]

		if _, err := fmt.Fprintf(w, "module %s:\n", name); err != nil {
			return err
		}

		if err := dumpScope(w, mt.Scope, ind); err != nil {
			return err
		}
	}

	return nil
}

func dumpScope(w io.Writer, sc *Scope, ind int) error {
	pad := strings.Repeat(" ", ind)

	for _, name := range sc.order {
		sym := sc.items[name]

		switch s := sym.(type) {
		case ConstSymbol:
			if _, err := fmt.Fprintf(w, "%sconst %s: %s\n", pad, name, ast.TypeString(s.Type)); err != nil {
				return err
			}
		case ValueSymbol:
			if _, err := fmt.Fprintf(w, "%svalue %s: %s\n", pad, name, ast.TypeString(s.Type)); err != nil {
				return err
			}
		case FunSymbol:
			if _, err := fmt.Fprintf(w, "%sfunction %s:\n", pad, name); err != nil {
				return err
			}

			if err := dumpScope(w, s.Locals, ind+2); err != nil {
				return err
			}
		case StructSymbol:
			if _, err := fmt.Fprintf(w, "%sstruct %s:\n", pad, name); err != nil {
				return err
			}

			for _, mem := range s.Def.Members {
				if _, err := fmt.Fprintf(w, "%s  member %s: %s\n", pad, mem.Name.Name, ast.TypeString(s.Members[mem.Name.Name])); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
