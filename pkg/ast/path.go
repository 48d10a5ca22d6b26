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

// Path is a (possibly module-qualified) reference to a name. An unqualified
// path (Module == nil) is resolved relative to whatever module encloses the
// use site; a qualified path (e.g. "Other::helper") always resolves starting
// from the named module.
type Path struct {
	Module *Ident
	Name   Ident
}

// NewPath constructs an unqualified path.
func NewPath(name Ident) Path {
	return Path{nil, name}
}

// NewQualifiedPath constructs a path qualified by an explicit module name.
func NewQualifiedPath(module Ident, name Ident) Path {
	return Path{&module, name}
}

// IsQualified indicates whether this path names its module explicitly.
func (p Path) IsQualified() bool {
	return p.Module != nil
}

// Location implements Node; a path's location is that of its final segment.
func (p Path) Location() source.Loc {
	return p.Name.Loc
}

// String renders a path the way it appears in diagnostics.
func (p Path) String() string {
	if p.Module == nil {
		return p.Name.Name
	}

	return p.Module.Name + "::" + p.Name.Name
}
