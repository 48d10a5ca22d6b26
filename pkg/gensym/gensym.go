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

// Package gensym produces fresh, collision-free identifiers for the rename
// passes. The compiler runs single-threaded and batch-oriented (§5): the
// counter backing this package is plain process-global mutable state, safe
// only because nothing here ever runs concurrently. A concurrent port would
// need to promote it to an atomic.
package gensym

import (
	"fmt"
	"strings"

	"github.com/mxxo/trashcan-go/pkg/ast"
	"github.com/mxxo/trashcan-go/pkg/source"
)

// prefix can never appear at the start of a source identifier (the parser
// requires source identifiers to start with a letter), which is what lets
// New guarantee a gensym'd identifier never collides with a parsed one.
const prefix = "__gensym_"

// counter is incremented on every call to New. It is initialised lazily (the
// zero value, 0, is a valid starting point) and never reset: every gensym'd
// identifier produced by a single process is unique.
var counter uint64

// New returns a fresh identifier. If origin is given, its name is folded into
// the result's stem purely for readability in diagnostics; the uniqueness
// guarantee does not depend on it. The returned identifier has
// source.Nowhere() as its location, since it was not parsed from anything.
func New(origin *ast.Ident) ast.Ident {
	counter++

	stem := "tmp"
	if origin != nil {
		stem = sanitize(origin.Name)
	}

	name := fmt.Sprintf("%s%s_%d", prefix, stem, counter)

	return ast.NewIdent(name, source.Nowhere())
}

// IsGensym reports whether name could only have been produced by New: it
// carries the reserved prefix no source identifier may begin with.
func IsGensym(name string) bool {
	return strings.HasPrefix(name, prefix)
}

// sanitize replaces anything a VBA identifier cannot contain in a stem with
// an underscore, so
// gensym'd names stay syntactically valid even when derived from an
// already-unusual original (e.g. one composed entirely of punctuation that
// slipped through the parser as a raw fragment reference).
func sanitize(name string) string {
	var b strings.Builder

	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	if b.Len() == 0 {
		return "tmp"
	}

	return b.String()
}
