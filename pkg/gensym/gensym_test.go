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
package gensym

import (
	"strings"
	"testing"

	"github.com/mxxo/trashcan-go/pkg/ast"
	"github.com/mxxo/trashcan-go/pkg/source"
)

func TestNewNeverRepeats(t *testing.T) {
	origin := ast.NewIdent("Print", source.Nowhere())

	a := New(&origin)
	b := New(&origin)

	if a.Name == b.Name {
		t.Fatalf("two calls to New produced the same identifier: %q", a.Name)
	}
}

func TestNewWithoutOriginUsesTmpStem(t *testing.T) {
	id := New(nil)

	if !IsGensym(id.Name) {
		t.Fatalf("New(nil) produced a non-gensym identifier: %q", id.Name)
	}

	if !strings.HasPrefix(id.Name, prefix+"tmp_") {
		t.Errorf("New(nil) = %q, want the %q stem", id.Name, "tmp")
	}
}

func TestIsGensymRecognisesOwnOutput(t *testing.T) {
	origin := ast.NewIdent("total", source.Nowhere())
	id := New(&origin)

	if !IsGensym(id.Name) {
		t.Errorf("IsGensym(%q) = false, want true", id.Name)
	}

	if IsGensym("total") {
		t.Errorf("IsGensym(%q) = true, want false", "total")
	}
}

func TestSanitizeHandlesUnusualOrigins(t *testing.T) {
	origin := ast.NewIdent("!!!", source.Nowhere())
	id := New(&origin)

	if !IsGensym(id.Name) {
		t.Fatalf("sanitized gensym %q lost its reserved prefix", id.Name)
	}
}
