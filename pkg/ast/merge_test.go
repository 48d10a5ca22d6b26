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

import (
	"testing"

	"github.com/mxxo/trashcan-go/pkg/source"
)

func TestMergeDumpstersPreservesOrder(t *testing.T) {
	m1 := &Module{Name: NewIdent("A", source.Nowhere())}
	m2 := &Module{Name: NewIdent("B", source.Nowhere())}
	m3 := &Module{Name: NewIdent("C", source.Nowhere())}

	d1 := NewDumpster(m1, m2)
	d2 := NewDumpster(m3)

	merged := MergeDumpsters(d1, d2)

	got := merged.ModuleNames()
	want := []string{"A", "B", "C"}

	if len(got) != len(want) {
		t.Fatalf("ModuleNames() = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ModuleNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMergeDumpstersEmpty(t *testing.T) {
	merged := MergeDumpsters()

	if len(merged.Modules) != 0 {
		t.Fatalf("MergeDumpsters() with no inputs produced %d modules, want 0", len(merged.Modules))
	}
}
