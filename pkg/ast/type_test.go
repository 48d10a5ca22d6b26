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

func TestTypeString(t *testing.T) {
	tests := []struct {
		name string
		ty   Type
		want string
	}{
		{"primitive", NewPrimitiveType(Int32, source.Nowhere()), "i32"},
		{"struct", &StructType{Target: NewPath(NewIdent("Point", source.Nowhere()))}, "Point"},
		{"deferred", NewDeferredType(NewPath(NewIdent("Point", source.Nowhere())), source.Nowhere()), "Point?"},
		{
			"bounded array",
			&ArrayType{Elem: NewPrimitiveType(Int32, source.Nowhere()), Bound: boundOf(4)},
			"i32[]",
		},
		{
			"dynamic array",
			&ArrayType{Elem: NewPrimitiveType(Int32, source.Nowhere())},
			"i32[..]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TypeString(tt.ty); got != tt.want {
				t.Errorf("TypeString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func boundOf(n uint32) *uint32 {
	return &n
}
