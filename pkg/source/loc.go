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

// Package source provides the minimal location tracking shared by every AST
// node.  It exists so the core (parser-independent) packages never need to
// import the parser's own source-file representation.
package source

import "fmt"

// Loc identifies a byte range within whatever source text produced an AST
// node.  It is carried purely for diagnostics: two Locs are never compared for
// equality by the compiler, and nothing downstream of parsing depends on their
// values being correct.
type Loc struct {
	// Start is the byte offset of the first byte covered by this location.
	Start int
	// Len is the number of bytes covered, starting at Start.
	Len int
}

// NewLoc constructs a location spanning [start, start+length).
func NewLoc(start, length int) Loc {
	return Loc{start, length}
}

// Nowhere is the zero location, used for synthesized nodes (e.g. those
// introduced by a rewrite pass) which have no corresponding source text.
func Nowhere() Loc {
	return Loc{}
}

// End returns the byte offset one past the last byte covered by this
// location.
func (l Loc) End() int {
	return l.Start + l.Len
}

// String formats this location as "start+len" for diagnostic output.
func (l Loc) String() string {
	return fmt.Sprintf("%d+%d", l.Start, l.Len)
}
