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

	"github.com/mxxo/trashcan-go/pkg/source"
)

// ErrorKind classifies an AnalysisError.
type ErrorKind int

const (
	// NotDefined means no symbol exists at the looked-up path.
	NotDefined ErrorKind = iota
	// DuplicateSymbol means a second definition collided with an existing
	// one in the same scope.
	DuplicateSymbol
	// SymbolAccess means the symbol exists but is private to a module other
	// than the one doing the lookup.
	SymbolAccess
	// TypeError means the symbol exists and is visible, but is the wrong
	// kind for the position it was used in (e.g. a type used as a value).
	TypeError
	// FnCallError means a path used in call position does not denote a
	// function.
	FnCallError
)

// String renders the kind the way diagnostics expect to see it.
func (k ErrorKind) String() string {
	switch k {
	case NotDefined:
		return "not defined"
	case DuplicateSymbol:
		return "duplicate symbol"
	case SymbolAccess:
		return "inaccessible symbol"
	case TypeError:
		return "type error"
	case FnCallError:
		return "invalid function call"
	default:
		return "unknown error"
	}
}

// AnalysisError is the uniform error type produced throughout symbol table
// construction and lookup (§6). Regarding names the offending path or
// identifier when one is available; it is empty otherwise.
type AnalysisError struct {
	Kind      ErrorKind
	Regarding string
	Loc       source.Loc
}

func (e *AnalysisError) Error() string {
	if e.Regarding == "" {
		return fmt.Sprintf("%s at %s", e.Kind, e.Loc)
	}

	return fmt.Sprintf("%s: %s at %s", e.Kind, e.Regarding, e.Loc)
}

func newError(kind ErrorKind, regarding string, loc source.Loc) *AnalysisError {
	return &AnalysisError{Kind: kind, Regarding: regarding, Loc: loc}
}
