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

// Package rewrite implements the name-rewriting transformation passes
// (§4.4, §4.5): a scoped substitution folder, and the four gensym passes
// built on top of it.
package rewrite

import "strings"

// vbKeywords is every reserved word of the target dialect, upper-cased.
// Any source identifier whose upper-cased form collides with one of these
// must be renamed before emission, since the emitter has no quoting
// mechanism for identifiers.
var vbKeywords = map[string]bool{
	"CALL": true, "CASE": true, "CLOSE": true, "CONST": true, "DECLARE": true,
	"DEFBOOL": true, "DEFBYTE": true, "DEFCUR": true, "DEFDATE": true, "DEFDBL": true,
	"DEFINT": true, "DEFLNG": true, "DEFLNGLNG": true, "DEFLNGPTR": true, "DEFOBJ": true,
	"DEFSNG": true, "DEFSTR": true, "DEFVAR": true, "DIM": true, "DO": true,
	"ELSE": true, "ELSEIF": true, "END": true, "ENDIF": true, "ENUM": true,
	"ERASE": true, "EVENT": true, "EXIT": true, "FOR": true, "FRIEND": true,
	"FUNCTION": true, "GET": true, "GLOBAL": true, "GOSUB": true, "GOTO": true,
	"IF": true, "IMPLEMENTS": true, "INPUT": true, "LET": true, "LOCK": true,
	"LOOP": true, "LSET": true, "NEXT": true, "ON": true, "OPEN": true,
	"OPTION": true, "PRINT": true, "PRIVATE": true, "PUBLIC": true, "PUT": true,
	"RAISEEVENT": true, "REDIM": true, "RESUME": true, "RETURN": true, "RSET": true,
	"SEEK": true, "SELECT": true, "SET": true, "STATIC": true, "STOP": true,
	"SUB": true, "TYPE": true, "UNLOCK": true, "WEND": true, "WHILE": true,
	"WITH": true, "WRITE": true, "REM": true, "ANY": true, "AS": true,
	"BYREF": true, "BYVAL": true, "EACH": true, "IN": true, "NEW": true,
	"SHARED": true, "UNTIL": true, "WITHEVENTS": true, "OPTIONAL": true, "PARAMARRAY": true,
	"PRESERVE": true, "SPC": true, "TAB": true, "THEN": true, "TO": true,
	"ADDRESSOF": true, "AND": true, "EQV": true, "IMP": true, "IS": true,
	"LIKE": true, "MOD": true, "NOT": true, "OR": true, "TYPEOF": true,
	"XOR": true, "ABS": true, "CBOOL": true, "CBYTE": true, "CCUR": true,
	"CDATE": true, "CDBL": true, "CDEC": true, "CINT": true, "CLNG": true,
	"CLNGLNG": true, "PTR": true, "CSNG": true, "CSTR": true, "CVAR": true,
	"CVERR": true, "DATE": true, "DEBUG": true, "DOEVENTS": true, "FIX": true,
	"INT": true, "LEN": true, "LENB": true, "ME": true, "PSET": true,
	"SCALE": true, "SGN": true, "STRING": true, "ARRAY": true, "CIRCLE": true,
	"INPUTB": true, "LBOUND": true, "UBOUND": true, "BOOLEAN": true, "BYTE": true,
	"CURRENCY": true, "DOUBLE": true, "INTEGER": true, "LONG": true, "LONGLONG": true,
	"LONGPTR": true, "SINGLE": true, "VARIANT": true, "TRUE": true, "FALSE": true,
	"NOTHING": true, "EMPTY": true, "NULL": true,
}

// isVBKeyword reports whether name collides with a reserved word of the
// target dialect, independent of case.
func isVBKeyword(name string) bool {
	return vbKeywords[strings.ToUpper(name)]
}
