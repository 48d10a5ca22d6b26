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
package visitor

// UseMember marks an identifier as a reference to a struct member (e.g. the
// right-hand side of `obj.Field`). Unlike function/type/value uses, member
// uses carry no module or function scope: resolving which struct a member
// access belongs to would require type information this traversal does not
// have, so the rename passes treat the member namespace as flat and global
// (see the case-folding duplicate pass).
type UseMember struct{}

func (UseMember) isNameCtxt() {}
