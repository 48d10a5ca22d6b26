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

// UseModule marks an identifier as the module-qualifier segment of a
// qualified path (e.g. the "Other" of "Other::helper"). It carries no scope
// of its own: a module qualifier always names a top-level module, visible
// from anywhere.
type UseModule struct{}

func (UseModule) isNameCtxt() {}
