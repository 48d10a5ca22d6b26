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
package main

import (
	"os"

	"github.com/mxxo/trashcan-go/pkg/rewrite"
	"github.com/mxxo/trashcan-go/pkg/symbols"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// buildCmd drives the middle end over a hard-coded sample dumpster, standing
// in for what a real invocation would do with a parser's output: build the
// symbol table, run the rename passes, then rebuild the symbol table against
// the renamed tree and dump it.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "run symbol table construction and the rename passes over a sample dumpster.",
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}

		d := sampleDumpster()

		log.Infof("built sample dumpster with %d module(s)", len(d.Modules))

		table, aerr := symbols.Build(d)
		if aerr != nil {
			log.Errorf("symbol table construction failed: %s", aerr)
			os.Exit(1)
		}

		log.Info("symbol table construction succeeded; dumping pre-rename table")

		if err := table.Dump(os.Stdout, 2); err != nil {
			log.Errorf("failed to dump symbol table: %s", err)
			os.Exit(1)
		}

		rewrite.RenameAll(d)

		log.Info("rename passes complete; rebuilding symbol table against renamed tree")

		renamed, aerr := symbols.Build(d)
		if aerr != nil {
			log.Errorf("symbol table reconstruction after renaming failed: %s", aerr)
			os.Exit(1)
		}

		if err := renamed.Dump(os.Stdout, 2); err != nil {
			log.Errorf("failed to dump renamed symbol table: %s", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
