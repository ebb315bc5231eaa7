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

// Package cmd provides the hw-cbmc command-line front end. It is a thin
// driver over pkg/unwind: it owns none of the unwinding semantics, only
// flag parsing, logging setup and report formatting.
package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version can be set at link time (go build -ldflags "-X ..."); it is
// empty otherwise.
var Version string

var rootCmd = &cobra.Command{
	Use:   "hw-cbmc",
	Short: "Temporal-logic unwinding core for a bounded model checker.",
	Long: "hw-cbmc unwinds an LTL, CTL or SVA property against a bounded window of a\n" +
		"synchronous hardware transition system, producing per-timeframe obligations\n" +
		"and, where liveness demands it, lasso constraints.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(); it only needs to happen
// once.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().UintP("bound", "b", 10, "bound N on the unrolled trace length")
	rootCmd.PersistentFlags().StringP("module", "m", "main", "identifier of the target module")

	rootCmd.AddCommand(checkCmd)
}
