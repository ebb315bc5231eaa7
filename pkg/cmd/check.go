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
package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dh73/hw-cbmc/pkg/expr"
	"github.com/dh73/hw-cbmc/pkg/tlogic"
	"github.com/dh73/hw-cbmc/pkg/unwind"
	unwindz3 "github.com/dh73/hw-cbmc/pkg/unwind/z3"
)

// namedProperties are the concrete scenarios of the unwinding core's
// testable properties, kept here as named inputs since property selection
// (parsing an actual assertion from a source file) is out of scope for
// this core; a host BMC driver supplies real properties via pkg/unwind
// directly.
var namedProperties = map[string]func() expr.Expr{
	"safety": func() expr.Expr {
		return &expr.AG{Op: expr.NewSymbol("p")}
	},
	"bounded-next": func() expr.Expr {
		return &expr.AG{Op: &expr.SVANextTime{Op: expr.NewSymbol("p")}}
	},
	"until": func() expr.Expr {
		return &expr.SVAAlways{Op: &expr.SVASUntil{Lhs: expr.NewSymbol("p"), Rhs: expr.NewSymbol("q")}}
	},
	"eventually": func() expr.Expr {
		return &expr.F{Op: expr.NewSymbol("p")}
	},
	"ax-next": func() expr.Expr {
		return &expr.AG{Op: &expr.AX{Op: expr.NewSymbol("p")}}
	},
}

var checkCmd = &cobra.Command{
	Use:   "check [property]",
	Short: "Unwind a named property over the bound and print its per-timeframe obligations.",
	Args:  cobra.ExactArgs(1),
	Run:   runCheck,
}

func init() {
	checkCmd.Flags().Bool("z3", false, "assert lasso constraints to a real Z3 solver and translate obligations for it, instead of only recording them")
}

func runCheck(cmd *cobra.Command, args []string) {
	name := args[0]
	build, ok := namedProperties[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown property %q\n", name)
		os.Exit(2)
	}

	bound := int(GetUint(cmd, "bound"))
	module := GetString(cmd, "module")
	useZ3 := GetFlag(cmd, "z3")

	phi := tlogic.NNF(build())
	if !tlogic.SupportsProperty(phi) {
		fmt.Fprintf(os.Stderr, "property %q is not supported by this core\n", name)
		os.Exit(1)
	}

	ns := demoNamespace(module)

	var solver unwind.Solver
	if useZ3 {
		z := unwindz3.New()
		defer z.Close()
		solver = z
	} else {
		solver = unwind.NewRecordingSolver()
	}

	if unwind.RequiresLassoConstraints(phi) {
		if err := unwind.LassoConstraints(solver, ns, module, bound); err != nil {
			fmt.Fprintf(os.Stderr, "lasso constraints: %s\n", err)
			os.Exit(1)
		}
		log.WithField("module", module).Debug("emitted lasso constraints")
	}

	prop, err := unwind.Property(phi, solver, bound, ns)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unwinding failed: %s\n", err)
		os.Exit(1)
	}

	printReport(name, prop)
}

func demoNamespace(module string) *unwind.StaticNamespace {
	ns := unwind.NewStaticNamespace()
	ns.AddSymbol(module, unwind.TableSymbol{Name: "p", Type: expr.Bool, IsStateVar: true})
	ns.AddSymbol(module, unwind.TableSymbol{Name: "q", Type: expr.Bool, IsStateVar: true})
	ns.AddModule(unwind.Module{Identifier: module})
	return ns
}

func printReport(name string, prop []expr.Expr) {
	emphasize := term.IsTerminal(int(os.Stdout.Fd()))
	for t, p := range prop {
		if emphasize {
			fmt.Printf("\x1b[1mprop[%d]\x1b[0m (%s): %s\n", t, name, p)
		} else {
			fmt.Printf("prop[%d] (%s): %s\n", t, name, p)
		}
	}
}
