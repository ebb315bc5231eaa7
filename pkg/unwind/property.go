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
package unwind

import (
	log "github.com/sirupsen/logrus"

	"github.com/dh73/hw-cbmc/pkg/expr"
)

// Property is the entry point a host BMC driver calls: it turns phi's
// obligation map into a dense vector prop[0..bound), defaulting
// every timeframe with no obligation to True and passing the conjunction
// of the rest through solver.Handle. It does not itself decide whether
// lasso constraints are needed; call RequiresLassoConstraints and
// LassoConstraints beforehand if phi needs them.
func Property(phi expr.Expr, solver Solver, bound int, ns Namespace) ([]expr.Expr, error) {
	obligations, err := PropertyObligations(phi, bound, ns)
	if err != nil {
		return nil, err
	}

	prop := make([]expr.Expr, bound)
	for t := range prop {
		prop[t] = expr.True{}
	}

	for _, t := range obligations.Timeframes() {
		if t < 0 || t >= bound {
			return nil, &InvariantViolationError{Reason: "obligation timeframe out of range"}
		}
		conjunction := expr.NewAnd(obligations.At(t)...)
		prop[t] = solver.Handle(conjunction)
		log.WithFields(log.Fields{"t": t}).Debug("handled property obligation")
	}
	return prop, nil
}
