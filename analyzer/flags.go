// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package analyzer

import (
	"flag"

	"fillmore-labs.com/asyncguard/internal/config"
	"fillmore-labs.com/asyncguard/internal/run"
)

// registerFlags binds the [run.Options] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, o *run.Options) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.Var(NewRuleValue(&o.Rules, config.SleepRule), "sleep", "report every time.Sleep call")
	flags.Var(NewRuleValue(&o.Rules, config.AsyncSleepRule), "async-sleep", "report time.Sleep in asynchronous functions")
	flags.Var(NewRuleValue(&o.Rules, config.PropagateContextRule), "propagate-context", "report empty contexts passed while a context is in scope")

	flags.Var(NewBehaviorValue(&o.Behavior, config.IncludeGenerated), "generated", "check generated files")
	flags.Var(NewBehaviorValue(&o.Behavior, config.Transitive), "transitive", "look through synchronous function literals in asynchronous functions")
}
