/*
 * Copyright 2025 Jeffrey Wolak.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package nagios

import (
	"fmt"
	"io"
)

// Result is the terminal outcome of one check invocation.
type Result struct {
	Status  Status
	Message string
}

func OK(message string) Result       { return Result{Status: StateOK, Message: message} }
func Warning(message string) Result  { return Result{Status: StateWarning, Message: message} }
func Critical(message string) Result { return Result{Status: StateCritical, Message: message} }
func Unknown(message string) Result  { return Result{Status: StateUnknown, Message: message} }

// Reporter writes check results in the plugin-runner line format. It never
// terminates the process; main owns the exit call.
type Reporter struct {
	// ProgramName prefixes every output line, e.g. "Cisco Stack".
	ProgramName string
	Out         io.Writer
}

// Report writes "<program> <SEVERITY> - <message>" and returns the exit code
// the process must terminate with.
func (r *Reporter) Report(result Result) int {
	fmt.Fprintf(r.Out, "%s %s - %s\n", r.ProgramName, result.Status, result.Message)

	return result.Status.ExitCode()
}
