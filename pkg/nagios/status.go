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

// Package nagios implements the plugin-runner contract shared by all checks:
// the four-state severity model, the single-line result output, and the common
// command line surface.
package nagios

// Status is the four-state outcome of a health check.
type Status int

const (
	StateOK Status = iota
	StateWarning
	StateCritical
	StateUnknown
)

// String returns the uppercase severity word. Any value outside the defined
// range reads as UNKNOWN.
func (s Status) String() string {
	switch s {
	case StateOK:
		return "OK"
	case StateWarning:
		return "WARNING"
	case StateCritical:
		return "CRITICAL"
	case StateUnknown:
		return "UNKNOWN"
	default:
		return "UNKNOWN"
	}
}

// ExitCode returns the process exit code for the severity. Values outside the
// defined range collapse to the UNKNOWN exit code.
func (s Status) ExitCode() int {
	if s < StateOK || s > StateUnknown {
		return int(StateUnknown)
	}

	return int(s)
}
