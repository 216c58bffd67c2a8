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

package ciscostack

// CISCO-STACKWISE-MIB cswSwitchState values. Only ready (4) and provisioned
// (9) count as healthy for alerting.
const (
	stateReady       = "4"
	stateProvisioned = "9"
)

var stackStateNames = map[string]string{
	"1":  "waiting",
	"2":  "progressing",
	"3":  "added",
	"4":  "ready",
	"5":  "sdmMismatch",
	"6":  "verMismatch",
	"7":  "featureMismatch",
	"8":  "newMasterInit",
	"9":  "provisioned",
	"10": "invalid",
	"11": "removed",
}

// StateName resolves a cswSwitchState code to its name. Codes outside the MIB
// taxonomy degrade to "UNKNOWN"; the decoder never fails.
func StateName(code string) string {
	if name, ok := stackStateNames[code]; ok {
		return name
	}

	return "UNKNOWN"
}
