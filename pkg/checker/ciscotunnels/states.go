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

package ciscotunnels

// IF-MIB ifOperStatus values.
var operStatusNames = map[string]string{
	"1": "up",
	"2": "down",
	"3": "testing",
	"4": "unknown",
	"5": "dormant",
	"6": "notPresent",
	"7": "lowerLayerDown",
}

// OperStatusName resolves an ifOperStatus code to its name. Codes outside the
// MIB taxonomy degrade to "UNKNOWN"; the decoder never fails.
func OperStatusName(code string) string {
	if name, ok := operStatusNames[code]; ok {
		return name
	}

	return "UNKNOWN"
}
