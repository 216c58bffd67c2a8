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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateName(t *testing.T) {
	tests := []struct {
		code     string
		expected string
	}{
		{code: "1", expected: "waiting"},
		{code: "2", expected: "progressing"},
		{code: "3", expected: "added"},
		{code: "4", expected: "ready"},
		{code: "5", expected: "sdmMismatch"},
		{code: "6", expected: "verMismatch"},
		{code: "7", expected: "featureMismatch"},
		{code: "8", expected: "newMasterInit"},
		{code: "9", expected: "provisioned"},
		{code: "10", expected: "invalid"},
		{code: "11", expected: "removed"},
		{code: "0", expected: "UNKNOWN"},
		{code: "12", expected: "UNKNOWN"},
		{code: "99", expected: "UNKNOWN"},
		{code: "x", expected: "UNKNOWN"},
		{code: "", expected: "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, StateName(tt.code))
		})
	}
}
