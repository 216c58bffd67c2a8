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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReporterReport(t *testing.T) {
	tests := []struct {
		name         string
		result       Result
		expectedLine string
		expectedCode int
	}{
		{
			name:         "ok result",
			result:       OK("Members: 1: ready, Stack Ring is redundant"),
			expectedLine: "Cisco Stack OK - Members: 1: ready, Stack Ring is redundant\n",
			expectedCode: 0,
		},
		{
			name:         "warning result",
			result:       Warning("Stack Ring is non-redundant"),
			expectedLine: "Cisco Stack WARNING - Stack Ring is non-redundant\n",
			expectedCode: 1,
		},
		{
			name:         "critical result",
			result:       Critical("Unable to retrieve SNMP stack table"),
			expectedLine: "Cisco Stack CRITICAL - Unable to retrieve SNMP stack table\n",
			expectedCode: 2,
		},
		{
			name:         "unknown result",
			result:       Unknown("bad arguments"),
			expectedLine: "Cisco Stack UNKNOWN - bad arguments\n",
			expectedCode: 3,
		},
		{
			name:         "unrecognized status prints unknown",
			result:       Result{Status: Status(42), Message: "?"},
			expectedLine: "Cisco Stack UNKNOWN - ?\n",
			expectedCode: 3,
		},
		{
			name:         "empty message keeps separator",
			result:       OK(""),
			expectedLine: "Cisco Stack OK - \n",
			expectedCode: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			reporter := &Reporter{ProgramName: "Cisco Stack", Out: &out}

			code := reporter.Report(tt.result)

			assert.Equal(t, tt.expectedLine, out.String())
			assert.Equal(t, tt.expectedCode, code)
		})
	}
}
