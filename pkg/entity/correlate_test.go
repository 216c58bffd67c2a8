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

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wershlak/nagios-plugins/pkg/snmp"
)

func identityDecode(code string) string { return code }

func TestNewSet(t *testing.T) {
	primary := []snmp.Pair{
		{Index: "1001", Value: "1"},
		{Index: "2001", Value: "2"},
	}

	set := NewSet(primary)

	require.Len(t, set, 2)
	assert.Equal(t, &Record{Index: "1001", Label: "1"}, set["1001"])
	assert.Equal(t, &Record{Index: "2001", Label: "2"}, set["2001"])
}

func TestAttachStates(t *testing.T) {
	decode := func(code string) string {
		if code == "4" {
			return "ready"
		}

		return "UNKNOWN"
	}

	set := NewSet([]snmp.Pair{
		{Index: "1001", Value: "1"},
		{Index: "2001", Value: "2"},
	})

	err := set.AttachStates([]snmp.Pair{
		{Index: "1001", Value: "4"},
		{Index: "2001", Value: "99"},
	}, decode)

	require.NoError(t, err)
	assert.Equal(t, "4", set["1001"].RawState)
	assert.Equal(t, "ready", set["1001"].StateName)
	assert.Equal(t, "99", set["2001"].RawState)
	assert.Equal(t, "UNKNOWN", set["2001"].StateName)
}

// Separate walks over the same table give no ordering guarantee, so the merge
// must come out identical for every permutation of the secondary rows.
func TestAttachStatesOrderIndependent(t *testing.T) {
	primary := []snmp.Pair{
		{Index: "1001", Value: "1"},
		{Index: "2001", Value: "2"},
		{Index: "3001", Value: "3"},
	}
	secondary := []snmp.Pair{
		{Index: "1001", Value: "4"},
		{Index: "2001", Value: "9"},
		{Index: "3001", Value: "10"},
	}
	permutations := [][]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}

	reference := NewSet(primary)
	require.NoError(t, reference.AttachStates(secondary, identityDecode))

	for _, perm := range permutations {
		shuffled := make([]snmp.Pair, len(secondary))
		for i, j := range perm {
			shuffled[i] = secondary[j]
		}

		set := NewSet(primary)
		require.NoError(t, set.AttachStates(shuffled, identityDecode))
		assert.Equal(t, reference, set)
	}
}

func TestAttachStatesUnknownIndex(t *testing.T) {
	set := NewSet([]snmp.Pair{{Index: "1001", Value: "1"}})

	err := set.AttachStates([]snmp.Pair{
		{Index: "1001", Value: "4"},
		{Index: "5001", Value: "4"},
	}, identityDecode)

	require.ErrorIs(t, err, ErrUnknownIndex)
	assert.Contains(t, err.Error(), "5001")
}

func TestSortedIndexes(t *testing.T) {
	tests := []struct {
		name     string
		indexes  []string
		expected []string
	}{
		{
			name:     "numeric order beats lexical order",
			indexes:  []string{"10", "9", "1001", "2"},
			expected: []string{"2", "9", "10", "1001"},
		},
		{
			name:     "non-numeric falls back to lexical",
			indexes:  []string{"b", "a", "c"},
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "empty set",
			indexes:  nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := make(Set, len(tt.indexes))
			for _, index := range tt.indexes {
				set[index] = &Record{Index: index}
			}

			assert.Equal(t, tt.expected, set.SortedIndexes())
		})
	}
}
