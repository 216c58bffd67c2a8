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

// Package entity correlates independently walked metric tables into unified
// per-entity records. Separate walks over the same entity set give no ordering
// or count guarantee, so rows are joined strictly by the trailing OID index,
// never by position.
package entity

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/wershlak/nagios-plugins/pkg/snmp"
)

// ErrUnknownIndex occurs when a secondary table row references an entity the
// primary table never established.
var ErrUnknownIndex = errors.New("row references unknown entity index")

// Record is the correlated state of one polled sub-component, e.g. one stack
// member or one interface.
type Record struct {
	// Index is the trailing OID component identifying the entity within one
	// poll cycle.
	Index string
	// Label is a secondary human-facing identifier: a member number or an
	// interface description. Carried by the primary table.
	Label string
	// RawState is the unmodified state code reported by the device.
	RawState string
	// StateName is the decoded name for RawState, "UNKNOWN" when the code has
	// no mapping.
	StateName string
}

// Set is the correlated record mapping for one poll cycle, keyed by index.
type Set map[string]*Record

// DecodeFunc maps a device state code to a human-readable name. Decoders are
// total: an unrecognized code degrades to "UNKNOWN" instead of failing, so
// firmware-specific codes never abort an evaluation.
type DecodeFunc func(code string) string

// NewSet establishes one record per primary-table row. Entity existence is
// defined by the primary table alone; later walks only attach fields.
func NewSet(primary []snmp.Pair) Set {
	set := make(Set, len(primary))

	for _, row := range primary {
		set[row.Index] = &Record{Index: row.Index, Label: row.Value}
	}

	return set
}

// AttachStates merges a secondary state walk into the set, resolving each
// code through decode. A row whose index was not established by the primary
// table fails the correlation.
func (s Set) AttachStates(rows []snmp.Pair, decode DecodeFunc) error {
	for _, row := range rows {
		record, ok := s[row.Index]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownIndex, row.Index)
		}

		record.RawState = row.Value
		record.StateName = decode(row.Value)
	}

	return nil
}

// SortedIndexes returns the record keys in ascending order, numerically where
// both keys parse as integers. Walk order is not reproducible across tables,
// so evaluators iterate in this order to keep output deterministic.
func (s Set) SortedIndexes() []string {
	indexes := make([]string, 0, len(s))
	for index := range s {
		indexes = append(indexes, index)
	}

	sort.Slice(indexes, func(i, j int) bool {
		a, errA := strconv.Atoi(indexes[i])
		b, errB := strconv.Atoi(indexes[j])

		if errA == nil && errB == nil {
			return a < b
		}

		return indexes[i] < indexes[j]
	})

	return indexes
}
