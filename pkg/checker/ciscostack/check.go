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

// Package ciscostack checks the health of a Cisco StackWise switch stack: the
// state of every stack member plus the redundancy of the stack ring.
package ciscostack

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/wershlak/nagios-plugins/pkg/entity"
	"github.com/wershlak/nagios-plugins/pkg/nagios"
	"github.com/wershlak/nagios-plugins/pkg/snmp"
)

// CISCO-STACKWISE-MIB objects.
const (
	// cswSwitchNumCurrent: the switch identification number, matching the
	// logical labeling on the chassis.
	oidMemberNumber = ".1.3.6.1.4.1.9.9.500.1.2.1.1.1"
	// cswSwitchState: the current state of a switch.
	oidMemberState = ".1.3.6.1.4.1.9.9.500.1.2.1.1.6"
	// cswRingRedundant: true when the stack ports form a redundant ring.
	oidRingRedundant = ".1.3.6.1.4.1.9.9.500.1.1.3.0"

	ringRedundant = "1"
)

// Check polls and evaluates one switch stack.
type Check struct {
	client snmp.Client
	logger zerolog.Logger
}

func NewCheck(client snmp.Client, logger zerolog.Logger) *Check {
	return &Check{
		client: client,
		logger: logger.With().Str("check", "cisco_stack").Logger(),
	}
}

// Run drives one poll cycle: member-number walk, member-state walk, ring
// scalar read, correlation, evaluation. The first failing step terminates the
// cycle with CRITICAL and a diagnostic naming the query; an incomplete
// snapshot is never evaluated.
func (c *Check) Run() nagios.Result {
	c.logger.Debug().Msg("Walking stack table")

	members, err := c.client.Walk(oidMemberNumber)
	if err != nil || len(members) == 0 {
		c.logger.Debug().Err(err).Msg("Stack table walk failed")
		return nagios.Critical("Unable to retrieve SNMP stack table")
	}

	c.logger.Debug().Msg("Walking stack status")

	states, err := c.client.Walk(oidMemberState)
	if err != nil || len(states) == 0 {
		c.logger.Debug().Err(err).Msg("Stack status walk failed")
		return nagios.Critical("Unable to retrieve SNMP stack status")
	}

	c.logger.Debug().Msg("Getting stack ring redundancy status")

	ring, err := c.client.Get(oidRingRedundant)
	if err != nil {
		c.logger.Debug().Err(err).Msg("Ring status get failed")
		return nagios.Critical("Unable to retrieve SNMP ring status")
	}

	stack := entity.NewSet(members)
	if err := stack.AttachStates(states, StateName); err != nil {
		c.logger.Debug().Err(err).Msg("Stack status correlation failed")
		return nagios.Critical(fmt.Sprintf("Unable to correlate SNMP stack status: %v", err))
	}

	return Evaluate(stack, ring)
}

// Evaluate classifies a correlated stack snapshot. Any member outside the
// ready/provisioned states is CRITICAL; a non-redundant ring alone is
// WARNING. Escalation is monotonic: a later healthy member never downgrades
// the severity.
func Evaluate(stack entity.Set, ring string) nagios.Result {
	result := nagios.OK("")
	message := "Members: "

	for _, index := range stack.SortedIndexes() {
		member := stack[index]
		message += fmt.Sprintf("%s: %s, ", member.Label, member.StateName)

		if member.RawState != stateReady && member.RawState != stateProvisioned {
			result.Status = nagios.StateCritical
		}
	}

	if ring == ringRedundant {
		message += "Stack Ring is redundant"
	} else {
		message += "Stack Ring is non-redundant"

		if result.Status == nagios.StateOK {
			result.Status = nagios.StateWarning
		}
	}

	result.Message = message

	return result
}
