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

// Package ciscotunnels checks the operational status of every Tunnel
// interface on a device. Non-tunnel interfaces are out of scope for the
// check, not partial failures.
package ciscotunnels

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/wershlak/nagios-plugins/pkg/entity"
	"github.com/wershlak/nagios-plugins/pkg/nagios"
	"github.com/wershlak/nagios-plugins/pkg/snmp"
)

// IF-MIB objects.
const (
	oidIfDescr      = ".1.3.6.1.2.1.2.2.1.2"
	oidIfOperStatus = ".1.3.6.1.2.1.2.2.1.8"

	// tunnelDescrMatch selects the interfaces in scope, matched case-sensitively
	// against ifDescr.
	tunnelDescrMatch = "Tunnel"

	operUp = "1"
)

// Check polls and evaluates the tunnel interfaces of one device.
type Check struct {
	client snmp.Client
	logger zerolog.Logger
}

func NewCheck(client snmp.Client, logger zerolog.Logger) *Check {
	return &Check{
		client: client,
		logger: logger.With().Str("check", "cisco_tunnels").Logger(),
	}
}

// Run drives one poll cycle: ifDescr walk, ifOperStatus walk, correlation,
// evaluation. The first failing step terminates the cycle with CRITICAL and a
// diagnostic naming the query.
func (c *Check) Run() nagios.Result {
	c.logger.Debug().Msg("Walking interface descriptions")

	descriptions, err := c.client.Walk(oidIfDescr)
	if err != nil || len(descriptions) == 0 {
		c.logger.Debug().Err(err).Msg("Interface description walk failed")
		return nagios.Critical("Unable to retrieve SNMP interface descriptions")
	}

	c.logger.Debug().Msg("Walking interface status")

	states, err := c.client.Walk(oidIfOperStatus)
	if err != nil || len(states) == 0 {
		c.logger.Debug().Err(err).Msg("Interface status walk failed")
		return nagios.Critical("Unable to retrieve SNMP interface status")
	}

	interfaces := entity.NewSet(descriptions)
	if err := interfaces.AttachStates(states, OperStatusName); err != nil {
		c.logger.Debug().Err(err).Msg("Interface status correlation failed")
		return nagios.Critical(fmt.Sprintf("Unable to correlate SNMP interface status: %v", err))
	}

	return Evaluate(interfaces)
}

// Evaluate classifies the tunnel interfaces of a correlated interface set.
// Every tunnel appears in the message as UP or DOWN; any DOWN tunnel is
// CRITICAL. A device with no tunnel interfaces is OK with an empty message.
func Evaluate(interfaces entity.Set) nagios.Result {
	result := nagios.OK("")
	message := ""

	for _, index := range interfaces.SortedIndexes() {
		iface := interfaces[index]
		if !strings.Contains(iface.Label, tunnelDescrMatch) {
			continue
		}

		status := "UP"
		if iface.RawState != operUp {
			status = "DOWN"
			result.Status = nagios.StateCritical
		}

		message += fmt.Sprintf("%s: %s ", iface.Label, status)
	}

	result.Message = message

	return result
}
