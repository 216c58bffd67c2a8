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

// Package snmp is the query boundary of the checks: a thin get/walk client
// over gosnmp that returns rows as (index suffix, string value) pairs.
package snmp

import (
	"fmt"
	"strings"

	"github.com/gosnmp/gosnmp"
	"github.com/rs/zerolog"
)

// Pair is one row of a table walk. Index is the trailing dot-separated
// component of the returned OID; within one walk it is unique per entity and
// is the join key across related walks.
type Pair struct {
	Index string
	Value string
}

// Client is the query surface consumed by the checkers.
type Client interface {
	// Walk enumerates the subtree under root and returns one Pair per row, in
	// the order the device returned them. A reachable device with no rows
	// yields an empty slice and no error.
	Walk(oid string) ([]Pair, error)
	// Get reads a single scalar value.
	Get(oid string) (string, error)
}

// GoSNMPClient is the gosnmp-backed Client implementation.
type GoSNMPClient struct {
	conn   *gosnmp.GoSNMP
	config ClientConfig
	logger zerolog.Logger
}

// NewClient builds a client for one target device. The session is not opened
// until Connect.
func NewClient(config ClientConfig, logger zerolog.Logger) (*GoSNMPClient, error) {
	config = config.withDefaults()

	if config.Target == "" {
		return nil, ErrTargetRequired
	}

	conn := &gosnmp.GoSNMP{
		Target:             config.Target,
		Port:               config.Port,
		Community:          config.Community,
		Timeout:            config.Timeout,
		Retries:            config.Retries,
		MaxOids:            gosnmp.MaxOids,
		ExponentialTimeout: true,
	}

	switch config.Version {
	case Version1:
		conn.Version = gosnmp.Version1
	case Version2c:
		conn.Version = gosnmp.Version2c
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedVersion, config.Version)
	}

	return &GoSNMPClient{
		conn:   conn,
		config: config,
		logger: logger.With().Str("target", config.Target).Logger(),
	}, nil
}

// Connect opens the UDP session.
func (c *GoSNMPClient) Connect() error {
	if err := c.conn.Connect(); err != nil {
		return fmt.Errorf("failed to connect to %s: %w", c.config.Target, err)
	}

	return nil
}

// Close releases the session socket.
func (c *GoSNMPClient) Close() error {
	if c.conn.Conn == nil {
		return nil
	}

	return c.conn.Conn.Close()
}

// Walk enumerates the subtree under root. SNMPv1 sessions walk with GETNEXT;
// v2c uses GETBULK.
func (c *GoSNMPClient) Walk(oid string) ([]Pair, error) {
	c.logger.Debug().Str("oid", oid).Msg("Walking table")

	var pairs []Pair

	collect := func(pdu gosnmp.SnmpPDU) error {
		pair := Pair{Index: IndexSuffix(pdu.Name), Value: ValueString(pdu)}
		c.logger.Debug().Str("oid", pdu.Name).Str("index", pair.Index).Str("value", pair.Value).Msg("Row")
		pairs = append(pairs, pair)

		return nil
	}

	var err error
	if c.conn.Version == gosnmp.Version1 {
		err = c.conn.Walk(oid, collect)
	} else {
		err = c.conn.BulkWalk(oid, collect)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", oid, err)
	}

	return pairs, nil
}

// Get reads a single scalar value.
func (c *GoSNMPClient) Get(oid string) (string, error) {
	c.logger.Debug().Str("oid", oid).Msg("Getting scalar")

	packet, err := c.conn.Get([]string{oid})
	if err != nil {
		return "", fmt.Errorf("failed to get %s: %w", oid, err)
	}

	if packet.Error != gosnmp.NoError || len(packet.Variables) == 0 {
		return "", fmt.Errorf("%w: %s", ErrEmptyResponse, oid)
	}

	pdu := packet.Variables[0]
	if pdu.Type == gosnmp.NoSuchObject || pdu.Type == gosnmp.NoSuchInstance {
		return "", fmt.Errorf("%w: %s", ErrNoSuchObject, oid)
	}

	value := ValueString(pdu)
	c.logger.Debug().Str("oid", oid).Str("value", value).Msg("Scalar value")

	return value, nil
}

// IndexSuffix extracts the trailing dot-separated component of an OID, the
// per-row entity index of a table walk.
func IndexSuffix(oid string) string {
	if i := strings.LastIndex(oid, "."); i >= 0 {
		return oid[i+1:]
	}

	return oid
}

// ValueString renders a PDU value as a string. Octet strings come back as-is;
// every integer kind renders in decimal so state codes compare as the device
// reported them.
func ValueString(pdu gosnmp.SnmpPDU) string {
	switch pdu.Type {
	case gosnmp.OctetString:
		if b, ok := pdu.Value.([]byte); ok {
			return string(b)
		}

		return fmt.Sprintf("%v", pdu.Value)
	case gosnmp.Integer, gosnmp.Counter32, gosnmp.Gauge32, gosnmp.Counter64, gosnmp.TimeTicks, gosnmp.Uinteger32:
		return gosnmp.ToBigInt(pdu.Value).String()
	case gosnmp.IPAddress, gosnmp.ObjectIdentifier:
		if s, ok := pdu.Value.(string); ok {
			return s
		}

		return fmt.Sprintf("%v", pdu.Value)
	default:
		return fmt.Sprintf("%v", pdu.Value)
	}
}
