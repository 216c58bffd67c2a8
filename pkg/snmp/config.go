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

package snmp

import "time"

const (
	// Version1 and Version2c are the supported protocol versions. The checks
	// target read-only community access; there is no v3 credential surface.
	Version1  = "1"
	Version2c = "2c"

	defaultPort    = 161
	defaultTimeout = 5 * time.Second
	defaultRetries = 1
)

// ClientConfig holds the session parameters for one target device.
type ClientConfig struct {
	Target    string
	Port      uint16
	Community string
	Version   string
	Timeout   time.Duration
	Retries   int
}

// withDefaults fills the zero-valued fields with the standard session
// parameters.
func (c ClientConfig) withDefaults() ClientConfig {
	if c.Port == 0 {
		c.Port = defaultPort
	}

	if c.Version == "" {
		c.Version = Version1
	}

	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}

	if c.Retries == 0 {
		c.Retries = defaultRetries
	}

	return c
}
