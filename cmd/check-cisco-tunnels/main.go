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

package main

import (
	"errors"
	"io"
	"os"

	"github.com/wershlak/nagios-plugins/pkg/checker/ciscotunnels"
	"github.com/wershlak/nagios-plugins/pkg/logger"
	"github.com/wershlak/nagios-plugins/pkg/nagios"
	"github.com/wershlak/nagios-plugins/pkg/snmp"
)

const (
	programName = "Cisco Tunnels"
	version     = "2.0"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := nagios.ParseFlags(programName, version, args, stdout)
	if err != nil {
		if errors.Is(err, nagios.ErrVersionRequested) {
			return nagios.StateOK.ExitCode()
		}

		return nagios.StateUnknown.ExitCode()
	}

	log := logger.New(stderr, opts.Debug)
	log.Debug().Str("host", opts.Host).Str("community", opts.Community).Msg("Debug mode started")

	reporter := &nagios.Reporter{ProgramName: programName, Out: stdout}

	client, err := snmp.NewClient(snmp.ClientConfig{
		Target:    opts.Host,
		Community: opts.Community,
		Version:   opts.Protocol,
	}, log)
	if err != nil {
		return reporter.Report(nagios.Unknown("Invalid SNMP client configuration: " + err.Error()))
	}

	if err := client.Connect(); err != nil {
		return reporter.Report(nagios.Critical("SNMP session setup failed"))
	}
	defer client.Close()

	result := ciscotunnels.NewCheck(client, log).Run()

	return reporter.Report(result)
}
