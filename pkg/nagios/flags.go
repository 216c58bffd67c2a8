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
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

const defaultCommunity = "Public"

var (
	// ErrHelpRequested is returned when -h/--help is given; the caller prints
	// nothing further and exits with the UNKNOWN code.
	ErrHelpRequested = errors.New("help requested")
	// ErrVersionRequested is returned when -v/--version is given; the caller
	// exits zero.
	ErrVersionRequested = errors.New("version requested")
	ErrHostRequired     = errors.New("host is required")
)

// Options is the parsed, immutable command line configuration shared by every
// check binary. It is constructed once by ParseFlags and passed explicitly to
// the query client; nothing mutates it afterwards.
type Options struct {
	Host      string
	Community string
	Protocol  string
	Debug     bool
}

// ParseFlags parses the standard plugin command line. It never terminates the
// process: help, version and usage failures surface as sentinel errors so the
// caller can map them to exit codes.
func ParseFlags(program, version string, args []string, out io.Writer) (*Options, error) {
	opts := &Options{}

	fs := pflag.NewFlagSet(program, pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.SortFlags = false

	fs.StringVarP(&opts.Host, "host", "H", "", "IP address of the device to check")
	fs.StringVarP(&opts.Community, "community", "c", defaultCommunity, "SNMP community string")
	fs.StringVarP(&opts.Protocol, "protocol", "p", "1", "SNMP protocol version (1 or 2c)")
	fs.BoolVarP(&opts.Debug, "debug", "d", false, "verbose mode for debugging")
	showHelp := fs.BoolP("help", "h", false, "prints out this help message")
	showVersion := fs.BoolP("version", "v", false, "prints the version number")

	fs.Usage = func() {
		fmt.Fprintf(out, "Usage of %s:\n%s", program, fs.FlagUsages())
	}

	// pflag prints the offending flag and the usage text itself on failure.
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *showVersion {
		fmt.Fprintf(out, "%s plugin version %s\n", program, version)
		return nil, ErrVersionRequested
	}

	if *showHelp {
		fs.Usage()
		return nil, ErrHelpRequested
	}

	if opts.Host == "" {
		fmt.Fprintln(out, "Requires host to check")
		fs.Usage()

		return nil, ErrHostRequired
	}

	return opts, nil
}
