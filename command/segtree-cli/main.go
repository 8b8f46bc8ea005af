// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/segtree/configuration"
	"github.com/bitmark-inc/segtree/segment"
	"github.com/bitmark-inc/segtree/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if err != nil {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || 0 == len(arguments) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--config-file=FILE] put|delete|cover|endpoints|dump arguments...", program)
	}

	configurationFile := "segtree.conf"
	if len(options["config-file"]) > 0 {
		configurationFile = options["config-file"][0]
	}

	cfg, err := configuration.GetConfiguration(configurationFile)
	if err != nil {
		exitwithstatus.Message("%s: configuration: %q  error: %s", program, configurationFile, err)
	}

	logging := cfg.Logging
	if len(options["verbose"]) > 0 {
		logging.Console = true
		logging.Levels = map[string]string{
			logger.DefaultTag: "info",
		}
	}

	// start logging
	if err = logger.Initialise(logging); err != nil {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)

	// ------------------
	// start of real main
	// ------------------

	tree, err := segment.Open(cfg.Database, cfg.EndpointBits, cfg.Truncate)
	if err != nil {
		exitwithstatus.Message("%s: open database: %q  error: %s", program, cfg.Database, err)
	}
	defer tree.Close()

	quiet := len(options["quiet"]) > 0
	command := arguments[0]
	arguments = arguments[1:]

	switch command {

	case "put", "delete":
		if len(arguments) < 3 {
			exitwithstatus.Message("usage: %s %s owner start end [level]", program, command)
		}
		owner := []byte(arguments[0])
		start := parseUint(program, arguments[1], 64)
		end := parseUint(program, arguments[2], 64)
		level := uint64(0)
		if len(arguments) > 3 {
			level = parseUint(program, arguments[3], 8)
		}

		if "put" == command {
			err = tree.Put(owner, start, end, uint8(level))
		} else {
			err = tree.Delete(owner, start, end, uint8(level))
		}
		if err != nil {
			exitwithstatus.Message("%s: %s failed: %s", program, command, err)
		}
		log.Infof("%s: owner: %q  interval: [%d, %d]  level: %d", command, owner, start, end, level)

	case "cover":
		if 1 != len(arguments) {
			exitwithstatus.Message("usage: %s cover value", program)
		}
		value := parseUint(program, arguments[0], 64)

		matches := 0
		err = tree.Cover(value, func(r segment.Record) bool {
			matches += 1
			if !quiet {
				fmt.Printf("owner: %q  level: %d  interval: [%d, %d]\n", r.Owner, r.Level, r.Start, r.End)
			}
			return true
		})
		if err != nil {
			exitwithstatus.Message("%s: cover failed: %s", program, err)
		}
		log.Infof("cover: %d  matches: %d", value, matches)

	case "endpoints":
		r := segment.EndpointRange{}
		if len(arguments) > 0 {
			start := parseUint(program, arguments[0], 64)
			r.Start = &start
		}
		if len(arguments) > 1 {
			stop := parseUint(program, arguments[1], 64)
			r.Stop = &stop
		}

		err = tree.QueryEndpoints(r, func(e segment.Endpoint) bool {
			kind := "end"
			if e.IsStart {
				kind = "start"
			}
			fmt.Printf("value: %d  level: %d  kind: %-5s  owner: %q\n", e.Value, e.Level, kind, e.Owner)
			return true
		})
		if err != nil {
			exitwithstatus.Message("%s: endpoints failed: %s", program, err)
		}

	case "dump":
		err = storage.Iterate(nil, nil, false, true, true, true, func(key []byte, data []byte) bool {
			if 0 == len(key) {
				return true
			}
			switch key[0] {
			case segment.TagSegment:
				lower, upper, level, owner, err := segment.DecodeSegmentKey(key)
				if err != nil {
					fmt.Printf("malformed segment key: %x\n", key)
					return true
				}
				start, end, err := segment.DecodeInterval(data)
				if err != nil {
					fmt.Printf("malformed segment data: %x\n", data)
					return true
				}
				fmt.Printf("segment:  node: [%d, %d]  level: %d  owner: %q  interval: [%d, %d]\n", lower, upper, level, owner, start, end)
			case segment.TagEndpoint:
				value, level, isStart, owner, err := segment.DecodeEndpointKey(key)
				if err != nil {
					fmt.Printf("malformed endpoint key: %x\n", key)
					return true
				}
				kind := "end"
				if isStart {
					kind = "start"
				}
				fmt.Printf("endpoint: value: %d  level: %d  kind: %-5s  owner: %q\n", value, level, kind, owner)
			default:
				fmt.Printf("unknown key: %x  data: %x\n", key, data)
			}
			return true
		})
		if err != nil {
			exitwithstatus.Message("%s: dump failed: %s", program, err)
		}

	default:
		exitwithstatus.Message("%s: unknown command: %q", program, command)
	}
}

// parse an unsigned decimal argument or abort
func parseUint(program string, s string, bits int) uint64 {
	n, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		exitwithstatus.Message("%s: invalid number: %q  error: %s", program, s, err)
	}
	return n
}
