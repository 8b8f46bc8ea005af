// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"errors"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/segtree/segment"
)

// defaults filled in before the configuration file is executed
const (
	defaultDatabase     = "segtree.leveldb"
	defaultEndpointBits = 32

	defaultLogDirectory = "log"
	defaultLogFile      = "segtree.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// Configuration - settings for the index tools
type Configuration struct {
	Database     string               `gluamapper:"database"`
	EndpointBits uint                 `gluamapper:"endpoint_bits"`
	Truncate     bool                 `gluamapper:"truncate"`
	Logging      logger.Configuration `gluamapper:"logging"`
}

// GetConfiguration - read, decode and verify the configuration
func GetConfiguration(fileName string) (*Configuration, error) {

	fileName, err := filepath.Abs(filepath.Clean(fileName))
	if err != nil {
		return nil, err
	}

	options := &Configuration{
		Database:     defaultDatabase,
		EndpointBits: defaultEndpointBits,
		Truncate:     false,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}

	if err := ParseConfigurationFile(fileName, options); err != nil {
		return nil, err
	}

	if "" == options.Database {
		return nil, errors.New("database is required")
	}
	if options.EndpointBits < 1 || options.EndpointBits > segment.MaxEndpointBits {
		return nil, errors.New("endpoint_bits is out of range")
	}

	return options, nil
}
