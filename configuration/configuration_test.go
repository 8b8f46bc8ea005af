// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/segtree/configuration"
)

const testingDirName = "testing"

var configurationFileName = path.Join(testingDirName, "segtree.conf")

const configurationData = `
-- segtree.conf  -*- mode: lua -*-

local M = {}

M.database = "testing/data.leveldb"
M.endpoint_bits = 16
M.truncate = true

M.logging = {
    directory = "testing/log",
    file = "segtree-test.log",
    size = 1048576,
    count = 20,
    console = false,
    levels = {
        DEFAULT = "info",
    },
}

return M
`

func writeConfiguration(t *testing.T, data string) {
	_ = os.Mkdir(testingDirName, 0700)
	if err := ioutil.WriteFile(configurationFileName, []byte(data), 0600); err != nil {
		t.Fatalf("write configuration error: %s", err)
	}
}

func removeFiles() {
	os.RemoveAll(testingDirName)
}

func TestGetConfiguration(t *testing.T) {
	writeConfiguration(t, configurationData)
	defer removeFiles()

	cfg, err := configuration.GetConfiguration(configurationFileName)
	if err != nil {
		t.Fatalf("configuration error: %s", err)
	}

	assert.Equal(t, "testing/data.leveldb", cfg.Database, "wrong database")
	assert.Equal(t, uint(16), cfg.EndpointBits, "wrong endpoint bits")
	assert.True(t, cfg.Truncate, "wrong truncate")
	assert.Equal(t, "testing/log", cfg.Logging.Directory, "wrong log directory")
	assert.Equal(t, "segtree-test.log", cfg.Logging.File, "wrong log file")
	assert.Equal(t, 20, cfg.Logging.Count, "wrong log count")
	assert.Equal(t, "info", cfg.Logging.Levels["DEFAULT"], "wrong log level")
}

// unset values keep their defaults
func TestGetConfigurationDefaults(t *testing.T) {
	writeConfiguration(t, `
local M = {}
M.database = "testing/data.leveldb"
return M
`)
	defer removeFiles()

	cfg, err := configuration.GetConfiguration(configurationFileName)
	if err != nil {
		t.Fatalf("configuration error: %s", err)
	}

	assert.Equal(t, uint(32), cfg.EndpointBits, "wrong default endpoint bits")
	assert.False(t, cfg.Truncate, "wrong default truncate")
	assert.Equal(t, "segtree.log", cfg.Logging.File, "wrong default log file")
}

func TestGetConfigurationBadEndpointBits(t *testing.T) {
	writeConfiguration(t, `
local M = {}
M.database = "testing/data.leveldb"
M.endpoint_bits = 100
return M
`)
	defer removeFiles()

	_, err := configuration.GetConfiguration(configurationFileName)
	assert.NotNil(t, err, "out of range endpoint bits accepted")
}

func TestGetConfigurationMissingFile(t *testing.T) {
	removeFiles()

	_, err := configuration.GetConfiguration(configurationFileName)
	assert.NotNil(t, err, "missing file accepted")
}
