// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noncestore/chain"
	"github.com/bitmark-inc/noncestore/rpc"
	"github.com/bitmark-inc/noncestore/storage"
	"github.com/bitmark-inc/noncestore/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultDatabaseDirectory = "data"
	defaultDatabaseName      = "nonces"
	defaultDatabaseEngine    = storage.EngineLevelDB

	defaultKeyFile         = "rpc.key"
	defaultCertificateFile = "rpc.crt"

	defaultLogDirectory = "log"
	defaultLogFile      = "noncekeeperd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients   = 10
	defaultRPCRateLimit = 200
	defaultRPCRateBurst = 100
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"storage":         "info",
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - where and how the nonces are stored
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
	Engine    string `gluamapper:"engine" json:"engine"`
}

// Configuration - the daemon configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string               `gluamapper:"pidfile" json:"pidfile"`
	Database      DatabaseType         `gluamapper:"database" json:"database"`
	Chains        []string             `gluamapper:"chains" json:"chains"`
	ClientRPC     rpc.Configuration    `gluamapper:"client_rpc" json:"client_rpc"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// DatabasePath - full path of the database root
func (c *Configuration) DatabasePath() string {
	return filepath.Join(c.Database.Directory, c.Database.Name)
}

// GetConfiguration - read, decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default

		Database: DatabaseType{
			Directory: defaultDatabaseDirectory,
			Name:      defaultDatabaseName,
			Engine:    defaultDatabaseEngine,
		},

		ClientRPC: rpc.Configuration{
			MaximumConnections: defaultRPCClients,
			Certificate:        "",
			PrivateKey:         "",
			RateLimit:          defaultRPCRateLimit,
			RateBurst:          defaultRPCRateBurst,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	if !storage.ValidEngine(options.Database.Engine) {
		return nil, fmt.Errorf("Database engine: %q is not supported", options.Database.Engine)
	}

	for _, name := range options.Chains {
		if !chain.Valid(name) {
			return nil, fmt.Errorf("Chain: %q is not a valid identifier", name)
		}
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory; unset ones stay unset
	for _, f := range []*string{
		&options.PidFile,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
	} {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// fail if any of these are not simple file names i.e. must not contain path seperator
	// then add the correct directory prefix, file item is first and corresponding directory is second
	if options.Logging.File != filepath.Base(options.Logging.File) {
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		if "" == *d {
			*d = options.DataDirectory
		}
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	return options, nil
}

// DefaultCertificateFiles - where gen-rpc-cert writes unless told otherwise
func DefaultCertificateFiles(directory string) (string, string) {
	return filepath.Join(directory, defaultCertificateFile), filepath.Join(directory, defaultKeyFile)
}
