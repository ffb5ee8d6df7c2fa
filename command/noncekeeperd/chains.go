// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/noncestore/configuration"
	"github.com/bitmark-inc/noncestore/storage"
)

// make sure every configured chain has a partition
func ensureChains(log *logger.L, writer storage.ChainWriter, names []string) error {
	for _, name := range names {
		if err := writer.CreateChain(storage.ChainID(name)); nil != err {
			log.Errorf("create chain: %q  error: %s", name, err)
			return err
		}
		log.Debugf("chain: %q present", name)
	}
	return nil
}

// re-read the configuration file and add any new chains
//
// other settings only take effect on restart
func reloadChains(log *logger.L, writer storage.ChainWriter, configurationFile string) error {
	theConfiguration, err := configuration.GetConfiguration(configurationFile)
	if nil != err {
		log.Errorf("reload configuration: %q  error: %s", configurationFile, err)
		return err
	}
	log.Infof("reload configuration: %q  chains: %q", configurationFile, theConfiguration.Chains)
	return ensureChains(log, writer, theConfiguration.Chains)
}
