// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"crypto/tls"
	"sync"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/noncestore/counter"
	"github.com/bitmark-inc/noncestore/fault"
	"github.com/bitmark-inc/noncestore/rpc/certificate"
	"github.com/bitmark-inc/noncestore/rpc/server"
	"github.com/bitmark-inc/noncestore/storage"
	"github.com/bitmark-inc/noncestore/util"
)

const (
	logName = "client_rpc"
)

// Configuration - configuration file data for RPC setup
type Configuration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
	RateLimit          float64  `gluamapper:"rate_limit" json:"rate_limit"`
	RateBurst          int      `gluamapper:"rate_burst" json:"rate_burst"`
}

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listener    *rpcListener
	connections counter.Counter
	queries     counter.Counter

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the listeners serving nonce lookups from db
func Initialise(configuration *Configuration, db storage.ChainDB, version string) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Infof("starting… version: %s", version)

	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", logName)
		globalData.initialised = true
		return nil
	}

	if configuration.MaximumConnections < 1 {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return fault.ErrMissingParameters
	}
	if configuration.RateLimit <= 0 || configuration.RateBurst < 1 {
		log.Errorf("invalid %s rate limit: %f  burst: %d", logName, configuration.RateLimit, configuration.RateBurst)
		return fault.ErrMissingParameters
	}

	var tlsConfiguration *tls.Config
	switch {
	case "" == configuration.Certificate && "" == configuration.PrivateKey:
		log.Warnf("%s: no certificate, serving plain TCP", logName)

	case "" == configuration.Certificate || "" == configuration.PrivateKey:
		log.Errorf("%s: certificate and private_key must both be set", logName)
		return fault.ErrMissingParameters

	default:
		c, fingerprint, err := certificate.Load(log, logName, configuration.Certificate, configuration.PrivateKey)
		if nil != err {
			return err
		}
		log.Infof("%s: SHA3-256 fingerprint: %x", logName, fingerprint)
		tlsConfiguration = c
	}

	limiter := rate.NewLimiter(rate.Limit(configuration.RateLimit), configuration.RateBurst)

	r := newRPCListener(
		log,
		server.Create(log, db, limiter, &globalData.queries),
		&globalData.connections,
		configuration.MaximumConnections,
	)

	for _, listen := range configuration.Listen {
		network, address, err := util.ListenAddress(listen)
		if nil != err {
			log.Errorf("%s listen: %q  error: %s", logName, listen, err)
			r.close()
			return err
		}
		if err := r.listen(network, address, tlsConfiguration); nil != err {
			r.close()
			return err
		}
	}

	globalData.listener = r

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all listeners
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	if nil != globalData.listener {
		globalData.listener.close()
		globalData.listener = nil
	}

	// finally...
	globalData.initialised = false

	globalData.log.Infof("finished  queries: %d", globalData.queries.Uint64())
	globalData.log.Flush()

	return nil
}
