// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/noncestore/counter"
)

// new connections allowed from a single client IP
const (
	clientConnectionRate  = 10
	clientConnectionBurst = 20
	clientExpiry          = 5 * time.Minute
)

type rpcListener struct {
	sync.Mutex

	log                *logger.L
	server             *rpc.Server
	count              *counter.Counter
	maximumConnections uint64
	listeners          []net.Listener
	running            sync.WaitGroup // accept loops

	// client IP → *rate.Limiter
	clients *cache.Cache
}

func newRPCListener(log *logger.L, server *rpc.Server, count *counter.Counter, maximumConnections uint64) *rpcListener {
	return &rpcListener{
		log:                log,
		server:             server,
		count:              count,
		maximumConnections: maximumConnections,
		clients:            cache.New(clientExpiry, 2*clientExpiry),
	}
}

// listen on one address, TLS when a configuration is given
func (r *rpcListener) listen(network string, address string, tlsConfig *tls.Config) error {
	r.log.Infof("starting RPC server: %s %s", network, address)

	var l net.Listener
	var err error
	if nil == tlsConfig {
		l, err = net.Listen(network, address)
	} else {
		l, err = tls.Listen(network, address, tlsConfig)
	}
	if nil != err {
		r.log.Errorf("rpc server listen error: %s", err)
		return err
	}

	r.start(l)
	return nil
}

// record the listener and run its accept loop
func (r *rpcListener) start(l net.Listener) {
	r.Lock()
	defer r.Unlock()

	r.listeners = append(r.listeners, l)
	r.running.Add(1)
	go r.serve(l)
}

// accept loop, one goroutine per connection up to the maximum
func (r *rpcListener) serve(l net.Listener) {
	defer r.running.Done()

	for {
		conn, err := l.Accept()
		if nil != err {
			r.log.Infof("rpc server terminated: accept error: %s", err)
			break
		}
		if !r.allowClient(conn.RemoteAddr()) {
			r.log.Warnf("connection rate exceeded, refusing: %s", conn.RemoteAddr())
			_ = conn.Close()
			continue
		}
		if !r.count.Acquire(r.maximumConnections) {
			r.log.Warnf("connection limit: %d reached, refusing: %s", r.maximumConnections, conn.RemoteAddr())
			_ = conn.Close()
			continue
		}
		go func() {
			r.server.ServeCodec(jsonrpc.NewServerCodec(conn))
			r.count.Decrement()
		}()
	}
	_ = l.Close()
	r.log.Info("RPC accept terminated")
}

// per client IP connection throttle
func (r *rpcListener) allowClient(remote net.Addr) bool {
	host, _, err := net.SplitHostPort(remote.String())
	if nil != err {
		host = remote.String()
	}

	if item, found := r.clients.Get(host); found {
		r.clients.Set(host, item, cache.DefaultExpiration)
		return item.(*rate.Limiter).Allow()
	}

	limiter := rate.NewLimiter(clientConnectionRate, clientConnectionBurst)
	if err := r.clients.Add(host, limiter, cache.DefaultExpiration); nil != err {
		// another accept loop added it first
		if item, found := r.clients.Get(host); found {
			limiter = item.(*rate.Limiter)
		}
	}
	return limiter.Allow()
}

// stop accepting and wait for the accept loops to exit;
// connections already served run to completion
func (r *rpcListener) close() {
	r.Lock()
	for _, l := range r.listeners {
		_ = l.Close()
	}
	r.listeners = nil
	r.Unlock()

	r.running.Wait()
}
