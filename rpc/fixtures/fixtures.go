// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for the RPC tests
package fixtures

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// Sample addresses in both text forms
var (
	AddressBytes  = []byte{0x01, 0x02}
	AddressHex    = "0x0102"
	AddressBase58 = "5T"
)

var (
	certificateOnce sync.Once
	certificate     string
	key             string
)

// SetupTestLogger - start logging into the test directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the test directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// CertificatePair - a self signed certificate and its private key in PEM
// generated once per test binary
func CertificatePair() (string, string) {
	certificateOnce.Do(func() {
		validUntil := time.Now().Add(24 * time.Hour)
		c, k, err := certgen.NewTLSCertPair("noncekeeperd test certificate", validUntil, false, []string{"127.0.0.1"})
		if nil != err {
			panic(fmt.Sprintf("certificate generation failed: %s", err))
		}
		certificate = string(c)
		key = string(k)
	})
	return certificate, key
}
