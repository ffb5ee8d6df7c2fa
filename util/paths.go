// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - resolve a configured path against a base directory
//
// an empty path stays empty so that optional settings remain unset
func EnsureAbsolute(directory string, filePath string) string {
	if "" == filePath {
		return ""
	}
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - true only for an existing regular file
func EnsureFileExists(name string) bool {
	info, err := os.Stat(name)
	if nil != err {
		return false
	}
	return info.Mode().IsRegular()
}
