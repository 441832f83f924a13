// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/statedb/fault"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - check if file exists
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// PlainName - fail if the name contains a path separator, otherwise
// join it to the directory
func PlainName(directory string, name string) (string, error) {
	switch filepath.Dir(name) {
	case "", ".":
		if "" == name || "." == name {
			return "", fault.ErrInvalidPath
		}
		return EnsureAbsolute(directory, name), nil
	default:
		return "", fault.ErrInvalidPath
	}
}

// EnsureDirectory - make absolute and create if missing
func EnsureDirectory(base string, directory string) (string, error) {
	d := EnsureAbsolute(base, directory)
	if err := os.MkdirAll(d, 0700); nil != err {
		return "", err
	}
	return d, nil
}
