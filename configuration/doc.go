// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read a Lua configuration file
//
// the file is a Lua program that returns a table, the table is
// mapped onto a Go structure using the "gluamapper" field tags
//
// most of base Lua is available such as reading files to set key data
// and getenv to extract environment supplied items.
//
// a watcher reports changes to the file so that a daemon can re-read
// the settings that may change while it runs
package configuration
