// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/binary"

	"github.com/bitmark-inc/marketd/fault"
)

// Prefixed - append each part to the buffer as uvarint(length) ⧺ bytes
//
// the result can always be split back into the original parts
// whatever bytes the parts contain
func Prefixed(buffer []byte, parts ...[]byte) []byte {
	length := make([]byte, binary.MaxVarintLen64)
	for _, p := range parts {
		n := binary.PutUvarint(length, uint64(len(p)))
		buffer = append(buffer, length[:n]...)
		buffer = append(buffer, p...)
	}
	return buffer
}

// SplitPrefixed - remove the first length prefixed part from a buffer
//
// returns the part and the remaining bytes
func SplitPrefixed(buffer []byte) ([]byte, []byte, error) {
	length, n := binary.Uvarint(buffer)
	if n <= 0 {
		return nil, nil, fault.InvalidKey
	}
	buffer = buffer[n:]
	if uint64(len(buffer)) < length {
		return nil, nil, fault.InvalidKey
	}
	return buffer[:length], buffer[length:], nil
}
