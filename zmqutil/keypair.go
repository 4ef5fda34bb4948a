// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"encoding/hex"
	"io/ioutil"
	"os"
	"strings"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/util"
)

const (
	taggedPublic  = "PUBLIC:"
	taggedPrivate = "PRIVATE:"
	keyLength     = 32
)

// MakeKeyPair - write a new curve key pair as tagged hex files
func MakeKeyPair(publicKeyFileName string, privateKeyFileName string) error {
	if util.EnsureFileExists(publicKeyFileName) || util.EnsureFileExists(privateKeyFileName) {
		return fault.KeyFileAlreadyExists
	}

	// Z85 from the library, stored as hex
	publicKey, privateKey, err := zmq.NewCurveKeypair()
	if nil != err {
		return err
	}

	public := taggedPublic + hex.EncodeToString([]byte(zmq.Z85decode(publicKey))) + "\n"
	private := taggedPrivate + hex.EncodeToString([]byte(zmq.Z85decode(privateKey))) + "\n"

	if err := ioutil.WriteFile(publicKeyFileName, []byte(public), 0666); nil != err {
		return err
	}
	if err := ioutil.WriteFile(privateKeyFileName, []byte(private), 0600); nil != err {
		os.Remove(publicKeyFileName)
		return err
	}
	return nil
}

// ReadPublicKeyFile - 32 byte key from a PUBLIC: file
func ReadPublicKeyFile(fileName string) ([]byte, error) {
	return readKeyFile(fileName, false)
}

// ReadPrivateKeyFile - 32 byte key from a PRIVATE: file
func ReadPrivateKeyFile(fileName string) ([]byte, error) {
	return readKeyFile(fileName, true)
}

func readKeyFile(fileName string, wantPrivate bool) ([]byte, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}
	key, private, err := ParseKey(string(data))
	if nil != err {
		return nil, err
	}
	if private != wantPrivate {
		if wantPrivate {
			return nil, fault.InvalidPrivateKeyFile
		}
		return nil, fault.InvalidPublicKeyFile
	}
	return key, nil
}

// ParseKey - decode a tagged key, the flag is true for private keys
func ParseKey(data string) ([]byte, bool, error) {
	s := strings.TrimSpace(data)

	private := false
	switch {
	case strings.HasPrefix(s, taggedPrivate):
		s = s[len(taggedPrivate):]
		private = true
	case strings.HasPrefix(s, taggedPublic):
		s = s[len(taggedPublic):]
	default:
		return nil, false, fault.InvalidPublicKeyFile
	}

	h, err := hex.DecodeString(s)
	if nil != err || keyLength != len(h) {
		if private {
			return nil, false, fault.InvalidPrivateKeyFile
		}
		return nil, false, fault.InvalidPublicKeyFile
	}
	return h, private, nil
}
