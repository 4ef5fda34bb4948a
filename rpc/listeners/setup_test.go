// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"io/ioutil"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/certgen"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/marketd/fixtures"
	"github.com/bitmark-inc/marketd/rpc/certificate"
)

type Add struct{}
type AddArg struct {
	A, B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func randomListen() string {
	port := rand.Intn(30000) + 30000
	return fmt.Sprintf("127.0.0.1:%d", port)
}

func tlsConfig(t *testing.T) (*tls.Config, [32]byte) {
	dir, err := ioutil.TempDir("", "listeners")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	cer, key, err := certgen.NewTLSCertPair("listeners test", time.Now().Add(time.Hour), false, nil)
	if nil != err {
		t.Fatalf("certgen error: %s", err)
	}
	cerFile := filepath.Join(dir, "test.crt")
	keyFile := filepath.Join(dir, "test.key")
	_ = ioutil.WriteFile(cerFile, cer, 0600)
	_ = ioutil.WriteFile(keyFile, key, 0600)

	conf, fin, err := certificate.Get(logger.New(fixtures.LogCategory), "test", cerFile, keyFile)
	if nil != err {
		t.Fatalf("get certificate error: %s", err)
	}
	return conf, fin
}

// dial until the listener goroutine is accepting
func dialTLS(t *testing.T, address string) *tls.Conn {
	for i := 0; i < 50; i += 1 {
		conn, err := tls.Dial("tcp", address, &tls.Config{InsecureSkipVerify: true})
		if nil == err {
			return conn
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("cannot connect to: %s", address)
	return nil
}
