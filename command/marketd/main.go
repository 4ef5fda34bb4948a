// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/background"
	"github.com/bitmark-inc/marketd/collection"
	"github.com/bitmark-inc/marketd/configuration"
	"github.com/bitmark-inc/marketd/market"
	"github.com/bitmark-inc/marketd/publish"
	"github.com/bitmark-inc/marketd/rpc"
	"github.com/bitmark-inc/marketd/rpc/local"
	"github.com/bitmark-inc/marketd/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "define", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'D'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// NAME=VALUE pairs visible as globals in the configuration file
	variables := make(map[string]string)
	for _, d := range options["define"] {
		s := strings.SplitN(d, "=", 2)
		if 2 != len(s) || "" == s[0] {
			exitwithstatus.Message("%s: define: %q is not NAME=VALUE", program, d)
		}
		variables[s[0]] = s[1]
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile, variables)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	marketConfiguration, err := theConfiguration.marketConfiguration()
	if nil != err {
		exitwithstatus.Message("%s: market configuration error: %s", program, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if nil != err {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// general info
	log.Infof("chain: %s", theConfiguration.Chain)
	log.Infof("owner: %s", theConfiguration.Owner)
	log.Infof("database: %q", theConfiguration.Database)

	// connection info
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	log.Debugf("%s = %#v", "HttpsRPC", theConfiguration.HttpsRPC)
	log.Debugf("%s = %#v", "Publishing", theConfiguration.Publishing)

	// start the data storage
	log.Info("initialise storage")
	db, err := storage.Open(theConfiguration.Database.Name, false)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer db.Close()

	directory, locals, err := makeDirectory(log, theConfiguration.Collections)
	if nil != err {
		log.Criticalf("collection directory error: %s", err)
		exitwithstatus.Message("collection directory error: %s", err)
	}

	log.Info("initialise market")
	m, err := market.New(logger.New("market"), db, directory, marketConfiguration)
	if nil != err {
		log.Criticalf("market initialise error: %s", err)
		exitwithstatus.Message("market initialise error: %s", err)
	}

	// these commands are allowed to access the internal database
	if len(arguments) > 0 && processDataCommand(log, arguments, m) {
		return
	}

	watcher, err := configuration.NewWatcher(logger.New("watcher"), configurationFile, func() {
		reloadCurrencies(log, configurationFile, variables, m)
	})
	if nil != err {
		log.Criticalf("configuration watcher error: %s", err)
		exitwithstatus.Message("configuration watcher error: %s", err)
	}

	processes := background.Processes{
		m.Worker(),
		watcher,
	}
	bg := background.Start(processes, nil)
	defer bg.Stop()

	// settlements that were waiting on a collection when last stopped
	n, err := m.Recover()
	if nil != err {
		log.Criticalf("settlement recovery error: %s", err)
		exitwithstatus.Message("settlement recovery error: %s", err)
	}
	log.Infof("recovered settlements: %d", n)

	// start up the publishing background processes
	if 0 != len(theConfiguration.Publishing.Broadcast) {
		err = publish.Initialise(&theConfiguration.Publishing, m.Outbox())
		if nil != err {
			log.Criticalf("publish initialise error: %s", err)
			exitwithstatus.Message("publish initialise error: %s", err)
		}
		defer publish.Finalise()
	} else {
		log.Warn("publishing disabled: transfers stay queued")
	}

	extra := []interface{}{}
	if 0 != len(locals) {
		extra = append(extra, local.New(logger.New("local"), m, locals))
	}

	// start up the rpc background processes
	err = rpc.Initialise(&theConfiguration.ClientRPC, &theConfiguration.HttpsRPC, m, version, theConfiguration.Chain, extra...)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}

// register every configured collection contract
//
// in-process contracts are also returned so they can be offered over RPC
func makeDirectory(log *logger.L, collections map[string]CollectionType) (*collection.Directory, map[string]*collection.Local, error) {

	directory := collection.NewDirectory()
	locals := make(map[string]*collection.Local)

	for id, c := range collections {
		if localCollection == c.Address {
			log.Infof("collection: %s  in-process  owner: %s", id, c.Owner)
			l := collection.NewLocal(c.Owner)
			directory.Register(id, l)
			locals[id] = l
			continue
		}

		fingerprint, err := hex.DecodeString(c.Fingerprint)
		if nil != err {
			return nil, nil, fmt.Errorf("collection: %q  fingerprint: %q  error: %s", id, c.Fingerprint, err)
		}
		log.Infof("collection: %s  address: %s  fingerprint: %x", id, c.Address, fingerprint)
		directory.Register(id, collection.NewClient(c.Address, fingerprint))
	}
	return directory, locals, nil
}

// currencies may be added while running, never removed
func reloadCurrencies(log *logger.L, configurationFile string, variables map[string]string, m *market.Market) {

	options, err := getConfiguration(configurationFile, variables)
	if nil != err {
		log.Errorf("reload configuration: %q  error: %s", configurationFile, err)
		return
	}
	ids, err := options.currencies()
	if nil != err {
		log.Errorf("reload currencies error: %s", err)
		return
	}
	added, err := m.AddCurrencies(m.Owner(), ids...)
	if nil != err {
		log.Errorf("add currencies error: %s", err)
		return
	}
	for i, ok := range added {
		if ok {
			log.Infof("currency added: %s", ids[i])
		}
	}
}
