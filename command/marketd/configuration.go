// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/chain"
	"github.com/bitmark-inc/marketd/configuration"
	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/market"
	"github.com/bitmark-inc/marketd/publish"
	"github.com/bitmark-inc/marketd/rpc/listeners"
	"github.com/bitmark-inc/marketd/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultPublishPublicKeyFile  = "publish.public"
	defaultPublishPrivateKeyFile = "publish.private"
	defaultKeyFile               = "rpc.key"
	defaultCertificateFile       = "rpc.crt"

	defaultLevelDBDirectory = "data"
	defaultLiveDatabase     = chain.Live + ".leveldb"
	defaultTestingDatabase  = chain.Testing + ".leveldb"
	defaultLocalDatabase    = chain.Local + ".leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "marketd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10

	defaultBidHistoryLength   = 1
	defaultStoragePerSale     = "1000"
	defaultMaxPayees          = 10
	defaultSettlementTimeout  = "30s"
	defaultResolutionLifetime = "24h"
	defaultQueueSize          = 100

	// collection address for an in-process contract
	localCollection = "local"
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// MarketType - market parameters as written in the configuration file
type MarketType struct {
	BidHistoryLength   int      `gluamapper:"bid_history_length" json:"bid_history_length"`
	StoragePerSale     string   `gluamapper:"storage_per_sale" json:"storage_per_sale"`
	MaxPayees          int      `gluamapper:"max_payees" json:"max_payees"`
	SettlementTimeout  string   `gluamapper:"settlement_timeout" json:"settlement_timeout"`
	ResolutionLifetime string   `gluamapper:"resolution_lifetime" json:"resolution_lifetime"`
	QueueSize          int      `gluamapper:"queue_size" json:"queue_size"`
	Currencies         []string `gluamapper:"currencies" json:"currencies"`
}

// CollectionType - where a collection contract can be reached
//
// address "local" is an in-process contract, only allowed on the local chain
type CollectionType struct {
	Address     string `gluamapper:"address" json:"address"`
	Fingerprint string `gluamapper:"fingerprint" json:"fingerprint"`
	Owner       string `gluamapper:"owner" json:"owner"`
}

type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Chain         string       `gluamapper:"chain" json:"chain"`
	Owner         string       `gluamapper:"owner" json:"owner"`
	Database      DatabaseType `gluamapper:"database" json:"database"`
	Market        MarketType   `gluamapper:"market" json:"market"`

	ClientRPC   listeners.RPCConfiguration   `gluamapper:"client_rpc" json:"client_rpc"`
	HttpsRPC    listeners.HTTPSConfiguration `gluamapper:"https_rpc" json:"https_rpc"`
	Publishing  publish.Configuration        `gluamapper:"publishing" json:"publishing"`
	Collections map[string]CollectionType    `gluamapper:"collections" json:"collections"`
	Logging     logger.Configuration         `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string, variables map[string]string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Chain:         chain.Live,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultLiveDatabase,
		},

		Market: MarketType{
			BidHistoryLength:   defaultBidHistoryLength,
			StoragePerSale:     defaultStoragePerSale,
			MaxPayees:          defaultMaxPayees,
			SettlementTimeout:  defaultSettlementTimeout,
			ResolutionLifetime: defaultResolutionLifetime,
			QueueSize:          defaultQueueSize,
			Currencies:         []string{currency.Native.String()},
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		// default: share config with normal RPC
		HttpsRPC: listeners.HTTPSConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Publishing: publish.Configuration{
			PublicKey:  defaultPublishPublicKeyFile,
			PrivateKey: defaultPublishPrivateKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); nil != err {
		return nil, err
	}

	// abort if the chain name is not recognised
	name, ok := chain.Normalise(options.Chain)
	if !ok {
		return nil, fmt.Errorf("Chain: %q is not supported", options.Chain)
	}
	options.Chain = name

	if "" == options.Owner {
		return nil, fmt.Errorf("Owner: market owner account is required")
	}

	// if database was not changed from default
	if options.Database.Name == defaultLiveDatabase {
		switch options.Chain {
		case chain.Live:
			// already correct default
		case chain.Testing:
			options.Database.Name = defaultTestingDatabase
		case chain.Local:
			options.Database.Name = defaultLocalDatabase
		default:
			return nil, fmt.Errorf("Chain: %s no default database setting", options.Chain)
		}
	}

	for id, c := range options.Collections {
		if localCollection == c.Address && !chain.AllowsLocalCollections(options.Chain) {
			return nil, fmt.Errorf("Collection: %q local contract not allowed on chain: %s", id, options.Chain)
		}
		if "" == c.Address {
			return nil, fmt.Errorf("Collection: %q has no address", id)
		}
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.HttpsRPC.Certificate,
		&options.HttpsRPC.PrivateKey,
		&options.Publishing.PublicKey,
		&options.Publishing.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	// create directories if they do not already exist
	for _, d := range []string{
		options.Database.Directory,
		options.Logging.Directory,
	} {
		if err := util.EnsureDirectory(d); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// convert the file form of the market section
func (options *Configuration) marketConfiguration() (*market.Configuration, error) {

	var perSale currency.Amount
	err := perSale.UnmarshalText([]byte(options.Market.StoragePerSale))
	if nil != err {
		return nil, fmt.Errorf("storage_per_sale: %q  error: %s", options.Market.StoragePerSale, err)
	}

	timeout, err := time.ParseDuration(options.Market.SettlementTimeout)
	if nil != err {
		return nil, fmt.Errorf("settlement_timeout: %q  error: %s", options.Market.SettlementTimeout, err)
	}
	lifetime, err := time.ParseDuration(options.Market.ResolutionLifetime)
	if nil != err {
		return nil, fmt.Errorf("resolution_lifetime: %q  error: %s", options.Market.ResolutionLifetime, err)
	}

	currencies, err := options.currencies()
	if nil != err {
		return nil, err
	}

	return &market.Configuration{
		Owner:              options.Owner,
		BidHistoryLength:   options.Market.BidHistoryLength,
		StoragePerSale:     perSale,
		MaxPayees:          options.Market.MaxPayees,
		SettlementTimeout:  timeout,
		ResolutionLifetime: lifetime,
		QueueSize:          options.Market.QueueSize,
		Currencies:         currencies,
	}, nil
}

func (options *Configuration) currencies() ([]currency.Id, error) {
	ids := make([]currency.Id, 0, len(options.Market.Currencies))
	for _, s := range options.Market.Currencies {
		id := currency.Id(s)
		if !id.Valid() {
			return nil, fmt.Errorf("currencies: %q is not a valid currency", s)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
