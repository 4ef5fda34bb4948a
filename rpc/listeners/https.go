// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/rpc/handler"
)

const (
	httpsLogName     = "https_rpc"
	readWriteTimeout = 10 * time.Second
)

// HTTPSConfiguration - configuration file data for HTTPS setup
type HTTPSConfiguration struct {
	MaximumConnections uint64              `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string            `gluamapper:"listen" json:"listen"`
	Certificate        string              `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string              `gluamapper:"private_key" json:"private_key"`
	Allow              map[string][]string `gluamapper:"allow" json:"allow"`
}

type httpsListener struct {
	sync.Mutex
	log             *logger.L
	ipType          []string
	listenIPAndPort []string
	tlsConfig       *tls.Config
	router          *mux.Router
	servers         []*http.Server
}

// Serve - open all listen addresses and serve in the background
func (h *httpsListener) Serve() error {
	h.Lock()
	defer h.Unlock()

	for i, listen := range h.listenIPAndPort {
		h.log.Infof("starting server: %s on: %q", httpsLogName, listen)

		ln, err := net.Listen(h.ipType[i], listen)
		if nil != err {
			h.log.Errorf("%s listen error: %s", httpsLogName, err)
			h.shutdown()
			return err
		}

		s := &http.Server{
			Handler:        h.router,
			ReadTimeout:    readWriteTimeout,
			WriteTimeout:   readWriteTimeout,
			MaxHeaderBytes: 1 << 20,
			TLSConfig:      h.tlsConfig,
		}
		h.servers = append(h.servers, s)

		go func() {
			err := s.Serve(tls.NewListener(ln, h.tlsConfig))
			if http.ErrServerClosed != err {
				h.log.Errorf("%s terminated: %s", httpsLogName, err)
			}
		}()
	}

	return nil
}

// Close - stop all servers
func (h *httpsListener) Close() {
	h.Lock()
	defer h.Unlock()

	h.shutdown()
}

func (h *httpsListener) shutdown() {
	for _, s := range h.servers {
		_ = s.Close()
	}
	h.servers = nil
}

// NewHTTPS - JSON-RPC over HTTPS POST plus GET routes for operators
func NewHTTPS(
	configuration *HTTPSConfiguration,
	log *logger.L,
	tlsConfig *tls.Config,
	hdlr handler.Handler,
) (Listener, error) {
	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsLogName)
		return nil, nil
	}

	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", httpsLogName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	ipType, listen, err := parseListenAddress(configuration.Listen, log)
	if nil != err {
		return nil, err
	}

	// access control lists matched against http.Request.RemoteAddr
	local := make(map[string][]*net.IPNet)
	for path, addresses := range configuration.Allow {
		set := make([]*net.IPNet, len(addresses))
		local[path] = set
		for i, ip := range addresses {
			_, cidr, err := net.ParseCIDR(strings.Trim(ip, " "))
			if nil != err {
				log.Errorf("%s allow: %q  error: %s", httpsLogName, ip, err)
				return nil, err
			}
			set[i] = cidr
		}
	}

	hdlr.SetAllow(local)

	tlsConfig = tlsConfig.Clone()
	tlsConfig.NextProtos = []string{"http/1.1"}

	r := mux.NewRouter()
	r.HandleFunc("/marketd/rpc", hdlr.RPC)
	r.HandleFunc("/marketd/details", hdlr.Details)
	r.HandleFunc("/marketd/sales/{key}", hdlr.Sale)
	r.HandleFunc("/health", hdlr.Health)
	r.NotFoundHandler = http.HandlerFunc(hdlr.Root)

	h := &httpsListener{
		log:             log,
		ipType:          ipType,
		listenIPAndPort: listen,
		tlsConfig:       tlsConfig,
		router:          r,
	}

	return h, nil
}
