// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/gorilla/mux"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/marketd/counter"
	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/market"
	"github.com/bitmark-inc/marketd/sale"
)

// Handler - the HTTPS routes
type Handler interface {
	RPC(w http.ResponseWriter, r *http.Request)
	Details(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
	Sale(w http.ResponseWriter, r *http.Request)
	Root(w http.ResponseWriter, r *http.Request)
	SetAllow(allow map[string][]*net.IPNet)
}

// type to allow rpc system to interface to http request
type internalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *internalConnection) Read(p []byte) (n int, err error) {
	return c.in.Read(p)
}
func (c *internalConnection) Write(d []byte) (n int, err error) {
	return c.out.Write(d)
}
func (c *internalConnection) Close() error {
	return nil
}

// the argument passed to the handlers
type handler struct {
	log                *logger.L
	server             *rpc.Server
	market             market.Operations
	start              time.Time
	version            string
	chain              string
	count              *counter.Counter
	maximumConnections uint64
	allow              map[string][]*net.IPNet
}

// New - HTTPS handler sharing the connection count with the RPC listener
func New(
	log *logger.L,
	server *rpc.Server,
	m market.Operations,
	start time.Time,
	version string,
	chain string,
	count *counter.Counter,
	maximumConnections uint64,
) Handler {
	return &handler{
		log:                log,
		server:             server,
		market:             m,
		start:              start,
		version:            version,
		chain:              chain,
		count:              count,
		maximumConnections: maximumConnections,
		allow:              make(map[string][]*net.IPNet),
	}
}

// SetAllow - CIDR access lists per route name
func (h *handler) SetAllow(allow map[string][]*net.IPNet) {
	h.allow = allow
}

// this matches anything not matched and returns error
func (h *handler) Root(w http.ResponseWriter, _ *http.Request) {
	sendNotFound(w)
}

// Health - liveness probe
func (h *handler) Health(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}
	sendReply(w, map[string]string{"status": "ok"})
}

// Sale - GET one sale by its base58 key
func (h *handler) Sale(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	key, err := sale.ParseKey(mux.Vars(r)["key"])
	if nil != err {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	s, err := h.market.Sale(key)
	if fault.SaleNotFound == err {
		sendNotFound(w)
		return
	} else if nil != err {
		sendInternalServerError(w)
		return
	}

	sendReply(w, s)
}

// RPC - performs a call to any normal RPC
func (h *handler) RPC(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !h.count.Acquire(h.maximumConnections) {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Release()

	serverCodec := jsonrpc.NewServerCodec(&internalConnection{in: r.Body, out: w})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	err := h.server.ServeRequest(serverCodec)
	if nil != err {
		h.log.Debugf("serve request error: %s", err)
	}
}

// Details - market state for operators, restricted to the "details" allow list
func (h *handler) Details(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !h.allowed("details", r.RemoteAddr) {
		h.log.Warnf("Deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}

	currencies, err := h.market.SupportedCurrencies()
	if nil != err {
		sendInternalServerError(w)
		return
	}

	type theReply struct {
		Chain              string        `json:"chain"`
		Owner              string        `json:"owner_id"`
		Currencies         []currency.Id `json:"currencies"`
		Sales              int           `json:"sales"`
		PendingSettlements int           `json:"pending_settlements"`
		RPCs               uint64        `json:"rpcs"`
		Version            string        `json:"version"`
		Uptime             string        `json:"uptime"`
	}

	reply := theReply{
		Chain:              h.chain,
		Owner:              h.market.Owner(),
		Currencies:         currencies,
		Sales:              h.market.Supply(),
		PendingSettlements: h.market.PendingSettlements(),
		RPCs:               h.count.Uint64(),
		Version:            h.version,
		Uptime:             time.Since(h.start).String(),
	}

	sendReply(w, reply)
}

func (h *handler) allowed(route string, remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if nil != err {
		return false
	}
	ip := net.ParseIP(host)
	if nil == ip {
		return false
	}
	for _, cidr := range h.allow[route] {
		if cidr.Contains(ip) {
			return true
		}
	}
	return false
}

// send an JSON encoded reply
func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

// selected errors as required above
func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}

func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}

func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}

func sendTooManyRequests(w http.ResponseWriter) {
	sendError(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}

func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

// to compose JSON error messages
type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		// manually composed error just incase JSON fails
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}
