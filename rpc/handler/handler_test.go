// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler_test

import (
	"bytes"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"net/rpc"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/marketd/counter"
	"github.com/bitmark-inc/marketd/currency"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/fixtures"
	"github.com/bitmark-inc/marketd/mocks"
	"github.com/bitmark-inc/marketd/rpc/handler"
	"github.com/bitmark-inc/marketd/sale"
)

const (
	notAllowed      = "method not allowed"
	tooManyRequests = "Too Many Requests"
)

type eResp struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

type jResp struct {
	ID     int         `json:"id"`
	Result int         `json:"result"`
	Error  interface{} `json:"error"`
}

type jReq struct {
	ID     int      `json:"id"`
	Method string   `json:"method"`
	Params []AddArg `json:"params"`
}

type Add struct{}
type AddArg struct {
	A int `json:"A"`
	B int `json:"B"`
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func newHandler(t *testing.T, m *mocks.MockOperations, maximum uint64) (handler.Handler, *counter.Counter) {
	s := rpc.NewServer()
	if err := s.Register(Add{}); nil != err {
		t.Fatalf("register error: %s", err)
	}

	var count counter.Counter
	h := handler.New(
		logger.New(fixtures.LogCategory),
		s,
		m,
		time.Now(),
		"1.0",
		"testing",
		&count,
		maximum,
	)
	return h, &count
}

func TestRoot(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h, _ := newHandler(t, nil, 5)

	req := httptest.NewRequest("GET", "http://not.found", nil)
	w := httptest.NewRecorder()
	h.Root(w, req)

	var j eResp
	_ = json.NewDecoder(w.Result().Body).Decode(&j)

	assert.Equal(t, "not found", j.Error, "wrong response")
	assert.Equal(t, http.StatusNotFound, j.Code, "wrong http code")
}

func TestHealth(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h, _ := newHandler(t, nil, 5)

	w := httptest.NewRecorder()
	h.Health(w, httptest.NewRequest("GET", "http://test.com/health", nil))
	assert.Equal(t, http.StatusOK, w.Result().StatusCode, "wrong status")
	assert.Contains(t, w.Body.String(), `"ok"`, "wrong body")
}

func TestRPC(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h, count := newHandler(t, nil, 5)

	add := AddArg{
		A: 1,
		B: 2,
	}
	data, _ := json.Marshal(jReq{
		ID:     5,
		Method: "Add.Add",
		Params: []AddArg{add},
	})

	req := httptest.NewRequest("POST", "http://not.exist", bytes.NewReader(data))
	w := httptest.NewRecorder()
	h.RPC(w, req)

	resp := w.Result()
	var j jResp
	_ = json.NewDecoder(resp.Body).Decode(&j)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "wrong status code")
	assert.Equal(t, 5, j.ID, "wrong id")
	assert.Equal(t, add.A+add.B, j.Result, "wrong result")
	assert.Nil(t, j.Error, "wrong error")
	assert.Equal(t, uint64(0), count.Uint64(), "connection not released")
}

func TestRPCWhenWrongHTTPMethod(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h, _ := newHandler(t, nil, 5)

	w := httptest.NewRecorder()
	h.RPC(w, httptest.NewRequest("GET", "http://not.exist", nil))

	var j eResp
	_ = json.NewDecoder(w.Result().Body).Decode(&j)
	assert.Equal(t, notAllowed, j.Error, "wrong method")
}

func TestRPCWhenTooManyConnections(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h, _ := newHandler(t, nil, 0)

	w := httptest.NewRecorder()
	h.RPC(w, httptest.NewRequest("POST", "http://not.exist", nil))

	var j eResp
	_ = json.NewDecoder(w.Result().Body).Decode(&j)
	assert.Equal(t, tooManyRequests, j.Error, "wrong error")
	assert.Equal(t, http.StatusTooManyRequests, j.Code, "wrong code")
}

func TestDetails(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockOperations(ctl)
	m.EXPECT().SupportedCurrencies().Return([]currency.Id{currency.Native}, nil).Times(1)
	m.EXPECT().Owner().Return("market.owner").Times(1)
	m.EXPECT().Supply().Return(3).Times(1)
	m.EXPECT().PendingSettlements().Return(0).Times(1)

	h, _ := newHandler(t, m, 5)

	// httptest requests come from 192.0.2.1
	_, ipNet, _ := net.ParseCIDR("192.0.2.0/24")
	h.SetAllow(map[string][]*net.IPNet{"details": {ipNet}})

	w := httptest.NewRecorder()
	h.Details(w, httptest.NewRequest("GET", "http://test.com/marketd/details", nil))

	var reply struct {
		Chain      string   `json:"chain"`
		Owner      string   `json:"owner_id"`
		Currencies []string `json:"currencies"`
		Sales      int      `json:"sales"`
		Version    string   `json:"version"`
	}
	err := json.NewDecoder(w.Result().Body).Decode(&reply)
	assert.Nil(t, err, "wrong json")
	assert.Equal(t, "testing", reply.Chain, "wrong chain")
	assert.Equal(t, "market.owner", reply.Owner, "wrong owner")
	assert.Equal(t, []string{"native"}, reply.Currencies, "wrong currencies")
	assert.Equal(t, 3, reply.Sales, "wrong sales")
	assert.Equal(t, "1.0", reply.Version, "wrong version")
}

func TestDetailsWhenNotAllowed(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h, _ := newHandler(t, nil, 5)

	_, ipNet, _ := net.ParseCIDR("10.0.0.0/8")
	h.SetAllow(map[string][]*net.IPNet{"details": {ipNet}})

	w := httptest.NewRecorder()
	h.Details(w, httptest.NewRequest("GET", "http://test.com/marketd/details", nil))

	var j eResp
	_ = json.NewDecoder(w.Result().Body).Decode(&j)
	assert.Equal(t, "forbidden", j.Error, "wrong not allow")
}

func TestSale(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	key := sale.NewKey("nft.collection", "cat#1")
	missing := sale.NewKey("nft.collection", "cat#2")
	s := &sale.Sale{
		Seller:   "seller",
		Contract: "nft.collection",
		AssetId:  "cat#1",
		Prices:   sale.Prices{currency.Native: 100},
	}

	m := mocks.NewMockOperations(ctl)
	m.EXPECT().Sale(key).Return(s, nil).Times(1)
	m.EXPECT().Sale(missing).Return(nil, fault.SaleNotFound).Times(1)

	h, _ := newHandler(t, m, 5)

	req := httptest.NewRequest("GET", "http://test.com/marketd/sales/"+key.String(), nil)
	req = mux.SetURLVars(req, map[string]string{"key": key.String()})
	w := httptest.NewRecorder()
	h.Sale(w, req)

	var got sale.Sale
	err := json.NewDecoder(w.Result().Body).Decode(&got)
	assert.Nil(t, err, "wrong json")
	assert.Equal(t, "seller", got.Seller, "wrong seller")
	assert.Equal(t, currency.Amount(100), got.Prices[currency.Native], "wrong price")

	req = mux.SetURLVars(httptest.NewRequest("GET", "http://test.com/", nil), map[string]string{"key": missing.String()})
	w = httptest.NewRecorder()
	h.Sale(w, req)
	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode, "wrong missing status")

	req = mux.SetURLVars(httptest.NewRequest("GET", "http://test.com/", nil), map[string]string{"key": "0OIl"})
	w = httptest.NewRecorder()
	h.Sale(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode, "wrong bad key status")
}
