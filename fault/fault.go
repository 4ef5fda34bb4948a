// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError
type ResourceError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ExistsError("already initialised")
	BelowReserve                 = InvalidError("deposit is below the reserve price")
	BidNotFound                  = NotFoundError("no bids for currency")
	BidTooLow                    = InvalidError("bid must exceed the current highest bid")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	CurrencyAlreadySupported     = ExistsError("currency is already supported")
	DepositTooSmall              = InvalidError("deposit is less than the minimum storage for one sale")
	InsufficientQuota            = ResourceError("insufficient storage paid for another sale")
	InvalidAccount               = InvalidError("invalid account")
	InvalidAmount                = InvalidError("invalid amount")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCurrency              = InvalidError("invalid currency")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidDeposit               = InvalidError("deposit must be greater than zero")
	InvalidIpAddress             = InvalidError("invalid IP address")
	InvalidKey                   = InvalidError("invalid sale key")
	InvalidMessage               = InvalidError("invalid message")
	InvalidPortNumber            = InvalidError("invalid port number")
	InvalidPrivateKeyFile        = InvalidError("invalid private key file")
	InvalidPublicKeyFile         = InvalidError("invalid public key file")
	InvalidStructPointer         = InvalidError("invalid struct pointer")
	InvalidTypeTag               = InvalidError("token type is not part of the asset id")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	MissingConfigurationTable    = InvalidError("configuration file did not return a table")
	MissingParameters            = InvalidError("missing parameters")
	NotContractOwner             = PermissionError("only the market owner may do this")
	NotCrossContractCall         = PermissionError("approval must come from the collection contract")
	NotForSale                   = NotFoundError("not for sale in this currency")
	NotInitialised               = NotFoundError("not initialised")
	NotSaleOwner                 = PermissionError("caller does not own the sale")
	NotSigner                    = PermissionError("owner does not match the signer")
	NotTokenOwner                = PermissionError("not the token owner")
	PayoutOutcomeUnknown         = ProcessError("payout call outcome unknown")
	RateLimiting                 = InvalidError("rate limiting")
	ResolutionNotFound           = NotFoundError("settlement resolution not found")
	RoyaltyTooHigh               = InvalidError("royalty exceeds its cap")
	SaleAlreadyExists            = ExistsError("sale already exists")
	SaleNotFound                 = NotFoundError("sale not found")
	SelfBid                      = PermissionError("seller cannot bid on own sale")
	TokenAlreadyExists           = ExistsError("token already exists")
	TokenNotFound                = NotFoundError("token not found")
	TooManyPayees                = ResourceError("too many payees")
	TransactionInUse             = ProcessError("transaction already in use")
	TransactionNotStarted        = ProcessError("transaction not started")
	UnknownCollection            = NotFoundError("unknown collection contract")
	UnsupportedCurrency          = InvalidError("currency is not supported")
	WrongApproval                = PermissionError("approval id does not match")
	WrongChain                   = InvalidError("chain is not supported")
	WrongFingerprint             = PermissionError("certificate fingerprint mismatch")
)

// the error interface methods
func (e GenericError) Error() string    { return string(e) }
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }
func (e ResourceError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
func IsErrResource(e error) bool   { _, ok := e.(ResourceError); return ok }
