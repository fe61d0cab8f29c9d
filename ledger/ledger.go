// Package ledger defines the value-movement primitive the token engine is built on, and Bank, an
// implementation of it backed by an adb database.
package ledger

import (
	"github.com/virel-project/virel-token/address"
	"github.com/virel-project/virel-token/logger"
	"github.com/virel-project/virel-token/tokentype"

	"github.com/pkg/errors"
)

var Log = logger.DiscardLog

var (
	ErrUnknownMint        = errors.New("ledger: unknown mint")
	ErrInvalidAccount     = errors.New("ledger: invalid account")
	ErrAccountFrozen      = errors.New("ledger: account is frozen")
	ErrInsufficientFunds  = errors.New("ledger: insufficient funds")
	ErrUnauthorizedSigner = errors.New("ledger: signer is not allowed to perform this operation")
	ErrNoFreezeAuthority  = errors.New("ledger: mint has no freeze authority")
	ErrSupplyOverflow     = errors.New("ledger: amount overflows supply")
)

// Ledger is the external primitive which owns balances.
type Ledger interface {
	// CreateMint registers a new mint. A zero freezeAuthority creates a mint whose accounts cannot be frozen.
	CreateMint(decimals uint8, mintAuthority, freezeAuthority address.Address) (tokentype.MintHandle, error)

	// MoveValue moves amount from one account to another. signer must be allowed to spend from the
	// source account.
	MoveValue(mint tokentype.MintHandle, signer, from, to address.Address, amount uint64) error
}
