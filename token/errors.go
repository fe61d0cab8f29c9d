package token

import "github.com/pkg/errors"

// Policy violations
var (
	ErrTradingNotEnabled       = errors.New("token: trading is not enabled")
	ErrExceedsMaxTransaction   = errors.New("token: transaction amount exceeds limit")
	ErrCooldownNotElapsed      = errors.New("token: cooldown period not elapsed")
	ErrInvalidFeeConfiguration = errors.New("token: invalid fee configuration")
	ErrInvalidMarketingWallet  = errors.New("token: invalid marketing wallet address")
	ErrInvalidDecimals         = errors.New("token: invalid decimals")
	ErrInvalidMetadata         = errors.New("token: invalid name or symbol")
	ErrAmountOverflow          = errors.New("token: amount overflow")
)

// Authorization violations
var ErrUnauthorized = errors.New("token: unauthorized")

// Lifecycle
var (
	ErrNotInitialized     = errors.New("token: not initialized")
	ErrAlreadyInitialized = errors.New("token: already initialized")
)
