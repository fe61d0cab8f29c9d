// Package tokenrpc defines the JSON-RPC methods of the token node and a client for them.
package tokenrpc

import (
	"github.com/virel-project/virel-token/address"
	"github.com/virel-project/virel-token/token"
	"github.com/virel-project/virel-token/tokentype"
)

// Error codes returned by the token node, in the JSON-RPC server error range
const (
	CodeNotInitialized          = -32000
	CodeAlreadyInitialized      = -32001
	CodeUnauthorized            = -32002
	CodeTradingNotEnabled       = -32003
	CodeExceedsMaxTransaction   = -32004
	CodeCooldownNotElapsed      = -32005
	CodeInvalidFeeConfiguration = -32006
	CodeInvalidMarketingWallet  = -32007
	CodeInvalidParameters       = -32008
	CodeLedger                  = -32009
	CodeInternal                = -32099
)

type GetInfoRequest struct {
}
type GetInfoResponse struct {
	Network     string `json:"network"`
	Version     string `json:"version"`
	Initialized bool   `json:"initialized"`

	Name     string               `json:"name,omitempty"`
	Symbol   string               `json:"symbol,omitempty"`
	Decimals uint8                `json:"decimals"`
	Mint     tokentype.MintHandle `json:"mint"`

	TotalSupply     uint64          `json:"total_supply"`
	Authority       address.Address `json:"authority"`
	MarketingWallet address.Address `json:"marketing_wallet"`
	TradingEnabled  bool            `json:"trading_enabled"`

	MaxTransactionAmount uint64 `json:"max_transaction_amount"`
	MaxWalletAmount      uint64 `json:"max_wallet_amount"`

	ReflectionFeeBp uint16 `json:"reflection_fee_bp"`
	MarketingFeeBp  uint16 `json:"marketing_fee_bp"`
	BurnFeeBp       uint16 `json:"burn_fee_bp"`
	DevFeeBp        uint16 `json:"dev_fee_bp"`
	TotalFeeBp      uint32 `json:"total_fee_bp"`

	BuyCooldown         int64 `json:"buy_cooldown"`
	SellCooldown        int64 `json:"sell_cooldown"`
	TransactionCooldown int64 `json:"transaction_cooldown"`

	Holders uint64 `json:"holders"`
}

type GetHolderRequest struct {
	Address address.Address `json:"address"`
}
type GetHolderResponse struct {
	Found               bool   `json:"found"`
	LastTransaction     int64  `json:"last_transaction"`
	TotalTransactions   uint64 `json:"total_transactions"`
	TotalAmount         uint64 `json:"total_amount"`
	LastReflectionClaim int64  `json:"last_reflection_claim"`
	// UNIX time from which the holder can transfer again
	NextTransfer int64 `json:"next_transfer"`
}

type ListHoldersRequest struct {
	Page uint64 `json:"page"`
}
type HolderEntry struct {
	Address           address.Address `json:"address"`
	LastTransaction   int64           `json:"last_transaction"`
	TotalTransactions uint64          `json:"total_transactions"`
	TotalAmount       uint64          `json:"total_amount"`
}
type ListHoldersResponse struct {
	Holders []HolderEntry `json:"holders"`
	MaxPage uint64        `json:"max_page"`
}

type GetBalanceRequest struct {
	Address address.Address `json:"address"`
}
type GetBalanceResponse struct {
	Balance uint64 `json:"balance"`
}

type InitializeRequest struct {
	Name            string          `json:"name"`
	Symbol          string          `json:"symbol"`
	Decimals        uint8           `json:"decimals"`
	MarketingWallet address.Address `json:"marketing_wallet"`
	Authority       address.Address `json:"authority"`
}
type InitializeResponse struct {
	Mint                 tokentype.MintHandle `json:"mint"`
	TotalSupply          uint64               `json:"total_supply"`
	MaxTransactionAmount uint64               `json:"max_transaction_amount"`
	MaxWalletAmount      uint64               `json:"max_wallet_amount"`
}

type SetTradingEnabledRequest struct {
	Caller  address.Address `json:"caller"`
	Enabled bool            `json:"enabled"`
}
type SetTradingEnabledResponse struct {
	TradingEnabled bool `json:"trading_enabled"`
}

type UpdateFeesRequest struct {
	Caller          address.Address `json:"caller"`
	ReflectionFeeBp uint16          `json:"reflection_fee_bp"`
	MarketingFeeBp  uint16          `json:"marketing_fee_bp"`
	BurnFeeBp       uint16          `json:"burn_fee_bp"`
	DevFeeBp        uint16          `json:"dev_fee_bp"`
}
type UpdateFeesResponse struct {
	TotalFeeBp uint32 `json:"total_fee_bp"`
}

type TransferRequest struct {
	From            address.Address `json:"from"`
	To              address.Address `json:"to"`
	MarketingWallet address.Address `json:"marketing_wallet"` // optional
	Caller          address.Address `json:"caller"`
	Amount          uint64          `json:"amount"`
}
type TransferResponse struct {
	NetAmount uint64     `json:"net_amount"`
	Fees      token.Fees `json:"fees"`
	Timestamp int64      `json:"timestamp"`
}

type MintToRequest struct {
	Authority address.Address `json:"authority"`
	To        address.Address `json:"to"`
	Amount    uint64          `json:"amount"`
}
type MintToResponse struct {
	Balance uint64 `json:"balance"`
}

type FreezeRequest struct {
	Authority address.Address `json:"authority"`
	Account   address.Address `json:"account"`
}
type FreezeResponse struct {
}
