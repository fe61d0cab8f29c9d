package token

import (
	"fmt"

	"github.com/virel-project/virel-token/address"
	"github.com/virel-project/virel-token/tokentype"
)

// Event is a one-way notification emitted after a state change is committed.
type Event interface {
	EventName() string
}

// Listener receives every event emitted by a Token. Listeners are called synchronously, in registration
// order, and must not call back into the Token.
type Listener func(e Event)

type TokenInitialized struct {
	Mint            tokentype.MintHandle `json:"mint"`
	Authority       address.Address      `json:"authority"`
	TotalSupply     uint64               `json:"total_supply"`
	Decimals        uint8                `json:"decimals"`
	MarketingWallet address.Address      `json:"marketing_wallet"`
}

type TradingStatusChanged struct {
	Enabled   bool  `json:"enabled"`
	Timestamp int64 `json:"timestamp"`
}

type FeesUpdated struct {
	ReflectionFeeBp uint16 `json:"reflection_fee_bp"`
	MarketingFeeBp  uint16 `json:"marketing_fee_bp"`
	BurnFeeBp       uint16 `json:"burn_fee_bp"`
	DevFeeBp        uint16 `json:"dev_fee_bp"`
	Timestamp       int64  `json:"timestamp"`
}

type TransferExecuted struct {
	From      address.Address `json:"from"`
	To        address.Address `json:"to"`
	Amount    uint64          `json:"amount"` // net amount received by To
	Timestamp int64           `json:"timestamp"`
}

type FeesCollected struct {
	ReflectionAmount uint64 `json:"reflection_amount"`
	MarketingAmount  uint64 `json:"marketing_amount"`
	BurnAmount       uint64 `json:"burn_amount"`
	DevAmount        uint64 `json:"dev_amount"`
	Timestamp        int64  `json:"timestamp"`
}

func (TokenInitialized) EventName() string     { return "token_initialized" }
func (TradingStatusChanged) EventName() string { return "trading_status_changed" }
func (FeesUpdated) EventName() string          { return "fees_updated" }
func (TransferExecuted) EventName() string     { return "transfer_executed" }
func (FeesCollected) EventName() string        { return "fees_collected" }

func (e TokenInitialized) String() string {
	return fmt.Sprintf("mint %s authority %s supply %d decimals %d marketing %s", e.Mint, e.Authority,
		e.TotalSupply, e.Decimals, e.MarketingWallet)
}
func (e TransferExecuted) String() string {
	return fmt.Sprintf("%s -> %s amount %d at %d", e.From, e.To, e.Amount, e.Timestamp)
}

// Subscribe registers l to receive all future events.
func (t *Token) Subscribe(l Listener) {
	t.listenersMut.Lock()
	defer t.listenersMut.Unlock()

	t.listeners = append(t.listeners, l)
}

func (t *Token) emit(events ...Event) {
	t.listenersMut.RLock()
	listeners := t.listeners
	t.listenersMut.RUnlock()

	for _, e := range events {
		Log.Eventf("%s: %v", e.EventName(), e)
		for _, l := range listeners {
			l(e)
		}
	}
}
