// Package token implements a taxed fungible token on top of a ledger primitive: an authority-gated
// configuration store and a transfer engine enforcing trading activation, anti-whale limits, per-holder
// cooldowns and basis-point fees.
package token

import (
	"github.com/virel-project/virel-token/adb"
	"github.com/virel-project/virel-token/address"
	"github.com/virel-project/virel-token/ledger"
	"github.com/virel-project/virel-token/logger"
	"github.com/virel-project/virel-token/tokentype"
	"github.com/virel-project/virel-token/util"

	"github.com/pkg/errors"
)

var Log = logger.New()

var keyConfig = []byte("config")

type Token struct {
	DB     adb.DB
	Index  Index
	Ledger ledger.Ledger

	// Now returns the current UNIX time in seconds
	Now func() int64

	// Held exclusively by configuration mutators and shared by transfers, so that a transfer never
	// observes a fee schedule that is being replaced.
	configMut util.RWMutex
	holders   *holderLocks

	listeners    []Listener
	listenersMut util.RWMutex
}

type Index struct {
	Info   adb.Index // token configuration
	Holder adb.Index // holder address -> cooldown record
}

func New(db adb.DB, l ledger.Ledger) (*Token, error) {
	t := &Token{
		DB:      db,
		Ledger:  l,
		Now:     util.Time,
		holders: newHolderLocks(),
	}

	var err error
	t.Index.Info, err = db.Index("token_info")
	if err != nil {
		return nil, errors.Wrap(err, "opening index token_info")
	}
	t.Index.Holder, err = db.Index("holder")
	if err != nil {
		return nil, errors.Wrap(err, "opening index holder")
	}

	return t, nil
}

// GetConfig reads the token configuration. It fails with ErrNotInitialized before Initialize.
func (t *Token) GetConfig(txn adb.Txn) (*tokentype.Config, error) {
	bin := txn.Get(t.Index.Info, keyConfig)
	if bin == nil {
		return nil, ErrNotInitialized
	}
	c := &tokentype.Config{}
	err := c.Deserialize(bin)
	if err != nil {
		return nil, errors.Wrap(err, "corrupted token config")
	}
	return c, nil
}

func (t *Token) SetConfig(txn adb.Txn, c *tokentype.Config) error {
	return txn.Put(t.Index.Info, keyConfig, c.Serialize())
}

// GetHolder returns the cooldown record of addr. A holder that never sent a transfer gets a zero record,
// which is not persisted until SetHolder.
func (t *Token) GetHolder(txn adb.Txn, addr address.Address) (*tokentype.Holder, error) {
	h := &tokentype.Holder{}
	bin := txn.Get(t.Index.Holder, addr[:])
	if bin == nil {
		return h, nil
	}
	err := h.Deserialize(bin)
	if err != nil {
		return nil, errors.Wrapf(err, "corrupted holder %s", addr)
	}
	return h, nil
}

func (t *Token) SetHolder(txn adb.Txn, addr address.Address, h *tokentype.Holder) error {
	return txn.Put(t.Index.Holder, addr[:], h.Serialize())
}

// Config returns a snapshot of the token configuration.
func (t *Token) Config() (*tokentype.Config, error) {
	var c *tokentype.Config
	err := t.DB.View(func(txn adb.Txn) (err error) {
		c, err = t.GetConfig(txn)
		return
	})
	return c, err
}

// Holder returns the cooldown record of addr and whether it exists.
func (t *Token) Holder(addr address.Address) (*tokentype.Holder, bool, error) {
	var h *tokentype.Holder
	var found bool
	err := t.DB.View(func(txn adb.Txn) (err error) {
		found = txn.Get(t.Index.Holder, addr[:]) != nil
		h, err = t.GetHolder(txn, addr)
		return
	})
	return h, found, err
}

// Holders calls f for every stored holder record, in address order, until f returns true.
func (t *Token) Holders(f func(addr address.Address, h *tokentype.Holder) bool) error {
	return t.DB.View(func(txn adb.Txn) error {
		return txn.ForEachInterrupt(t.Index.Holder, func(k, v []byte) (bool, error) {
			if len(k) != address.SIZE {
				Log.Warnf("invalid holder key %x", k)
				return false, nil
			}
			h := &tokentype.Holder{}
			err := h.Deserialize(v)
			if err != nil {
				return false, errors.Wrapf(err, "corrupted holder %x", k)
			}
			return f(address.Address(k), h), nil
		})
	})
}

// authorize fails with ErrUnauthorized unless caller is the configured authority. Every privileged
// operation goes through it.
func authorize(c *tokentype.Config, caller address.Address) error {
	if caller.IsZero() || caller != c.Authority {
		return errors.Wrapf(ErrUnauthorized, "caller %s", caller)
	}
	return nil
}
