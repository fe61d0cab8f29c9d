package ledger

import (
	"github.com/virel-project/virel-token/adb"
	"github.com/virel-project/virel-token/address"
	"github.com/virel-project/virel-token/binary"
	"github.com/virel-project/virel-token/tokentype"
	"github.com/virel-project/virel-token/util"

	"github.com/pkg/errors"
	"github.com/zeebo/blake3"
)

var _ Ledger = &Bank{}

// Bank is a Ledger storing mints and balances in its own adb indexes.
type Bank struct {
	DB    adb.DB
	Index Index
}

type Index struct {
	Info    adb.Index // generic bank info (mint nonce)
	Mint    adb.Index // mint handle -> mint
	Account adb.Index // mint handle + address -> account
}

var keyMintNonce = []byte("mint_nonce")

func NewBank(db adb.DB) (*Bank, error) {
	b := &Bank{DB: db}

	var err error
	for _, v := range []struct {
		idx  *adb.Index
		name string
	}{
		{&b.Index.Info, "bank_info"},
		{&b.Index.Mint, "bank_mint"},
		{&b.Index.Account, "bank_account"},
	} {
		*v.idx, err = db.Index(v.name)
		if err != nil {
			return nil, errors.Wrapf(err, "opening index %s", v.name)
		}
	}

	return b, nil
}

func accountKey(mint tokentype.MintHandle, addr address.Address) []byte {
	return append(mint[:], addr[:]...)
}

func (b *Bank) getMint(txn adb.Txn, mint tokentype.MintHandle) (*tokentype.Mint, error) {
	bin := txn.Get(b.Index.Mint, mint[:])
	if bin == nil {
		return nil, errors.Wrapf(ErrUnknownMint, "mint %s", mint)
	}
	m := &tokentype.Mint{}
	return m, m.Deserialize(bin)
}

func (b *Bank) setMint(txn adb.Txn, mint tokentype.MintHandle, m *tokentype.Mint) error {
	return txn.Put(b.Index.Mint, mint[:], m.Serialize())
}

// getAccount returns the account of addr, or an empty account if addr never received funds
func (b *Bank) getAccount(txn adb.Txn, mint tokentype.MintHandle, addr address.Address) (*tokentype.Account, error) {
	acc := &tokentype.Account{}
	bin := txn.Get(b.Index.Account, accountKey(mint, addr))
	if bin == nil {
		return acc, nil
	}
	return acc, acc.Deserialize(bin)
}

func (b *Bank) setAccount(txn adb.Txn, mint tokentype.MintHandle, addr address.Address, acc *tokentype.Account) error {
	return txn.Put(b.Index.Account, accountKey(mint, addr), acc.Serialize())
}

func (b *Bank) CreateMint(decimals uint8, mintAuthority, freezeAuthority address.Address) (tokentype.MintHandle, error) {
	if mintAuthority.IsZero() {
		return tokentype.MintHandle{}, errors.Wrap(ErrInvalidAccount, "mint authority")
	}

	var handle tokentype.MintHandle
	err := b.DB.Update(func(txn adb.Txn) error {
		var nonce uint64
		if bin := txn.Get(b.Index.Info, keyMintNonce); len(bin) == 8 {
			nonce = binary.LittleEndian.Uint64(bin)
		}
		nonce++

		s := binary.NewSer(make([]byte, address.SIZE+9))
		s.AddFixedByteArray(mintAuthority[:])
		s.AddUint8(decimals)
		s.AddUint64(nonce)
		handle = blake3.Sum256(s.Output())

		err := txn.Put(b.Index.Info, keyMintNonce, binary.LittleEndian.AppendUint64(nil, nonce))
		if err != nil {
			return err
		}

		return b.setMint(txn, handle, &tokentype.Mint{
			Decimals:        decimals,
			MintAuthority:   mintAuthority,
			FreezeAuthority: freezeAuthority,
		})
	})
	if err != nil {
		return tokentype.MintHandle{}, err
	}

	Log.Debugf("created mint %s decimals %d authority %s", handle, decimals, mintAuthority)

	return handle, nil
}

func (b *Bank) MoveValue(mint tokentype.MintHandle, signer, from, to address.Address, amount uint64) error {
	if from.IsZero() || to.IsZero() {
		return ErrInvalidAccount
	}
	if signer != from {
		return errors.Wrapf(ErrUnauthorizedSigner, "signer %s cannot spend from %s", signer, from)
	}

	return b.DB.Update(func(txn adb.Txn) error {
		_, err := b.getMint(txn, mint)
		if err != nil {
			return err
		}

		fromAcc, err := b.getAccount(txn, mint, from)
		if err != nil {
			return err
		}
		toAcc, err := b.getAccount(txn, mint, to)
		if err != nil {
			return err
		}

		if fromAcc.Frozen {
			return errors.Wrapf(ErrAccountFrozen, "account %s", from)
		}
		if toAcc.Frozen {
			return errors.Wrapf(ErrAccountFrozen, "account %s", to)
		}
		if fromAcc.Balance < amount {
			return errors.Wrapf(ErrInsufficientFunds, "account %s balance %d, amount %d", from,
				fromAcc.Balance, amount)
		}

		if from == to {
			return nil
		}

		fromAcc.Balance -= amount
		// cannot overflow: the sum of all balances is bounded by the mint supply
		toAcc.Balance += amount

		err = b.setAccount(txn, mint, from, fromAcc)
		if err != nil {
			return err
		}
		err = b.setAccount(txn, mint, to, toAcc)
		if err != nil {
			return err
		}

		Log.Devf("moved %d from %s to %s", amount, from, to)
		return nil
	})
}

// MintTo creates amount new tokens in the account of to. Only the mint authority can mint.
func (b *Bank) MintTo(mint tokentype.MintHandle, authority, to address.Address, amount uint64) error {
	if to.IsZero() {
		return ErrInvalidAccount
	}

	return b.DB.Update(func(txn adb.Txn) error {
		m, err := b.getMint(txn, mint)
		if err != nil {
			return err
		}
		if m.MintAuthority != authority {
			return errors.Wrapf(ErrUnauthorizedSigner, "%s is not the mint authority", authority)
		}

		acc, err := b.getAccount(txn, mint, to)
		if err != nil {
			return err
		}
		if acc.Frozen {
			return errors.Wrapf(ErrAccountFrozen, "account %s", to)
		}

		m.Supply, err = util.SafeAdd(m.Supply, amount)
		if err != nil {
			return ErrSupplyOverflow
		}
		acc.Balance += amount

		err = b.setMint(txn, mint, m)
		if err != nil {
			return err
		}
		return b.setAccount(txn, mint, to, acc)
	})
}

func (b *Bank) Freeze(mint tokentype.MintHandle, authority, account address.Address) error {
	return b.setFrozen(mint, authority, account, true)
}

func (b *Bank) Thaw(mint tokentype.MintHandle, authority, account address.Address) error {
	return b.setFrozen(mint, authority, account, false)
}

func (b *Bank) setFrozen(mint tokentype.MintHandle, authority, account address.Address, frozen bool) error {
	if account.IsZero() {
		return ErrInvalidAccount
	}

	return b.DB.Update(func(txn adb.Txn) error {
		m, err := b.getMint(txn, mint)
		if err != nil {
			return err
		}
		if m.FreezeAuthority.IsZero() {
			return ErrNoFreezeAuthority
		}
		if m.FreezeAuthority != authority {
			return errors.Wrapf(ErrUnauthorizedSigner, "%s is not the freeze authority", authority)
		}

		acc, err := b.getAccount(txn, mint, account)
		if err != nil {
			return err
		}
		acc.Frozen = frozen
		return b.setAccount(txn, mint, account, acc)
	})
}

func (b *Bank) Balance(mint tokentype.MintHandle, addr address.Address) (uint64, error) {
	var balance uint64
	err := b.DB.View(func(txn adb.Txn) error {
		_, err := b.getMint(txn, mint)
		if err != nil {
			return err
		}
		acc, err := b.getAccount(txn, mint, addr)
		if err != nil {
			return err
		}
		balance = acc.Balance
		return nil
	})
	return balance, err
}

func (b *Bank) GetMint(mint tokentype.MintHandle) (*tokentype.Mint, error) {
	var m *tokentype.Mint
	err := b.DB.View(func(txn adb.Txn) error {
		var err error
		m, err = b.getMint(txn, mint)
		return err
	})
	return m, err
}
