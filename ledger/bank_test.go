package ledger_test

import (
	"path/filepath"
	"testing"

	"github.com/virel-project/virel-token/adb/boltdb"
	"github.com/virel-project/virel-token/address"
	"github.com/virel-project/virel-token/ledger"
	"github.com/virel-project/virel-token/tokentype"

	"github.com/stretchr/testify/require"
)

var (
	authority = address.Address{1}
	alice     = address.Address{2}
	bob       = address.Address{3}
)

func setupBank(t *testing.T) (*ledger.Bank, tokentype.MintHandle) {
	t.Helper()

	db, err := boltdb.New(filepath.Join(t.TempDir(), "bank.db"), 0o600)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	bank, err := ledger.NewBank(db)
	require.NoError(t, err)

	mint, err := bank.CreateMint(9, authority, authority)
	require.NoError(t, err)
	require.False(t, mint.IsZero())

	return bank, mint
}

func TestCreateMint(t *testing.T) {
	bank, mint := setupBank(t)

	m, err := bank.GetMint(mint)
	require.NoError(t, err)
	require.Equal(t, uint8(9), m.Decimals)
	require.Equal(t, authority, m.MintAuthority)
	require.Equal(t, authority, m.FreezeAuthority)

	// same parameters must still give a distinct mint
	mint2, err := bank.CreateMint(9, authority, authority)
	require.NoError(t, err)
	require.NotEqual(t, mint, mint2)

	_, err = bank.CreateMint(9, address.INVALID_ADDRESS, authority)
	require.ErrorIs(t, err, ledger.ErrInvalidAccount)
}

func TestMoveValue(t *testing.T) {
	bank, mint := setupBank(t)

	require.NoError(t, bank.MintTo(mint, authority, alice, 1_000))
	require.ErrorIs(t, bank.MintTo(mint, alice, alice, 1), ledger.ErrUnauthorizedSigner)

	require.NoError(t, bank.MoveValue(mint, alice, alice, bob, 400))

	bal, err := bank.Balance(mint, alice)
	require.NoError(t, err)
	require.Equal(t, uint64(600), bal)
	bal, err = bank.Balance(mint, bob)
	require.NoError(t, err)
	require.Equal(t, uint64(400), bal)

	// failures leave balances untouched
	require.ErrorIs(t, bank.MoveValue(mint, alice, alice, bob, 601), ledger.ErrInsufficientFunds)
	require.ErrorIs(t, bank.MoveValue(mint, bob, alice, bob, 1), ledger.ErrUnauthorizedSigner)
	require.ErrorIs(t, bank.MoveValue(mint, alice, alice, address.INVALID_ADDRESS, 1), ledger.ErrInvalidAccount)
	require.ErrorIs(t, bank.MoveValue(tokentype.MintHandle{7}, alice, alice, bob, 1), ledger.ErrUnknownMint)

	bal, err = bank.Balance(mint, alice)
	require.NoError(t, err)
	require.Equal(t, uint64(600), bal)

	m, err := bank.GetMint(mint)
	require.NoError(t, err)
	require.Equal(t, uint64(1_000), m.Supply)
}

func TestFreeze(t *testing.T) {
	bank, mint := setupBank(t)

	require.NoError(t, bank.MintTo(mint, authority, alice, 100))

	require.ErrorIs(t, bank.Freeze(mint, alice, bob), ledger.ErrUnauthorizedSigner)
	require.NoError(t, bank.Freeze(mint, authority, bob))

	require.ErrorIs(t, bank.MoveValue(mint, alice, alice, bob, 1), ledger.ErrAccountFrozen)
	require.ErrorIs(t, bank.MintTo(mint, authority, bob, 1), ledger.ErrAccountFrozen)

	require.NoError(t, bank.Thaw(mint, authority, bob))
	require.NoError(t, bank.MoveValue(mint, alice, alice, bob, 1))

	noFreeze, err := bank.CreateMint(0, authority, address.INVALID_ADDRESS)
	require.NoError(t, err)
	require.ErrorIs(t, bank.Freeze(noFreeze, authority, bob), ledger.ErrNoFreezeAuthority)
}
