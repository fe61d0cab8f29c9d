package main

import (
	"errors"
	"io"
	"math"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/virel-project/virel-token/adb/boltdb"
	"github.com/virel-project/virel-token/address"
	"github.com/virel-project/virel-token/rpc"
	"github.com/virel-project/virel-token/rpc/tokenrpc"
	"github.com/virel-project/virel-token/wallet"

	"github.com/stretchr/testify/require"
)

func newAddress(t *testing.T) address.Address {
	t.Helper()
	keys, err := wallet.NewKeys()
	require.NoError(t, err)
	return keys.Address
}

func setupNode(t *testing.T, restricted bool, auth string) (*Node, *tokenrpc.RpcClient) {
	t.Helper()

	Log.SetStdout(io.Discard)
	Log.SetStderr(io.Discard)

	db, err := boltdb.New(filepath.Join(t.TempDir(), "token.db"), 0o600)
	require.NoError(t, err)

	n, err := NewNode(db)
	require.NoError(t, err)
	t.Cleanup(n.Close)

	srv := httptest.NewServer(newRpcServer(n, restricted, auth))
	t.Cleanup(srv.Close)

	return n, tokenrpc.NewRpcClient(srv.URL)
}

func requireCode(t *testing.T, err error, code int) {
	t.Helper()
	var rpcErr *rpc.Error
	require.True(t, errors.As(err, &rpcErr), "expected an rpc error, got %v", err)
	require.Equal(t, code, rpcErr.Code, rpcErr.Message)
}

func TestRpcTokenLifecycle(t *testing.T) {
	n, client := setupNode(t, false, "")

	authority := newAddress(t)
	marketing := newAddress(t)
	alice := newAddress(t)
	bob := newAddress(t)

	info, err := client.GetInfo(tokenrpc.GetInfoRequest{})
	require.NoError(t, err)
	require.False(t, info.Initialized)

	_, err = client.GetBalance(tokenrpc.GetBalanceRequest{Address: alice})
	requireCode(t, err, tokenrpc.CodeNotInitialized)

	initRes, err := client.Initialize(tokenrpc.InitializeRequest{
		Name:            "BigBalls",
		Symbol:          "BALLS",
		Decimals:        6,
		MarketingWallet: marketing,
		Authority:       authority,
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1_000_000_000_000_000), initRes.TotalSupply)
	require.Equal(t, uint64(1_000_000_000_000), initRes.MaxTransactionAmount)

	_, err = client.Initialize(tokenrpc.InitializeRequest{
		Name: "Again", Symbol: "AGN", Decimals: 6, MarketingWallet: marketing, Authority: authority,
	})
	requireCode(t, err, tokenrpc.CodeAlreadyInitialized)

	_, err = client.MintTo(tokenrpc.MintToRequest{Authority: alice, To: alice, Amount: 1})
	requireCode(t, err, tokenrpc.CodeUnauthorized)

	minted, err := client.MintTo(tokenrpc.MintToRequest{Authority: authority, To: alice, Amount: 10_000_000})
	require.NoError(t, err)
	require.Equal(t, uint64(10_000_000), minted.Balance)

	_, err = client.Transfer(tokenrpc.TransferRequest{From: alice, To: bob, Caller: alice, Amount: 1_000_000})
	requireCode(t, err, tokenrpc.CodeTradingNotEnabled)

	_, err = client.SetTradingEnabled(tokenrpc.SetTradingEnabledRequest{Caller: bob, Enabled: true})
	requireCode(t, err, tokenrpc.CodeUnauthorized)

	trading, err := client.SetTradingEnabled(tokenrpc.SetTradingEnabledRequest{Caller: authority, Enabled: true})
	require.NoError(t, err)
	require.True(t, trading.TradingEnabled)

	receipt, err := client.Transfer(tokenrpc.TransferRequest{From: alice, To: bob, Caller: alice, Amount: 1_000_000})
	require.NoError(t, err)
	require.Equal(t, uint64(950_000), receipt.NetAmount)
	require.Equal(t, uint64(15_000), receipt.Fees.Marketing)

	_, err = client.Transfer(tokenrpc.TransferRequest{From: alice, To: bob, Caller: alice, Amount: 1})
	requireCode(t, err, tokenrpc.CodeCooldownNotElapsed)

	bal, err := client.GetBalance(tokenrpc.GetBalanceRequest{Address: bob})
	require.NoError(t, err)
	require.Equal(t, uint64(950_000), bal.Balance)

	bal, err = client.GetBalance(tokenrpc.GetBalanceRequest{Address: marketing})
	require.NoError(t, err)
	require.Equal(t, uint64(15_000), bal.Balance)

	holder, err := client.GetHolder(tokenrpc.GetHolderRequest{Address: alice})
	require.NoError(t, err)
	require.True(t, holder.Found)
	require.Equal(t, uint64(1), holder.TotalTransactions)
	require.Equal(t, uint64(1_000_000), holder.TotalAmount)
	require.Equal(t, holder.LastTransaction+60, holder.NextTransfer)

	holder, err = client.GetHolder(tokenrpc.GetHolderRequest{Address: bob})
	require.NoError(t, err)
	require.False(t, holder.Found)

	holders, err := client.ListHolders(tokenrpc.ListHoldersRequest{})
	require.NoError(t, err)
	require.Len(t, holders.Holders, 1)
	require.Equal(t, alice, holders.Holders[0].Address)
	require.Equal(t, uint64(0), holders.MaxPage)

	// pages past the last one are empty, even when page * size overflows
	for _, page := range []uint64{1, math.MaxUint64/HOLDER_LIST_PAGE_SIZE + 1, math.MaxUint64} {
		holders, err = client.ListHolders(tokenrpc.ListHoldersRequest{Page: page})
		require.NoError(t, err)
		require.Empty(t, holders.Holders, "page %d", page)
		require.Equal(t, uint64(0), holders.MaxPage)
	}

	_, err = client.UpdateFees(tokenrpc.UpdateFeesRequest{
		Caller: authority, ReflectionFeeBp: 500, MarketingFeeBp: 300, BurnFeeBp: 200, DevFeeBp: 100,
	})
	requireCode(t, err, tokenrpc.CodeInvalidFeeConfiguration)

	fees, err := client.UpdateFees(tokenrpc.UpdateFeesRequest{
		Caller: authority, ReflectionFeeBp: 300, MarketingFeeBp: 100, BurnFeeBp: 200, DevFeeBp: 100,
	})
	require.NoError(t, err)
	require.Equal(t, uint32(700), fees.TotalFeeBp)

	info, err = client.GetInfo(tokenrpc.GetInfoRequest{})
	require.NoError(t, err)
	require.True(t, info.Initialized)
	require.True(t, info.TradingEnabled)
	require.Equal(t, "BALLS", info.Symbol)
	require.Equal(t, uint32(700), info.TotalFeeBp)
	require.Equal(t, uint64(1), info.Holders)

	n.stats.Lock()
	require.Equal(t, uint64(1), n.stats.Transfers)
	require.Equal(t, uint64(15_000), n.stats.MarketingFees)
	n.stats.Unlock()
}

func TestRpcFreeze(t *testing.T) {
	_, client := setupNode(t, false, "")

	authority := newAddress(t)
	alice := newAddress(t)
	bob := newAddress(t)

	_, err := client.Initialize(tokenrpc.InitializeRequest{
		Name: "Frozen", Symbol: "FRZ", Decimals: 0, MarketingWallet: authority, Authority: authority,
	})
	require.NoError(t, err)
	_, err = client.SetTradingEnabled(tokenrpc.SetTradingEnabledRequest{Caller: authority, Enabled: true})
	require.NoError(t, err)
	_, err = client.MintTo(tokenrpc.MintToRequest{Authority: authority, To: alice, Amount: 1_000})
	require.NoError(t, err)

	_, err = client.Freeze(tokenrpc.FreezeRequest{Authority: alice, Account: alice})
	requireCode(t, err, tokenrpc.CodeUnauthorized)

	_, err = client.Freeze(tokenrpc.FreezeRequest{Authority: authority, Account: alice})
	require.NoError(t, err)

	_, err = client.Transfer(tokenrpc.TransferRequest{From: alice, To: bob, Caller: alice, Amount: 100})
	requireCode(t, err, tokenrpc.CodeLedger)

	_, err = client.Thaw(tokenrpc.FreezeRequest{Authority: authority, Account: alice})
	require.NoError(t, err)

	res, err := client.Transfer(tokenrpc.TransferRequest{From: alice, To: bob, Caller: alice, Amount: 100})
	require.NoError(t, err)
	require.Equal(t, uint64(95), res.NetAmount)
}

func TestRpcErrors(t *testing.T) {
	_, client := setupNode(t, false, "")

	err := client.Request("no_such_method", nil, &struct{}{})
	requireCode(t, err, rpc.CodeMethodNotFound)

	err = client.Request("get_holder", map[string]any{"address": "not an address"}, &struct{}{})
	requireCode(t, err, rpc.CodeInvalidParams)

	_, err = client.Initialize(tokenrpc.InitializeRequest{
		Name: "x", Symbol: "X", Decimals: 11, MarketingWallet: newAddress(t), Authority: newAddress(t),
	})
	requireCode(t, err, tokenrpc.CodeInvalidParameters)
}

func TestRpcAuthentication(t *testing.T) {
	_, client := setupNode(t, false, "user:secret")

	_, err := client.GetInfo(tokenrpc.GetInfoRequest{})
	requireCode(t, err, 401)

	client.Authentication = "user:wrong"
	_, err = client.GetInfo(tokenrpc.GetInfoRequest{})
	requireCode(t, err, 401)

	client.Authentication = "user:secret"
	info, err := client.GetInfo(tokenrpc.GetInfoRequest{})
	require.NoError(t, err)
	require.False(t, info.Initialized)
}

func TestRpcRestricted(t *testing.T) {
	n, client := setupNode(t, true, "")

	authority := newAddress(t)
	victim := newAddress(t)
	thief := newAddress(t)

	cfg, err := n.Token.Initialize("BigBalls", "BALLS", 6, authority, authority)
	require.NoError(t, err)
	require.NoError(t, n.Token.SetTradingEnabled(authority, true))
	require.NoError(t, n.Bank.MintTo(cfg.Mint, authority, victim, 10_000_000))

	_, err = client.Transfer(tokenrpc.TransferRequest{From: victim, To: thief, Caller: victim, Amount: 1_000_000})
	requireCode(t, err, rpc.CodeMethodNotFound)

	_, err = client.Initialize(tokenrpc.InitializeRequest{
		Name: "Other", Symbol: "OTH", Decimals: 6, MarketingWallet: thief, Authority: thief,
	})
	requireCode(t, err, rpc.CodeMethodNotFound)
	_, err = client.SetTradingEnabled(tokenrpc.SetTradingEnabledRequest{Caller: authority, Enabled: false})
	requireCode(t, err, rpc.CodeMethodNotFound)
	_, err = client.UpdateFees(tokenrpc.UpdateFeesRequest{Caller: authority})
	requireCode(t, err, rpc.CodeMethodNotFound)
	_, err = client.MintTo(tokenrpc.MintToRequest{Authority: authority, To: thief, Amount: 1})
	requireCode(t, err, rpc.CodeMethodNotFound)
	_, err = client.Freeze(tokenrpc.FreezeRequest{Authority: authority, Account: victim})
	requireCode(t, err, rpc.CodeMethodNotFound)
	_, err = client.Thaw(tokenrpc.FreezeRequest{Authority: authority, Account: victim})
	requireCode(t, err, rpc.CodeMethodNotFound)

	// read methods stay available
	bal, err := client.GetBalance(tokenrpc.GetBalanceRequest{Address: victim})
	require.NoError(t, err)
	require.Equal(t, uint64(10_000_000), bal.Balance)

	bal, err = client.GetBalance(tokenrpc.GetBalanceRequest{Address: thief})
	require.NoError(t, err)
	require.Equal(t, uint64(0), bal.Balance)

	info, err := client.GetInfo(tokenrpc.GetInfoRequest{})
	require.NoError(t, err)
	require.True(t, info.TradingEnabled)
}
