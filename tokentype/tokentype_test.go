package tokentype

import (
	"testing"

	"github.com/virel-project/virel-token/address"
)

func TestConfigCodec(t *testing.T) {
	c := &Config{
		Name:                 "Virel Token",
		Symbol:               "VTK",
		Decimals:             9,
		Mint:                 MintHandle{1, 2, 3},
		TotalSupply:          1_000_000_000_000_000_000,
		TradingEnabled:       true,
		Authority:            address.Address{1},
		MarketingWallet:      address.Address{2},
		MaxTransactionAmount: 1_000_000_000_000_000,
		MaxWalletAmount:      10_000_000_000_000_000,
		ReflectionFeeBp:      200,
		MarketingFeeBp:       150,
		BurnFeeBp:            100,
		DevFeeBp:             50,
		BuyCooldown:          300,
		SellCooldown:         1800,
		TransactionCooldown:  60,
	}

	c2 := &Config{}
	if err := c2.Deserialize(c.Serialize()); err != nil {
		t.Fatal(err)
	}
	if *c != *c2 {
		t.Fatalf("decoded config %v does not match %v", c2, c)
	}
	if c.TotalFeeBp() != 500 {
		t.Fatalf("unexpected total fee %d", c.TotalFeeBp())
	}
}

func TestConfigTotalFeeNoWrap(t *testing.T) {
	c := &Config{ReflectionFeeBp: 65535, MarketingFeeBp: 65535, BurnFeeBp: 1, DevFeeBp: 1}
	if c.TotalFeeBp() != 131072 {
		t.Fatalf("total fee wrapped: %d", c.TotalFeeBp())
	}
}

func TestHolderCodec(t *testing.T) {
	h := &Holder{LastTransaction: 1_760_000_000, TotalTransactions: 3, TotalAmount: 3_000_000}

	h2 := &Holder{}
	if err := h2.Deserialize(h.Serialize()); err != nil {
		t.Fatal(err)
	}
	if *h != *h2 {
		t.Fatalf("decoded holder %v does not match %v", h2, h)
	}

	if err := h2.Deserialize([]byte{}); err == nil {
		t.Fatal("empty holder data should not decode")
	}
}

func TestMintAndAccountCodec(t *testing.T) {
	m := &Mint{Decimals: 9, MintAuthority: address.Address{9}, FreezeAuthority: address.Address{9}, Supply: 42}
	m2 := &Mint{}
	if err := m2.Deserialize(m.Serialize()); err != nil {
		t.Fatal(err)
	}
	if *m != *m2 {
		t.Fatalf("decoded mint %v does not match %v", m2, m)
	}

	a := &Account{Balance: 950_000, Frozen: true}
	a2 := &Account{}
	if err := a2.Deserialize(a.Serialize()); err != nil {
		t.Fatal(err)
	}
	if *a != *a2 {
		t.Fatalf("decoded account %v does not match %v", a2, a)
	}
}

func TestMintHandleText(t *testing.T) {
	m := MintHandle{0xab, 0xcd}
	txt, err := m.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	var m2 MintHandle
	if err := m2.UnmarshalText(txt); err != nil {
		t.Fatal(err)
	}
	if m != m2 {
		t.Fatal("mint handle does not match")
	}
	if err := m2.UnmarshalText([]byte("abcd")); err == nil {
		t.Fatal("expected length error")
	}
}
