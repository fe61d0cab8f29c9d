package wallet

import (
	"strings"
	"testing"

	"github.com/zeebo/blake3"
)

func TestSeed(t *testing.T) {
	h := blake3.Sum256([]byte("test"))

	keys, err := keysFromEntropy(h[:SEED_ENTROPY])
	if err != nil {
		t.Fatal(err)
	}
	if n := len(strings.Fields(keys.Mnemonic)); n != 12 {
		t.Fatalf("expected 12 words, got %d", n)
	}

	keys2, err := KeysFromMnemonic(keys.Mnemonic)
	if err != nil {
		t.Fatal(err)
	}
	if keys2.Privkey != keys.Privkey {
		t.Fatalf("incorrect privk %x expected %x", keys2.Privkey, keys.Privkey)
	}
	if keys2.Address != keys.Address {
		t.Fatalf("incorrect address %s expected %s", keys2.Address, keys.Address)
	}
}

func TestNewKeys(t *testing.T) {
	a, err := NewKeys()
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewKeys()
	if err != nil {
		t.Fatal(err)
	}
	if a.Address == b.Address {
		t.Fatal("two generated wallets have the same address")
	}
	if a.Address.IsZero() {
		t.Fatal("generated address is zero")
	}
}

func TestInvalidMnemonic(t *testing.T) {
	_, err := KeysFromMnemonic("not a valid mnemonic")
	if err == nil {
		t.Fatal("expected error")
	}
}
