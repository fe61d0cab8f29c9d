package address_test

import (
	"encoding/json"
	"testing"

	"github.com/virel-project/virel-token/address"
	"github.com/virel-project/virel-token/bitcrypto"

	"github.com/zeebo/blake3"
)

func TestAddress(t *testing.T) {
	pk := bitcrypto.Pubkey(blake3.Sum256([]byte("test")))

	x := address.FromPubKey(pk)
	if x.IsZero() {
		t.Fatal("derived address must not be zero")
	}

	str := x.String()
	t.Log(str)

	x2, err := address.FromString(str)
	if err != nil {
		t.Fatal(err)
	}
	if x != x2 {
		t.Fatalf("address %v does not match %v", x, x2)
	}
}

func TestAddressLeadingZeros(t *testing.T) {
	// an address whose encoding starts with zero bytes must still round trip
	var a address.Address
	a[SIZE-1] = 1

	b, err := address.FromString(a.String())
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("address %x and %x not matching", a, b)
	}
}

const SIZE = address.SIZE

func TestAddressInvalid(t *testing.T) {
	a := address.FromPubKey(bitcrypto.Pubkey(blake3.Sum256([]byte("checksum"))))
	s := []byte(a.String())

	// flip the last character
	if s[len(s)-1] == '1' {
		s[len(s)-1] = '2'
	} else {
		s[len(s)-1] = '1'
	}
	if _, err := address.FromString(string(s)); err == nil {
		t.Fatal("expected checksum error")
	}
	if _, err := address.FromString("x1234567"); err != address.ErrInvalidPrefix {
		t.Fatal("expected prefix error, got", err)
	}
}

func TestAddressJSON(t *testing.T) {
	type payload struct {
		Holder address.Address `json:"holder"`
	}

	in := payload{Holder: address.FromPubKey(bitcrypto.Pubkey(blake3.Sum256([]byte("json"))))}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}

	out := payload{}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if in != out {
		t.Fatalf("decoded %v, expected %v", out.Holder, in.Holder)
	}
}

func TestAddressZeroJSON(t *testing.T) {
	type payload struct {
		Wallet address.Address `json:"wallet"`
	}

	data, err := json.Marshal(payload{})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"wallet":""}` {
		t.Fatalf("unexpected encoding %s", data)
	}

	out := payload{Wallet: address.Address{1}}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if !out.Wallet.IsZero() {
		t.Fatal("expected the zero address")
	}
}
