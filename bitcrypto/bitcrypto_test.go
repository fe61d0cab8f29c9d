package bitcrypto

import (
	"crypto/ed25519"
	"testing"
)

func TestKeypairFromSeed(t *testing.T) {
	var seed [SEED_SIZE]byte
	RandRead(seed[:])

	k1 := KeypairFromSeed(seed)
	k2 := KeypairFromSeed(seed)
	if k1 != k2 {
		t.Fatal("keypair derivation is not deterministic")
	}
	if k1.Seed() != seed {
		t.Fatal("seed does not match")
	}

	pub := k1.Public()
	sig := ed25519.Sign(ed25519.PrivateKey(k1[:]), []byte("virel"))
	if !ed25519.Verify(ed25519.PublicKey(pub[:]), []byte("virel"), sig) {
		t.Fatal("public key does not match private key")
	}
}
