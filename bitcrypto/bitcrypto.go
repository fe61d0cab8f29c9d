package bitcrypto

import (
	"crypto/ed25519"
	"crypto/rand"
)

const PUBKEY_SIZE = 32
const PRIVKEY_SIZE = 32 + PUBKEY_SIZE
const SEED_SIZE = ed25519.SeedSize

type Pubkey [PUBKEY_SIZE]byte
type Privkey [PRIVKEY_SIZE]byte

func (p Privkey) Public() Pubkey {
	return Pubkey(p[32:])
}

// Seed returns the 32-byte seed the private key was derived from
func (p Privkey) Seed() [SEED_SIZE]byte {
	return [SEED_SIZE]byte(p[:32])
}

// KeypairFromSeed deterministically derives an ed25519 private key from seed
func KeypairFromSeed(seed [SEED_SIZE]byte) Privkey {
	return Privkey(ed25519.NewKeyFromSeed(seed[:]))
}

// RandRead fills b with cryptographically secure random bytes, panicking if the system source fails.
func RandRead(b []byte) {
	_, err := rand.Read(b)
	if err != nil {
		panic(err)
	}
}
