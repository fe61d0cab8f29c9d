// Package wallet derives token principals (holders, authority, fee wallets) from BIP-39 mnemonics.
package wallet

import (
	"github.com/virel-project/virel-token/address"
	"github.com/virel-project/virel-token/bitcrypto"

	"github.com/tyler-smith/go-bip39"
	"github.com/zeebo/blake3"
)

// seed entropy in bytes
const SEED_ENTROPY = 16

type Keys struct {
	Mnemonic string
	Privkey  bitcrypto.Privkey
	Address  address.Address
}

// NewKeys generates a fresh mnemonic and the associated keypair
func NewKeys() (*Keys, error) {
	entropy := make([]byte, SEED_ENTROPY)
	bitcrypto.RandRead(entropy)

	return keysFromEntropy(entropy)
}

// KeysFromMnemonic decodes a mnemonic seedphrase into a keypair
func KeysFromMnemonic(mnemonic string) (*Keys, error) {
	entropy, err := bip39.EntropyFromMnemonic(mnemonic)
	if err != nil {
		return nil, err
	}

	return keysFromEntropy(entropy)
}

func keysFromEntropy(entropy []byte) (*Keys, error) {
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, err
	}

	key := bitcrypto.KeypairFromSeed(blake3.Sum256(entropy))

	return &Keys{
		Mnemonic: mnemonic,
		Privkey:  key,
		Address:  address.FromPubKey(key.Public()),
	}, nil
}
