package address

import (
	"encoding/binary"
	"errors"
	"hash/crc32"
	"math/big"

	"github.com/virel-project/virel-token/bitcrypto"
	"github.com/virel-project/virel-token/config"

	"github.com/zeebo/blake3"
)

const SIZE = 22

// Address identifies a principal: a token holder, the token authority or a fee wallet.
type Address [SIZE]byte

// The zero-value of address is considered invalid
var INVALID_ADDRESS = Address{}

var ErrInvalidPrefix = errors.New("invalid address prefix")
var ErrInvalidAddress = errors.New("invalid address")
var ErrInvalidChecksum = errors.New("invalid address checksum")

func FromPubKey(p bitcrypto.Pubkey) Address {
	// Address is obtained from the hash of the public key
	hash := blake3.Sum256(p[:])

	return Address(hash[:SIZE]) // the first SIZE bytes of the hash are the actual address
}

func FromString(p string) (Address, error) {
	if len(p) < 4 || p[0] != config.ADDRESS_PREFIX[0] {
		return Address{}, ErrInvalidPrefix
	}

	bigi, success := big.NewInt(0).SetString(p[1:], 36)
	if !success {
		return Address{}, ErrInvalidAddress
	}

	data := bigi.Bytes()
	if len(data) > SIZE+2 {
		return Address{}, ErrInvalidAddress
	}
	// leading zero bytes are dropped by big.Int
	data = append(make([]byte, SIZE+2-len(data)), data...)

	sum := checksum(data[2:])
	if data[0] != sum[0] || data[1] != sum[1] {
		return Address{}, ErrInvalidChecksum
	}

	return Address(data[2:]), nil
}

func checksum(a []byte) []byte {
	sum := crc32.ChecksumIEEE(a)
	sumb := make([]byte, 2)
	binary.LittleEndian.PutUint16(sumb, uint16(sum&0xffff))
	return sumb
}

func (a Address) IsZero() bool {
	return a == INVALID_ADDRESS
}

func (a Address) String() string {
	b := append(checksum(a[:]), a[:]...)
	return config.ADDRESS_PREFIX + big.NewInt(0).SetBytes(b).Text(36)
}

// MarshalText encodes the zero address as an empty string, so that optional address fields can be omitted.
func (a Address) MarshalText() ([]byte, error) {
	if a.IsZero() {
		return []byte{}, nil
	}
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(c []byte) error {
	if len(c) == 0 {
		*a = INVALID_ADDRESS
		return nil
	}
	addr, err := FromString(string(c))
	if err != nil {
		return err
	}
	*a = addr
	return nil
}
