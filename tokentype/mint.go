package tokentype

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/virel-project/virel-token/address"
	"github.com/virel-project/virel-token/binary"
)

// MintHandle identifies a mint created by the ledger primitive.
type MintHandle [32]byte

func (m MintHandle) String() string {
	return hex.EncodeToString(m[:])
}

func (m MintHandle) IsZero() bool {
	return m == MintHandle{}
}

func (m MintHandle) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *MintHandle) UnmarshalText(c []byte) error {
	if len(c) != 64 {
		return errors.New("invalid mint handle length")
	}
	_, err := hex.Decode(m[:], c)
	return err
}

// Mint is the ledger-side description of a fungible token mint.
type Mint struct {
	Decimals        uint8
	MintAuthority   address.Address
	FreezeAuthority address.Address // zero if the mint has no freeze authority
	Supply          uint64          // total amount minted so far
}

func (x *Mint) Serialize() []byte {
	s := binary.NewSer(make([]byte, 2*address.SIZE+12))

	s.AddUint8(0) // version
	s.AddUint8(x.Decimals)
	s.AddFixedByteArray(x.MintAuthority[:])
	s.AddFixedByteArray(x.FreezeAuthority[:])
	s.AddUvarint(x.Supply)

	return s.Output()
}

func (x *Mint) Deserialize(d []byte) error {
	s := binary.NewDes(d)

	if v := s.ReadUint8(); v != 0 {
		return fmt.Errorf("invalid mint version %d", v)
	}
	x.Decimals = s.ReadUint8()
	x.MintAuthority = address.Address(s.ReadFixedByteArray(address.SIZE))
	x.FreezeAuthority = address.Address(s.ReadFixedByteArray(address.SIZE))
	x.Supply = s.ReadUvarint()

	return s.Error()
}

// Account is the balance of one address for one mint.
type Account struct {
	Balance uint64
	Frozen  bool
}

func (x *Account) Serialize() []byte {
	s := binary.NewSer(make([]byte, 11))

	s.AddUvarint(x.Balance)
	s.AddBool(x.Frozen)

	return s.Output()
}

func (x *Account) Deserialize(d []byte) error {
	s := binary.NewDes(d)

	x.Balance = s.ReadUvarint()
	x.Frozen = s.ReadBool()

	return s.Error()
}

func (x *Account) String() string {
	return fmt.Sprintf("Balance: %d; Frozen: %v", x.Balance, x.Frozen)
}
