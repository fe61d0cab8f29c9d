package tokentype

import (
	"fmt"

	"github.com/virel-project/virel-token/binary"
)

// Holder is the cooldown record of a sending address. It is stored by the first accepted transfer and only
// mutated by accepted transfers.
type Holder struct {
	LastTransaction     int64  // UNIX seconds of the last accepted transfer
	TotalTransactions   uint64 // number of accepted transfers
	TotalAmount         uint64 // sum of gross amounts sent
	LastReflectionClaim int64  // reserved, never mutated
}

func (x *Holder) Serialize() []byte {
	s := binary.NewSer(make([]byte, 24))

	s.AddVarint(x.LastTransaction)
	s.AddUvarint(x.TotalTransactions)
	s.AddUvarint(x.TotalAmount)
	s.AddVarint(x.LastReflectionClaim)

	return s.Output()
}

func (x *Holder) Deserialize(d []byte) error {
	s := binary.NewDes(d)

	x.LastTransaction = s.ReadVarint()
	x.TotalTransactions = s.ReadUvarint()
	x.TotalAmount = s.ReadUvarint()
	x.LastReflectionClaim = s.ReadVarint()

	return s.Error()
}

func (x *Holder) String() string {
	return fmt.Sprintf("LastTransaction: %d; TotalTransactions: %d; TotalAmount: %d", x.LastTransaction,
		x.TotalTransactions, x.TotalAmount)
}
