package tokentype

import (
	"fmt"

	"github.com/virel-project/virel-token/address"
	"github.com/virel-project/virel-token/binary"
)

// Config holds the economic parameters of a token deployment and the address allowed to change them.
type Config struct {
	Name     string
	Symbol   string
	Decimals uint8
	Mint     MintHandle

	TotalSupply     uint64
	TradingEnabled  bool
	Authority       address.Address
	MarketingWallet address.Address

	// Trading limits. Fixed at creation.
	MaxTransactionAmount uint64
	MaxWalletAmount      uint64 // not enforced by transfers

	// Fee configuration (in basis points)
	ReflectionFeeBp uint16
	MarketingFeeBp  uint16
	BurnFeeBp       uint16
	DevFeeBp        uint16

	// Cooldown periods (in seconds)
	BuyCooldown         int64 // not enforced by transfers
	SellCooldown        int64 // not enforced by transfers
	TransactionCooldown int64
}

// TotalFeeBp returns the sum of the four fee rates. The sum is computed in 32 bits so that it cannot wrap.
func (c *Config) TotalFeeBp() uint32 {
	return uint32(c.ReflectionFeeBp) + uint32(c.MarketingFeeBp) + uint32(c.BurnFeeBp) + uint32(c.DevFeeBp)
}

func (c *Config) Serialize() []byte {
	s := binary.NewSer(make([]byte, 160))

	s.AddUint8(0) // version
	s.AddString(c.Name)
	s.AddString(c.Symbol)
	s.AddUint8(c.Decimals)
	s.AddFixedByteArray(c.Mint[:])

	s.AddUvarint(c.TotalSupply)
	s.AddBool(c.TradingEnabled)
	s.AddFixedByteArray(c.Authority[:])
	s.AddFixedByteArray(c.MarketingWallet[:])

	s.AddUvarint(c.MaxTransactionAmount)
	s.AddUvarint(c.MaxWalletAmount)

	s.AddUint16(c.ReflectionFeeBp)
	s.AddUint16(c.MarketingFeeBp)
	s.AddUint16(c.BurnFeeBp)
	s.AddUint16(c.DevFeeBp)

	s.AddVarint(c.BuyCooldown)
	s.AddVarint(c.SellCooldown)
	s.AddVarint(c.TransactionCooldown)

	return s.Output()
}

func (c *Config) Deserialize(d []byte) error {
	s := binary.NewDes(d)

	if v := s.ReadUint8(); v != 0 {
		return fmt.Errorf("invalid config version %d", v)
	}
	c.Name = s.ReadString()
	c.Symbol = s.ReadString()
	c.Decimals = s.ReadUint8()
	c.Mint = MintHandle(s.ReadFixedByteArray(len(c.Mint)))

	c.TotalSupply = s.ReadUvarint()
	c.TradingEnabled = s.ReadBool()
	c.Authority = address.Address(s.ReadFixedByteArray(address.SIZE))
	c.MarketingWallet = address.Address(s.ReadFixedByteArray(address.SIZE))

	c.MaxTransactionAmount = s.ReadUvarint()
	c.MaxWalletAmount = s.ReadUvarint()

	c.ReflectionFeeBp = s.ReadUint16()
	c.MarketingFeeBp = s.ReadUint16()
	c.BurnFeeBp = s.ReadUint16()
	c.DevFeeBp = s.ReadUint16()

	c.BuyCooldown = s.ReadVarint()
	c.SellCooldown = s.ReadVarint()
	c.TransactionCooldown = s.ReadVarint()

	return s.Error()
}

func (c *Config) String() string {
	return fmt.Sprintf("%s (%s); Decimals: %d; Supply: %d; Trading: %v; Authority: %s; Marketing: %s; "+
		"Fees bp: reflection %d, marketing %d, burn %d, dev %d; Cooldown: %ds",
		c.Name, c.Symbol, c.Decimals, c.TotalSupply, c.TradingEnabled, c.Authority, c.MarketingWallet,
		c.ReflectionFeeBp, c.MarketingFeeBp, c.BurnFeeBp, c.DevFeeBp, c.TransactionCooldown)
}
