package token

import (
	"github.com/virel-project/virel-token/config"
	"github.com/virel-project/virel-token/tokentype"

	"github.com/holiman/uint256"
)

// Fees is the split of a gross transfer amount.
type Fees struct {
	Total      uint64 `json:"total"`
	Reflection uint64 `json:"reflection"`
	Marketing  uint64 `json:"marketing"`
	Burn       uint64 `json:"burn"`
	Dev        uint64 `json:"dev"`
}

// Components returns the sum of the four fee components. Each component is truncated independently, so
// the result may be lower than Total.
func (f Fees) Components() uint64 {
	return f.Reflection + f.Marketing + f.Burn + f.Dev
}

// bpOf returns amount * bp / 10000, truncated. The product is computed in 256 bits.
func bpOf(amount uint64, bp uint32) uint64 {
	x := uint256.NewInt(amount)
	x.Mul(x, uint256.NewInt(uint64(bp)))
	x.Div(x, uint256.NewInt(config.BASIS_POINTS))
	return x.Uint64()
}

// ComputeFees splits amount according to the fee schedule of cfg.
func ComputeFees(cfg *tokentype.Config, amount uint64) Fees {
	return Fees{
		Total:      bpOf(amount, cfg.TotalFeeBp()),
		Reflection: bpOf(amount, uint32(cfg.ReflectionFeeBp)),
		Marketing:  bpOf(amount, uint32(cfg.MarketingFeeBp)),
		Burn:       bpOf(amount, uint32(cfg.BurnFeeBp)),
		Dev:        bpOf(amount, uint32(cfg.DevFeeBp)),
	}
}
