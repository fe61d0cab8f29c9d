package token

import (
	"math"
	"testing"

	"github.com/virel-project/virel-token/tokentype"
)

func defaultFees() *tokentype.Config {
	return &tokentype.Config{ReflectionFeeBp: 200, MarketingFeeBp: 150, BurnFeeBp: 100, DevFeeBp: 50}
}

func TestComputeFees(t *testing.T) {
	f := ComputeFees(defaultFees(), 1_000_000)
	if f.Total != 50_000 || 1_000_000-f.Total != 950_000 {
		t.Fatalf("unexpected total fee %d", f.Total)
	}
	if f.Marketing != 15_000 || f.Reflection != 20_000 || f.Burn != 10_000 || f.Dev != 5_000 {
		t.Fatalf("unexpected fee split %+v", f)
	}
	if f.Components() != f.Total {
		t.Fatalf("components %d should add up to %d for round amounts", f.Components(), f.Total)
	}
}

func TestComputeFeesTruncation(t *testing.T) {
	for _, amount := range []uint64{0, 1, 19, 100, 199, 1_000_000_007} {
		f := ComputeFees(defaultFees(), amount)
		if f.Components() > f.Total {
			t.Fatalf("amount %d: components %d exceed total %d", amount, f.Components(), f.Total)
		}
		if f.Total > amount {
			t.Fatalf("amount %d: fee %d exceeds amount", amount, f.Total)
		}
	}

	f := ComputeFees(defaultFees(), 100)
	// 100 * 500 / 10000 = 5; 2 + 1 + 1 + 0 = 4
	if f.Total != 5 || f.Components() != 4 {
		t.Fatalf("unexpected rounding %+v", f)
	}
}

func TestComputeFeesNoOverflow(t *testing.T) {
	cfg := &tokentype.Config{ReflectionFeeBp: 1000}

	f := ComputeFees(cfg, math.MaxUint64)
	if f.Total != math.MaxUint64/10 || f.Reflection != math.MaxUint64/10 {
		t.Fatalf("unexpected fee for max amount: %+v", f)
	}
}
