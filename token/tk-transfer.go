package token

import (
	"github.com/virel-project/virel-token/adb"
	"github.com/virel-project/virel-token/address"
	"github.com/virel-project/virel-token/config"
	"github.com/virel-project/virel-token/tokentype"
	"github.com/virel-project/virel-token/util"

	"github.com/pkg/errors"
)

type TransferRequest struct {
	From address.Address
	To   address.Address
	// Optional. When set it must match the configured marketing wallet.
	MarketingWallet address.Address
	// The principal signing the value movements. The ledger decides whether it may spend from From.
	Caller address.Address
	Amount uint64
}

type Receipt struct {
	From      address.Address `json:"from"`
	To        address.Address `json:"to"`
	Amount    uint64          `json:"amount"`     // gross amount requested
	NetAmount uint64          `json:"net_amount"` // amount received by To
	Fees      Fees            `json:"fees"`
	Timestamp int64           `json:"timestamp"`
}

// Transfer moves req.Amount from req.From to req.To, taxed according to the fee schedule.
//
// The checks run in a fixed order and each one is terminal: trading enabled, transaction limit, sender
// cooldown. The net amount and the marketing fee are then moved through the ledger, and only once both
// movements succeeded is the sender's cooldown record updated. The reflection, burn and dev fees are
// computed and reported but stay in the sender's account.
func (t *Token) Transfer(req TransferRequest) (*Receipt, error) {
	t.configMut.RLock()
	defer t.configMut.RUnlock()

	unlock := t.holders.Lock(req.From)
	defer unlock()

	var cfg *tokentype.Config
	var holder *tokentype.Holder
	err := t.DB.View(func(txn adb.Txn) error {
		var err error
		cfg, err = t.GetConfig(txn)
		if err != nil {
			return err
		}
		holder, err = t.GetHolder(txn, req.From)
		return err
	})
	if err != nil {
		return nil, err
	}

	now := t.Now()

	if !cfg.TradingEnabled {
		return nil, ErrTradingNotEnabled
	}
	if req.Amount > cfg.MaxTransactionAmount {
		return nil, errors.Wrapf(ErrExceedsMaxTransaction, "amount %d, max %d", req.Amount,
			cfg.MaxTransactionAmount)
	}
	if now < holder.LastTransaction+cfg.TransactionCooldown {
		return nil, errors.Wrapf(ErrCooldownNotElapsed, "holder %s can transfer again in %ds", req.From,
			holder.LastTransaction+cfg.TransactionCooldown-now)
	}

	// the marketing fee always goes to the configured wallet
	if !req.MarketingWallet.IsZero() && req.MarketingWallet != cfg.MarketingWallet {
		return nil, errors.Wrapf(ErrInvalidMarketingWallet, "%s is not the marketing wallet", req.MarketingWallet)
	}
	totalAmount, err := util.SafeAdd(holder.TotalAmount, req.Amount)
	if err != nil {
		return nil, errors.Wrapf(ErrAmountOverflow, "holder %s total amount", req.From)
	}
	if cfg.TotalFeeBp() > config.MAX_TOTAL_FEE_BP {
		// unreachable unless the stored config is corrupted
		return nil, errors.Wrapf(ErrInvalidFeeConfiguration, "stored total fee %d bp", cfg.TotalFeeBp())
	}

	fees := ComputeFees(cfg, req.Amount)
	net := req.Amount - fees.Total

	Log.Devf("transfer %s -> %s amount %d net %d fees %+v", req.From, req.To, req.Amount, net, fees)

	err = t.Ledger.MoveValue(cfg.Mint, req.Caller, req.From, req.To, net)
	if err != nil {
		return nil, errors.Wrap(err, "net transfer")
	}

	if fees.Marketing > 0 {
		err = t.Ledger.MoveValue(cfg.Mint, req.Caller, req.From, cfg.MarketingWallet, fees.Marketing)
		if err != nil {
			Log.Warnf("marketing fee transfer from %s failed after the net transfer: %v", req.From, err)
			return nil, errors.Wrap(err, "marketing fee transfer")
		}
	}

	holder.LastTransaction = now
	holder.TotalTransactions++
	holder.TotalAmount = totalAmount

	err = t.DB.Update(func(txn adb.Txn) error {
		return t.SetHolder(txn, req.From, holder)
	})
	if err != nil {
		Log.Errf("value moved but holder %s record could not be saved: %v", req.From, err)
		return nil, err
	}

	t.emit(TransferExecuted{
		From:      req.From,
		To:        req.To,
		Amount:    net,
		Timestamp: now,
	}, FeesCollected{
		ReflectionAmount: fees.Reflection,
		MarketingAmount:  fees.Marketing,
		BurnAmount:       fees.Burn,
		DevAmount:        fees.Dev,
		Timestamp:        now,
	})

	return &Receipt{
		From:      req.From,
		To:        req.To,
		Amount:    req.Amount,
		NetAmount: net,
		Fees:      fees,
		Timestamp: now,
	}, nil
}
