package token

import (
	"github.com/virel-project/virel-token/adb"
	"github.com/virel-project/virel-token/address"
	"github.com/virel-project/virel-token/config"
	"github.com/virel-project/virel-token/tokentype"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// TotalSupply returns SUPPLY_BASE * 10^decimals, or ErrInvalidDecimals if it doesn't fit in 64 bits.
func TotalSupply(decimals uint8) (uint64, error) {
	if decimals > config.MAX_DECIMALS {
		return 0, errors.Wrapf(ErrInvalidDecimals, "decimals %d, max %d", decimals, config.MAX_DECIMALS)
	}
	supply := new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(uint64(decimals)))
	supply.Mul(supply, uint256.NewInt(config.SUPPLY_BASE))
	if !supply.IsUint64() {
		return 0, ErrInvalidDecimals
	}
	return supply.Uint64(), nil
}

// NewConfig builds the configuration of a new token with the default fee schedule and cooldowns.
func NewConfig(name, symbol string, decimals uint8, marketingWallet, authority address.Address) (*tokentype.Config, error) {
	if marketingWallet.IsZero() {
		return nil, ErrInvalidMarketingWallet
	}
	if authority.IsZero() {
		return nil, errors.Wrap(ErrUnauthorized, "authority cannot be the zero address")
	}
	if len(name) == 0 || len(name) > config.MAX_NAME_LENGTH ||
		len(symbol) == 0 || len(symbol) > config.MAX_SYMBOL_LENGTH {
		return nil, errors.Wrapf(ErrInvalidMetadata, "name %q symbol %q", name, symbol)
	}

	supply, err := TotalSupply(decimals)
	if err != nil {
		return nil, err
	}

	return &tokentype.Config{
		Name:     name,
		Symbol:   symbol,
		Decimals: decimals,

		TotalSupply:     supply,
		TradingEnabled:  false,
		Authority:       authority,
		MarketingWallet: marketingWallet,

		MaxTransactionAmount: supply / config.MAX_TRANSACTION_DIVISOR,
		MaxWalletAmount:      supply / config.MAX_WALLET_DIVISOR,

		ReflectionFeeBp: config.DEFAULT_REFLECTION_FEE_BP,
		MarketingFeeBp:  config.DEFAULT_MARKETING_FEE_BP,
		BurnFeeBp:       config.DEFAULT_BURN_FEE_BP,
		DevFeeBp:        config.DEFAULT_DEV_FEE_BP,

		BuyCooldown:         config.DEFAULT_BUY_COOLDOWN,
		SellCooldown:        config.DEFAULT_SELL_COOLDOWN,
		TransactionCooldown: config.DEFAULT_TRANSACTION_COOLDOWN,
	}, nil
}

// Initialize creates the token: it validates the parameters, asks the ledger for a new mint whose mint
// and freeze authority is authority, and stores the configuration. Nothing is stored if any step fails.
func (t *Token) Initialize(name, symbol string, decimals uint8, marketingWallet, authority address.Address) (*tokentype.Config, error) {
	t.configMut.Lock()
	defer t.configMut.Unlock()

	cfg, err := NewConfig(name, symbol, decimals, marketingWallet, authority)
	if err != nil {
		return nil, err
	}

	err = t.DB.View(func(txn adb.Txn) error {
		_, err := t.GetConfig(txn)
		if err == nil {
			return ErrAlreadyInitialized
		} else if !errors.Is(err, ErrNotInitialized) {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	cfg.Mint, err = t.Ledger.CreateMint(decimals, authority, authority)
	if err != nil {
		return nil, errors.Wrap(err, "creating mint")
	}

	err = t.DB.Update(func(txn adb.Txn) error {
		return t.SetConfig(txn, cfg)
	})
	if err != nil {
		Log.Errf("mint %s was created but the token config could not be saved: %v", cfg.Mint, err)
		return nil, err
	}

	Log.Infof("Initialized token %s (%s), mint %s", cfg.Name, cfg.Symbol, cfg.Mint)

	t.emit(TokenInitialized{
		Mint:            cfg.Mint,
		Authority:       cfg.Authority,
		TotalSupply:     cfg.TotalSupply,
		Decimals:        cfg.Decimals,
		MarketingWallet: cfg.MarketingWallet,
	})

	return cfg, nil
}

// updateConfig runs a privileged mutation: the config is loaded, the caller checked against the
// authority, f applied and the result saved, all in one database transaction.
func (t *Token) updateConfig(caller address.Address, f func(c *tokentype.Config) error) (*tokentype.Config, error) {
	var cfg *tokentype.Config
	err := t.DB.Update(func(txn adb.Txn) error {
		var err error
		cfg, err = t.GetConfig(txn)
		if err != nil {
			return err
		}
		err = authorize(cfg, caller)
		if err != nil {
			return err
		}
		err = f(cfg)
		if err != nil {
			return err
		}
		return t.SetConfig(txn, cfg)
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetTradingEnabled sets the trading gate. Setting the current value again is allowed and still emits
// a TradingStatusChanged event.
func (t *Token) SetTradingEnabled(caller address.Address, enabled bool) error {
	t.configMut.Lock()
	defer t.configMut.Unlock()

	_, err := t.updateConfig(caller, func(c *tokentype.Config) error {
		c.TradingEnabled = enabled
		return nil
	})
	if err != nil {
		return err
	}

	t.emit(TradingStatusChanged{
		Enabled:   enabled,
		Timestamp: t.Now(),
	})
	return nil
}

// UpdateFees replaces the four fee rates at once. The proposed rates must not sum above
// MAX_TOTAL_FEE_BP; otherwise the schedule is left unchanged.
func (t *Token) UpdateFees(caller address.Address, reflectionBp, marketingBp, burnBp, devBp uint16) error {
	t.configMut.Lock()
	defer t.configMut.Unlock()

	total := uint32(reflectionBp) + uint32(marketingBp) + uint32(burnBp) + uint32(devBp)

	_, err := t.updateConfig(caller, func(c *tokentype.Config) error {
		if total > config.MAX_TOTAL_FEE_BP {
			return errors.Wrapf(ErrInvalidFeeConfiguration, "total fee %d bp exceeds %d bp", total,
				config.MAX_TOTAL_FEE_BP)
		}
		c.ReflectionFeeBp = reflectionBp
		c.MarketingFeeBp = marketingBp
		c.BurnFeeBp = burnBp
		c.DevFeeBp = devBp
		return nil
	})
	if err != nil {
		return err
	}

	t.emit(FeesUpdated{
		ReflectionFeeBp: reflectionBp,
		MarketingFeeBp:  marketingBp,
		BurnFeeBp:       burnBp,
		DevFeeBp:        devBp,
		Timestamp:       t.Now(),
	})
	return nil
}
