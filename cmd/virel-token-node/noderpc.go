package main

import (
	"errors"
	"fmt"

	"github.com/virel-project/virel-token/adb"
	"github.com/virel-project/virel-token/address"
	"github.com/virel-project/virel-token/config"
	"github.com/virel-project/virel-token/ledger"
	"github.com/virel-project/virel-token/rpc"
	"github.com/virel-project/virel-token/rpc/rpcserver"
	"github.com/virel-project/virel-token/rpc/tokenrpc"
	"github.com/virel-project/virel-token/token"
	"github.com/virel-project/virel-token/tokentype"
)

const HOLDER_LIST_PAGE_SIZE = 25

func startRpc(n *Node, ip string, port uint16, restricted bool, auth string) {
	bind := fmt.Sprintf("%s:%d", ip, port)
	newRpcServer(n, restricted, auth).Start(bind)
	Log.Infof("RPC server listening on %s", bind)
}

// rpcError converts an error of the token engine or of the ledger into a JSON-RPC error
func rpcError(err error) *rpc.Error {
	code := tokenrpc.CodeInternal
	switch {
	case errors.Is(err, token.ErrNotInitialized):
		code = tokenrpc.CodeNotInitialized
	case errors.Is(err, token.ErrAlreadyInitialized):
		code = tokenrpc.CodeAlreadyInitialized
	case errors.Is(err, token.ErrUnauthorized), errors.Is(err, ledger.ErrUnauthorizedSigner):
		code = tokenrpc.CodeUnauthorized
	case errors.Is(err, token.ErrTradingNotEnabled):
		code = tokenrpc.CodeTradingNotEnabled
	case errors.Is(err, token.ErrExceedsMaxTransaction):
		code = tokenrpc.CodeExceedsMaxTransaction
	case errors.Is(err, token.ErrCooldownNotElapsed):
		code = tokenrpc.CodeCooldownNotElapsed
	case errors.Is(err, token.ErrInvalidFeeConfiguration):
		code = tokenrpc.CodeInvalidFeeConfiguration
	case errors.Is(err, token.ErrInvalidMarketingWallet):
		code = tokenrpc.CodeInvalidMarketingWallet
	case errors.Is(err, token.ErrInvalidDecimals), errors.Is(err, token.ErrInvalidMetadata),
		errors.Is(err, token.ErrAmountOverflow):
		code = tokenrpc.CodeInvalidParameters
	case errors.Is(err, ledger.ErrUnknownMint), errors.Is(err, ledger.ErrInvalidAccount),
		errors.Is(err, ledger.ErrAccountFrozen), errors.Is(err, ledger.ErrInsufficientFunds),
		errors.Is(err, ledger.ErrNoFreezeAuthority), errors.Is(err, ledger.ErrSupplyOverflow):
		code = tokenrpc.CodeLedger
	default:
		Log.Err("rpc internal error:", err)
		return &rpc.Error{
			Code:    code,
			Message: "internal error",
		}
	}
	return &rpc.Error{
		Code:    code,
		Message: err.Error(),
	}
}

func newRpcServer(n *Node, restricted bool, auth string) *rpcserver.Server {
	ratelimitCount := config.RPC_RATELIMIT_PRIVATE
	if restricted {
		ratelimitCount = config.RPC_RATELIMIT_PUBLIC
	}

	rs := rpcserver.New(rpcserver.Config{
		Restricted:     restricted,
		Authentication: auth,
		RateLimit:      ratelimitCount,
	})

	rs.Handle("get_info", func(c *rpcserver.Context) {
		params := tokenrpc.GetInfoRequest{}
		err := c.GetParams(&params)
		if err != nil {
			return
		}

		res := tokenrpc.GetInfoResponse{
			Network: config.NETWORK_NAME,
			Version: version.String(),
		}

		err = n.DB.View(func(txn adb.Txn) error {
			cfg, err := n.Token.GetConfig(txn)
			if errors.Is(err, token.ErrNotInitialized) {
				return nil
			} else if err != nil {
				return err
			}
			res.Initialized = true
			res.Name = cfg.Name
			res.Symbol = cfg.Symbol
			res.Decimals = cfg.Decimals
			res.Mint = cfg.Mint
			res.TotalSupply = cfg.TotalSupply
			res.Authority = cfg.Authority
			res.MarketingWallet = cfg.MarketingWallet
			res.TradingEnabled = cfg.TradingEnabled
			res.MaxTransactionAmount = cfg.MaxTransactionAmount
			res.MaxWalletAmount = cfg.MaxWalletAmount
			res.ReflectionFeeBp = cfg.ReflectionFeeBp
			res.MarketingFeeBp = cfg.MarketingFeeBp
			res.BurnFeeBp = cfg.BurnFeeBp
			res.DevFeeBp = cfg.DevFeeBp
			res.TotalFeeBp = cfg.TotalFeeBp()
			res.BuyCooldown = cfg.BuyCooldown
			res.SellCooldown = cfg.SellCooldown
			res.TransactionCooldown = cfg.TransactionCooldown

			res.Holders, err = txn.Entries(n.Token.Index.Holder)
			return err
		})
		if err != nil {
			c.ErrorResponse(rpcError(err))
			return
		}

		c.SuccessResponse(res)
	})

	rs.Handle("get_holder", func(c *rpcserver.Context) {
		params := tokenrpc.GetHolderRequest{}
		err := c.GetParams(&params)
		if err != nil {
			return
		}

		var res tokenrpc.GetHolderResponse
		err = n.DB.View(func(txn adb.Txn) error {
			cfg, err := n.Token.GetConfig(txn)
			if err != nil {
				return err
			}
			res.Found = txn.Get(n.Token.Index.Holder, params.Address[:]) != nil
			h, err := n.Token.GetHolder(txn, params.Address)
			if err != nil {
				return err
			}
			res.LastTransaction = h.LastTransaction
			res.TotalTransactions = h.TotalTransactions
			res.TotalAmount = h.TotalAmount
			res.LastReflectionClaim = h.LastReflectionClaim
			res.NextTransfer = h.LastTransaction + cfg.TransactionCooldown
			return nil
		})
		if err != nil {
			c.ErrorResponse(rpcError(err))
			return
		}

		c.SuccessResponse(res)
	})

	rs.Handle("list_holders", func(c *rpcserver.Context) {
		params := tokenrpc.ListHoldersRequest{}
		err := c.GetParams(&params)
		if err != nil {
			return
		}

		res := tokenrpc.ListHoldersResponse{
			Holders: []tokenrpc.HolderEntry{},
		}

		var count uint64
		err = n.DB.View(func(txn adb.Txn) (err error) {
			count, err = txn.Entries(n.Token.Index.Holder)
			return
		})
		if err != nil {
			c.ErrorResponse(rpcError(err))
			return
		}
		if count > 0 {
			res.MaxPage = (count - 1) / HOLDER_LIST_PAGE_SIZE
		}
		if params.Page > res.MaxPage {
			c.SuccessResponse(res)
			return
		}

		skip := params.Page * HOLDER_LIST_PAGE_SIZE
		err = n.Token.Holders(func(addr address.Address, h *tokentype.Holder) bool {
			if skip > 0 {
				skip--
				return false
			}
			res.Holders = append(res.Holders, tokenrpc.HolderEntry{
				Address:           addr,
				LastTransaction:   h.LastTransaction,
				TotalTransactions: h.TotalTransactions,
				TotalAmount:       h.TotalAmount,
			})
			return len(res.Holders) >= HOLDER_LIST_PAGE_SIZE
		})
		if err != nil {
			c.ErrorResponse(rpcError(err))
			return
		}

		c.SuccessResponse(res)
	})

	rs.Handle("get_balance", func(c *rpcserver.Context) {
		params := tokenrpc.GetBalanceRequest{}
		err := c.GetParams(&params)
		if err != nil {
			return
		}

		cfg, err := n.Token.Config()
		if err != nil {
			c.ErrorResponse(rpcError(err))
			return
		}
		bal, err := n.Bank.Balance(cfg.Mint, params.Address)
		if err != nil {
			c.ErrorResponse(rpcError(err))
			return
		}

		c.SuccessResponse(tokenrpc.GetBalanceResponse{
			Balance: bal,
		})
	})

	// state-changing methods trust the caller addresses in their params, so they are private only
	if !restricted {
		rs.Handle("initialize", func(c *rpcserver.Context) {
			params := tokenrpc.InitializeRequest{}
			err := c.GetParams(&params)
			if err != nil {
				return
			}

			cfg, err := n.Token.Initialize(params.Name, params.Symbol, params.Decimals, params.MarketingWallet,
				params.Authority)
			if err != nil {
				Log.Debug("initialize failed:", err)
				c.ErrorResponse(rpcError(err))
				return
			}

			c.SuccessResponse(tokenrpc.InitializeResponse{
				Mint:                 cfg.Mint,
				TotalSupply:          cfg.TotalSupply,
				MaxTransactionAmount: cfg.MaxTransactionAmount,
				MaxWalletAmount:      cfg.MaxWalletAmount,
			})
		})

		rs.Handle("set_trading_enabled", func(c *rpcserver.Context) {
			params := tokenrpc.SetTradingEnabledRequest{}
			err := c.GetParams(&params)
			if err != nil {
				return
			}

			err = n.Token.SetTradingEnabled(params.Caller, params.Enabled)
			if err != nil {
				c.ErrorResponse(rpcError(err))
				return
			}

			c.SuccessResponse(tokenrpc.SetTradingEnabledResponse{
				TradingEnabled: params.Enabled,
			})
		})

		rs.Handle("update_fees", func(c *rpcserver.Context) {
			params := tokenrpc.UpdateFeesRequest{}
			err := c.GetParams(&params)
			if err != nil {
				return
			}

			err = n.Token.UpdateFees(params.Caller, params.ReflectionFeeBp, params.MarketingFeeBp, params.BurnFeeBp,
				params.DevFeeBp)
			if err != nil {
				c.ErrorResponse(rpcError(err))
				return
			}

			c.SuccessResponse(tokenrpc.UpdateFeesResponse{
				TotalFeeBp: uint32(params.ReflectionFeeBp) + uint32(params.MarketingFeeBp) +
					uint32(params.BurnFeeBp) + uint32(params.DevFeeBp),
			})
		})

		rs.Handle("transfer", func(c *rpcserver.Context) {
			params := tokenrpc.TransferRequest{}
			err := c.GetParams(&params)
			if err != nil {
				return
			}

			receipt, err := n.Token.Transfer(token.TransferRequest{
				From:            params.From,
				To:              params.To,
				MarketingWallet: params.MarketingWallet,
				Caller:          params.Caller,
				Amount:          params.Amount,
			})
			if err != nil {
				Log.Debug("transfer failed:", err)
				c.ErrorResponse(rpcError(err))
				return
			}

			c.SuccessResponse(tokenrpc.TransferResponse{
				NetAmount: receipt.NetAmount,
				Fees:      receipt.Fees,
				Timestamp: receipt.Timestamp,
			})
		})

		rs.Handle("mint_to", func(c *rpcserver.Context) {
			params := tokenrpc.MintToRequest{}
			err := c.GetParams(&params)
			if err != nil {
				return
			}

			cfg, err := n.Token.Config()
			if err != nil {
				c.ErrorResponse(rpcError(err))
				return
			}
			err = n.Bank.MintTo(cfg.Mint, params.Authority, params.To, params.Amount)
			if err != nil {
				c.ErrorResponse(rpcError(err))
				return
			}
			bal, err := n.Bank.Balance(cfg.Mint, params.To)
			if err != nil {
				c.ErrorResponse(rpcError(err))
				return
			}

			c.SuccessResponse(tokenrpc.MintToResponse{
				Balance: bal,
			})
		})

		freezeHandler := func(frozen bool) rpcserver.Handler {
			return func(c *rpcserver.Context) {
				params := tokenrpc.FreezeRequest{}
				err := c.GetParams(&params)
				if err != nil {
					return
				}

				cfg, err := n.Token.Config()
				if err != nil {
					c.ErrorResponse(rpcError(err))
					return
				}
				if frozen {
					err = n.Bank.Freeze(cfg.Mint, params.Authority, params.Account)
				} else {
					err = n.Bank.Thaw(cfg.Mint, params.Authority, params.Account)
				}
				if err != nil {
					c.ErrorResponse(rpcError(err))
					return
				}

				c.SuccessResponse(tokenrpc.FreezeResponse{})
			}
		}
		rs.Handle("freeze", freezeHandler(true))
		rs.Handle("thaw", freezeHandler(false))
	}

	return rs
}
