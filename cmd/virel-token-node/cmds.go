package main

import (
	"os"
	"runtime/pprof"
	"strconv"
	"strings"

	"github.com/virel-project/virel-token/address"
	"github.com/virel-project/virel-token/ledger"
	"github.com/virel-project/virel-token/logger"
	"github.com/virel-project/virel-token/rpc"
	"github.com/virel-project/virel-token/token"
	"github.com/virel-project/virel-token/tokentype"
	"github.com/virel-project/virel-token/util"
	"github.com/virel-project/virel-token/wallet"

	"github.com/ergochat/readline"
)

type Cmd struct {
	Names  []string
	Action func(args []string)
	Args   string
}

var commands = Commands{}

type Commands []Cmd

// Readline will pass the whole line and current offset to it
// Completer need to pass all the candidates, and how long they shared the same characters in line
// Example:
//
// [go, git, git-shell, grep]
// Do("g", 1) => ["o", "it", "it-shell", "rep"], 1
// Do("gi", 2) => ["t", "t-shell"], 2
// Do("git", 3) => ["", "-shell"], 3
func (c Commands) Do(line []rune, pos int) (newLine [][]rune, length int) {
	if len(line) == 0 {
		return [][]rune{}, 0
	}

	lineStr := string(line)

	sols := [][]rune{}

	for _, v := range c {
		name := v.Names[0]
		if len(name) >= len(lineStr) && name[:len(lineStr)] == lineStr {
			sols = append(sols, []rune(name[len(lineStr):]))
		}
	}

	return sols, pos
}

// Find returns the command called name, or nil
func (c Commands) Find(name string) *Cmd {
	for i, v := range c {
		for _, v2 := range v.Names {
			if v2 == name {
				return &c[i]
			}
		}
	}
	return nil
}

func parseAddresses(args []string, n int) ([]address.Address, bool) {
	if len(args) < n {
		Log.Err("not enough arguments, use help to see the usage")
		return nil, false
	}
	addrs := make([]address.Address, n)
	for i := range addrs {
		var err error
		addrs[i], err = address.FromString(args[i])
		if err != nil {
			Log.Errf("invalid address %q: %v", args[i], err)
			return nil, false
		}
	}
	return addrs, true
}

func parseAmount(s string) (uint64, bool) {
	amt, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		Log.Errf("invalid amount %q: %v", s, err)
		return 0, false
	}
	return amt, true
}

func printConfig(cfg *tokentype.Config) {
	Log.Infof("Token: %s (%s), decimals %d", cfg.Name, cfg.Symbol, cfg.Decimals)
	Log.Infof("Mint: %s", cfg.Mint)
	Log.Infof("Total supply: %s", util.FormatAmount(cfg.TotalSupply, cfg.Decimals))
	Log.Infof("Authority: %s", cfg.Authority)
	Log.Infof("Marketing wallet: %s", cfg.MarketingWallet)
	Log.Infof("Trading enabled: %v", cfg.TradingEnabled)
	Log.Infof("Max transaction: %s; max wallet: %s", util.FormatAmount(cfg.MaxTransactionAmount, cfg.Decimals),
		util.FormatAmount(cfg.MaxWalletAmount, cfg.Decimals))
	Log.Infof("Fees: reflection %s, marketing %s, burn %s, dev %s (total %s)", util.FormatBp(cfg.ReflectionFeeBp),
		util.FormatBp(cfg.MarketingFeeBp), util.FormatBp(cfg.BurnFeeBp), util.FormatBp(cfg.DevFeeBp),
		util.FormatBp(cfg.TotalFeeBp()))
	Log.Infof("Cooldowns: transaction %ds, buy %ds, sell %ds", cfg.TransactionCooldown, cfg.BuyCooldown,
		cfg.SellCooldown)
}

func setFrozen(n *Node, args []string, frozen bool) {
	addrs, ok := parseAddresses(args, 2)
	if !ok {
		return
	}
	cfg, err := n.Token.Config()
	if err != nil {
		Log.Err(err)
		return
	}
	if frozen {
		err = n.Bank.Freeze(cfg.Mint, addrs[0], addrs[1])
	} else {
		err = n.Bank.Thaw(cfg.Mint, addrs[0], addrs[1])
	}
	if err != nil {
		Log.Err(err)
		return
	}
	Log.Infof("Account %s frozen: %v", addrs[1], frozen)
}

func prompts(n *Node) {
	commands = append(commands, []Cmd{{
		Names: []string{"status", "info"},
		Args:  "",
		Action: func(args []string) {
			cfg, err := n.Token.Config()
			if err != nil {
				Log.Err(err)
				return
			}
			printConfig(cfg)

			n.stats.Lock()
			defer n.stats.Unlock()
			Log.Infof("Since startup: %d transfers, net volume %s", n.stats.Transfers,
				util.FormatAmount(n.stats.NetVolume, cfg.Decimals))
			Log.Infof("Fees: reflection %s, marketing %s, burn %s, dev %s",
				util.FormatAmount(n.stats.ReflectionFees, cfg.Decimals),
				util.FormatAmount(n.stats.MarketingFees, cfg.Decimals),
				util.FormatAmount(n.stats.BurnFees, cfg.Decimals),
				util.FormatAmount(n.stats.DevFees, cfg.Decimals))
		},
	}, {
		Names: []string{"exit", "quit"},
		Args:  "",
		Action: func(args []string) {
			n.Close()
			os.Exit(0)
		},
	}, {
		Names: []string{"help"},
		Args:  "",
		Action: func(args []string) {
			Log.Info("List of available commands:")
			for _, v := range commands {
				Log.Infof("%s %s", util.PadL(v.Names[0], 20), v.Args)
			}
		},
	}, {
		Names: []string{"set_log_level"},
		Args:  "<level>",
		Action: func(args []string) {
			if len(args) < 1 {
				Log.Err("usage: set_log_level <level>")
				return
			}
			lvl, err := strconv.ParseUint(args[0], 10, 8)
			if err != nil {
				Log.Err(err)
				return
			}
			Log.SetLogLevel(uint8(lvl))
			Log.Info("log level set to", lvl)
		},
	}, {
		Names: []string{"keygen"},
		Args:  "[mnemonic words...]",
		Action: func(args []string) {
			var keys *wallet.Keys
			var err error
			if len(args) > 0 {
				keys, err = wallet.KeysFromMnemonic(strings.Join(args, " "))
			} else {
				keys, err = wallet.NewKeys()
			}
			if err != nil {
				Log.Err(err)
				return
			}
			Log.Info("Address:", keys.Address)
			Log.Info("Mnemonic:", keys.Mnemonic)
		},
	}, {
		Names: []string{"initialize", "init"},
		Args:  "<name> <symbol> <decimals> <marketing wallet> <authority>",
		Action: func(args []string) {
			if len(args) < 5 {
				Log.Err("usage: initialize <name> <symbol> <decimals> <marketing wallet> <authority>")
				return
			}
			decimals, err := strconv.ParseUint(args[2], 10, 8)
			if err != nil {
				Log.Err("invalid decimals:", err)
				return
			}
			addrs, ok := parseAddresses(args[3:], 2)
			if !ok {
				return
			}
			cfg, err := n.Token.Initialize(args[0], args[1], uint8(decimals), addrs[0], addrs[1])
			if err != nil {
				Log.Err(err)
				return
			}
			printConfig(cfg)
		},
	}, {
		Names: []string{"enable_trading"},
		Args:  "<authority>",
		Action: func(args []string) {
			addrs, ok := parseAddresses(args, 1)
			if !ok {
				return
			}
			err := n.Token.SetTradingEnabled(addrs[0], true)
			if err != nil {
				Log.Err(err)
			}
		},
	}, {
		Names: []string{"disable_trading"},
		Args:  "<authority>",
		Action: func(args []string) {
			addrs, ok := parseAddresses(args, 1)
			if !ok {
				return
			}
			err := n.Token.SetTradingEnabled(addrs[0], false)
			if err != nil {
				Log.Err(err)
			}
		},
	}, {
		Names: []string{"update_fees"},
		Args:  "<authority> <reflection bp> <marketing bp> <burn bp> <dev bp>",
		Action: func(args []string) {
			addrs, ok := parseAddresses(args, 1)
			if !ok {
				return
			}
			if len(args) < 5 {
				Log.Err("usage: update_fees <authority> <reflection bp> <marketing bp> <burn bp> <dev bp>")
				return
			}
			var bps [4]uint16
			for i := range bps {
				v, err := strconv.ParseUint(args[i+1], 10, 16)
				if err != nil {
					Log.Errf("invalid fee %q: %v", args[i+1], err)
					return
				}
				bps[i] = uint16(v)
			}
			err := n.Token.UpdateFees(addrs[0], bps[0], bps[1], bps[2], bps[3])
			if err != nil {
				Log.Err(err)
			}
		},
	}, {
		Names: []string{"transfer"},
		Args:  "<from> <to> <amount>",
		Action: func(args []string) {
			addrs, ok := parseAddresses(args, 2)
			if !ok {
				return
			}
			if len(args) < 3 {
				Log.Err("usage: transfer <from> <to> <amount>")
				return
			}
			amt, ok := parseAmount(args[2])
			if !ok {
				return
			}
			receipt, err := n.Token.Transfer(token.TransferRequest{
				From:   addrs[0],
				To:     addrs[1],
				Caller: addrs[0],
				Amount: amt,
			})
			if err != nil {
				Log.Err(err)
				return
			}
			Log.Infof("Transferred %d (net %d), fees %+v", receipt.Amount, receipt.NetAmount, receipt.Fees)
		},
	}, {
		Names: []string{"mint_to", "mint"},
		Args:  "<authority> <to> <amount>",
		Action: func(args []string) {
			addrs, ok := parseAddresses(args, 2)
			if !ok {
				return
			}
			if len(args) < 3 {
				Log.Err("usage: mint_to <authority> <to> <amount>")
				return
			}
			amt, ok := parseAmount(args[2])
			if !ok {
				return
			}
			cfg, err := n.Token.Config()
			if err != nil {
				Log.Err(err)
				return
			}
			err = n.Bank.MintTo(cfg.Mint, addrs[0], addrs[1], amt)
			if err != nil {
				Log.Err(err)
				return
			}
			Log.Infof("Minted %s to %s", util.FormatAmount(amt, cfg.Decimals), addrs[1])
		},
	}, {
		Names: []string{"freeze"},
		Args:  "<freeze authority> <account>",
		Action: func(args []string) {
			setFrozen(n, args, true)
		},
	}, {
		Names: []string{"thaw"},
		Args:  "<freeze authority> <account>",
		Action: func(args []string) {
			setFrozen(n, args, false)
		},
	}, {
		Names: []string{"balance"},
		Args:  "<address>",
		Action: func(args []string) {
			addrs, ok := parseAddresses(args, 1)
			if !ok {
				return
			}
			cfg, err := n.Token.Config()
			if err != nil {
				Log.Err(err)
				return
			}
			bal, err := n.Bank.Balance(cfg.Mint, addrs[0])
			if err != nil {
				Log.Err(err)
				return
			}
			Log.Infof("Balance of %s: %s %s", addrs[0], util.FormatAmount(bal, cfg.Decimals), cfg.Symbol)
		},
	}, {
		Names: []string{"holder"},
		Args:  "<address>",
		Action: func(args []string) {
			addrs, ok := parseAddresses(args, 1)
			if !ok {
				return
			}
			h, found, err := n.Token.Holder(addrs[0])
			if err != nil {
				Log.Err(err)
				return
			}
			if !found {
				Log.Info("holder has never transferred")
				return
			}
			Log.Info(h)
		},
	}, {
		Names: []string{"holders", "print_holders"},
		Args:  "",
		Action: func(args []string) {
			count := 0
			err := n.Token.Holders(func(addr address.Address, h *tokentype.Holder) bool {
				count++
				Log.Infof("%s %s", addr, h)
				return false
			})
			if err != nil {
				Log.Err(err)
				return
			}
			Log.Infof("%d holders", count)
		},
	}}...)

	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[32m>\033[0m ",
		AutoComplete:    commands,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()

	l.CaptureExitSignal()

	for _, lg := range []*logger.Log{Log, ledger.Log, rpc.Log} {
		lg.SetStdout(l.Stdout())
		lg.SetStderr(l.Stderr())
	}

	for {
		line, err := l.ReadLine()
		if err != nil {
			Log.Err(err)
			if len(*cpu_profile) > 0 {
				pprof.StopCPUProfile()
			}
			n.Close()
			os.Exit(0)
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}

		cmd := commands.Find(args[0])
		if cmd == nil {
			Log.Err("unknown command, use help to see a list of commands")
			continue
		}
		cmd.Action(args[1:])
	}
}
