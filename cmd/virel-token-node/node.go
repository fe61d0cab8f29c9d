package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/pprof"
	"strings"
	"syscall"

	"github.com/virel-project/virel-token/adb"
	"github.com/virel-project/virel-token/adb/boltdb"
	"github.com/virel-project/virel-token/adb/lmdb"
	"github.com/virel-project/virel-token/config"
	"github.com/virel-project/virel-token/ledger"
	"github.com/virel-project/virel-token/logger"
	"github.com/virel-project/virel-token/rpc"
	"github.com/virel-project/virel-token/token"
	"github.com/virel-project/virel-token/util"
	"github.com/virel-project/virel-token/util/updatechecker"

	"golang.org/x/term"
)

var Log = logger.New()

var defaultDataDir string

var version = updatechecker.Version{
	Major: config.VERSION_MAJOR,
	Minor: config.VERSION_MINOR,
	Patch: config.VERSION_PATCH,
}

func init() {
	token.Log = Log

	home, err := os.UserHomeDir()
	if err != nil {
		Log.Fatal(err)
	}

	defaultDataDir = filepath.Join(home, config.NAME+"-"+config.NETWORK_NAME)
}

var cpu_profile = flag.String("cpu-profile", "", "write cpu profile to the provided file")

// Node ties the token engine to the ledger it runs on.
type Node struct {
	DB    adb.DB
	Bank  *ledger.Bank
	Token *token.Token

	stats stats
}

// stats are the token activity counters since the node started
type stats struct {
	Transfers       uint64
	NetVolume       uint64
	ReflectionFees  uint64
	MarketingFees   uint64
	BurnFees        uint64
	DevFees         uint64
	FeeScheduleSets uint64

	util.Mutex
}

func NewNode(db adb.DB) (*Node, error) {
	bank, err := ledger.NewBank(db)
	if err != nil {
		return nil, err
	}
	tk, err := token.New(db, bank)
	if err != nil {
		return nil, err
	}

	n := &Node{
		DB:    db,
		Bank:  bank,
		Token: tk,
	}
	tk.Subscribe(n.onEvent)
	return n, nil
}

func (n *Node) onEvent(e token.Event) {
	n.stats.Lock()
	defer n.stats.Unlock()

	switch e := e.(type) {
	case token.TransferExecuted:
		n.stats.Transfers++
		n.stats.NetVolume += e.Amount
	case token.FeesCollected:
		n.stats.ReflectionFees += e.ReflectionAmount
		n.stats.MarketingFees += e.MarketingAmount
		n.stats.BurnFees += e.BurnAmount
		n.stats.DevFees += e.DevAmount
	case token.FeesUpdated:
		n.stats.FeeScheduleSets++
	}
}

func (n *Node) Close() {
	err := n.DB.Close()
	if err != nil {
		Log.Err("failed to close database:", err)
	}
}

func openDB(kind, dataDir string) (adb.DB, error) {
	switch kind {
	case "bolt":
		return boltdb.New(filepath.Join(dataDir, "token.db"), 0o600)
	case "lmdb":
		return lmdb.New(filepath.Join(dataDir, "lmdb"), 0o755, Log)
	}
	return nil, fmt.Errorf("unknown database %q, expected bolt or lmdb", kind)
}

func main() {
	print_version := flag.Bool("version", false, "prints version and exits")
	public_rpc := flag.Bool("public-rpc", false, "required for public RPC nodes: serves read methods only, blocks foreign origins and binds on 0.0.0.0")
	rpc_bind_port := flag.Uint("rpc-bind-port", config.RPC_BIND_PORT, "starts RPC server on this port")
	rpc_auth := flag.String("rpc-auth", "", "username:password required to access the RPC server")
	log_level := flag.Uint("log-level", 1, "sets the log level")
	non_interactive := flag.Bool("non-interactive", false, "if set, the node will not process the stdinput. Useful for running as a service.")
	data_dir := flag.String("data-dir", defaultDataDir, "sets the data directory which contains the token database")
	db_kind := flag.String("db", "bolt", "database backend: bolt or lmdb")
	no_update_check := flag.Bool("no-update-check", false, "disables update checking")

	flag.Parse()

	if *print_version {
		fmt.Printf("%s-node v%v\n", config.NAME, version)
		os.Exit(0)
	}

	if !*no_update_check {
		go updatechecker.RunUpdateChecker(Log, config.UPDATE_CHECK_URL, version)
	}

	if *cpu_profile != "" {
		f, err := os.Create(*cpu_profile)
		if err != nil {
			Log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			Log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	Log.SetLogLevel(uint8(*log_level))
	ledger.Log = Log.Named("ledger")
	rpc.Log = Log.Named("rpc")

	Log.Info("Starting", config.NETWORK_NAME, "token node")
	Log.Infof("Version: %v", version)
	if config.NETWORK_NAME != "mainnet" {
		Log.Warn("This is a", strings.ToUpper(config.NETWORK_NAME), "node, only for testing.")
		Log.Warn("Be aware that any amount transacted in", config.NETWORK_NAME, "is worthless.")
	}

	err := os.MkdirAll(*data_dir, 0o774)
	if err != nil {
		Log.Fatal("failed to create data dir:", err)
	}

	db, err := openDB(*db_kind, *data_dir)
	if err != nil {
		Log.Fatal(err)
	}

	n, err := NewNode(db)
	if err != nil {
		Log.Fatal(err)
	}

	cfg, err := n.Token.Config()
	if err == nil {
		Log.Infof("Token %s (%s), mint %s, trading enabled: %v", cfg.Name, cfg.Symbol, cfg.Mint, cfg.TradingEnabled)
	} else {
		Log.Warn("Token is not initialized yet, use the initialize command or RPC method")
	}

	bind_ip := "127.0.0.1"
	if *public_rpc {
		bind_ip = "0.0.0.0"
		Log.Info("Public RPC: only read methods are served")
	}

	startRpc(n, bind_ip, uint16(*rpc_bind_port), *public_rpc, *rpc_auth)

	if !*non_interactive && !term.IsTerminal(int(os.Stdin.Fd())) {
		Log.Info("stdin is not a terminal, running non-interactively")
		*non_interactive = true
	}

	if !*non_interactive {
		prompts(n)
	} else {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		Log.Info("Shutting down")
		n.Close()
	}
}
