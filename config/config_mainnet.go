//go:build !testnet && !unittest

package config

const RPC_BIND_PORT = 6320

const NETWORK_NAME = "mainnet"
