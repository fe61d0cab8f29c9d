//go:build testnet

package config

const RPC_BIND_PORT = 16320

const NETWORK_NAME = "testnet"
