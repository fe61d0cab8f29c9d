//go:build !testnet && unittest

package config

const RPC_BIND_PORT = 16390

const NETWORK_NAME = "unittest"
