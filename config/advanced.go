package config

// This file holds advanced config options. You shouldn't edit these options unless you really know what you
// are doing.

const VERSION = VERSION_MAJOR<<32 + VERSION_MINOR<<16 + VERSION_PATCH

const ADDRESS_PREFIX = "v"

// max RPC requests per minute from a single IP
const RPC_RATELIMIT_PRIVATE = 100_000
const RPC_RATELIMIT_PUBLIC = 5_000

// Deadlock detector timeout for util.Mutex, in seconds
const DEADLOCK_TIMEOUT = 30
