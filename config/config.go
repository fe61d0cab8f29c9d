package config

const NAME = "virel-token"

const VERSION_MAJOR = 1
const VERSION_MINOR = 0
const VERSION_PATCH = 0

// Every deployment mints one billion whole tokens; the atomic supply is SUPPLY_BASE * 10^decimals.
const SUPPLY_BASE = 1_000_000_000

// The largest decimals value for which the atomic supply still fits in an uint64.
const MAX_DECIMALS = 10

const MAX_NAME_LENGTH = 32
const MAX_SYMBOL_LENGTH = 32

// Anti-whale limits, as divisors of the total supply. These are fixed at creation and have no setter.
const MAX_TRANSACTION_DIVISOR = 1000 // 0.1% of total supply
const MAX_WALLET_DIVISOR = 100       // 1% of total supply

// Fees are expressed in basis points (1/10000)
const BASIS_POINTS = 10_000
const MAX_TOTAL_FEE_BP = 1_000 // 10%

const DEFAULT_REFLECTION_FEE_BP = 200 // 2%
const DEFAULT_MARKETING_FEE_BP = 150  // 1.5%
const DEFAULT_BURN_FEE_BP = 100       // 1%
const DEFAULT_DEV_FEE_BP = 50         // 0.5%

// Cooldown periods (in seconds). Only TRANSACTION_COOLDOWN is enforced on transfers.
const DEFAULT_BUY_COOLDOWN = 5 * 60
const DEFAULT_SELL_COOLDOWN = 30 * 60
const DEFAULT_TRANSACTION_COOLDOWN = 60

const UPDATE_CHECK_URL = "https://api.github.com/repos/virel-project/virel-token/releases/latest"
