package util

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/virel-project/virel-token/config"

	"github.com/sasha-s/go-deadlock"
)

var ErrOverflow = errors.New("overflow")

// returns the current timestamp (UNIX seconds)
func Time() int64 {
	return time.Now().Unix()
}

func FormatInt[V int | int64 | int32 | int16 | int8 | uint8 | uint16 | uint32](n V) string {
	return strconv.FormatInt(int64(n), 10)
}
func FormatUint[V uint | uint8 | uint16 | uint32 | uint64](n V) string {
	return strconv.FormatUint(uint64(n), 10)
}

// FormatAmount prints an atomic token amount as a decimal number with the given number of decimals.
func FormatAmount(n uint64, decimals uint8) string {
	s := strconv.FormatUint(n, 10)
	if decimals == 0 {
		return s
	}

	for len(s) < int(decimals)+1 {
		s = "0" + s
	}

	return s[:len(s)-int(decimals)] + "." + s[len(s)-int(decimals):]
}

// FormatBp prints a basis point value as a percentage, e.g. 150 -> "1.50%"
func FormatBp[V uint16 | uint32 | uint64](bp V) string {
	return FormatAmount(uint64(bp), 2) + "%"
}

func PadR(s string, l int) string {
	for len(s) < l {
		s = " " + s
	}
	return s
}
func PadL(s string, l int) string {
	for len(s) < l {
		s = s + " "
	}
	return s
}

func init() {
	deadlock.Opts.DeadlockTimeout = config.DEADLOCK_TIMEOUT * time.Second
}

type Mutex = deadlock.Mutex
type RWMutex = deadlock.RWMutex

func RemovePort(s string) string {
	return strings.Split(s, ":")[0]
}

func SafeAdd(a, b uint64) (uint64, error) {
	if a+b < a {
		return 0, ErrOverflow
	}
	return a + b, nil
}
