package ratelimit

import (
	"github.com/virel-project/virel-token/util"
)

// window length and ban duration, in seconds
const window = 60
const banDuration = 120

type info struct {
	Count     int
	LastClear int64
	BanEnds   int64
}

func New(maxPerMinute int) *Limit {
	return &Limit{
		maxPerMinute: maxPerMinute,
		info:         make(map[string]*info),
		now:          util.Time,
	}
}

// Limit counts actions per key (usually a remote IP) over a one minute window. A key that exceeds the limit
// is refused for two minutes.
type Limit struct {
	maxPerMinute int
	info         map[string]*info
	now          func() int64

	util.Mutex
}

func (l *Limit) CanAct(key string, amount int) bool {
	l.Lock()
	defer l.Unlock()

	t := l.now()

	inf := l.info[key]
	if inf == nil {
		inf = &info{LastClear: t}
		l.info[key] = inf
	}

	if inf.BanEnds > t {
		return false
	}
	if inf.LastClear+window < t {
		inf.LastClear = t
		inf.Count = 0
	}

	inf.Count += amount

	if inf.Count > l.maxPerMinute {
		inf.BanEnds = t + banDuration
		return false
	}
	return true
}
