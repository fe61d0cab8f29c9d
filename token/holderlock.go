package token

import (
	"github.com/virel-project/virel-token/address"
	"github.com/virel-project/virel-token/util"
)

// holderLocks hands out one exclusive lock per holder address. Entries are reference counted and removed
// once nobody holds or waits for them.
type holderLocks struct {
	mut   util.Mutex
	locks map[address.Address]*holderLock
}

type holderLock struct {
	util.Mutex
	refs int
}

func newHolderLocks() *holderLocks {
	return &holderLocks{
		locks: make(map[address.Address]*holderLock),
	}
}

// Lock blocks until addr is exclusively held by the caller and returns the function that releases it.
func (h *holderLocks) Lock(addr address.Address) (unlock func()) {
	h.mut.Lock()
	l := h.locks[addr]
	if l == nil {
		l = &holderLock{}
		h.locks[addr] = l
	}
	l.refs++
	h.mut.Unlock()

	l.Lock()

	return func() {
		l.Unlock()

		h.mut.Lock()
		defer h.mut.Unlock()
		l.refs--
		if l.refs == 0 {
			delete(h.locks, addr)
		}
	}
}

// size returns the number of addresses currently locked or waited on
func (h *holderLocks) size() int {
	h.mut.Lock()
	defer h.mut.Unlock()

	return len(h.locks)
}
