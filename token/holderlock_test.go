package token

import (
	"sync"
	"testing"
	"time"

	"github.com/virel-project/virel-token/address"
)

func TestHolderLocks(t *testing.T) {
	h := newHolderLocks()
	a := address.Address{1}
	b := address.Address{2}

	unlockA := h.Lock(a)
	unlockB := h.Lock(b) // distinct holders don't block each other

	acquired := make(chan struct{})
	go func() {
		unlock := h.Lock(a)
		close(acquired)
		unlock()
	}()

	select {
	case <-acquired:
		t.Fatal("second lock on the same holder should block")
	case <-time.After(50 * time.Millisecond):
	}

	unlockA()
	<-acquired
	unlockB()

	if n := h.size(); n != 0 {
		t.Fatalf("expected no remaining locks, got %d", n)
	}
}

func TestHolderLocksSerialize(t *testing.T) {
	h := newHolderLocks()
	a := address.Address{1}

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := h.Lock(a)
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	if counter != 50 {
		t.Fatalf("expected 50, got %d", counter)
	}
	if h.size() != 0 {
		t.Fatal("locks were not released")
	}
}
