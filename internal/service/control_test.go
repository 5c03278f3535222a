package service

import (
	"sync"
	"testing"
)

func TestControlSet_AcquireRelease(t *testing.T) {
	t.Parallel()

	c := NewControlSet()

	if c.Disabled(1) {
		t.Fatal("fresh control must be enabled")
	}
	if !c.Acquire(1) {
		t.Fatal("first Acquire must succeed")
	}
	if !c.Disabled(1) {
		t.Fatal("control must be disabled after Acquire")
	}
	if c.Acquire(1) {
		t.Fatal("second Acquire on a disabled control must fail")
	}
	// Controls are per id.
	if !c.Acquire(2) {
		t.Fatal("other ids must be unaffected")
	}
	c.Release(1)
	if c.Disabled(1) {
		t.Fatal("control must be enabled after Release")
	}
	if !c.Acquire(1) {
		t.Fatal("Acquire after Release must succeed")
	}
}

func TestControlSet_ReleaseWithoutAcquire(t *testing.T) {
	t.Parallel()

	c := NewControlSet()
	c.Release(5) // no-op
	if c.Disabled(5) {
		t.Fatal("control must stay enabled")
	}
}

func TestControlSet_ConcurrentAcquire(t *testing.T) {
	t.Parallel()

	c := NewControlSet()

	const attempts = 32
	var wg sync.WaitGroup
	wins := make(chan struct{}, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.Acquire(9) {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	n := 0
	for range wins {
		n++
	}
	if n != 1 {
		t.Fatalf("exactly one Acquire must win, got %d", n)
	}
}
