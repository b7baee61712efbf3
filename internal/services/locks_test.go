package services

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestKeyedMutex(t *testing.T) {
	t.Run("serializes_same_key", func(t *testing.T) {
		km := NewKeyedMutex()
		var inside, maxInside atomic.Int32
		var wg sync.WaitGroup

		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock := km.Lock("user-1")
				defer unlock()

				n := inside.Add(1)
				if n > maxInside.Load() {
					maxInside.Store(n)
				}
				inside.Add(-1)
			}()
		}
		wg.Wait()

		if maxInside.Load() != 1 {
			t.Errorf("expected at most one holder, saw %d", maxInside.Load())
		}
	})

	t.Run("independent_keys", func(t *testing.T) {
		km := NewKeyedMutex()
		unlockA := km.Lock("a")
		defer unlockA()

		done := make(chan struct{})
		go func() {
			unlock := km.Lock("b")
			unlock()
			close(done)
		}()
		<-done
	})

	t.Run("releases_entries", func(t *testing.T) {
		km := NewKeyedMutex()
		km.Lock("a")()
		km.Lock("b")()

		km.mu.Lock()
		defer km.mu.Unlock()
		if len(km.locks) != 0 {
			t.Errorf("expected no retained locks, got %d", len(km.locks))
		}
	})
}
