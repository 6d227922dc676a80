package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per key. Mutexes are created on first use and never freed,
// so keys should come from a bounded population such as user ids.
type LockManager[K comparable] struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager[K comparable]() *LockManager[K] {
	return &LockManager[K]{}
}

// GetLock returns the mutex for the given key
func (lm *LockManager[K]) GetLock(key K) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Lock acquires the key's mutex and returns the matching unlock
func (lm *LockManager[K]) Lock(key K) func() {
	mu := lm.GetLock(key)
	mu.Lock()
	return mu.Unlock
}
