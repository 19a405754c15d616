// Package concurrency provides per-key mutual exclusion.
package concurrency

import "sync"

type keyLock struct {
	mu   sync.Mutex
	refs int
}

// LockManager serializes work per key. An entry lives only while some
// goroutine holds or waits for it, so idle users cost nothing.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*keyLock)}
}

// Lock blocks until key is free and returns the matching unlock func
func (lm *LockManager) Lock(key string) (unlock func()) {
	lm.mu.Lock()
	kl, ok := lm.locks[key]
	if !ok {
		kl = &keyLock{}
		lm.locks[key] = kl
	}
	kl.refs++
	lm.mu.Unlock()

	kl.mu.Lock()
	return func() {
		kl.mu.Unlock()

		lm.mu.Lock()
		kl.refs--
		if kl.refs == 0 {
			delete(lm.locks, key)
		}
		lm.mu.Unlock()
	}
}

// WithLock runs fn while holding the lock for key
func (lm *LockManager) WithLock(key string, fn func() error) error {
	unlock := lm.Lock(key)
	defer unlock()
	return fn()
}

// Len reports how many keys are currently held or awaited
func (lm *LockManager) Len() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}
