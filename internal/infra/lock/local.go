package lock

import (
	"context"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/salon-booking/internal/domain/appointment"
)

// localEntry counts the holder plus every waiter of one key; the entry is
// dropped once nobody references it.
type localEntry struct {
	ch   chan struct{}
	refs int
}

// LocalLocker serialises callers inside one process. It is used when no
// Redis address is configured.
type LocalLocker struct {
	mu    sync.Mutex
	slots map[string]*localEntry
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{slots: map[string]*localEntry{}}
}

func (l *LocalLocker) ref(key string) *localEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.slots[key]
	if !ok {
		e = &localEntry{ch: make(chan struct{}, 1)}
		l.slots[key] = e
	}
	e.refs++
	return e
}

func (l *LocalLocker) unref(key string, e *localEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e.refs--
	if e.refs == 0 {
		delete(l.slots, key)
	}
}

// Acquire ignores ttl: a local holder cannot vanish without releasing.
func (l *LocalLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	e := l.ref(key)

	select {
	case e.ch <- struct{}{}:
	case <-ctx.Done():
		l.unref(key, e)
		return nil, domain.ErrLockHeld
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-e.ch
			l.unref(key, e)
		})
	}, nil
}

// Len reports how many keys are currently held or awaited.
func (l *LocalLocker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.slots)
}

var _ domain.Locker = (*LocalLocker)(nil)
