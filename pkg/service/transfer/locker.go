package transfer

import (
	"bytes"
	"context"
	"sync"

	"github.com/google/uuid"
)

// accountLocker serializes transfers per account. Locks are acquired in
// ascending account-id order so a transfer and its reverse can never
// deadlock. Entries are refcounted and removed once unused, so the map does
// not grow with the account population.
type accountLocker struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*accountLock
}

type accountLock struct {
	ch   chan struct{} // capacity 1; holding the token means holding the lock
	refs int
}

func newAccountLocker() *accountLocker {
	return &accountLocker{locks: make(map[uuid.UUID]*accountLock)}
}

func (l *accountLocker) acquire(ctx context.Context, id uuid.UUID) error {
	l.mu.Lock()
	al, ok := l.locks[id]
	if !ok {
		al = &accountLock{ch: make(chan struct{}, 1)}
		l.locks[id] = al
	}
	al.refs++
	l.mu.Unlock()

	select {
	case al.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		l.release(id, false)
		return ctx.Err()
	}
}

func (l *accountLocker) release(id uuid.UUID, held bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	al := l.locks[id]
	if held {
		<-al.ch
	}
	al.refs--
	if al.refs == 0 {
		delete(l.locks, id)
	}
}

// LockPair acquires both account locks in id order and returns a release
// function. On context expiry nothing stays held and ctx.Err() is returned.
func (l *accountLocker) LockPair(ctx context.Context, a, b uuid.UUID) (func(), error) {
	first, second := a, b
	if bytes.Compare(b[:], a[:]) < 0 {
		first, second = b, a
	}
	if err := l.acquire(ctx, first); err != nil {
		return nil, err
	}
	if err := l.acquire(ctx, second); err != nil {
		l.release(first, true)
		return nil, err
	}
	return func() {
		l.release(second, true)
		l.release(first, true)
	}, nil
}
