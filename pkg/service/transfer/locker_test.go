package transfer

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountLocker_MutualExclusion(t *testing.T) {
	t.Parallel()
	l := newAccountLocker()
	a, b := uuid.New(), uuid.New()

	release, err := l.LockPair(context.Background(), a, b)
	require.NoError(t, err)

	acquired := make(chan struct{})
	go func() {
		r, err := l.LockPair(context.Background(), a, b)
		if err == nil {
			r()
		}
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("second LockPair acquired while first still held")
	case <-time.After(50 * time.Millisecond):
	}

	release()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("second LockPair never acquired after release")
	}
}

// A transfer and its reverse racing each other must not deadlock; lock order
// is by account id, not by argument order.
func TestAccountLocker_ReverseTransferNoDeadlock(t *testing.T) {
	t.Parallel()
	l := newAccountLocker()
	a, b := uuid.New(), uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			release, err := l.LockPair(context.Background(), a, b)
			if err == nil {
				release()
			}
		}()
		go func() {
			defer wg.Done()
			release, err := l.LockPair(context.Background(), b, a)
			if err == nil {
				release()
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("deadlock between transfer and its reverse")
	}
}

func TestAccountLocker_ContextExpiry(t *testing.T) {
	t.Parallel()
	l := newAccountLocker()
	a, b := uuid.New(), uuid.New()

	release, err := l.LockPair(context.Background(), a, b)
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = l.LockPair(ctx, a, b)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAccountLocker_ReleasesCleanUp(t *testing.T) {
	t.Parallel()
	l := newAccountLocker()
	a, b := uuid.New(), uuid.New()

	release, err := l.LockPair(context.Background(), a, b)
	require.NoError(t, err)
	release()

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.Empty(t, l.locks, "lock table must not accumulate entries")
}
