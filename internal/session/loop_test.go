package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func startLoop(t *testing.T) (*Loop, context.CancelFunc) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	l := NewLoop(8)
	go func() { _ = l.Run(ctx) }()
	t.Cleanup(cancel)

	return l, cancel
}

func TestLoop_RunsInSubmissionOrder(t *testing.T) {
	l, _ := startLoop(t)

	var got []int
	for i := 0; i < 100; i++ {
		l.Execute(func() { got = append(got, i) })
	}
	require.NoError(t, l.Do(context.Background(), func() {}))

	require.Len(t, got, 100)
	for i, v := range got {
		require.Equal(t, i, v)
	}
}

func TestLoop_SerializesConcurrentSubmitters(t *testing.T) {
	l, _ := startLoop(t)

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				l.Execute(func() { counter++ })
			}
		}()
	}
	wg.Wait()

	var final int
	require.NoError(t, l.Do(context.Background(), func() { final = counter }))
	require.Equal(t, 1000, final)
}

func TestLoop_StoppedLoop(t *testing.T) {
	l, cancel := startLoop(t)
	cancel()

	select {
	case <-l.Done():
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}

	require.NotPanics(t, func() { l.Execute(func() {}) })
	require.ErrorIs(t, l.Do(context.Background(), func() {}), ErrStopped)
}

func TestLoop_DoRespectsContext(t *testing.T) {
	l := NewLoop(0)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	require.ErrorIs(t, l.Do(ctx, func() {}), context.DeadlineExceeded)
}
