package mainloop

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoop_RunsInPostOrder(t *testing.T) {
	loop := New(10)

	var got []int
	for i := 0; i < 5; i++ {
		i := i
		require.True(t, loop.Post(func() { got = append(got, i) }))
	}
	require.True(t, loop.Post(loop.Stop))

	loop.Run(context.Background())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

func TestLoop_RunsOnCallingGoroutine(t *testing.T) {
	loop := New(1)

	var (
		mu      sync.Mutex
		counter int
	)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			loop.Post(func() {
				mu.Lock()
				counter++
				mu.Unlock()
			})
		}()
	}
	go func() {
		wg.Wait()
		loop.Post(loop.Stop)
	}()

	done := make(chan struct{})
	go func() {
		loop.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop")
	}
	assert.Equal(t, 20, counter)
}

func TestLoop_PostAfterStop(t *testing.T) {
	loop := New(1)
	loop.Stop()
	loop.Stop()

	assert.True(t, loop.Stopped())
	assert.False(t, loop.Post(func() {}))
}

func TestLoop_ContextCancelStops(t *testing.T) {
	loop := New(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loop.Run(ctx)
	assert.True(t, loop.Stopped())
}

func TestLoop_NonPositiveBuffer(t *testing.T) {
	loop := New(0)
	ran := false
	require.True(t, loop.Post(func() {
		ran = true
		loop.Stop()
	}))

	loop.Run(context.Background())
	assert.True(t, ran)
}
