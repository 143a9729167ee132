package socket

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCounterAcquireUpToMaxPlusSlack(t *testing.T) {
	c := NewCounter(2)
	for i := 0; i < 2+acceptSlack; i++ {
		require.True(t, c.TryAcquire(), "acquire %d should succeed", i)
	}
	require.False(t, c.TryAcquire(), "acquire beyond max+slack must fail")
	require.Equal(t, int64(2+acceptSlack), c.InUse())
}

func TestCounterReleaseFreesASlot(t *testing.T) {
	c := NewCounter(1)
	require.True(t, c.TryAcquire())
	require.True(t, c.TryAcquire()) // within slack
	require.True(t, c.TryAcquire()) // within slack
	require.False(t, c.TryAcquire())

	c.Release()
	require.True(t, c.TryAcquire())
}

func TestCounterReleaseOnEmptyIsNoOp(t *testing.T) {
	c := NewCounter(5)
	c.Release()
	require.Equal(t, int64(0), c.InUse())
}

func TestCounterConcurrentAcquireNeverExceedsCap(t *testing.T) {
	c := NewCounter(10)
	var wg sync.WaitGroup
	successes := make([]bool, 100)
	for i := range successes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			successes[i] = c.TryAcquire()
		}(i)
	}
	wg.Wait()

	granted := 0
	for _, ok := range successes {
		if ok {
			granted++
		}
	}
	require.Equal(t, int(10+acceptSlack), granted)
	require.Equal(t, int64(10+acceptSlack), c.InUse())
}
