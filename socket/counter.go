package socket

import "sync/atomic"

// Counter is a process-wide saturation counter for accepted connections.
// Slots are granted up to max+acceptSlack: a small number of reservations
// beyond the nominal cap still succeed, so that AcceptUnderLimit can drain
// a pending connection from the kernel backlog and close it at once rather
// than leave it there, which would look like a hang to the peer.
type Counter struct {
	n   atomic.Int64
	max int64
}

// acceptSlack is the number of connections accepted past max before
// TryAcquire starts refusing.
const acceptSlack = 2

func NewCounter(max int64) *Counter {
	return &Counter{max: max}
}

// TryAcquire reserves one slot if the counter is below max+acceptSlack.
func (c *Counter) TryAcquire() bool {
	granted, _ := c.acquireWithCount()
	return granted
}

// acquireWithCount is TryAcquire plus the resulting in-use count from the
// same CAS, so a caller can tell whether this acquisition landed past the
// nominal max (within acceptSlack) without a second, separately-racy load.
func (c *Counter) acquireWithCount() (granted bool, count int64) {
	for {
		cur := c.n.Load()
		if cur >= c.max+acceptSlack {
			return false, cur
		}
		if c.n.CompareAndSwap(cur, cur+1) {
			return true, cur + 1
		}
	}
}

// Release frees one slot.
func (c *Counter) Release() {
	for {
		cur := c.n.Load()
		if cur == 0 {
			return
		}
		if c.n.CompareAndSwap(cur, cur-1) {
			return
		}
	}
}

func (c *Counter) InUse() int64 { return c.n.Load() }
