package countdown

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestExpiryFiresActionOnce(t *testing.T) {
	var fired int32
	c := New(3, 10*time.Millisecond, func() {
		atomic.AddInt32(&fired, 1)
	})

	c.Start()
	waitFor(t, func() bool { return atomic.LoadInt32(&fired) == 1 })

	assert.True(t, c.Expired())
	assert.Equal(t, 0, c.Remaining())

	// Late calls are no-ops.
	c.Complete()
	c.Cancel()
	assert.EqualValues(t, 1, atomic.LoadInt32(&fired))
}

func TestCancelSuppressesAction(t *testing.T) {
	var fired int32
	c := New(5, 10*time.Millisecond, func() {
		atomic.AddInt32(&fired, 1)
	})

	c.Start()
	c.Cancel()

	time.Sleep(100 * time.Millisecond)
	assert.True(t, c.Expired())
	assert.EqualValues(t, 0, atomic.LoadInt32(&fired))
}

func TestCompleteFiresEarly(t *testing.T) {
	var fired int32
	c := New(100, time.Hour, func() {
		atomic.AddInt32(&fired, 1)
	})

	c.Start()
	c.Complete()

	assert.True(t, c.Expired())
	assert.EqualValues(t, 1, atomic.LoadInt32(&fired))
}

func TestStartIsIdempotent(t *testing.T) {
	var fired int32
	c := New(2, 10*time.Millisecond, func() {
		atomic.AddInt32(&fired, 1)
	})

	c.Start()
	c.Start()
	waitFor(t, func() bool { return atomic.LoadInt32(&fired) > 0 })

	assert.EqualValues(t, 1, atomic.LoadInt32(&fired))
}

func TestRemainingCountsDown(t *testing.T) {
	c := New(5, 10*time.Millisecond, func() {})
	assert.Equal(t, 5, c.Remaining())

	c.Start()
	waitFor(t, func() bool { return c.Remaining() < 5 })
	waitFor(t, c.Expired)
	assert.Equal(t, 0, c.Remaining())
}
