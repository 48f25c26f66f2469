package particles

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameQueue_RunsRequestsInOrder(t *testing.T) {
	q := NewFrameQueue()
	var order []int
	q.RequestFrame(func(time.Time) { order = append(order, 1) })
	q.RequestFrame(func(time.Time) { order = append(order, 2) })
	q.RequestFrame(func(time.Time) { order = append(order, 3) })

	assert.Equal(t, 3, q.Pending())
	assert.Equal(t, 3, q.Pump(time.Now()))
	assert.Equal(t, []int{1, 2, 3}, order)
	assert.Equal(t, 0, q.Pending())
	assert.Equal(t, 0, q.Pump(time.Now()))
}

func TestFrameQueue_CancelledRequestsNeverRun(t *testing.T) {
	q := NewFrameQueue()
	ran := false
	h := q.RequestFrame(func(time.Time) { ran = true })
	q.CancelFrame(h)
	q.CancelFrame(h)
	q.CancelFrame(0)

	assert.Equal(t, 0, q.Pump(time.Now()))
	assert.False(t, ran)
}

func TestFrameQueue_CancelDuringPump(t *testing.T) {
	q := NewFrameQueue()
	ran := false
	var second FrameHandle
	q.RequestFrame(func(time.Time) { q.CancelFrame(second) })
	second = q.RequestFrame(func(time.Time) { ran = true })

	assert.Equal(t, 1, q.Pump(time.Now()))
	assert.False(t, ran)
}

func TestFrameQueue_RequestsMadeDuringPumpWaitForNextPump(t *testing.T) {
	q := NewFrameQueue()
	count := 0
	var loop FrameCallback
	loop = func(time.Time) {
		count++
		q.RequestFrame(loop)
	}
	q.RequestFrame(loop)

	for i := 1; i <= 5; i++ {
		assert.Equal(t, 1, q.Pump(time.Now()))
		assert.Equal(t, i, count)
		assert.Equal(t, 1, q.Pending())
	}
}

func TestFrameQueue_PassesTimestamp(t *testing.T) {
	q := NewFrameQueue()
	now := time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC)
	var got time.Time
	q.RequestFrame(func(ts time.Time) { got = ts })
	q.Pump(now)
	assert.Equal(t, now, got)
}
