package particles

import "time"

// FrameHandle identifies a frame request. The zero value means "no request".
type FrameHandle uint64

type FrameCallback func(now time.Time)

// FrameScheduler calls back once, on the next frame, for each request.
// A cancelled request is never called.
type FrameScheduler interface {
	RequestFrame(cb FrameCallback) FrameHandle
	CancelFrame(h FrameHandle)
}

type frameRequest struct {
	handle FrameHandle
	cb     FrameCallback
}

// FrameQueue is a FrameScheduler driven by the host. The host calls Pump
// once per displayed frame (from ebiten's Update, or from a ticker in the
// terminal). Callbacks requested while a pump is in progress wait for the
// next pump, otherwise a callback that requests the next frame, which is what
// every animation loop does, would run forever inside a single pump.
type FrameQueue struct {
	last        FrameHandle
	pending     []frameRequest
	dispatching []frameRequest
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

func (q *FrameQueue) RequestFrame(cb FrameCallback) FrameHandle {
	q.last++
	q.pending = append(q.pending, frameRequest{handle: q.last, cb: cb})
	return q.last
}

func (q *FrameQueue) CancelFrame(h FrameHandle) {
	if h == 0 {
		return
	}
	for i := range q.pending {
		if q.pending[i].handle == h {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	// The request may belong to the batch being pumped right now.
	for i := range q.dispatching {
		if q.dispatching[i].handle == h {
			q.dispatching[i].cb = nil
			return
		}
	}
}

// Pump runs the callbacks requested before this call and returns how many
// actually ran.
func (q *FrameQueue) Pump(now time.Time) (n int) {
	q.dispatching = q.pending
	q.pending = nil
	for i := range q.dispatching {
		cb := q.dispatching[i].cb
		if cb == nil {
			continue
		}
		cb(now)
		n++
	}
	q.dispatching = nil
	return
}

// Pending is the number of requests that will run on the next pump.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}
