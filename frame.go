package squares

// FrameID identifies one scheduled frame callback. Zero is never issued.
type FrameID uint64

// FrameSource schedules callbacks for the next display frame, in the manner
// of requestAnimationFrame. Implementations must invoke callbacks on the same
// goroutine that delivers pointer and resize events.
type FrameSource interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

type frameRequest struct {
	id FrameID
	fn func()
}

// ManualFrames is a FrameSource advanced explicitly by its owner. Hosts call
// Advance once per display refresh; tests call it to step deterministically.
// The zero value is ready to use.
type ManualFrames struct {
	nextID  FrameID
	pending []frameRequest
	running []frameRequest
	frame   uint64
}

// RequestFrame queues fn for the next Advance.
func (m *ManualFrames) RequestFrame(fn func()) FrameID {
	m.nextID++
	m.pending = append(m.pending, frameRequest{id: m.nextID, fn: fn})
	return m.nextID
}

// CancelFrame removes a queued callback, including one queued for the frame
// currently running that has not been invoked yet. Unknown or already-run IDs
// are ignored.
func (m *ManualFrames) CancelFrame(id FrameID) {
	for i := range m.running {
		if m.running[i].id == id {
			m.running[i].fn = nil
			return
		}
	}
	for i := range m.pending {
		if m.pending[i].id == id {
			copy(m.pending[i:], m.pending[i+1:])
			m.pending[len(m.pending)-1] = frameRequest{}
			m.pending = m.pending[:len(m.pending)-1]
			return
		}
	}
}

// Advance runs n frames. Each frame runs the callbacks queued before it
// started; callbacks requested during a frame wait for the following one.
func (m *ManualFrames) Advance(n int) {
	for range n {
		m.frame++
		m.running, m.pending = m.pending, m.running[:0]
		for i := range m.running {
			if fn := m.running[i].fn; fn != nil {
				m.running[i].fn = nil
				fn()
			}
		}
		clear(m.running)
		m.running = m.running[:0]
	}
}

// Pending returns the number of callbacks waiting for the next frame.
func (m *ManualFrames) Pending() int {
	return len(m.pending)
}

// Frame returns how many frames have been advanced so far.
func (m *ManualFrames) Frame() uint64 {
	return m.frame
}
