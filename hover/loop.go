package hover

// Scheduler requests a callback on the next display frame.
type Scheduler interface {
	RequestFrame(fn func(now float64)) (cancel func())
}

// Run calls step once per frame until stop is called or step fails. A
// failing step is passed to onErr and ends the loop.
func Run(s Scheduler, step func(now float64) error, onErr func(error)) (stop func()) {
	var (
		stopped bool
		cancel  func()
		tick    func(now float64)
	)
	tick = func(now float64) {
		if stopped {
			return
		}
		if err := step(now); err != nil {
			stopped = true
			if onErr != nil {
				onErr(err)
			}
			return
		}
		if stopped { // stopped from within step
			return
		}
		cancel = s.RequestFrame(tick)
	}
	cancel = s.RequestFrame(tick)

	return func() {
		if stopped {
			return
		}
		stopped = true
		if cancel != nil {
			cancel()
		}
	}
}

// ManualScheduler holds at most one pending frame and runs it on Tick.
type ManualScheduler struct {
	pending func(now float64)
	seq     int
}

// RequestFrame implements Scheduler.
func (m *ManualScheduler) RequestFrame(fn func(now float64)) func() {
	m.seq++
	id := m.seq
	m.pending = fn
	return func() {
		if m.seq == id {
			m.pending = nil
		}
	}
}

// Pending reports whether a frame is waiting.
func (m *ManualScheduler) Pending() bool { return m.pending != nil }

// Tick fires the pending frame, false if there was none.
func (m *ManualScheduler) Tick(now float64) bool {
	fn := m.pending
	if fn == nil {
		return false
	}
	m.pending = nil
	fn(now)
	return true
}

// FrameMeter averages frame times over a window of frames.
type FrameMeter struct {
	Window int

	started bool
	mark    float64
	count   int
	sum     float64
}

// Mark records a frame at now (milliseconds) and returns the average fps
// once every Window frames.
func (m *FrameMeter) Mark(now float64) (fps float64, ok bool) {
	if !m.started {
		m.started = true
		m.mark = now
		return 0, false
	}
	m.sum += now - m.mark
	m.mark = now
	m.count++

	window := m.Window
	if window <= 0 {
		window = 10
	}
	if m.count < window {
		return 0, false
	}
	avg := m.sum / float64(m.count)
	m.sum, m.count = 0, 0
	if avg <= 0 {
		return 0, false
	}
	return 1000 / avg, true
}
