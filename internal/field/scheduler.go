package field

// Scheduler implements the frame and resize bookkeeping of a Host. Hosts
// embed it and call Tick once per display refresh and NotifyResize when
// their viewport changes. It is not safe for concurrent use; hosts drive it
// from their own loop goroutine.
type Scheduler struct {
	next    FrameID
	pending func()
	pendID  FrameID

	handlers   map[int]func(w, h int)
	nextHandle int
}

// RequestFrame schedules fn for the next Tick. Only one frame is pending at
// a time; a new request replaces the previous one.
func (s *Scheduler) RequestFrame(fn func()) FrameID {
	s.next++
	s.pending = fn
	s.pendID = s.next
	return s.next
}

func (s *Scheduler) CancelFrame(id FrameID) {
	if s.pending != nil && s.pendID == id {
		s.pending = nil
		s.pendID = 0
	}
}

// Pending reports whether a frame callback is scheduled.
func (s *Scheduler) Pending() bool {
	return s.pending != nil
}

// Tick runs the pending frame callback, if any. Callbacks requested while
// running are deferred to the next Tick.
func (s *Scheduler) Tick() bool {
	fn := s.pending
	if fn == nil {
		return false
	}
	s.pending = nil
	s.pendID = 0
	fn()
	return true
}

func (s *Scheduler) OnResize(fn func(w, h int)) (remove func()) {
	if s.handlers == nil {
		s.handlers = map[int]func(w, h int){}
	}
	s.nextHandle++
	id := s.nextHandle
	s.handlers[id] = fn
	return func() { delete(s.handlers, id) }
}

// NotifyResize delivers a viewport change to every registered handler.
func (s *Scheduler) NotifyResize(w, h int) {
	for _, fn := range s.handlers {
		fn(w, h)
	}
}

// Handlers returns the number of registered resize handlers.
func (s *Scheduler) Handlers() int {
	return len(s.handlers)
}
