package key

import "sync"

// LineWriter is the subset of the HAL logger the diagnostic sink needs.
type LineWriter interface {
	WriteLineString(s string)
}

// LogSink writes one diagnostic line per event. Used as the host-side sink
// where no real transport exists.
type LogSink struct {
	W LineWriter
}

func (s *LogSink) Press(c Code) {
	if s == nil || s.W == nil {
		return
	}
	s.W.WriteLineString("sink: press " + c.String())
}

func (s *LogSink) Release(c Code) {
	if s == nil || s.W == nil {
		return
	}
	s.W.WriteLineString("sink: release " + c.String())
}

func (s *LogSink) ReleaseAll() {
	if s == nil || s.W == nil {
		return
	}
	s.W.WriteLineString("sink: release all")
}

// Event is one recorded sink call.
type Event struct {
	Kind EventKind
	Code Code
}

type EventKind uint8

const (
	EvPress EventKind = iota
	EvRelease
	EvReleaseAll
)

func (k EventKind) String() string {
	switch k {
	case EvPress:
		return "press"
	case EvRelease:
		return "release"
	case EvReleaseAll:
		return "release-all"
	}
	return "?"
}

// CaptureSink records the ordered event stream for tests.
type CaptureSink struct {
	mu     sync.Mutex
	Events []Event
}

func (s *CaptureSink) Press(c Code) { s.record(Event{Kind: EvPress, Code: c}) }

func (s *CaptureSink) Release(c Code) { s.record(Event{Kind: EvRelease, Code: c}) }

func (s *CaptureSink) ReleaseAll() { s.record(Event{Kind: EvReleaseAll}) }

func (s *CaptureSink) record(ev Event) {
	s.mu.Lock()
	s.Events = append(s.Events, ev)
	s.mu.Unlock()
}

// Take returns the recorded events and clears the buffer.
func (s *CaptureSink) Take() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.Events
	s.Events = nil
	return out
}
