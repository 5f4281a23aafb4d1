package entry

import (
	"sync"
	"time"
)

type EventType string

const (
	EventStage    EventType = "stage"
	EventExit     EventType = "exit"
	EventNavigate EventType = "navigate"
)

// Event is what the sequence tells the page
type Event struct {
	Type  EventType `json:"type"`
	Stage Stage     `json:"stage,omitempty"`
	Href  string    `json:"href,omitempty"`
}

// Options tune the exit part of a sequence
type Options struct {
	// ExitDelay separates the exit flash from navigation
	ExitDelay time.Duration
	// Target is where the page navigates after the flash
	Target string
}

// Sequence is the state of one entry screen instance.
//
// emit is called with the sequence lock held so events arrive in order
// and none arrive after Stop. It must not block and must not call back
// into the sequence.
type Sequence struct {
	mu        sync.Mutex
	sched     Scheduler
	timeline  Timeline
	opts      Options
	emit      func(Event)
	stage     Stage
	started   bool
	exiting   bool
	navigated bool
	stopped   bool
	pending   []Timer
	exitTimer Timer
}

func NewSequence(sched Scheduler, timeline Timeline, opts Options, emit func(Event)) *Sequence {
	if opts.Target == "" {
		opts.Target = "/"
	}
	if emit == nil {
		emit = func(Event) {}
	}
	return &Sequence{
		sched:    sched,
		timeline: timeline,
		opts:     opts,
		emit:     emit,
	}
}

// Start schedules every step of the timeline. Calls after the first are
// no-ops.
func (s *Sequence) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started || s.stopped {
		return
	}
	s.started = true

	for _, step := range s.timeline {
		stage := step.Stage
		s.pending = append(s.pending, s.sched.AfterFunc(step.Delay, func() {
			s.advance(stage)
		}))
	}
}

func (s *Sequence) advance(stage Stage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped || s.exiting || stage <= s.stage {
		return
	}
	s.stage = stage
	s.emit(Event{Type: EventStage, Stage: stage})
}

// Stage returns the current stage
func (s *Sequence) Stage() Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

// Exiting reports whether the orb has been clicked
func (s *Sequence) Exiting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exiting
}

// Exit handles an orb click. Only the first click after the orb is
// visible starts the exit; it returns false for every other call.
func (s *Sequence) Exit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped || s.exiting || s.stage < StageOrb {
		return false
	}
	s.exiting = true

	for _, t := range s.pending {
		t.Stop()
	}
	s.pending = nil

	s.emit(Event{Type: EventExit})
	s.exitTimer = s.sched.AfterFunc(s.opts.ExitDelay, s.navigate)
	return true
}

func (s *Sequence) navigate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped || s.navigated {
		return
	}
	s.navigated = true
	s.emit(Event{Type: EventNavigate, Href: s.opts.Target})
}

// Stop tears the sequence down and cancels every pending timer
func (s *Sequence) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	s.stopped = true
	for _, t := range s.pending {
		t.Stop()
	}
	s.pending = nil
	if s.exitTimer != nil {
		s.exitTimer.Stop()
	}
}
