// Package leads implements the lead-capture form: field validation, the
// idle → submitting → submitted state machine and the simulated
// submission delay. Nothing is persisted.
package leads

import (
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/RMTN1/silicon-prairie/internal/apperror"
)

// State is the lifecycle of one form instance
type State int

const (
	Idle State = iota
	Submitting
	Submitted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Submitted:
		return "submitted"
	default:
		return "unknown"
	}
}

var (
	ErrMissingInformation = apperror.New(http.StatusUnprocessableEntity, "missing_information",
		"Please fill in your email and select your role.")
	ErrUnknownRole = apperror.New(http.StatusUnprocessableEntity, "unknown_role",
		"Please select one of the listed roles.")
	ErrAlreadySubmitting = apperror.New(http.StatusConflict, "submission_in_progress",
		"Your submission is already on its way.")
	ErrAlreadySubmitted = apperror.New(http.StatusConflict, "already_submitted",
		"You have already joined the network.")
)

// Submission holds the two controlled fields
type Submission struct {
	Email string
	Role  string
}

// Normalize trims surrounding whitespace from both fields
func (s Submission) Normalize() Submission {
	return Submission{
		Email: strings.TrimSpace(s.Email),
		Role:  strings.TrimSpace(s.Role),
	}
}

// Form is the state of a single lead form instance. It is safe for
// concurrent use; only one submission can ever move it past Idle.
type Form struct {
	mu       sync.Mutex
	state    State
	values   Submission
	roles    []string
	onChange func(from, to State)
}

// NewForm returns an idle form accepting the given role values. An
// empty roles list accepts any non-empty role.
func NewForm(roles []string) *Form {
	return &Form{roles: roles}
}

// OnChange registers a callback invoked after every state transition
func (f *Form) OnChange(fn func(from, to State)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onChange = fn
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Values returns the last values passed to Begin, normalized
func (f *Form) Values() Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// Validate checks a submission without touching form state
func (f *Form) Validate(sub Submission) error {
	sub = sub.Normalize()
	if sub.Email == "" || sub.Role == "" {
		return ErrMissingInformation
	}
	if len(f.roles) > 0 && !slices.Contains(f.roles, sub.Role) {
		return ErrUnknownRole
	}
	return nil
}

// Begin validates sub and moves the form from Idle to Submitting.
// Invalid input leaves the form Idle so the user can correct it.
func (f *Form) Begin(sub Submission) error {
	f.mu.Lock()
	sub = sub.Normalize()
	f.values = sub

	switch f.state {
	case Submitting:
		f.mu.Unlock()
		return ErrAlreadySubmitting
	case Submitted:
		f.mu.Unlock()
		return ErrAlreadySubmitted
	}

	if err := f.Validate(sub); err != nil {
		f.mu.Unlock()
		return err
	}

	notify := f.transition(Submitting)
	f.mu.Unlock()
	notify()
	return nil
}

// Complete moves a Submitting form to Submitted
func (f *Form) Complete() error {
	f.mu.Lock()
	if f.state != Submitting {
		state := f.state
		f.mu.Unlock()
		if state == Submitted {
			return ErrAlreadySubmitted
		}
		return apperror.ErrConflict.WithMessage("form is not submitting")
	}
	notify := f.transition(Submitted)
	f.mu.Unlock()
	notify()
	return nil
}

// Abort returns a Submitting form to Idle, used when the request goes
// away before the delay elapses
func (f *Form) Abort() {
	f.mu.Lock()
	if f.state != Submitting {
		f.mu.Unlock()
		return
	}
	notify := f.transition(Idle)
	f.mu.Unlock()
	notify()
}

// transition must be called with mu held; the returned func runs the
// callback after the lock is released.
func (f *Form) transition(to State) func() {
	from := f.state
	f.state = to
	cb := f.onChange
	return func() {
		if cb != nil {
			cb(from, to)
		}
	}
}
