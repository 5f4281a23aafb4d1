// Package entry drives the cinematic entry screen: a fixed list of
// (delay, stage) steps revealed in order, an orb click that starts the
// exit exactly once, and a websocket hub that runs one sequence per
// visitor.
package entry

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Stage is the entry screen reveal counter. It only moves forward.
type Stage int

const (
	StageHidden Stage = iota
	StageGrid
	StageBackground
	StageParticles
	StageOrb
	StageHint
)

func (s Stage) String() string {
	switch s {
	case StageHidden:
		return "hidden"
	case StageGrid:
		return "grid"
	case StageBackground:
		return "background"
	case StageParticles:
		return "particles"
	case StageOrb:
		return "orb"
	case StageHint:
		return "hint"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Step reveals Stage once Delay has elapsed since the sequence started
type Step struct {
	Delay time.Duration
	Stage Stage
}

// Timeline is an ordered list of steps
type Timeline []Step

// DefaultTimeline is the reveal order of the entry screen
func DefaultTimeline() Timeline {
	return Timeline{
		{Delay: 300 * time.Millisecond, Stage: StageGrid},
		{Delay: 1000 * time.Millisecond, Stage: StageBackground},
		{Delay: 1800 * time.Millisecond, Stage: StageParticles},
		{Delay: 2600 * time.Millisecond, Stage: StageOrb},
		{Delay: 3600 * time.Millisecond, Stage: StageHint},
	}
}

// Validate requires non-negative, non-decreasing delays and strictly
// increasing stages
func (t Timeline) Validate() error {
	if len(t) == 0 {
		return errors.New("timeline is empty")
	}
	for i, step := range t {
		if step.Delay < 0 {
			return fmt.Errorf("step %d: negative delay %s", i, step.Delay)
		}
		if step.Stage <= StageHidden {
			return fmt.Errorf("step %d: stage %s cannot be scheduled", i, step.Stage)
		}
		if i == 0 {
			continue
		}
		prev := t[i-1]
		if step.Delay < prev.Delay {
			return fmt.Errorf("step %d: delay %s before previous %s", i, step.Delay, prev.Delay)
		}
		if step.Stage <= prev.Stage {
			return fmt.Errorf("step %d: stage %s does not follow %s", i, step.Stage, prev.Stage)
		}
	}
	return nil
}

// Final returns the last stage the timeline reaches
func (t Timeline) Final() Stage {
	if len(t) == 0 {
		return StageHidden
	}
	return t[len(t)-1].Stage
}

type stepJSON struct {
	DelayMS int64 `json:"delay"`
	Stage   Stage `json:"stage"`
}

// MarshalJSON encodes delays in milliseconds for the page script
func (t Timeline) MarshalJSON() ([]byte, error) {
	out := make([]stepJSON, len(t))
	for i, s := range t {
		out[i] = stepJSON{DelayMS: s.Delay.Milliseconds(), Stage: s.Stage}
	}
	return json.Marshal(out)
}
