// Package scenario replays a scripted sequence of requests and ticks against a
// dispatcher and records the fleet after every step.
//
// Scenarios are small YAML documents:
//
//	elevators: 2
//	capacity: 10
//	verify: true
//	steps:
//	  - request: {from: 0, to: 2}
//	  - request: {from: 0, to: 1}
//	  - ticks: 3
//
// Each step is either one request or a number of ticks. Fleet size, capacity
// and verify mode can be overridden from .env files and the process
// environment with ApplyEnv.
package scenario

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvlift/dispatcher"
	"github.com/katalvlaran/lvlift/ride"
)

// Sentinel errors for scenario loading and replay.
var (
	// ErrEmptyScenario indicates a scenario without steps.
	ErrEmptyScenario = errors.New("scenario: no steps")

	// ErrBadStep indicates a step that is neither a request nor a positive tick count.
	ErrBadStep = errors.New("scenario: step must hold either a request or a positive tick count")

	// ErrBadEnv indicates an environment override that could not be parsed.
	ErrBadEnv = errors.New("scenario: bad environment override")

	// ErrInvariant indicates an itinerary broke an invariant during a verified replay.
	ErrInvariant = errors.New("scenario: itinerary invariant violated")
)

// Environment keys read by ApplyEnv.
const (
	EnvElevators = "LVLIFT_ELEVATORS"
	EnvCapacity  = "LVLIFT_CAPACITY"
	EnvVerify    = "LVLIFT_VERIFY"
)

// Config describes a fleet and the steps to replay against it.
type Config struct {
	Elevators int    `yaml:"elevators"`
	Capacity  int    `yaml:"capacity"`
	Verify    bool   `yaml:"verify"`
	Steps     []Step `yaml:"steps"`
}

// Step is either a Request or Ticks > 0, never both.
type Step struct {
	Request *ride.Request `yaml:"request,omitempty"`
	Ticks   int           `yaml:"ticks,omitempty"`
}

// Frame is the fleet right after one step.
// Assigned is empty for tick steps.
type Frame struct {
	Step     int
	Request  *ride.Request
	Ticks    int
	Assigned dispatcher.Name
	Fleet    dispatcher.Snapshot
}

// Trace is the outcome of a replay.
type Trace struct {
	Frames []Frame

	// Fallbacks counts verified-tail fallbacks taken by any elevator.
	Fallbacks int
}

// Assignments lists the elevator chosen for each request step, in order.
func (t Trace) Assignments() []dispatcher.Name {
	var out []dispatcher.Name
	for _, f := range t.Frames {
		if f.Request != nil {
			out = append(out, f.Assigned)
		}
	}

	return out
}

// Last returns the final frame, or false for an empty trace.
func (t Trace) Last() (Frame, bool) {
	if len(t.Frames) == 0 {
		return Frame{}, false
	}

	return t.Frames[len(t.Frames)-1], true
}

// Options configures Run.
//
// Logger            – replay progress at info/debug; also handed to the
// dispatcher and its elevators. Defaults to zerolog.Nop().
// DispatcherOptions – appended after the options Run sets itself.
type Options struct {
	Logger            zerolog.Logger
	DispatcherOptions []dispatcher.Option
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// DefaultOptions returns a silent replay configuration.
func DefaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}

// WithLogger sets the replay logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithDispatcherOptions forwards extra options to dispatcher.New.
func WithDispatcherOptions(opts ...dispatcher.Option) Option {
	return func(o *Options) {
		o.DispatcherOptions = append(o.DispatcherOptions, opts...)
	}
}
