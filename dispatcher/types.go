// Package dispatcher defines fleet names, options and sentinel errors for the
// multi-elevator dispatcher.
package dispatcher

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvlift/elevator"
	"github.com/katalvlaran/lvlift/ride"
)

// Sentinel errors returned by New.
var (
	// ErrBadFleetSize indicates a fleet size outside 1..MaxElevators.
	ErrBadFleetSize = errors.New("dispatcher: number of elevators must be between 1 and 4")

	// ErrBadCapacity indicates a non-positive elevator capacity.
	ErrBadCapacity = errors.New("dispatcher: elevator capacity must be positive")
)

// Name identifies one elevator of the fleet.
type Name string

// Fleet names, assigned in this order at construction.
const (
	A Name = "A"
	B Name = "B"
	C Name = "C"
	D Name = "D"
)

// MaxElevators is the largest supported fleet.
const MaxElevators = 4

var names = [MaxElevators]Name{A, B, C, D}

// index returns the ordinal of n, or -1.
func (n Name) index() int {
	for i, m := range names {
		if m == n {
			return i
		}
	}

	return -1
}

// Options configures a Dispatcher.
//
// Logger           – receives one debug event per assignment. Defaults to zerolog.Nop().
// OnAssign         – called after an elevator accepted a request, under the fleet lock;
// it must not call back into the Dispatcher.
// ElevatorOptions  – forwarded to every elevator.New call.
type Options struct {
	Logger          zerolog.Logger
	OnAssign        func(name Name, r ride.Request)
	ElevatorOptions []elevator.Option
}

// Option represents a functional option for configuring a Dispatcher.
type Option func(*Options)

// DefaultOptions returns a silent configuration with no hooks.
func DefaultOptions() Options {
	return Options{
		Logger:   zerolog.Nop(),
		OnAssign: func(Name, ride.Request) {},
	}
}

// WithLogger sets the dispatcher logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnAssign registers a callback run after each assignment.
func WithOnAssign(fn func(name Name, r ride.Request)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAssign = fn
		}
	}
}

// WithElevatorOptions forwards options to each elevator of the fleet.
func WithElevatorOptions(opts ...elevator.Option) Option {
	return func(o *Options) {
		o.ElevatorOptions = append(o.ElevatorOptions, opts...)
	}
}

// ElevatorState is the detached state of one named elevator.
type ElevatorState struct {
	Name     Name
	Capacity int
	Floor    ride.Floor
	Rides    []ride.Ride
}

// Snapshot is an independent copy of the whole fleet, in name order.
type Snapshot struct {
	Elevators []ElevatorState
}
