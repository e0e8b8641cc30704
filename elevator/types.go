// Package elevator defines the options, hooks and sentinel errors used by the
// single-elevator itinerary model.
package elevator

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvlift/ride"
)

// Sentinel errors returned by New and Validate.
var (
	// ErrBadCapacity indicates a non-positive elevator capacity.
	ErrBadCapacity = errors.New("elevator: capacity must be positive")

	// ErrNotContiguous indicates two adjacent rides that do not share a floor.
	ErrNotContiguous = errors.New("elevator: itinerary is not contiguous")

	// ErrOverCapacity indicates a ride carrying more persons than the capacity.
	ErrOverCapacity = errors.New("elevator: ride exceeds capacity")

	// ErrNegativePersons indicates a ride with a negative passenger count.
	ErrNegativePersons = errors.New("elevator: ride has negative persons")

	// ErrDegenerateRide indicates a committed ride whose origin equals its destination.
	ErrDegenerateRide = errors.New("elevator: ride starts and ends on the same floor")
)

// Options configures an Elevator.
//
// Logger      – receives one debug event per merge step and a warn event whenever
// the verified-tail fallback fires. Defaults to zerolog.Nop().
// OnFallback  – called when a split tail could not be verified in the merged
// remainder and the whole request was delegated instead. Rides are reported in
// building coordinates (never mirrored).
type Options struct {
	Logger     zerolog.Logger
	OnFallback func(tail, additional ride.Ride)
}

// Option represents a functional option for configuring an Elevator.
type Option func(*Options)

// DefaultOptions returns the silent configuration: no logging, no-op hook.
func DefaultOptions() Options {
	return Options{
		Logger:     zerolog.Nop(),
		OnFallback: func(ride.Ride, ride.Ride) {},
	}
}

// WithLogger sets the logger used for merge diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnFallback registers a callback for the verified-tail fallback.
// A nil fn keeps the current hook.
func WithOnFallback(fn func(tail, additional ride.Ride)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFallback = fn
		}
	}
}
