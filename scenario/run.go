package scenario

import (
	"fmt"

	"github.com/katalvlaran/lvlift/dispatcher"
	"github.com/katalvlaran/lvlift/elevator"
	"github.com/katalvlaran/lvlift/ride"
)

// Run builds a fleet from cfg and replays its steps in order, recording one
// Frame per step.
//
// Errors from dispatcher.New are returned wrapped. With cfg.Verify set, every
// itinerary is checked with elevator.Validate after each step and the first
// violation stops the replay with ErrInvariant; the frames recorded so far are
// returned alongside the error.
func Run(cfg Config, opts ...Option) (Trace, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := cfg.validateSteps(); err != nil {
		return Trace{}, err
	}

	var trace Trace
	dopts := []dispatcher.Option{
		dispatcher.WithLogger(o.Logger),
		dispatcher.WithElevatorOptions(
			elevator.WithLogger(o.Logger),
			elevator.WithOnFallback(func(ride.Ride, ride.Ride) { trace.Fallbacks++ }),
		),
	}
	d, err := dispatcher.New(cfg.Elevators, cfg.Capacity, append(dopts, o.DispatcherOptions...)...)
	if err != nil {
		return Trace{}, fmt.Errorf("scenario: %w", err)
	}

	o.Logger.Info().
		Int("elevators", cfg.Elevators).
		Int("capacity", cfg.Capacity).
		Int("steps", len(cfg.Steps)).
		Bool("verify", cfg.Verify).
		Msg("replay started")

	trace.Frames = make([]Frame, 0, len(cfg.Steps))
	for i, s := range cfg.Steps {
		frame := Frame{Step: i, Ticks: s.Ticks}
		if s.Request != nil {
			r := *s.Request
			frame.Request = &r
			frame.Assigned = d.Request(r)
		} else {
			for k := 0; k < s.Ticks; k++ {
				d.Tick()
			}
		}

		frame.Fleet, err = d.Snapshot()
		if err != nil {
			return trace, fmt.Errorf("scenario: step %d: %w", i, err)
		}
		trace.Frames = append(trace.Frames, frame)

		o.Logger.Debug().
			Int("step", i).
			Str("assigned", string(frame.Assigned)).
			Int("ticks", s.Ticks).
			Msg("step replayed")

		if cfg.Verify {
			if err := verify(frame); err != nil {
				o.Logger.Error().Err(err).Int("step", i).Msg("invariant violated")

				return trace, err
			}
		}
	}

	o.Logger.Info().
		Int("frames", len(trace.Frames)).
		Int("fallbacks", trace.Fallbacks).
		Msg("replay finished")

	return trace, nil
}

func verify(f Frame) error {
	for _, st := range f.Fleet.Elevators {
		if err := elevator.Validate(st.Rides, st.Capacity); err != nil {
			return fmt.Errorf("%w: step %d, elevator %s: %w", ErrInvariant, f.Step, st.Name, err)
		}
	}

	return nil
}
