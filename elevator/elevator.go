package elevator

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvlift/ride"
)

// Elevator is an immutable snapshot of one car: its capacity, current floor
// and the rides it still intends to execute, head first.
//
// Request and Tick never modify the receiver; they return the next snapshot.
// Snapshots may share backing storage, which is safe because no method writes
// into an existing itinerary.
type Elevator struct {
	capacity int
	floor    ride.Floor
	rides    []ride.Ride
	opts     *Options
}

// New returns an empty elevator resting at the lobby.
// Returns ErrBadCapacity if capacity <= 0.
func New(capacity int, opts ...Option) (Elevator, error) {
	if capacity <= 0 {
		return Elevator{}, fmt.Errorf("%w: got %d", ErrBadCapacity, capacity)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return Elevator{capacity: capacity, opts: &o}, nil
}

// Capacity is the maximum number of persons on any single ride.
func (e Elevator) Capacity() int { return e.capacity }

// Floor is the current position of the car.
func (e Elevator) Floor() ride.Floor { return e.floor }

// Rides returns a copy of the itinerary.
func (e Elevator) Rides() []ride.Ride { return slices.Clone(e.rides) }

// State is a plain, exported view of an Elevator.
type State struct {
	Capacity int
	Floor    ride.Floor
	Rides    []ride.Ride
}

// State returns the elevator's fields without copying the itinerary.
// Rides aliases the snapshot's storage and must be treated as read-only;
// deep-copy the State before handing it to code that may modify it.
func (e Elevator) State() State {
	return State{Capacity: e.capacity, Floor: e.floor, Rides: e.rides}
}

// QueueLength is the number of rides still queued.
func (e Elevator) QueueLength() int { return len(e.rides) }

// IsIdle reports whether the itinerary is empty.
func (e Elevator) IsIdle() bool { return len(e.rides) == 0 }

// FinalFloor is where the car will rest once its itinerary is done:
// the destination of the last ride, or the current floor when idle.
func (e Elevator) FinalFloor() ride.Floor {
	if len(e.rides) == 0 {
		return e.floor
	}

	return e.rides[len(e.rides)-1].To
}

// Validate checks the itinerary against the car's capacity.
func (e Elevator) Validate() error {
	return Validate(e.rides, e.capacity)
}

// Request folds one passenger travelling r.From → r.To into the itinerary.
// Same-floor requests are ignored and return the receiver unchanged.
func (e Elevator) Request(r ride.Request) Elevator {
	if r.IsNoop() {
		return e
	}

	additional := ride.New(r, 1)
	next := e
	if len(e.rides) == 0 {
		next.rides = appendFirstRide(e.floor, additional)

		return next
	}

	m := merger{capacity: e.capacity, opts: e.options()}
	next.rides = m.merge(e.rides, additional)

	return next
}

// Tick advances the car one floor towards the destination of its head ride and
// drops that ride on arrival. An idle car does not move.
//
// A head ride that already ends on the current floor (left behind when a ride
// the car was travelling on gets split) is dropped before moving.
func (e Elevator) Tick() Elevator {
	rides := e.rides
	for len(rides) > 0 && rides[0].To == e.floor {
		rides = rides[1:]
	}
	if len(rides) == 0 {
		next := e
		next.rides = nil

		return next
	}

	next := e
	if e.floor < rides[0].To {
		next.floor = e.floor + 1
	} else {
		next.floor = e.floor - 1
	}
	if next.floor == rides[0].To {
		rides = rides[1:]
	}
	next.rides = rides

	return next
}

// options tolerates the zero Elevator value.
func (e Elevator) options() *Options {
	if e.opts == nil {
		o := DefaultOptions()

		return &o
	}

	return e.opts
}
