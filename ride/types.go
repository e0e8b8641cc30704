// Package ride defines the value types shared by the elevator and dispatcher
// packages: floors, passenger requests and committed rides.
//
// All types are plain values. Nothing in this package mutates its receiver;
// every transform (Reflect, ReflectAll) returns a fresh value.
package ride

import "fmt"

// Floor is a building level. Zero is the lobby; negative floors are basements.
type Floor int

// Request asks for a trip from one floor to another.
// A Request whose From equals To is a no-op.
type Request struct {
	From Floor `yaml:"from"`
	To   Floor `yaml:"to"`
}

// IsNoop reports whether the request starts and ends on the same floor.
func (r Request) IsNoop() bool {
	return r.From == r.To
}

// Ride is a directed leg of an itinerary carrying Persons passengers.
// A zero-passenger ride is a deadhead leg that only keeps the itinerary contiguous.
// Direction is derived from From and To; a committed ride never has From == To.
type Ride struct {
	From    Floor `yaml:"from"`
	To      Floor `yaml:"to"`
	Persons int   `yaml:"persons"`
}

// Direction of travel of a ride.
type Direction int

const (
	// Idle is the direction of a degenerate ride (From == To).
	Idle Direction = iota
	// Up means From < To.
	Up
	// Down means From > To.
	Down
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "idle"
	}
}

// String renders the ride as {from→to ×persons}.
func (r Ride) String() string {
	return fmt.Sprintf("{%d→%d ×%d}", r.From, r.To, r.Persons)
}
