package elevator

import (
	"fmt"

	"github.com/katalvlaran/lvlift/ride"
)

// Validate checks the itinerary invariants: every ride is directed, carries
// between 0 and capacity persons, and starts where the previous one ended.
// The first violation is returned wrapped around its sentinel error.
func Validate(rides []ride.Ride, capacity int) error {
	for i, r := range rides {
		switch {
		case r.From == r.To:
			return fmt.Errorf("%w: ride %d %v", ErrDegenerateRide, i, r)
		case r.Persons < 0:
			return fmt.Errorf("%w: ride %d %v", ErrNegativePersons, i, r)
		case r.Persons > capacity:
			return fmt.Errorf("%w: ride %d %v, capacity %d", ErrOverCapacity, i, r, capacity)
		case i > 0 && rides[i-1].To != r.From:
			return fmt.Errorf("%w: ride %d %v follows %v", ErrNotContiguous, i, r, rides[i-1])
		}
	}

	return nil
}
