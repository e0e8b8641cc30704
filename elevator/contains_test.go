package elevator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlift/elevator"
	"github.com/katalvlaran/lvlift/ride"
)

// TestContains covers single-ride matches, prefix collapsing and the
// min-persons rule applied while collapsing.
func TestContains(t *testing.T) {
	cases := []struct {
		name  string
		rides []ride.Ride
		r     ride.Ride
		want  bool
	}{
		{"no prior rides", nil, leg(0, 1, 1), false},
		{"one similar prior ride", []ride.Ride{leg(0, 1, 1)}, leg(0, 1, 1), true},
		{"one bigger prior ride", []ride.Ride{leg(0, 2, 1)}, leg(0, 1, 1), false},
		{"limited by persons", []ride.Ride{leg(0, 1, 1)}, leg(0, 1, 2), false},
		{"many prior rides", []ride.Ride{leg(0, 1, 1), leg(1, 2, 1)}, leg(0, 2, 1), true},
		{"first ride of many", []ride.Ride{leg(0, 1, 3), leg(1, 2, 0)}, leg(0, 1, 2), true},
		{"collapsed prefix takes the weakest leg", []ride.Ride{leg(0, 1, 2), leg(1, 2, 1)}, leg(0, 2, 2), false},
		{"three-leg prefix", []ride.Ride{leg(0, 1, 2), leg(1, 2, 3), leg(2, 3, 2)}, leg(0, 3, 2), true},
		{"run not at head is ignored", []ride.Ride{leg(0, 1, 1), leg(1, 2, 1)}, leg(1, 2, 1), false},
		{"deadhead in the prefix", []ride.Ride{leg(1, 0, 1), leg(0, 1, 0), leg(1, 2, 1)}, leg(1, 2, 1), false},
		{"down-going prefix", []ride.Ride{leg(3, 2, 1), leg(2, 0, 1)}, leg(3, 0, 1), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, elevator.Contains(tc.rides, tc.r))
		})
	}
}
