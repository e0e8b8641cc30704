package elevator

import "github.com/katalvlaran/lvlift/ride"

// Contains reports whether r is already carried by a prefix of rides.
//
// The first ride alone, or the first k rides collapsed into one span
// [rides[0].From, rides[k-1].To], must match r's interval exactly, and the
// smallest passenger count along that prefix must be at least r.Persons.
// Only prefixes are tried: a run starting further down the itinerary never
// counts. Collapsing keeps min(first.Persons, second.Persons) at each step, so
// a long prefix reports the weakest leg it crosses.
//
// Complexity: O(len(rides)), no allocation.
func Contains(rides []ride.Ride, r ride.Ride) bool {
	if len(rides) == 0 {
		return false
	}

	span := rides[0]
	for i := 0; ; i++ {
		if i > 0 {
			span.To = rides[i].To
			span.Persons = min(span.Persons, rides[i].Persons)
		}
		if span.Similar(r) && r.Persons <= span.Persons {
			return true
		}
		if i == len(rides)-1 {
			return false
		}
	}
}
