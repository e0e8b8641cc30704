// Package elevator models one elevator car as an immutable value: a capacity,
// a current floor and an ordered itinerary of rides.
//
// Overview:
//
//   - An itinerary is a path of contiguous legs: rides[i].To == rides[i+1].From.
//   - Zero-passenger "deadhead" legs keep the path contiguous when the car has to
//     travel empty to pick somebody up.
//   - Request folds a new passenger into the itinerary, merging the new leg with
//     already-queued legs wherever they overlap, so the car does not travel the
//     same stretch twice.
//   - Tick moves the car one floor towards the end of its head ride.
//
// Merging:
//
//	The head ride ("current") is compared with the new ride ("additional").
//	If current goes down, floors are negated on both sides, the up-going merge is
//	applied and the result is negated back; only one orientation of the case
//	table exists. Classify returns one of ten Relations:
//
//	  After, Before, Opposing   append after the last ride, or delegate deeper
//	  Adjacent                  append without a deadhead, or delegate deeper
//	  Identical                 add passenger counts
//	  SameOriginShorter         split current at additional.To
//	  SameOriginLonger          split, then merge the overflow into the rest
//	  SameDestination           split current at additional.From
//	  Overlap                   three-way split, overflow merged into the rest
//	  Nested                    three-way split around additional
//
//	Every shape that adds passengers to an existing leg first checks
//	current.Persons + additional.Persons <= capacity. When that fails the new
//	ride is appended after the last leg, or delegated to the rest.
//
//	For SameOriginLonger and Overlap the overflow ("tail") is merged into the
//	rest of the itinerary and then looked up again with Contains. If it cannot
//	be found at the head of the merged rest, the split is discarded and the whole
//	additional ride is delegated. That fallback is logged and reported through
//	the OnFallback hook.
//
// Complexity:
//
//   - Request: O(n) recursion depth, O(n) per level for copying, n = len(rides).
//   - Tick, QueueLength, FinalFloor: O(1).
//   - Contains, Validate: O(n).
//
// Errors (sentinel):
//
//   - ErrBadCapacity     – New called with capacity <= 0.
//   - ErrNotContiguous   – Validate found a gap between two legs.
//   - ErrOverCapacity    – Validate found a leg above capacity.
//   - ErrNegativePersons – Validate found a negative passenger count.
//   - ErrDegenerateRide  – Validate found a leg with From == To.
//
// Capacity overflow and same-floor requests are not errors.
//
// Thread safety:
//
//	Elevator values are immutable and safe to share. Keep the latest snapshot
//	returned by Request/Tick; older snapshots stay valid but stale.
//
// Example:
//
//	e, _ := elevator.New(10)
//	e = e.Request(ride.Request{From: 0, To: 2}).Request(ride.Request{From: 1, To: 3})
//	fmt.Println(e.Rides()) // [{0→1 ×1} {1→2 ×2} {2→3 ×1}]
package elevator
