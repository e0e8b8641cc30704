// Package dispatcher routes passenger requests across a small fleet of elevators.
//
// A Dispatcher is created with 1..4 elevators of equal capacity, named A, B, C
// and D in creation order. Names are never reassigned.
//
// Selection:
//
//	For every request the fleet is sorted (stably) by
//	  1. ascending queue length (number of rides still queued), then
//	  2. ascending distance between the request's origin floor and the
//	     elevator's final floor (where it will rest once its itinerary is done).
//	The first elevator wins; remaining ties go to the earliest name.
//	The request is folded into that elevator's itinerary (see package elevator)
//	and the new snapshot replaces the old one.
//
// Time:
//
//	Tick advances every elevator one floor. There is no internal clock; the
//	caller decides when time passes.
//
// Errors (sentinel):
//
//   - ErrBadFleetSize – fleet size outside 1..4.
//   - ErrBadCapacity  – non-positive elevator capacity.
//
// Thread safety:
//
//	All methods lock one mutex around the fleet. Snapshot returns a deep copy
//	that is safe to keep and modify.
//
// Example:
//
//	d, _ := dispatcher.New(2, 10)
//	name := d.Request(ride.Request{From: 0, To: 3}) // "A"
//	d.Tick()
package dispatcher
