// Package ring provides Sequence, a bounded circular container with
// double-ended insertion and removal and random access by logical position.
//
// A Sequence is either growable or fixed:
//
//	s, _ := ring.New[int](4)                          // owned, grows by doubling
//	f, _ := ring.New[int](4, ring.WithFixedCapacity()) // owned, rejects overflow
//
//	var storage [8]int
//	b, _ := ring.NewWithBuffer(storage[:])              // borrowed, always fixed
//
// # Failure Model
//
// Operations never panic on misuse. Every mutating method returns an error from
// the errs package: errs.ErrNotInitialized before Init or after Destroy,
// errs.ErrOutOfRange for a bad position, errs.ErrFull when a fixed sequence is
// full, errs.ErrEmpty when reading from an empty sequence and
// errs.ErrCapacityExceeded when growth is capped by WithMaxCapacity. A failed
// operation leaves the sequence unchanged.
//
// # Growth
//
// A growable sequence doubles its capacity on overflow. The elements are copied
// in logical order to the start of the new storage, so head is reset to 0.
//
// # Thread Safety
//
// Sequence is not safe for concurrent use; callers must synchronize externally.
package ring
