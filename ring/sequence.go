package ring

import (
	"fmt"
	"iter"
	"math"

	"github.com/arloliu/jflat/errs"
	"github.com/arloliu/jflat/internal/options"
)

// DefaultCapacity is the capacity used by New when the requested capacity is negative.
const DefaultCapacity = 20

// growthFactor is the geometric factor applied when a growable sequence overflows.
const growthFactor = 2

// Sequence is a circular double-ended container over contiguous storage.
//
// Logical position i lives in physical slot (head + i) % cap. The storage is
// either owned by the sequence (allocated by New/Init, released by Destroy) or
// supplied by the caller (NewWithBuffer/InitWithBuffer), in which case the
// capacity is fixed and the sequence never reallocates or releases it.
//
// The zero value is uninitialized: every operation fails with errs.ErrNotInitialized
// until Init or InitWithBuffer is called.
//
// Sequence is not safe for concurrent use.
type Sequence[T any] struct {
	buf      []T
	head     int
	count    int
	fixed    bool
	borrowed bool
	maxCap   int // 0 means unbounded growth
}

// New creates a sequence that owns storage for capacity elements.
//
// A negative capacity selects DefaultCapacity. A zero capacity is rejected.
//
// Parameters:
//   - capacity: Number of elements the initial storage can hold
//   - opts: Optional configuration (WithFixedCapacity, WithMaxCapacity)
//
// Returns:
//   - *Sequence[T]: An empty, initialized sequence
//   - error: errs.ErrInvalidCapacity for zero capacity, or an option error
func New[T any](capacity int, opts ...Option) (*Sequence[T], error) {
	s := &Sequence[T]{}
	if err := s.Init(capacity, opts...); err != nil {
		return nil, err
	}

	return s, nil
}

// NewWithBuffer creates a fixed-capacity sequence over caller-supplied storage.
//
// The sequence borrows buf: the caller keeps ownership and must keep buf alive
// for as long as the sequence is used. The capacity equals len(buf).
func NewWithBuffer[T any](buf []T) (*Sequence[T], error) {
	s := &Sequence[T]{}
	if err := s.InitWithBuffer(buf); err != nil {
		return nil, err
	}

	return s, nil
}

// Init allocates owned storage for capacity elements on a zero-value sequence.
func (s *Sequence[T]) Init(capacity int, opts ...Option) error {
	if s.buf != nil {
		return errs.ErrAlreadyInitialized
	}
	if capacity < 0 {
		capacity = DefaultCapacity
	}
	if capacity == 0 {
		return errs.ErrInvalidCapacity
	}

	cfg := config{}
	if err := options.Apply(&cfg, opts...); err != nil {
		return err
	}
	if cfg.maxCapacity > 0 && cfg.maxCapacity < capacity {
		return fmt.Errorf("%w: initial capacity %d exceeds maximum %d",
			errs.ErrInvalidCapacity, capacity, cfg.maxCapacity)
	}

	s.buf = make([]T, capacity)
	s.fixed = cfg.fixed
	s.maxCap = cfg.maxCapacity
	s.borrowed = false
	s.head, s.count = 0, 0

	return nil
}

// InitWithBuffer initializes a zero-value sequence over caller-supplied storage.
// The resulting sequence has a fixed capacity of len(buf).
func (s *Sequence[T]) InitWithBuffer(buf []T) error {
	if s.buf != nil {
		return errs.ErrAlreadyInitialized
	}
	if len(buf) == 0 {
		return errs.ErrInvalidCapacity
	}

	s.buf = buf
	s.fixed = true
	s.borrowed = true
	s.maxCap = len(buf)
	s.head, s.count = 0, 0

	return nil
}

// Destroy releases owned storage, or drops the reference to borrowed storage.
// The sequence must be re-initialized before further use.
func (s *Sequence[T]) Destroy() error {
	if s.buf == nil {
		return errs.ErrNotInitialized
	}

	if !s.borrowed {
		clear(s.buf)
	}
	s.buf = nil
	s.head, s.count = 0, 0

	return nil
}

// Clear removes all elements in O(1) without releasing storage.
func (s *Sequence[T]) Clear() error {
	if s.buf == nil {
		return errs.ErrNotInitialized
	}
	s.head, s.count = 0, 0

	return nil
}

// Len returns the number of elements in the sequence.
func (s *Sequence[T]) Len() int {
	return s.count
}

// Cap returns the current capacity of the sequence.
func (s *Sequence[T]) Cap() int {
	return len(s.buf)
}

// IsEmpty reports whether the sequence holds no element.
func (s *Sequence[T]) IsEmpty() bool {
	return s.count == 0
}

// IsFull reports whether the sequence has reached its current capacity.
func (s *Sequence[T]) IsFull() bool {
	return s.buf != nil && s.count == len(s.buf)
}

// IsFixed reports whether the sequence rejects growth.
func (s *Sequence[T]) IsFixed() bool {
	return s.fixed
}

// IsBorrowed reports whether the storage was supplied by the caller.
func (s *Sequence[T]) IsBorrowed() bool {
	return s.borrowed
}

// Initialized reports whether the sequence has storage.
func (s *Sequence[T]) Initialized() bool {
	return s.buf != nil
}

func (s *Sequence[T]) slot(position int) int {
	i := s.head + position
	if i >= len(s.buf) {
		i -= len(s.buf)
	}

	return i
}

// Front returns the first element.
func (s *Sequence[T]) Front() (T, error) {
	return s.At(0)
}

// Back returns the last element.
func (s *Sequence[T]) Back() (T, error) {
	return s.At(s.count - 1)
}

// At returns the element at logical position.
func (s *Sequence[T]) At(position int) (T, error) {
	var zero T
	if s.buf == nil {
		return zero, errs.ErrNotInitialized
	}
	if s.count == 0 {
		return zero, errs.ErrEmpty
	}
	if position < 0 || position >= s.count {
		return zero, fmt.Errorf("%w: position %d, size %d", errs.ErrOutOfRange, position, s.count)
	}

	return s.buf[s.slot(position)], nil
}

// Set replaces the element at logical position.
func (s *Sequence[T]) Set(position int, v T) error {
	if s.buf == nil {
		return errs.ErrNotInitialized
	}
	if position < 0 || position >= s.count {
		return fmt.Errorf("%w: position %d, size %d", errs.ErrOutOfRange, position, s.count)
	}
	s.buf[s.slot(position)] = v

	return nil
}

// reserve makes room for one more element, growing the storage if allowed.
func (s *Sequence[T]) reserve() error {
	if s.buf == nil {
		return errs.ErrNotInitialized
	}
	if s.count < len(s.buf) {
		return nil
	}
	if s.fixed {
		return errs.ErrFull
	}

	return s.grow()
}

// grow doubles the capacity (bounded by the max capacity) and relinearizes the
// elements at offset 0. On failure the sequence is left untouched.
func (s *Sequence[T]) grow() error {
	oldCap := len(s.buf)
	newCap := oldCap * growthFactor
	if oldCap > math.MaxInt/growthFactor {
		newCap = math.MaxInt
	}
	if s.maxCap > 0 && newCap > s.maxCap {
		newCap = s.maxCap
	}
	if newCap <= oldCap {
		return fmt.Errorf("%w: capacity %d", errs.ErrCapacityExceeded, oldCap)
	}

	buf := make([]T, newCap)
	n := copy(buf, s.buf[s.head:min(s.head+s.count, oldCap)])
	if n < s.count {
		copy(buf[n:], s.buf[:s.count-n])
	}

	clear(s.buf)
	s.buf = buf
	s.head = 0

	return nil
}

// PushBack appends v after the last element.
//
// A full fixed sequence returns errs.ErrFull and a growable one grows first.
func (s *Sequence[T]) PushBack(v T) error {
	if err := s.reserve(); err != nil {
		return err
	}
	s.buf[s.slot(s.count)] = v
	s.count++

	return nil
}

// PushFront prepends v before the first element.
func (s *Sequence[T]) PushFront(v T) error {
	if err := s.reserve(); err != nil {
		return err
	}
	if s.head == 0 {
		s.head = len(s.buf) - 1
	} else {
		s.head--
	}
	s.buf[s.head] = v
	s.count++

	return nil
}

// Insert places v at logical position, shifting the elements between the
// insertion point and the nearer end by one slot. position must be in [0, Len()].
//
// The shift wraps across slot 0 when the occupied region wraps, so the cost is
// O(min(position, Len()-position)).
func (s *Sequence[T]) Insert(position int, v T) error {
	if s.buf == nil {
		return errs.ErrNotInitialized
	}
	if position < 0 || position > s.count {
		return fmt.Errorf("%w: position %d, size %d", errs.ErrOutOfRange, position, s.count)
	}
	if err := s.reserve(); err != nil {
		return err
	}

	if position < s.count/2 {
		// open the gap by moving the head segment one slot backward
		if s.head == 0 {
			s.head = len(s.buf) - 1
		} else {
			s.head--
		}
		for i := 0; i < position; i++ {
			s.buf[s.slot(i)] = s.buf[s.slot(i+1)]
		}
	} else {
		for i := s.count; i > position; i-- {
			s.buf[s.slot(i)] = s.buf[s.slot(i-1)]
		}
	}
	s.buf[s.slot(position)] = v
	s.count++

	return nil
}

// PopFront removes and returns the first element.
func (s *Sequence[T]) PopFront() (T, error) {
	v, err := s.Front()
	if err != nil {
		return v, err
	}

	var zero T
	s.buf[s.head] = zero
	s.head = s.slot(1)
	s.count--
	if s.count == 0 {
		s.head = 0
	}

	return v, nil
}

// PopBack removes and returns the last element.
func (s *Sequence[T]) PopBack() (T, error) {
	v, err := s.Back()
	if err != nil {
		return v, err
	}

	var zero T
	s.buf[s.slot(s.count-1)] = zero
	s.count--
	if s.count == 0 {
		s.head = 0
	}

	return v, nil
}

// Erase removes the element at logical position and compacts the storage,
// closing the gap from the nearer end.
func (s *Sequence[T]) Erase(position int) error {
	if s.buf == nil {
		return errs.ErrNotInitialized
	}
	if position < 0 || position >= s.count {
		return fmt.Errorf("%w: position %d, size %d", errs.ErrOutOfRange, position, s.count)
	}

	var zero T
	if position < s.count/2 {
		for i := position; i > 0; i-- {
			s.buf[s.slot(i)] = s.buf[s.slot(i-1)]
		}
		s.buf[s.head] = zero
		s.head = s.slot(1)
	} else {
		for i := position; i < s.count-1; i++ {
			s.buf[s.slot(i)] = s.buf[s.slot(i+1)]
		}
		s.buf[s.slot(s.count-1)] = zero
	}
	s.count--
	if s.count == 0 {
		s.head = 0
	}

	return nil
}

// All yields every element with its logical position, front to back.
// The sequence must not be modified during iteration.
func (s *Sequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < s.count; i++ {
			if !yield(i, s.buf[s.slot(i)]) {
				return
			}
		}
	}
}
