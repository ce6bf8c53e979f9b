package flatten

import (
	"errors"

	"github.com/arloliu/jflat/document"
	"github.com/arloliu/jflat/errs"
	"github.com/arloliu/jflat/ring"
)

// DefaultInlineDepth is the number of frames the descent stack holds without
// allocating. Deeper documents spill into a growable ring.Sequence.
const DefaultInlineDepth = 10

// spillCapacity is the initial capacity of the dynamic frame storage.
const spillCapacity = 2 * DefaultInlineDepth

// Frame is the saved scan state of a parent object while one of its nested
// objects is traversed.
type Frame struct {
	// Span is the parent object.
	Span document.View
	// PathLen is the length of the parent's path prefix.
	PathLen int
	// Resume is the scan offset just past the nested member inside Span.
	Resume int
}

// descentStack is a LIFO of frames backed by a fixed ring.Sequence over inline
// storage. Once the inline frames are exhausted, further frames go to a
// growable sequence that is allocated on first use.
//
// The inline sequence borrows inline, so a descentStack must not be copied
// after init.
type descentStack struct {
	inline   [DefaultInlineDepth]Frame
	frames   ring.Sequence[Frame]
	spill    ring.Sequence[Frame]
	maxDepth int // 0 means unbounded
	onSpill  func(depth int)
}

func (s *descentStack) init(maxDepth int) error {
	s.maxDepth = maxDepth
	if s.frames.Initialized() {
		return s.reset()
	}

	return s.frames.InitWithBuffer(s.inline[:])
}

func (s *descentStack) reset() error {
	clear(s.inline[:])
	if err := s.frames.Clear(); err != nil {
		return err
	}
	if s.spill.Initialized() {
		return s.spill.Clear()
	}

	return nil
}

func (s *descentStack) len() int {
	return s.frames.Len() + s.spill.Len()
}

func (s *descentStack) push(f Frame) error {
	if s.maxDepth > 0 && s.len() >= s.maxDepth {
		return errs.ErrDepthExceeded
	}

	if s.spill.IsEmpty() {
		err := s.frames.PushBack(f)
		if !errors.Is(err, errs.ErrFull) {
			return err
		}
	}

	if !s.spill.Initialized() {
		if err := s.initSpill(); err != nil {
			return err
		}
	}
	if s.spill.IsEmpty() && s.onSpill != nil {
		s.onSpill(s.len())
	}

	if err := s.spill.PushBack(f); err != nil {
		if errors.Is(err, errs.ErrCapacityExceeded) {
			return errs.ErrDepthExceeded
		}
		return err
	}

	return nil
}

func (s *descentStack) initSpill() error {
	if s.maxDepth == 0 {
		return s.spill.Init(spillCapacity)
	}

	limit := s.maxDepth - DefaultInlineDepth

	return s.spill.Init(min(spillCapacity, limit), ring.WithMaxCapacity(limit))
}

func (s *descentStack) pop() (Frame, bool) {
	if !s.spill.IsEmpty() {
		f, err := s.spill.PopBack()
		return f, err == nil
	}

	f, err := s.frames.PopBack()

	return f, err == nil
}
