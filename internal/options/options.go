// Package options implements the generic functional-option pattern shared by
// the jflat packages.
package options

import "errors"

// Option configures a target of type T, usually a pointer to a private config struct.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function to Option.
type Func[T any] func(T) error

// apply implements the Option interface.
func (f Func[T]) apply(target T) error {
	if f == nil {
		return nil
	}

	return f(target)
}

// New creates an option from a function that may reject its input.
func New[T any](fn func(T) error) Func[T] {
	return Func[T](fn)
}

// NoError creates an option from a function that can't fail.
func NoError[T any](fn func(T)) Func[T] {
	return func(target T) error {
		fn(target)
		return nil
	}
}

// Apply applies options in order and stops at the first error.
// Nil options are skipped.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

// ApplyAll applies every option and joins the errors of those that failed.
// Used where a caller wants to report all invalid settings at once.
func ApplyAll[T any](target T, opts ...Option[T]) error {
	var errList []error
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			errList = append(errList, err)
		}
	}

	return errors.Join(errList...)
}
