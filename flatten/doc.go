// Package flatten walks a JSON object and reports every leaf with its dotted path.
//
// Given
//
//	{"a":{"b":1,"c":2},"d":3}
//
// the iterator yields, in document order:
//
//	.a.b  1
//	.a.c  2
//	.d    3
//
// Only objects are descended into. Arrays, strings, numbers, booleans and null
// are leaves, reported with their raw text. Empty objects produce no leaf.
//
// # Descent stack
//
// Parent objects are saved on an explicit stack while a nested object is
// scanned. The first DefaultInlineDepth frames live inside the Iterator; deeper
// documents spill into a growable ring.Sequence allocated on first use, bounded
// by WithMaxDepth when set.
//
// # Failures
//
// The iterator never panics on bad input. A malformed span ends the object that
// contains it and the traversal resumes with the parent, so valid leaves before
// and after the damage are still produced; WithStrict stops at the first
// malformed span instead. Either way Err returns errs.ErrMalformedDocument
// once Next has returned false. An object nested deeper than WithMaxDepth is
// skipped and Err returns errs.ErrDepthExceeded.
//
// # Memory
//
// Paths are accumulated in a fixed buffer of MaxPathLength bytes; longer paths
// are truncated and flagged by Iterator.Truncated. Values borrow the document
// buffer, which must outlive them.
package flatten
