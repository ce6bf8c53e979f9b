// Package jflat flattens JSON objects into (path, value) leaves without
// building a tree and without copying the document.
//
// Given
//
//	{"cfg":{"led":{"on":true}},"name":"lamp"}
//
// the leaves are ".cfg.led.on" = true and ".name" = "lamp", produced in
// document order by an iterator whose memory use is bounded: paths live in a
// fixed buffer and parent objects are saved on a stack that only allocates
// past DefaultInlineDepth levels of nesting.
//
// # Basic Usage
//
//	it, _ := jflat.NewIterator(data)
//	for it.Next() {
//	    fmt.Printf("%s = %s\n", it.PathBytes(), it.Raw())
//	}
//	if err := it.Err(); err != nil {
//	    // malformed or too deep: some leaves were skipped
//	}
//
// Typed access to a leaf:
//
//	v, ok := jflat.Lookup(data, ".cfg.port")
//	port, err := scalar.Uint(v)
//
// Many lookups on one document:
//
//	idx, _ := jflat.BuildIndex(data)
//	leaf, ok := idx.Get(".cfg.led.on")
//
// Compressed documents:
//
//	p, _ := jflat.Open(received, format.CompressionZstd)
//	defer p.Release()
//	leaves, _ := p.Flatten()
//
// # Package Structure
//
// This package provides convenient top-level wrappers. The building blocks are
// in document (views and tokenizer), flatten (iterator), scalar (conversions),
// index (hash-keyed lookup), payload and compress (compressed input) and ring
// (the bounded sequence behind the descent stack).
package jflat

import (
	"github.com/arloliu/jflat/document"
	"github.com/arloliu/jflat/flatten"
	"github.com/arloliu/jflat/format"
	"github.com/arloliu/jflat/index"
	"github.com/arloliu/jflat/internal/hash"
	"github.com/arloliu/jflat/payload"
)

// DefaultInlineDepth is the nesting depth handled without allocation.
const DefaultInlineDepth = flatten.DefaultInlineDepth

// MaxPathLength is the longest path reported without truncation.
const MaxPathLength = flatten.MaxPathLength

// NewIterator creates a flattening iterator over data, which must stay
// unmodified while the iterator and its values are in use.
//
// Parameters:
//   - data: JSON text holding an object
//   - opts: Iterator options (flatten.WithMaxDepth, flatten.WithStrict, flatten.WithLogger)
//
// Returns:
//   - *flatten.Iterator: Iterator positioned before the first leaf
//   - error: Option error
func NewIterator(data []byte, opts ...flatten.Option) (*flatten.Iterator, error) {
	return flatten.New(document.New(data), opts...)
}

// Flatten returns every leaf of the object in data.
func Flatten(data []byte, opts ...flatten.Option) ([]flatten.Leaf, error) {
	return flatten.Flatten(document.New(data), opts...)
}

// Lookup returns the value at a dotted path such as ".cfg.led.on".
func Lookup(data []byte, path string) (document.Value, bool) {
	return document.New(data).Lookup(path)
}

// BuildIndex flattens data once for repeated path lookups.
func BuildIndex(data []byte, opts ...index.Option) (*index.Index, error) {
	return index.Build(document.New(data), opts...)
}

// Open decodes a received payload compressed with ct.
func Open(data []byte, ct format.CompressionType, opts ...payload.Option) (*payload.Payload, error) {
	return payload.Open(data, ct, opts...)
}

// PathID computes the 64-bit identifier of a leaf path, as used by index.Index.GetByID.
//
// Parameters:
//   - path: Dotted leaf path, e.g. ".cfg.led.on"
//
// Returns:
//   - uint64: xxHash64 of the path
func PathID(path string) uint64 {
	return hash.ID(path)
}
