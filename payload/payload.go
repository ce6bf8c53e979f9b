// Package payload is the boundary where received documents enter jflat.
//
// A payload is a JSON document as it arrives over the wire or from disk,
// optionally compressed. Open decodes it into a pooled buffer and exposes the
// result as a document.View, ready to be flattened or indexed. Uncompressed
// payloads are borrowed, not copied.
//
// Every value derived from a Payload borrows its buffer: call Release only
// once they are no longer used.
package payload

import (
	"fmt"
	"io"

	"github.com/arloliu/jflat/compress"
	"github.com/arloliu/jflat/document"
	"github.com/arloliu/jflat/errs"
	"github.com/arloliu/jflat/flatten"
	"github.com/arloliu/jflat/format"
	"github.com/arloliu/jflat/index"
	"github.com/arloliu/jflat/internal/options"
	"github.com/arloliu/jflat/internal/pool"
)

// decodeSizeFactor estimates the decoded size of a compressed payload.
const decodeSizeFactor = 4

// Payload holds one decoded document.
type Payload struct {
	doc         []byte
	buf         *pool.ByteBuffer // nil when doc is borrowed from the caller
	compression format.CompressionType
	released    bool
}

// Open decodes data compressed with ct.
//
// With format.CompressionNone the payload borrows data, which must then stay
// unmodified until Release. Other types decompress into a pooled buffer.
//
// Parameters:
//   - data: The received bytes
//   - ct: How data is compressed
//   - opts: Optional configuration (WithMaxSize)
//
// Returns:
//   - *Payload: The decoded payload
//   - error: errs.ErrInvalidCompression, errs.ErrPayloadTooLarge, or a
//     decompression error
func Open(data []byte, ct format.CompressionType, opts ...Option) (*Payload, error) {
	cfg := config{}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(ct)
	if err != nil {
		return nil, err
	}

	if ct == format.CompressionNone {
		if err := cfg.check(len(data)); err != nil {
			return nil, err
		}

		return &Payload{doc: data, compression: ct}, nil
	}

	buf := pool.GetDocumentBuffer(len(data) * decodeSizeFactor)
	buf.B, err = codec.Decompress(buf.B[:0], data)
	if err == nil {
		err = cfg.check(buf.Len())
	}
	if err != nil {
		pool.PutDocumentBuffer(buf)
		return nil, fmt.Errorf("open %s payload: %w", ct, err)
	}

	return &Payload{doc: buf.B, buf: buf, compression: ct}, nil
}

// Read reads r to EOF and decodes the bytes read as a payload compressed with ct.
// The payload always owns its buffer.
func Read(r io.Reader, ct format.CompressionType, opts ...Option) (*Payload, error) {
	raw := pool.GetDocumentBuffer(0)
	if _, err := raw.ReadFrom(r); err != nil {
		pool.PutDocumentBuffer(raw)
		return nil, fmt.Errorf("read payload: %w", err)
	}

	p, err := Open(raw.B, ct, opts...)
	if err != nil {
		pool.PutDocumentBuffer(raw)
		return nil, err
	}

	if p.buf == nil {
		p.buf = raw
	} else {
		pool.PutDocumentBuffer(raw)
	}

	return p, nil
}

func (c config) check(size int) error {
	if c.maxSize > 0 && size > c.maxSize {
		return fmt.Errorf("%w: %d bytes exceeds %d", errs.ErrPayloadTooLarge, size, c.maxSize)
	}

	return nil
}

// Seal compresses a document with ct for sending or storage. The result is a
// new slice owned by the caller.
func Seal(doc []byte, ct format.CompressionType) ([]byte, error) {
	codec, err := compress.GetCodec(ct)
	if err != nil {
		return nil, err
	}

	return codec.Compress(nil, doc)
}

// Compression returns how the payload was received.
func (p *Payload) Compression() format.CompressionType {
	return p.compression
}

// Bytes returns the decoded document. It is nil after Release.
func (p *Payload) Bytes() []byte {
	return p.doc
}

// Len returns the size of the decoded document.
func (p *Payload) Len() int {
	return len(p.doc)
}

// View returns a view over the decoded document. It is empty after Release.
func (p *Payload) View() document.View {
	return document.New(p.doc)
}

// Iterator returns a flattening iterator over the document.
func (p *Payload) Iterator(opts ...flatten.Option) (*flatten.Iterator, error) {
	if p.released {
		return nil, errs.ErrPayloadReleased
	}

	return flatten.New(p.View(), opts...)
}

// Flatten collects every leaf of the document.
func (p *Payload) Flatten(opts ...flatten.Option) ([]flatten.Leaf, error) {
	if p.released {
		return nil, errs.ErrPayloadReleased
	}

	return flatten.Flatten(p.View(), opts...)
}

// Index builds a path index over the document.
func (p *Payload) Index(opts ...index.Option) (*index.Index, error) {
	if p.released {
		return nil, errs.ErrPayloadReleased
	}

	return index.Build(p.View(), opts...)
}

// Release returns the decoded buffer to the pool. Views, leaves and indexes
// obtained from the payload must not be used afterwards. Release is idempotent.
func (p *Payload) Release() {
	if p.released {
		return
	}
	p.released = true

	if p.buf != nil {
		pool.PutDocumentBuffer(p.buf)
		p.buf = nil
	}
	p.doc = nil
}
