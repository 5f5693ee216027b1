// Package png assembles and disassembles whole PNG files as a signature
// followed by a sequence of chunks. It only understands the container; chunk
// contents are opaque except for their type codes.
package png

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/pngstash/pngstash/chunk"
)

// Signature is the 8-byte header every PNG file starts with.
var Signature = [8]byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}

var (
	// ErrBadSignature is returned when a buffer does not start with the PNG
	// signature.
	ErrBadSignature = errors.New("missing or invalid png signature")

	// ErrChunkNotFound is returned when no chunk matches the requested type.
	ErrChunkNotFound = errors.New("no chunk with that type")
)

// Png is an in-memory PNG file: the fixed signature plus an ordered chunk
// list.
type Png struct {
	chunks []*chunk.Chunk
}

// FromChunks builds a Png from an ordered chunk list.
func FromChunks(chunks []*chunk.Chunk) *Png {
	p := &Png{chunks: make([]*chunk.Chunk, len(chunks))}
	copy(p.chunks, chunks)
	return p
}

// Parse decodes a whole PNG file: signature check, then chunks back to back
// until the buffer is exhausted.
func Parse(data []byte) (*Png, error) {
	if len(data) < len(Signature) || !bytes.Equal(data[:len(Signature)], Signature[:]) {
		return nil, ErrBadSignature
	}

	p := &Png{}
	rest := data[len(Signature):]
	for len(rest) > 0 {
		// size the window from the length prefix so each chunk sees exactly
		// its own bytes
		if len(rest) < chunk.Overhead {
			return nil, fmt.Errorf("chunk %d: %w", len(p.chunks), chunk.ErrTruncated)
		}
		total := uint64(chunk.Overhead) + uint64(binary.BigEndian.Uint32(rest[:4]))
		if uint64(len(rest)) < total {
			return nil, fmt.Errorf("chunk %d: %w", len(p.chunks), chunk.ErrTruncated)
		}

		c, err := chunk.Parse(rest[:total])
		if err != nil {
			return nil, fmt.Errorf("chunk %d: %w", len(p.chunks), err)
		}
		p.chunks = append(p.chunks, c)
		rest = rest[total:]
	}
	return p, nil
}

// Header returns the PNG signature.
func (p *Png) Header() [8]byte {
	return Signature
}

// Chunks returns the chunk list in file order. The slice must not be
// modified.
func (p *Png) Chunks() []*chunk.Chunk {
	return p.chunks
}

// AppendChunk adds c to the end of the file.
func (p *Png) AppendChunk(c *chunk.Chunk) {
	p.chunks = append(p.chunks, c)
}

// ChunkByType returns the first chunk whose type renders as typeText, or nil.
func (p *Png) ChunkByType(typeText string) *chunk.Chunk {
	for _, c := range p.chunks {
		if s, err := c.Type().Text(); err == nil && s == typeText {
			return c
		}
	}
	return nil
}

// RemoveFirstChunk removes and returns the first chunk whose type renders as
// typeText.
func (p *Png) RemoveFirstChunk(typeText string) (*chunk.Chunk, error) {
	for i, c := range p.chunks {
		s, err := c.Type().Text()
		if err != nil || s != typeText {
			continue
		}
		p.chunks = append(p.chunks[:i], p.chunks[i+1:]...)
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrChunkNotFound, typeText)
}

// Bytes serializes the file: signature, then every chunk's wire form.
func (p *Png) Bytes() []byte {
	size := len(Signature)
	for _, c := range p.chunks {
		size += c.Size()
	}

	out := make([]byte, 0, size)
	out = append(out, Signature[:]...)
	for _, c := range p.chunks {
		out = append(out, c.Encode()...)
	}
	return out
}
