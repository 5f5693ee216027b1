// Package chunk implements the PNG chunk record format: a big-endian length
// prefix, a 4-byte type code, the payload, and a CRC-32 footer computed over
// type + payload. Chunks are immutable once built and safe to read from
// multiple goroutines.
package chunk

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"unicode/utf8"
)

/*
wire layout

	length    +    type    +    data    +    crc
	4 (BE)         4             N           4 (BE)

crc covers type + data, CRC-32/ISO-HDLC (the IEEE table), per the PNG spec.
*/

const (
	lengthSize = 4
	typeSize   = 4
	crcSize    = 4

	// Overhead is the wire size of a chunk with an empty payload.
	Overhead = lengthSize + typeSize + crcSize
)

// Chunk is a single parsed or constructed chunk. It owns its payload; the
// slice handed to New is copied, never aliased.
type Chunk struct {
	length uint32
	typ    TypeCode
	data   []byte
	crc    uint32
}

func checksum(t TypeCode, data []byte) uint32 {
	b := t.Bytes()
	sum := crc32.ChecksumIEEE(b[:])
	return crc32.Update(sum, crc32.IEEETable, data)
}

// New builds a chunk from a type code and payload, computing the crc. The
// payload is copied so later mutation of data cannot corrupt the chunk.
func New(t TypeCode, data []byte) *Chunk {
	owned := make([]byte, len(data))
	copy(owned, data)
	return &Chunk{
		length: uint32(len(owned)),
		typ:    t,
		data:   owned,
		crc:    checksum(t, owned),
	}
}

// Parse decodes one chunk from buf and verifies its crc. Bytes past the end
// of the chunk are ignored; callers scanning a stream should size the window
// with the length prefix first.
func Parse(buf []byte) (*Chunk, error) {
	if len(buf) == 0 {
		return nil, ErrEmptyInput
	}
	if len(buf) < Overhead {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrTruncated, len(buf), Overhead)
	}

	length := binary.BigEndian.Uint32(buf[:lengthSize])
	total := uint64(Overhead) + uint64(length)
	if uint64(len(buf)) < total {
		return nil, fmt.Errorf("%w: %d bytes, declared payload needs %d", ErrTruncated, len(buf), total)
	}

	var tb [4]byte
	copy(tb[:], buf[lengthSize:lengthSize+typeSize])
	typ := TypeFromBytes(tb)

	data := make([]byte, length)
	copy(data, buf[lengthSize+typeSize:lengthSize+typeSize+int(length)])

	stored := binary.BigEndian.Uint32(buf[lengthSize+typeSize+int(length):])
	expected := checksum(typ, data)
	if expected != stored {
		return nil, &CRCMismatchError{Expected: expected, Found: stored}
	}

	return &Chunk{
		length: length,
		typ:    typ,
		data:   data,
		crc:    stored,
	}, nil
}

// Length returns the payload byte count.
func (c *Chunk) Length() uint32 {
	return c.length
}

// Type returns the chunk's type code.
func (c *Chunk) Type() TypeCode {
	return c.typ
}

// Data returns the payload. The slice is the chunk's own storage and must not
// be modified.
func (c *Chunk) Data() []byte {
	return c.data
}

// CRC returns the checksum over type + payload.
func (c *Chunk) CRC() uint32 {
	return c.crc
}

// Size returns the wire size of the chunk, header and footer included.
func (c *Chunk) Size() int {
	return Overhead + len(c.data)
}

// Text renders the payload as text, failing with ErrInvalidText when it is
// not valid UTF-8.
func (c *Chunk) Text() (string, error) {
	if !utf8.Valid(c.data) {
		return "", fmt.Errorf("payload %w", ErrInvalidText)
	}
	return string(c.data), nil
}

// Encode serializes the chunk to its canonical wire form. Parse(Encode())
// always round-trips.
func (c *Chunk) Encode() []byte {
	result := make([]byte, c.Size())
	binary.BigEndian.PutUint32(result, c.length)

	tb := c.typ.Bytes()
	copy(result[lengthSize:], tb[:])
	copy(result[lengthSize+typeSize:], c.data)
	binary.BigEndian.PutUint32(result[lengthSize+typeSize+len(c.data):], c.crc)

	return result
}

func (c *Chunk) String() string {
	return fmt.Sprintf("(%v, %d bytes, crc %d)", c.typ, c.length, c.crc)
}
