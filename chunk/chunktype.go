package chunk

import (
	"fmt"
	"unicode/utf8"
)

// TypeCode is a 4-byte PNG chunk type. Bit 5 of each byte encodes a property
// flag, which is why the bytes are conventionally ASCII letters: uppercase has
// the bit clear, lowercase has it set.
//
// TypeCode is a value type; == compares the raw bytes.
type TypeCode struct {
	b [4]byte
}

// bit 5, the case bit of an ASCII letter
const propertyBit = 0x20

func isASCIILetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// TypeFromBytes builds a TypeCode from 4 raw bytes. No character validation
// happens here: the wire can carry any bytes, and the flags are still derived
// positionally.
func TypeFromBytes(b [4]byte) TypeCode {
	return TypeCode{b: b}
}

// TypeFromString builds a TypeCode from text. The input must be exactly 4
// characters, all ASCII letters.
func TypeFromString(s string) (TypeCode, error) {
	if len(s) != 4 {
		return TypeCode{}, fmt.Errorf("%w, got %d", ErrInvalidLength, len(s))
	}
	var b [4]byte
	for i := 0; i < 4; i++ {
		if !isASCIILetter(s[i]) {
			return TypeCode{}, fmt.Errorf("%w, got %q", ErrInvalidCharacter, s[i])
		}
		b[i] = s[i]
	}
	return TypeCode{b: b}, nil
}

// Bytes returns a copy of the 4 raw bytes.
func (t TypeCode) Bytes() [4]byte {
	return t.b
}

// IsCritical reports whether the chunk is critical to displaying the file,
// i.e. the ancillary bit (byte 0) is clear.
func (t TypeCode) IsCritical() bool {
	return t.b[0]&propertyBit == 0
}

// IsPublic reports whether the type is publicly registered, i.e. the private
// bit (byte 1) is clear.
func (t TypeCode) IsPublic() bool {
	return t.b[1]&propertyBit == 0
}

// IsReservedBitValid reports whether the reserved bit (byte 2) is clear, as
// required of conforming type codes.
func (t TypeCode) IsReservedBitValid() bool {
	return t.b[2]&propertyBit == 0
}

// IsValid reports whether the type code is valid. Today that is exactly
// IsReservedBitValid.
func (t TypeCode) IsValid() bool {
	return t.IsReservedBitValid()
}

// IsSafeToCopy reports whether the safe-to-copy bit (byte 3) is set. Note the
// inverted sense relative to the other predicates: set means safe.
func (t TypeCode) IsSafeToCopy() bool {
	return t.b[3]&propertyBit != 0
}

// Text renders the type code as text, failing with ErrInvalidText when the
// bytes are not valid UTF-8.
func (t TypeCode) Text() (string, error) {
	if !utf8.Valid(t.b[:]) {
		return "", fmt.Errorf("type code %w", ErrInvalidText)
	}
	return string(t.b[:]), nil
}

// String renders the type code for display, falling back to hex when the
// bytes are not text.
func (t TypeCode) String() string {
	s, err := t.Text()
	if err != nil {
		return fmt.Sprintf("0x%x", t.b[:])
	}
	return s
}
