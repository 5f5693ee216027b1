package chunk

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when Parse is called on a zero-length buffer.
	ErrEmptyInput = errors.New("no chunk data found")

	// ErrTruncated is returned when a buffer is too short for the header,
	// the declared payload, or the crc footer.
	ErrTruncated = errors.New("truncated chunk data")

	// ErrInvalidCRC is returned when the stored crc disagrees with the one
	// recomputed over type + payload. Use errors.Is to match it; the concrete
	// error is a *CRCMismatchError carrying both values.
	ErrInvalidCRC = errors.New("invalid crc, the data may be corrupted")

	// ErrInvalidLength is returned when a type code string is not exactly 4
	// characters.
	ErrInvalidLength = errors.New("type code must be exactly 4 characters")

	// ErrInvalidCharacter is returned when a type code string contains a
	// character outside A-Z and a-z.
	ErrInvalidCharacter = errors.New("type code may only contain characters A-Z or a-z")

	// ErrInvalidText is returned when bytes requested as text are not valid
	// UTF-8.
	ErrInvalidText = errors.New("bytes are not valid utf-8 text")
)

// CRCMismatchError reports a crc verification failure during Parse.
type CRCMismatchError struct {
	Expected uint32 // recomputed over type bytes + payload
	Found    uint32 // stored in the buffer
}

func (e *CRCMismatchError) Error() string {
	return fmt.Sprintf("crc mismatch: expected %d, found %d", e.Expected, e.Found)
}

func (e *CRCMismatchError) Unwrap() error {
	return ErrInvalidCRC
}
