package chunk

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeFromBytes(t *testing.T) {
	expected := [4]byte{82, 117, 83, 116}
	actual := TypeFromBytes([4]byte{82, 117, 83, 116})

	assert.Equal(t, expected, actual.Bytes())
}

func TestTypeFromString(t *testing.T) {
	expected := TypeFromBytes([4]byte{82, 117, 83, 116})
	actual, err := TypeFromString("RuSt")

	assert.Nil(t, err)
	assert.Equal(t, expected, actual)
}

func TestTypeIsCritical(t *testing.T) {
	tc, err := TypeFromString("RuSt")
	assert.Nil(t, err)
	assert.True(t, tc.IsCritical())
}

func TestTypeIsNotCritical(t *testing.T) {
	tc, err := TypeFromString("ruSt")
	assert.Nil(t, err)
	assert.False(t, tc.IsCritical())
}

func TestTypeIsPublic(t *testing.T) {
	tc, err := TypeFromString("RUSt")
	assert.Nil(t, err)
	assert.True(t, tc.IsPublic())
}

func TestTypeIsNotPublic(t *testing.T) {
	tc, err := TypeFromString("RuSt")
	assert.Nil(t, err)
	assert.False(t, tc.IsPublic())
}

func TestTypeReservedBitValid(t *testing.T) {
	tc, err := TypeFromString("RuSt")
	assert.Nil(t, err)
	assert.True(t, tc.IsReservedBitValid())
	assert.True(t, tc.IsValid())
}

func TestTypeReservedBitInvalid(t *testing.T) {
	tc, err := TypeFromString("Rust")
	assert.Nil(t, err)
	assert.False(t, tc.IsReservedBitValid())
	assert.False(t, tc.IsValid())
}

func TestTypeIsSafeToCopy(t *testing.T) {
	tc, err := TypeFromString("RuSt")
	assert.Nil(t, err)
	assert.True(t, tc.IsSafeToCopy())
}

func TestTypeIsUnsafeToCopy(t *testing.T) {
	tc, err := TypeFromString("RuST")
	assert.Nil(t, err)
	assert.False(t, tc.IsSafeToCopy())
}

func TestTypeFromStringRejectsNonLetter(t *testing.T) {
	_, err := TypeFromString("Ru1t")
	assert.True(t, errors.Is(err, ErrInvalidCharacter))
}

func TestTypeFromStringRejectsWrongLength(t *testing.T) {
	_, err := TypeFromString("Rus")
	assert.True(t, errors.Is(err, ErrInvalidLength))

	_, err = TypeFromString("Ruster")
	assert.True(t, errors.Is(err, ErrInvalidLength))

	_, err = TypeFromString("")
	assert.True(t, errors.Is(err, ErrInvalidLength))
}

func TestTypeText(t *testing.T) {
	tc, err := TypeFromString("RuSt")
	assert.Nil(t, err)

	s, err := tc.Text()
	assert.Nil(t, err)
	assert.Equal(t, "RuSt", s)
	assert.Equal(t, "RuSt", tc.String())
}

func TestTypeTextRejectsInvalidUtf8(t *testing.T) {
	// raw bytes skip character validation, so a non-text code is constructible
	tc := TypeFromBytes([4]byte{0xff, 0xfe, 0x00, 0x01})

	_, err := tc.Text()
	assert.True(t, errors.Is(err, ErrInvalidText))
	assert.Equal(t, "0xfffe0001", tc.String())
}

func TestTypeEquality(t *testing.T) {
	a := TypeFromBytes([4]byte{82, 117, 83, 116})
	b, err := TypeFromString("RuSt")
	assert.Nil(t, err)
	assert.True(t, a == b)
}
