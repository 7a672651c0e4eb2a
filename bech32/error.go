// Copyright (c) 2019 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import (
	"fmt"
)

// ErrMixedCase is returned when the bech32 string has both lowercase and
// uppercase characters.
type ErrMixedCase struct{}

func (e ErrMixedCase) Error() string {
	return "string not all lowercase or all uppercase"
}

// ErrEmptyHrp is returned when the human-readable part is empty.
type ErrEmptyHrp struct{}

func (e ErrEmptyHrp) Error() string {
	return "hrp must not be empty"
}

// ErrHrpTooLong is returned when the human-readable part is longer than the
// 83 character maximum. The value is the length of the offending hrp.
type ErrHrpTooLong int

func (e ErrHrpTooLong) Error() string {
	return fmt.Sprintf("hrp length %d exceeds maximum of 83", int(e))
}

// ErrInvalidCharacter is returned when a character outside of the printable
// ASCII range 33-126 is found, either in the human-readable part or anywhere
// in a string being decoded.
type ErrInvalidCharacter rune

func (e ErrInvalidCharacter) Error() string {
	return fmt.Sprintf("invalid character in string: '%c'", rune(e))
}

// ErrNonCharsetChar is returned when a character in the data part of a bech32
// string is not part of the bech32 charset.
type ErrNonCharsetChar rune

func (e ErrNonCharsetChar) Error() string {
	return fmt.Sprintf("invalid character not part of charset: %v", int(e))
}

// ErrInvalidLength is returned when a checksummed bech32 string falls outside
// the allowed 8 to 90 character range. The value is the length of the
// offending string.
type ErrInvalidLength int

func (e ErrInvalidLength) Error() string {
	return fmt.Sprintf("invalid bech32 string length %d", int(e))
}

// ErrInvalidSeparatorIndex is returned when the separator character '1' is
// found at an invalid position in the bech32 string.
type ErrInvalidSeparatorIndex int

func (e ErrInvalidSeparatorIndex) Error() string {
	return fmt.Sprintf("invalid separator index %d", int(e))
}

// ErrInvalidChecksum is returned when the extracted checksum of the string
// matches neither the bech32 nor the bech32m constant. Expected and
// ExpectedM hold the checksums that would have verified for each flavor,
// Actual holds the checksum found in the string.
type ErrInvalidChecksum struct {
	Expected  string
	ExpectedM string
	Actual    string
}

func (e ErrInvalidChecksum) Error() string {
	return fmt.Sprintf("invalid checksum (expected (bech32=%v, "+
		"bech32m=%v), got %v)", e.Expected, e.ExpectedM, e.Actual)
}

// ErrInvalidDataByte is returned when a byte in the data is not within the
// range of the 5-bit groups encodable by the charset.
type ErrInvalidDataByte byte

func (e ErrInvalidDataByte) Error() string {
	return fmt.Sprintf("invalid data byte: %v", byte(e))
}

// ErrInvalidBitGroups is returned when conversion is attempted between bit
// groups that are not 1-8 bits.
type ErrInvalidBitGroups struct{}

func (e ErrInvalidBitGroups) Error() string {
	return "only bit groups between 1 and 8 allowed"
}

// ErrInvalidIncompleteGroup is returned when byte conversion is attempted
// on a value with a trailing group that is either a whole extra group, or
// has one of its padding bits set. Either indicates corruption or an
// encoder that packed too little data into too many groups.
type ErrInvalidIncompleteGroup struct{}

func (e ErrInvalidIncompleteGroup) Error() string {
	return "invalid incomplete group"
}

// ErrUnknownVersion is returned when EncodeGeneric is given a version
// without a defined checksum constant.
type ErrUnknownVersion Version

func (e ErrUnknownVersion) Error() string {
	return fmt.Sprintf("unknown bech32 version %d", uint8(e))
}
