// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32util

import (
	"fmt"
	"strings"

	"github.com/unionlabs/bech32util/bech32"
)

// Modes understood by Encode and EncodeLower, selecting the checksum
// appended to the encoded string. ModeNoChecksum produces a string with no
// error detection at all; such strings cannot be decoded by Decode, which
// assumes checksummed input.
const (
	ModeBech32     = "bech32"
	ModeBech32M    = "bech32m"
	ModeNoChecksum = "nochecksum"
)

// ErrUnknownMode is returned when the mode passed to Encode or EncodeLower
// is not one of the Mode constants. It signals a caller contract violation
// rather than bad data.
type ErrUnknownMode string

func (e ErrUnknownMode) Error() string {
	return fmt.Sprintf("unknown encoding mode %q, only bech32, bech32m "+
		"and nochecksum are supported", string(e))
}

// versionFromMode maps a mode string onto the checksum version of the core
// codec package.
func versionFromMode(mode string) (bech32.Version, error) {
	switch mode {
	case ModeBech32:
		return bech32.Version0, nil
	case ModeBech32M:
		return bech32.VersionM, nil
	case ModeNoChecksum:
		return bech32.VersionNone, nil
	default:
		return bech32.VersionUnknown, ErrUnknownMode(mode)
	}
}

// Encode regroups the data bytes into 5-bit values and encodes them into a
// bech32 string with the given human-readable part and checksum mode. The
// case of the output follows the case of the hrp: an all-uppercase hrp
// yields an all-uppercase string. For the checksummed modes the result may
// not exceed 90 characters, which caps the data length as a function of the
// hrp length.
func Encode(hrp string, data []byte, mode string) (string, error) {
	version, err := versionFromMode(mode)
	if err != nil {
		return "", err
	}

	converted, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", err
	}

	return bech32.EncodeGeneric(hrp, converted, version)
}

// EncodeLower is identical to Encode except that the output is forced to
// lowercase regardless of the case of the hrp. The hrp itself must still not
// mix cases.
func EncodeLower(hrp string, data []byte, mode string) (string, error) {
	encoded, err := Encode(hrp, data, mode)
	if err != nil {
		return "", err
	}

	return strings.ToLower(encoded), nil
}

// Decode decodes a string carrying a bech32 or bech32m checksum into its
// human-readable part and data bytes. The checksum flavor is detected
// automatically and the hrp is returned lowercase. The data part, with the
// checksum stripped, is regrouped from 5-bit values back into bytes; any
// set padding bit in the final partial group fails the whole call.
func Decode(s string) (string, []byte, error) {
	hrp, converted, err := bech32.Decode(s)
	if err != nil {
		return "", nil, err
	}

	data, err := bech32.ConvertBits(converted, 5, 8, false)
	if err != nil {
		return "", nil, err
	}

	return hrp, data, nil
}
