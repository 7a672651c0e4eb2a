// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import (
	"strings"
)

// charset is the set of characters used in the data section of bech32
// strings. Note that this is ordered, such that for a given charset[i], i is
// the binary value of the character.
const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

// maxHrpLength is the longest allowed human-readable part.
const maxHrpLength = 83

// gen holds the generator coefficients of the BCH code underlying the bech32
// checksum, one 30-bit constant per bit of the accumulator that can be
// shifted out in a single polymod step.
var gen = [5]uint32{
	0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3,
}

// toBytes converts each character in the string 'chars' to the value of the
// index of the corresponding character in 'charset'. The lookup folds case,
// callers are expected to have rejected mixed case strings beforehand.
func toBytes(chars string) ([]byte, error) {
	decoded := make([]byte, 0, len(chars))
	for i := 0; i < len(chars); i++ {
		index := strings.IndexByte(charset, chars[i])
		if index < 0 {
			return nil, ErrNonCharsetChar(chars[i])
		}
		decoded = append(decoded, byte(index))
	}

	return decoded, nil
}

// toChars converts the byte slice 'data' to a string where each byte in
// 'data' encodes the index of a character in 'charset'.
func toChars(data []byte) (string, error) {
	result := make([]byte, 0, len(data))
	for _, b := range data {
		if int(b) >= len(charset) {
			return "", ErrInvalidDataByte(b)
		}
		result = append(result, charset[b])
	}

	return string(result), nil
}

// polymod is the polynomial remainder computation at the heart of the bech32
// checksum, run over the expanded hrp followed by the data values. The hrp
// expansion feeds the high 3 bits of each hrp character, then a zero, then
// the low 5 bits of each hrp character, binding the checksum to the hrp: a
// checksum computed for one hrp does not verify under another.
//
// The accumulator is 30 bits wide. Each step shifts the top 5 bits out, the
// next 5-bit value in, and folds one generator constant back in for each top
// bit that was set.
func polymod(hrp string, values ...[]byte) uint32 {
	chk := uint32(1)
	step := func(v byte) {
		top := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := 0; i < 5; i++ {
			if top>>uint(i)&1 == 1 {
				chk ^= gen[i]
			}
		}
	}

	for i := 0; i < len(hrp); i++ {
		step(hrp[i] >> 5)
	}
	step(0)
	for i := 0; i < len(hrp); i++ {
		step(hrp[i] & 31)
	}
	for _, vs := range values {
		for _, v := range vs {
			step(v)
		}
	}

	return chk
}

// checksumPlaceholder stands in for the 6 checksum values while the checksum
// itself is being computed.
var checksumPlaceholder = []byte{0, 0, 0, 0, 0, 0}

// computeChecksum returns the 6 checksum values for the given hrp and data,
// using the checksum constant of the given version. The hrp must already be
// lowercase.
func computeChecksum(hrp string, data []byte, version Version) []byte {
	chk := polymod(hrp, data, checksumPlaceholder) ^
		uint32(VersionToConsts[version])

	// Split the low 30 bits into six 5-bit groups, most significant
	// group first.
	checksum := make([]byte, 6)
	for i := 0; i < 6; i++ {
		checksum[i] = byte(chk >> uint(5*(5-i)) & 31)
	}

	return checksum
}

// verifyChecksum checks the data values, which must still include the
// trailing 6 checksum values, against the candidate checksum constants in
// order. It returns the version that verified, or VersionUnknown and false
// when none did.
func verifyChecksum(hrp string, values []byte) (Version, bool) {
	residue := ChecksumConst(polymod(hrp, values))
	for _, version := range checksumCandidates {
		if residue == VersionToConsts[version] {
			return version, true
		}
	}

	return VersionUnknown, false
}

// validateHrp checks that the human-readable part is non-empty, at most 83
// characters, made of printable ASCII characters (33-126) and not mixed
// case. The checks run in that order and each violation has its own error.
func validateHrp(hrp string) error {
	if len(hrp) == 0 {
		return ErrEmptyHrp{}
	}
	if len(hrp) > maxHrpLength {
		return ErrHrpTooLong(len(hrp))
	}
	for i := 0; i < len(hrp); i++ {
		if hrp[i] < 33 || hrp[i] > 126 {
			return ErrInvalidCharacter(rune(hrp[i]))
		}
	}
	if strings.ToLower(hrp) != hrp && strings.ToUpper(hrp) != hrp {
		return ErrMixedCase{}
	}

	return nil
}

// encodeGeneric performs the encoding shared by all checksum versions. The
// data must be 5-bit values. The checksum is always computed over the
// lowercase hrp so that the upper and lower renderings of a string verify
// identically; when the hrp was given uppercase the whole result is
// uppercased before returning.
func encodeGeneric(hrp string, data []byte, version Version) (string, error) {
	if err := validateHrp(hrp); err != nil {
		return "", err
	}

	// A checksummed bech32 string may not exceed 90 characters in total:
	// the hrp, the separator, the data and the 6 checksum characters.
	// Unchecksummed strings have no such cap.
	if version != VersionNone && len(hrp)+1+len(data)+6 > 90 {
		return "", ErrInvalidLength(len(hrp) + 1 + len(data) + 6)
	}

	lower := strings.ToLower(hrp)

	combined := data
	if version != VersionNone {
		combined = make([]byte, 0, len(data)+6)
		combined = append(combined, data...)
		combined = append(combined, computeChecksum(lower, data, version)...)
	}

	dataChars, err := toChars(combined)
	if err != nil {
		return "", err
	}

	encoded := lower + "1" + dataChars
	if hrp != lower {
		encoded = strings.ToUpper(encoded)
	}

	return encoded, nil
}

// Encode encodes the 5-bit data values into a bech32 string with the given
// human-readable part, terminated by a checksum computed with the original
// bech32 constant. Use ConvertBits first to regroup raw bytes into 5-bit
// values. The case of the output follows the case of the hrp.
func Encode(hrp string, data []byte) (string, error) {
	return encodeGeneric(hrp, data, Version0)
}

// EncodeM is the bech32m counterpart of Encode, terminating the string with
// a checksum computed with the bech32m constant defined in BIP-350.
func EncodeM(hrp string, data []byte) (string, error) {
	return encodeGeneric(hrp, data, VersionM)
}

// EncodeGeneric encodes the 5-bit data values with an explicitly chosen
// checksum version, including VersionNone which appends no checksum at all
// and lifts the 90 character cap.
func EncodeGeneric(hrp string, data []byte, version Version) (string, error) {
	if _, ok := VersionToConsts[version]; !ok && version != VersionNone {
		return "", ErrUnknownVersion(version)
	}

	return encodeGeneric(hrp, data, version)
}

// decodeGeneric decodes a checksummed bech32 string without enforcing the 90
// character cap, returning the lowercase hrp and the 5-bit data values with
// the checksum stripped, along with the version the checksum verified under.
func decodeGeneric(bech string) (string, []byte, Version, error) {
	// The string must at least fit a one character hrp, the separator
	// and the 6 character checksum.
	if len(bech) < 8 {
		return "", nil, VersionUnknown, ErrInvalidLength(len(bech))
	}

	// Only printable ASCII characters between 33 and 126 are allowed,
	// and the string must not mix lowercase and uppercase characters.
	// Both are established in a single scan before any checksum work.
	var hasLower, hasUpper bool
	for i := 0; i < len(bech); i++ {
		if bech[i] < 33 || bech[i] > 126 {
			return "", nil, VersionUnknown,
				ErrInvalidCharacter(rune(bech[i]))
		}
		hasLower = hasLower || (bech[i] >= 'a' && bech[i] <= 'z')
		hasUpper = hasUpper || (bech[i] >= 'A' && bech[i] <= 'Z')
		if hasLower && hasUpper {
			return "", nil, VersionUnknown, ErrMixedCase{}
		}
	}

	// Work with the lowercase string from here on.
	if hasUpper {
		bech = strings.ToLower(bech)
	}

	// The separator is the last '1' in the string. It is invalid if
	// missing, at the very start (empty hrp), or within the final 6
	// characters (the checksum cannot contain '1').
	one := strings.LastIndexByte(bech, '1')
	if one < 1 || one+7 > len(bech) {
		return "", nil, VersionUnknown, ErrInvalidSeparatorIndex(one)
	}

	hrp := bech[:one]
	if err := validateHrp(hrp); err != nil {
		return "", nil, VersionUnknown, err
	}

	// Each character in the data part corresponds to the byte with the
	// value of its index in the charset.
	values, err := toBytes(bech[one+1:])
	if err != nil {
		return "", nil, VersionUnknown, err
	}

	version, ok := verifyChecksum(hrp, values)
	if !ok {
		// Report the checksums that would have verified for either
		// flavor alongside the one actually found. The data part is
		// drawn from the charset, so re-encoding it cannot fail.
		payload := values[:len(values)-6]
		expected, _ := toChars(computeChecksum(hrp, payload, Version0))
		expectedM, _ := toChars(computeChecksum(hrp, payload, VersionM))
		return "", nil, VersionUnknown, ErrInvalidChecksum{
			Expected:  expected,
			ExpectedM: expectedM,
			Actual:    bech[len(bech)-6:],
		}
	}

	return hrp, values[:len(values)-6], version, nil
}

// Decode decodes a string carrying a bech32 or bech32m checksum, returning
// the lowercase human-readable part and the 5-bit data values with the
// checksum stripped. The checksum flavor is detected by trying the bech32
// constant first and the bech32m constant second; use DecodeGeneric to learn
// which one matched. Use ConvertBits to regroup the data values into bytes.
func Decode(bech string) (string, []byte, error) {
	hrp, values, _, err := DecodeGeneric(bech)
	return hrp, values, err
}

// DecodeGeneric is identical to Decode but also returns the checksum version
// the string verified under, either Version0 or VersionM.
func DecodeGeneric(bech string) (string, []byte, Version, error) {
	// The maximum length of a checksummed bech32 string is 90 characters.
	if len(bech) > 90 {
		return "", nil, VersionUnknown, ErrInvalidLength(len(bech))
	}

	return decodeGeneric(bech)
}

// DecodeNoLimit is identical to Decode except that it does not enforce the
// 90 character cap on the overall string, only the 83 character cap on the
// hrp. This is useful for formats that reuse the bech32 checksum over longer
// payloads.
func DecodeNoLimit(bech string) (string, []byte, error) {
	hrp, values, _, err := decodeGeneric(bech)
	return hrp, values, err
}

// ConvertBits converts a byte slice where each byte encodes fromBits bits to
// a byte slice where each byte encodes toBits bits. The input is treated as
// a single big-endian bitstream that is sliced into groups of toBits bits,
// left to right. Both group widths must be between 1 and 8 bits and every
// input byte must fit in fromBits bits.
//
// With pad set, a final partial group is zero-filled on the right. Without
// it, the leftover bits are discarded, but only when they form a strict
// partial group (fewer than fromBits bits) and are all zero; anything else
// fails with ErrInvalidIncompleteGroup, since it means the input packed too
// little data into too many groups, or was corrupted.
func ConvertBits(data []byte, fromBits, toBits uint8, pad bool) ([]byte, error) {
	if fromBits < 1 || fromBits > 8 || toBits < 1 || toBits > 8 {
		return nil, ErrInvalidBitGroups{}
	}

	// Accumulate input groups on the right of acc and peel off output
	// groups from the left as soon as enough bits are in. The
	// accumulator never holds more than fromBits+toBits-1 bits.
	var (
		acc  uint32
		bits uint8
	)
	maxv := uint32(1)<<toBits - 1
	regrouped := make([]byte, 0, (len(data)*int(fromBits)+
		int(toBits)-1)/int(toBits))

	for _, b := range data {
		if uint32(b) > uint32(1)<<fromBits-1 {
			return nil, ErrInvalidDataByte(b)
		}

		acc = acc<<fromBits | uint32(b)
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			regrouped = append(regrouped, byte(acc>>bits&maxv))
		}
	}

	if pad {
		if bits > 0 {
			regrouped = append(regrouped, byte(acc<<(toBits-bits)&maxv))
		}
	} else if bits >= fromBits || acc<<(toBits-bits)&maxv != 0 {
		return nil, ErrInvalidIncompleteGroup{}
	}

	return regrouped, nil
}
