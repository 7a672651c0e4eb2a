// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bech32

import (
	"bytes"
	"strings"
	"testing"
)

// decodeTests holds strings that must decode successfully along with the
// checksum version they carry, and strings that must fail with the given
// error.
var decodeTests = []struct {
	str     string
	version Version
	err     error
}{
	{str: "a12uel5l", version: Version0},
	{str: "A12UEL5L", version: Version0},
	{str: "an83characterlonghumanreadablepartthatcontainsthenumber1andtheexcludedcharactersbio1tt5tgs", version: Version0},
	{str: "abcdef1qpzry9x8gf2tvdw0s3jn54khce6mua7lmqqqxw", version: Version0},
	{str: "split1checkupstagehandshakeupstreamerranterredcaperred2y9e3w", version: Version0},
	{str: "?1ezyfcl", version: Version0},
	{str: "union14qemq0vw6y3gc3u3e0aty2e764u4gs5lnxk4rv", version: Version0},
	{str: "union1v39zvpn9ff7quu9lxsawdwpg60lyfpz8pmhfey", version: Version0},
	{str: "UNION1V39ZVPN9FF7QUU9LXSAWDWPG60LYFPZ8PMHFEY", version: Version0},
	{str: "union106paz7c4udumwm9ld9n9v3rju4nue39z4nt8tg", version: Version0},
	{str: "a1lqfn3a", version: VersionM},
	{str: "A1LQFN3A", version: VersionM},
	{str: "abcdef1l7aum6echk45nj3s0wdvt2fg8x9yrzpqzd3ryx", version: VersionM},
	{str: "?1v759aa", version: VersionM},
	{str: "union1v39zvpn9ff7quu9lxsawdwpg60lyfpz85889ux", version: VersionM},

	{str: "short1f", err: ErrInvalidLength(7)},
	{str: " 1ezyfcl", err: ErrInvalidCharacter(' ')},
	{str: "\x7f1ezyfcl", err: ErrInvalidCharacter(0x7f)},
	{str: "A12uEL5L", err: ErrMixedCase{}},
	{str: "pzry9x0s3jn54khce6mua7l", err: ErrInvalidSeparatorIndex(-1)},
	{str: "1qzzfhee", err: ErrInvalidSeparatorIndex(0)},
	{str: "abcdef1q", err: ErrInvalidSeparatorIndex(6)},
	{str: "union1v39zbpn9ff7quu9lxsawdwpg60lyfpz8pmhfey", err: ErrNonCharsetChar('b')},
	{
		str: "onion1v39zvpn9ff7quu9lxsawdwpg60lyfpz8pmhfey",
		err: ErrInvalidChecksum{"kxttud", "r6m8e0", "pmhfey"},
	},
	{
		str: "union1v39zvpn9ff7quu9lxsawdwpg60lyfpz8pmhfex",
		err: ErrInvalidChecksum{"pmhfey", "5889ux", "pmhfex"},
	},
}

// TestDecode ensures strings decode or fail as expected, and that every
// valid string survives a decode/encode round trip back to its lowercase
// form under the detected checksum version.
func TestDecode(t *testing.T) {
	for _, test := range decodeTests {
		hrp, data, version, err := DecodeGeneric(test.str)
		if err != test.err {
			t.Errorf("%q: unexpected error %v, want %v", test.str,
				err, test.err)
			continue
		}
		if err != nil {
			continue
		}

		if version != test.version {
			t.Errorf("%q: detected version %v, want %v", test.str,
				version, test.version)
			continue
		}

		encoded, err := EncodeGeneric(hrp, data, version)
		if err != nil {
			t.Errorf("%q: failed to re-encode: %v", test.str, err)
			continue
		}
		if lower := strings.ToLower(test.str); encoded != lower {
			t.Errorf("%q: round trip mismatch: got %q, want %q",
				test.str, encoded, lower)
		}
	}
}

// TestDecodeNoLimit ensures the variant without the 90 character cap accepts
// longer strings while the capped variant rejects them, and that the hrp cap
// still holds.
func TestDecodeNoLimit(t *testing.T) {
	long := "long1qqqsyqcyq5rqwzqfpg9scrgwpugpzysnzs23v9ccrydpk8q" +
		"arc0jqgfzyvjz2f389q5j52ev95hz7vp3xgengdfkxuurjw3m8s7nu0clusksf"

	hrp, data, err := DecodeNoLimit(long)
	if err != nil {
		t.Fatalf("DecodeNoLimit failed: %v", err)
	}
	if hrp != "long" {
		t.Errorf("unexpected hrp %q", hrp)
	}
	converted, err := ConvertBits(data, 5, 8, false)
	if err != nil {
		t.Fatalf("ConvertBits failed: %v", err)
	}
	want := make([]byte, 64)
	for i := range want {
		want[i] = byte(i)
	}
	if !bytes.Equal(converted, want) {
		t.Errorf("unexpected data: %x", converted)
	}

	if _, _, err := Decode(long); err != ErrInvalidLength(len(long)) {
		t.Errorf("Decode of %d character string: got %v, want %v",
			len(long), err, ErrInvalidLength(len(long)))
	}

	longHrp := strings.Repeat("a", 84) + "1qqqqqq"
	if _, _, err := DecodeNoLimit(longHrp); err != ErrHrpTooLong(84) {
		t.Errorf("84 character hrp: got %v, want %v", err,
			ErrHrpTooLong(84))
	}
}

// TestEncodeInvalid ensures the hrp and length rules are enforced with their
// distinct errors before any string is produced.
func TestEncodeInvalid(t *testing.T) {
	tests := []struct {
		name string
		hrp  string
		data []byte
		err  error
	}{
		{name: "empty hrp", hrp: "", err: ErrEmptyHrp{}},
		{
			name: "hrp too long",
			hrp:  strings.Repeat("q", 84),
			err:  ErrHrpTooLong(84),
		},
		{
			name: "hrp invalid character",
			hrp:  "in valid",
			err:  ErrInvalidCharacter(' '),
		},
		{name: "hrp mixed case", hrp: "UnioN", err: ErrMixedCase{}},
		{
			name: "output too long",
			hrp:  "union",
			data: make([]byte, 79),
			err:  ErrInvalidLength(91),
		},
		{
			name: "data byte out of range",
			hrp:  "union",
			data: []byte{32},
			err:  ErrInvalidDataByte(32),
		},
	}

	for _, test := range tests {
		if _, err := Encode(test.hrp, test.data); err != test.err {
			t.Errorf("%s: got %v, want %v", test.name, err,
				test.err)
		}
	}

	if _, err := EncodeGeneric("union", nil, VersionUnknown); err !=
		ErrUnknownVersion(VersionUnknown) {

		t.Errorf("unknown version: got %v, want %v", err,
			ErrUnknownVersion(VersionUnknown))
	}
}

// TestEncodeNoChecksum ensures VersionNone appends no checksum and is not
// subject to the 90 character cap.
func TestEncodeNoChecksum(t *testing.T) {
	payload := []byte{
		12, 17, 5, 2, 12, 1, 19, 5, 9, 9, 30, 0, 28, 28, 5, 31,
		6, 16, 29, 14, 13, 14, 1, 8, 26, 15, 31, 4, 9, 1, 2, 7,
	}
	encoded, err := EncodeGeneric("union", payload, VersionNone)
	if err != nil {
		t.Fatalf("EncodeGeneric failed: %v", err)
	}
	if want := "union1v39zvpn9ff7quu9lxsawdwpg60lyfpz8"; encoded != want {
		t.Errorf("got %q, want %q", encoded, want)
	}

	// 100 data characters, well past the checksummed cap.
	encoded, err = EncodeGeneric("union", make([]byte, 100), VersionNone)
	if err != nil {
		t.Fatalf("EncodeGeneric failed: %v", err)
	}
	if want := "union1" + strings.Repeat("q", 100); encoded != want {
		t.Errorf("got %q, want %q", encoded, want)
	}
}

// TestCaseHandling ensures an uppercase hrp yields an uppercase string that
// still verifies, and that decoding returns the lowercase hrp.
func TestCaseHandling(t *testing.T) {
	payload := []byte{
		12, 17, 5, 2, 12, 1, 19, 5, 9, 9, 30, 0, 28, 28, 5, 31,
		6, 16, 29, 14, 13, 14, 1, 8, 26, 15, 31, 4, 9, 1, 2, 7,
	}
	encoded, err := Encode("UNION", payload)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if want := "UNION1V39ZVPN9FF7QUU9LXSAWDWPG60LYFPZ8PMHFEY"; encoded != want {
		t.Errorf("got %q, want %q", encoded, want)
	}

	hrp, data, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if hrp != "union" {
		t.Errorf("got hrp %q, want %q", hrp, "union")
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("got data %v, want %v", data, payload)
	}
}

// TestChecksumSensitivity substitutes every character of the data part of a
// valid string with every other charset character and ensures each
// substitution is caught by the checksum.
func TestChecksumSensitivity(t *testing.T) {
	const encoded = "union1v39zvpn9ff7quu9lxsawdwpg60lyfpz8pmhfey"

	for i := 6; i < len(encoded); i++ {
		for _, c := range charset {
			if byte(c) == encoded[i] {
				continue
			}

			mutated := encoded[:i] + string(c) + encoded[i+1:]
			_, _, err := Decode(mutated)
			if _, ok := err.(ErrInvalidChecksum); !ok {
				t.Errorf("substitution %q at %d: got %v, "+
					"want checksum error", string(c), i, err)
			}
		}
	}

	// Substituting hrp characters must fail as well since the checksum
	// is bound to the hrp.
	for _, mutated := range []string{
		"onion" + encoded[5:],
		"unjon" + encoded[5:],
	} {
		_, _, err := Decode(mutated)
		if _, ok := err.(ErrInvalidChecksum); !ok {
			t.Errorf("hrp mutation %q: got %v, want checksum "+
				"error", mutated[:5], err)
		}
	}
}

// TestConvertBits ensures regrouping between bit widths behaves as expected,
// in particular the strict treatment of leftover bits when padding is
// disallowed.
func TestConvertBits(t *testing.T) {
	tests := []struct {
		input    []byte
		fromBits uint8
		toBits   uint8
		pad      bool
		output   []byte
		err      error
	}{
		{input: []byte{}, fromBits: 8, toBits: 5, pad: true, output: []byte{}},
		{input: []byte{0xff}, fromBits: 8, toBits: 5, pad: true, output: []byte{31, 28}},
		{input: []byte{0x1f, 0x10}, fromBits: 5, toBits: 8, output: []byte{0xfc}},
		{input: []byte{0x00, 0x00}, fromBits: 5, toBits: 8, output: []byte{0x00}},

		// Set padding bits.
		{input: []byte{0x1f, 0x1f}, fromBits: 5, toBits: 8, err: ErrInvalidIncompleteGroup{}},
		// A whole spurious group, even if zero.
		{input: []byte{0x1f}, fromBits: 5, toBits: 8, err: ErrInvalidIncompleteGroup{}},
		{input: []byte{0x00}, fromBits: 5, toBits: 8, err: ErrInvalidIncompleteGroup{}},

		{input: []byte{0x20}, fromBits: 5, toBits: 8, err: ErrInvalidDataByte(0x20)},
		{input: []byte{0xff}, fromBits: 0, toBits: 5, err: ErrInvalidBitGroups{}},
		{input: []byte{0xff}, fromBits: 8, toBits: 9, err: ErrInvalidBitGroups{}},
	}

	for i, test := range tests {
		out, err := ConvertBits(test.input, test.fromBits, test.toBits,
			test.pad)
		if err != test.err {
			t.Errorf("test #%d: got error %v, want %v", i, err,
				test.err)
			continue
		}
		if err == nil && !bytes.Equal(out, test.output) {
			t.Errorf("test #%d: got %v, want %v", i, out,
				test.output)
		}
	}
}

// TestConvertBitsRoundTrip ensures bytes regrouped into quintets with
// padding always regroup back to the original bytes without it.
func TestConvertBitsRoundTrip(t *testing.T) {
	for size := 0; size < 17; size++ {
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(i * 17)
		}

		quintets, err := ConvertBits(data, 8, 5, true)
		if err != nil {
			t.Fatalf("size %d: ConvertBits failed: %v", size, err)
		}
		back, err := ConvertBits(quintets, 5, 8, false)
		if err != nil {
			t.Fatalf("size %d: inverse ConvertBits failed: %v",
				size, err)
		}
		if !bytes.Equal(back, data) {
			t.Errorf("size %d: round trip mismatch: got %v, "+
				"want %v", size, back, data)
		}
	}
}
