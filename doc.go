// Copyright (c) 2024 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package bech32util exposes byte-level bech32 encoding and decoding with
string-selected checksum modes.

It is a thin boundary over the core codec in the bech32 package: Encode and
EncodeLower take raw bytes and one of the mode strings "bech32", "bech32m"
or "nochecksum", Decode takes a checksummed string and returns the
human-readable part and raw bytes. All operations are pure functions over
their inputs and safe for concurrent use.
*/
package bech32util
