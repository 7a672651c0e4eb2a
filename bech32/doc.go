// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package bech32 provides a Go implementation of the bech32 and bech32m
formats.

Bech32 strings consist of a human-readable part (hrp), followed by the
separator 1, then a data part encoded using the 32 characters
"qpzry9x8gf2tvdw0s3jn54khce6mua7l" and normally terminated by a 6
character checksum. The checksum is computed with one of two constants,
selecting the original bech32 flavor or the newer bech32m flavor; a
third mode omits the checksum entirely.

More info: https://github.com/bitcoin/bips/blob/master/bip-0173.mediawiki
and https://github.com/bitcoin/bips/blob/master/bip-0350.mediawiki
*/
package bech32
