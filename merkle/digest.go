// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

import (
	"encoding/hex"
	"fmt"
	"unicode"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/statedb/fault"
)

// DigestLength - number of bytes in the digest
const DigestLength = 32

// Digest - SHA3-256 value naming a block, a merkle node or an entity
// (owner, contract, asset)
//
// The array holds the hash output unchanged and is what gets stored in
// keys and values.  Block and entity ids are shown to people reversed,
// most significant byte first: String prints that form and Scan reads
// it.  JSON keeps the stored order (MarshalText).
type Digest [DigestLength]byte

// NewDigest - SHA3-256 of a byte slice
func NewDigest(record []byte) Digest {
	return sha3.Sum256(record)
}

// the same digest with its bytes in display order
func (digest Digest) flipped() Digest {
	for i, j := 0, DigestLength-1; i < j; i, j = i+1, j-1 {
		digest[i], digest[j] = digest[j], digest[i]
	}
	return digest
}

// String - display form for %s and %v
func (digest Digest) String() string {
	display := digest.flipped()
	return hex.EncodeToString(display[:])
}

// GoString - display form for %#v
func (digest Digest) GoString() string {
	return "<SHA3-256:" + digest.String() + ">"
}

// IsZero - all bytes zero
func (digest Digest) IsZero() bool {
	return Digest{} == digest
}

// Scan - read the display form, the inverse of String
func (digest *Digest) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		return unicode.Is(unicode.ASCII_Hex_Digit, c)
	})
	if nil != err {
		return err
	}

	var display Digest
	if err := decodeDigest(&display, token); nil != err {
		return err
	}
	*digest = display.flipped()
	return nil
}

// MarshalText - stored byte order as hex
func (digest Digest) MarshalText() ([]byte, error) {
	text := make([]byte, hex.EncodedLen(DigestLength))
	hex.Encode(text, digest[:])
	return text, nil
}

// UnmarshalText - inverse of MarshalText, not of String
func (digest *Digest) UnmarshalText(text []byte) error {
	return decodeDigest(digest, text)
}

// exactly one digest worth of hex, no byte reordering
func decodeDigest(digest *Digest, text []byte) error {
	if hex.EncodedLen(DigestLength) != len(text) {
		return fault.ErrInvalidDigest
	}
	var d Digest
	if _, err := hex.Decode(d[:], text); nil != err {
		return err
	}
	*digest = d
	return nil
}

// DigestFromBytes - copy a stored digest out of a record
func DigestFromBytes(digest *Digest, buffer []byte) error {
	if DigestLength != len(buffer) {
		return fault.ErrInvalidDigest
	}
	copy(digest[:], buffer)
	return nil
}
