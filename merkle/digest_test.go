// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/statedb/fault"
	"github.com/bitmark-inc/statedb/merkle"
)

func TestScanFmt(t *testing.T) {

	// big endian
	stringDigest := "00000000440b921e1b77c6c0487ae5616de67f788f44ae2a5af6e2194d16b6f8"

	var d merkle.Digest
	n, err := fmt.Sscan(stringDigest, &d)
	require.NoError(t, err, "hex to digest")
	require.Equal(t, 1, n, "scanned items")

	// bytes as little endian format
	expected := merkle.Digest{
		0xf8, 0xb6, 0x16, 0x4d,
		0x19, 0xe2, 0xf6, 0x5a,
		0x2a, 0xae, 0x44, 0x8f,
		0x78, 0x7f, 0xe6, 0x6d,
		0x61, 0xe5, 0x7a, 0x48,
		0xc0, 0xc6, 0x77, 0x1b,
		0x1e, 0x92, 0x0b, 0x44,
		0x00, 0x00, 0x00, 0x00,
	}
	assert.Equal(t, expected, d, "little endian bytes")
	assert.Equal(t, stringDigest, fmt.Sprintf("%s", d), "%s")
	assert.Equal(t, "<SHA3-256:"+stringDigest+">", fmt.Sprintf("%#v", d), "%#v")

	_, err = fmt.Sscan("0011", &d)
	assert.Equal(t, fault.ErrInvalidDigest, err, "short hex")
}

func TestDigest(t *testing.T) {
	d := merkle.NewDigest([]byte("hello world"))

	// big endian
	// printf '%s' 'hello world' | sha3sum -a 256 | awk '{for(i=length($1);i>0;i-=2)x=x substr($1,i-1,2);print x}'
	stringDigest := "38394ef2fb3b1ca394fd72d9a1fb71caf322769ec8aa9909047343567ecc4b64"

	var expected merkle.Digest
	_, err := fmt.Sscan(stringDigest, &expected)
	require.NoError(t, err, "hex to digest")
	assert.Equal(t, expected, d, "digest")
	assert.False(t, d.IsZero(), "not zero")
	assert.True(t, merkle.Digest{}.IsZero(), "zero")
}

func TestDigestJSON(t *testing.T) {
	d := merkle.NewDigest([]byte("json"))

	buffer, err := json.Marshal(d)
	require.NoError(t, err, "marshal")

	var round merkle.Digest
	require.NoError(t, json.Unmarshal(buffer, &round), "unmarshal")
	assert.Equal(t, d, round, "round trip")

	assert.Equal(t, fault.ErrInvalidDigest, round.UnmarshalText([]byte("abcd")), "short text")
	assert.Equal(t, fault.ErrInvalidDigest, round.UnmarshalText(make([]byte, 66)), "long text")
}

func TestDisplayAndTextOrder(t *testing.T) {
	d := merkle.NewDigest([]byte("owner"))

	text, err := d.MarshalText()
	require.NoError(t, err, "marshal")
	assert.NotEqual(t, d.String(), string(text), "display is reversed")

	var scanned merkle.Digest
	_, err = fmt.Sscan(d.String(), &scanned)
	require.NoError(t, err, "scan display form")
	assert.Equal(t, d, scanned, "scan is the inverse of String")

	var unmarshalled merkle.Digest
	require.NoError(t, unmarshalled.UnmarshalText(text), "unmarshal")
	assert.Equal(t, d, unmarshalled, "UnmarshalText is the inverse of MarshalText")

	var wrong merkle.Digest
	require.NoError(t, wrong.UnmarshalText([]byte(d.String())), "unmarshal display form")
	assert.NotEqual(t, d, wrong, "display form is not text form")
}

func TestDigestFromBytes(t *testing.T) {
	var d merkle.Digest
	assert.Equal(t, fault.ErrInvalidDigest, merkle.DigestFromBytes(&d, []byte{1, 2, 3}), "short")

	b := make([]byte, merkle.DigestLength)
	b[0] = 0x42
	require.NoError(t, merkle.DigestFromBytes(&d, b), "exact")
	assert.Equal(t, byte(0x42), d[0], "copied")
}
