// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

import (
	"github.com/bitmark-inc/statedb/fault"
)

// largest number of leaves accepted, 24 bit positive number
const maximumLeaves = 0x1000000

// FullMerkleTree - every level of the tree
//
// structure is:
//   1. N * leaf digests
//   2. level 1..m digests
//   3. merkle root digest
func FullMerkleTree(leaves []Digest) []Digest {

	// compute length of leaves + all tree levels including root
	leafCount := len(leaves)

	totalLength := 1 // all leaves + space for the final root
	for n := leafCount; n > 1; n = (n + 1) / 2 {
		totalLength += n
	}

	tree := make([]Digest, totalLength)
	copy(tree[:], leaves)

	n := leafCount
	j := 0
	for workLength := leafCount; workLength > 1; workLength = (workLength + 1) / 2 {
		for i := 0; i < workLength; i += 2 {
			k := j + 1
			if i+1 == workLength {
				k = j // compensate for odd number
			}
			tree[n] = pair(tree[j], tree[k])
			n += 1
			j = k + 1
		}
	}
	return tree
}

// Root - merkle root of a list of leaves
func Root(leaves []Digest) (Digest, error) {
	if 0 == len(leaves) {
		return Digest{}, fault.ErrZeroLengthMerkleInput
	}
	if len(leaves) > maximumLeaves {
		return Digest{}, fault.ErrInvalidCount
	}
	tree := FullMerkleTree(leaves)
	return tree[len(tree)-1], nil
}

// hash of two concatenated nodes
func pair(left Digest, right Digest) Digest {
	b := make([]byte, 0, 2*DigestLength)
	b = append(b, left[:]...)
	b = append(b, right[:]...)
	return NewDigest(b)
}
