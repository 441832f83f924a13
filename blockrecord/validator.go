// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"github.com/bitmark-inc/statedb/fault"
	"github.com/bitmark-inc/statedb/merkle"
)

// ValidHeaderVersion - valid incoming block version
func ValidHeaderVersion(currentVersion uint16, incomingVersion uint16) error {
	if incomingVersion < MinimumVersion {
		return fault.ErrInvalidBlockHeader
	}

	// incoming block version must be the same or higher than previous version
	if currentVersion > incomingVersion {
		return fault.ErrBlockVersionDecreased
	}

	return nil
}

// ValidBlockLinkage - incoming block must point at the current block
func ValidBlockLinkage(currentDigest merkle.Digest, incomingDigestOfPreviousBlock merkle.Digest) error {
	if currentDigest != incomingDigestOfPreviousBlock {
		return fault.ErrPreviousBlockMismatch
	}
	return nil
}

// ValidNextHeight - heights increase by exactly one
func ValidNextHeight(currentHeight uint32, nextHeight uint32) error {
	if nextHeight != currentHeight+1 {
		return fault.ErrHeightOutOfSequence
	}
	return nil
}

// ValidSuccessor - all checks of a block against its predecessor
func ValidSuccessor(previous *Header, next *Header) error {
	if err := ValidHeaderVersion(previous.Version, next.Version); nil != err {
		return err
	}
	if err := ValidNextHeight(previous.Height, next.Height); nil != err {
		return err
	}
	return ValidBlockLinkage(previous.Digest(), next.PreviousBlock)
}
