// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// Errors from the storage engine itself are never exposed directly,
// they are wrapped in an opaque BackendError so callers can only tell
// that the engine failed, not why.
package fault
