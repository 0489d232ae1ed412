// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrDecrypt is returned when the ciphertext cannot be decoded with the
	// given key material: bad base64, wrong block length, bad padding, a key
	// of the wrong size or a plaintext that is not valid UTF-8.
	ErrDecrypt = errors.New("page body could not be decrypted")

	// ErrSentinelMissing is returned when decryption produced text that
	// does not contain [Sentinel], which almost always means a wrong key.
	ErrSentinelMissing = errors.New("decrypted page body has no sentinel marker")
)
