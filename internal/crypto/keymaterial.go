// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
)

// Sentinel must appear verbatim in every valid plaintext.
const Sentinel = "--- DON'T MODIFY THIS LINE ---"

const (
	materialLen = 2 * md5.Size
	ivOffset    = 16
)

// KeyMaterial is the normalized form of an access phrase: the lowercase hex
// MD5 digest. It is what gets cached in the key-value store.
type KeyMaterial string

// Normalize hashes raw into [KeyMaterial]. MD5 is fixed by the wire format
// of published pages; it only obscures the phrase at rest.
func Normalize(raw string) KeyMaterial {
	sum := md5.Sum([]byte(raw))
	return KeyMaterial(hex.EncodeToString(sum[:]))
}

// String implements fmt.Stringer.
func (k KeyMaterial) String() string {
	return string(k)
}

// cipherParams splits material into the AES key and the CBC IV. The key is
// the whole material, the IV is everything from the 16th character on.
func (k KeyMaterial) cipherParams() (key, iv []byte, err error) {
	if len(k) != materialLen {
		return nil, nil, fmt.Errorf("%w: key material has %d characters, want %d", ErrDecrypt, len(k), materialLen)
	}

	return []byte(k), []byte(k[ivOffset:]), nil
}
