// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/page_cipher_mock.go -package=mock

// PageCipher turns access phrases into key material and opens the
// encrypted body of a published page.
//
// Scheme:
//
//	material  = hex(MD5(phrase))                 (32 ASCII characters)
//	key       = material                         (AES-256)
//	iv        = material[16:]                    (16 bytes)
//	plaintext = AES-CBC-Decrypt(base64(body))    (PKCS#7, up to 32 pad bytes)
//
// A plaintext is accepted only when it contains [Sentinel]; there is no
// authentication tag.
type PageCipher interface {
	// Normalize hashes a raw access phrase into key material.
	Normalize(raw string) KeyMaterial

	// Decrypt decodes and decrypts ciphertext. Any failure is reported as
	// [ErrDecrypt].
	Decrypt(ciphertext string, material KeyMaterial) (string, error)

	// Unlock decrypts ciphertext and verifies that the plaintext carries the
	// sentinel marker. Returns [ErrDecrypt] or [ErrSentinelMissing].
	Unlock(ciphertext string, material KeyMaterial) (string, error)

	// Encrypt produces ciphertext in the format the publisher emits.
	Encrypt(plaintext string, material KeyMaterial) (string, error)
}
