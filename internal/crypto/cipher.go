// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"
)

// padBlock is the block size the publisher pads plaintext to. It is twice
// the AES block size, so valid pad lengths run from 1 to 32.
const padBlock = 2 * aes.BlockSize

type pageCipher struct{}

// NewPageCipher constructs the [PageCipher] used for published pages.
func NewPageCipher() PageCipher {
	return &pageCipher{}
}

// Normalize implements [PageCipher].
func (p *pageCipher) Normalize(raw string) KeyMaterial {
	return Normalize(raw)
}

// Decrypt implements [PageCipher].
func (p *pageCipher) Decrypt(ciphertext string, material KeyMaterial) (string, error) {
	key, iv, err := material.cipherParams()
	if err != nil {
		return "", err
	}

	blob, err := base64.StdEncoding.DecodeString(strings.TrimSpace(ciphertext))
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %v", ErrDecrypt, err)
	}
	if len(blob) == 0 || len(blob)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: ciphertext length %d is not a multiple of the block size", ErrDecrypt, len(blob))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("%w: create cipher: %v", ErrDecrypt, err)
	}

	padded := make([]byte, len(blob))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, blob)

	plain, err := unpad(padded)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plain) {
		return "", fmt.Errorf("%w: plaintext is not valid UTF-8", ErrDecrypt)
	}

	return string(plain), nil
}

// Unlock implements [PageCipher].
func (p *pageCipher) Unlock(ciphertext string, material KeyMaterial) (string, error) {
	plain, err := p.Decrypt(ciphertext, material)
	if err != nil {
		return "", err
	}
	if !strings.Contains(plain, Sentinel) {
		return "", ErrSentinelMissing
	}

	return plain, nil
}

// Encrypt implements [PageCipher].
func (p *pageCipher) Encrypt(plaintext string, material KeyMaterial) (string, error) {
	key, iv, err := material.cipherParams()
	if err != nil {
		return "", err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	padded := pad([]byte(plaintext))
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)

	return base64.StdEncoding.EncodeToString(out), nil
}

func pad(data []byte) []byte {
	n := padBlock - len(data)%padBlock
	return append(data, bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(data []byte) ([]byte, error) {
	n := int(data[len(data)-1])
	if n == 0 || n > padBlock || n > len(data) {
		return nil, fmt.Errorf("%w: invalid padding length %d", ErrDecrypt, n)
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("%w: inconsistent padding", ErrDecrypt)
		}
	}

	return data[:len(data)-n], nil
}
