// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client is the terminal counterpart of a browser visiting an
// encrypted page: it fetches the page, runs the decryption gate, prompts
// for a key when needed and writes out the unlocked page.
package client
