// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrAlreadyUnlocked = errors.New("page is already unlocked")
	ErrNotPrompting    = errors.New("gate is not waiting for an access key")
	ErrGateOpened      = errors.New("gate has already been opened")
)

// Messages shown to the user when a typed access phrase does not unlock the
// page. The second one, with two dots, means the page decrypted but is not
// the expected content.
const (
	MsgIncorrectKey       = "I'm sorry but the access key is incorrect."
	MsgIncorrectPlaintext = "I'm sorry but the access key is incorrect.."
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrSiteDirNotFound       = errors.New("site directory not found")
)
