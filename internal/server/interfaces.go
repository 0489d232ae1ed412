// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server is the lifecycle of a transport server.
type Server interface {
	// RunServer serves requests until ctx is cancelled, then shuts down
	// and returns. A listener failure is returned immediately.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting connections and waits for active requests
	// to finish, or for ctx to expire.
	Shutdown(ctx context.Context) error
}
