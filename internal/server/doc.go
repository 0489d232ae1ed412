// Package server runs the static site over HTTP and shuts it down
// gracefully once the run context is cancelled.
package server
