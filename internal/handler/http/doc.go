// Package http serves the published site and a small read-only API.
//
// Encrypted pages are delivered exactly like every other file: the server
// performs no access control. Requests are traced, logged and, when the
// client accepts it, gzip-compressed.
package http
