// Package tui is the terminal prompt shown when a page cannot be unlocked
// with a remembered or URL-provided access key.
//
// The prompt is a single masked input. Wrong keys raise a dismissible
// alert; the program exits once the page is unlocked or the user quits.
package tui
