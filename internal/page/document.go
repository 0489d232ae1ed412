// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package page

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/net/html"
)

// Document is a parsed page. It implements service.Container and
// service.Banner.
type Document struct {
	mu        sync.Mutex
	root      *html.Node
	container *html.Node
	banner    *html.Node
}

// Parse reads a whole page. The page must contain a locked container.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParsePage, err)
	}

	container := findByClass(root, ClassContainer)
	if container == nil {
		return nil, ErrNoContainer
	}

	return &Document{
		root:      root,
		container: container,
		banner:    findByClass(root, ClassBanner),
	}, nil
}

// ParseString is Parse for an in-memory page.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Ciphertext returns the trimmed text of the ciphertext element.
func (d *Document) Ciphertext() (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := findByClass(d.container, ClassCiphertext)
	if n == nil {
		return "", ErrNoCiphertext
	}
	return strings.TrimSpace(textContent(n)), nil
}

// ShowUnlocked replaces everything inside the container with markup. The
// prompt, form and ciphertext go away with it.
func (d *Document) ShowUnlocked(markup string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	nodes, err := html.ParseFragment(strings.NewReader(markup), d.container)
	if err != nil {
		return fmt.Errorf("parse unlocked content: %w", err)
	}

	for c := d.container.FirstChild; c != nil; {
		next := c.NextSibling
		d.container.RemoveChild(c)
		c = next
	}
	for _, n := range nodes {
		d.container.AppendChild(n)
	}

	return nil
}

// ShowPrompt reveals the prompt and the form. Missing regions are ignored.
func (d *Document) ShowPrompt() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	removeClass(findByClass(d.container, ClassPrompt), classHidden)

	form := findByClass(d.container, ClassForm)
	addClass(form, classFlex)
	removeClass(form, classHidden)

	return nil
}

// ShowWarning reveals the access key banner, if the page has one.
func (d *Document) ShowWarning() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	removeClass(d.banner, classHidden)
	return nil
}

// HasBanner reports whether the page declares a warning banner.
func (d *Document) HasBanner() bool {
	return d.banner != nil
}

// BannerVisible reports whether the banner is currently shown.
func (d *Document) BannerVisible() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.banner != nil && !hasClass(d.banner, classHidden)
}

// PromptVisible reports whether the prompt form is currently shown.
func (d *Document) PromptVisible() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	form := findByClass(d.container, ClassForm)
	return form != nil && !hasClass(form, classHidden)
}

// PromptText returns the text of the prompt region, e.g. the hint shown
// above the input.
func (d *Document) PromptText() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := findByClass(d.container, ClassPrompt)
	if n == nil {
		return ""
	}
	return strings.Join(strings.Fields(textContent(n)), " ")
}

// Title returns the text of the page's <title>.
func (d *Document) Title() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	var find func(*html.Node) *html.Node
	find = func(n *html.Node) *html.Node {
		if n.Type == html.ElementNode && n.Data == "title" {
			return n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if t := find(c); t != nil {
				return t
			}
		}
		return nil
	}

	if t := find(d.root); t != nil {
		return strings.TrimSpace(textContent(t))
	}
	return ""
}

// Render writes the whole document as HTML.
func (d *Document) Render(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	return html.Render(w, d.root)
}

// ContainerHTML renders the inner HTML of the container.
func (d *Document) ContainerHTML() (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var buf bytes.Buffer
	for c := d.container.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", fmt.Errorf("render container: %w", err)
		}
	}
	return buf.String(), nil
}
