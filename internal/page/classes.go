// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package page

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// CSS classes the published markup uses.
const (
	ClassContainer  = "hugo-encryptor-container"
	ClassCiphertext = "hugo-encryptor-cipher-text"
	ClassPrompt     = "hugo-encryptor-prompt"
	ClassForm       = "hugo-encryptor-form"
	ClassBanner     = "accesskey-warning"

	classHidden = "d-none"
	classFlex   = "d-flex"
)

// findByClass returns the first element in document order under n (n
// included) that carries class.
func findByClass(n *html.Node, class string) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && hasClass(n, class) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByClass(c, class); found != nil {
			return found
		}
	}
	return nil
}

func classList(n *html.Node) []string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == "class" {
			return strings.Fields(a.Val)
		}
	}
	return nil
}

func hasClass(n *html.Node, class string) bool {
	return slices.Contains(classList(n), class)
}

func setClassList(n *html.Node, classes []string) {
	val := strings.Join(classes, " ")
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == "class" {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: val})
}

func addClass(n *html.Node, class string) {
	if n == nil || hasClass(n, class) {
		return
	}
	setClassList(n, append(classList(n), class))
}

func removeClass(n *html.Node, class string) {
	if n == nil || !hasClass(n, class) {
		return
	}
	setClassList(n, slices.DeleteFunc(classList(n), func(c string) bool { return c == class }))
}

// textContent concatenates every text node under n.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
