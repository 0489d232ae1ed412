// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package page

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lockedPage = `<!DOCTYPE html>
<html>
<head><title> Secret post </title></head>
<body>
<div class="accesskey-warning alert d-none">You need an access key.</div>
<article>
<div class="hugo-encryptor-container">
  <div class="hugo-encryptor-prompt d-none"><p>Part of this article is encrypted.</p></div>
  <div class="hugo-encryptor-cipher-text d-none">
    QUJDREVGR0g=
  </div>
  <div class="hugo-encryptor-form d-none">
    <input class="hugo-encryptor-input" placeholder="access key"/>
    <input class="hugo-encryptor-button" type="button" value="Unlock"/>
  </div>
</div>
</article>
</body>
</html>`

func TestParse(t *testing.T) {
	doc, err := ParseString(lockedPage)
	require.NoError(t, err)

	assert.True(t, doc.HasBanner())
	assert.False(t, doc.BannerVisible())
	assert.False(t, doc.PromptVisible())
	assert.Equal(t, "Secret post", doc.Title())
	assert.Equal(t, "Part of this article is encrypted.", doc.PromptText())
}

func TestParse_NoContainer(t *testing.T) {
	_, err := ParseString(`<html><body><p>public page</p></body></html>`)
	assert.ErrorIs(t, err, ErrNoContainer)
}

func TestDocument_Ciphertext(t *testing.T) {
	doc, err := ParseString(lockedPage)
	require.NoError(t, err)

	ct, err := doc.Ciphertext()
	require.NoError(t, err)
	assert.Equal(t, "QUJDREVGR0g=", ct)
}

func TestDocument_Ciphertext_Missing(t *testing.T) {
	doc, err := ParseString(`<div class="hugo-encryptor-container"><p>x</p></div>`)
	require.NoError(t, err)

	_, err = doc.Ciphertext()
	assert.ErrorIs(t, err, ErrNoCiphertext)
}

func TestDocument_ShowPrompt(t *testing.T) {
	doc, err := ParseString(lockedPage)
	require.NoError(t, err)

	require.NoError(t, doc.ShowPrompt())
	assert.True(t, doc.PromptVisible())

	var buf bytes.Buffer
	require.NoError(t, doc.Render(&buf))
	out := buf.String()
	assert.Contains(t, out, `class="hugo-encryptor-prompt"`)
	assert.Contains(t, out, `class="hugo-encryptor-form d-flex"`)
	assert.Contains(t, out, `class="hugo-encryptor-cipher-text d-none"`)

	// idempotent
	require.NoError(t, doc.ShowPrompt())
	buf.Reset()
	require.NoError(t, doc.Render(&buf))
	assert.Equal(t, 1, strings.Count(buf.String(), "d-flex"))
}

func TestDocument_ShowUnlocked(t *testing.T) {
	doc, err := ParseString(lockedPage)
	require.NoError(t, err)

	require.NoError(t, doc.ShowUnlocked("<h2>Plan</h2><p>Attack at dawn</p>\n--- DON'T MODIFY THIS LINE ---"))

	inner, err := doc.ContainerHTML()
	require.NoError(t, err)
	assert.Equal(t, "<h2>Plan</h2><p>Attack at dawn</p>\n--- DON&#39;T MODIFY THIS LINE ---", inner)

	_, err = doc.Ciphertext()
	assert.ErrorIs(t, err, ErrNoCiphertext)
	assert.False(t, doc.PromptVisible())

	var buf bytes.Buffer
	require.NoError(t, doc.Render(&buf))
	assert.Contains(t, buf.String(), `<div class="hugo-encryptor-container"><h2>Plan</h2>`)
	assert.NotContains(t, buf.String(), "hugo-encryptor-form")
}

func TestDocument_ShowWarning(t *testing.T) {
	doc, err := ParseString(lockedPage)
	require.NoError(t, err)

	require.NoError(t, doc.ShowWarning())
	assert.True(t, doc.BannerVisible())

	var buf bytes.Buffer
	require.NoError(t, doc.Render(&buf))
	assert.Contains(t, buf.String(), `class="accesskey-warning alert"`)
}

func TestDocument_ShowWarning_NoBanner(t *testing.T) {
	doc, err := ParseString(`<div class="hugo-encryptor-container"></div>`)
	require.NoError(t, err)

	assert.False(t, doc.HasBanner())
	assert.NoError(t, doc.ShowWarning())
	assert.False(t, doc.BannerVisible())
}

func TestClassHelpers(t *testing.T) {
	doc, err := ParseString(`<div class="hugo-encryptor-container"><span id="s"></span></div>`)
	require.NoError(t, err)

	span := doc.container.FirstChild
	require.NotNil(t, span)

	addClass(span, "a")
	addClass(span, "b")
	addClass(span, "a")
	assert.Equal(t, []string{"a", "b"}, classList(span))

	removeClass(span, "a")
	assert.Equal(t, []string{"b"}, classList(span))
	assert.True(t, hasClass(span, "b"))

	addClass(nil, "x")
	removeClass(nil, "x")
}
