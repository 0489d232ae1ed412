// Package page parses a published page and exposes its locked container
// and warning banner to the decryption gate.
//
// Markup contract:
//
//	<div class="hugo-encryptor-container">
//	  <div class="hugo-encryptor-prompt d-none">…</div>
//	  <div class="hugo-encryptor-cipher-text d-none">BASE64…</div>
//	  <div class="hugo-encryptor-form d-none"><input class="hugo-encryptor-input">…</div>
//	</div>
//	<div class="accesskey-warning d-none">…</div>
package page
