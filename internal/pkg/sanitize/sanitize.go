// Package sanitize restricts text to the character subset the report
// font can encode. Every string that ends up in a generated document or
// in a derived identifier must pass through here first.
package sanitize

import "strings"

// replacements maps known risky glyphs to ASCII-safe equivalents.
// Anything outside printable ASCII that is not listed here becomes '?'.
var replacements = map[rune]string{
	'‐': "-",  // hyphen
	'‑': "-",  // non-breaking hyphen
	'‒': "-",  // figure dash
	'–': "-",  // en dash
	'—': "-",  // em dash
	'―': "-",  // horizontal bar
	'‘': "'",  // left single quote
	'’': "'",  // right single quote
	'‚': "'",  // low single quote
	'“': `"`,  // left double quote
	'”': `"`,  // right double quote
	'„': `"`,  // low double quote
	'•': "*",  // bullet
	'…': "...",
	' ': " ", // non-breaking space
	'£': "GBP ",
	'€': "EUR ",
	'¥': "JPY ",
	'¢': "c",
	'≤': "<=",
	'≥': ">=",
	'≠': "!=",
	'×': "x",
	'÷': "/",
	'°': " deg",
	'™': "(TM)",
	'®': "(R)",
	'©': "(C)",
}

// String returns text with every risky character substituted and every
// remaining non-printable-ASCII character replaced by '?'. Newlines and
// tabs are kept.
func String(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if repl, ok := replacements[r]; ok {
			b.WriteString(repl)
			continue
		}
		if r == '\n' || r == '\t' || (r >= 0x20 && r <= 0x7E) {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('?')
	}
	return b.String()
}

// Strings sanitizes a slice in place and returns it for convenience.
func Strings(values []string) []string {
	for i, v := range values {
		values[i] = String(v)
	}
	return values
}
