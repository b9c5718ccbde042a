package docsnip

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// UsageHeading marks the start of the usage section in a documentation page.
const UsageHeading = "## Usage"

// ExtractUsageSection returns the trimmed text following the first
// occurrence of "## Usage" that is followed by whitespace. The section ends
// at the next newline followed by "##", or at end-of-text. The boolean is
// false when no such heading exists.
func ExtractUsageSection(text string) (string, bool) {
	for off := 0; off < len(text); {
		i := strings.Index(text[off:], UsageHeading)
		if i < 0 {
			return "", false
		}
		after := off + i + len(UsageHeading)

		start := skipSpace(text, after)
		if start == after {
			// Not a heading, e.g. "## Usage:" or "## Usages".
			off = after
			continue
		}

		// At least one whitespace rune belongs to the heading; any further
		// newline may start the terminating "\n##".
		_, size := utf8.DecodeRuneInString(text[after:])
		end := len(text)
		if j := strings.Index(text[after+size:], "\n##"); j >= 0 {
			end = after + size + j
		}
		if end < start {
			return "", true
		}
		return strings.TrimSpace(text[start:end]), true
	}
	return "", false
}

// skipSpace returns the offset of the first non-space rune at or after off.
func skipSpace(text string, off int) int {
	for off < len(text) {
		r, size := utf8.DecodeRuneInString(text[off:])
		if !unicode.IsSpace(r) {
			break
		}
		off += size
	}
	return off
}
