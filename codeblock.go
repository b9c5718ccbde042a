package docsnip

import (
	"iter"
	"strings"
)

const fence = "```"

// CodeBlock is the content of a fenced code block.
type CodeBlock struct {
	// Lang is the info string following the opening fence, e.g. "tsx".
	Lang string `json:"lang,omitempty"`

	// Code is the trimmed text between the fences.
	Code string `json:"code"`
}

// CodeBlocks returns the fenced code blocks of text in document order.
//
// An opening fence is "```" followed by the rest of its line; the block
// ends at the next "```". Scanning resumes after the closing fence. An
// opening fence without a line break after it, or without a closing
// fence, ends the sequence.
func CodeBlocks(text string) iter.Seq[CodeBlock] {
	return func(yield func(CodeBlock) bool) {
		off := 0
		for {
			open := strings.Index(text[off:], fence)
			if open < 0 {
				return
			}
			infoStart := off + open + len(fence)

			nl := strings.IndexByte(text[infoStart:], '\n')
			if nl < 0 {
				return
			}
			bodyStart := infoStart + nl + 1

			closing := strings.Index(text[bodyStart:], fence)
			if closing < 0 {
				return
			}
			bodyEnd := bodyStart + closing

			block := CodeBlock{
				Lang: strings.TrimSpace(text[infoStart : bodyStart-1]),
				Code: strings.TrimSpace(text[bodyStart:bodyEnd]),
			}
			if !yield(block) {
				return
			}
			off = bodyEnd + len(fence)
		}
	}
}
