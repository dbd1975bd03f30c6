// Package frontmatter provides the metadata extraction strategies for
// document frontmatter blocks: a strict YAML parser and a line-oriented
// fallback. The strategy is selected at configuration time.
package frontmatter

import (
	"strings"

	"vaultstack/internal/ports"
)

const marker = "---"

// ForName returns the extractor selected by a config value. Unknown
// names fall back to the YAML strategy.
func ForName(name string) ports.MetadataExtractor {
	if name == "basic" {
		return Basic{}
	}
	return YAML{}
}

// splitBlock isolates a leading frontmatter block. The opening and
// closing markers must each sit on their own line. Returns the block
// content (without markers), the remaining body, and whether a block was
// found.
func splitBlock(content string) (block, body string, ok bool) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r") != marker {
		return "", content, false
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r") == marker {
			block = strings.Join(lines[1:i], "\n")
			body = strings.Join(lines[i+1:], "\n")
			return block, strings.TrimLeft(body, "\n"), true
		}
	}
	return "", content, false
}
