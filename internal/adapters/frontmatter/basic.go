package frontmatter

import (
	"strings"

	"vaultstack/internal/ports"
)

// Basic strips the frontmatter block without parsing it, scanning only
// for a title field. The metadata map stays empty.
type Basic struct{}

var _ ports.MetadataExtractor = Basic{}

func (Basic) Extract(content, fallbackTitle string) (string, string, map[string]any) {
	block, body, ok := splitBlock(content)
	if !ok {
		return fallbackTitle, content, map[string]any{}
	}

	title := fallbackTitle
	for _, line := range strings.Split(block, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "title:") {
			continue
		}
		value := strings.TrimSpace(strings.TrimPrefix(trimmed, "title:"))
		value = strings.Trim(value, `"'`)
		if value != "" {
			title = value
		}
		break
	}
	return title, body, map[string]any{}
}
