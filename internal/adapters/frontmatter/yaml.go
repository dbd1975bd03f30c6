package frontmatter

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"vaultstack/internal/ports"
)

// YAML parses the frontmatter block as a YAML mapping and exposes the
// full metadata map. A block that fails to parse is treated as absent.
type YAML struct{}

var _ ports.MetadataExtractor = YAML{}

func (YAML) Extract(content, fallbackTitle string) (string, string, map[string]any) {
	block, body, ok := splitBlock(content)
	if !ok {
		return fallbackTitle, content, map[string]any{}
	}

	meta := map[string]any{}
	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		return fallbackTitle, content, map[string]any{}
	}

	title := fallbackTitle
	if v, found := meta["title"]; found && v != nil {
		if s := fmt.Sprintf("%v", v); s != "" {
			title = s
		}
	}
	return title, body, meta
}
