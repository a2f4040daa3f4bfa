package sheet

import (
	"fmt"

	"github.com/yacobolo/scaledstyle"
	"gopkg.in/yaml.v3"
)

// ParseYAML parses YAML (or JSON) definitions: a mapping of block name to
// properties, with landscape overrides under LandscapeKey.
func ParseYAML(content []byte, filename string) (*Sheet, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	s := New()
	for name, raw := range doc {
		if name == LandscapeKey {
			blocks, ok := raw.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%s: %s must be a mapping of blocks, got %T", filename, LandscapeKey, raw)
			}
			if err := decodeBlocks(s.Landscape, blocks, filename); err != nil {
				return nil, err
			}
			continue
		}
		if err := decodeBlocks(s.Base, map[string]any{name: raw}, filename); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func decodeBlocks(dst scaledstyle.Table, blocks map[string]any, filename string) error {
	for name, raw := range blocks {
		props, ok := raw.(map[string]any)
		if !ok {
			if raw == nil {
				block(dst, name)
				continue
			}
			return fmt.Errorf("%s: block %q must be a mapping, got %T", filename, name, raw)
		}
		b := block(dst, name)
		for key, v := range props {
			b[key] = scaledstyle.FromInterface(v)
		}
	}
	return nil
}
