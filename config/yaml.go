package config

import (
	"github.com/goccy/go-yaml"
)

// YAML implements koanf.Parser on top of goccy/go-yaml.
type YAML struct{}

// YAMLParser returns a YAML parser.
func YAMLParser() *YAML {
	return &YAML{}
}

// Unmarshal parses YAML bytes into a nested map.
func (p *YAML) Unmarshal(b []byte) (map[string]any, error) {
	var out map[string]any
	if err := yaml.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}

// Marshal renders a nested map as YAML.
func (p *YAML) Marshal(o map[string]any) ([]byte, error) {
	return yaml.Marshal(o)
}
