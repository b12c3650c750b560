package config

import (
	"github.com/juju/errors"
	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a YAML document into an attribute map. The document must
// be a mapping; an empty document yields an empty map.
func ParseYAML(data []byte) (map[string]any, error) {
	var attrs map[string]any
	if err := yaml.Unmarshal(data, &attrs); err != nil {
		return nil, errors.NewNotValid(err, "parsing YAML request configuration")
	}
	if attrs == nil {
		attrs = map[string]any{}
	}
	return attrs, nil
}
