package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/juju/errors"

	"github.com/smnsjas/go-rpcreq/request"
)

// LoadFile reads a YAML (.yaml, .yml) or HCL (.hcl) request configuration
// and builds a Request from it.
func LoadFile(path string) (*request.Request, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var parse func([]byte) (map[string]any, error)
	switch ext {
	case ".yaml", ".yml":
		parse = ParseYAML
	case ".hcl":
		parse = func(data []byte) (map[string]any, error) {
			return ParseHCL(data, path)
		}
	default:
		return nil, errors.NotSupportedf("request configuration format %q", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Annotatef(err, "reading request configuration %s", path)
	}

	attrs, err := parse(data)
	if err != nil {
		return nil, errors.Annotatef(err, "loading %s", path)
	}

	req, err := Build(attrs)
	if err != nil {
		return nil, errors.Annotatef(err, "loading %s", path)
	}
	return req, nil
}
