package rpcreq

import (
	"github.com/smnsjas/go-rpcreq/config"
	"github.com/smnsjas/go-rpcreq/request"
)

// Absent is the absence marker that selects the named-argument call form.
var Absent = request.Absent

// New creates an empty Request.
func New() *request.Request {
	return request.New()
}

// FromConfig creates a Request from an attribute map with the optional keys
// "namespaces", "method" and "arguments".
func FromConfig(attrs map[string]any) (*request.Request, error) {
	return config.Build(attrs)
}

// LoadFile creates a Request from a YAML or HCL configuration file.
func LoadFile(path string) (*request.Request, error) {
	return config.LoadFile(path)
}
