// Package config builds a request.Request from configuration instead of
// fluent calls.
//
// A configuration is an attribute map with three optional keys:
//
//	namespaces  list of strings, outer to inner
//	method      string
//	arguments   list (positional) or string-keyed map (named)
//
// Any other key, or a value of the wrong shape, is rejected with an error
// satisfying errors.Is(err, errors.NotValid) from github.com/juju/errors.
// Values are applied through the explicit request setters; no argument
// normalization takes place. Nested mappings with non-string keys, as YAML
// allows, are rekeyed by their string form.
//
// Attribute maps can be read from YAML or HCL:
//
//	# request.yaml
//	namespaces: [math]
//	method: subtract
//	arguments:
//	  minuend: 42
//	  subtrahend: 23
//
//	# request.hcl
//	namespaces = ["math"]
//	method     = "subtract"
//	arguments  = { minuend = 42, subtrahend = 23 }
//
// LoadFile picks the parser from the file extension.
package config
