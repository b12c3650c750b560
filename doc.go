// Package rpcreq builds in-memory descriptions of remote procedure calls.
//
// This library follows the sans-IO pattern: it assembles the namespace path,
// method name and arguments of a single invocation and stops there. Encoding
// the result onto a wire format (JSON-RPC, XML-RPC, ...) and dispatching it
// belong to the transport that consumes the finished request.
//
// # Architecture
//
// The library is organized into packages:
//
//   - request: the Request builder, argument normalization and accessors
//   - config: building a Request from attribute maps, YAML or HCL files
//   - cmd/rpcreq-inspect: a CLI that prints the request a config file builds
//
// # Basic Usage
//
//	req := rpcreq.New().
//	    Accumulate("system").
//	    Accumulate("methods").
//	    Invoke("Introspection", rpcreq.Absent, map[string]any{"x": 1})
//
//	req.QualifiedMethod(".") // "system.methods.Introspection"
//	req.Arguments().Map()    // {"x": 1}
//
// # From Configuration
//
//	req, err := rpcreq.FromConfig(map[string]any{
//	    "namespaces": []string{"math"},
//	    "method":     "add",
//	    "arguments":  []any{1, 2},
//	})
//	if err != nil {
//	    return err
//	}
package rpcreq

// Version is the library version.
const Version = "0.1.0-dev"
