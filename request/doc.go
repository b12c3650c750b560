// Package request builds an in-memory description of a single RPC invocation.
//
// A Request holds a namespace path, a method name and a set of arguments. It
// performs no I/O; a transport consumes the finished Request and encodes it
// onto its own wire format.
//
// # Fluent Construction
//
// Namespace segments are accumulated on a pending chain, and Invoke commits
// that chain together with the method name and arguments:
//
//	req := request.New().
//	    Accumulate("system").
//	    Accumulate("methods").
//	    Invoke("Introspection")
//
//	req.Namespaces()          // ["system", "methods"]
//	req.QualifiedMethod(".")  // "system.methods.Introspection"
//
// The committed chain replaces the namespace path; it is not appended to it.
// Invoke without any preceding Accumulate leaves the namespace path alone.
//
// # Named Arguments
//
// Arguments are positional unless the call uses the named form: exactly two
// arguments, the first being Absent (or nil) and the second an associative map.
//
//	req.Invoke("subtract", request.Absent, map[string]any{
//	    "minuend":    42,
//	    "subtrahend": 23,
//	})
//	req.Arguments().Map() // {"minuend": 42, "subtrahend": 23}
//
// Anything else, including Absent followed by a plain list, is kept as
// positional arguments unchanged.
//
// # Explicit Construction
//
// SetNamespaces, AddNamespace, SetMethod and SetArguments bypass the pending
// chain and the argument normalization entirely.
//
// # Concurrency
//
// A Request is not safe for concurrent use. Callers sharing one across
// goroutines must serialize access themselves.
package request
