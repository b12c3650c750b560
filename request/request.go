package request

import (
	"encoding/json"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Request is a single RPC invocation under construction.
type Request struct {
	id uuid.UUID

	// namespaces is the committed namespace path, outer to inner.
	namespaces []string
	// pending holds segments from Accumulate until the next Invoke.
	pending []string
	// snapshot is the prior namespace path, saved by a commit that found
	// the snapshot empty.
	snapshot []string

	method string
	args   Arguments

	logger *slog.Logger
}

// New creates an empty Request with a fresh ID.
func New() *Request {
	return &Request{id: uuid.New()}
}

// ID returns the unique identifier of the request.
func (r *Request) ID() uuid.UUID {
	return r.id
}

// SetLogger sets the structured logger used for debug logging.
// A nil logger disables logging.
func (r *Request) SetLogger(logger *slog.Logger) *Request {
	if logger != nil {
		logger = logger.With("request_id", r.id.String())
	}
	r.logger = logger
	return r
}

// Accumulate appends segment to the pending namespace chain. The committed
// namespace path is not touched until Invoke.
func (r *Request) Accumulate(segment string) *Request {
	r.pending = append(r.pending, segment)
	return r
}

// Invoke names the method, normalizes rawArgs into Arguments and commits the
// pending namespace chain, if any, as the new namespace path.
func (r *Request) Invoke(method string, rawArgs ...any) *Request {
	r.method = method
	r.args = normalize(rawArgs)

	if len(r.pending) > 0 {
		r.commitPending()
	}

	r.logf("invoked",
		"method", r.method,
		"namespaces", r.namespaces,
		"arguments", r.args.Form(),
		"argument_count", r.args.Len(),
	)
	return r
}

// commitPending replaces the namespace path with the pending chain. The prior
// path is saved only while no snapshot is held.
func (r *Request) commitPending() {
	// TODO: decide whether the snapshot should reset per commit once a
	// caller needs to restore the pre-chain path.
	if len(r.snapshot) == 0 {
		r.snapshot = slices.Clone(r.namespaces)
	}
	r.namespaces = r.pending
	r.pending = nil
}

// SetNamespaces replaces the namespace path. Call with no segments to clear it.
func (r *Request) SetNamespaces(path ...string) *Request {
	r.namespaces = slices.Clone(path)
	return r
}

// Namespaces returns a copy of the committed namespace path.
func (r *Request) Namespaces() []string {
	return slices.Clone(r.namespaces)
}

// AddNamespace appends one segment to the committed namespace path.
func (r *Request) AddNamespace(segment string) *Request {
	r.namespaces = append(r.namespaces, segment)
	return r
}

// Pending returns a copy of the uncommitted namespace chain.
func (r *Request) Pending() []string {
	return slices.Clone(r.pending)
}

// NamespacesSnapshot returns the namespace path saved by the first commit
// that found no snapshot, or nil if none is held.
func (r *Request) NamespacesSnapshot() []string {
	if len(r.snapshot) == 0 {
		return nil
	}
	return slices.Clone(r.snapshot)
}

// SetMethod sets the method name.
func (r *Request) SetMethod(name string) *Request {
	r.method = name
	return r
}

// Method returns the method name.
func (r *Request) Method() string {
	return r.method
}

// SetArguments replaces the arguments as given, without normalization.
func (r *Request) SetArguments(args Arguments) *Request {
	r.args = args
	return r
}

// Arguments returns the arguments.
func (r *Request) Arguments() Arguments {
	return r.args
}

// QualifiedMethod joins the namespace path and method name with sep,
// e.g. "system.methods.Introspection".
func (r *Request) QualifiedMethod(sep string) string {
	parts := slices.Clone(r.namespaces)
	if r.method != "" {
		parts = append(parts, r.method)
	}
	return strings.Join(parts, sep)
}

type requestView struct {
	ID         string    `json:"id"`
	Namespaces []string  `json:"namespaces"`
	Method     string    `json:"method"`
	Arguments  Arguments `json:"arguments"`
}

// MarshalJSON renders an inspection view of the request. It is not an RPC
// wire encoding.
func (r *Request) MarshalJSON() ([]byte, error) {
	namespaces := r.namespaces
	if namespaces == nil {
		namespaces = []string{}
	}
	return json.Marshal(requestView{
		ID:         r.id.String(),
		Namespaces: namespaces,
		Method:     r.method,
		Arguments:  r.args,
	})
}

// logf logs a debug message if a logger is configured.
func (r *Request) logf(msg string, args ...any) {
	if r.logger == nil {
		return
	}
	r.logger.Debug(msg, args...)
}
