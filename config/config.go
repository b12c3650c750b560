package config

import (
	"fmt"

	"github.com/juju/errors"
	"github.com/juju/schema"

	"github.com/smnsjas/go-rpcreq/request"
)

const (
	namespacesKey = "namespaces"
	methodKey     = "method"
	argumentsKey  = "arguments"
)

var configFields = schema.Fields{
	namespacesKey: schema.List(schema.String()),
	methodKey:     schema.String(),
	argumentsKey: schema.OneOf(
		schema.List(schema.Any()),
		schema.StringMap(schema.Any()),
	),
}

var configDefaults = schema.Defaults{
	namespacesKey: schema.Omit,
	methodKey:     schema.Omit,
	argumentsKey:  schema.Omit,
}

var configChecker = schema.StrictFieldMap(configFields, configDefaults)

// Build creates a Request from an attribute map. Absent keys leave the
// corresponding field at its zero value.
func Build(attrs map[string]any) (*request.Request, error) {
	coerced, err := configChecker.Coerce(attrs, nil)
	if err != nil {
		return nil, errors.NewNotValid(err, "request configuration")
	}
	validAttrs := coerced.(map[string]interface{})

	req := request.New()
	if v, ok := validAttrs[namespacesKey]; ok {
		req.SetNamespaces(stringList(v)...)
	}
	if v, ok := validAttrs[methodKey]; ok {
		req.SetMethod(v.(string))
	}
	if v, ok := validAttrs[argumentsKey]; ok {
		args, err := toArguments(v)
		if err != nil {
			return nil, errors.Trace(err)
		}
		req.SetArguments(args)
	}
	return req, nil
}

// stringList converts a coerced List(String()) value.
func stringList(v any) []string {
	items := v.([]interface{})
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.(string)
	}
	return out
}

// toArguments converts a coerced arguments value into its request form.
func toArguments(v any) (request.Arguments, error) {
	switch args := v.(type) {
	case []interface{}:
		items := make([]any, len(args))
		for i, item := range args {
			items[i] = plainValue(item)
		}
		return request.Positional(items...), nil
	case map[string]interface{}:
		named := make(map[string]any, len(args))
		for k, item := range args {
			named[k] = plainValue(item)
		}
		return request.Named(named), nil
	}
	return request.Arguments{}, errors.NotValidf("%s of type %T", argumentsKey, v)
}

// plainValue rewrites the generic map[any]any that yaml.v3 produces for
// mappings with non-string keys into map[string]any, recursively.
func plainValue(v any) any {
	switch val := v.(type) {
	case []interface{}:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = plainValue(item)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = plainValue(item)
		}
		return out
	case map[interface{}]interface{}:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = plainValue(item)
		}
		return out
	}
	return v
}
