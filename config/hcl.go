package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/juju/errors"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// ParseHCL decodes the top-level attributes of an HCL file into an attribute
// map. Blocks and variable references are rejected.
func ParseHCL(data []byte, filename string) (map[string]any, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.NewNotValid(diags, fmt.Sprintf("parsing HCL file %s", filename))
	}

	hclAttrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, errors.NewNotValid(diags, fmt.Sprintf("decoding HCL file %s", filename))
	}

	attrs := make(map[string]any, len(hclAttrs))
	for name, attr := range hclAttrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, errors.NewNotValid(diags, fmt.Sprintf("evaluating attribute %q", name))
		}
		native, err := ctyToNative(val)
		if err != nil {
			return nil, errors.NewNotValid(err, fmt.Sprintf("converting attribute %q", name))
		}
		attrs[name] = native
	}
	return attrs, nil
}

// ctyToNative recursively converts a cty.Value to plain Go values: string,
// bool, int or float64, []any and map[string]any. Null becomes nil.
func ctyToNative(v cty.Value) (any, error) {
	if v.IsNull() {
		return nil, nil
	}
	if !v.IsKnown() {
		return nil, errors.New("value is not known")
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Number:
		var i int
		if err := gocty.FromCtyValue(v, &i); err == nil {
			return i, nil
		}
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, fmt.Errorf("could not convert cty.Number to float64: %w", err)
		}
		return f, nil

	case ty == cty.Bool:
		return v.True(), nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		items := make([]any, 0)
		it := v.ElementIterator()
		for it.Next() {
			_, elem := it.Element()
			native, err := ctyToNative(elem)
			if err != nil {
				return nil, err
			}
			items = append(items, native)
		}
		return items, nil

	case ty.IsObjectType() || ty.IsMapType():
		m := make(map[string]any)
		it := v.ElementIterator()
		for it.Next() {
			key, elem := it.Element()
			native, err := ctyToNative(elem)
			if err != nil {
				return nil, fmt.Errorf("in attribute '%s': %w", key.AsString(), err)
			}
			m[key.AsString()] = native
		}
		return m, nil
	}

	return nil, fmt.Errorf("unsupported cty type %s", ty.FriendlyName())
}
