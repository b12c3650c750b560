package request

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"
)

// Absent stands in for "no positional value". As the first of exactly two
// Invoke arguments it selects the named-argument call form.
var Absent = absent{}

type absent struct{}

func (absent) String() string {
	return "<absent>"
}

// MarshalJSON renders Absent as null.
func (absent) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// isAbsent reports whether v is the absence marker. An untyped nil counts too.
func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	_, ok := v.(absent)
	return ok
}

// Arguments is the canonical argument set of a Request: either an ordered
// list of positional values or a mapping of parameter names to values,
// never both. The zero value is an empty positional list.
//
// Arguments is immutable; accessors return copies.
type Arguments struct {
	values []any
	named  map[string]any
}

// Positional creates a positional argument list.
func Positional(values ...any) Arguments {
	return Arguments{values: slices.Clone(values)}
}

// Named creates a named argument set. A nil map yields an empty named set.
func Named(values map[string]any) Arguments {
	named := make(map[string]any, len(values))
	maps.Copy(named, values)
	return Arguments{named: named}
}

// IsNamed reports whether the arguments are matched by name.
func (a Arguments) IsNamed() bool {
	return a.named != nil
}

// Values returns a copy of the positional values, or nil for named arguments.
func (a Arguments) Values() []any {
	if a.IsNamed() {
		return nil
	}
	return slices.Clone(a.values)
}

// Map returns a copy of the named values, or nil for positional arguments.
func (a Arguments) Map() map[string]any {
	if !a.IsNamed() {
		return nil
	}
	return maps.Clone(a.named)
}

// Len returns the number of arguments in either form.
func (a Arguments) Len() int {
	if a.IsNamed() {
		return len(a.named)
	}
	return len(a.values)
}

// Form returns "named" or "positional".
func (a Arguments) Form() string {
	if a.IsNamed() {
		return "named"
	}
	return "positional"
}

// MarshalJSON renders positional arguments as an array and named arguments
// as an object.
func (a Arguments) MarshalJSON() ([]byte, error) {
	if a.IsNamed() {
		return json.Marshal(a.named)
	}
	if a.values == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a.values)
}

// normalize turns raw call-site arguments into canonical Arguments.
//
// Exactly two values where the first is absent and the second is associative
// select the named form; everything else is positional as given.
func normalize(raw []any) Arguments {
	if len(raw) == 2 && isAbsent(raw[0]) {
		if named, ok := associative(raw[1]); ok {
			return Arguments{named: named}
		}
	}
	return Positional(raw...)
}

// associative reports whether v is a genuine mapping rather than a list in
// disguise, and if so returns it keyed by string. Any Go map qualifies; one
// whose keys are all integers forming exactly 0..n-1 is a list, and empty
// maps are lists. Keys are rendered with fmt.Sprint.
func associative(v any) (map[string]any, bool) {
	if args, ok := v.(Arguments); ok {
		if args.IsNamed() {
			return args.Map(), true
		}
		return nil, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Len() == 0 || listIndexed(rv) {
		return nil, false
	}

	named := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		named[fmt.Sprint(iter.Key().Interface())] = iter.Value().Interface()
	}
	return named, true
}

// listIndexed reports whether every key of the map is an integer and the
// keys are exactly 0..n-1.
func listIndexed(rv reflect.Value) bool {
	keys := make([]int64, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		if k.Kind() == reflect.Interface {
			k = k.Elem()
		}
		switch k.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			keys = append(keys, k.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			u := k.Uint()
			if u > math.MaxInt64 {
				return false
			}
			keys = append(keys, int64(u))
		default:
			return false
		}
	}
	slices.Sort(keys)
	for i, k := range keys {
		if k != int64(i) {
			return false
		}
	}
	return true
}
