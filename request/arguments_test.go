package request

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInvoke_Normalization(t *testing.T) {
	tests := []struct {
		name       string
		raw        []any
		wantNamed  map[string]any
		wantValues []any
	}{
		{
			name:      "NamedWithAbsent",
			raw:       []any{Absent, map[string]any{"minuend": 42, "subtrahend": 23}},
			wantNamed: map[string]any{"minuend": 42, "subtrahend": 23},
		},
		{
			name:      "NamedWithNil",
			raw:       []any{nil, map[string]any{"x": 1}},
			wantNamed: map[string]any{"x": 1},
		},
		{
			name:       "Positional",
			raw:        []any{1, 2},
			wantValues: []any{1, 2},
		},
		{
			name:       "AbsentThenList",
			raw:        []any{Absent, []any{1, 2, 3}},
			wantValues: []any{Absent, []any{1, 2, 3}},
		},
		{
			name:       "AbsentThenEmptyMap",
			raw:        []any{Absent, map[string]any{}},
			wantValues: []any{Absent, map[string]any{}},
		},
		{
			name:       "AbsentThenIndexedMap",
			raw:        []any{Absent, map[int]any{0: "a", 1: "b"}},
			wantValues: []any{Absent, map[int]any{0: "a", 1: "b"}},
		},
		{
			name:      "AbsentThenSparseIndexedMap",
			raw:       []any{Absent, map[int]any{1: "a", 2: "b"}},
			wantNamed: map[string]any{"1": "a", "2": "b"},
		},
		{
			name:      "AbsentThenGapIndexedMap",
			raw:       []any{Absent, map[int]any{0: "a", 2: "b"}},
			wantNamed: map[string]any{"0": "a", "2": "b"},
		},
		{
			name:       "AbsentThenGenericIndexedMap",
			raw:        []any{Absent, map[any]any{0: "a", 1: "b"}},
			wantValues: []any{Absent, map[any]any{0: "a", 1: "b"}},
		},
		{
			name:      "AbsentThenGenericStringMap",
			raw:       []any{Absent, map[any]any{"a": 1, 0: 2}},
			wantNamed: map[string]any{"a": 1, "0": 2},
		},
		{
			name:      "AbsentThenTypedIntValueMap",
			raw:       []any{Absent, map[string]int{"minuend": 42, "subtrahend": 23}},
			wantNamed: map[string]any{"minuend": 42, "subtrahend": 23},
		},
		{
			name:      "AbsentThenStringMap",
			raw:       []any{Absent, map[string]string{"name": "x"}},
			wantNamed: map[string]any{"name": "x"},
		},
		{
			name:      "AbsentThenNumericStringKeys",
			raw:       []any{Absent, map[string]any{"0": "a", "1": "b"}},
			wantNamed: map[string]any{"0": "a", "1": "b"},
		},
		{
			name:      "AbsentThenSparseInt64Map",
			raw:       []any{Absent, map[int64]any{1: "a"}},
			wantNamed: map[string]any{"1": "a"},
		},
		{
			name:       "AbsentThenIndexedUint8Map",
			raw:        []any{Absent, map[uint8]string{0: "a", 1: "b"}},
			wantValues: []any{Absent, map[uint8]string{0: "a", 1: "b"}},
		},
		{
			name:       "AbsentThenEmptyTypedMap",
			raw:        []any{Absent, map[string]int{}},
			wantValues: []any{Absent, map[string]int{}},
		},
		{
			name:      "AbsentThenNamedArguments",
			raw:       []any{Absent, Named(map[string]any{"k": "v"})},
			wantNamed: map[string]any{"k": "v"},
		},
		{
			name:       "AbsentThenPositionalArguments",
			raw:        []any{Absent, Positional(1)},
			wantValues: []any{Absent, Positional(1)},
		},
		{
			name:       "MapFirst",
			raw:        []any{map[string]any{"k": 1}, Absent},
			wantValues: []any{map[string]any{"k": 1}, Absent},
		},
		{
			name:       "AbsentWithThreeElements",
			raw:        []any{Absent, map[string]any{"k": 1}, 3},
			wantValues: []any{Absent, map[string]any{"k": 1}, 3},
		},
		{
			name:       "SingleMap",
			raw:        []any{map[string]any{"k": 1}},
			wantValues: []any{map[string]any{"k": 1}},
		},
		{
			name:       "NoArguments",
			raw:        nil,
			wantValues: nil,
		},
	}

	opts := cmp.Comparer(func(a, b Arguments) bool {
		return cmp.Equal(a.Values(), b.Values()) && cmp.Equal(a.Map(), b.Map())
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New().Invoke("m", tt.raw...)
			args := r.Arguments()

			if tt.wantNamed != nil {
				if !args.IsNamed() {
					t.Fatalf("expected named arguments, got positional %v", args.Values())
				}
				if diff := cmp.Diff(tt.wantNamed, args.Map()); diff != "" {
					t.Errorf("named mismatch (-want +got):\n%s", diff)
				}
				return
			}

			if args.IsNamed() {
				t.Fatalf("expected positional arguments, got named %v", args.Map())
			}
			if diff := cmp.Diff(tt.wantValues, args.Values(), opts); diff != "" {
				t.Errorf("positional mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInvoke_CopiesRawArguments(t *testing.T) {
	raw := []any{1, 2}
	r := New().Invoke("add", raw...)
	raw[0] = 99

	if diff := cmp.Diff([]any{1, 2}, r.Arguments().Values()); diff != "" {
		t.Errorf("arguments aliased caller slice (-want +got):\n%s", diff)
	}

	named := map[string]any{"k": 1}
	r.Invoke("set", Absent, named)
	named["k"] = 2

	if diff := cmp.Diff(map[string]any{"k": 1}, r.Arguments().Map()); diff != "" {
		t.Errorf("arguments aliased caller map (-want +got):\n%s", diff)
	}
}

func TestArguments_Accessors(t *testing.T) {
	pos := Positional("a", "b")
	if pos.IsNamed() || pos.Len() != 2 || pos.Form() != "positional" {
		t.Errorf("unexpected positional state: named=%v len=%d form=%s", pos.IsNamed(), pos.Len(), pos.Form())
	}
	if pos.Map() != nil {
		t.Errorf("expected nil map for positional, got %v", pos.Map())
	}

	named := Named(map[string]any{"a": 1})
	if !named.IsNamed() || named.Len() != 1 || named.Form() != "named" {
		t.Errorf("unexpected named state: named=%v len=%d form=%s", named.IsNamed(), named.Len(), named.Form())
	}
	if named.Values() != nil {
		t.Errorf("expected nil values for named, got %v", named.Values())
	}

	empty := Named(nil)
	if !empty.IsNamed() || empty.Len() != 0 {
		t.Errorf("expected empty named set, got named=%v len=%d", empty.IsNamed(), empty.Len())
	}

	values := pos.Values()
	values[0] = "mutated"
	if pos.Values()[0] != "a" {
		t.Error("Values returned an alias")
	}
}

func TestArguments_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		args Arguments
		want string
	}{
		{name: "Zero", args: Arguments{}, want: `[]`},
		{name: "Positional", args: Positional(1, "two"), want: `[1,"two"]`},
		{name: "Absent", args: Positional(Absent, 1), want: `[null,1]`},
		{name: "Named", args: Named(map[string]any{"b": 2, "a": 1}), want: `{"a":1,"b":2}`},
		{name: "EmptyNamed", args: Named(nil), want: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.args)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("expected %s, got %s", tt.want, data)
			}
		})
	}
}

func TestAbsent_String(t *testing.T) {
	if Absent.String() != "<absent>" {
		t.Errorf("unexpected Absent string %q", Absent.String())
	}
}
