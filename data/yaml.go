package data

import (
	"fmt"
	"maps"
	"slices"

	"github.com/goccy/go-yaml"
)

// FromYAML parses a YAML document into a Data tree. Unlike the tolerant
// flexon decoder this can fail: YAML is an external wire format with its own
// grammar.
func FromYAML(b []byte) (*Data, error) {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("yaml: %w", err)
	}
	return fromYAMLValue(v), nil
}

// ToYAML renders the tree as YAML.
func (d *Data) ToYAML() ([]byte, error) {
	return yaml.Marshal(d.ToNative())
}

// fromYAMLValue widens goccy's unmarshal result. Maps arrive as
// map[string]any (string keys) or map[any]any depending on the document.
func fromYAMLValue(v any) *Data {
	switch x := v.(type) {
	case map[string]any:
		res := Map()
		for _, k := range sortedAnyKeys(x) {
			res.Put(k, fromYAMLValue(x[k]))
		}
		return res
	case map[any]any:
		m := make(map[string]any, len(x))
		for k, e := range x {
			m[fmt.Sprint(k)] = e
		}
		return fromYAMLValue(m)
	case []any:
		l := List()
		for _, e := range x {
			l.Add(fromYAMLValue(e))
		}
		return l
	case uint64:
		if x <= 1<<62 {
			return Of(int64(x))
		}
		return Of(float64(x))
	default:
		return Of(x)
	}
}

func sortedAnyKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}
