// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package components

import "strings"

// NormalizeProps fills defaults into a raw props object for the named
// component type. Every declared prop that is missing, wrong-shaped, or
// empty is replaced by that prop's default; valid caller data passes
// through untouched. List props are normalized element by element, with
// missing sub-fields defaulted individually. The operation is idempotent.
//
// Unknown component types are returned as a shallow copy of the input:
// the rendering layer ignores unknown types, so there is nothing to fill.
func NormalizeProps(componentType string, raw map[string]any) map[string]any {
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		out[k] = v
	}

	desc, ok := Lookup(componentType)
	if !ok {
		return out
	}

	for _, spec := range desc.Props {
		out[spec.Name] = normalizeValue(spec, out[spec.Name])
	}
	return out
}

// normalizeValue coerces one prop value against its spec, substituting
// the spec default when the value is absent or wrong-shaped.
func normalizeValue(spec PropSpec, v any) any {
	switch spec.Type {
	case TypeString:
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
		return spec.Default
	case TypeBool:
		if b, ok := v.(bool); ok {
			return b
		}
		return spec.Default
	case TypeNumber:
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		case int64:
			return float64(n)
		}
		return spec.Default
	case TypeList:
		return normalizeList(spec, v)
	}
	return spec.Default
}

// normalizeList coerces a list prop. A non-list or empty value is
// replaced by the whole default list; otherwise each element is coerced
// to the declared item shape key by key.
func normalizeList(spec PropSpec, v any) any {
	items := toAnySlice(v)
	if len(items) == 0 {
		return cloneList(spec.Default)
	}

	out := make([]any, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			m = map[string]any{}
		}
		elem := make(map[string]any, len(spec.Item))
		for _, sub := range spec.Item {
			elem[sub.Name] = normalizeValue(sub, m[sub.Name])
		}
		out = append(out, elem)
	}
	return out
}

// toAnySlice accepts the two list encodings we see in practice: []any
// (JSON-decoded) and []map[string]any (built in code).
func toAnySlice(v any) []any {
	switch s := v.(type) {
	case []any:
		return s
	case []map[string]any:
		out := make([]any, len(s))
		for i, m := range s {
			out[i] = m
		}
		return out
	}
	return nil
}

// cloneList deep-copies a default list so callers never share backing
// maps with the catalog.
func cloneList(def any) any {
	items, _ := def.([]any)
	out := make([]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			c := make(map[string]any, len(m))
			for k, v := range m {
				c[k] = v
			}
			out = append(out, c)
			continue
		}
		out = append(out, item)
	}
	return out
}
