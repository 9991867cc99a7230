package ast

import (
	"reflect"
	"unicode"
	"unicode/utf8"
)

// Dump converts a tree into nested maps and slices that encode cleanly to
// JSON or YAML. Every node becomes a map with a "kind" entry followed by its
// fields in lowerCamel case. With withPos set, nodes also carry "line" and
// "column".
func Dump(node Node, withPos bool) any {
	if node == nil {
		return nil
	}
	return dumpValue(reflect.ValueOf(node), withPos)
}

func dumpValue(v reflect.Value, withPos bool) any {
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return dumpValue(v.Elem(), withPos)
	case reflect.Pointer:
		if v.IsNil() {
			return nil
		}
		if n, ok := v.Interface().(Node); ok {
			return dumpNode(n, v.Elem(), withPos)
		}
		return dumpValue(v.Elem(), withPos)
	case reflect.Slice:
		out := make([]any, v.Len())
		for i := range out {
			out[i] = dumpValue(v.Index(i), withPos)
		}
		return out
	default:
		return v.Interface()
	}
}

func dumpNode(n Node, s reflect.Value, withPos bool) map[string]any {
	out := map[string]any{"kind": n.Kind().String()}
	if withPos {
		pos := n.Position()
		out["line"] = pos.Line
		out["column"] = pos.Column
	}

	t := s.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous {
			continue
		}
		out[lowerFirst(f.Name)] = dumpValue(s.Field(i), withPos)
	}
	return out
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
