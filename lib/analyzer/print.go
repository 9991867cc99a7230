package analyzer

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Fprint writes the outline as an indented listing, one declaration per line,
// sorted by name within each scope.
func (o *Outline) Fprint(w io.Writer) {
	for _, imp := range o.Imports {
		if len(imp.Names) == 0 {
			fmt.Fprintf(w, "paket %q\n", imp.Package)
		} else {
			fmt.Fprintf(w, "paket %q { %s }\n", imp.Package, strings.Join(imp.Names, ", "))
		}
	}
	printContext(w, o.Global, 0)
	for _, d := range o.Duplicates {
		fmt.Fprintf(w, "duplicate %s\n", d)
	}
	for _, s := range o.Javascript {
		fmt.Fprintf(w, "javascript %d:%d\n", s.Pos.Line, s.Pos.Column)
	}
}

func printContext(w io.Writer, ctx *Context, depth int) {
	indent := strings.Repeat("  ", depth)

	for _, name := range sortedKeys(ctx.Types) {
		t := ctx.Types[name]
		fmt.Fprintf(w, "%stip %s%s\n", indent, t.Name, parentSuffix(t.Parent))
		for _, f := range t.Fields {
			fmt.Fprintf(w, "%s  %s: %s\n", indent, f.Name, typeName(f.Type))
		}
	}
	for _, name := range sortedKeys(ctx.Models) {
		m := ctx.Models[name]
		fmt.Fprintf(w, "%smodel %s%s\n", indent, m.Name, parentSuffix(m.Parent))
		fmt.Fprintf(w, "%s  konstruktor%s\n", indent, signature(m.Constructor))
		printMembers(w, "privatno", m.Private, indent+"  ")
		printMembers(w, "javno", m.Public, indent+"  ")
	}
	for _, name := range sortedKeys(ctx.Functions) {
		fn := ctx.Functions[name]
		fmt.Fprintf(w, "%sfunkcija %s%s\n", indent, fn.Name, signature(fn))
	}
	for _, name := range sortedKeys(ctx.Variables) {
		fmt.Fprintf(w, "%s%s\n", indent, variable(ctx.Variables[name]))
	}

	for _, child := range ctx.Children {
		if !child.empty() {
			fmt.Fprintf(w, "%s{\n", indent)
			printContext(w, child, depth+1)
			fmt.Fprintf(w, "%s}\n", indent)
		}
	}
}

func printMembers(w io.Writer, label string, ms Members, indent string) {
	for _, p := range ms.Properties {
		fmt.Fprintf(w, "%s%s %s\n", indent, label, variable(p))
	}
	for _, fn := range ms.Methods {
		fmt.Fprintf(w, "%s%s funkcija %s%s\n", indent, label, fn.Name, signature(fn))
	}
}

func (c *Context) empty() bool {
	if len(c.Variables)+len(c.Functions)+len(c.Types)+len(c.Models) > 0 {
		return false
	}
	for _, child := range c.Children {
		if !child.empty() {
			return false
		}
	}
	return true
}

func signature(fn Function) string {
	params := make([]string, len(fn.Parameters))
	for i, p := range fn.Parameters {
		params[i] = p.Name
		if p.Type != nil {
			params[i] += ": " + p.Type.Name()
		}
	}
	sig := "(" + strings.Join(params, ", ") + ")"
	if fn.ReturnType != nil {
		sig += ": " + fn.ReturnType.Name()
	}
	return sig
}

func variable(v Variable) string {
	kw := "var"
	if v.Constant {
		kw = "konst"
	}
	if v.Type == nil {
		return kw + " " + v.Name
	}
	return kw + " " + v.Name + ": " + v.Type.Name()
}

func parentSuffix(parent string) string {
	if parent == "" {
		return ""
	}
	return " < " + parent
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
