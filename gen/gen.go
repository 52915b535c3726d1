// Package gen renders an inferred schema as Go type declarations, the
// typed record view of a document. Output is deterministic for a
// given schema tree.
package gen

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/siegeai/sleuth/pattern"
	"github.com/siegeai/sleuth/schema"
)

type generator struct {
	decls   []string
	imports map[string]bool
	types   map[string]bool
}

// File renders a complete Go source file declaring types that match
// the schema, root type first, nested types in discovery order.
func File(n *schema.Node, pkg, name string) ([]byte, error) {
	if pkg == "" {
		pkg = "main"
	}
	g := &generator{imports: make(map[string]bool), types: make(map[string]bool)}

	rootName := fieldName(name)
	var expr string
	if n.Kind == schema.KindArray {
		expr = g.typeRef(n, rootName+"Item")
	} else {
		expr = g.typeRef(n, rootName)
	}

	var b strings.Builder
	b.WriteString("// Code generated by sleuth. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	b.WriteString(g.importBlock())
	if expr != rootName {
		fmt.Fprintf(&b, "type %s %s\n", rootName, expr)
		if len(g.decls) > 0 {
			b.WriteString("\n")
		}
	}
	for i, d := range g.decls {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(d)
		b.WriteString("\n")
	}
	return []byte(b.String()), nil
}

// typeRef returns the Go type expression for a node, declaring named
// struct types along the way. hint seeds the name of any struct the
// node needs.
func (g *generator) typeRef(n *schema.Node, hint string) string {
	switch n.Kind {
	case schema.KindObject:
		return g.structDecl(n, hint)
	case schema.KindArray:
		if n.Items == nil || n.Items.Kind == schema.KindUnknown {
			return "[]any"
		}
		return "[]" + g.typeRef(n.Items, hint)
	case schema.KindString:
		switch n.Format {
		case pattern.Datetime:
			g.imports["time"] = true
			return "time.Time"
		case pattern.UUID:
			g.imports["github.com/google/uuid"] = true
			return "uuid.UUID"
		}
		return "string"
	case schema.KindInteger:
		return "int64"
	case schema.KindFloat:
		return "float64"
	case schema.KindBoolean:
		return "bool"
	default:
		// null or mixed observations
		return "any"
	}
}

// fieldType wraps typeRef with the optionality rule: optional fields
// become pointers, except slices and any which already have a natural
// empty state.
func (g *generator) fieldType(n *schema.Node, hint string) string {
	t := g.typeRef(n, hint)
	if !n.Optional {
		return t
	}
	if strings.HasPrefix(t, "[]") || t == "any" {
		return t
	}
	return "*" + t
}

func (g *generator) structDecl(n *schema.Node, hint string) string {
	name := g.uniqueTypeName(hint)
	idx := len(g.decls)
	g.decls = append(g.decls, "")

	if len(n.Properties) == 0 {
		g.decls[idx] = fmt.Sprintf("type %s struct{}", name)
		return name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "type %s struct {\n", name)
	used := make(map[string]bool, len(n.Properties))
	for _, p := range n.Properties {
		field := fieldName(p.Key)
		for i := 2; used[field]; i++ {
			field = fmt.Sprintf("%s%d", fieldName(p.Key), i)
		}
		used[field] = true

		typ := g.fieldType(p.Value, name+field)
		tag := p.Key
		if p.Value.Optional {
			tag += ",omitempty"
		}
		if strings.Contains(tag, "`") {
			fmt.Fprintf(&b, "\t%s %s\n", field, typ)
			continue
		}
		fmt.Fprintf(&b, "\t%s %s `json:%q`\n", field, typ, tag)
	}
	b.WriteString("}")
	g.decls[idx] = b.String()
	return name
}

func (g *generator) uniqueTypeName(hint string) string {
	name := hint
	for i := 2; g.types[name]; i++ {
		name = fmt.Sprintf("%s%d", hint, i)
	}
	g.types[name] = true
	return name
}

func (g *generator) importBlock() string {
	if len(g.imports) == 0 {
		return ""
	}
	var std, ext []string
	for p := range g.imports {
		if strings.Contains(p, ".") {
			ext = append(ext, p)
		} else {
			std = append(std, p)
		}
	}
	sort.Strings(std)
	sort.Strings(ext)

	var b strings.Builder
	b.WriteString("import (\n")
	for _, p := range std {
		fmt.Fprintf(&b, "\t%q\n", p)
	}
	if len(std) > 0 && len(ext) > 0 {
		b.WriteString("\n")
	}
	for _, p := range ext {
		fmt.Fprintf(&b, "\t%q\n", p)
	}
	b.WriteString(")\n\n")
	return b.String()
}

// fieldName turns a property name, pattern placeholders included, into
// an exported Go identifier, e.g. yyyy-mm-dd_1 becomes YyyyMmDd1.
func fieldName(key string) string {
	var b strings.Builder
	up := true
	for _, r := range key {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			up = true
			continue
		}
		if up {
			r = unicode.ToUpper(r)
			up = false
		}
		b.WriteRune(r)
	}
	s := b.String()
	if s == "" {
		return "Field"
	}
	if first, _ := utf8.DecodeRuneInString(s); unicode.IsDigit(first) {
		s = "F" + s
	}
	return s
}
