// Package render turns an inferred schema tree into the views shown
// to users: colored terminal text, schema JSON, YAML and OpenAPI.
// Trees are treated as read only input.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/siegeai/sleuth/schema"
)

var (
	kindColor    = color.New(color.FgCyan)
	formatColor  = color.New(color.FgMagenta)
	keyColor     = color.New(color.Bold)
	exampleColor = color.New(color.FgHiBlack)
	mixedColor   = color.New(color.FgYellow)
)

// Text writes an indented, colored description of the schema.
func Text(w io.Writer, n *schema.Node) {
	writeNode(w, n, 0)
}

func writeNode(w io.Writer, n *schema.Node, indent int) {
	switch n.Kind {
	case schema.KindObject:
		fmt.Fprintln(w, kindColor.Sprint("object"))
		pad := strings.Repeat("  ", indent+1)
		for _, p := range n.Properties {
			key := p.Key
			if p.Value.Optional {
				key += "?"
			}
			fmt.Fprintf(w, "%s%s: ", pad, keyColor.Sprint(key))
			writeNode(w, p.Value, indent+1)
		}
	case schema.KindArray:
		fmt.Fprint(w, kindColor.Sprint("array"), " of ")
		if n.Items == nil {
			fmt.Fprintln(w, mixedColor.Sprint("unknown"))
			return
		}
		writeNode(w, n.Items, indent)
	case schema.KindUnknown:
		if n.Count > 0 {
			fmt.Fprint(w, mixedColor.Sprint("unknown (mixed types)"))
		} else {
			fmt.Fprint(w, mixedColor.Sprint("unknown"))
		}
		writeExamples(w, n)
		fmt.Fprintln(w)
	default:
		fmt.Fprint(w, kindColor.Sprint(n.Kind.String()))
		if n.Format != "" {
			fmt.Fprint(w, " ", formatColor.Sprint(n.Format))
		}
		writeExamples(w, n)
		fmt.Fprintln(w)
	}
}

func writeExamples(w io.Writer, n *schema.Node) {
	if len(n.Examples) == 0 {
		return
	}
	parts := make([]string, len(n.Examples))
	for i, e := range n.Examples {
		parts[i] = formatExample(e)
	}
	fmt.Fprint(w, "  ", exampleColor.Sprint(strings.Join(parts, ", ")))
}

func formatExample(v any) string {
	switch x := v.(type) {
	case string:
		return strconv.Quote(x)
	case nil:
		return "null"
	default:
		return fmt.Sprint(x)
	}
}
