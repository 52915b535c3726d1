// Package infer builds a schema tree from a JSON document by walking
// its parsed value tree. Array elements fold into one representative
// items node and object keys that match a recognized pattern collapse
// into one placeholder property per pattern and depth.
package infer

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/siegeai/sleuth/pattern"
	"github.com/siegeai/sleuth/schema"
	"github.com/valyala/fastjson"
)

// ErrInvalidDocument marks input that is not parseable JSON.
var ErrInvalidDocument = errors.New("invalid json document")

var bom = []byte{0xef, 0xbb, 0xbf}

// Document parses data and infers the schema of the whole document.
// Malformed input is the only failure.
func Document(data []byte) (*schema.Node, error) {
	v, err := fastjson.ParseBytes(bytes.TrimPrefix(data, bom))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return Value(v), nil
}

// Value infers the schema of an already parsed document. It is total,
// any well formed value yields a schema.
func Value(v *fastjson.Value) *schema.Node {
	return build(v, 0)
}

func build(v *fastjson.Value, depth int) *schema.Node {
	switch v.Type() {
	case fastjson.TypeObject:
		return buildObject(v, depth)
	case fastjson.TypeArray:
		return buildArray(v, depth)
	default:
		return classify(v)
	}
}

func buildObject(v *fastjson.Value, depth int) *schema.Node {
	o, _ := v.Object()

	// Keys sharing a recognized pattern at this depth land on the same
	// placeholder and their children merge into one representative.
	childDepth := depth + 1
	order := make([]string, 0, o.Len())
	children := make(map[string]*schema.Node, o.Len())
	o.Visit(func(key []byte, elem *fastjson.Value) {
		name := string(key)
		if tok, ok := pattern.Match(name); ok {
			name = placeholder(tok, childDepth)
		}
		child := build(elem, childDepth)
		if prev, ok := children[name]; ok {
			children[name] = schema.Merge(prev, child)
			return
		}
		children[name] = child
		order = append(order, name)
	})

	res := &schema.Node{
		Kind:       schema.KindObject,
		Properties: make([]schema.Property, 0, len(order)),
		Count:      1,
	}
	for _, name := range order {
		res.Properties = append(res.Properties, schema.Property{Key: name, Value: children[name]})
	}
	return res
}

func buildArray(v *fastjson.Value, depth int) *schema.Node {
	vs, _ := v.Array()

	// Element depth stays put, only descending into object values
	// deepens the tree.
	var items *schema.Node
	for _, e := range vs {
		items = schema.Merge(items, build(e, depth))
	}
	if items == nil {
		items = &schema.Node{Kind: schema.KindUnknown}
	}
	return &schema.Node{Kind: schema.KindArray, Items: items, Count: 1}
}

// placeholder names the property standing in for a group of pattern
// matched keys, e.g. yyyy-mm-dd_1 for date keys right under the root.
func placeholder(token string, depth int) string {
	return token + "_" + strconv.Itoa(depth)
}
