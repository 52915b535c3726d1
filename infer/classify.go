package infer

import (
	"github.com/siegeai/sleuth/pattern"
	"github.com/siegeai/sleuth/schema"
	"github.com/valyala/fastjson"
)

// classify turns one scalar into a leaf node carrying one example.
// Numbers that fit int64 without a fractional part count as integers,
// everything else numeric is a float.
func classify(v *fastjson.Value) *schema.Node {
	switch v.Type() {
	case fastjson.TypeString:
		sb, _ := v.StringBytes()
		s := string(sb)
		n := &schema.Node{Kind: schema.KindString, Examples: []any{s}, Count: 1}
		if tok, ok := pattern.Match(s); ok {
			n.Format = tok
		}
		return n
	case fastjson.TypeNumber:
		if i, err := v.Int64(); err == nil {
			return &schema.Node{Kind: schema.KindInteger, Examples: []any{i}, Count: 1}
		}
		f, _ := v.Float64()
		return &schema.Node{Kind: schema.KindFloat, Examples: []any{f}, Count: 1}
	case fastjson.TypeTrue:
		return &schema.Node{Kind: schema.KindBoolean, Examples: []any{true}, Count: 1}
	case fastjson.TypeFalse:
		return &schema.Node{Kind: schema.KindBoolean, Examples: []any{false}, Count: 1}
	case fastjson.TypeNull:
		return &schema.Node{Kind: schema.KindNull, Count: 1}
	}

	panic("should be unreachable")
}
