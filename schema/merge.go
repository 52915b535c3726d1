package schema

import "fmt"

// Merge unifies two nodes that describe the same slot, e.g. elements
// of one array or pattern grouped keys. It is total: disagreeing kinds
// widen to KindUnknown instead of failing. Inputs are never mutated.
func Merge(a, b *Node) *Node {
	if a == nil && b == nil {
		return nil
	}
	if a != nil && b == nil {
		return a
	}
	if a == nil && b != nil {
		return b
	}

	// A count of zero is no observation at all, the other side wins.
	// Keeps the items of an empty array from widening everything.
	if a.Count == 0 {
		return b
	}
	if b.Count == 0 {
		return a
	}

	if a.Kind != b.Kind {
		return &Node{
			Kind:     KindUnknown,
			Optional: a.Optional || b.Optional,
			Examples: interleaveExamples(a.Examples, b.Examples),
			Count:    a.Count + b.Count,
		}
	}

	switch a.Kind {
	case KindObject:
		return mergeObjects(a, b)
	case KindArray:
		return mergeArrays(a, b)
	default:
		return mergeLeaves(a, b)
	}
}

func mergeObjects(a, b *Node) *Node {
	res := &Node{
		Kind:       KindObject,
		Properties: make([]Property, 0, len(a.Properties)+len(b.Properties)),
		Optional:   a.Optional || b.Optional,
		Count:      a.Count + b.Count,
	}

	bv := make(map[string]*Node, len(b.Properties))
	for _, p := range b.Properties {
		bv[p.Key] = p.Value
	}

	shared := make(map[string]bool, len(a.Properties))
	for _, p := range a.Properties {
		if other, ok := bv[p.Key]; ok {
			shared[p.Key] = true
			res.Properties = append(res.Properties, Property{Key: p.Key, Value: Merge(p.Value, other)})
			continue
		}
		res.Properties = append(res.Properties, Property{Key: p.Key, Value: markOptional(p.Value)})
	}
	for _, p := range b.Properties {
		if shared[p.Key] {
			continue
		}
		res.Properties = append(res.Properties, Property{Key: p.Key, Value: markOptional(p.Value)})
	}

	return res
}

// markOptional flags a node whose key was missing on the other side,
// copying so the original observation stays untouched.
func markOptional(n *Node) *Node {
	if n.Optional {
		return n
	}
	c := *n
	c.Optional = true
	return &c
}

func mergeArrays(a, b *Node) *Node {
	return &Node{
		Kind:     KindArray,
		Items:    Merge(a.Items, b.Items),
		Optional: a.Optional || b.Optional,
		Count:    a.Count + b.Count,
	}
}

func mergeLeaves(a, b *Node) *Node {
	format := ""
	if a.Format == b.Format {
		format = a.Format
	}
	return &Node{
		Kind:     a.Kind,
		Format:   format,
		Optional: a.Optional || b.Optional,
		Examples: mergeExamples(a.Examples, b.Examples),
		Count:    a.Count + b.Count,
	}
}

// mergeExamples keeps the first MaxExamples distinct values, a's
// observations first.
func mergeExamples(a, b []any) []any {
	var res []any
	seen := make(map[string]bool, MaxExamples)
	for _, v := range a {
		res = addExample(res, seen, v)
	}
	for _, v := range b {
		res = addExample(res, seen, v)
	}
	return res
}

// interleaveExamples alternates sides so that after a kind mismatch
// the surviving sample still shows values from both inputs.
func interleaveExamples(a, b []any) []any {
	var res []any
	seen := make(map[string]bool, MaxExamples)
	for i := 0; i < len(a) || i < len(b); i++ {
		if i < len(a) {
			res = addExample(res, seen, a[i])
		}
		if i < len(b) {
			res = addExample(res, seen, b[i])
		}
	}
	return res
}

func addExample(res []any, seen map[string]bool, v any) []any {
	if len(res) >= MaxExamples {
		return res
	}
	k := exampleKey(v)
	if seen[k] {
		return res
	}
	seen[k] = true
	return append(res, v)
}

// exampleKey keeps values that print alike distinct, e.g. "123" and 123.
func exampleKey(v any) string {
	return fmt.Sprintf("%T %v", v, v)
}
