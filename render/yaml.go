package render

import (
	"github.com/siegeai/sleuth/schema"
	"gopkg.in/yaml.v3"
)

// YAML renders the schema tree as YAML, mirroring the JSON view. The
// document is built as an explicit node tree so property order
// survives the trip through the encoder.
func YAML(n *schema.Node) ([]byte, error) {
	doc, err := yamlNode(n)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}

func yamlNode(n *schema.Node) (*yaml.Node, error) {
	res := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key string, val *yaml.Node) {
		res.Content = append(res.Content, yamlKey(key), val)
	}

	add("type", yamlKey(n.Kind.String()))
	if n.Format != "" {
		add("format", yamlKey(n.Format))
	}
	if n.Optional {
		add("optional", &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: "true"})
	}
	if len(n.Examples) > 0 {
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, e := range n.Examples {
			v, err := yamlScalar(e)
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, v)
		}
		add("examples", seq)
	}
	if n.Kind == schema.KindObject {
		props := &yaml.Node{Kind: yaml.MappingNode}
		for _, p := range n.Properties {
			child, err := yamlNode(p.Value)
			if err != nil {
				return nil, err
			}
			props.Content = append(props.Content, yamlKey(p.Key), child)
		}
		add("properties", props)
	}
	if n.Kind == schema.KindArray && n.Items != nil {
		child, err := yamlNode(n.Items)
		if err != nil {
			return nil, err
		}
		add("items", child)
	}
	return res, nil
}

func yamlKey(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func yamlScalar(v any) (*yaml.Node, error) {
	if v == nil {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	}
	n := &yaml.Node{}
	if err := n.Encode(v); err != nil {
		return nil, err
	}
	return n, nil
}
