package schema

import (
	"bytes"

	"github.com/goccy/go-json"
)

// MarshalJSON writes the node the way it is shown to users: type
// first, then format, optional and examples when set, then properties
// in document order or items. Count stays internal.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"type":`)
	if err := writeJSON(&buf, n.Kind.String()); err != nil {
		return nil, err
	}
	if n.Format != "" {
		buf.WriteString(`,"format":`)
		if err := writeJSON(&buf, n.Format); err != nil {
			return nil, err
		}
	}
	if n.Optional {
		buf.WriteString(`,"optional":true`)
	}
	if len(n.Examples) > 0 {
		buf.WriteString(`,"examples":`)
		if err := writeJSON(&buf, n.Examples); err != nil {
			return nil, err
		}
	}
	if n.Kind == KindObject {
		buf.WriteString(`,"properties":{`)
		for i, p := range n.Properties {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(&buf, p.Key); err != nil {
				return nil, err
			}
			buf.WriteByte(':')
			child, err := p.Value.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(child)
		}
		buf.WriteByte('}')
	}
	if n.Kind == KindArray && n.Items != nil {
		buf.WriteString(`,"items":`)
		child, err := n.Items.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(child)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v any) error {
	bs, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(bs)
	return nil
}
