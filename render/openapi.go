package render

import (
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/siegeai/sleuth/schema"
)

// Formats with a registered OpenAPI spelling. Other tokens ride along
// verbatim, the format keyword is open ended.
var openapiFormats = map[string]string{
	"datetime":   "date-time",
	"yyyy-mm-dd": "date",
}

// OpenAPI renders the schema tree as an OpenAPI schema object.
// Mixed type nodes come out untyped so they stay valid for any of the
// shapes that were observed.
func OpenAPI(n *schema.Node) *openapi3.Schema {
	switch n.Kind {
	case schema.KindObject:
		ps := make(openapi3.Schemas, len(n.Properties))
		var required []string
		for _, p := range n.Properties {
			ps[p.Key] = OpenAPI(p.Value).NewRef()
			if !p.Value.Optional {
				required = append(required, p.Key)
			}
		}
		return &openapi3.Schema{Type: openapi3.TypeObject, Properties: ps, Required: required}
	case schema.KindArray:
		if n.Items == nil {
			return &openapi3.Schema{Type: openapi3.TypeArray}
		}
		return &openapi3.Schema{Type: openapi3.TypeArray, Items: OpenAPI(n.Items).NewRef()}
	case schema.KindString:
		format := n.Format
		if mapped, ok := openapiFormats[format]; ok {
			format = mapped
		}
		return &openapi3.Schema{Type: openapi3.TypeString, Format: format, Example: firstExample(n)}
	case schema.KindInteger:
		return &openapi3.Schema{Type: openapi3.TypeInteger, Example: firstExample(n)}
	case schema.KindFloat:
		return &openapi3.Schema{Type: openapi3.TypeNumber, Example: firstExample(n)}
	case schema.KindBoolean:
		return &openapi3.Schema{Type: openapi3.TypeBoolean, Example: firstExample(n)}
	case schema.KindNull:
		return &openapi3.Schema{Nullable: true}
	default:
		return &openapi3.Schema{Example: firstExample(n)}
	}
}

func firstExample(n *schema.Node) any {
	if len(n.Examples) == 0 {
		return nil
	}
	return n.Examples[0]
}
