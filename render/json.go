package render

import (
	"github.com/goccy/go-json"
	"github.com/siegeai/sleuth/schema"
)

// JSON renders the schema tree as indented JSON, properties in
// document order.
func JSON(n *schema.Node) ([]byte, error) {
	return json.MarshalIndent(n, "", "  ")
}

// OpenAPIJSON renders the OpenAPI view of the schema as indented JSON.
func OpenAPIJSON(n *schema.Node) ([]byte, error) {
	return json.MarshalIndent(OpenAPI(n), "", "  ")
}
