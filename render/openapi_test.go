package render

import (
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/siegeai/sleuth/schema"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestOpenAPIObject(t *testing.T) {
	n := &schema.Node{Kind: schema.KindObject, Count: 1, Properties: []schema.Property{
		{Key: "name", Value: &schema.Node{Kind: schema.KindString, Examples: []any{"Alice"}, Count: 1}},
		{Key: "age", Value: &schema.Node{Kind: schema.KindInteger, Optional: true, Examples: []any{int64(25)}, Count: 1}},
	}}

	s := OpenAPI(n)

	assert.Equal(t, s.Type, openapi3.TypeObject)
	assert.Equal(t, s.Required, []string{"name"})
	assert.Equal(t, s.Properties["name"].Value.Type, openapi3.TypeString)
	assert.Equal(t, s.Properties["age"].Value.Type, openapi3.TypeInteger)
	assert.Equal(t, s.Properties["age"].Value.Example, int64(25))
}

func TestOpenAPIFormats(t *testing.T) {
	day := OpenAPI(&schema.Node{Kind: schema.KindString, Format: "yyyy-mm-dd", Count: 1})
	ts := OpenAPI(&schema.Node{Kind: schema.KindString, Format: "datetime", Count: 1})
	id := OpenAPI(&schema.Node{Kind: schema.KindString, Format: "uuid", Count: 1})

	assert.Equal(t, day.Format, "date")
	assert.Equal(t, ts.Format, "date-time")
	assert.Equal(t, id.Format, "uuid")
}

func TestOpenAPIScalars(t *testing.T) {
	assert.Equal(t, OpenAPI(&schema.Node{Kind: schema.KindInteger, Count: 1}).Type, openapi3.TypeInteger)
	assert.Equal(t, OpenAPI(&schema.Node{Kind: schema.KindFloat, Count: 1}).Type, openapi3.TypeNumber)
	assert.Equal(t, OpenAPI(&schema.Node{Kind: schema.KindBoolean, Count: 1}).Type, openapi3.TypeBoolean)
}

func TestOpenAPINull(t *testing.T) {
	s := OpenAPI(&schema.Node{Kind: schema.KindNull, Count: 1})

	assert.Equal(t, s.Type, "")
	assert.True(t, s.Nullable)
}

func TestOpenAPIMixedStaysUntyped(t *testing.T) {
	s := OpenAPI(&schema.Node{Kind: schema.KindUnknown, Count: 2, Examples: []any{"123", int64(123)}})

	assert.Equal(t, s.Type, "")
	assert.Equal(t, s.Example, "123")
}

func TestOpenAPIArray(t *testing.T) {
	n := &schema.Node{Kind: schema.KindArray, Count: 1, Items: &schema.Node{Kind: schema.KindString, Count: 1}}

	s := OpenAPI(n)

	assert.Equal(t, s.Type, openapi3.TypeArray)
	assert.Equal(t, s.Items.Value.Type, openapi3.TypeString)
}

func TestOpenAPIJSONRendered(t *testing.T) {
	n := &schema.Node{Kind: schema.KindObject, Count: 1, Properties: []schema.Property{
		{Key: "id", Value: &schema.Node{Kind: schema.KindString, Format: "uuid", Count: 1}},
	}}

	bs, err := OpenAPIJSON(n)
	assert.Nil(t, err)
	assert.Contains(t, string(bs), `"type": "object"`)
	assert.Contains(t, string(bs), `"format": "uuid"`)
	assert.Contains(t, string(bs), `"required"`)
}
