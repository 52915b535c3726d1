package gen

import (
	"strings"
	"testing"

	"github.com/siegeai/sleuth/schema"
	"github.com/stretchr/testify/assert"
)

func TestFileBasicObject(t *testing.T) {
	n := &schema.Node{Kind: schema.KindObject, Count: 1, Properties: []schema.Property{
		{Key: "name", Value: &schema.Node{Kind: schema.KindString, Count: 1}},
		{Key: "age", Value: &schema.Node{Kind: schema.KindInteger, Optional: true, Count: 1}},
	}}

	src, err := File(n, "main", "Root")
	assert.Nil(t, err)

	want := "// Code generated by sleuth. DO NOT EDIT.\n" +
		"\n" +
		"package main\n" +
		"\n" +
		"type Root struct {\n" +
		"\tName string `json:\"name\"`\n" +
		"\tAge *int64 `json:\"age,omitempty\"`\n" +
		"}\n"
	assert.Equal(t, string(src), want)
}

func TestFileNestedObject(t *testing.T) {
	n := &schema.Node{Kind: schema.KindObject, Count: 1, Properties: []schema.Property{
		{Key: "name", Value: &schema.Node{Kind: schema.KindString, Count: 1}},
		{Key: "address", Value: &schema.Node{Kind: schema.KindObject, Count: 1, Properties: []schema.Property{
			{Key: "city", Value: &schema.Node{Kind: schema.KindString, Count: 1}},
		}}},
	}}

	src, err := File(n, "main", "Root")
	assert.Nil(t, err)

	s := string(src)
	assert.Contains(t, s, "type Root struct {")
	assert.Contains(t, s, "\tAddress RootAddress `json:\"address\"`\n")
	assert.Contains(t, s, "type RootAddress struct {\n\tCity string `json:\"city\"`\n}\n")
	assert.Less(t, strings.Index(s, "type Root struct"), strings.Index(s, "type RootAddress struct"))
}

func TestFileArrayRoot(t *testing.T) {
	n := &schema.Node{Kind: schema.KindArray, Count: 1, Items: &schema.Node{
		Kind:  schema.KindObject,
		Count: 1,
		Properties: []schema.Property{
			{Key: "a", Value: &schema.Node{Kind: schema.KindInteger, Count: 1}},
		},
	}}

	src, err := File(n, "main", "Root")
	assert.Nil(t, err)

	want := "// Code generated by sleuth. DO NOT EDIT.\n" +
		"\n" +
		"package main\n" +
		"\n" +
		"type Root []RootItem\n" +
		"\n" +
		"type RootItem struct {\n" +
		"\tA int64 `json:\"a\"`\n" +
		"}\n"
	assert.Equal(t, string(src), want)
}

func TestFileScalarRoot(t *testing.T) {
	n := &schema.Node{Kind: schema.KindString, Count: 1}

	src, err := File(n, "api", "Reply")
	assert.Nil(t, err)

	want := "// Code generated by sleuth. DO NOT EDIT.\n" +
		"\n" +
		"package api\n" +
		"\n" +
		"type Reply string\n"
	assert.Equal(t, string(src), want)
}

func TestFileEmptyObject(t *testing.T) {
	n := &schema.Node{Kind: schema.KindObject, Count: 1}

	src, err := File(n, "main", "Root")
	assert.Nil(t, err)
	assert.Contains(t, string(src), "type Root struct{}")
}

func TestFileTimeImport(t *testing.T) {
	n := &schema.Node{Kind: schema.KindObject, Count: 1, Properties: []schema.Property{
		{Key: "ts", Value: &schema.Node{Kind: schema.KindString, Format: "datetime", Count: 1}},
	}}

	src, err := File(n, "main", "Root")
	assert.Nil(t, err)

	s := string(src)
	assert.Contains(t, s, "import (\n\t\"time\"\n)\n")
	assert.Contains(t, s, "\tTs time.Time `json:\"ts\"`\n")
}

func TestFileUUIDImport(t *testing.T) {
	n := &schema.Node{Kind: schema.KindObject, Count: 1, Properties: []schema.Property{
		{Key: "id", Value: &schema.Node{Kind: schema.KindString, Format: "uuid", Count: 1}},
	}}

	src, err := File(n, "main", "Root")
	assert.Nil(t, err)

	s := string(src)
	assert.Contains(t, s, "import (\n\t\"github.com/google/uuid\"\n)\n")
	assert.Contains(t, s, "\tId uuid.UUID `json:\"id\"`\n")
}

func TestFileImportGroups(t *testing.T) {
	n := &schema.Node{Kind: schema.KindObject, Count: 1, Properties: []schema.Property{
		{Key: "ts", Value: &schema.Node{Kind: schema.KindString, Format: "datetime", Count: 1}},
		{Key: "id", Value: &schema.Node{Kind: schema.KindString, Format: "uuid", Count: 1}},
	}}

	src, err := File(n, "main", "Root")
	assert.Nil(t, err)
	assert.Contains(t, string(src), "import (\n\t\"time\"\n\n\t\"github.com/google/uuid\"\n)\n")
}

func TestFileOptionalVariants(t *testing.T) {
	n := &schema.Node{Kind: schema.KindObject, Count: 1, Properties: []schema.Property{
		{Key: "tags", Value: &schema.Node{Kind: schema.KindArray, Optional: true, Count: 1,
			Items: &schema.Node{Kind: schema.KindString, Count: 1}}},
		{Key: "mixed", Value: &schema.Node{Kind: schema.KindUnknown, Optional: true, Count: 2}},
		{Key: "seen", Value: &schema.Node{Kind: schema.KindBoolean, Optional: true, Count: 1}},
	}}

	src, err := File(n, "main", "Root")
	assert.Nil(t, err)

	s := string(src)
	assert.Contains(t, s, "\tTags []string `json:\"tags,omitempty\"`\n")
	assert.Contains(t, s, "\tMixed any `json:\"mixed,omitempty\"`\n")
	assert.Contains(t, s, "\tSeen *bool `json:\"seen,omitempty\"`\n")
}

func TestFilePlaceholderField(t *testing.T) {
	n := &schema.Node{Kind: schema.KindObject, Count: 1, Properties: []schema.Property{
		{Key: "yyyy-mm-dd_1", Value: &schema.Node{Kind: schema.KindInteger, Count: 2}},
	}}

	src, err := File(n, "main", "Root")
	assert.Nil(t, err)
	assert.Contains(t, string(src), "\tYyyyMmDd1 int64 `json:\"yyyy-mm-dd_1\"`\n")
}

func TestFileDeterministic(t *testing.T) {
	n := &schema.Node{Kind: schema.KindObject, Count: 1, Properties: []schema.Property{
		{Key: "ts", Value: &schema.Node{Kind: schema.KindString, Format: "datetime", Count: 1}},
		{Key: "id", Value: &schema.Node{Kind: schema.KindString, Format: "uuid", Count: 1}},
		{Key: "inner", Value: &schema.Node{Kind: schema.KindObject, Count: 1, Properties: []schema.Property{
			{Key: "v", Value: &schema.Node{Kind: schema.KindFloat, Count: 1}},
		}}},
	}}

	a, err := File(n, "main", "Root")
	assert.Nil(t, err)
	b, err := File(n, "main", "Root")
	assert.Nil(t, err)
	assert.Equal(t, a, b)
}

func TestFieldNames(t *testing.T) {
	assert.Equal(t, fieldName("user_id"), "UserId")
	assert.Equal(t, fieldName("first-name"), "FirstName")
	assert.Equal(t, fieldName("camelCase"), "CamelCase")
	assert.Equal(t, fieldName("yyyy-mm-dd_1"), "YyyyMmDd1")
	assert.Equal(t, fieldName("123"), "F123")
	assert.Equal(t, fieldName("___"), "Field")
}
