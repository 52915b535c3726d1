package schema

// Kind is the inferred type of one node in the schema tree.
type Kind int

const (
	KindUnknown Kind = iota
	KindString
	KindInteger
	KindFloat
	KindBoolean
	KindNull
	KindObject
	KindArray
)

var kindNames = map[Kind]string{
	KindUnknown: "unknown",
	KindString:  "string",
	KindInteger: "integer",
	KindFloat:   "float",
	KindBoolean: "boolean",
	KindNull:    "null",
	KindObject:  "object",
	KindArray:   "array",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
