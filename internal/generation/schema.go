package generation

// SchemaType is the JSON type of a schema node.
type SchemaType string

// Schema node types.
const (
	TypeObject SchemaType = "object"
	TypeArray  SchemaType = "array"
	TypeString SchemaType = "string"
)

// Schema is the provider-neutral subset of JSON Schema used to describe
// structured model output. Adapters translate it to their own schema types
// and the normalizer validates replies against it.
type Schema struct {
	Type       SchemaType
	Properties map[string]*Schema
	// Order lists property names in the order they should be presented to
	// the model. Properties missing from Order are appended unordered.
	Order    []string
	Items    *Schema
	Required []string
	// MinLength applies to strings; zero means unconstrained.
	MinLength int
}

// JSONSchema renders the schema as a JSON Schema document suitable for
// gojsonschema.NewGoLoader.
func (s *Schema) JSONSchema() map[string]any {
	if s == nil {
		return map[string]any{}
	}

	doc := map[string]any{"type": string(s.Type)}
	if len(s.Properties) > 0 {
		props := make(map[string]any, len(s.Properties))
		for name, prop := range s.Properties {
			props[name] = prop.JSONSchema()
		}
		doc["properties"] = props
	}
	if s.Items != nil {
		doc["items"] = s.Items.JSONSchema()
	}
	if len(s.Required) > 0 {
		required := make([]any, len(s.Required))
		for i, r := range s.Required {
			required[i] = r
		}
		doc["required"] = required
	}
	if s.MinLength > 0 {
		doc["minLength"] = s.MinLength
	}
	return doc
}

// PostSchema describes the structured blog post returned by the full-post
// operation.
func PostSchema() *Schema {
	str := func() *Schema { return &Schema{Type: TypeString} }
	fields := []string{"title", "slug", "excerpt", "content", "category", "tags", "read_time"}
	return &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"title":    str(),
			"slug":     str(),
			"excerpt":  str(),
			"content":  str(),
			"category": str(),
			"tags": {
				Type:  TypeArray,
				Items: &Schema{Type: TypeString, MinLength: 1},
			},
			"read_time": str(),
		},
		Order:    fields,
		Required: fields,
	}
}

// SentencesSchema describes the example-sentence list returned by the
// sentence operation.
func SentencesSchema() *Schema {
	return &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"sentences": {
				Type:  TypeArray,
				Items: &Schema{Type: TypeString, MinLength: 1},
			},
		},
		Order:    []string{"sentences"},
		Required: []string{"sentences"},
	}
}
