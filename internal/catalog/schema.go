package catalog

import (
	"github.com/invopop/jsonschema"
)

// Schema describes the catalog file format for content authors
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	schema := reflector.Reflect(new(File))
	schema.Title = "Item Catalog"
	schema.Description = "Item descriptors keyed by unique non-zero code"
	return schema
}
