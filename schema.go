package twconfig

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON Schema of the document, reflected from Config.
// Unknown keys are allowed, matching the validator, which only warns about
// them.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		ExpandedStruct:            true,
		AllowAdditionalProperties: true,
	}
	s := r.Reflect(&Config{})
	s.Title = "twconfig"
	s.Description = "Utility-CSS generator configuration: content globs, safelist and theme extensions"
	return s
}

// SchemaJSON returns Schema encoded as indented JSON.
func SchemaJSON() ([]byte, error) {
	return json.MarshalIndent(Schema(), "", "  ")
}
