package effect

import "github.com/invopop/jsonschema"

// Schema describes Record for clients submitting effect data.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
		AllowAdditionalProperties:  true,
	}
	schema := reflector.Reflect(&Record{})
	schema.Title = "Impact Effect Record"
	schema.Description = "Effect magnitudes driving the impact visualization. Distances in km; every field optional."
	return schema
}
