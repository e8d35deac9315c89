package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
)

func buildSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
	}
	schema := reflector.Reflect(new(Config))
	schema.Title = "frontier configuration"
	schema.Description = "Hull scheduling and survey simulation settings"
	return schema
}

// Schema returns the JSON schema of the configuration file, indented.
func Schema() ([]byte, error) {
	data, err := json.MarshalIndent(buildSchema(), "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshal schema")
	}
	return append(data, '\n'), nil
}
