package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/invopop/jsonschema"
	validator "github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "https://overworld.local/config.schema.json"

// Reflect returns the JSON Schema of Config. Fields are optional so that
// partial config files validate.
func Reflect() *jsonschema.Schema {
	r := jsonschema.Reflector{
		Anonymous:                  true,
		DoNotReference:             true,
		ExpandedStruct:             true,
		RequiredFromJSONSchemaTags: true,
	}
	s := r.Reflect(&Config{})
	s.Title = "Overworld configuration"
	s.Description = "Seeds, world dimensions and runtime options of the overworld game"
	return s
}

// Schema returns the indented JSON Schema of Config.
func Schema() ([]byte, error) {
	data, err := json.MarshalIndent(Reflect(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return data, nil
}

var compiled = sync.OnceValues(func() (*validator.Schema, error) {
	data, err := Schema()
	if err != nil {
		return nil, err
	}
	c := validator.NewCompiler()
	if err := c.AddResource(schemaURL, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	s, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return s, nil
})

// Validate checks cfg against the schema.
func Validate(cfg *Config) error {
	return validateDocument(cfg)
}

// validateDocument validates any JSON-encodable value. It is normalized
// through JSON first so the validator sees JSON value types.
func validateDocument(doc any) error {
	s, err := compiled()
	if err != nil {
		return err
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	var v any
	if err := decodeJSON(data, &v); err != nil {
		return err
	}
	if err := s.Validate(v); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	return nil
}

func decodeJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	return nil
}
