// SPDX-License-Identifier: MIT
// Package: hydrovary/settings
//
// schema.go - embedded JSON schema validation of the raw document.

package settings

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed settings.schema.json
var schemaFS embed.FS

const schemaName = "settings.schema.json"

// SchemaError is one schema violation with its document path.
type SchemaError struct {
	Path    string
	Message string
}

func (e SchemaError) String() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// Validator checks settings documents against the embedded schema.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles the embedded schema.
func NewValidator() (*Validator, error) {
	raw, err := schemaFS.ReadFile(schemaName)
	if err != nil {
		return nil, fmt.Errorf("read embedded schema: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse embedded schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaName, doc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	schema, err := c.Compile(schemaName)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &Validator{schema: schema}, nil
}

// ValidateDocument validates an already-parsed document. The document must
// be JSON-shaped (string keys, float64 numbers); use jsonify on YAML output.
func (v *Validator) ValidateDocument(doc any) []SchemaError {
	err := v.schema.Validate(doc)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []SchemaError{{Message: err.Error()}}
	}
	return collectErrors(ve)
}

// collectErrors flattens a ValidationError tree into its leaf violations.
func collectErrors(ve *jsonschema.ValidationError) []SchemaError {
	if len(ve.Causes) == 0 {
		path := ""
		if len(ve.InstanceLocation) > 0 {
			path = "/" + strings.Join(ve.InstanceLocation, "/")
		}
		return []SchemaError{{Path: path, Message: ve.Error()}}
	}
	var out []SchemaError
	for _, cause := range ve.Causes {
		out = append(out, collectErrors(cause)...)
	}
	return out
}

// jsonify rewrites a YAML-decoded document into the shape encoding/json
// would produce: string keys and float64 numbers. The schema validator only
// accepts that shape.
func jsonify(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = jsonify(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = jsonify(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = jsonify(val)
		}
		return out
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case uint64:
		return float64(t)
	default:
		return v
	}
}
