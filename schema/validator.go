// Package schema provides lightweight JSON Schema validation for matchkit's
// own on-disk formats (currently, dictionary manifests). It is a deliberately
// small surface: one schema per caller, compiled once and reused.
package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// Validator wraps a single compiled JSON schema.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles schemaData (a JSON Schema document) into a Validator.
func NewValidator(schemaData []byte) (*Validator, error) {
	compiler := jsonschema.NewCompiler()

	const virtualURL = "memory://schema.json"
	if err := compiler.AddResource(virtualURL, strings.NewReader(string(schemaData))); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	compiled, err := compiler.Compile(virtualURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return &Validator{schema: compiled}, nil
}

// ValidateData validates an in-memory decoded value (e.g. the result of
// json.Unmarshal or yaml.Unmarshal into interface{}) against the schema.
func (v *Validator) ValidateData(data interface{}) error {
	if err := v.schema.Validate(data); err != nil {
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			return ValidationErrors(flattenValidationError(validationErr))
		}
		return err
	}
	return nil
}

// ValidateJSON validates a JSON document against the schema.
func (v *Validator) ValidateJSON(jsonData []byte) error {
	var payload interface{}
	if err := json.Unmarshal(jsonData, &payload); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return v.ValidateData(payload)
}

// ValidateYAML validates a YAML document against the schema.
func (v *Validator) ValidateYAML(yamlData []byte) error {
	var payload interface{}
	if err := yaml.Unmarshal(yamlData, &payload); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}
	return v.ValidateData(payload)
}

func flattenValidationError(err *jsonschema.ValidationError) ValidationErrors {
	if err == nil {
		return nil
	}

	var errs ValidationErrors
	stack := []*jsonschema.ValidationError{err}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if len(cur.Causes) == 0 {
			errs = append(errs, ValidationError{
				Field:   cur.InstanceLocation,
				Message: cur.Message,
			})
			continue
		}
		stack = append(stack, cur.Causes...)
	}
	return errs
}
