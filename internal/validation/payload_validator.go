// Package validation checks content block payloads against JSON schemas
// before the typed decode runs, so a payload with a missing or misspelled
// field is rejected instead of silently decoding to zero values.
package validation

import (
	"bytes"
	"embed"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/whaamkabaam/trust-skin-hub/internal/domain"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var schemaFiles = map[domain.BlockType]string{
	domain.BlockTypeText:     "schemas/text.json",
	domain.BlockTypeProsCons: "schemas/pros_cons.json",
	domain.BlockTypeFAQ:      "schemas/faq.json",
	domain.BlockTypeStats:    "schemas/stats.json",
}

// PayloadValidator validates raw content block payloads against the schema
// registered for their block type.
type PayloadValidator struct {
	schemas map[domain.BlockType]*jsonschema.Schema
}

// NewPayloadValidator compiles the embedded payload schemas
func NewPayloadValidator() (*PayloadValidator, error) {
	compiler := jsonschema.NewCompiler()
	schemas := make(map[domain.BlockType]*jsonschema.Schema, len(schemaFiles))

	for blockType, file := range schemaFiles {
		data, err := schemaFS.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read schema %s: %w", file, err)
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to parse schema %s: %w", file, err)
		}
		if err := compiler.AddResource(file, doc); err != nil {
			return nil, fmt.Errorf("failed to add schema resource %s: %w", file, err)
		}
		schema, err := compiler.Compile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to compile schema %s: %w", file, err)
		}
		schemas[blockType] = schema
	}

	return &PayloadValidator{schemas: schemas}, nil
}

// MustNewPayloadValidator is NewPayloadValidator for embedded schemas, where
// a compile failure is a programming error
func MustNewPayloadValidator() *PayloadValidator {
	v, err := NewPayloadValidator()
	if err != nil {
		panic(err)
	}
	return v
}

// ValidatePayload checks a raw payload against its block type's schema.
// Failures wrap ErrInvalidBlockType so callers can map them to a client error.
func (v *PayloadValidator) ValidatePayload(blockType domain.BlockType, payload []byte) error {
	schema, ok := v.schemas[blockType]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrInvalidBlockType, blockType)
	}

	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidBlockType, err)
	}

	if err := schema.Validate(instance); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError flattens a schema validation error into one message
func formatValidationError(err error) error {
	if validationErr, ok := err.(*jsonschema.ValidationError); ok {
		var messages []string
		collectErrors(validationErr, &messages)
		return fmt.Errorf("%w: %s", domain.ErrInvalidBlockType, strings.Join(messages, "; "))
	}
	return fmt.Errorf("%w: %v", domain.ErrInvalidBlockType, err)
}

func collectErrors(err *jsonschema.ValidationError, messages *[]string) {
	if msg := formatError(err); msg != "" {
		*messages = append(*messages, msg)
	}
	for _, cause := range err.Causes {
		collectErrors(cause, messages)
	}
}

func formatError(err *jsonschema.ValidationError) string {
	location := strings.Join(err.InstanceLocation, "/")
	if location == "" {
		location = "(root)"
	} else {
		location = "/" + location
	}

	keywords := ""
	if err.ErrorKind != nil {
		if keywordPath := err.ErrorKind.KeywordPath(); len(keywordPath) > 0 {
			keywords = strings.Join(keywordPath, ".")
		}
	}

	if keywords != "" {
		return fmt.Sprintf("at %s: %s validation failed", location, keywords)
	}
	return fmt.Sprintf("at %s: validation failed", location)
}
