package storage

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed contacts.schema.json
var documentSchemaJSON []byte

// documentSchema validates JSON documents before they are decoded.
type documentSchema struct {
	schema *gojsonschema.Schema
}

func compileSchema() (*documentSchema, error) {
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(documentSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("compiling document schema: %w", err)
	}
	return &documentSchema{schema: s}, nil
}

func (d *documentSchema) validate(b []byte) error {
	result, err := d.schema.Validate(gojsonschema.NewBytesLoader(b))
	if err != nil {
		return fmt.Errorf("validating document: %w", err)
	}
	if result.Valid() {
		return nil
	}

	errs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	return fmt.Errorf("document does not match schema: %s", strings.Join(errs, "; "))
}
