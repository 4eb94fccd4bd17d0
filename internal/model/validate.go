package model

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/structured_cv.schema.json
var structuredCVSchema []byte

// ErrInvalidReply marks content that does not match the StructuredCV schema.
var ErrInvalidReply = errors.New("invalid structured cv")

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(structuredCVSchema))
	})
	return schema, schemaErr
}

// ValidateMap validates a decoded JSON document against the StructuredCV schema.
func ValidateMap(m map[string]interface{}) error {
	s, err := compiledSchema()
	if err != nil {
		return err
	}
	res, err := s.Validate(gojsonschema.NewGoLoader(m))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidReply, err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: schema validation failed: %s", ErrInvalidReply, strings.Join(msgs, "; "))
}

// ParseStructuredCV decodes raw JSON text into a StructuredCV. The document
// must be a single object that passes the schema; anything else is reported
// as ErrInvalidReply.
func ParseStructuredCV(raw []byte) (StructuredCV, error) {
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return StructuredCV{}, fmt.Errorf("%w: %v", ErrInvalidReply, err)
	}
	if m == nil {
		return StructuredCV{}, fmt.Errorf("%w: document is null", ErrInvalidReply)
	}
	if err := ValidateMap(m); err != nil {
		return StructuredCV{}, err
	}
	var cv StructuredCV
	if err := json.Unmarshal(raw, &cv); err != nil {
		return StructuredCV{}, fmt.Errorf("%w: %v", ErrInvalidReply, err)
	}
	return cv, nil
}
