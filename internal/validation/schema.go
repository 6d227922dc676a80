// Package validation checks decoded documents against JSON schemas before they are bound to
// Go types, so structural mistakes are reported with the path to the offending value.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrSchemaViolation wraps every document that fails its schema
var ErrSchemaViolation = errors.New("schema validation failed")

// Schema is a compiled JSON schema
type Schema struct {
	name   string
	schema *jsonschema.Schema
}

// Compile parses and compiles a schema document. name only identifies the schema in errors.
func Compile(name string, doc []byte) (*Schema, error) {
	raw, err := jsonschema.UnmarshalJSON(bytes.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgParseSchemaFailed, name, err)
	}

	url := SchemaBaseURL + name
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(url, raw); err != nil {
		return nil, fmt.Errorf(ErrMsgAddSchemaFailed, name, err)
	}
	compiled, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCompileSchemaFailed, name, err)
	}
	return &Schema{name: name, schema: compiled}, nil
}

// MustCompile is Compile for schemas embedded in the binary
func MustCompile(name string, doc []byte) *Schema {
	s, err := Compile(name, doc)
	if err != nil {
		panic(err)
	}
	return s
}

// ValidateBytes validates a JSON document
func (s *Schema) ValidateBytes(data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf(ErrMsgParseDataFailed, err)
	}
	return s.validate(doc)
}

// ValidateValue validates any JSON-encodable value, such as a map decoded from TOML.
// The value is normalised through JSON so integer and time types match what the schema sees.
func (s *Schema) ValidateValue(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf(ErrMsgEncodeValueFailed, err)
	}
	return s.ValidateBytes(data)
}

func (s *Schema) validate(doc interface{}) error {
	err := s.schema.Validate(doc)
	if err == nil {
		return nil
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("%w: %s: %v", ErrSchemaViolation, s.name, err)
	}
	var lines []string
	collectErrors(verr, &lines)
	return fmt.Errorf("%w: %s:\n%s", ErrSchemaViolation, s.name, strings.Join(lines, "\n"))
}

// collectErrors keeps only the leaves; parent errors just say that a child failed
func collectErrors(err *jsonschema.ValidationError, lines *[]string) {
	if len(err.Causes) == 0 {
		*lines = append(*lines, formatError(err))
		return
	}
	for _, cause := range err.Causes {
		collectErrors(cause, lines)
	}
}

func formatError(err *jsonschema.ValidationError) string {
	location := RootLocation
	if len(err.InstanceLocation) > 0 {
		location = "/" + strings.Join(err.InstanceLocation, "/")
	}

	if err.ErrorKind != nil {
		if path := err.ErrorKind.KeywordPath(); len(path) > 0 {
			return fmt.Sprintf(LineFmtKeyword, location, strings.Join(path, "."))
		}
	}
	return fmt.Sprintf(LineFmtGeneric, location)
}
