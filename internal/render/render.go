// Package render serializes view documents to JSON and YAML text.
// Both encodings emit keys in the order the record structs declare
// them, so output is byte-stable across runs for the same dataset.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Encoding is an output text format.
type Encoding string

const (
	JSON Encoding = "json"
	YAML Encoding = "yaml"
)

// All lists the encodings in emission order.
var All = []Encoding{JSON, YAML}

// SerializationError reports a document that could not be rendered in
// the target encoding.
type SerializationError struct {
	Encoding Encoding
	Err      error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("cannot render document as %s: %v", e.Encoding, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// Encode renders doc in the given encoding.
func Encode(doc any, enc Encoding) ([]byte, error) {
	switch enc {
	case JSON:
		return EncodeJSON(doc)
	case YAML:
		return EncodeYAML(doc)
	default:
		return nil, &SerializationError{Encoding: enc, Err: fmt.Errorf("unknown encoding %q", enc)}
	}
}

// EncodeJSON renders doc as two-space-indented JSON with a trailing newline.
func EncodeJSON(doc any) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, &SerializationError{Encoding: JSON, Err: err}
	}
	return append(data, '\n'), nil
}

// EncodeYAML renders doc as block-style YAML with two-space indentation.
func EncodeYAML(doc any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		enc.Close()
		return nil, &SerializationError{Encoding: YAML, Err: err}
	}
	if err := enc.Close(); err != nil {
		return nil, &SerializationError{Encoding: YAML, Err: err}
	}
	return buf.Bytes(), nil
}
