package render

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"
	"gopkg.in/yaml.v3"
)

// Equivalent reports whether a JSON rendering and a YAML rendering of
// the same view carry structurally equal content: same keys, same
// values, same list order. Both texts are parsed, re-encoded as JSON,
// and compared in RFC 8785 canonical form.
func Equivalent(jsonText, yamlText []byte) (bool, error) {
	var fromJSON any
	if err := json.Unmarshal(jsonText, &fromJSON); err != nil {
		return false, fmt.Errorf("parsing JSON rendering: %w", err)
	}

	var fromYAML any
	if err := yaml.Unmarshal(yamlText, &fromYAML); err != nil {
		return false, fmt.Errorf("parsing YAML rendering: %w", err)
	}

	canonJSON, err := canonicalize(fromJSON)
	if err != nil {
		return false, err
	}
	canonYAML, err := canonicalize(fromYAML)
	if err != nil {
		return false, err
	}

	return bytes.Equal(canonJSON, canonYAML), nil
}

func canonicalize(doc any) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("re-encoding parsed document: %w", err)
	}
	canon, err := jcs.Transform(data)
	if err != nil {
		return nil, fmt.Errorf("canonicalizing document: %w", err)
	}
	return canon, nil
}
