package render

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// fullSchema is the compatibility contract for the full view. Consumers
// build threat-modeling and detection rules against these field names,
// so the schema is checked by the scan self-test and the render tests.
const fullSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["metadata", "entries", "mappings", "incidents"],
  "properties": {
    "metadata": {
      "type": "object",
      "required": ["name", "version", "source_url", "license", "entry_count"],
      "properties": {
        "name": {"type": "string"},
        "version": {"type": "string"},
        "source_url": {"type": "string"},
        "license": {"type": "string"},
        "entry_count": {"type": "integer"}
      }
    },
    "entries": {
      "type": "array",
      "minItems": 10,
      "maxItems": 10,
      "items": {
        "type": "object",
        "required": [
          "id", "title", "description", "related_threats",
          "related_llm_entries", "aivss_core_risk", "common_examples",
          "attack_scenarios", "mitigations", "references"
        ],
        "properties": {
          "id": {"type": "string", "pattern": "^ASI[0-9]{2}$"},
          "title": {"type": "string"},
          "description": {"type": "string"},
          "related_threats": {"type": "array", "items": {"type": "string"}},
          "related_llm_entries": {"type": "array", "items": {"type": "string"}},
          "aivss_core_risk": {"type": "string"},
          "common_examples": {"type": "array", "items": {"type": "string"}},
          "attack_scenarios": {
            "type": "array",
            "minItems": 1,
            "items": {
              "type": "object",
              "required": ["name", "description"],
              "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"}
              }
            }
          },
          "mitigations": {"type": "array", "minItems": 1, "items": {"type": "string"}},
          "references": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["title", "url"],
              "properties": {
                "title": {"type": "string"},
                "url": {"type": "string"}
              }
            }
          }
        }
      }
    },
    "mappings": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["entry_id", "llm_top10", "aivss", "nhi_top10", "agentic_threats"],
        "properties": {
          "entry_id": {"type": "string", "pattern": "^ASI[0-9]{2}$"},
          "llm_top10": {"type": "array", "items": {"type": "string"}},
          "aivss": {"type": "array", "items": {"type": "string"}},
          "nhi_top10": {"type": "array", "items": {"type": "string"}},
          "agentic_threats": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "incidents": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "affected_system", "date", "description", "related_asi", "source"],
        "properties": {
          "name": {"type": "string"},
          "affected_system": {"type": "string"},
          "date": {"type": "string"},
          "description": {"type": "string"},
          "related_asi": {"type": "array", "items": {"type": "string"}},
          "source": {"type": "string"}
        }
      }
    }
  }
}`

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// CheckSchema validates rendered full-view JSON against the embedded
// compatibility schema.
func CheckSchema(jsonText []byte) error {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString("owasp_agentic_top10_full.schema.json", fullSchema)
	})
	if schemaErr != nil {
		return fmt.Errorf("compiling schema: %w", schemaErr)
	}

	var doc any
	if err := json.Unmarshal(jsonText, &doc); err != nil {
		return fmt.Errorf("parsing rendered JSON: %w", err)
	}
	return schema.Validate(doc)
}
