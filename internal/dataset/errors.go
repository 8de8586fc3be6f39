package dataset

import "fmt"

// MalformedRecordError reports a required field missing from a source
// definition at construction time. Cross-record checks (referential
// integrity, cardinality) are the validator's job, not the builder's.
type MalformedRecordError struct {
	Kind  string // "entry", "mapping", "incident"
	ID    string // record identity, best effort
	Field string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed %s record %q: missing required field %q", e.Kind, e.ID, e.Field)
}
