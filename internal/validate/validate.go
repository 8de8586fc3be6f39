// Package validate checks structural and cross-record invariants of a
// built dataset. It accumulates every violation instead of stopping at
// the first, so a single run reports the complete defect list.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gzhole/asidata/internal/dataset"
)

// EntryCount is the fixed size of the top-10 entry set.
const EntryCount = 10

var idPattern = regexp.MustCompile(`^ASI\d{2}$`)

// Violation is a single invariant failure, attributed to the record and
// field that caused it.
type Violation struct {
	Record  string // e.g. "entry ASI03", "mapping ASI99", "incident EchoLeak"
	Field   string
	Message string
}

func (v Violation) String() string {
	if v.Field == "" {
		return fmt.Sprintf("%s: %s", v.Record, v.Message)
	}
	return fmt.Sprintf("%s: %s: %s", v.Record, v.Field, v.Message)
}

// ValidationError carries every violation found in one pass.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	lines := make([]string, 0, len(e.Violations)+1)
	lines = append(lines, fmt.Sprintf("dataset validation failed with %d violation(s):", len(e.Violations)))
	for _, v := range e.Violations {
		lines = append(lines, "  - "+v.String())
	}
	return strings.Join(lines, "\n")
}

// Check validates the dataset and returns nil or a *ValidationError
// listing every violation. It never mutates the dataset.
func Check(ds *dataset.Dataset) error {
	var violations []Violation

	violations = append(violations, checkEntries(ds.Entries)...)

	ids := make(map[string]bool, len(ds.Entries))
	for _, e := range ds.Entries {
		ids[e.ID] = true
	}

	violations = append(violations, checkMappings(ds.Mappings, ids)...)
	violations = append(violations, checkIncidents(ds.Incidents, ids)...)

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

func checkEntries(entries []dataset.Entry) []Violation {
	var violations []Violation

	if len(entries) != EntryCount {
		violations = append(violations, Violation{
			Record:  "entries",
			Message: fmt.Sprintf("expected exactly %d entries, got %d", EntryCount, len(entries)),
		})
	}

	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		rec := "entry " + e.ID

		if !idPattern.MatchString(e.ID) {
			violations = append(violations, Violation{
				Record: rec, Field: "id",
				Message: fmt.Sprintf("id %q does not match ASI\\d{2}", e.ID),
			})
		}
		if seen[e.ID] {
			violations = append(violations, Violation{
				Record: rec, Field: "id",
				Message: fmt.Sprintf("duplicate entry id %q", e.ID),
			})
		}
		seen[e.ID] = true

		if len(e.Mitigations) == 0 {
			violations = append(violations, Violation{
				Record: rec, Field: "mitigations",
				Message: "entry must have at least one mitigation",
			})
		}
		if len(e.AttackScenarios) == 0 {
			violations = append(violations, Violation{
				Record: rec, Field: "attack_scenarios",
				Message: "entry must have at least one attack scenario",
			})
		}

		scenarioNames := make(map[string]bool, len(e.AttackScenarios))
		for _, s := range e.AttackScenarios {
			if scenarioNames[s.Name] {
				violations = append(violations, Violation{
					Record: rec, Field: "attack_scenarios",
					Message: fmt.Sprintf("duplicate scenario name %q", s.Name),
				})
			}
			scenarioNames[s.Name] = true
		}

		for _, t := range e.RelatedThreats {
			if t == e.ID {
				violations = append(violations, Violation{
					Record: rec, Field: "related_threats",
					Message: "entry references itself",
				})
			}
		}
	}

	for i := 1; i <= EntryCount; i++ {
		want := fmt.Sprintf("ASI%02d", i)
		if !seen[want] {
			violations = append(violations, Violation{
				Record:  "entries",
				Message: fmt.Sprintf("missing required entry %s", want),
			})
		}
	}

	return violations
}

func checkMappings(mappings []dataset.Mapping, ids map[string]bool) []Violation {
	var violations []Violation
	for _, m := range mappings {
		if !ids[m.EntryID] {
			violations = append(violations, Violation{
				Record: "mapping " + m.EntryID, Field: "entry_id",
				Message: fmt.Sprintf("references unknown entry %q", m.EntryID),
			})
		}
	}
	return violations
}

func checkIncidents(incidents []dataset.Incident, ids map[string]bool) []Violation {
	var violations []Violation
	for _, in := range incidents {
		for _, ref := range in.RelatedASI {
			if !ids[ref] {
				violations = append(violations, Violation{
					Record: "incident " + in.Name, Field: "related_asi",
					Message: fmt.Sprintf("references unknown entry %q", ref),
				})
			}
		}
	}
	return violations
}
