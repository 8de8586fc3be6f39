package dataset

// Entry is a single risk record from the OWASP Top 10 for Agentic
// Applications 2026. Struct field order defines the key order in both
// JSON and YAML output, so consumers see a stable schema across runs.
type Entry struct {
	ID                string           `json:"id" yaml:"id"`
	Title             string           `json:"title" yaml:"title"`
	Description       string           `json:"description" yaml:"description"`
	RelatedThreats    []string         `json:"related_threats" yaml:"related_threats"`
	RelatedLLMEntries []string         `json:"related_llm_entries" yaml:"related_llm_entries"`
	AIVSSCoreRisk     string           `json:"aivss_core_risk" yaml:"aivss_core_risk"`
	CommonExamples    []string         `json:"common_examples" yaml:"common_examples"`
	AttackScenarios   []AttackScenario `json:"attack_scenarios" yaml:"attack_scenarios"`
	Mitigations       []string         `json:"mitigations" yaml:"mitigations"`
	References        []Reference      `json:"references" yaml:"references"`
}

// AttackScenario is a named, concrete illustration of how an entry's
// risk plays out. Names are unique within an entry.
type AttackScenario struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Reference is a link to an external resource (OWASP page, paper, advisory).
type Reference struct {
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url" yaml:"url"`
}

// Mapping cross-references one entry to identifiers in external security
// frameworks. EntryID must exist in the dataset's entry set.
type Mapping struct {
	EntryID        string   `json:"entry_id" yaml:"entry_id"`
	LLMTop10       []string `json:"llm_top10" yaml:"llm_top10"`
	AIVSS          []string `json:"aivss" yaml:"aivss"`
	NHITop10       []string `json:"nhi_top10" yaml:"nhi_top10"`
	AgenticThreats []string `json:"agentic_threats" yaml:"agentic_threats"`
}

// Incident is a documented real-world exploit. RelatedASI may be empty
// while an incident is still unclassified.
type Incident struct {
	Name           string   `json:"name" yaml:"name"`
	AffectedSystem string   `json:"affected_system" yaml:"affected_system"`
	Date           string   `json:"date" yaml:"date"`
	Description    string   `json:"description" yaml:"description"`
	RelatedASI     []string `json:"related_asi" yaml:"related_asi"`
	Source         string   `json:"source" yaml:"source"`
}

// Metadata describes the dataset itself. All fields are static so that
// repeated runs produce byte-identical output.
type Metadata struct {
	Name       string `json:"name" yaml:"name"`
	Version    string `json:"version" yaml:"version"`
	SourceURL  string `json:"source_url" yaml:"source_url"`
	License    string `json:"license" yaml:"license"`
	EntryCount int    `json:"entry_count" yaml:"entry_count"`
}

// Dataset is the complete in-memory dataset: built once per run,
// validated once, then treated as read-only.
type Dataset struct {
	Metadata  Metadata   `json:"metadata" yaml:"metadata"`
	Entries   []Entry    `json:"entries" yaml:"entries"`
	Mappings  []Mapping  `json:"mappings" yaml:"mappings"`
	Incidents []Incident `json:"incidents" yaml:"incidents"`
}
