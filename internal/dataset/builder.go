package dataset

// Version is the dataset edition this module curates.
const Version = "2026"

// Build assembles the complete dataset from the source definitions.
// Pure construction, no I/O. It rejects source records with missing
// required fields immediately; structural and cross-record invariants
// are checked later by the validate package.
func Build() (*Dataset, error) {
	entries := sourceEntries()
	for i := range entries {
		if err := checkEntry(&entries[i]); err != nil {
			return nil, err
		}
	}

	mappings := sourceMappings()
	for i := range mappings {
		if err := checkMapping(&mappings[i]); err != nil {
			return nil, err
		}
	}

	incidents := sourceIncidents()
	for i := range incidents {
		if err := checkIncident(&incidents[i]); err != nil {
			return nil, err
		}
	}

	return &Dataset{
		Metadata: Metadata{
			Name:       "OWASP Top 10 for Agentic Applications",
			Version:    Version,
			SourceURL:  "https://genai.owasp.org",
			License:    "CC-BY-SA-4.0",
			EntryCount: len(entries),
		},
		Entries:   entries,
		Mappings:  mappings,
		Incidents: incidents,
	}, nil
}

func checkEntry(e *Entry) error {
	switch {
	case e.ID == "":
		return &MalformedRecordError{Kind: "entry", ID: e.Title, Field: "id"}
	case e.Title == "":
		return &MalformedRecordError{Kind: "entry", ID: e.ID, Field: "title"}
	case e.Description == "":
		return &MalformedRecordError{Kind: "entry", ID: e.ID, Field: "description"}
	case e.AIVSSCoreRisk == "":
		return &MalformedRecordError{Kind: "entry", ID: e.ID, Field: "aivss_core_risk"}
	}
	return nil
}

func checkMapping(m *Mapping) error {
	if m.EntryID == "" {
		return &MalformedRecordError{Kind: "mapping", Field: "entry_id"}
	}
	return nil
}

func checkIncident(in *Incident) error {
	switch {
	case in.Name == "":
		return &MalformedRecordError{Kind: "incident", Field: "name"}
	case in.AffectedSystem == "":
		return &MalformedRecordError{Kind: "incident", ID: in.Name, Field: "affected_system"}
	case in.Date == "":
		return &MalformedRecordError{Kind: "incident", ID: in.Name, Field: "date"}
	case in.Description == "":
		return &MalformedRecordError{Kind: "incident", ID: in.Name, Field: "description"}
	}
	return nil
}
