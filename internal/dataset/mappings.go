package dataset

// sourceMappings returns the framework cross-references, one per entry,
// in entry rank order.
func sourceMappings() []Mapping {
	return []Mapping{
		{
			EntryID:        "ASI01",
			LLMTop10:       []string{"LLM01:2025", "LLM06:2025"},
			AIVSS:          []string{"AIVSS:AUT"},
			NHITop10:       []string{},
			AgenticThreats: []string{"T6", "T1", "T15"},
		},
		{
			EntryID:        "ASI02",
			LLMTop10:       []string{"LLM05:2025", "LLM06:2025"},
			AIVSS:          []string{"AIVSS:TU"},
			NHITop10:       []string{"NHI5:2025"},
			AgenticThreats: []string{"T2", "T4"},
		},
		{
			EntryID:        "ASI03",
			LLMTop10:       []string{"LLM06:2025", "LLM02:2025"},
			AIVSS:          []string{"AIVSS:ID"},
			NHITop10:       []string{"NHI1:2025", "NHI5:2025", "NHI7:2025"},
			AgenticThreats: []string{"T3", "T9"},
		},
		{
			EntryID:        "ASI04",
			LLMTop10:       []string{"LLM03:2025", "LLM04:2025"},
			AIVSS:          []string{"AIVSS:CMP"},
			NHITop10:       []string{"NHI3:2025"},
			AgenticThreats: []string{"T2", "T13"},
		},
		{
			EntryID:        "ASI05",
			LLMTop10:       []string{"LLM05:2025", "LLM01:2025"},
			AIVSS:          []string{"AIVSS:EXE"},
			NHITop10:       []string{},
			AgenticThreats: []string{"T11", "T2"},
		},
		{
			EntryID:        "ASI06",
			LLMTop10:       []string{"LLM04:2025", "LLM08:2025"},
			AIVSS:          []string{"AIVSS:PER"},
			NHITop10:       []string{},
			AgenticThreats: []string{"T1", "T5"},
		},
		{
			EntryID:        "ASI07",
			LLMTop10:       []string{"LLM01:2025", "LLM09:2025"},
			AIVSS:          []string{"AIVSS:COM"},
			NHITop10:       []string{"NHI4:2025", "NHI9:2025"},
			AgenticThreats: []string{"T12", "T9"},
		},
		{
			EntryID:        "ASI08",
			LLMTop10:       []string{"LLM09:2025", "LLM10:2025"},
			AIVSS:          []string{"AIVSS:PRP"},
			NHITop10:       []string{},
			AgenticThreats: []string{"T5", "T4", "T14"},
		},
		{
			EntryID:        "ASI09",
			LLMTop10:       []string{"LLM09:2025", "LLM01:2025"},
			AIVSS:          []string{"AIVSS:TRU"},
			NHITop10:       []string{"NHI10:2025"},
			AgenticThreats: []string{"T15", "T10"},
		},
		{
			EntryID:        "ASI10",
			LLMTop10:       []string{"LLM06:2025"},
			AIVSS:          []string{"AIVSS:ALN"},
			NHITop10:       []string{"NHI1:2025", "NHI5:2025"},
			AgenticThreats: []string{"T13", "T7", "T8"},
		},
	}
}

// ComponentThreatMap links architecture component types to the ASI
// entries most relevant when threat-modeling that component.
var ComponentThreatMap = map[string][]string{
	"llm_agent":           {"ASI01", "ASI05", "ASI06", "ASI10"},
	"tool_integration":    {"ASI02", "ASI04"},
	"multi_agent":         {"ASI07", "ASI08"},
	"user_interface":      {"ASI09"},
	"identity_system":     {"ASI03"},
	"memory_store":        {"ASI06"},
	"code_executor":       {"ASI05"},
	"orchestrator":        {"ASI01", "ASI08", "ASI10"},
	"external_api":        {"ASI02", "ASI04"},
	"communication_layer": {"ASI07"},
	"supply_chain":        {"ASI04"},
	"rag_system":          {"ASI01", "ASI06"},
}
