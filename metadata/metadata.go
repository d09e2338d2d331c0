package metadata

import "strings"

// Metabolite is one entry of the metabolite table.
type Metabolite struct {
	// ID is the cohort-specific metabolite id (the join key).
	ID string

	// UID is the universal cross-cohort identifier.
	UID string

	// Name is the human-readable display name.
	Name string
}

// Variable is one entry of the cohort variable map.
type Variable struct {
	// CohortName is the cohort-specific variable name (Interactive join key).
	CohortName string

	// Definition is the human-readable variable definition.
	Definition string

	// RefID is the canonical reference id (Batch join key).
	RefID string
}

// MetaData bundles both harmonization tables with normalized indexes.
type MetaData struct {
	metabByID map[string]Metabolite
	varByName map[string]Variable
	varByRef  map[string]Variable
}

// New builds the lookup indexes. Keys are lower-cased; on duplicate keys
// the first entry wins (deterministic under stable input order).
func New(metabolites []Metabolite, variables []Variable) *MetaData {
	m := &MetaData{
		metabByID: make(map[string]Metabolite, len(metabolites)),
		varByName: make(map[string]Variable, len(variables)),
		varByRef:  make(map[string]Variable, len(variables)),
	}
	for _, mb := range metabolites {
		key := strings.ToLower(mb.ID)
		if _, dup := m.metabByID[key]; !dup {
			m.metabByID[key] = mb
		}
	}
	for _, v := range variables {
		name := strings.ToLower(v.CohortName)
		if _, dup := m.varByName[name]; !dup {
			m.varByName[name] = v
		}
		ref := strings.ToLower(v.RefID)
		if _, dup := m.varByRef[ref]; !dup {
			m.varByRef[ref] = v
		}
	}

	return m
}

// Metabolite resolves a cohort-specific metabolite id (case-insensitive).
func (m *MetaData) Metabolite(id string) (Metabolite, bool) {
	if m == nil {
		return Metabolite{}, false
	}
	mb, ok := m.metabByID[strings.ToLower(id)]

	return mb, ok
}

// VariableByName resolves a cohort variable name (case-insensitive).
// This is the Interactive-mode join.
func (m *MetaData) VariableByName(name string) (Variable, bool) {
	if m == nil {
		return Variable{}, false
	}
	v, ok := m.varByName[strings.ToLower(name)]

	return v, ok
}

// VariableByRef resolves a canonical reference id (case-insensitive).
// This is the Batch-mode join.
func (m *MetaData) VariableByRef(ref string) (Variable, bool) {
	if m == nil {
		return Variable{}, false
	}
	v, ok := m.varByRef[strings.ToLower(ref)]

	return v, ok
}
