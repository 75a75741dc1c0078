package models

// Dataset is a document describing a whole ecosystem. It is accepted as
// YAML or JSON.
type Dataset struct {
	Name          string         `json:"name,omitempty" yaml:"name,omitempty" validate:"max=128"`
	EcosystemType string         `json:"ecosystem_type,omitempty" yaml:"ecosystem_type,omitempty" validate:"max=64"`
	Species       []SpeciesEntry `json:"species" yaml:"species" validate:"min=1,dive"`
	Edges         []EdgeEntry    `json:"edges,omitempty" yaml:"edges,omitempty" validate:"dive"`
}

type SpeciesEntry struct {
	Name     string `json:"name" yaml:"name" validate:"required,max=128"`
	Category string `json:"category" yaml:"category" validate:"required"`
}

type EdgeEntry struct {
	From string `json:"from" yaml:"from" validate:"required"`
	To   string `json:"to" yaml:"to" validate:"required"`
}

// DatasetInfo summarizes a built-in sample dataset.
type DatasetInfo struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	EcosystemType string `json:"ecosystem_type"`
	SpeciesCount  int    `json:"species_count"`
}
