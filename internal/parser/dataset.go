// Package parser provides utilities for parsing and transforming input data.
// It handles data normalization, validation, and conversion between formats.
package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/terrascope/foodweb/internal/ecosystem"
	"github.com/terrascope/foodweb/internal/models"
)

// ErrInvalidDataset wraps every failure to decode, validate or load a
// dataset document.
var ErrInvalidDataset = errors.New("invalid dataset")

var validate = validator.New(validator.WithRequiredStructEnabled())

// ParseDataset decodes a dataset document. JSON objects are decoded
// strictly as JSON, anything else as YAML. Unknown fields are rejected.
func ParseDataset(data []byte) (*models.Dataset, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty dataset", ErrInvalidDataset)
	}

	var ds models.Dataset
	if trimmed[0] == '{' {
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&ds); err != nil {
			return nil, fmt.Errorf("%w: failed to unmarshal json: %w", ErrInvalidDataset, err)
		}
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(trimmed))
		dec.KnownFields(true)
		if err := dec.Decode(&ds); err != nil {
			return nil, fmt.Errorf("%w: failed to unmarshal yaml: %w", ErrInvalidDataset, err)
		}
	}

	if err := ValidateDataset(&ds); err != nil {
		return nil, err
	}

	return &ds, nil
}

func ValidateDataset(ds *models.Dataset) error {
	if err := validate.Struct(ds); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataset, err)
	}
	return nil
}

// Load builds a fresh graph from ds. On error no graph is returned, so a
// caller replacing an existing graph never observes a partial load.
func Load(ds *models.Dataset) (*ecosystem.Graph, error) {
	g := ecosystem.New()
	if ds.EcosystemType != "" {
		g.EcosystemType = ds.EcosystemType
	}

	for i, entry := range ds.Species {
		category, err := ecosystem.ParseCategory(entry.Category)
		if err != nil {
			return nil, fmt.Errorf("%w: species[%d]: %w", ErrInvalidDataset, i, err)
		}

		if err := g.AddSpecies(entry.Name, category); err != nil {
			return nil, fmt.Errorf("%w: species[%d]: %w", ErrInvalidDataset, i, err)
		}
	}

	for i, edge := range ds.Edges {
		if err := g.AddEdge(edge.From, edge.To); err != nil {
			return nil, fmt.Errorf("%w: edges[%d]: %w", ErrInvalidDataset, i, err)
		}
	}

	return g, nil
}
