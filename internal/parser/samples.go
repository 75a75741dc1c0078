package parser

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/terrascope/foodweb/internal/models"
)

// ErrUnknownSample is returned for a sample id that is not built in.
var ErrUnknownSample = errors.New("unknown sample dataset")

//go:embed samples/samples.yaml
var samplesYAML []byte

type sampleEntry struct {
	ID             string `yaml:"id"`
	models.Dataset `yaml:",inline"`
}

var loadSamples = sync.OnceValue(func() []sampleEntry {
	var entries []sampleEntry
	if err := yaml.Unmarshal(samplesYAML, &entries); err != nil {
		panic(fmt.Sprintf("parser: embedded samples: %v", err))
	}

	for _, e := range entries {
		if err := ValidateDataset(&e.Dataset); err != nil {
			panic(fmt.Sprintf("parser: embedded sample %s: %v", e.ID, err))
		}
	}

	return entries
})

// Samples lists the built-in datasets in id order.
func Samples() []models.DatasetInfo {
	entries := loadSamples()
	infos := make([]models.DatasetInfo, 0, len(entries))
	for _, e := range entries {
		infos = append(infos, models.DatasetInfo{
			ID:            e.ID,
			Name:          e.Name,
			EcosystemType: e.EcosystemType,
			SpeciesCount:  len(e.Species),
		})
	}
	return infos
}

// Sample returns a copy of the built-in dataset with the given id.
func Sample(id string) (*models.Dataset, error) {
	for _, e := range loadSamples() {
		if e.ID == id {
			ds := e.Dataset
			ds.Species = append([]models.SpeciesEntry(nil), e.Species...)
			ds.Edges = append([]models.EdgeEntry(nil), e.Edges...)
			return &ds, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownSample, id)
}
