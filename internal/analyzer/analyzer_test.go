package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terrascope/foodweb/internal/ecosystem"
)

func TestEvaluate(t *testing.T) {
	testCases := []struct {
		name        string
		counts      ecosystem.Counts
		expected    []FindingCode
		hasWarnings bool
	}{
		{
			name:     "small balanced ecosystem",
			counts:   ecosystem.Counts{Producers: 2, Herbivores: 2, Carnivores: 1, Decomposers: 1},
			expected: []FindingCode{Balanced},
		},
		{
			name:        "herbivore boom with a single carnivore",
			counts:      ecosystem.Counts{Herbivores: 10, Carnivores: 1},
			expected:    []FindingCode{HerbivoreOverpopulation, CarnivoreShortage},
			hasWarnings: true,
		},
		{
			name:        "carnivores outnumber herbivores",
			counts:      ecosystem.Counts{Producers: 2, Herbivores: 1, Carnivores: 3},
			expected:    []FindingCode{CarnivoreOverpopulation},
			hasWarnings: true,
		},
		{
			name:        "shortage without overpopulation",
			counts:      ecosystem.Counts{Herbivores: 5, Carnivores: 2},
			expected:    []FindingCode{CarnivoreShortage},
			hasWarnings: true,
		},
		{
			name:        "exactly three herbivores per carnivore",
			counts:      ecosystem.Counts{Herbivores: 3, Carnivores: 1},
			expected:    []FindingCode{CarnivoreShortage},
			hasWarnings: true,
		},
		{
			name:     "herbivores equal carnivores",
			counts:   ecosystem.Counts{Herbivores: 4, Carnivores: 4},
			expected: []FindingCode{Balanced},
		},
		{
			name:     "empty ecosystem",
			counts:   ecosystem.Counts{},
			expected: []FindingCode{Balanced},
		},
		{
			name:     "decomposers never trigger a rule",
			counts:   ecosystem.Counts{Herbivores: 2, Carnivores: 1, Decomposers: 50},
			expected: []FindingCode{Balanced},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Evaluate(tc.counts)

			assert.Equal(t, tc.expected, result.Codes())
			assert.Equal(t, tc.hasWarnings, result.HasWarnings)
			assert.Equal(t, tc.counts, result.Counts)
		})
	}
}

func TestAnalyze(t *testing.T) {
	t.Run("reads counts from the graph", func(t *testing.T) {
		g := buildGraph(t, map[ecosystem.Category][]string{
			ecosystem.Producer:   {"Grass", "Tree"},
			ecosystem.Herbivore:  {"Rabbit", "Deer"},
			ecosystem.Carnivore:  {"Fox"},
			ecosystem.Decomposer: {"Fungus"},
		})

		result := Analyze(g)

		assert.False(t, result.HasWarnings)
		require.Len(t, result.Findings, 1)
		assert.Equal(t, Balanced, result.Findings[0].Code)
		assert.Equal(t, Balanced.Message(), result.Findings[0].Message)
		assert.Equal(t, ecosystem.Counts{Producers: 2, Herbivores: 2, Carnivores: 1, Decomposers: 1}, result.Counts)
	})

	t.Run("does not modify the graph", func(t *testing.T) {
		g := buildGraph(t, map[ecosystem.Category][]string{
			ecosystem.Herbivore: {"Rabbit"},
		})

		Analyze(g)

		assert.Equal(t, 1, g.Len())
		assert.Zero(t, g.EdgeCount())
	})
}

func TestFindingCode(t *testing.T) {
	for _, code := range []FindingCode{HerbivoreOverpopulation, CarnivoreShortage, CarnivoreOverpopulation} {
		assert.True(t, code.Warning(), string(code))
		assert.NotEmpty(t, code.Message())
	}

	assert.False(t, Balanced.Warning())
	assert.NotEmpty(t, Balanced.Message())
}
