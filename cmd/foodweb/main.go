// Package main provides the foodweb CLI: analyze a dataset file or one of
// the built-in samples without running the API server.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/terrascope/foodweb/internal/analyzer"
	"github.com/terrascope/foodweb/internal/models"
	"github.com/terrascope/foodweb/internal/parser"
)

type report struct {
	Graph    *models.Graph   `json:"graph"`
	Analysis models.Analysis `json:"analysis"`
	Inferred []models.Edge   `json:"inferred"`
}

var (
	noInfer bool
	format  string
)

var rootCmd = &cobra.Command{
	Use:           "foodweb",
	Short:         "Trophic graph inference and balance analysis",
	Long:          `foodweb builds a food web from a dataset of species, infers feeding relationships from trophic categories and reports population balance warnings.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <dataset-file|->",
	Short: "Analyze a YAML or JSON dataset file (- reads stdin)",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "List the built-in sample datasets",
	Args:  cobra.NoArgs,
	RunE:  runSamples,
}

var sampleCmd = &cobra.Command{
	Use:   "sample <id>",
	Short: "Analyze a built-in sample dataset",
	Args:  cobra.ExactArgs(1),
	RunE:  runSample,
}

func init() {
	for _, cmd := range []*cobra.Command{analyzeCmd, sampleCmd} {
		cmd.Flags().BoolVar(&noInfer, "no-infer", false, "skip relationship inference")
		cmd.Flags().StringVarP(&format, "output", "o", "text", "output format: text or json")
	}

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(samplesCmd)
	rootCmd.AddCommand(sampleCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	if args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("reading dataset: %w", err)
	}

	ds, err := parser.ParseDataset(data)
	if err != nil {
		return err
	}

	return writeReport(cmd.OutOrStdout(), ds)
}

func runSample(cmd *cobra.Command, args []string) error {
	ds, err := parser.Sample(args[0])
	if err != nil {
		return err
	}

	return writeReport(cmd.OutOrStdout(), ds)
}

func runSamples(cmd *cobra.Command, args []string) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tSPECIES")
	for _, info := range parser.Samples() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", info.ID, info.Name, info.EcosystemType, info.SpeciesCount)
	}
	return tw.Flush()
}

func buildReport(ds *models.Dataset) (*report, error) {
	g, err := parser.Load(ds)
	if err != nil {
		return nil, err
	}

	r := &report{Inferred: []models.Edge{}}
	if !noInfer {
		r.Inferred = parser.BuildEdges(analyzer.InferRelationships(g))
	}
	r.Graph = parser.BuildGraph(g)
	r.Analysis = parser.BuildAnalysis(analyzer.Analyze(g))

	return r, nil
}

func writeReport(w io.Writer, ds *models.Dataset) error {
	r, err := buildReport(ds)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "text":
		return writeText(w, r)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func writeText(w io.Writer, r *report) error {
	fmt.Fprintf(w, "Ecosystem: %s\n\n", r.Graph.EcosystemType)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SPECIES\tCATEGORY")
	for _, n := range r.Graph.Nodes {
		fmt.Fprintf(tw, "%s\t%s\n", n.ID, n.Category)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nFeeding relationships (%d, %d inferred):\n", len(r.Graph.Edges), len(r.Inferred))
	for _, e := range r.Graph.Edges {
		fmt.Fprintf(w, "  %s -> %s\n", e.Source, e.Target)
	}

	c := r.Analysis.Counts
	fmt.Fprintf(w, "\nCounts: producers=%d herbivores=%d carnivores=%d decomposers=%d\n",
		c.Producers, c.Herbivores, c.Carnivores, c.Decomposers)

	fmt.Fprintln(w, "\nAnalysis:")
	for _, f := range r.Analysis.Findings {
		marker := "ok"
		if analyzer.FindingCode(f.Code).Warning() {
			marker = "warning"
		}
		fmt.Fprintf(w, "  [%s] %s\n", marker, f.Message)
	}

	return nil
}
