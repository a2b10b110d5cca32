package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-prep/internal/content"
	"github.com/jonathan/interview-prep/internal/observability"
	"github.com/jonathan/interview-prep/internal/rendering"
	"github.com/jonathan/interview-prep/internal/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print the interview prep pack for a stage",
	Long:  "Generate the questions, STAR framework, tips, and key skills for an interview stage and print them in the same plain-text format as the Copy buttons.",
	RunE:  runGenerate,
}

var (
	generateStage    string
	generateJobTitle string
	generateSection  string
	generateJSON     bool
	generateVerbose  bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateStage, "stage", "s", "", "Interview stage: HR, Hiring Manager, or Leadership (required)")
	generateCmd.Flags().StringVarP(&generateJobTitle, "job-title", "t", "", "Job title substituted into the first HR question")
	generateCmd.Flags().StringVar(&generateSection, "section", string(rendering.SectionAll), "Section to print: all, questions, framework, or tips")
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "Print the bundle as JSON")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print a summary box to stderr")

	if err := generateCmd.MarkFlagRequired("stage"); err != nil {
		panic(fmt.Sprintf("failed to mark stage flag as required: %v", err))
	}

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	stage, err := types.ParseStage(generateStage)
	if err != nil {
		return err
	}

	bundle, err := content.Generate(stage, generateJobTitle)
	if err != nil {
		return fmt.Errorf("failed to generate bundle: %w", err)
	}

	if generateVerbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintBundle(bundle)
	}

	out := cmd.OutOrStdout()
	if generateJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(bundle)
	}

	section, err := rendering.ParseSection(generateSection)
	if err != nil {
		return err
	}
	text, err := rendering.Export(bundle, section)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, text)
	return err
}
