package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/interview-prep/internal/content"
	"github.com/jonathan/interview-prep/internal/highlight"
	"github.com/jonathan/interview-prep/internal/observability"
	"github.com/jonathan/interview-prep/internal/types"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight [TEXT]",
	Short: "Mark keyword matches in text",
	Long: `Split TEXT into matched and unmatched segments and print it with matches wrapped in [[ ]].
Keywords come from --keywords, or from the cover keywords of --stage. TEXT is read from stdin when omitted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHighlight,
}

var (
	highlightStage    string
	highlightKeywords []string
	highlightVerbose  bool
)

func init() {
	highlightCmd.Flags().StringVarP(&highlightStage, "stage", "s", "", "Use the cover keywords of this interview stage")
	highlightCmd.Flags().StringSliceVarP(&highlightKeywords, "keywords", "k", nil, "Comma-separated keywords (take precedence over --stage)")
	highlightCmd.Flags().BoolVarP(&highlightVerbose, "verbose", "v", false, "Print a summary box to stderr")

	rootCmd.AddCommand(highlightCmd)
}

func runHighlight(cmd *cobra.Command, args []string) error {
	keywords := highlightKeywords
	if len(keywords) == 0 {
		if highlightStage == "" {
			return fmt.Errorf("either --keywords or --stage is required")
		}
		stage, err := types.ParseStage(highlightStage)
		if err != nil {
			return err
		}
		entry, err := content.Lookup(stage)
		if err != nil {
			return fmt.Errorf("failed to look up stage content: %w", err)
		}
		keywords = entry.Keywords
	}

	var text string
	if len(args) == 1 {
		text = args[0]
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read text from stdin: %w", err)
		}
		text = strings.TrimSuffix(string(data), "\n")
	}

	segments := highlight.Highlight(text, keywords)
	if highlightVerbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintHighlight(segments)
	}

	var sb strings.Builder
	for _, s := range segments {
		if s.IsMatch {
			sb.WriteString("[[" + s.Content + "]]")
		} else {
			sb.WriteString(s.Content)
		}
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), sb.String())
	return err
}
