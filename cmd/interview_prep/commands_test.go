package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/interview-prep/internal/content"
	"github.com/jonathan/interview-prep/internal/rendering"
	"github.com/jonathan/interview-prep/internal/types"
)

// resetFlags restores flag variables and Changed state between executions of rootCmd.
func resetFlags() {
	generateStage, generateJobTitle, generateSection = "", "", string(rendering.SectionAll)
	generateJSON, generateVerbose = false, false
	highlightStage, highlightKeywords, highlightVerbose = "", nil, false
	servePort = 8080

	for _, c := range []*cobra.Command{generateCmd, highlightCmd, serveCmd, stagesCmd} {
		c.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	}
}

func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	resetFlags()

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestGenerateCommand_All(t *testing.T) {
	stdout, _, err := execute(t, "", "generate", "--stage", "HR", "--job-title", "Growth Marketing Manager")
	require.NoError(t, err)

	bundle, err := content.Generate(types.StageHR, "Growth Marketing Manager")
	require.NoError(t, err)
	assert.Equal(t, rendering.CopyAll(bundle)+"\n", stdout)
	assert.Contains(t, stdout, "1. Walk me through your background and why you're interested in Growth Marketing Manager.")
}

func TestGenerateCommand_Sections(t *testing.T) {
	bundle, err := content.Generate(types.StageLeadership, "")
	require.NoError(t, err)

	tests := []struct {
		section string
		want    string
	}{
		{"questions", strings.Join(bundle.Questions, "\n")},
		{"framework", strings.Join(bundle.StarFramework, "\n")},
		{"tips", strings.Join(bundle.Tips, "\n")},
	}
	for _, tt := range tests {
		t.Run(tt.section, func(t *testing.T) {
			stdout, _, err := execute(t, "", "generate", "-s", "leadership", "--section", tt.section)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", stdout)
		})
	}
}

func TestGenerateCommand_JSON(t *testing.T) {
	stdout, _, err := execute(t, "", "generate", "--stage", "hiring-manager", "--json")
	require.NoError(t, err)

	var bundle types.Bundle
	require.NoError(t, json.Unmarshal([]byte(stdout), &bundle))
	assert.Equal(t, types.StageHiringManager, bundle.Stage)
	assert.NotEmpty(t, bundle.Questions)
	assert.Len(t, bundle.StarFramework, 4)
}

func TestGenerateCommand_Verbose(t *testing.T) {
	stdout, stderr, err := execute(t, "", "generate", "--stage", "HR", "--verbose", "--section", "tips")
	require.NoError(t, err)
	assert.Contains(t, stderr, "INTERVIEW PREP PACK")
	assert.NotContains(t, stdout, "INTERVIEW PREP PACK")
}

func TestGenerateCommand_Errors(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{"missing stage", []string{"generate"}, "required flag"},
		{"unknown stage", []string{"generate", "--stage", "CEO"}, "unknown interview stage"},
		{"unknown section", []string{"generate", "--stage", "HR", "--section", "keywords"}, "unknown export section"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorString)
		})
	}
}

func TestHighlightCommand_Keywords(t *testing.T) {
	stdout, _, err := execute(t, "", "highlight", "--keywords", "roi,cac", "Cut CAC while growing ROI")
	require.NoError(t, err)
	assert.Equal(t, "Cut [[CAC]] while growing [[ROI]]\n", stdout)
}

func TestHighlightCommand_StageFromStdin(t *testing.T) {
	stdout, stderr, err := execute(t, "Our roadmap needs a clear strategy.\n", "highlight", "--stage", "Leadership", "-v")
	require.NoError(t, err)
	assert.Equal(t, "Our [[roadmap]] needs a clear [[strategy]].\n", stdout)
	assert.Contains(t, stderr, "KEYWORD MATCHES")
}

func TestHighlightCommand_Errors(t *testing.T) {
	_, _, err := execute(t, "", "highlight", "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--keywords or --stage")

	_, _, err = execute(t, "", "highlight", "--stage", "ceo", "text")
	require.Error(t, err)

	_, _, err = execute(t, "", "highlight", "-k", "a", "one", "two")
	require.Error(t, err)
}

func TestStagesCommand(t *testing.T) {
	stdout, _, err := execute(t, "", "stages")
	require.NoError(t, err)
	assert.Equal(t, "hr\tHR\nhiring-manager\tHiring Manager\nleadership\tLeadership\n", stdout)
}

func TestServeCommand_InvalidConfig(t *testing.T) {
	t.Setenv("SESSION_BACKEND", "carrier-pigeon")

	_, _, err := execute(t, "", "serve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_BACKEND")
}

func TestServeCommand_InvalidPortFlag(t *testing.T) {
	t.Setenv("SESSION_BACKEND", "memory")

	_, _, err := execute(t, "", "serve", "--port", "70000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
}
