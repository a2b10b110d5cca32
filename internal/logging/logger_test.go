package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSanitizeKVs(t *testing.T) {
	got := sanitizeKVs([]interface{}{
		"stage", "HR",
		"session_token", "abc",
		"resume_text", "ten years of SEO",
		"SESSION_SECRET", "s3cr3t",
		"dangling",
	})
	assert.Equal(t, []interface{}{
		"stage", "HR",
		"session_token", "[REDACTED]",
		"resume_text", "[REDACTED]",
		"SESSION_SECRET", "[REDACTED]",
		"dangling",
	}, got)
}

func TestLogger_WritesSanitizedFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.With("component", "test").Info("stored submission", "stage", "Leadership", "cookie", "value")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "test", fields["component"])
	assert.Equal(t, "Leadership", fields["stage"])
	assert.Equal(t, "[REDACTED]", fields["cookie"])
}

func TestNew_Modes(t *testing.T) {
	for _, mode := range []string{"dev", "prod", ""} {
		l, err := New(mode)
		require.NoError(t, err)
		require.NotNil(t, l)
	}
}
