package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStages_Order(t *testing.T) {
	assert.Equal(t, []Stage{StageHR, StageHiringManager, StageLeadership}, Stages())
}

func TestStage_Slug(t *testing.T) {
	assert.Equal(t, "hr", StageHR.Slug())
	assert.Equal(t, "hiring-manager", StageHiringManager.Slug())
	assert.Equal(t, "leadership", StageLeadership.Slug())
}

func TestParseStage(t *testing.T) {
	tests := []struct {
		input string
		want  Stage
	}{
		{"HR", StageHR},
		{"hr", StageHR},
		{" Hiring Manager ", StageHiringManager},
		{"hiring-manager", StageHiringManager},
		{"LEADERSHIP", StageLeadership},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStage(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStage_Unknown(t *testing.T) {
	for _, input := range []string{"", "CEO", "hiring manager!", "hiring_manager"} {
		_, err := ParseStage(input)
		var unknown *UnknownStageError
		require.ErrorAs(t, err, &unknown, input)
		assert.Equal(t, input, unknown.Value)
	}
}

func TestStage_Valid(t *testing.T) {
	for _, s := range Stages() {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, Stage("").Valid())
	assert.False(t, Stage("hr").Valid())
}

func TestStage_UnmarshalJSON(t *testing.T) {
	var payload struct {
		Stage Stage `json:"stage"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"stage":"Hiring Manager"}`), &payload))
	assert.Equal(t, StageHiringManager, payload.Stage)

	assert.Error(t, json.Unmarshal([]byte(`{"stage":"Intern"}`), &payload))
	assert.Error(t, json.Unmarshal([]byte(`{"stage":3}`), &payload))
}
