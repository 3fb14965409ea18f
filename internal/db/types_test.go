package db

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysisJSONEmbedsStoredDocuments(t *testing.T) {
	analysis := Analysis{
		ID:          uuid.New(),
		SkillName:   "Backend Engineer",
		Level:       "senior",
		Requirement: json.RawMessage(`{"skill_name":"Backend Engineer","level":"senior"}`),
		Result:      json.RawMessage(`{"options":[]}`),
		Recommended: "freelancer",
		Source:      "api",
		CreatedAt:   time.Now(),
	}

	encoded, err := json.Marshal(analysis)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	// The stored documents must appear as JSON objects, not base64 strings.
	var requirement map[string]interface{}
	require.NoError(t, json.Unmarshal(decoded["requirement"], &requirement))
	assert.Equal(t, "Backend Engineer", requirement["skill_name"])
	assert.Equal(t, "senior", requirement["level"])

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(decoded["result"], &result))
	assert.Contains(t, result, "options")
}
