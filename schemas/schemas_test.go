package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

var schemaFiles = []string{
	"role_requirement.schema.json",
	"role_requirements.schema.json",
	"ranked_options.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_ValidJSONSchema(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			absPath, err := filepath.Abs(filepath.Join(".", schemaFile))
			require.NoError(t, err)

			loader := gojsonschema.NewReferenceLoader("file://" + absPath)
			_, err = gojsonschema.NewSchema(loader)
			assert.NoError(t, err, "schema should compile: %s", schemaFile)
		})
	}
}

func TestRoleRequirementSchema_AcceptsValidDocument(t *testing.T) {
	absPath, err := filepath.Abs("role_requirement.schema.json")
	require.NoError(t, err)

	schema := gojsonschema.NewReferenceLoader("file://" + absPath)
	doc := gojsonschema.NewStringLoader(`{
		"skill_name": "Backend Engineer",
		"level": "senior",
		"urgency": "immediate",
		"duration_months": 12,
		"workload_percent": 80,
		"business_impact": "high"
	}`)

	result, err := gojsonschema.Validate(schema, doc)
	require.NoError(t, err)
	assert.True(t, result.Valid(), "errors: %v", result.Errors())
}

func TestRoleRequirementSchema_RejectsInvalidDocument(t *testing.T) {
	absPath, err := filepath.Abs("role_requirement.schema.json")
	require.NoError(t, err)

	schema := gojsonschema.NewReferenceLoader("file://" + absPath)

	tests := []struct {
		name string
		doc  string
	}{
		{"missing skill name", `{"level": "senior", "duration_months": 12}`},
		{"unknown level", `{"skill_name": "x", "level": "principal", "duration_months": 12}`},
		{"zero duration", `{"skill_name": "x", "level": "senior", "duration_months": 0}`},
		{"workload above 100", `{"skill_name": "x", "level": "senior", "duration_months": 12, "workload_percent": 150}`},
		{"unknown property", `{"skill_name": "x", "level": "senior", "duration_months": 12, "extra": true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := gojsonschema.Validate(schema, gojsonschema.NewStringLoader(tt.doc))
			require.NoError(t, err)
			assert.False(t, result.Valid())
		})
	}
}
