package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"type": "object",
	"required": ["skill_name", "duration_months"],
	"properties": {
		"skill_name": {"type": "string", "minLength": 1},
		"duration_months": {"type": "integer", "minimum": 1}
	}
}`

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"skill_name": "Backend Engineer", "duration_months": 12}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_Invalid(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"skill_name": "", "duration_months": 0}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Len(t, validationErr.Errors, 2)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidateJSONString_MissingRequired(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"skill_name": "x"}`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
}

func TestValidateJSONString_BrokenSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": nonsense}`, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestValidateJSON_Files(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "test.schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0o644))

	validPath := filepath.Join(dir, "valid.json")
	require.NoError(t, os.WriteFile(validPath, []byte(`{"skill_name": "x", "duration_months": 6}`), 0o644))
	assert.NoError(t, ValidateJSON(schemaPath, validPath))

	invalidPath := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalidPath, []byte(`{"duration_months": -1}`), 0o644))
	assert.Error(t, ValidateJSON(schemaPath, invalidPath))
}

func TestValidateJSON_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "test.schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0o644))

	err := ValidateJSON(schemaPath, filepath.Join(dir, "nope.json"))
	assert.ErrorContains(t, err, "JSON file not found")

	err = ValidateJSON(filepath.Join(dir, "nope.schema.json"), schemaPath)
	assert.ErrorContains(t, err, "schema file not found")
}

func TestResolveSchemaPath(t *testing.T) {
	dir := t.TempDir()
	schemaDir := filepath.Join(dir, "schemas")
	require.NoError(t, os.Mkdir(schemaDir, 0o755))
	schemaPath := filepath.Join(schemaDir, "test.schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(testSchema), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	resolved := ResolveSchemaPath(filepath.Join("schemas", "test.schema.json"))
	assert.NotEmpty(t, resolved)

	assert.Empty(t, ResolveSchemaPath(filepath.Join("schemas", "missing.schema.json")))
}
