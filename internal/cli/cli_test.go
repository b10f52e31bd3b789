package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpeele00/employee-benefits/internal/model"
)

const rosterJSON = `{
	"employees": [
		{"id": "1", "firstName": "Alice", "lastName": "Doe", "benefits": ["medical"]},
		{"id": "2", "firstName": "John", "lastName": "Smith", "benefits": ["dental"]}
	],
	"dependents": [
		{"id": "10", "employeeId": "1", "firstName": "Ava", "lastName": "Doe", "relationship": "child", "benefits": ["vision"]}
	]
}`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DATA_SOURCE_TIMEOUT", "")

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

const invalidRosterJSON = `{
	"employees": [
		{"id": "1", "firstName": "", "lastName": "Doe", "benefits": ["medical"]}
	],
	"dependents": []
}`

func writeRoster(t *testing.T) string {
	t.Helper()
	return writeFile(t, rosterJSON)
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestCalcFromFile(t *testing.T) {
	out, err := run(t, "calc", "--file", writeRoster(t), "--log-level", "error")
	require.NoError(t, err)

	assert.Contains(t, out, "Alice Doe")
	assert.Contains(t, out, "John Smith")
	assert.Contains(t, out, "$2350.00")
}

func TestCalcJSON(t *testing.T) {
	out, err := run(t, "calc", "--file", writeRoster(t), "--json", "--log-level", "error")
	require.NoError(t, err)

	var resp model.CalculationResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.NotNil(t, resp.CalculationResult.Totals)
	assert.Equal(t, 2, resp.CalculationResult.Totals.TotalEmployees)
	assert.Equal(t, 150.0, resp.CalculationResult.Totals.TotalDiscountAmount)
}

func TestCalcFailureOutcome(t *testing.T) {
	path := writeFile(t, invalidRosterJSON)

	out, err := run(t, "calc", "--file", path, "--log-level", "error")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed")
	assert.Contains(t, out, "INVALID_FIRST_NAME")

	out, err = run(t, "calc", "--file", path, "--json", "--log-level", "error")
	require.Error(t, err)
	assert.Contains(t, out, `"calculationOutcome": "FAILURE"`)
}

func TestCalcMissingFile(t *testing.T) {
	_, err := run(t, "calc", "--file", filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorContains(t, err, "read roster")
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := run(t, "calc", "--file", writeRoster(t), "--log-level", "chatty")
	assert.ErrorContains(t, err, "logging.level")
}
