package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/casegen-ai/casegen/internal/ai"
	"github.com/casegen-ai/casegen/internal/export"
)

func sampleCases() []ai.TestCase {
	return []ai.TestCase{
		{
			TestID:         "TC_001",
			Module:         "Login - Core Functionality",
			TestScenario:   "Valid login",
			Steps:          "1. Open page\n2. Enter credentials\n3. Submit",
			ExpectedResult: "User is logged in",
			Status:         "Pending",
			Priority:       "High",
			Severity:       "Critical",
		},
		{
			TestID:       "TC_002",
			Module:       "Login - Input Validation",
			TestScenario: "Invalid password",
			Steps:        "1. Enter bad password",
			Status:       "Pending",
			Priority:     "Medium",
			Severity:     "Major",
		},
	}
}

func TestCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.CSV(&buf, sampleCases()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, export.Headers, records[0])
	assert.Equal(t, "TC_001", records[1][0])
	assert.Equal(t, "1. Open page | 2. Enter credentials | 3. Submit", records[1][4],
		"step newlines are flattened for spreadsheet apps")
	assert.Equal(t, "Pending", records[2][8])
}

func TestExcel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Excel(&buf, sampleCases()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Test Cases")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, export.Headers, rows[0])
	assert.Equal(t, "TC_001", rows[1][0])
	assert.Equal(t, "Login - Input Validation", rows[2][1])
	// Multi-line steps survive in the workbook.
	assert.Contains(t, rows[1][4], "2. Enter credentials")
}

func TestExcel_NoCases(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.Excel(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Test Cases")
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}
