package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "candidates.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseCSV_ColumnAliases(t *testing.T) {
	path := writeCSV(t, "Candidate Name,E-mail,Professional Headline,Work Experience\n"+
		"Jane Doe,jane@example.com,Staff Engineer,10 years at Acme\n")

	candidates, err := ParseCSV(path, nil)
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	c := candidates[0]
	assert.Equal(t, "Jane Doe", c.Name)
	assert.Equal(t, "jane@example.com", c.Email)
	assert.Equal(t, "Staff Engineer", c.Headline)
	assert.Equal(t, "10 years at Acme", c.Experiences)
}

func TestParseCSV_SkipsRowsWithoutNameOrEmail(t *testing.T) {
	path := writeCSV(t, "Name,Email,Skills\n"+
		"Jane Doe,jane@example.com,Go\n"+
		",,Python\n"+
		",bob@example.com,Rust\n")

	candidates, err := ParseCSV(path, nil)
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "Jane Doe", candidates[0].Name)
	assert.Equal(t, "bob@example.com", candidates[1].Email)
}

func TestParseCSV_SkipsBlankRows(t *testing.T) {
	path := writeCSV(t, "Name,Email\n"+
		"Jane Doe,jane@example.com\n"+
		" , \n"+
		"Bob Roe,bob@example.com\n")

	candidates, err := ParseCSV(path, nil)
	require.NoError(t, err)
	assert.Len(t, candidates, 2)
}

func TestParseCSV_ColumnOverrides(t *testing.T) {
	path := writeCSV(t, "Name,Work Email,Email\n"+
		"Jane Doe,jane@work.com,jane@personal.com\n")

	candidates, err := ParseCSV(path, map[string]string{"email": "Work Email"})
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "jane@work.com", candidates[0].Email)
}

func TestParseCSV_StripsBOM(t *testing.T) {
	path := writeCSV(t, "\ufeffName,Email\nJane Doe,jane@example.com\n")

	candidates, err := ParseCSV(path, nil)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Jane Doe", candidates[0].Name)
}

func TestParseCSV_HeaderOnly(t *testing.T) {
	path := writeCSV(t, "Name,Email\n")

	candidates, err := ParseCSV(path, nil)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestParseCSV_MissingFile(t *testing.T) {
	_, err := ParseCSV(filepath.Join(t.TempDir(), "nope.csv"), nil)
	assert.Error(t, err)
}

func TestParseCSV_ShortRowsTolerated(t *testing.T) {
	path := writeCSV(t, "Name,Email,Skills,Summary\n"+
		"Jane Doe,jane@example.com\n")

	candidates, err := ParseCSV(path, nil)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Empty(t, candidates[0].Skills)
}

func TestParseCSV_SocialProfiles(t *testing.T) {
	path := writeCSV(t, "Name,Email,Social Profiles\n"+
		"Jane Doe,jane@example.com,https://www.linkedin.com/in/janedoe\n")

	candidates, err := ParseCSV(path, nil)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "https://www.linkedin.com/in/janedoe", candidates[0].LinkedInURL())
}
