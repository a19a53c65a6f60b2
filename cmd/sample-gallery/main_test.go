package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const testCatalog = `[
  {"name": "Weather Dashboard", "description": "Live forecasts", "tags": ["maps"], "samplelink": "https://example.com/weather"},
  {"name": "Route Planning Tool", "description": "Find the fastest route", "tags": ["routing"]},
  {"name": "Terrain Explorer", "description": "3D flyover", "mediaType": "video"}
]`

func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("GALLERY_CATALOG", "")
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSearch_JSON(t *testing.T) {
	isolate(t)
	path := writeFile(t, "apps.json", testCatalog)

	out, err := execute(t, "--catalog", path, "search", "route", "-o", "json")
	require.NoError(t, err)

	var results []searchResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.NotEmpty(t, results)
	assert.Equal(t, "Route Planning Tool", results[0].Name)
	assert.Equal(t, 1, results[0].Rank)
	assert.Equal(t, "#", results[0].SampleLink)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}
}

func TestSearch_EmptyQueryKeepsOrder(t *testing.T) {
	isolate(t)
	path := writeFile(t, "apps.json", testCatalog)

	out, err := execute(t, "--catalog", path, "search", "-o", "yaml", "-n", "2")
	require.NoError(t, err)

	var results []searchResult
	require.NoError(t, yaml.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "Weather Dashboard", results[0].Name)
	assert.Equal(t, "Route Planning Tool", results[1].Name)
}

func TestSearch_TableAndNoMatches(t *testing.T) {
	isolate(t)
	path := writeFile(t, "apps.json", testCatalog)

	out, err := execute(t, "--catalog", path, "search", "terrain")
	require.NoError(t, err)
	assert.Contains(t, out, "Terrain Explorer")
	assert.Contains(t, out, "SCORE")

	out, err = execute(t, "--catalog", path, "search", "zzz")
	require.NoError(t, err)
	assert.Equal(t, "No samples match \"zzz\"\n", out)
}

func TestSearch_EnvironmentCatalog(t *testing.T) {
	isolate(t)
	path := writeFile(t, "apps.yaml", "- name: From Env\n  tags: [env]\n")
	t.Setenv("GALLERY_CATALOG", path)

	out, err := execute(t, "search", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "From Env")
}

func TestSearch_LoadFailure(t *testing.T) {
	isolate(t)

	_, err := execute(t, "--catalog", filepath.Join(t.TempDir(), "missing.json"), "search", "x")
	assert.Error(t, err)
}

func TestSearch_UnknownFormat(t *testing.T) {
	isolate(t)

	_, err := execute(t, "search", "-o", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestValidate(t *testing.T) {
	isolate(t)

	good := writeFile(t, "good.json", testCatalog)
	out, err := execute(t, "validate", good)
	require.NoError(t, err)
	assert.Equal(t, "[OK] "+good+" is valid JSON\n", out)

	bad := writeFile(t, "bad.json", `{"a":1,}`)
	out, err = execute(t, "validate", bad)
	require.Error(t, err)
	assert.Contains(t, out, "[ERROR] Invalid JSON in "+bad+":")
	assert.Contains(t, out, "Parse error on line 1:")
	assert.Contains(t, out, "-------^")
}

func TestRun_ValidateReportsOnceToStderr(t *testing.T) {
	isolate(t)
	bad := writeFile(t, "bad.json", `{"a":1,}`)

	var stdout, stderr bytes.Buffer
	code := run([]string{"validate", bad}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Equal(t, 1, strings.Count(stderr.String(), "[ERROR] Invalid JSON in "+bad+":"))
	assert.Equal(t, 1, strings.Count(stderr.String(), "Parse error on line 1:"))
	assert.NotContains(t, stderr.String(), "validate "+bad)
}

func TestRun_PrintsOtherErrors(t *testing.T) {
	isolate(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"search", "-o", "xml"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "unknown output format")
}

func TestRun_ValidateSuccess(t *testing.T) {
	isolate(t)
	good := writeFile(t, "good.json", testCatalog)

	var stdout, stderr bytes.Buffer
	code := run([]string{"validate", good}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Equal(t, "[OK] "+good+" is valid JSON\n", stdout.String())
}

func TestInvalidOptions(t *testing.T) {
	isolate(t)

	_, err := execute(t, "--log-level", "loud", "search")
	assert.ErrorContains(t, err, "invalid options")
}
