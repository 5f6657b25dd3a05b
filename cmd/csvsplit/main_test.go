package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/shapestone/csvsplit/internal/version"
	"github.com/shapestone/csvsplit/pkg/csv"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version.Current+"\n", stdout)
}

func TestParse_JSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.csv", "name,city\r\nAlice,\"Tokyo, JP\"\n")

	stdout, _, err := run(t, "parse", path)
	require.NoError(t, err)

	var got []fileOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	require.Len(t, got, 1)
	assert.Equal(t, path, got[0].Path)
	assert.Empty(t, got[0].Headers)
	assert.Equal(t, [][]string{{"name", "city"}, {"Alice", "Tokyo, JP"}}, got[0].Records)
}

func TestParse_HeaderYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.csv", "name;age\nAlice;30\nBob;25\n")

	stdout, _, err := run(t, "parse", "--header", "-d", "semicolon", "-o", "yaml", path)
	require.NoError(t, err)

	var got []fileOutput
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))
	require.Len(t, got, 1)
	assert.Equal(t, []string{"name", "age"}, got[0].Headers)
	assert.Equal(t, [][]string{{"Alice", "30"}, {"Bob", "25"}}, got[0].Records)
}

func TestParse_Table(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.csv", "id,name\n1,Alice\n22,Bob\n")

	stdout, _, err := run(t, "parse", "-o", "table", path)
	require.NoError(t, err)
	assert.Equal(t, "==> "+path+" <==\nid  name\n1   Alice\n22  Bob\n", stdout)
}

func TestParse_ContinuesPastFailures(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.csv", "a,b\n")
	bad := writeFile(t, dir, "bad.csv", "a,\"b\n")
	missing := filepath.Join(dir, "missing.csv")

	stdout, stderr, err := run(t, "parse", good, missing, bad)
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))
	assert.Contains(t, err.Error(), "2 of 3 files failed")

	var got []fileOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	require.Len(t, got, 1)
	assert.Equal(t, good, got[0].Path)

	assert.Contains(t, stderr, "parse failed")
	assert.Contains(t, stderr, "kind=not_found")
	assert.Contains(t, stderr, "kind=malformed_input")
}

func TestParse_RequiresFile(t *testing.T) {
	_, _, err := run(t, "parse")
	assert.Error(t, err)
}

func TestFields(t *testing.T) {
	stdout, _, err := run(t, "fields", "a,b,")
	require.NoError(t, err)

	var got []string
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, []string{"a", "b", ""}, got)
}

func TestFields_Table(t *testing.T) {
	stdout, _, err := run(t, "fields", "-d", "semicolon", "-o", "table", `a;"b,c"`)
	require.NoError(t, err)
	assert.Equal(t, "0  a\n1  b,c\n", stdout)
}

func TestFields_MalformedInput(t *testing.T) {
	_, stderr, err := run(t, "fields", `"abc`)
	require.Error(t, err)
	assert.ErrorIs(t, err, csv.ErrMalformedInput)
	assert.Equal(t, 1, exitCode(err))
	assert.Contains(t, stderr, "split failed")
}

func TestBadFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"delimiter", []string{"fields", "-d", "pipe", "a"}},
		{"encoding", []string{"fields", "-e", "klingon", "a"}},
		{"output", []string{"fields", "-o", "xml", "a"}},
		{"log level", []string{"fields", "--log-level", "loud", "a"}},
		{"missing config", []string{"fields", "--config", "/nonexistent/csvsplit.yaml", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, 2, exitCode(err))
		})
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "csvsplit.yaml", "delimiter: tab\noutput: yaml\n")

	stdout, _, err := run(t, "fields", "--config", cfgPath, "a\tb")
	require.NoError(t, err)
	assert.Equal(t, "- a\n- b\n", stdout)

	// Flags win over the file.
	stdout, _, err = run(t, "fields", "--config", cfgPath, "-d", "comma", "-o", "json", "x,y")
	require.NoError(t, err)
	var got []string
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, []string{"x", "y"}, got)
}

func TestSniff(t *testing.T) {
	path := writeFile(t, t.TempDir(), "s.csv", "name;email\nAlice;alice@example.com\n")

	stdout, _, err := run(t, "sniff", path)
	require.NoError(t, err)

	var got struct {
		Path      string `json:"path"`
		Delimiter string `json:"delimiter"`
		Header    bool   `json:"header"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, path, got.Path)
	assert.Equal(t, "semicolon", got.Delimiter)
	assert.True(t, got.Header)
}

func TestSniff_NotFound(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "a.csv", "a\n")

	for name, path := range map[string]string{
		"missing":            filepath.Join(dir, "none.csv"),
		"directory":          dir,
		"below regular file": filepath.Join(file, "x.csv"),
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := run(t, "sniff", path)
			assert.ErrorIs(t, err, csv.ErrNotFound)
		})
	}
}

func TestDebugLogging(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.csv", "a\n")

	_, stderr, err := run(t, "parse", "--log-level", "debug", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "msg=parsed")
	assert.Contains(t, stderr, "records=1")
	assert.Contains(t, stderr, "service=csvsplit")
}
