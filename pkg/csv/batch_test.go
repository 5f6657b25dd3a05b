package csv_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shapestone/csvsplit/pkg/csv"
)

func TestParseFiles(t *testing.T) {
	good := writeFile(t, "good.csv", []byte("a,b\r\nc,d\r\n"))
	bad := writeFile(t, "bad.csv", []byte("a,\"b\r\n"))
	missing := filepath.Join(t.TempDir(), "missing.csv")

	paths := []string{good, missing, bad, good}
	opts := csv.DefaultFileOptions()
	opts.Workers = 2

	results := csv.ParseFiles(paths, opts)
	require.Len(t, results, len(paths))

	for i, res := range results {
		assert.Equal(t, paths[i], res.Path)
	}

	assert.NoError(t, results[0].Err)
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, results[0].Records)

	assert.Equal(t, csv.KindNotFound, csv.KindOf(results[1].Err))
	assert.Nil(t, results[1].Records)

	assert.Equal(t, csv.KindMalformedInput, csv.KindOf(results[2].Err))
	assert.Nil(t, results[2].Records)

	assert.Equal(t, results[0].Records, results[3].Records)
}

func TestParseFiles_Empty(t *testing.T) {
	assert.Empty(t, csv.ParseFiles(nil, csv.DefaultFileOptions()))
}

func TestFileOptions_Validate(t *testing.T) {
	assert.NoError(t, csv.DefaultFileOptions().Validate())

	opts := csv.DefaultFileOptions()
	opts.Delimiter = csv.Delimiter(':')
	assert.Error(t, opts.Validate())
}
