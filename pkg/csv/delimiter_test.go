package csv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/shapestone/csvsplit/pkg/csv"
)

func TestDelimiter_String(t *testing.T) {
	assert.Equal(t, "comma", csv.Comma.String())
	assert.Equal(t, "tab", csv.Tab.String())
	assert.Equal(t, "semicolon", csv.Semicolon.String())
	assert.Equal(t, `Delimiter('|')`, csv.Delimiter('|').String())
}

func TestDelimiter_Validate(t *testing.T) {
	for _, d := range csv.Delimiters() {
		assert.NoError(t, d.Validate(), d.String())
	}

	for _, r := range []rune{'|', 0, '\n', '\r', '"', 'a'} {
		err := csv.Delimiter(r).Validate()
		var oe *csv.OptionsError
		assert.ErrorAs(t, err, &oe, "rune %q", r)
	}
}

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		input string
		want  csv.Delimiter
	}{
		{"comma", csv.Comma},
		{"COMMA", csv.Comma},
		{",", csv.Comma},
		{"tab", csv.Tab},
		{"\t", csv.Tab},
		{`\t`, csv.Tab},
		{"Semicolon", csv.Semicolon},
		{";", csv.Semicolon},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := csv.ParseDelimiter(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := csv.ParseDelimiter("pipe")
	assert.Error(t, err)
}

func TestDelimiter_YAML(t *testing.T) {
	var doc struct {
		Delimiter csv.Delimiter `yaml:"delimiter"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("delimiter: semicolon\n"), &doc))
	assert.Equal(t, csv.Semicolon, doc.Delimiter)

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, "delimiter: semicolon\n", string(out))

	assert.Error(t, yaml.Unmarshal([]byte("delimiter: '|'\n"), &doc))
}
