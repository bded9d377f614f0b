package splice_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/linesplice/pkg/splice"
)

type scenario struct {
	Name     string         `yaml:"name"`
	Document string         `yaml:"document"`
	Content  []string       `yaml:"content"`
	Options  splice.Options `yaml:"options"`
	Expected string         `yaml:"expected"`
	Error    bool           `yaml:"error"`
}

func loadScenarios(t *testing.T) []scenario {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", "scenarios.yaml"))
	require.NoError(t, err)

	var scenarios []scenario
	require.NoError(t, yaml.Unmarshal(data, &scenarios))
	require.NotEmpty(t, scenarios)

	return scenarios
}

func TestScenarios(t *testing.T) {
	t.Parallel()

	for _, sc := range loadScenarios(t) {
		t.Run(sc.Name, func(t *testing.T) {
			t.Parallel()

			got, err := splice.AddContent(sc.Document, sc.Content, sc.Options)
			if sc.Error {
				require.ErrorIs(t, err, splice.ErrMarkerOrder)
				assert.Empty(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, sc.Expected, got)
		})
	}
}

func TestOptions_YAMLKeys(t *testing.T) {
	t.Parallel()

	out, err := yaml.Marshal(splice.Options{
		ReplaceBelow:           "BEGIN generated",
		ReplaceAbove:           "END generated",
		RemoveDoubleBlankLines: true,
	})
	require.NoError(t, err)

	assert.Equal(t,
		"replace_below: BEGIN generated\nreplace_above: END generated\nremove_double_blank_lines: true\n",
		string(out))

	empty, err := yaml.Marshal(splice.Options{})
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(empty))
}
