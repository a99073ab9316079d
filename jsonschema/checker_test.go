package jsonschema_test

import (
	"testing"

	"github.com/fwojciec/callscore/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChecker(t *testing.T) *jsonschema.Checker {
	t.Helper()
	c, err := jsonschema.NewChecker()
	require.NoError(t, err)
	return c
}

func TestChecker_Check(t *testing.T) {
	t.Parallel()

	t.Run("accepts conforming payload", func(t *testing.T) {
		t.Parallel()

		body := `{"consensus":{"overall_score":8,"verdict":"Strong","red_flags":["None detected"]},
			"detailed_analysis":{"revenue":{"score":9,"highlights":["Grew 12%"]}}}`

		assert.Empty(t, newChecker(t).Check([]byte(body)))
	})

	t.Run("accepts payload with only the required sections", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, newChecker(t).Check([]byte(`{"consensus":{},"detailed_analysis":{}}`)))
	})

	t.Run("reports missing sections", func(t *testing.T) {
		t.Parallel()

		problems := newChecker(t).Check([]byte(`{"consensus":{}}`))

		require.Len(t, problems, 1)
		assert.Contains(t, problems[0], "detailed_analysis")
	})

	t.Run("reports mistyped nested fields with their location", func(t *testing.T) {
		t.Parallel()

		body := `{"consensus":{"overall_score":"high"},
			"detailed_analysis":{"management":{"positive_signals":"none"}}}`

		problems := newChecker(t).Check([]byte(body))

		require.Len(t, problems, 2)
		assert.Contains(t, problems[0], "/consensus/overall_score")
		assert.Contains(t, problems[1], "/detailed_analysis/management/positive_signals")
	})

	t.Run("reports invalid JSON", func(t *testing.T) {
		t.Parallel()

		problems := newChecker(t).Check([]byte(`{`))

		assert.Equal(t, []string{"/: not valid JSON"}, problems)
	})
}

func TestNewCheckerFromString_InvalidSchema(t *testing.T) {
	t.Parallel()

	_, err := jsonschema.NewCheckerFromString(`{"type": 12}`)

	require.Error(t, err)
}
