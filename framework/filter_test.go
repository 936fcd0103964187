package framework

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeID(path ...string) TestID {
	return TestID{Path: path}
}

func TestRegexFilters(t *testing.T) {
	var filters RegexFilters
	assert.True(t, filters.AsFilter(makeID("locale", "default")))

	require.NoError(t, filters.MustMatch.Set("^locale/n"))
	assert.True(t, filters.AsFilter(makeID("locale", "nb-NO")))
	assert.True(t, filters.AsFilter(makeID("locale", "nn-NO")))
	assert.False(t, filters.AsFilter(makeID("locale", "default")))

	require.NoError(t, filters.MustNotMatch.Set("nn"))
	assert.True(t, filters.AsFilter(makeID("locale", "nb-NO")))
	assert.False(t, filters.AsFilter(makeID("locale", "nn-NO")))
}

func TestRegexListRejectsInvalidPattern(t *testing.T) {
	var list RegexList
	err := list.Set("(")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid regex")
	assert.False(t, list.IsDefined())
}

func TestRegexListString(t *testing.T) {
	var list RegexList
	require.NoError(t, list.Set("a"))
	require.NoError(t, list.Set("b+"))
	assert.Equal(t, `"a" or "b+"`, list.String())
}

func TestPrintFilterDescription(t *testing.T) {
	var buf bytes.Buffer
	PrintFilterDescription(&buf, RegexFilters{})
	assert.Empty(t, buf.String())

	var filters RegexFilters
	require.NoError(t, filters.MustNotMatch.Set("invariance"))
	PrintFilterDescription(&buf, filters)
	assert.Contains(t, buf.String(), `skip any matching "invariance"`)
	assert.NotContains(t, buf.String(), "not matching")
}
