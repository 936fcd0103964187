package main

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/informasjonsforvaltning/locale-contract-tests/framework"
	"github.com/informasjonsforvaltning/locale-contract-tests/localetests"

	"github.com/stretchr/testify/assert"
)

func TestConsoleTestLogger(t *testing.T) {
	id := framework.TestID{Path: []string{"locale", "nb-NO"}}
	debugOutput := framework.CapturedOutput{{Time: time.Now(), Message: "Visiting page"}}

	t.Run("errors of both kinds", func(t *testing.T) {
		var buf bytes.Buffer
		logger := &ConsoleTestLogger{Out: &buf}
		logger.TestError(id, &localetests.TransportError{URL: "http://x", Err: errors.New("refused")})
		logger.TestError(id, &localetests.AssertionError{Property: "title", Expected: "a", Actual: "b"})
		assert.Contains(t, buf.String(), "  transport error: GET http://x: refused\n")
		assert.Contains(t, buf.String(), `  assertion failed: expected title to equal "a", but it was "b"`)
	})

	t.Run("debug output only on failure", func(t *testing.T) {
		var buf bytes.Buffer
		logger := &ConsoleTestLogger{Out: &buf, DebugOutputOnFailure: true}
		logger.TestFinished(id, false, debugOutput)
		assert.Empty(t, buf.String())
		logger.TestFinished(id, true, debugOutput)
		assert.Contains(t, buf.String(), "FAILED: locale/nb-NO")
		assert.Contains(t, buf.String(), "DEBUG ")
		assert.Contains(t, buf.String(), "Visiting page")
	})

	t.Run("skipped", func(t *testing.T) {
		var buf bytes.Buffer
		logger := &ConsoleTestLogger{Out: &buf}
		logger.TestSkipped(id, "excluded by filter parameters")
		assert.Contains(t, buf.String(), "SKIPPED: locale/nb-NO (excluded by filter parameters)")
	})
}
