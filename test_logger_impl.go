package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/informasjonsforvaltning/locale-contract-tests/framework"
	"github.com/informasjonsforvaltning/locale-contract-tests/localetests"

	"github.com/fatih/color"
)

var (
	failedColor    = color.New(color.FgRed, color.Bold)
	skippedColor   = color.New(color.FgYellow)
	transportColor = color.New(color.FgMagenta)
	assertionColor = color.New(color.FgRed)
)

type ConsoleTestLogger struct {
	Out                  io.Writer
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) TestStarted(id framework.TestID) {
	fmt.Fprintf(c.Out, "[%s]\n", id)
}

func (c *ConsoleTestLogger) TestError(id framework.TestID, err error) {
	// Transport and assertion failures already say what kind they are; the colors make the
	// distinction visible at a glance.
	printer := color.New(color.Reset)
	var transportErr *localetests.TransportError
	var assertionErr *localetests.AssertionError
	if errors.As(err, &transportErr) {
		printer = transportColor
	} else if errors.As(err, &assertionErr) {
		printer = assertionColor
	}
	for _, line := range strings.Split(err.Error(), "\n") {
		printer.Fprintf(c.Out, "  %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestFinished(id framework.TestID, failed bool, debugOutput framework.CapturedOutput) {
	if failed {
		failedColor.Fprintf(c.Out, "  FAILED: %s\n", id)
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(c.Out, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id framework.TestID, reason string) {
	if reason == "" {
		skippedColor.Fprintf(c.Out, "  SKIPPED: %s\n", id)
	} else {
		skippedColor.Fprintf(c.Out, "  SKIPPED: %s (%s)\n", id, reason)
	}
}
