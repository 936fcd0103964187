package framework

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID  TestID
	Errors  []error
	Skipped bool
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Passed returns the number of tests that ran to completion without failing.
func (r Results) Passed() int {
	n := 0
	for _, t := range r.Tests {
		if !t.Skipped {
			n++
		}
	}
	return n - len(r.Failures)
}

// Skipped returns the number of tests that were skipped, either by a filter or by the test itself.
func (r Results) Skipped() int {
	n := 0
	for _, t := range r.Tests {
		if t.Skipped {
			n++
		}
	}
	return n
}

type TestID struct {
	Path []string
}

// Plus returns the ID of a subtest of this test.
func (t TestID) Plus(name string) TestID {
	return TestID{Path: append(append([]string(nil), t.Path...), name)}
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// PrintResults writes a summary of the test run to color.Output.
func PrintResults(results Results) {
	WriteResults(color.Output, results)
}

// WriteResults writes a summary of the test run, listing every failure with its errors.
func WriteResults(out io.Writer, results Results) {
	passed := color.New(color.FgGreen, color.Bold).SprintFunc()
	failed := color.New(color.FgRed, color.Bold).SprintFunc()

	if results.OK() {
		fmt.Fprintf(out, "%s (%d passed, %d skipped)\n", passed("All tests passed"),
			results.Passed(), results.Skipped())
		return
	}
	fmt.Fprintf(out, "%s (%d failed, %d passed, %d skipped)\n", failed("Some tests failed"),
		len(results.Failures), results.Passed(), results.Skipped())
	for _, f := range results.Failures {
		fmt.Fprintf(out, "  %s\n", f.TestID)
		for _, err := range f.Errors {
			for _, line := range strings.Split(err.Error(), "\n") {
				fmt.Fprintf(out, "    %s\n", line)
			}
		}
	}
}
