package localetests

import (
	"context"
	"errors"

	"github.com/informasjonsforvaltning/locale-contract-tests/framework"
)

// Target describes the page under test and how to visit it.
type Target struct {
	// URL is the contract-test page.
	URL string

	// Fetcher visits the page. If nil, an HTTPFetcher with the default timeout is used.
	Fetcher PageFetcher

	// CheckContentLanguage enables an extra assertion that the Content-Language of each
	// response matches the language the service is expected to negotiate.
	CheckContentLanguage bool
}

// T represents a test or subtest in the locale test suite.
//
// It implements the same basic functionality as Go's testing.T, but in an environment that is
// outside of the Go test runner, and with debug logging that is only shown when it is wanted.
// Those features are provided by our lower-level framework package.
//
// To make test assertions, you can use the assert and require packages, passing the *T as if it
// were a *testing.T. Failures from visiting the page are recorded with Fail, which keeps the
// *TransportError or *AssertionError intact in the test results.
type T struct {
	context *framework.Context
	target  Target
	titles  *titleRecord
}

// titleRecord remembers the title observed by each case, in the order the cases ran.
type titleRecord struct {
	cases  []string
	titles []string
}

func (r *titleRecord) add(caseName, title string) {
	r.cases = append(r.cases, caseName)
	r.titles = append(r.titles, title)
}

func newTestScope(c *framework.Context, target Target, titles *titleRecord) *T {
	return &T{context: c, target: target, titles: titles}
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// Fail records err as a test failure without causing an immediate exit.
func (t *T) Fail(err error) {
	t.context.Error(err)
}

// Failed reports whether the test has failed so far.
func (t *T) Failed() bool {
	return t.context.Failed()
}

// FailNow is called by assertions when a test should fail and immediately exit. The methods in
// the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest. This is equivalent to the Run method of testing.T.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(newTestScope(c, t.target, t.titles))
	})
}

// Debug logs some debug output for the test. The output will be passed to the test logger at
// the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// SkipWithReason stops the test and reports it as skipped.
func (t *T) SkipWithReason(reason string) {
	t.context.SkipWithReason(reason)
}

// Visit checks one locale case against the target. It fails the test, without exiting, if the
// page could not be obtained or its title is wrong. The returned bool is true if a page was
// obtained at all, whether or not its title was correct.
func (t *T) Visit(lc LocaleCase) (Page, bool) {
	page, err := CheckLocaleCase(context.Background(), t.target.Fetcher, t.target.URL, lc, t.context.DebugLogger())
	if err == nil {
		return page, true
	}
	t.Fail(err)
	var assertErr *AssertionError
	return page, errors.As(err, &assertErr)
}
