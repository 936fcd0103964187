package localetests

import (
	"context"
	"fmt"

	"github.com/informasjonsforvaltning/locale-contract-tests/framework"
)

// RunTestSuite runs every locale test against the target, one at a time, and returns the results.
func RunTestSuite(
	target Target,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	if target.Fetcher == nil {
		target.Fetcher = NewHTTPFetcher(DefaultPageTimeout)
	}
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := newTestScope(c, target, &titleRecord{})

		t.Run("locale", DoLocaleTests)
	})
}

// DoLocaleTests visits the page once per locale case, then checks that all of the visits saw
// the same title.
func DoLocaleTests(t *T) {
	cases := AllLocaleCases()
	for _, lc := range cases {
		t.Run(lc.Name, func(t *T) {
			doLocaleCaseTest(t, lc)
		})
	}

	t.Run("invariance", func(t *T) {
		doInvarianceTest(t, cases[0])
	})
}

func doLocaleCaseTest(t *T, lc LocaleCase) {
	t.Debug("Expecting the service to negotiate language %q", PredictLanguage(lc.AcceptLanguage))

	page, obtained := t.Visit(lc)
	if !obtained {
		return
	}
	t.titles.add(lc.Name, page.Title)

	// A page with the wrong title says nothing useful about its language.
	if t.target.CheckContentLanguage && !t.Failed() {
		if err := CheckContentLanguage(page, lc); err != nil {
			t.Fail(err)
		}
	}
}

func doInvarianceTest(t *T, repeat LocaleCase) {
	if len(t.titles.titles) == 0 {
		t.SkipWithReason("no locale case obtained a page")
	}

	firstCase, firstTitle := t.titles.cases[0], t.titles.titles[0]
	for i := 1; i < len(t.titles.titles); i++ {
		if t.titles.titles[i] != firstTitle {
			t.Fail(&AssertionError{
				Property: fmt.Sprintf("%s title (as for %s)", t.titles.cases[i], firstCase),
				Expected: firstTitle,
				Actual:   t.titles.titles[i],
			})
		}
	}

	// Visiting the same case again must give the same title. Whether that title is the expected
	// one was already checked by the case itself.
	t.Debug("Repeating visit for %s", repeat.Description())
	page, err := t.target.Fetcher.FetchPage(context.Background(), t.target.URL, repeat.AcceptLanguage)
	if err != nil {
		t.Fail(err)
		return
	}
	for i, name := range t.titles.cases {
		if name == repeat.Name && t.titles.titles[i] != page.Title {
			t.Fail(&AssertionError{
				Property: fmt.Sprintf("repeated %s title", repeat.Name),
				Expected: t.titles.titles[i],
				Actual:   page.Title,
			})
		}
	}
}
