package localetests

import (
	"context"
	"strings"

	"github.com/informasjonsforvaltning/locale-contract-tests/framework"
	"github.com/informasjonsforvaltning/locale-contract-tests/servicedef"

	"github.com/alessio/shellescape"
)

// CheckLocaleCase visits url once with the case's Accept-Language header and checks the
// document title. It returns the observed page along with a *TransportError if no usable page
// was obtained, or an *AssertionError if the title differs from the expected one.
//
// No retries are made.
func CheckLocaleCase(
	ctx context.Context,
	fetcher PageFetcher,
	url string,
	lc LocaleCase,
	logger framework.Logger,
) (Page, error) {
	if logger == nil {
		logger = framework.NullLogger()
	}
	logger.Printf("Visiting %s, %s", url, lc.Description())
	page, err := fetcher.FetchPage(ctx, url, lc.AcceptLanguage)
	if err != nil {
		logger.Printf("Visit failed; to reproduce: %s", reproduceCommand(url, lc))
		return page, err
	}
	logger.Printf("Received HTTP %d, Content-Type %q, Content-Language %q, title %q",
		page.StatusCode, page.ContentType, page.ContentLanguage, page.Title)

	if err := assertEqualProperty("title", lc.ExpectedTitle, page.Title); err != nil {
		logger.Printf("Title mismatch; to reproduce: %s", reproduceCommand(url, lc))
		return page, err
	}
	return page, nil
}

// CheckContentLanguage compares the Content-Language of a page with the language that the
// service is expected to negotiate for the case.
func CheckContentLanguage(page Page, lc LocaleCase) error {
	expected := PredictLanguage(lc.AcceptLanguage).String()
	return assertEqualProperty(servicedef.HeaderContentLanguage, expected, page.ContentLanguage)
}

// reproduceCommand builds a curl command line that sends the same request as the case.
func reproduceCommand(url string, lc LocaleCase) string {
	var b commandBuilder
	b.add("curl", "-sS", "-i")
	if value, ok := lc.AcceptLanguage.Get(); ok {
		b.add("-H", servicedef.HeaderAcceptLanguage+": "+value)
	}
	b.add(url)
	return b.String()
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
