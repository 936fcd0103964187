package localetests

import (
	"github.com/informasjonsforvaltning/locale-contract-tests/servicedef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// LocaleCase is one visit to the contract-test page. If AcceptLanguage is undefined, the request
// is sent without an Accept-Language header at all.
type LocaleCase struct {
	Name           string
	AcceptLanguage ldvalue.OptionalString
	ExpectedTitle  string
}

func newLocaleCase(name string, acceptLanguage ldvalue.OptionalString) LocaleCase {
	return LocaleCase{
		Name:           name,
		AcceptLanguage: acceptLanguage,
		ExpectedTitle:  servicedef.ContractTestTitle,
	}
}

// Description is a short label for logs, including the header value if there is one.
func (c LocaleCase) Description() string {
	if value, ok := c.AcceptLanguage.Get(); ok {
		return c.Name + " (Accept-Language: " + value + ")"
	}
	return c.Name + " (no Accept-Language)"
}

// AllLocaleCases returns the header variations that the service is checked with. The expected
// title is the same for all of them.
func AllLocaleCases() []LocaleCase {
	return []LocaleCase{
		newLocaleCase("default", ldvalue.OptionalString{}),
		newLocaleCase("en-GB", ldvalue.NewOptionalString(
			"en-GB,en;q=0.9,nb-NO;q=0.8,nb;q=0.7,en-US;q=0.6,da;q=0.5,no;q=0.4")),
		newLocaleCase("nb-NO", ldvalue.NewOptionalString(
			"nb-NO,nb;q=0.9,no;q=0.8,en-GB;q=0.7,en;q=0.6,en-US;q=0.5,da;q=0.4")),
		newLocaleCase("nn-NO", ldvalue.NewOptionalString(
			"nn-NO,nn;q=0.9,no;q=0.8,en-GB;q=0.7,en;q=0.6,en-US;q=0.5,da;q=0.4")),
	}
}
