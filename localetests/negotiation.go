package localetests

import (
	"github.com/informasjonsforvaltning/locale-contract-tests/servicedef"

	"golang.org/x/text/language"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

var (
	supportedTags   = parseTags(servicedef.SupportedLanguages)
	languageMatcher = language.NewMatcher(supportedTags)
	defaultTag      = language.Make(servicedef.DefaultLanguage)
)

func parseTags(values []string) []language.Tag {
	tags := make([]language.Tag, 0, len(values))
	for _, v := range values {
		tags = append(tags, language.Make(v))
	}
	return tags
}

// PredictLanguage returns the language that the service should choose for an HTML response,
// given the request's Accept-Language header. It falls back to the default language if there
// is no header, if the header cannot be parsed, or if none of the requested languages is
// supported.
func PredictLanguage(acceptLanguage ldvalue.OptionalString) language.Tag {
	value, ok := acceptLanguage.Get()
	if !ok || value == "" {
		return defaultTag
	}
	tags, _, err := language.ParseAcceptLanguage(value)
	if err != nil || len(tags) == 0 {
		return defaultTag
	}
	_, index, confidence := languageMatcher.Match(tags...)
	if confidence == language.No {
		return defaultTag
	}
	return supportedTags[index]
}
