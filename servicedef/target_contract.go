// Package servicedef describes what the service under test is expected to expose.
package servicedef

const (
	// DefaultTargetURL is the page visited when no other URL is configured.
	DefaultTargetURL = "http://localhost:8080/contract-test"

	// ContractTestTitle is the document title the page must have in every language.
	ContractTestTitle = "Contract-Test"

	HeaderAcceptLanguage  = "Accept-Language"
	HeaderContentLanguage = "Content-Language"
	HeaderContentType     = "Content-Type"

	// DefaultLanguage is what the service answers with when the client sends no
	// Accept-Language header, or none of the requested languages is supported.
	DefaultLanguage = "nb"
)

// SupportedLanguages are the languages the service can render HTML in, in order of preference.
var SupportedLanguages = []string{"nb", "nn", "en"}
