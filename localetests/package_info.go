// Package localetests contains the locale negotiation contract tests and their supporting API.
//
// Each test visits the contract-test page of the service with a different Accept-Language
// header and checks that the document title does not depend on the requested language.
//
// Test harness infrastructure that is not specific to this domain, such as the test context,
// filtering and result reporting, is in the lower-level framework package.
package localetests
