// Package framework contains the low-level implementation of test harness infrastructure
// that is not specific to what is being tested.
//
// The general model is:
//
// 1. The service under test is already running somewhere and is reached over HTTP. The
// harness never starts or stops it, but can wait for it to come up (AwaitTarget).
//
// 2. There is a general notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to accumulate
// success/failure results.
//
// 3. Test progress is reported through a TestLogger, and debug output for each test is
// captured so that it can be shown only when it is useful.
//
// The domain-specific code that knows what is being tested is responsible for issuing
// requests to the service and for providing a domain-specific test API on top of the test
// context.
package framework
