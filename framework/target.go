package framework

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

const awaitTargetInterval = time.Millisecond * 100

// AwaitTarget polls the service under test until it answers an HTTP request, or until the
// timeout expires. Any response counts as an answer, whatever its status; the tests themselves
// decide whether the response is acceptable.
//
// A zero or negative timeout disables polling entirely.
func AwaitTarget(url string, timeout time.Duration, output io.Writer) error {
	if timeout <= 0 {
		return nil
	}
	fmt.Fprintf(output, "Waiting for service at %s", url)

	client := &http.Client{Timeout: timeout}
	deadline := time.Now().Add(timeout)
	for {
		fmt.Fprintf(output, ".")
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			fmt.Fprintln(output)
			fmt.Fprintf(output, "Service responded with status %d\n", resp.StatusCode)
			return nil
		}
		if !time.Now().Before(deadline) {
			fmt.Fprintln(output)
			return fmt.Errorf("timed out, result of last query was: %w", err)
		}
		time.Sleep(awaitTargetInterval)
	}
}
