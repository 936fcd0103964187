package localetests

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/informasjonsforvaltning/locale-contract-tests/servicedef"

	"github.com/playwright-community/playwright-go"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// BrowserFetcher visits pages in a real Chromium browser driven by Playwright, so the title is
// whatever the page shows after scripts have run.
//
// A real browser always sends some Accept-Language header. When acceptLanguage is undefined,
// the browser's own default is left in place instead of adding one.
type BrowserFetcher struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	timeout time.Duration
}

// NewBrowserFetcher starts Playwright and launches Chromium. The caller must call Close when done.
// A zero timeout means DefaultPageTimeout.
func NewBrowserFetcher(headless bool, timeout time.Duration) (*BrowserFetcher, error) {
	if timeout <= 0 {
		timeout = DefaultPageTimeout
	}
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(headless),
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("could not launch browser: %w", err)
	}
	return &BrowserFetcher{pw: pw, browser: browser, timeout: timeout}, nil
}

func (f *BrowserFetcher) FetchPage(ctx context.Context, url string, acceptLanguage ldvalue.OptionalString) (Page, error) {
	if err := ctx.Err(); err != nil {
		return Page{}, &TransportError{URL: url, Err: err}
	}

	// Each visit gets a fresh context so no cookies or cache carry over between cases.
	var opts playwright.BrowserNewContextOptions
	if value, ok := acceptLanguage.Get(); ok {
		opts.ExtraHttpHeaders = map[string]string{servicedef.HeaderAcceptLanguage: value}
	}
	browserContext, err := f.browser.NewContext(opts)
	if err != nil {
		return Page{}, fmt.Errorf("could not create browser context: %w", err)
	}
	defer browserContext.Close()

	// Playwright calls do not take a context, so cancellation closes the browser context,
	// which makes any call in progress fail.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = browserContext.Close()
		case <-done:
		}
	}()

	tab, err := browserContext.NewPage()
	if err != nil {
		return Page{}, fmt.Errorf("could not open page: %w", err)
	}
	resp, err := tab.Goto(url, playwright.PageGotoOptions{
		Timeout:   playwright.Float(float64(gotoTimeout(ctx, f.timeout).Milliseconds())),
		WaitUntil: playwright.WaitUntilStateLoad,
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = fmt.Errorf("%w (%s)", ctxErr, err)
		}
		return Page{}, &TransportError{URL: url, Err: err}
	}
	if resp == nil {
		return Page{}, &TransportError{URL: url, Err: errors.New("browser did not receive a response")}
	}

	headers := resp.Headers()
	page := Page{
		URL:             url,
		StatusCode:      resp.Status(),
		ContentType:     headers["content-type"],
		ContentLanguage: headers["content-language"],
	}
	if err := checkVisitable(page); err != nil {
		return page, err
	}

	title, err := tab.Title()
	if err != nil {
		return page, &TransportError{URL: url, StatusCode: page.StatusCode, Err: err}
	}
	page.Title = title
	return page, nil
}

// gotoTimeout returns the navigation timeout, shortened to the context's deadline if that comes
// sooner. Playwright treats a timeout of 0 as no timeout, so the result is at least 1ms.
func gotoTimeout(ctx context.Context, timeout time.Duration) time.Duration {
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	if timeout < time.Millisecond {
		timeout = time.Millisecond
	}
	return timeout
}

// Close shuts down the browser and the Playwright driver.
func (f *BrowserFetcher) Close() error {
	browserErr := f.browser.Close()
	if err := f.pw.Stop(); err != nil {
		return err
	}
	return browserErr
}
