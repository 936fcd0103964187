package localetests

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func TestExtractTitle(t *testing.T) {
	for _, p := range []struct {
		name     string
		source   string
		expected string
	}{
		{"simple", `<html><head><title>Contract-Test</title></head></html>`, "Contract-Test"},
		{"surrounding whitespace", "<title>\n  Contract-Test \t</title>", "Contract-Test"},
		{"inner whitespace collapsed", "<title>Contract  \n Test</title>", "Contract Test"},
		{"entities", `<title>A &amp; B</title>`, "A & B"},
		{"no title", `<html><body><h1>Contract-Test</h1></body></html>`, ""},
		{"first title wins", `<title>one</title><title>two</title>`, "one"},
		{"svg title ignored", `<html><body><svg><title>icon</title></svg></body></html>`, ""},
		{"non-breaking space kept", "<title>a\u00a0b</title>", "a\u00a0b"},
	} {
		t.Run(p.name, func(t *testing.T) {
			title, err := extractTitle(p.source)
			require.NoError(t, err)
			assert.Equal(t, p.expected, title)
		})
	}
}

func TestHTTPFetcherReturnsPage(t *testing.T) {
	httphelpers.WithServer(contractTestPage(fixedTitle("Contract-Test")), func(server *httptest.Server) {
		page, err := NewHTTPFetcher(time.Second).FetchPage(context.Background(), server.URL,
			ldvalue.NewOptionalString("nn"))
		require.NoError(t, err)
		assert.Equal(t, server.URL, page.URL)
		assert.Equal(t, 200, page.StatusCode)
		assert.Equal(t, "text/html; charset=utf-8", page.ContentType)
		assert.Equal(t, "nn", page.ContentLanguage)
		assert.Equal(t, "Contract-Test", page.Title)
	})
}

func TestHTTPFetcherSendsAcceptLanguageOnlyWhenDefined(t *testing.T) {
	handler, requestsCh := httphelpers.RecordingHandler(contractTestPage(fixedTitle("Contract-Test")))
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		fetcher := NewHTTPFetcher(time.Second)

		_, err := fetcher.FetchPage(context.Background(), server.URL, ldvalue.OptionalString{})
		require.NoError(t, err)
		r := <-requestsCh
		assert.Equal(t, "GET", r.Request.Method)
		assert.Empty(t, r.Request.Header.Values("Accept-Language"))

		_, err = fetcher.FetchPage(context.Background(), server.URL, ldvalue.NewOptionalString("nb-NO,nb;q=0.9"))
		require.NoError(t, err)
		r = <-requestsCh
		assert.Equal(t, []string{"nb-NO,nb;q=0.9"}, r.Request.Header.Values("Accept-Language"))
	})
}

func TestHTTPFetcherTransportErrors(t *testing.T) {
	requireTransportError := func(t *testing.T, err error, expectedStatus int) {
		t.Helper()
		require.Error(t, err)
		var transportErr *TransportError
		require.True(t, errors.As(err, &transportErr), "expected TransportError, got %T: %s", err, err)
		assert.Equal(t, expectedStatus, transportErr.StatusCode)
	}

	t.Run("connection refused", func(t *testing.T) {
		_, err := NewHTTPFetcher(time.Second).FetchPage(context.Background(), closedServerURL(), ldvalue.OptionalString{})
		requireTransportError(t, err, 0)
	})

	t.Run("invalid URL", func(t *testing.T) {
		_, err := NewHTTPFetcher(time.Second).FetchPage(context.Background(), "://nope", ldvalue.OptionalString{})
		requireTransportError(t, err, 0)
	})

	t.Run("error status", func(t *testing.T) {
		headers := make(http.Header)
		headers.Set("Content-Type", "text/html")
		handler := httphelpers.HandlerWithResponse(500, headers, []byte("<title>Contract-Test</title>"))
		httphelpers.WithServer(handler, func(server *httptest.Server) {
			page, err := NewHTTPFetcher(time.Second).FetchPage(context.Background(), server.URL, ldvalue.OptionalString{})
			requireTransportError(t, err, 500)
			assert.Equal(t, "", page.Title)
		})
	})

	t.Run("not HTML", func(t *testing.T) {
		headers := make(http.Header)
		headers.Set("Content-Type", "text/turtle")
		handler := httphelpers.HandlerWithResponse(200, headers, []byte("@prefix : <x> ."))
		httphelpers.WithServer(handler, func(server *httptest.Server) {
			_, err := NewHTTPFetcher(time.Second).FetchPage(context.Background(), server.URL, ldvalue.OptionalString{})
			requireTransportError(t, err, 200)
			assert.Contains(t, err.Error(), `expected content type text/html, got "text/turtle"`)
		})
	})

	t.Run("timeout", func(t *testing.T) {
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-time.After(time.Second * 2):
			case <-r.Context().Done():
			}
		})
		httphelpers.WithServer(handler, func(server *httptest.Server) {
			_, err := NewHTTPFetcher(time.Millisecond*100).FetchPage(context.Background(), server.URL, ldvalue.OptionalString{})
			requireTransportError(t, err, 0)
		})
	})
}
