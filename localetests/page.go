package localetests

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/informasjonsforvaltning/locale-contract-tests/servicedef"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// DefaultPageTimeout is how long a single visit may take before it counts as a transport error.
const DefaultPageTimeout = time.Second * 60

const maxPageSize = 10 * 1024 * 1024

// Page is what was observed when visiting a URL.
type Page struct {
	URL             string
	StatusCode      int
	ContentType     string
	ContentLanguage string
	Title           string
}

// PageFetcher visits a URL and reports the resulting page. An implementation must send the
// Accept-Language header only if acceptLanguage is defined, and must return a *TransportError
// if it could not obtain a successful HTML response.
type PageFetcher interface {
	FetchPage(ctx context.Context, url string, acceptLanguage ldvalue.OptionalString) (Page, error)
}

// HTTPFetcher fetches pages with a plain HTTP client and reads the title from the HTML source,
// without running any scripts.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates an HTTPFetcher. A zero timeout means DefaultPageTimeout.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = DefaultPageTimeout
	}
	return &HTTPFetcher{client: &http.Client{Timeout: timeout}}
}

func (f *HTTPFetcher) FetchPage(ctx context.Context, url string, acceptLanguage ldvalue.OptionalString) (Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Page{}, &TransportError{URL: url, Err: err}
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	if value, ok := acceptLanguage.Get(); ok {
		req.Header.Set(servicedef.HeaderAcceptLanguage, value)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return Page{}, &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	page := Page{
		URL:             url,
		StatusCode:      resp.StatusCode,
		ContentType:     resp.Header.Get(servicedef.HeaderContentType),
		ContentLanguage: resp.Header.Get(servicedef.HeaderContentLanguage),
	}
	if err := checkVisitable(page); err != nil {
		return page, err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return page, &TransportError{URL: url, StatusCode: resp.StatusCode, Err: err}
	}
	title, err := extractTitle(string(body))
	if err != nil {
		return page, &TransportError{URL: url, StatusCode: resp.StatusCode, Err: err}
	}
	page.Title = title
	return page, nil
}

// checkVisitable rejects the same responses that a browser-based visit would refuse: anything
// other than a 2xx status, and anything that is not an HTML document.
func checkVisitable(page Page) error {
	if page.StatusCode < 200 || page.StatusCode >= 300 {
		return &TransportError{
			URL:        page.URL,
			StatusCode: page.StatusCode,
			Err:        fmt.Errorf("expected a 2xx status code"),
		}
	}
	mediaType, _, err := mime.ParseMediaType(page.ContentType)
	if err != nil || mediaType != "text/html" {
		return &TransportError{
			URL:        page.URL,
			StatusCode: page.StatusCode,
			Err:        fmt.Errorf("expected content type text/html, got %q", page.ContentType),
		}
	}
	return nil
}

// extractTitle returns the text of the first <title> element, with leading and trailing
// whitespace removed and inner runs of whitespace collapsed, the same way a browser computes
// document.title. It returns "" if there is no title element.
func extractTitle(source string) (string, error) {
	doc, err := html.Parse(strings.NewReader(source))
	if err != nil {
		return "", fmt.Errorf("could not parse HTML: %w", err)
	}
	titleNode := findElement(doc, atom.Title)
	if titleNode == nil {
		return "", nil
	}
	var text strings.Builder
	for c := titleNode.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			text.WriteString(c.Data)
		}
	}
	return strings.Join(strings.FieldsFunc(text.String(), isASCIIWhitespace), " "), nil
}

func isASCIIWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a && n.Namespace == "" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}
