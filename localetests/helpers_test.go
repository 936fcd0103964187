package localetests

import (
	"fmt"
	"html"
	"net/http"
	"net/http/httptest"

	"github.com/informasjonsforvaltning/locale-contract-tests/servicedef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// contractTestPage serves an HTML page in the negotiated language, with a title chosen by
// titleFor.
func contractTestPage(titleFor func(acceptLanguage string) string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		acceptLanguage := ldvalue.OptionalString{}
		if values := r.Header.Values(servicedef.HeaderAcceptLanguage); len(values) > 0 {
			acceptLanguage = ldvalue.NewOptionalString(values[0])
		}
		lang := PredictLanguage(acceptLanguage)
		w.Header().Set(servicedef.HeaderContentType, "text/html; charset=utf-8")
		w.Header().Set(servicedef.HeaderContentLanguage, lang.String())
		fmt.Fprintf(w, `<!DOCTYPE html><html lang="%s"><head><meta charset="utf-8"><title>%s</title></head><body><h1>%s</h1></body></html>`,
			lang, html.EscapeString(titleFor(r.Header.Get(servicedef.HeaderAcceptLanguage))), lang)
	})
}

func fixedTitle(title string) func(string) string {
	return func(string) string { return title }
}

// closedServerURL returns the URL of a server that is no longer listening.
func closedServerURL() string {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()
	return url
}
