package spoonacular

import "net/http"

// apiKeyTransport adds the apiKey query parameter to every outgoing request
type apiKeyTransport struct {
	apiKey string
	next   http.RoundTripper
}

func newAPIKeyTransport(apiKey string, next http.RoundTripper) *apiKeyTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &apiKeyTransport{apiKey: apiKey, next: next}
}

// RoundTrip implements http.RoundTripper. The caller's request is not modified.
func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	q := out.URL.Query()
	q.Set(ParamAPIKey, t.apiKey)
	out.URL.RawQuery = q.Encode()
	return t.next.RoundTrip(out)
}
