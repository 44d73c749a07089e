package webclient

import (
	"io"
	"net/http"
)

type sessionHeaders struct {
	client  Client
	headers http.Header
}

// WithDefaultHeaders wraps client so that every request carries the given
// headers unless the request already sets them. Per-request headers always
// win; the wrapped client is never mutated.
func WithDefaultHeaders(client Client, headers http.Header) Client {
	if len(headers) == 0 {
		return client
	}
	return &sessionHeaders{client: client, headers: headers}
}

func (s *sessionHeaders) Get(url string, headers http.Header) (*http.Response, error) {
	return s.client.Get(url, s.merge(headers))
}

func (s *sessionHeaders) Post(url string, body io.Reader, headers http.Header) (*http.Response, error) {
	return s.client.Post(url, body, s.merge(headers))
}

func (s *sessionHeaders) Put(url string, body io.Reader, headers http.Header) (*http.Response, error) {
	return s.client.Put(url, body, s.merge(headers))
}

func (s *sessionHeaders) Patch(url string, body io.Reader, headers http.Header) (*http.Response, error) {
	return s.client.Patch(url, body, s.merge(headers))
}

func (s *sessionHeaders) Delete(url string, headers http.Header) (*http.Response, error) {
	return s.client.Delete(url, s.merge(headers))
}

func (s *sessionHeaders) Do(req *http.Request) (*http.Response, error) {
	for key, values := range s.headers {
		if len(req.Header[http.CanonicalHeaderKey(key)]) > 0 {
			continue
		}
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	return s.client.Do(req)
}

func (s *sessionHeaders) merge(headers http.Header) http.Header {
	merged := make(http.Header, len(s.headers)+len(headers))
	for key, values := range s.headers {
		for _, value := range values {
			merged.Add(key, value)
		}
	}
	for key, values := range headers {
		merged[http.CanonicalHeaderKey(key)] = values
	}
	return merged
}
