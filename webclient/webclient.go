package webclient

import (
	"io"
	"net/http"
	"time"
)

type (
	// Options describes how a session-backed Client is assembled. The retry
	// settings are handed to the underlying transport adapter; this layer
	// never retries on its own.
	Options struct {
		ConnectTimeout time.Duration
		MaxRetries     int
		RetryWait      time.Duration
	}

	WebClientFactory interface {
		Create(options Options) Client
	}

	Client interface {
		Get(url string, headers http.Header) (*http.Response, error)
		Post(url string, body io.Reader, headers http.Header) (*http.Response, error)
		Put(url string, body io.Reader, headers http.Header) (*http.Response, error)
		Patch(url string, body io.Reader, headers http.Header) (*http.Response, error)
		Delete(url string, headers http.Header) (*http.Response, error)
		Do(req *http.Request) (*http.Response, error)
	}
)
