package heimdall

import (
	"io"
	"net"
	"net/http"
	"time"

	"github.com/jajotz/httpservice-golang/webclient"

	"github.com/gojek/heimdall"
	"github.com/gojek/heimdall/httpclient"
	"github.com/hashicorp/go-cleanhttp"
)

const (
	defaultRetryWait      = 100 * time.Millisecond
	defaultRetryJitter    = 50 * time.Millisecond
	defaultKeepAlive      = 30 * time.Second
	defaultConnectTimeout = 3 * time.Second
)

type (
	clientFactory struct{}

	client struct {
		Doer *httpclient.Client
	}
)

func (c *client) Get(url string, headers http.Header) (*http.Response, error) {
	return c.Doer.Get(url, headers)
}
func (c *client) Post(url string, body io.Reader, headers http.Header) (*http.Response, error) {
	return c.Doer.Post(url, body, headers)
}
func (c *client) Put(url string, body io.Reader, headers http.Header) (*http.Response, error) {
	return c.Doer.Put(url, body, headers)
}
func (c *client) Patch(url string, body io.Reader, headers http.Header) (*http.Response, error) {
	return c.Doer.Patch(url, body, headers)
}
func (c *client) Delete(url string, headers http.Header) (*http.Response, error) {
	return c.Doer.Delete(url, headers)
}
func (c *client) Do(req *http.Request) (*http.Response, error) {
	return c.Doer.Do(req)
}

// Create builds a connection-pooling client. The retry count is mounted on
// the heimdall adapter, which applies it to every request regardless of
// scheme; timeouts beyond the dial are enforced by callers via context.
func (cf *clientFactory) Create(options webclient.Options) webclient.Client {
	transport := cleanhttp.DefaultPooledTransport()

	connectTimeout := options.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = defaultConnectTimeout
	}
	transport.DialContext = (&net.Dialer{
		Timeout:   connectTimeout,
		KeepAlive: defaultKeepAlive,
	}).DialContext

	heimdallOptions := []httpclient.Option{
		httpclient.WithHTTPClient(&http.Client{Transport: transport}),
	}

	if options.MaxRetries > 0 {
		wait := options.RetryWait
		if wait <= 0 {
			wait = defaultRetryWait
		}
		heimdallOptions = append(heimdallOptions,
			httpclient.WithRetryCount(options.MaxRetries),
			httpclient.WithRetrier(heimdall.NewRetrier(heimdall.NewConstantBackoff(wait, defaultRetryJitter))),
		)
	}

	return &client{Doer: httpclient.NewClient(heimdallOptions...)}
}

func NewClientFactory() webclient.WebClientFactory {
	return &clientFactory{}
}
