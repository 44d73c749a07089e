package service

import (
	"context"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jajotz/httpservice-golang/auth"
	"github.com/jajotz/httpservice-golang/logs"
	"github.com/jajotz/httpservice-golang/webclient"
	heimdallclient "github.com/jajotz/httpservice-golang/webclient/heimdall"

	"github.com/pkg/errors"
)

var (
	// DefaultTimeout mirrors the historical per-service default: 3s to
	// connect, 10s to complete the request.
	DefaultTimeout = Timeout{Connect: 3 * time.Second, Read: 10 * time.Second}

	DefaultMaxRetries = 3
)

type (
	// Timeout is a connect/read pair. Connect bounds dialing (configured on
	// the shared session's transport), the pair's total bounds the whole
	// request as a context deadline.
	Timeout struct {
		Connect time.Duration
		Read    time.Duration
	}

	// Params maps placeholder names to the values substituted into a path
	// template.
	Params map[string]interface{}

	// Request describes a single dispatch through MakeRequest.
	Request struct {
		Method      string
		Path        string
		PathParams  Params
		QueryParams url.Values
		Body        io.Reader
		Headers     http.Header
		// Timeout overrides the service default when set.
		Timeout *Timeout
		// AllowError disables the ServiceError returned for responses with
		// status >= 300; the response is then handed back unmodified.
		AllowError bool
	}

	// Response is the transport response with its body drained, so it stays
	// inspectable after the connection is reclaimed by the pool.
	Response struct {
		StatusCode int
		Status     string
		Headers    http.Header
		Body       []byte
	}

	// Service consumes one HTTP API: it resolves path templates against a
	// root URL, dispatches through the bound session and wraps error
	// responses. Credentials are attached per request, never stored on the
	// session.
	Service struct {
		urlRoot string
		name    string
		client  webclient.Client
		auth    auth.Attachment
		timeout Timeout
		logger  logs.Logger
		metrics *MetricsCollector
	}

	Option func(s *Service)
)

// Total is the context deadline applied to one request. Zero means no
// deadline.
func (t Timeout) Total() time.Duration {
	if t.Connect <= 0 && t.Read <= 0 {
		return 0
	}
	return t.Connect + t.Read
}

// SimpleTimeout is the scalar form: a single duration bounding the whole
// request.
func SimpleTimeout(d time.Duration) Timeout {
	return Timeout{Read: d}
}

func WithClient(client webclient.Client) Option {
	return func(s *Service) { s.client = client }
}

func WithAuth(attachment auth.Attachment) Option {
	return func(s *Service) { s.auth = attachment }
}

func WithTimeout(timeout Timeout) Option {
	return func(s *Service) { s.timeout = timeout }
}

func WithLogger(logger logs.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(metrics *MetricsCollector) Option {
	return func(s *Service) { s.metrics = metrics }
}

func WithName(name string) Option {
	return func(s *Service) { s.name = name }
}

// New builds a Service for the API rooted at urlRoot. The root is normalized
// to end with a separator. Without WithClient the service falls back to a
// fresh, unregistered webclient with no retries, the stateless analogue of a
// one-off requester.
func New(urlRoot string, options ...Option) (*Service, error) {
	if strings.TrimSpace(urlRoot) == "" {
		return nil, errors.New("service: url root is required")
	}
	if !strings.HasSuffix(urlRoot, "/") {
		urlRoot += "/"
	}

	s := &Service{
		urlRoot: urlRoot,
		timeout: DefaultTimeout,
	}
	for _, option := range options {
		option(s)
	}

	if s.name == "" {
		s.name = s.urlRoot
	}
	if s.client == nil {
		s.client = heimdallclient.NewClientFactory().Create(webclient.Options{
			ConnectTimeout: s.timeout.Connect,
		})
	}

	return s, nil
}

// URLRoot returns the normalized root all paths are resolved against.
func (s *Service) URLRoot() string {
	return s.urlRoot
}

// MakeRequest resolves the path template, dispatches through the bound
// session and inspects the status code. Responses with status >= 300 are
// wrapped in a *ServiceError unless req.AllowError is set. Transport
// failures propagate with added context only.
func (s *Service) MakeRequest(ctx context.Context, req Request) (*Response, error) {
	fullURL, err := buildURL(s.urlRoot, req.Path, req.PathParams)
	if err != nil {
		return nil, err
	}

	if len(req.QueryParams) > 0 {
		separator := "?"
		if strings.Contains(fullURL, "?") {
			separator = "&"
		}
		fullURL += separator + req.QueryParams.Encode()
	}

	httpReq, err := http.NewRequest(req.Method, fullURL, req.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "build %s request for %s", req.Method, fullURL)
	}

	timeout := s.timeout
	if req.Timeout != nil {
		timeout = *req.Timeout
	}
	if total := timeout.Total(); total > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, total)
		defer cancel()
	}
	httpReq = httpReq.WithContext(ctx)

	for key, values := range req.Headers {
		httpReq.Header[http.CanonicalHeaderKey(key)] = values
	}

	if s.auth != nil {
		httpReq = s.auth.Attach(httpReq)
	}

	started := time.Now()
	rawResp, err := s.client.Do(httpReq)
	if err != nil {
		if s.logger != nil {
			s.logger.Errorf("%s %s failed: %v", req.Method, fullURL, err)
		}
		return nil, errors.Wrapf(err, "%s %s", req.Method, fullURL)
	}

	resp, err := drainResponse(rawResp)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", req.Method, fullURL)
	}

	if s.metrics != nil {
		s.metrics.record(s.name, req.Method, resp.StatusCode, time.Since(started))
	}
	if s.logger != nil {
		s.logger.Debugf("%s %s -> %d", req.Method, fullURL, resp.StatusCode)
	}

	if resp.StatusCode >= http.StatusMultipleChoices && !req.AllowError {
		if s.metrics != nil {
			s.metrics.recordError(s.name, req.Method)
		}
		return nil, &ServiceError{Response: resp}
	}

	return resp, nil
}

func (s *Service) Get(ctx context.Context, path string, pathParams Params, queryParams url.Values, headers http.Header) (*Response, error) {
	return s.MakeRequest(ctx, Request{
		Method:      http.MethodGet,
		Path:        path,
		PathParams:  pathParams,
		QueryParams: queryParams,
		Headers:     headers,
	})
}

func (s *Service) Post(ctx context.Context, path string, pathParams Params, body io.Reader, headers http.Header) (*Response, error) {
	return s.MakeRequest(ctx, Request{
		Method:     http.MethodPost,
		Path:       path,
		PathParams: pathParams,
		Body:       body,
		Headers:    headers,
	})
}

func (s *Service) Put(ctx context.Context, path string, pathParams Params, body io.Reader, headers http.Header) (*Response, error) {
	return s.MakeRequest(ctx, Request{
		Method:     http.MethodPut,
		Path:       path,
		PathParams: pathParams,
		Body:       body,
		Headers:    headers,
	})
}

func (s *Service) Patch(ctx context.Context, path string, pathParams Params, body io.Reader, headers http.Header) (*Response, error) {
	return s.MakeRequest(ctx, Request{
		Method:     http.MethodPatch,
		Path:       path,
		PathParams: pathParams,
		Body:       body,
		Headers:    headers,
	})
}

func (s *Service) Delete(ctx context.Context, path string, pathParams Params, headers http.Header) (*Response, error) {
	return s.MakeRequest(ctx, Request{
		Method:     http.MethodDelete,
		Path:       path,
		PathParams: pathParams,
		Headers:    headers,
	})
}

func drainResponse(raw *http.Response) (*Response, error) {
	defer raw.Body.Close()

	body, err := ioutil.ReadAll(raw.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response body")
	}

	return &Response{
		StatusCode: raw.StatusCode,
		Status:     raw.Status,
		Headers:    raw.Header,
		Body:       body,
	}, nil
}
