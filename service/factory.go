package service

import (
	"net/http"

	"github.com/jajotz/httpservice-golang/auth"
	"github.com/jajotz/httpservice-golang/config"
	"github.com/jajotz/httpservice-golang/logs"
	"github.com/jajotz/httpservice-golang/util/validator"
	"github.com/jajotz/httpservice-golang/webclient"
	heimdallclient "github.com/jajotz/httpservice-golang/webclient/heimdall"

	"github.com/pkg/errors"
)

// Factory holds the per-remote-service configuration that used to live on
// client subclasses: one named Factory value per consumed API.
type Factory struct {
	// Name keys the shared session in the registry. Defaults to ServiceRoot.
	Name        string
	ServiceRoot string `validate:"required"`
	// DefaultHeaders are persisted on the shared session, not on individual
	// services.
	DefaultHeaders map[string]string
	Timeout        Timeout
	MaxRetries     int `validate:"min=0"`
	// Auth builds the attachment bound to each produced Service. The
	// attachment never reaches the shared session.
	Auth auth.Constructor

	// Optional collaborators; zero values select the package defaults.
	Registry  *SessionRegistry
	WebClient webclient.WebClientFactory
	Logger    logs.Logger
	Metrics   *MetricsCollector
}

// FactoryFromConfig maps a loaded config.Service record onto a Factory.
// Retries and timeouts fall back to the package defaults when unset.
func FactoryFromConfig(cfg config.Service) Factory {
	timeout := Timeout{Connect: cfg.ConnectTimeout, Read: cfg.ReadTimeout}
	if timeout.Total() == 0 {
		timeout = DefaultTimeout
	}

	retries := DefaultMaxRetries
	if cfg.MaxRetries != nil {
		retries = *cfg.MaxRetries
	}

	return Factory{
		Name:           cfg.Name,
		ServiceRoot:    cfg.RootURL,
		DefaultHeaders: cfg.Headers(),
		Timeout:        timeout,
		MaxRetries:     retries,
	}
}

// MakeService validates the configuration, obtains the shared session from
// the registry (building it on first use) and returns a Service bound to the
// session plus a freshly constructed auth attachment. authParams are handed
// to the Auth constructor and may be nil.
func (f Factory) MakeService(authParams auth.Params) (*Service, error) {
	if err := validator.New().Validate(f); err != nil {
		return nil, errors.Wrap(err, "invalid service factory configuration")
	}

	name := f.Name
	if name == "" {
		name = f.ServiceRoot
	}

	timeout := f.Timeout
	if timeout.Total() == 0 {
		timeout = DefaultTimeout
	}

	registry := f.Registry
	if registry == nil {
		registry = DefaultSessionRegistry()
	}

	clientFactory := f.WebClient
	if clientFactory == nil {
		clientFactory = heimdallclient.NewClientFactory()
	}

	session := registry.GetOrCreate(name, func() webclient.Client {
		client := clientFactory.Create(webclient.Options{
			ConnectTimeout: timeout.Connect,
			MaxRetries:     f.MaxRetries,
		})
		return webclient.WithDefaultHeaders(client, headersFromMap(f.DefaultHeaders))
	})

	options := []Option{
		WithName(name),
		WithClient(session),
		WithTimeout(timeout),
	}
	if f.Auth != nil {
		options = append(options, WithAuth(f.Auth(authParams)))
	}
	if f.Logger != nil {
		options = append(options, WithLogger(f.Logger))
	}
	if f.Metrics != nil {
		options = append(options, WithMetrics(f.Metrics))
	}

	return New(f.ServiceRoot, options...)
}

func headersFromMap(values map[string]string) http.Header {
	if len(values) == 0 {
		return nil
	}
	headers := make(http.Header, len(values))
	for key, value := range values {
		headers.Set(key, value)
	}
	return headers
}
