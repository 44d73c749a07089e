package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jajotz/httpservice-golang/auth"
	"github.com/jajotz/httpservice-golang/config"
)

func Test_MakeService_requires_service_root(t *testing.T) {
	factory := Factory{}

	if _, err := factory.MakeService(nil); err == nil {
		t.Error("should error without a service root")
	}
}

func Test_MakeService_reuses_session_per_name(t *testing.T) {
	factory := Factory{
		Name:        "customers",
		ServiceRoot: "http://svc/",
		Registry:    NewSessionRegistry(),
	}

	first, err := factory.MakeService(nil)
	if err != nil {
		t.Fatal("should not error ", err)
	}
	second, err := factory.MakeService(nil)
	if err != nil {
		t.Fatal("should not error ", err)
	}

	if first.client != second.client {
		t.Error("expected both services bound to one session")
	}
}

func Test_MakeService_distinct_names_bind_distinct_sessions(t *testing.T) {
	registry := NewSessionRegistry()
	customers := Factory{Name: "customers", ServiceRoot: "http://svc/", Registry: registry}
	billing := Factory{Name: "billing", ServiceRoot: "http://svc/", Registry: registry}

	first, err := customers.MakeService(nil)
	if err != nil {
		t.Fatal("should not error ", err)
	}
	second, err := billing.MakeService(nil)
	if err != nil {
		t.Fatal("should not error ", err)
	}

	if first.client == second.client {
		t.Error("expected distinct sessions for distinct names")
	}
}

func Test_MakeService_session_carries_default_headers(t *testing.T) {
	var gotHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-Client")
	}))
	defer server.Close()

	factory := Factory{
		Name:           "headers",
		ServiceRoot:    server.URL,
		DefaultHeaders: map[string]string{"X-Client": "httpservice"},
		Registry:       NewSessionRegistry(),
	}

	s, err := factory.MakeService(nil)
	if err != nil {
		t.Fatal("should not error ", err)
	}

	if _, err := s.Get(context.Background(), "", nil, nil, nil); err != nil {
		t.Fatal("should not error ", err)
	}
	if gotHeader != "httpservice" {
		t.Errorf("default header not applied, got %q", gotHeader)
	}
}

func Test_MakeService_auth_is_per_service_not_per_session(t *testing.T) {
	var gotAuthorization []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthorization = append(gotAuthorization, r.Header.Get("Authorization"))
	}))
	defer server.Close()

	factory := Factory{
		Name:        "authed",
		ServiceRoot: server.URL,
		Auth:        auth.JWT,
		Registry:    NewSessionRegistry(),
	}

	first, err := factory.MakeService(auth.Params{"token": "t1"})
	if err != nil {
		t.Fatal("should not error ", err)
	}
	second, err := factory.MakeService(auth.Params{"token": "t2"})
	if err != nil {
		t.Fatal("should not error ", err)
	}

	if first.client != second.client {
		t.Fatal("both services should share one session")
	}

	if _, err := first.Get(context.Background(), "", nil, nil, nil); err != nil {
		t.Fatal("should not error ", err)
	}
	if _, err := second.Get(context.Background(), "", nil, nil, nil); err != nil {
		t.Fatal("should not error ", err)
	}

	if len(gotAuthorization) != 2 || gotAuthorization[0] != "JWT t1" || gotAuthorization[1] != "JWT t2" {
		t.Errorf("unexpected authorization headers %v", gotAuthorization)
	}
}

func Test_FactoryFromConfig_maps_fields(t *testing.T) {
	retries := 2
	factory := FactoryFromConfig(config.Service{
		Name:           "customers",
		RootURL:        "http://svc/",
		ConnectTimeout: time.Second,
		ReadTimeout:    4 * time.Second,
		MaxRetries:     &retries,
		DefaultHeaders: map[string]string{"Accept": "application/json"},
	})

	if factory.Name != "customers" || factory.ServiceRoot != "http://svc/" {
		t.Errorf("unexpected factory %+v", factory)
	}
	if factory.Timeout.Connect != time.Second || factory.Timeout.Read != 4*time.Second {
		t.Errorf("unexpected timeout %+v", factory.Timeout)
	}
	if factory.MaxRetries != 2 {
		t.Errorf("unexpected retries %d", factory.MaxRetries)
	}
	if factory.DefaultHeaders["Accept"] != "application/json" {
		t.Errorf("unexpected headers %v", factory.DefaultHeaders)
	}
}

func Test_FactoryFromConfig_defaults_when_unset(t *testing.T) {
	factory := FactoryFromConfig(config.Service{RootURL: "http://svc/"})

	if factory.Timeout != DefaultTimeout {
		t.Errorf("unexpected timeout %+v", factory.Timeout)
	}
	if factory.MaxRetries != DefaultMaxRetries {
		t.Errorf("unexpected retries %d", factory.MaxRetries)
	}
}
