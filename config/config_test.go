package config

import (
	"os"
	"testing"
	"time"
)

var (
	properties = "./service.properties"
)

func Test_New_ok(t *testing.T) {
	object := Service{}
	if err := New(properties, &object); err != nil {
		t.Fatal("should not error ", err)
	}

	if object.Name != "customers" {
		t.Error("unexpected service name ", object.Name)
	}
	if object.RootURL != "http://localhost:8080/api" {
		t.Error("unexpected service root ", object.RootURL)
	}
	if object.ConnectTimeout != 2*time.Second || object.ReadTimeout != 8*time.Second {
		t.Errorf("unexpected timeouts %v/%v", object.ConnectTimeout, object.ReadTimeout)
	}

	headers := object.Headers()
	if headers["Accept"] != "application/json" || headers["X-Client"] != "httpservice" {
		t.Errorf("unexpected headers %v", headers)
	}
}

func Test_New_not_ok(t *testing.T) {
	object := Service{}
	if err := New("asdfasdf", &object); err == nil {
		t.Error("should error ", err)
	}
}

func Test_NewFromEnv_ok(t *testing.T) {
	os.Setenv("SERVICE_NAME", "billing")
	os.Setenv("SERVICE_ROOT", "http://billing/")
	os.Setenv("MAX_RETRIES", "5")
	os.Setenv("DEFAULT_HEADERS", "Accept:application/json")
	defer func() {
		os.Unsetenv("SERVICE_NAME")
		os.Unsetenv("SERVICE_ROOT")
		os.Unsetenv("MAX_RETRIES")
		os.Unsetenv("DEFAULT_HEADERS")
	}()

	object := Service{}
	if err := NewFromEnv(&object); err != nil {
		t.Fatal("should not error ", err)
	}

	if object.Name != "billing" || object.RootURL != "http://billing/" {
		t.Errorf("unexpected service %v", object)
	}
	if object.MaxRetries == nil || *object.MaxRetries != 5 {
		t.Error("unexpected max retries")
	}
	if object.Headers()["Accept"] != "application/json" {
		t.Errorf("unexpected headers %v", object.Headers())
	}
}
