package service

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ServiceError wraps a response with status >= 300 so callers can inspect
// the status, headers and body of the failed exchange.
type ServiceError struct {
	Response *Response
}

func (e *ServiceError) Error() string {
	body := strings.TrimSpace(string(e.Response.Body))
	if body == "" {
		body = http.StatusText(e.Response.StatusCode)
	}
	return fmt.Sprintf("http %d: %s", e.Response.StatusCode, body)
}

// AsServiceError unwraps err into a *ServiceError when the failure came from
// a non-2xx response.
func AsServiceError(err error) (*ServiceError, bool) {
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return serviceErr, true
	}
	return nil, false
}
