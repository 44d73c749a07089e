package auth

import (
	"fmt"
	"net/http"
)

type (
	// Attachment injects credentials into an outgoing request and returns it.
	// Attachments are bound to a Service, never to the shared session, so
	// clients with different credentials can share one connection pool.
	Attachment interface {
		Attach(req *http.Request) *http.Request
	}

	// Params carries the arguments a Constructor is invoked with by the
	// service factory.
	Params map[string]interface{}

	// Constructor builds an Attachment from factory-supplied parameters.
	Constructor func(params Params) Attachment

	tokenAuth struct {
		scheme string
		token  string
	}
)

func (a *tokenAuth) Attach(req *http.Request) *http.Request {
	req.Header.Set("Authorization", fmt.Sprintf("%s %s", a.scheme, a.token))
	return req
}

// NewJWT attaches an Authorization header using the JWT scheme.
func NewJWT(token string) Attachment {
	return &tokenAuth{scheme: "JWT", token: token}
}

// NewBearer attaches an Authorization header using the Bearer scheme.
func NewBearer(token string) Attachment {
	return &tokenAuth{scheme: "Bearer", token: token}
}

// NewToken attaches an Authorization header using an arbitrary scheme.
func NewToken(scheme, token string) Attachment {
	return &tokenAuth{scheme: scheme, token: token}
}

// JWT is a Constructor reading the token from params["token"].
func JWT(params Params) Attachment {
	return NewJWT(stringParam(params, "token"))
}

// Bearer is a Constructor reading the token from params["token"].
func Bearer(params Params) Attachment {
	return NewBearer(stringParam(params, "token"))
}

func stringParam(params Params, key string) string {
	if params == nil {
		return ""
	}
	if value, ok := params[key].(string); ok {
		return value
	}
	return ""
}
