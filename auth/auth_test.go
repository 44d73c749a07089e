package auth

import (
	"net/http"
	"testing"
)

func Test_NewJWT_sets_authorization_header(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "http://svc/", nil)

	out := NewJWT("abc").Attach(req)

	if got := out.Header.Get("Authorization"); got != "JWT abc" {
		t.Errorf("unexpected header %q", got)
	}
}

func Test_NewBearer_sets_authorization_header(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "http://svc/", nil)

	out := NewBearer("abc").Attach(req)

	if got := out.Header.Get("Authorization"); got != "Bearer abc" {
		t.Errorf("unexpected header %q", got)
	}
}

func Test_JWT_constructor_reads_token_param(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "http://svc/", nil)

	attachment := JWT(Params{"token": "t1"})
	out := attachment.Attach(req)

	if got := out.Header.Get("Authorization"); got != "JWT t1" {
		t.Errorf("unexpected header %q", got)
	}
}

func Test_Attach_leaves_other_headers_untouched(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "http://svc/", nil)
	req.Header.Set("Content-Type", "application/json")

	out := NewToken("Token", "xyz").Attach(req)

	if got := out.Header.Get("Content-Type"); got != "application/json" {
		t.Errorf("unexpected content type %q", got)
	}
	if got := out.Header.Get("Authorization"); got != "Token xyz" {
		t.Errorf("unexpected header %q", got)
	}
}
