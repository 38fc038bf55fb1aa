package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"librarysvc/internal/auth"
)

// Credentials shared by the handler and end-to-end tests.
var TestCredentials = auth.Credentials{Username: "rosansen", Password: "rosansen7"}

const TestSecret = "test-secret"

// NewTokenService builds a token service with the shared test identity.
func NewTokenService() *auth.Service {
	return auth.NewService(TestSecret, TestCredentials, time.Hour)
}

// FreshToken returns a token the shared test service accepts.
func FreshToken() string {
	token, err := NewTokenService().Login(TestCredentials.Username, TestCredentials.Password)
	if err != nil {
		panic(err)
	}
	return token
}

// ExpiredToken returns a token signed with the test secret whose expiry has
// already passed.
func ExpiredToken() string {
	past := time.Now().Add(-2 * time.Hour)
	svc := auth.NewService(TestSecret, TestCredentials, time.Hour).
		WithClock(func() time.Time { return past })
	token, err := svc.GenerateToken(TestCredentials.Username)
	if err != nil {
		panic(err)
	}
	return token
}

// NewRequest creates a JSON HTTP request for testing.
func NewRequest(method, path string, body interface{}) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}
	bodyBytes, _ := json.Marshal(body)
	r := httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// NewRequestWithToken creates a JSON request carrying an x-access-token.
func NewRequestWithToken(method, path string, body interface{}, token string) *http.Request {
	r := NewRequest(method, path, body)
	if token != "" {
		r.Header.Set("x-access-token", token)
	}
	return r
}

// NewFormRequest creates a form-encoded request carrying an x-access-token.
func NewFormRequest(method, path string, form url.Values, token string) *http.Request {
	r := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		r.Header.Set("x-access-token", token)
	}
	return r
}

// RecordResponse is a decoded HTTP response for assertions.
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
	List   []map[string]interface{}
}

// RecordHTTPResponse decodes the recorder body as either a JSON object or a
// JSON array.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)
	resp := RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
	}
	trimmed := bytes.TrimSpace(bodyBytes)
	if len(trimmed) == 0 {
		return resp
	}
	if trimmed[0] == '[' {
		_ = json.Unmarshal(trimmed, &resp.List)
	} else {
		_ = json.Unmarshal(trimmed, &resp.Body)
	}
	return resp
}
