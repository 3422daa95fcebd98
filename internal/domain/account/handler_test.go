package account

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/vishwas-upadhyaya/HealthCare/internal/platform/httperr"
)

func newTestServer() (*echo.Echo, *Service) {
	svc, _ := newTestService()
	e := echo.New()
	e.HTTPErrorHandler = httperr.Handler(zerolog.Nop())
	NewHandler(svc).RegisterRoutes(e.Group("/api"))
	return e, svc
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

const registerBody = `{
	"username": "alice",
	"email": "alice@example.com",
	"first_name": "Alice",
	"last_name": "Smith",
	"password": "Str0ngPass!23",
	"password_confirm": "Str0ngPass!23"
}`

func TestRegisterEndpoint_Created(t *testing.T) {
	e, _ := newTestServer()
	rec := doJSON(e, http.MethodPost, "/api/register", registerBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var user map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &user); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if user["username"] != "alice" {
		t.Errorf("expected username alice, got %v", user["username"])
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Error("password hash must not appear in the response")
	}
}

func TestRegisterEndpoint_ValidationShape(t *testing.T) {
	e, _ := newTestServer()
	rec := doJSON(e, http.MethodPost, "/api/register", `{"username": "alice"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var body struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body.Errors["email"] != "This field is required." {
		t.Errorf("expected required email error, got %q", body.Errors["email"])
	}
}

func TestLoginEndpoint_Success(t *testing.T) {
	e, _ := newTestServer()
	if rec := doJSON(e, http.MethodPost, "/api/register", registerBody); rec.Code != http.StatusCreated {
		t.Fatalf("registration failed: %d", rec.Code)
	}

	rec := doJSON(e, http.MethodPost, "/api/login", `{"username": "alice", "password": "Str0ngPass!23"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var token TokenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &token); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if token.Access == "" || token.TokenType != "Bearer" {
		t.Errorf("unexpected token response: %+v", token)
	}
}

func TestLoginEndpoint_BadCredentials(t *testing.T) {
	e, _ := newTestServer()
	rec := doJSON(e, http.MethodPost, "/api/login", `{"username": "alice", "password": "nope"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body.Detail == "" {
		t.Error("expected a detail message")
	}
}
