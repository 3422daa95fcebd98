package doctor

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/vishwas-upadhyaya/HealthCare/internal/platform/auth"
	"github.com/vishwas-upadhyaya/HealthCare/internal/platform/httperr"
)

func principalMW(p auth.Principal) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := auth.WithPrincipal(c.Request().Context(), p)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func newTestServer(p auth.Principal, svc *Service) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = httperr.Handler(zerolog.Nop())
	api := e.Group("/api")
	api.Use(principalMW(p))
	NewHandler(svc).RegisterRoutes(api)
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

const createBody = `{
	"first_name": "Gregory",
	"last_name": "House",
	"specialization": "Diagnostics",
	"license_number": "MD-12345",
	"phone_number": "+14155550123",
	"email": "g.house@example.com",
	"hospital": "Princeton-Plainsboro"
}`

func TestDoctorCreateEndpoint(t *testing.T) {
	svc := NewService(newMockDoctorRepo())
	e := newTestServer(auth.Principal{ID: uuid.New(), Username: "alice"}, svc)

	rec := doJSON(e, http.MethodPost, "/api/doctors", createBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var d map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &d); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if d["created_by_username"] != "alice" {
		t.Errorf("expected created_by_username alice, got %v", d["created_by_username"])
	}
}

func TestDoctorDuplicateLicenseEndpoint(t *testing.T) {
	svc := NewService(newMockDoctorRepo())
	e := newTestServer(auth.Principal{ID: uuid.New(), Username: "alice"}, svc)

	if rec := doJSON(e, http.MethodPost, "/api/doctors", createBody); rec.Code != http.StatusCreated {
		t.Fatalf("first create failed: %d", rec.Code)
	}
	rec := doJSON(e, http.MethodPost, "/api/doctors", createBody)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate license, got %d", rec.Code)
	}
	var body struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body.Errors["license_number"] == "" {
		t.Errorf("expected license_number error, got %v", body.Errors)
	}
}

func TestDoctorUpdateEndpoint_NonOwnerForbidden(t *testing.T) {
	svc := NewService(newMockDoctorRepo())
	owner := newTestServer(auth.Principal{ID: uuid.New(), Username: "alice"}, svc)
	other := newTestServer(auth.Principal{ID: uuid.New(), Username: "bob"}, svc)

	rec := doJSON(owner, http.MethodPost, "/api/doctors", createBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create failed: %d", rec.Code)
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}

	// Anyone may read it.
	if rec := doJSON(other, http.MethodGet, "/api/doctors/"+created.ID, ""); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for non-owner read, got %d", rec.Code)
	}

	rec = doJSON(other, http.MethodPatch, "/api/doctors/"+created.ID, `{"hospital": "Elsewhere"}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-owner write, got %d", rec.Code)
	}
	if rec := doJSON(other, http.MethodDelete, "/api/doctors/"+created.ID, ""); rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-owner delete, got %d", rec.Code)
	}
}

func TestDoctorGetEndpoint_BadIDIsNotFound(t *testing.T) {
	svc := NewService(newMockDoctorRepo())
	e := newTestServer(auth.Principal{ID: uuid.New(), Username: "alice"}, svc)
	rec := doJSON(e, http.MethodGet, "/api/doctors/not-a-uuid", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for malformed id, got %d", rec.Code)
	}
}
