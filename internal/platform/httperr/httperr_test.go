package httperr

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func TestIsKind(t *testing.T) {
	err := NotFound("patient not found")
	if !IsKind(err, KindNotFound) {
		t.Error("expected KindNotFound")
	}
	if IsKind(err, KindForbidden) {
		t.Error("did not expect KindForbidden")
	}
	wrapped := fmt.Errorf("lookup: %w", err)
	if !IsKind(wrapped, KindNotFound) {
		t.Error("expected IsKind to unwrap")
	}
}

func serve(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	logger := zerolog.New(os.Stderr)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	Handler(logger)(err, c)
	return rec
}

func TestHandler_Validation(t *testing.T) {
	rec := serve(t, Validation("phone_number", "invalid format"))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	var body struct {
		Errors map[string]string `json:"errors"`
	}
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Errors["phone_number"] != "invalid format" {
		t.Errorf("expected field error, got %v", body.Errors)
	}
}

func TestHandler_Forbidden(t *testing.T) {
	rec := serve(t, Forbidden("not the owner"))
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestHandler_NotFound(t *testing.T) {
	rec := serve(t, NotFound("gone"))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandler_Unauthorized(t *testing.T) {
	rec := serve(t, Unauthorized("missing token"))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestHandler_EchoHTTPError(t *testing.T) {
	rec := serve(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", rec.Code)
	}
}

func TestHandler_UnknownErrorMasked(t *testing.T) {
	rec := serve(t, fmt.Errorf("pgx: connection refused"))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	var body map[string]string
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["detail"] != "internal server error" {
		t.Errorf("expected masked detail, got %q", body["detail"])
	}
}
