// Package httperr defines the error taxonomy shared by the domain services
// and maps each kind to an HTTP response. Services return these errors;
// handlers and the central echo error handler never inspect error strings.
package httperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Kind classifies an error for transport mapping.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindUnauthorized
	KindForbidden
	KindNotFound
)

// Error is a request-scoped failure. Validation errors carry a field->message
// map; the other kinds carry a single detail string.
type Error struct {
	Kind   Kind
	Detail string
	Fields map[string]string
}

func (e *Error) Error() string {
	if e.Kind == KindValidation {
		return fmt.Sprintf("validation failed: %v", e.Fields)
	}
	return e.Detail
}

// Validation returns a field-scoped validation error.
func Validation(field, message string) *Error {
	return &Error{Kind: KindValidation, Fields: map[string]string{field: message}}
}

// ValidationFields returns a validation error carrying multiple field errors.
func ValidationFields(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Fields: fields}
}

func Unauthorized(detail string) *Error {
	return &Error{Kind: KindUnauthorized, Detail: detail}
}

func Forbidden(detail string) *Error {
	return &Error{Kind: KindForbidden, Detail: detail}
}

func NotFound(detail string) *Error {
	return &Error{Kind: KindNotFound, Detail: detail}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func (k Kind) status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// Handler returns an echo.HTTPErrorHandler serializing the taxonomy.
// Validation errors become {"errors": {field: message}}, everything else
// {"detail": "..."}. Unknown errors are logged and masked as 500s.
func Handler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var appErr *Error
		if errors.As(err, &appErr) {
			var body interface{}
			if appErr.Kind == KindValidation {
				body = map[string]interface{}{"errors": appErr.Fields}
			} else {
				body = map[string]string{"detail": appErr.Detail}
			}
			if werr := c.JSON(appErr.Kind.status(), body); werr != nil {
				logger.Error().Err(werr).Msg("write error response")
			}
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			detail := fmt.Sprintf("%v", httpErr.Message)
			if werr := c.JSON(httpErr.Code, map[string]string{"detail": detail}); werr != nil {
				logger.Error().Err(werr).Msg("write error response")
			}
			return
		}

		logger.Error().Err(err).Str("path", c.Request().URL.Path).Msg("unhandled error")
		if werr := c.JSON(http.StatusInternalServerError, map[string]string{
			"detail": "internal server error",
		}); werr != nil {
			logger.Error().Err(werr).Msg("write error response")
		}
	}
}
