package account

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vishwas-upadhyaya/HealthCare/internal/platform/httperr"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes wires the public account endpoints. These are the only API
// routes reachable without a bearer token.
func (h *Handler) RegisterRoutes(public *echo.Group) {
	public.POST("/register", h.Register)
	public.POST("/login", h.Login)
}

func (h *Handler) Register(c echo.Context) error {
	var in RegistrationInput
	if err := c.Bind(&in); err != nil {
		return httperr.Validation("body", "invalid request body")
	}
	user, err := h.svc.Register(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

func (h *Handler) Login(c echo.Context) error {
	var creds Credentials
	if err := c.Bind(&creds); err != nil {
		return httperr.Validation("body", "invalid request body")
	}
	token, err := h.svc.Login(c.Request().Context(), creds)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, token)
}
