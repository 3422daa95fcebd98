package mapping

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/vishwas-upadhyaya/HealthCare/internal/platform/auth"
	"github.com/vishwas-upadhyaya/HealthCare/internal/platform/httperr"
	"github.com/vishwas-upadhyaya/HealthCare/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/mappings", h.List)
	api.POST("/mappings", h.Create)
	api.GET("/mappings/patient/:patient_id", h.ListByPatient)
	api.GET("/mappings/:id", h.Get)
	api.DELETE("/mappings/:id", h.Delete)
}

func (h *Handler) Create(c echo.Context) error {
	principal, ok := auth.PrincipalFromContext(c.Request().Context())
	if !ok {
		return httperr.Unauthorized("authentication required")
	}
	var in Input
	if err := c.Bind(&in); err != nil {
		return httperr.Validation("body", "invalid request body")
	}
	m, err := h.svc.Create(c.Request().Context(), principal, &in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *Handler) Get(c echo.Context) error {
	principal, ok := auth.PrincipalFromContext(c.Request().Context())
	if !ok {
		return httperr.Unauthorized("authentication required")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return httperr.NotFound("mapping not found")
	}
	m, err := h.svc.Get(c.Request().Context(), principal, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) List(c echo.Context) error {
	principal, ok := auth.PrincipalFromContext(c.Request().Context())
	if !ok {
		return httperr.Unauthorized("authentication required")
	}
	pg := pagination.FromContext(c)
	mappings, total, err := h.svc.List(c.Request().Context(), principal, pg.Limit, pg.Offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(mappings, total, pg.Limit, pg.Offset))
}

func (h *Handler) ListByPatient(c echo.Context) error {
	principal, ok := auth.PrincipalFromContext(c.Request().Context())
	if !ok {
		return httperr.Unauthorized("authentication required")
	}
	patientID, err := uuid.Parse(c.Param("patient_id"))
	if err != nil {
		return httperr.NotFound("patient not found")
	}
	details, err := h.svc.ListByPatient(c.Request().Context(), principal, patientID)
	if err != nil {
		return err
	}
	if details == nil {
		details = []*Detail{}
	}
	return c.JSON(http.StatusOK, details)
}

func (h *Handler) Delete(c echo.Context) error {
	principal, ok := auth.PrincipalFromContext(c.Request().Context())
	if !ok {
		return httperr.Unauthorized("authentication required")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return httperr.NotFound("mapping not found")
	}
	if err := h.svc.Delete(c.Request().Context(), principal, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
