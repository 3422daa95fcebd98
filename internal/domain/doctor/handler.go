package doctor

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
	api.GET("/doctors", h.List)
	api.POST("/doctors", h.Create)
	api.GET("/doctors/:id", h.Get)
	api.PUT("/doctors/:id", h.Put)
	api.PATCH("/doctors/:id", h.Patch)
	api.DELETE("/doctors/:id", h.Delete)
}

func (h *Handler) Create(c echo.Context) error {
	principal, ok := auth.PrincipalFromContext(c.Request().Context())
	if !ok {
		return httperr.Unauthorized("authentication required")
	}
	var d Doctor
	if err := c.Bind(&d); err != nil {
		return httperr.Validation("body", "invalid request body")
	}
	if err := h.svc.Create(c.Request().Context(), principal, &d); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return httperr.NotFound("doctor not found")
	}
	d, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)
	doctors, total, err := h.svc.List(c.Request().Context(), c.QueryParam("search"), pg.Limit, pg.Offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(doctors, total, pg.Limit, pg.Offset))
}

func (h *Handler) Put(c echo.Context) error {
	return h.update(c, false)
}

func (h *Handler) Patch(c echo.Context) error {
	return h.update(c, true)
}

func (h *Handler) update(c echo.Context, partial bool) error {
	principal, ok := auth.PrincipalFromContext(c.Request().Context())
	if !ok {
		return httperr.Unauthorized("authentication required")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return httperr.NotFound("doctor not found")
	}
	var upd Update
	if err := c.Bind(&upd); err != nil {
		return httperr.Validation("body", "invalid request body")
	}
	d, err := h.svc.Update(c.Request().Context(), principal, id, upd, partial)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) Delete(c echo.Context) error {
	principal, ok := auth.PrincipalFromContext(c.Request().Context())
	if !ok {
		return httperr.Unauthorized("authentication required")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return httperr.NotFound("doctor not found")
	}
	if err := h.svc.Delete(c.Request().Context(), principal, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
