package patient

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinica/clinica/internal/platform/httperr"
	"github.com/clinica/clinica/pkg/pagination"
)

type Handler struct {
	svc    *Service
	limits pagination.Limits
}

func NewHandler(svc *Service, limits pagination.Limits) *Handler {
	return &Handler{svc: svc, limits: limits}
}

// RegisterRoutes mounts patient endpoints. Creation is public so
// patients can register themselves; everything else sits behind the
// bearer gate.
func (h *Handler) RegisterRoutes(public, protected *echo.Group) {
	public.POST("/pacientes", h.Create)
	protected.GET("/pacientes", h.List)
	protected.GET("/pacientes/:cedula", h.Get)
	protected.PUT("/pacientes/:cedula", h.Update)
	protected.DELETE("/pacientes/:cedula", h.Delete)
}

func (h *Handler) Create(c echo.Context) error {
	var p Patient
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.svc.Create(c.Request().Context(), &p)
	if err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) Get(c echo.Context) error {
	p, err := h.svc.Get(c.Request().Context(), c.Param("cedula"))
	if err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) List(c echo.Context) error {
	pg := h.limits.FromContext(c)
	items, err := h.svc.List(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Update(c echo.Context) error {
	var in UpdateInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p, err := h.svc.Update(c.Request().Context(), c.Param("cedula"), in)
	if err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("cedula")); err != nil {
		return httperr.Map(err)
	}
	return c.NoContent(http.StatusNoContent)
}
