package consultation

import (
	"net/http"
	"strconv"

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

func (h *Handler) RegisterRoutes(protected *echo.Group) {
	protected.POST("/consultas", h.Create)
	protected.GET("/consultas", h.List)
	protected.GET("/consultas/:id", h.Get)
	protected.GET("/consultas/paciente/:cedula", h.ListByPatient)
	protected.PUT("/consultas/:id", h.Update)
	protected.DELETE("/consultas/:id", h.Delete)
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func (h *Handler) Create(c echo.Context) error {
	var con Consultation
	if err := c.Bind(&con); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	created, err := h.svc.Create(c.Request().Context(), &con)
	if err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	con, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusOK, con)
}

func (h *Handler) List(c echo.Context) error {
	pg := h.limits.FromContext(c)
	items, err := h.svc.List(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListByPatient(c echo.Context) error {
	pg := h.limits.FromContext(c)
	items, err := h.svc.ListByPatient(c.Request().Context(), c.Param("cedula"), pg.Limit)
	if err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var in UpdateInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	con, err := h.svc.Update(c.Request().Context(), id, in)
	if err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusOK, con)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return httperr.Map(err)
	}
	return c.NoContent(http.StatusNoContent)
}
