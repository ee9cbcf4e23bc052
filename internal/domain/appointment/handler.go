package appointment

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

// RegisterRoutes mounts appointment endpoints. Self-booking is public;
// the rest requires a physician token.
func (h *Handler) RegisterRoutes(public, protected *echo.Group) {
	public.POST("/citas/reservar", h.Reserve)
	protected.POST("/citas/agendar", h.Schedule)
	protected.GET("/citas", h.List)
	protected.GET("/citas/:id", h.Get)
	protected.GET("/citas/paciente/:cedula", h.ListByPatient)
	protected.PUT("/citas/:id", h.Update)
	protected.DELETE("/citas/:id", h.Delete)
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func (h *Handler) Reserve(c echo.Context) error {
	var in ReservationInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a, err := h.svc.Reserve(c.Request().Context(), in)
	if err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) Schedule(c echo.Context) error {
	var in Input
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a, err := h.svc.Schedule(c.Request().Context(), in)
	if err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	a, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) List(c echo.Context) error {
	pg := h.limits.FromContext(c)
	ctx := c.Request().Context()

	if cedula := c.QueryParam("cedula_paciente"); cedula != "" {
		items, err := h.svc.ListByPatient(ctx, cedula, pg.Limit)
		if err != nil {
			return httperr.Map(err)
		}
		return c.JSON(http.StatusOK, items)
	}
	if fecha := c.QueryParam("fecha"); fecha != "" {
		items, err := h.svc.ListByFecha(ctx, fecha, pg.Limit)
		if err != nil {
			return httperr.Map(err)
		}
		return c.JSON(http.StatusOK, items)
	}

	items, err := h.svc.List(ctx, pg.Limit, pg.Offset)
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
	a, err := h.svc.Update(c.Request().Context(), id, in)
	if err != nil {
		return httperr.Map(err)
	}
	return c.JSON(http.StatusOK, a)
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
