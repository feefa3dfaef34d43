package billing

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/treatments", h.Bill)
	api.GET("/treatments", h.ListTreatments)
	api.GET("/treatments/search", h.SearchTreatments)
	api.GET("/treatments/:id", h.GetTreatment)
	api.GET("/patients/:id/treatments", h.ListForPatient)
	api.GET("/patients/:id/bill", h.BillTotal)
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func (h *Handler) Bill(c echo.Context) error {
	var t Treatment
	if err := c.Bind(&t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.Bill(c.Request().Context(), &t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *Handler) GetTreatment(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	t, err := h.svc.GetTreatment(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "treatment not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, t)
}

func (h *Handler) ListTreatments(c echo.Context) error {
	ts, err := h.svc.ListTreatments(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, ts)
}

func (h *Handler) SearchTreatments(c echo.Context) error {
	ts, err := h.svc.SearchTreatmentsByName(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, ts)
}

func (h *Handler) ListForPatient(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	ts, err := h.svc.ListTreatmentsForPatient(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, ts)
}

func (h *Handler) BillTotal(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	total, err := h.svc.TotalForPatient(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"patient_id": id,
		"total":      total,
	})
}
