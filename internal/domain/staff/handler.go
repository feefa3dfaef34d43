package staff

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

// RegisterRoutes wires the staff endpoints. Doctor deletion is a cascading
// operation and is registered by the admission handler instead.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/doctors", h.CreateDoctor)
	api.GET("/doctors", h.ListDoctors)
	api.GET("/doctors/search", h.SearchDoctors)
	api.GET("/doctors/:id", h.GetDoctor)

	api.POST("/nurses", h.CreateNurse)
	api.GET("/nurses", h.ListNurses)
	api.GET("/nurses/search", h.SearchNurses)
	api.GET("/nurses/:id", h.GetNurse)
	api.DELETE("/nurses/:id", h.DeleteNurse)

	api.POST("/personnel", h.CreatePersonnel)
	api.GET("/personnel", h.ListPersonnel)
	api.GET("/personnel/search", h.SearchPersonnel)
	api.GET("/personnel/:id", h.GetPersonnel)
	api.DELETE("/personnel/:id", h.DeletePersonnel)
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// -- Doctors --

func (h *Handler) CreateDoctor(c echo.Context) error {
	var d Doctor
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateDoctor(c.Request().Context(), &d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *Handler) GetDoctor(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	d, err := h.svc.GetDoctor(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "doctor not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) ListDoctors(c echo.Context) error {
	docs, err := h.svc.ListDoctors(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, docs)
}

func (h *Handler) SearchDoctors(c echo.Context) error {
	ctx := c.Request().Context()
	if spec := c.QueryParam("spec"); spec != "" {
		docs, err := h.svc.SearchDoctorsBySpec(ctx, spec)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, docs)
	}
	docs, err := h.svc.SearchDoctorsByName(ctx, c.QueryParam("name"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, docs)
}

// -- Nurses --

func (h *Handler) CreateNurse(c echo.Context) error {
	var n Nurse
	if err := c.Bind(&n); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateNurse(c.Request().Context(), &n); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, n)
}

func (h *Handler) GetNurse(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	n, err := h.svc.GetNurse(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "nurse not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, n)
}

func (h *Handler) ListNurses(c echo.Context) error {
	nurses, err := h.svc.ListNurses(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, nurses)
}

func (h *Handler) SearchNurses(c echo.Context) error {
	nurses, err := h.svc.SearchNursesByName(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, nurses)
}

func (h *Handler) DeleteNurse(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteNurse(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "nurse not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// -- Personnel --

func (h *Handler) CreatePersonnel(c echo.Context) error {
	var p Personnel
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreatePersonnel(c.Request().Context(), &p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) GetPersonnel(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	p, err := h.svc.GetPersonnel(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "personnel not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) ListPersonnel(c echo.Context) error {
	staff, err := h.svc.ListPersonnel(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, staff)
}

func (h *Handler) SearchPersonnel(c echo.Context) error {
	ctx := c.Request().Context()
	if typ := c.QueryParam("type"); typ != "" {
		staff, err := h.svc.SearchPersonnelByType(ctx, typ)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, staff)
	}
	staff, err := h.svc.SearchPersonnelByName(ctx, c.QueryParam("name"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, staff)
}

func (h *Handler) DeletePersonnel(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeletePersonnel(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "personnel not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
