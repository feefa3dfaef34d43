package room

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

// RegisterRoutes wires the room read/create endpoints. Room deletion cascades
// through the occupant and is registered by the admission handler.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/rooms", h.CreateRoom)
	api.GET("/rooms", h.ListRooms)
	api.GET("/rooms/search", h.SearchRooms)
	api.GET("/rooms/:id", h.GetRoom)
}

func (h *Handler) CreateRoom(c echo.Context) error {
	var r Room
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateRoom(c.Request().Context(), &r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, r)
}

func (h *Handler) GetRoom(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	r, err := h.svc.GetRoom(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "room not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, r)
}

func (h *Handler) ListRooms(c echo.Context) error {
	rooms, err := h.svc.ListRooms(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, rooms)
}

func (h *Handler) SearchRooms(c echo.Context) error {
	rooms, err := h.svc.SearchRoomsByName(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, rooms)
}
