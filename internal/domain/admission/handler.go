package admission

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/zgr2788/hosadm/internal/domain/patient"
	"github.com/zgr2788/hosadm/internal/domain/room"
	"github.com/zgr2788/hosadm/internal/domain/staff"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes wires the link-maintaining operations. The cascading
// DELETE routes live here rather than in the entity packages because only
// the engine can remove these records without breaking the links.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/admissions/:roomID/:patientID", h.Admit)
	api.POST("/discharges/:patientID", h.Discharge)
	api.DELETE("/rooms/:id", h.DeleteRoom)
	api.DELETE("/patients/:id", h.DeletePatient)
	api.DELETE("/doctors/:id", h.DeleteDoctor)
}

func param(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

func toHTTPError(err error) error {
	switch {
	case errors.Is(err, patient.ErrNotFound),
		errors.Is(err, room.ErrNotFound),
		errors.Is(err, staff.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrRoomOccupied), errors.Is(err, ErrPatientAdmitted):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func (h *Handler) Admit(c echo.Context) error {
	roomID, err := param(c, "roomID")
	if err != nil {
		return err
	}
	patientID, err := param(c, "patientID")
	if err != nil {
		return err
	}
	if err := h.svc.Admit(c.Request().Context(), patientID, roomID); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]int64{
		"patient_id": patientID,
		"room_id":    roomID,
	})
}

func (h *Handler) Discharge(c echo.Context) error {
	patientID, err := param(c, "patientID")
	if err != nil {
		return err
	}
	if err := h.svc.Discharge(c.Request().Context(), patientID); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteRoom(c echo.Context) error {
	id, err := param(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteRoom(c.Request().Context(), id); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeletePatient(c echo.Context) error {
	id, err := param(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeletePatient(c.Request().Context(), id); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) DeleteDoctor(c echo.Context) error {
	id, err := param(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.DeleteDoctor(c.Request().Context(), id); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
