package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gudururanadheer/Hospital-command-center-Samartha/internal/domain"
	"github.com/gudururanadheer/Hospital-command-center-Samartha/internal/workflow"
)

type sectionState struct {
	domain.Section
	Occupancy     int `json:"occupancy"`
	AvailableBeds int `json:"available_beds"`
}

type staffState struct {
	domain.StaffMember
	Assigned bool `json:"assigned"`
}

type hospitalState struct {
	Sections      []sectionState `json:"sections"`
	Staff         []staffState   `json:"staff"`
	AdmittedCount int            `json:"admitted_count"`
	Configured    bool           `json:"configured"`
}

// handleState returns the whole-hospital snapshot the dashboard renders:
// per-section occupancy and per-staff availability, computed live from the
// admitted set.
func (s *Server) handleState(c echo.Context) error {
	ctx := c.Request().Context()

	cfg, err := s.store.LoadConfig(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "State store unavailable")
	}
	admitted, err := s.store.ListAdmitted(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "State store unavailable")
	}

	state := hospitalState{
		Sections:      []sectionState{},
		Staff:         []staffState{},
		AdmittedCount: len(admitted),
		Configured:    len(cfg.Sections) > 0 || len(cfg.Staff) > 0,
	}

	for _, sec := range cfg.Sections {
		occ := workflow.Occupancy(admitted, sec.ID)
		state.Sections = append(state.Sections, sectionState{
			Section:       sec,
			Occupancy:     occ,
			AvailableBeds: sec.Capacity - occ,
		})
	}

	assigned := workflow.AssignedStaffIDs(admitted)
	for _, member := range cfg.Staff {
		state.Staff = append(state.Staff, staffState{
			StaffMember: member,
			Assigned:    assigned[member.ID],
		})
	}

	return c.JSON(http.StatusOK, state)
}

func (s *Server) handleGetConfig(c echo.Context) error {
	cfg, err := s.store.LoadConfig(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Config unavailable")
	}
	return c.JSON(http.StatusOK, cfg)
}

// handlePutConfig replaces the whole configuration blob. Last writer wins;
// other contexts learn about the change through the change feed. The save is
// best effort: a failed write is logged, not surfaced.
func (s *Server) handlePutConfig(c echo.Context) error {
	var cfg domain.HospitalConfig
	if err := c.Bind(&cfg); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Malformed configuration")
	}
	if err := cfg.Validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := s.store.SaveConfig(c.Request().Context(), &cfg); err != nil {
		slog.Error("Config save failed", "error", err)
	}
	return c.JSON(http.StatusOK, cfg)
}

func (s *Server) handleGetPatients(c echo.Context) error {
	patients, err := s.store.ListAdmitted(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Patient store unavailable")
	}
	if patients == nil {
		patients = []domain.Patient{}
	}
	return c.JSON(http.StatusOK, patients)
}

func (s *Server) handleGetArchive(c echo.Context) error {
	patients, err := s.store.ListDischarged(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Patient store unavailable")
	}
	if patients == nil {
		patients = []domain.Patient{}
	}
	return c.JSON(http.StatusOK, patients)
}

func (s *Server) handleAdmit(c echo.Context) error {
	var data domain.AdmissionData
	if err := c.Bind(&data); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Malformed admission data")
	}

	patient, err := s.workflow.Admit(c.Request().Context(), data)
	if err != nil {
		switch {
		case errors.Is(err, workflow.ErrNoBedsAvailable),
			errors.Is(err, workflow.ErrNoDoctorsAvailable),
			errors.Is(err, workflow.ErrNoNursesAvailable):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		case errors.Is(err, workflow.ErrInvalidAssignment):
			return echo.NewHTTPError(http.StatusBadGateway, err.Error())
		case errors.Is(err, workflow.ErrResolverUnavailable):
			return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
		default:
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, patient)
}

func (s *Server) handleDischarge(c echo.Context) error {
	patient, err := s.workflow.Discharge(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if patient == nil {
		// Unknown id: a deliberate no-op, not an error.
		return c.JSON(http.StatusOK, map[string]string{"status": "not_admitted"})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "discharged",
		"patient": patient,
	})
}

func (s *Server) handleNotifications(c echo.Context) error {
	feed, err := s.store.Notifications(c.Request().Context(), c.Param("staffId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Notification store unavailable")
	}
	if feed == nil {
		feed = []domain.Notification{}
	}
	return c.JSON(http.StatusOK, feed)
}
