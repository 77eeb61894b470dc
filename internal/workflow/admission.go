package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gudururanadheer/Hospital-command-center-Samartha/internal/domain"
	"github.com/gudururanadheer/Hospital-command-center-Samartha/internal/resolver"
	"github.com/gudururanadheer/Hospital-command-center-Samartha/internal/store"
)

// Workflow runs admissions and discharges against a shared store. The
// resolver decides who treats the patient where; the workflow filters the
// candidates beforehand and validates the decision afterwards.
type Workflow struct {
	store    store.Store
	resolver resolver.Resolver

	now   func() time.Time
	newID func() string
}

func New(st store.Store, res resolver.Resolver) *Workflow {
	return &Workflow{
		store:    st,
		resolver: res,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Admit runs the full admission pipeline: filter candidates, ask the
// resolver, validate its answer against current truth, commit the patient,
// fan out notifications. On any failure the admitted collection is left
// untouched and no notifications are written.
func (w *Workflow) Admit(ctx context.Context, data domain.AdmissionData) (*domain.Patient, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}

	cfg, err := w.store.LoadConfig(ctx)
	if err != nil {
		return nil, err
	}
	admitted, err := w.store.ListAdmitted(ctx)
	if err != nil {
		return nil, err
	}

	sections := EligibleSections(cfg.Sections, admitted)
	doctors, nurses := FreeStaff(cfg.Staff, admitted)

	// Pre-flight: an exhausted pool fails before the resolver is ever called.
	switch {
	case len(sections) == 0:
		w.recordFailure(ctx, data, ErrNoBedsAvailable)
		return nil, ErrNoBedsAvailable
	case len(doctors) == 0:
		w.recordFailure(ctx, data, ErrNoDoctorsAvailable)
		return nil, ErrNoDoctorsAvailable
	case len(nurses) == 0:
		w.recordFailure(ctx, data, ErrNoNursesAvailable)
		return nil, ErrNoNursesAvailable
	}

	req := resolver.Request{
		Patient:  data,
		Sections: sections,
		Doctors:  doctors,
		Nurses:   nurses,
		Admitted: admitted,
	}

	resp, err := w.resolver.Resolve(ctx, req)
	if err != nil {
		slog.Error("Resolver call failed", "patient", data.Name, "error", err)
		w.recordFailure(ctx, data, ErrResolverUnavailable)
		return nil, fmt.Errorf("%w: %v", ErrResolverUnavailable, err)
	}

	if err := validateAssignment(cfg, admitted, resp); err != nil {
		slog.Error("Resolver assignment rejected", "patient", data.Name, "error", err)
		w.recordFailure(ctx, data, ErrInvalidAssignment)
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssignment, err)
	}

	// Commit: the single state mutation of the workflow.
	patient := domain.Patient{
		ID:                w.newID(),
		AdmissionData:     data,
		AssignedSectionID: resp.SectionID,
		AssignedDoctorID:  resp.DoctorID,
		AssignedNurseID:   resp.NurseID,
		AdmissionDate:     w.now(),
	}
	if err := w.store.SaveAdmitted(ctx, append(admitted, patient)); err != nil {
		return nil, fmt.Errorf("could not persist admission: %w", err)
	}

	w.store.IncrStat(ctx, "total_admissions")
	w.store.SetStat(ctx, "last_admission_time", patient.AdmissionDate.Format(time.RFC3339))

	slog.Info("Patient admitted",
		"patientID", patient.ID,
		"name", patient.Name,
		"sectionID", patient.AssignedSectionID,
		"doctorID", patient.AssignedDoctorID,
		"nurseID", patient.AssignedNurseID,
		"reasoning", resp.Reasoning)

	// Fan-out is independent per staff member: a failed write is logged and
	// never rolls back the admission or blocks the other notification.
	w.notifyStaff(ctx, cfg, resp.DoctorID, patient)
	w.notifyStaff(ctx, cfg, resp.NurseID, patient)

	return &patient, nil
}

// validateAssignment re-checks the resolver's choice against current truth:
// the candidate lists it saw may already be stale.
func validateAssignment(cfg *domain.HospitalConfig, admitted []domain.Patient, resp *domain.AssignmentResponse) error {
	if resp == nil {
		return fmt.Errorf("empty response")
	}
	if resp.SectionID == "" || resp.DoctorID == "" || resp.NurseID == "" || strings.TrimSpace(resp.Reasoning) == "" {
		return fmt.Errorf("response is missing required fields")
	}

	sec := cfg.SectionByID(resp.SectionID)
	if sec == nil {
		return fmt.Errorf("unknown section %q", resp.SectionID)
	}
	if Occupancy(admitted, sec.ID) >= sec.Capacity {
		return fmt.Errorf("section %q is at capacity", sec.Name)
	}

	assigned := AssignedStaffIDs(admitted)
	for _, staffID := range []string{resp.DoctorID, resp.NurseID} {
		if cfg.StaffByID(staffID) == nil {
			return fmt.Errorf("unknown staff member %q", staffID)
		}
		if assigned[staffID] {
			return fmt.Errorf("staff member %q already has a patient", staffID)
		}
	}
	if resp.DoctorID == resp.NurseID {
		return fmt.Errorf("staff member %q assigned to both slots", resp.DoctorID)
	}
	return nil
}

func (w *Workflow) notifyStaff(ctx context.Context, cfg *domain.HospitalConfig, staffID string, patient domain.Patient) {
	member := cfg.StaffByID(staffID)
	name := staffID
	if member != nil {
		name = member.Name
	}

	n := domain.Notification{
		ID:              w.newID(),
		PatientName:     patient.Name,
		PatientSymptoms: patient.Symptoms,
		Message:         fmt.Sprintf("New patient %s assigned to you (seriousness %d/10).", patient.Name, patient.Seriousness),
		Timestamp:       w.now(),
	}
	if err := w.store.AppendNotification(ctx, staffID, n); err != nil {
		slog.Error("Notification write failed", "staff", name, "patientID", patient.ID, "error", err)
		return
	}
	slog.Debug("Staff notified", "staff", name, "patientID", patient.ID)
}

func (w *Workflow) recordFailure(ctx context.Context, data domain.AdmissionData, cause error) {
	w.store.IncrStat(ctx, "failed_admissions")
	slog.Warn("Admission rejected", "patient", data.Name, "reason", cause.Error())
}
