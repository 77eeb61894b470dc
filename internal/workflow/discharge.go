package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gudururanadheer/Hospital-command-center-Samartha/internal/domain"
)

// Discharge moves a patient from the admitted collection to the archive,
// stamping the discharge time. An unknown id is an explicit no-op: both
// collections stay untouched and no error is returned. The vacated bed and
// staff become eligible again on the next admission because eligibility is
// always recomputed from the live admitted set.
func (w *Workflow) Discharge(ctx context.Context, patientID string) (*domain.Patient, error) {
	admitted, err := w.store.ListAdmitted(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range admitted {
		if admitted[i].ID == patientID {
			idx = i
			break
		}
	}
	if idx < 0 {
		slog.Debug("Discharge for unknown patient ignored", "patientID", patientID)
		return nil, nil
	}

	patient := admitted[idx]
	now := w.now()
	patient.DischargeDate = &now

	discharged, err := w.store.ListDischarged(ctx)
	if err != nil {
		return nil, err
	}

	// Archive first: if the second write fails the patient shows up in both
	// collections until retried, but is never lost.
	discharged = append([]domain.Patient{patient}, discharged...)
	if err := w.store.SaveDischarged(ctx, discharged); err != nil {
		return nil, fmt.Errorf("could not persist discharge: %w", err)
	}

	remaining := append(append([]domain.Patient{}, admitted[:idx]...), admitted[idx+1:]...)
	if err := w.store.SaveAdmitted(ctx, remaining); err != nil {
		return nil, fmt.Errorf("could not update admitted patients: %w", err)
	}

	w.store.IncrStat(ctx, "total_discharges")
	w.store.SetStat(ctx, "last_discharge_time", now.Format(time.RFC3339))

	slog.Info("Patient discharged",
		"patientID", patient.ID,
		"name", patient.Name,
		"sectionID", patient.AssignedSectionID)

	return &patient, nil
}
