package resolver

import (
	"context"

	"github.com/gudururanadheer/Hospital-command-center-Samartha/internal/domain"
)

// EquipmentSummary is the slimmed-down equipment view sent to the resolver.
type EquipmentSummary struct {
	Name      string `json:"name"`
	Available int    `json:"available"`
}

// SectionCandidate is a section with free beds at filtering time.
type SectionCandidate struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	AvailableBeds int                `json:"availableBeds"`
	Equipment     []EquipmentSummary `json:"equipment"`
}

// Request carries one patient's admission data plus the candidate pools the
// resolver may choose from. Sections are pre-filtered to availableBeds > 0;
// doctors and nurses to staff not currently holding a patient. The admitted
// list is context only.
type Request struct {
	Patient  domain.AdmissionData  `json:"patient"`
	Sections []SectionCandidate    `json:"sections"`
	Doctors  []domain.StaffMember  `json:"doctors"`
	Nurses   []domain.StaffMember  `json:"nurses"`
	Admitted []domain.Patient      `json:"admitted"`
}

// Resolver picks one section, one doctor and one nurse for a new patient.
// It is the sole decision maker; the admission workflow only validates the
// result, it never overrides it. Implementations must either return a
// response with all four fields populated or an error.
type Resolver interface {
	Resolve(ctx context.Context, req Request) (*domain.AssignmentResponse, error)
}
