package resolver

import (
	"context"
	"fmt"

	"github.com/gudururanadheer/Hospital-command-center-Samartha/internal/domain"
)

// RuleBasedResolver is the deterministic local fallback used when no AI
// endpoint is configured. It spreads load by preferring the emptiest section
// and takes the first free doctor and nurse.
type RuleBasedResolver struct{}

func NewRuleBasedResolver() *RuleBasedResolver {
	return &RuleBasedResolver{}
}

func (r *RuleBasedResolver) Resolve(_ context.Context, req Request) (*domain.AssignmentResponse, error) {
	if len(req.Sections) == 0 || len(req.Doctors) == 0 || len(req.Nurses) == 0 {
		return nil, fmt.Errorf("no candidates to choose from")
	}

	best := req.Sections[0]
	for _, sec := range req.Sections[1:] {
		if sec.AvailableBeds > best.AvailableBeds {
			best = sec
		}
	}

	doctor := req.Doctors[0]
	nurse := req.Nurses[0]

	return &domain.AssignmentResponse{
		SectionID: best.ID,
		DoctorID:  doctor.ID,
		NurseID:   nurse.ID,
		Reasoning: fmt.Sprintf(
			"Placed in %s (%d beds free, emptiest eligible section) under %s with nurse %s; seriousness %d/10.",
			best.Name, best.AvailableBeds, doctor.Name, nurse.Name, req.Patient.Seriousness),
	}, nil
}
