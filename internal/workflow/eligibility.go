package workflow

import (
	"github.com/gudururanadheer/Hospital-command-center-Samartha/internal/domain"
	"github.com/gudururanadheer/Hospital-command-center-Samartha/internal/resolver"
)

// Occupancy counts the admitted patients assigned to one section. It is
// always computed from the live admitted set, never cached, so a discharge
// frees the bed for the very next admission.
func Occupancy(admitted []domain.Patient, sectionID string) int {
	n := 0
	for _, p := range admitted {
		if p.AssignedSectionID == sectionID {
			n++
		}
	}
	return n
}

// AssignedStaffIDs returns every staff id currently holding an admitted
// patient, across both the doctor and the nurse slot. A staff member handles
// at most one patient at a time regardless of which slot they fill.
func AssignedStaffIDs(admitted []domain.Patient) map[string]bool {
	ids := make(map[string]bool)
	for _, p := range admitted {
		if p.AssignedDoctorID != "" {
			ids[p.AssignedDoctorID] = true
		}
		if p.AssignedNurseID != "" {
			ids[p.AssignedNurseID] = true
		}
	}
	return ids
}

// EligibleSections returns the sections with at least one free bed, as
// resolver candidates carrying the live bed count.
func EligibleSections(sections []domain.Section, admitted []domain.Patient) []resolver.SectionCandidate {
	var out []resolver.SectionCandidate
	for _, sec := range sections {
		free := sec.Capacity - Occupancy(admitted, sec.ID)
		if free <= 0 {
			continue
		}
		cand := resolver.SectionCandidate{
			ID:            sec.ID,
			Name:          sec.Name,
			AvailableBeds: free,
		}
		for _, eq := range sec.Equipment {
			cand.Equipment = append(cand.Equipment, resolver.EquipmentSummary{
				Name:      eq.Name,
				Available: eq.Available,
			})
		}
		out = append(out, cand)
	}
	return out
}

// FreeStaff partitions the staff not holding a patient into doctors and
// nurses. Role "nurse" is matched case-insensitively; everything else counts
// as doctor/specialist.
func FreeStaff(staff []domain.StaffMember, admitted []domain.Patient) (doctors, nurses []domain.StaffMember) {
	assigned := AssignedStaffIDs(admitted)
	for _, member := range staff {
		if assigned[member.ID] {
			continue
		}
		if member.IsNurse() {
			nurses = append(nurses, member)
		} else {
			doctors = append(doctors, member)
		}
	}
	return doctors, nurses
}
