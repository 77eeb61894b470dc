package resolver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gudururanadheer/Hospital-command-center-Samartha/internal/domain"
)

func TestRuleBasedResolverPicksEmptiestSection(t *testing.T) {
	res := NewRuleBasedResolver()
	req := Request{
		Patient: domain.AdmissionData{Name: "Ravi", Age: 54, Symptoms: "chest pain", Seriousness: 8},
		Sections: []SectionCandidate{
			{ID: "icu", Name: "ICU", AvailableBeds: 1},
			{ID: "er", Name: "Emergency", AvailableBeds: 4},
			{ID: "ward-b", Name: "Ward B", AvailableBeds: 2},
		},
		Doctors: []domain.StaffMember{
			{ID: "d1", Name: "Dr. Rao", Role: "Cardiologist"},
			{ID: "d2", Name: "Dr. Iyer", Role: "Surgeon"},
		},
		Nurses: []domain.StaffMember{{ID: "n1", Name: "Meera", Role: "Nurse"}},
	}

	got, err := res.Resolve(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "er", got.SectionID)
	assert.Equal(t, "d1", got.DoctorID)
	assert.Equal(t, "n1", got.NurseID)
	assert.NotEmpty(t, got.Reasoning)
}

func TestRuleBasedResolverNoCandidates(t *testing.T) {
	res := NewRuleBasedResolver()
	_, err := res.Resolve(context.Background(), Request{
		Patient: domain.AdmissionData{Name: "Ravi", Age: 54, Symptoms: "chest pain", Seriousness: 8},
	})
	require.Error(t, err)
}
