package domain

import "testing"

func TestAdmissionDataValidate(t *testing.T) {
	cases := []struct {
		name  string
		data  AdmissionData
		valid bool
	}{
		{"ok", AdmissionData{Name: "Ravi", Age: 42, Symptoms: "chest pain", Seriousness: 7}, true},
		{"mild", AdmissionData{Name: "Asha", Age: 8, Symptoms: "fever", Seriousness: 1}, true},
		{"critical", AdmissionData{Name: "Noor", Age: 70, Symptoms: "stroke", Seriousness: 10}, true},
		{"empty name", AdmissionData{Name: "  ", Age: 42, Symptoms: "chest pain", Seriousness: 7}, false},
		{"zero age", AdmissionData{Name: "Ravi", Age: 0, Symptoms: "chest pain", Seriousness: 7}, false},
		{"negative age", AdmissionData{Name: "Ravi", Age: -3, Symptoms: "chest pain", Seriousness: 7}, false},
		{"no symptoms", AdmissionData{Name: "Ravi", Age: 42, Symptoms: "", Seriousness: 7}, false},
		{"seriousness low", AdmissionData{Name: "Ravi", Age: 42, Symptoms: "chest pain", Seriousness: 0}, false},
		{"seriousness high", AdmissionData{Name: "Ravi", Age: 42, Symptoms: "chest pain", Seriousness: 11}, false},
	}

	for _, tt := range cases {
		if got := tt.data.Validate() == nil; got != tt.valid {
			t.Fatalf("%s: Validate()=%v, want valid=%v", tt.name, tt.data.Validate(), tt.valid)
		}
	}
}

func TestSectionValidate(t *testing.T) {
	cases := []struct {
		name    string
		section Section
		valid   bool
	}{
		{"ok", Section{ID: "icu", Name: "ICU", Capacity: 4}, true},
		{"with equipment", Section{Name: "ER", Capacity: 10, Equipment: []Equipment{{Name: "Ventilator", Total: 3, Available: 2}}}, true},
		{"zero capacity", Section{Name: "ER", Capacity: 0}, false},
		{"empty name", Section{Name: "", Capacity: 2}, false},
		{"available over total", Section{Name: "ER", Capacity: 2, Equipment: []Equipment{{Name: "Ventilator", Total: 1, Available: 2}}}, false},
		{"negative available", Section{Name: "ER", Capacity: 2, Equipment: []Equipment{{Name: "Ventilator", Total: 1, Available: -1}}}, false},
		{"unnamed equipment", Section{Name: "ER", Capacity: 2, Equipment: []Equipment{{Name: "", Total: 1, Available: 1}}}, false},
	}

	for _, tt := range cases {
		if got := tt.section.Validate() == nil; got != tt.valid {
			t.Fatalf("%s: Validate()=%v, want valid=%v", tt.name, tt.section.Validate(), tt.valid)
		}
	}
}

func TestHospitalConfigValidate(t *testing.T) {
	ok := HospitalConfig{
		Sections: []Section{{ID: "er", Name: "ER", Capacity: 5}},
		Staff:    []StaffMember{{ID: "d1", Name: "Dr. Rao", Role: "Cardiologist"}},
	}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	dupSections := HospitalConfig{
		Sections: []Section{{ID: "er", Name: "ER", Capacity: 5}, {ID: "er", Name: "ER 2", Capacity: 3}},
	}
	if err := dupSections.Validate(); err == nil {
		t.Fatal("duplicate section ids accepted")
	}

	badStaff := HospitalConfig{
		Staff: []StaffMember{{ID: "n1", Name: "Meera", Role: ""}},
	}
	if err := badStaff.Validate(); err == nil {
		t.Fatal("staff without role accepted")
	}
}

func TestIsNurse(t *testing.T) {
	cases := []struct {
		role  string
		nurse bool
	}{
		{"nurse", true},
		{"Nurse", true},
		{"NURSE", true},
		{" nurse ", true},
		{"head nurse", false},
		{"Cardiologist", false},
		{"surgeon", false},
	}

	for _, tt := range cases {
		s := StaffMember{Role: tt.role}
		if got := s.IsNurse(); got != tt.nurse {
			t.Fatalf("IsNurse(%q)=%v, want %v", tt.role, got, tt.nurse)
		}
	}
}
