package domain

import (
	"strings"
	"time"
)

type Equipment struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Total     int    `json:"total"`
	Available int    `json:"available"`
}

type Section struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Capacity  int         `json:"capacity"`
	Equipment []Equipment `json:"equipment"`
}

type StaffMember struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"` // free text; "nurse" (case-insensitive) is special
}

// IsNurse reports whether this staff member belongs to the nurse pool.
// Every other role counts as doctor/specialist.
func (s StaffMember) IsNurse() bool {
	return strings.EqualFold(strings.TrimSpace(s.Role), "nurse")
}

// AdmissionData is the caller-supplied input to the admission workflow.
type AdmissionData struct {
	Name        string `json:"name"`
	Age         int    `json:"age"`
	Symptoms    string `json:"symptoms"`
	Seriousness int    `json:"seriousness"` // 1 (mild) .. 10 (critical)
}

type Patient struct {
	ID string `json:"id"`
	AdmissionData

	AssignedSectionID string     `json:"assigned_section_id"`
	AssignedDoctorID  string     `json:"assigned_doctor_id"`
	AssignedNurseID   string     `json:"assigned_nurse_id"`
	AdmissionDate     time.Time  `json:"admission_date"`
	DischargeDate     *time.Time `json:"discharge_date,omitempty"`
}

// AssignmentResponse is what the resolver returns for one admission.
// All four fields are required; ids must come from the candidate lists.
type AssignmentResponse struct {
	SectionID string `json:"sectionId"`
	DoctorID  string `json:"doctorId"`
	NurseID   string `json:"nurseId"`
	Reasoning string `json:"reasoning"`
}

type Notification struct {
	ID              string    `json:"id"`
	PatientName     string    `json:"patient_name"`
	PatientSymptoms string    `json:"patient_symptoms"`
	Message         string    `json:"message"`
	Timestamp       time.Time `json:"timestamp"`
}

// HospitalConfig is the single persisted configuration blob: wards plus
// personnel, written as one record, last writer wins.
type HospitalConfig struct {
	Sections []Section     `json:"sections"`
	Staff    []StaffMember `json:"staff"`
}

func (c *HospitalConfig) SectionByID(id string) *Section {
	for i := range c.Sections {
		if c.Sections[i].ID == id {
			return &c.Sections[i]
		}
	}
	return nil
}

func (c *HospitalConfig) StaffByID(id string) *StaffMember {
	for i := range c.Staff {
		if c.Staff[i].ID == id {
			return &c.Staff[i]
		}
	}
	return nil
}

// Doctors returns the non-nurse staff, Nurses the rest.
func (c *HospitalConfig) Doctors() []StaffMember {
	var out []StaffMember
	for _, s := range c.Staff {
		if !s.IsNurse() {
			out = append(out, s)
		}
	}
	return out
}

func (c *HospitalConfig) Nurses() []StaffMember {
	var out []StaffMember
	for _, s := range c.Staff {
		if s.IsNurse() {
			out = append(out, s)
		}
	}
	return out
}
