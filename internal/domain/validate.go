package domain

import (
	"fmt"
	"strings"
)

func (e Equipment) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("equipment name is required")
	}
	if e.Total < 0 {
		return fmt.Errorf("equipment %q: total must not be negative", e.Name)
	}
	if e.Available < 0 || e.Available > e.Total {
		return fmt.Errorf("equipment %q: available must be between 0 and %d", e.Name, e.Total)
	}
	return nil
}

func (s Section) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("section name is required")
	}
	if s.Capacity < 1 {
		return fmt.Errorf("section %q: capacity must be at least 1", s.Name)
	}
	for _, eq := range s.Equipment {
		if err := eq.Validate(); err != nil {
			return fmt.Errorf("section %q: %w", s.Name, err)
		}
	}
	return nil
}

func (s StaffMember) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("staff name is required")
	}
	if strings.TrimSpace(s.Role) == "" {
		return fmt.Errorf("staff %q: role is required", s.Name)
	}
	return nil
}

func (d AdmissionData) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("patient name is required")
	}
	if d.Age <= 0 {
		return fmt.Errorf("patient age must be positive")
	}
	if strings.TrimSpace(d.Symptoms) == "" {
		return fmt.Errorf("patient symptoms are required")
	}
	if d.Seriousness < 1 || d.Seriousness > 10 {
		return fmt.Errorf("seriousness must be between 1 and 10")
	}
	return nil
}

func (c *HospitalConfig) Validate() error {
	seen := make(map[string]bool)
	for _, sec := range c.Sections {
		if err := sec.Validate(); err != nil {
			return err
		}
		if sec.ID != "" && seen[sec.ID] {
			return fmt.Errorf("duplicate section id %q", sec.ID)
		}
		seen[sec.ID] = true
	}
	seen = make(map[string]bool)
	for _, st := range c.Staff {
		if err := st.Validate(); err != nil {
			return err
		}
		if st.ID != "" && seen[st.ID] {
			return fmt.Errorf("duplicate staff id %q", st.ID)
		}
		seen[st.ID] = true
	}
	return nil
}
