// Package types provides type definitions for structured data used throughout the portfolio-engine system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Skill represents a single skill, optionally annotated with a proficiency level.
// Intake payloads carry skills either as bare strings or as objects with a
// proficiency rating, so unmarshalling accepts both shapes.
type Skill struct {
	Name        string `json:"skill_name"`
	Proficiency int    `json:"proficiency_level,omitempty" validate:"omitempty,min=1,max=5"`
}

// UnmarshalJSON accepts either a plain string ("Go") or an object
// ({"skill_name": "Go", "proficiency_level": 4}).
func (s *Skill) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		s.Name = name
		s.Proficiency = 0
		return nil
	}

	type skillAlias Skill
	var obj skillAlias
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("skill must be a string or an object: %w", err)
	}
	*s = Skill(obj)
	return nil
}

// MarshalJSON emits the object form when a proficiency is set, otherwise a bare string.
func (s Skill) MarshalJSON() ([]byte, error) {
	if s.Proficiency == 0 {
		return json.Marshal(s.Name)
	}
	type skillAlias Skill
	return json.Marshal(skillAlias(s))
}

// String renders the skill for prompt text, annotating proficiency inline when present.
func (s Skill) String() string {
	if s.Proficiency > 0 {
		return fmt.Sprintf("%s (%d/5)", s.Name, s.Proficiency)
	}
	return s.Name
}

// ProjectIntake represents one project as supplied by the maker, before any rewriting.
type ProjectIntake struct {
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Role          string   `json:"user_role,omitempty"`
	IsTeamProject bool     `json:"is_team_project,omitempty"`
	ToolsUsed     []string `json:"toolsUsed,omitempty"`
	Skills        []string `json:"skills,omitempty"`
	Images        []string `json:"images,omitempty" validate:"max=3"`
}

// Intake represents the raw maker profile collected from the user.
// It is the input to both generator strategies and is never mutated by them.
type Intake struct {
	FirstName      string          `json:"first_name,omitempty"`
	LastName       string          `json:"last_name,omitempty"`
	College        string          `json:"college,omitempty"`
	MajorField     string          `json:"major_field,omitempty"`
	PassionSector  string          `json:"passion_sector,omitempty"`
	Skills         []Skill         `json:"skills,omitempty" validate:"dive"`
	Languages      []string        `json:"languages,omitempty"`
	Certifications []string        `json:"certifications,omitempty"`
	Summary        string          `json:"summary,omitempty"`
	Projects       []ProjectIntake `json:"projects,omitempty" validate:"dive"`
}

// DisplayName returns the maker's full name, or an empty string if neither part is set.
func (in *Intake) DisplayName() string {
	return strings.TrimSpace(strings.TrimSpace(in.FirstName) + " " + strings.TrimSpace(in.LastName))
}

// SkillNames returns just the skill names, preserving order.
func (in *Intake) SkillNames() []string {
	if len(in.Skills) == 0 {
		return nil
	}
	names := make([]string, 0, len(in.Skills))
	for _, s := range in.Skills {
		if s.Name != "" {
			names = append(names, s.Name)
		}
	}
	return names
}

// Validate checks intake field constraints (proficiency range, image caps).
func (in *Intake) Validate() error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("invalid intake: %w", err)
	}
	return nil
}
