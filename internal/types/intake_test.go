package types

import (
	"encoding/json"
	"testing"
)

func TestSkillUnmarshal_String(t *testing.T) {
	var s Skill
	if err := json.Unmarshal([]byte(`"Welding"`), &s); err != nil {
		t.Fatalf("unmarshal string skill: %v", err)
	}
	if s.Name != "Welding" || s.Proficiency != 0 {
		t.Errorf("got %+v, want Name=Welding Proficiency=0", s)
	}
}

func TestSkillUnmarshal_Object(t *testing.T) {
	var s Skill
	if err := json.Unmarshal([]byte(`{"skill_name": "CAD", "proficiency_level": 4}`), &s); err != nil {
		t.Fatalf("unmarshal object skill: %v", err)
	}
	if s.Name != "CAD" || s.Proficiency != 4 {
		t.Errorf("got %+v, want Name=CAD Proficiency=4", s)
	}
}

func TestSkillUnmarshal_Invalid(t *testing.T) {
	var s Skill
	if err := json.Unmarshal([]byte(`42`), &s); err == nil {
		t.Error("expected error for numeric skill, got nil")
	}
}

func TestSkillString(t *testing.T) {
	tests := []struct {
		name     string
		skill    Skill
		expected string
	}{
		{name: "bare skill", skill: Skill{Name: "Go"}, expected: "Go"},
		{name: "with proficiency", skill: Skill{Name: "Go", Proficiency: 3}, expected: "Go (3/5)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.skill.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestIntakeDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		intake   Intake
		expected string
	}{
		{name: "both parts", intake: Intake{FirstName: "Ava", LastName: "Osman"}, expected: "Ava Osman"},
		{name: "first only", intake: Intake{FirstName: "Ava"}, expected: "Ava"},
		{name: "empty", intake: Intake{}, expected: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.intake.DisplayName(); got != tt.expected {
				t.Errorf("DisplayName() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestIntakeSkillNames(t *testing.T) {
	in := Intake{Skills: []Skill{{Name: "Solar Design", Proficiency: 5}, {Name: "Arduino"}}}
	names := in.SkillNames()
	if len(names) != 2 || names[0] != "Solar Design" || names[1] != "Arduino" {
		t.Errorf("SkillNames() = %v", names)
	}
}

func TestIntakeValidate_ImageCap(t *testing.T) {
	in := Intake{
		Projects: []ProjectIntake{{
			Name:   "Solar Lamp",
			Images: []string{"a.png", "b.png", "c.png", "d.png"},
		}},
	}
	if err := in.Validate(); err == nil {
		t.Error("expected validation error for 4 project images")
	}
}
