package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempIntake(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "intake.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write intake file: %v", err)
	}
	return path
}

func TestLoadIntake(t *testing.T) {
	path := writeTempIntake(t, `{
		"first_name": "Ava",
		"last_name": "Osman",
		"skills": ["Soldering", {"skill_name": "CAD", "proficiency_level": 4}],
		"projects": [{"name": "Solar Lamp"}]
	}`)

	intake, err := loadIntake(path)
	if err != nil {
		t.Fatalf("loadIntake() error: %v", err)
	}
	if got := intake.DisplayName(); got != "Ava Osman" {
		t.Errorf("DisplayName() = %q, want %q", got, "Ava Osman")
	}
	if len(intake.Skills) != 2 {
		t.Errorf("len(Skills) = %d, want 2", len(intake.Skills))
	}
}

func TestLoadIntake_MissingFile(t *testing.T) {
	if _, err := loadIntake(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("loadIntake() should fail for a missing file")
	}
}

func TestLoadIntake_InvalidJSON(t *testing.T) {
	path := writeTempIntake(t, `{not json`)
	if _, err := loadIntake(path); err == nil {
		t.Error("loadIntake() should fail for invalid JSON")
	}
}

func TestLoadIntake_RejectsTooManyImages(t *testing.T) {
	path := writeTempIntake(t, `{
		"projects": [{"name": "P", "images": ["a", "b", "c", "d"]}]
	}`)
	if _, err := loadIntake(path); err == nil {
		t.Error("loadIntake() should reject more than three project images")
	}
}
