package prompts

import (
	"strings"
	"testing"
)

func TestGet_KnownPrompt(t *testing.T) {
	prompt, err := Get("generation.json", "portfolio-system")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if !strings.Contains(prompt, "STAR method") {
		t.Errorf("system prompt missing STAR instruction: %q", prompt)
	}
	if !strings.Contains(prompt, "{{.Goal}}") {
		t.Errorf("system prompt missing goal placeholder: %q", prompt)
	}
}

func TestGet_UnknownKey(t *testing.T) {
	if _, err := Get("generation.json", "no-such-key"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestGet_UnknownFile(t *testing.T) {
	if _, err := Get("missing.json", "portfolio-system"); err == nil {
		t.Error("expected error for unknown file")
	}
}

func TestFormat(t *testing.T) {
	result := Format("goal is '{{.Goal}}'", map[string]string{"Goal": "find a mentor"})
	if result != "goal is 'find a mentor'" {
		t.Errorf("Format() = %q", result)
	}
}
