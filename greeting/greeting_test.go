package greeting

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Giorgio68/morning-greetings/contacts"
)

func TestGenerateContainsName(t *testing.T) {
	gen := New()
	for range 20 {
		msg, err := gen.Generate("Eve")
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if msg == "" {
			t.Fatalf("Generate() returned empty message")
		}
		if !strings.Contains(msg, "Eve") {
			t.Fatalf("Generate() = %q, missing name", msg)
		}
	}
}

func TestGenerateEmptyName(t *testing.T) {
	_, err := New().Generate("")
	var fieldErr *contacts.FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("Generate(\"\") error = %v, want *FieldError", err)
	}
}

func TestGenerateUsesIntNSource(t *testing.T) {
	gen := NewWithIntN(func(int) int { return 2 }, nil)
	msg, err := gen.Generate("Giorgio")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if msg != "Good day, Giorgio" {
		t.Fatalf("Generate() = %q, want template 2", msg)
	}
}

func TestGenerateCoversAllTemplates(t *testing.T) {
	seen := map[string]bool{}
	for i := range defaultTemplates {
		gen := NewWithIntN(func(int) int { return i }, nil)
		msg, err := gen.Generate("X")
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		seen[msg] = true
	}
	if len(seen) != len(defaultTemplates) {
		t.Fatalf("distinct messages = %d, want %d", len(seen), len(defaultTemplates))
	}
}

func TestValidateTemplates(t *testing.T) {
	if err := ValidateTemplates(DefaultTemplates()); err != nil {
		t.Fatalf("ValidateTemplates(default) error = %v", err)
	}
	if err := ValidateTemplates(nil); err == nil {
		t.Fatalf("ValidateTemplates(nil) = nil, want error")
	}
	if err := ValidateTemplates([]string{"no placeholder here"}); err == nil {
		t.Fatalf("ValidateTemplates(missing placeholder) = nil, want error")
	}
}

func TestLoadTemplates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yaml")
	body := "- \"Rise and shine, {name}!\"\n- \"Morning, {name} :)\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	templates, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("LoadTemplates() error = %v", err)
	}
	if len(templates) != 2 {
		t.Fatalf("len = %d, want 2", len(templates))
	}

	gen := NewWithIntN(func(int) int { return 0 }, templates)
	msg, err := gen.Generate("Eve")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if msg != "Rise and shine, Eve!" {
		t.Fatalf("Generate() = %q", msg)
	}
}

func TestLoadTemplatesRejectsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.yaml")
	if err := os.WriteFile(path, []byte("- \"no placeholder\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := LoadTemplates(path); err == nil {
		t.Fatalf("LoadTemplates() = nil, want error")
	}
}
