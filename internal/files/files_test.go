package files

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestLoad_DetectsPNG(t *testing.T) {
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}
	path := writeTemp(t, "scan.dat", png)

	att, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if att.MIMEType != "image/png" {
		t.Errorf("expected image/png, got %q", att.MIMEType)
	}
	if att.Filename != "scan.dat" {
		t.Errorf("expected base name, got %q", att.Filename)
	}
}

func TestLoad_DetectsPDF(t *testing.T) {
	path := writeTemp(t, "paper.pdf", []byte("%PDF-1.7\n%binary"))

	att, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if att.MIMEType != "application/pdf" {
		t.Errorf("expected application/pdf, got %q", att.MIMEType)
	}
}

func TestLoad_RejectsText(t *testing.T) {
	path := writeTemp(t, "notes.txt", []byte("just some notes"))

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected rejection of plain text")
	}
	var unsupported *ErrUnsupportedType
	if !errors.As(err, &unsupported) {
		t.Errorf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestLoad_RejectsEmpty(t *testing.T) {
	path := writeTemp(t, "empty.png", nil)
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for empty file")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Quadratic Equations Q3", "Quadratic_Equations_Q3"},
		{"  a/b : c  ", "a_b_c"},
		{"...", "submission"},
		{"", "submission"},
		{"plain-title_1.2", "plain-title_1.2"},
	}
	for _, tt := range tests {
		if got := SanitizeTitle(tt.in); got != tt.want {
			t.Errorf("SanitizeTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExport_WritesTexFile(t *testing.T) {
	dir := t.TempDir()
	path, err := Export(dir, "Linear Equations", "\\documentclass{article}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(path) != "Linear_Equations.tex" {
		t.Errorf("unexpected export name: %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read exported file: %v", err)
	}
	if string(data) != "\\documentclass{article}" {
		t.Errorf("unexpected content: %q", data)
	}
}
