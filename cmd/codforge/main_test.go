package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"--version"}, &stdout, &stderr)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(stdout.String(), "codforge") {
		t.Errorf("expected version output, got: %s", stdout.String())
	}
}

func TestRun_BadConfigFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, &stdout, &stderr)

	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestRun_UnknownProvider(t *testing.T) {
	var stdout, stderr bytes.Buffer
	db := filepath.Join(t.TempDir(), "codforge.db")
	err := run([]string{"--provider", "bogus", "--db", db}, &stdout, &stderr)

	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
	if !strings.Contains(err.Error(), "unknown provider") {
		t.Errorf("expected unknown provider error, got: %v", err)
	}
}

func TestRun_MissingAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("CODFORGE_GEMINI_API_KEY", "")

	var stdout, stderr bytes.Buffer
	db := filepath.Join(t.TempDir(), "codforge.db")
	err := run([]string{"--provider", "gemini", "--db", db}, &stdout, &stderr)

	if err == nil {
		t.Fatal("expected error for missing API key")
	}
	if !strings.Contains(err.Error(), "API key required") {
		t.Errorf("expected API key error, got: %v", err)
	}
}
