package project_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"safenum/internal/project"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), project.ConfigFileName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	cfg, err := project.Load(filepath.Join(t.TempDir(), project.ConfigFileName))
	if err != nil {
		t.Fatalf("Load missing file: %v", err)
	}
	if got := cfg.ResultType("int64"); got != "int64" {
		t.Fatalf("ResultType fallback = %q, want int64", got)
	}
	if got := cfg.Color("auto"); got != "auto" {
		t.Fatalf("Color fallback = %q, want auto", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "[defaults]\nresult_type = \"uint32\"\ncolor = \"off\"\n")
	cfg, err := project.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.ResultType("int64"); got != "uint32" {
		t.Fatalf("ResultType = %q, want uint32", got)
	}
	if got := cfg.Color("auto"); got != "off" {
		t.Fatalf("Color = %q, want off", got)
	}
}

func TestLoadMissingSectionYieldsDefaults(t *testing.T) {
	path := writeConfig(t, "# no sections here\n")
	cfg, err := project.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := cfg.ResultType("int16"); got != "int16" {
		t.Fatalf("ResultType = %q, want fallback", got)
	}
}

func TestLoadRejectsUnknownResultType(t *testing.T) {
	path := writeConfig(t, "[defaults]\nresult_type = \"int128\"\n")
	_, err := project.Load(path)
	if !errors.Is(err, project.ErrBadResultType) {
		t.Fatalf("Load error = %v, want ErrBadResultType", err)
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := writeConfig(t, "[defaults\nresult_type = \"int8\"\n")
	if _, err := project.Load(path); err == nil {
		t.Fatalf("Load succeeded on malformed TOML")
	}
}
