package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func useTempConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	SetPath(path)
	t.Cleanup(ResetPath)
	return path
}

func TestLoadMissingFileReturnsZeroConfig(t *testing.T) {
	useTempConfig(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if diff := cmp.Diff(&Config{}, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	useTempConfig(t)

	want := &Config{
		ZoneID:      "Z0123456789ABC",
		Region:      "us-east-1",
		Profile:     "org-management",
		RulesetPath: "/etc/zonekeeper/ruleset.yaml",
		ExportDir:   "/var/lib/zonekeeper/exports",
		Accounts: []AccountContext{
			{Name: "prod", Profile: "org-prod"},
			{Name: "staging", Profile: "org-staging"},
		},
	}

	if err := want.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "config.json")
	SetPath(path)
	t.Cleanup(ResetPath)

	cfg := &Config{ZoneID: "Z1"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file missing: %v", err)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := useTempConfig(t)
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("Load succeeded on malformed file")
	}
}
