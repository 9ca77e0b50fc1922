package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadProjectConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vesper.yaml")
	content := "target_version: v10\nno_std: true\ninput: repl\ndebug: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadProjectConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ResolvedTargetVersion() != V10 {
		t.Fatalf("target version = %v; want V10", cfg.ResolvedTargetVersion())
	}
	if !cfg.NoStd || !cfg.Debug {
		t.Fatal("no_std and debug should both be true")
	}
	if cfg.ResolvedInputMode() != REPL {
		t.Fatal("input mode should be REPL")
	}
}

func TestFindProjectConfigWalksUp(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "vesper.yaml"), []byte("debug: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	found, err := FindProjectConfig(sub)
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(root, "vesper.yaml")
	if found != want {
		t.Fatalf("found = %q; want %q", found, want)
	}
}

func TestResolvedTargetVersionDefaultsUnknown(t *testing.T) {
	cfg := &Config{}
	if cfg.ResolvedTargetVersion() != VUnknown {
		t.Fatal("empty target_version should resolve to VUnknown")
	}
}
