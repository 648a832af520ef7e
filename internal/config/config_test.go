package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "devctl.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "devctl.toml"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if cfg.Compose() != DefaultComposeFile {
		t.Fatalf("expected default compose file, got %s", cfg.Compose())
	}
	if _, ok, _ := cfg.Command("shell"); ok {
		t.Fatalf("zero config must carry no overrides")
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
compose_file = "compose.dev.yml"

[actions]
shell = "uvicorn app.main:app --reload --port 8100"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Compose() != "compose.dev.yml" {
		t.Fatalf("unexpected compose file: %s", cfg.Compose())
	}

	argv, ok, err := cfg.Command("shell")
	if err != nil || !ok {
		t.Fatalf("expected shell override, ok=%v err=%v", ok, err)
	}
	want := []string{"uvicorn", "app.main:app", "--reload", "--port", "8100"}
	if !reflect.DeepEqual(argv, want) {
		t.Fatalf("expected %v, got %v", want, argv)
	}
}

func TestCommandSplitsQuotedArgs(t *testing.T) {
	path := writeConfig(t, `
[actions]
migrate = "alembic -x data='seed values' upgrade head"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	argv, ok, err := cfg.Command("migrate")
	if err != nil || !ok {
		t.Fatalf("expected migrate override, ok=%v err=%v", ok, err)
	}
	want := []string{"alembic", "-x", "data=seed values", "upgrade", "head"}
	if !reflect.DeepEqual(argv, want) {
		t.Fatalf("expected %v, got %v", want, argv)
	}
}

func TestCommandEmptyOverrideIsAnError(t *testing.T) {
	path := writeConfig(t, `
[actions]
up = "   "
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := cfg.Command("up"); err == nil {
		t.Fatalf("expected error for empty override")
	}
}

func TestLoadRejectsMalformedToml(t *testing.T) {
	path := writeConfig(t, `compose_file = [broken`)
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for malformed config")
	}
}
