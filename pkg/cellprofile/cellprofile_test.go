package cellprofile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ltestack/ctrlregs/pkg/cellcfg"
)

func writeProfile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadAndParams(t *testing.T) {
	path := writeProfile(t, `
name = "test-cell"
description = "unit test cell"
cell_id = 12
num_prb = 25
num_ports = 2
cyclic_prefix = "normal"
phich_length = "extended"
phich_resource = "1/2"
`)

	profile, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if profile.Name != "test-cell" {
		t.Errorf("Name = %q, want %q", profile.Name, "test-cell")
	}

	params, err := profile.Params()
	if err != nil {
		t.Fatalf("Params: %v", err)
	}
	if params.CellID != 12 || params.NumPRB != 25 || params.NumPorts != 2 {
		t.Errorf("got %+v", params)
	}
	if params.CP != cellcfg.CPNormal {
		t.Errorf("CP = %v, want Normal", params.CP)
	}
	if params.PhichLen != cellcfg.PhichExtended {
		t.Errorf("PhichLen = %v, want Extended", params.PhichLen)
	}
	if params.PhichRes != cellcfg.PhichResOneHalf {
		t.Errorf("PhichRes = %v, want 1/2", params.PhichRes)
	}
}

func TestParamsUnknownField(t *testing.T) {
	path := writeProfile(t, `
name = "bad"
cell_id = 0
num_prb = 6
num_ports = 1
cyclic_prefix = "sideways"
`)

	profile, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := profile.Params(); err == nil {
		t.Fatal("expected error for unknown cyclic_prefix")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/profile.toml"); err == nil {
		t.Fatal("expected error loading missing file")
	}
}
