package storage

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/san-kum/orbitplot/internal/trajectory"
)

func TestStoreSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	meta := RunMetadata{
		Preset:         "earth_moon_iss",
		Integration:    "leapfrog",
		TimeSpan:       86400,
		TimeResolution: 60,
		Bodies:         []string{"Earth", "Moon", "ISS"},
		Samples:        1440,
		Metrics:        map[string]float64{"energy_drift": 1e-9},
	}
	body := "Simulation Run Results\n"

	runID, err := st.Save(meta, strings.NewReader(body))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if !strings.HasPrefix(runID, "earth_moon_iss_") {
		t.Errorf("unexpected run id %q", runID)
	}

	got, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if got.Integration != "leapfrog" {
		t.Errorf("expected integration 'leapfrog', got '%s'", got.Integration)
	}
	if len(got.Bodies) != 3 || got.Bodies[2] != "ISS" {
		t.Errorf("unexpected bodies %v", got.Bodies)
	}
	if got.Metrics["energy_drift"] != 1e-9 {
		t.Errorf("expected drift 1e-9, got %g", got.Metrics["energy_drift"])
	}

	data, err := os.ReadFile(st.RunPath(runID))
	if err != nil {
		t.Fatalf("run file missing: %v", err)
	}
	if string(data) != body {
		t.Errorf("run file = %q, want %q", data, body)
	}
}

func TestStoreList(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "runs"))

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list on missing dir failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, name := range []string{"old", "new"} {
		meta := RunMetadata{Preset: name, Timestamp: base.Add(time.Duration(i) * time.Hour)}
		if _, err := st.Save(meta, strings.NewReader("")); err != nil {
			t.Fatalf("save %s: %v", name, err)
		}
	}
	if err := os.MkdirAll(filepath.Join(st.baseDir, "junk"), 0755); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Preset != "new" {
		t.Errorf("expected newest first, got %s", runs[0].Preset)
	}
}

func TestStoreLoadMissing(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope"); err == nil {
		t.Error("expected error for missing run")
	}
}

func TestExportJSON(t *testing.T) {
	table := trajectory.Table{
		{0, 1},
		{1, 2},
		{3, math.NaN()},
		{5, 6},
	}
	run := trajectory.Group(table)
	run.SetNames([]string{"Earth"})

	var buf bytes.Buffer
	if err := WriteJSON(&buf, NewExport("run.txt", "AU", run)); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var decoded struct {
		Steps  int `json:"steps"`
		Bodies []struct {
			Name string     `json:"name"`
			X    []float64  `json:"x"`
			Y    []*float64 `json:"y"`
		} `json:"bodies"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, buf.String())
	}

	if decoded.Steps != 2 {
		t.Errorf("expected 2 steps, got %d", decoded.Steps)
	}
	if len(decoded.Bodies) != 1 || decoded.Bodies[0].Name != "Earth" {
		t.Fatalf("unexpected bodies %+v", decoded.Bodies)
	}
	if decoded.Bodies[0].X[1] != 2 {
		t.Errorf("expected x[1] = 2, got %g", decoded.Bodies[0].X[1])
	}
	if decoded.Bodies[0].Y[1] != nil {
		t.Errorf("expected NaN to export as null, got %v", *decoded.Bodies[0].Y[1])
	}

	path := filepath.Join(t.TempDir(), "run.json")
	if err := ExportJSON(path, NewExport("run.txt", "AU", run)); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Errorf("expected non-empty json file, got %v", err)
	}
}
