package level

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func sampleLevel() *Level {
	l := New()
	l.SetNumberSugarGrains(120)
	l.SetTimeToComplete(90)
	l.SetSpout(400, 560)
	l.AddStatic(100, 300, 500, 250)
	l.AddStaticWith(StaticSpec{X1: 600, Y1: 200, X2: 700, Y2: 220, Color: "green", LineWidth: 4, Friction: 0.8, Restitution: 0.1})
	l.AddBucket(300, 20, 80, 60, 40)
	l.AddBucket(600, 20, 80, 60, 25)
	return l
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// TestSaveLoadRoundTrip verifies a saved record reloads field-for-field
func TestSaveLoadRoundTrip(t *testing.T) {
	for _, name := range []string{"level1.json", "level1.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			orig := sampleLevel()

			if err := Save(path, orig); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			loaded, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}

			if !reflect.DeepEqual(orig, loaded) {
				t.Errorf("Round trip mismatch:\n saved  %+v\n loaded %+v", orig, loaded)
			}
		})
	}
}

func TestSaveEmptyLevelRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := Save(path, New()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(New(), loaded) {
		t.Errorf("Expected empty level, got %+v", loaded)
	}
}

func TestSaveZeroValueLevelRoundTrip(t *testing.T) {
	for _, name := range []string{"zero.json", "zero.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			orig := &Level{NumberSugarGrains: 3, SpoutX: 40}

			if err := Save(path, orig); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			loaded, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}

			if loaded.NumberSugarGrains != 3 || loaded.SpoutX != 40 ||
				len(loaded.Statics) != 0 || len(loaded.Buckets) != 0 {
				t.Errorf("Round trip mismatch: %+v", loaded)
			}
			if orig.Statics != nil || orig.Buckets != nil {
				t.Error("Save must not modify the saved record")
			}
		})
	}
	t.Logf("✓ Zero-value record with nil lists reloads")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "level99.json"))
	if !errors.Is(err, ErrLevelNotFound) {
		t.Fatalf("Expected ErrLevelNotFound, got %v", err)
	}
	if !IsExhausted(err) {
		t.Error("Missing level should count as exhausted sequence")
	}
}

func TestLoadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    error
	}{
		{"broken json", "l.json", `{"number_sugar_grains": 10,`, ErrLevelParse},
		{"array top level", "l.json", `[1, 2, 3]`, ErrLevelParse},
		{"empty file", "l.json", ``, ErrLevelParse},
		{"missing buckets", "l.json", `{"number_sugar_grains": 10, "statics": []}`, ErrLevelParse},
		{"missing grains", "l.json", `{"statics": [], "buckets": []}`, ErrLevelParse},
		{"string grain count", "l.json", `{"number_sugar_grains": "ten", "statics": [], "buckets": []}`, ErrInvalidConfiguration},
		{"string bucket size", "l.json", `{"number_sugar_grains": 1, "statics": [], "buckets": [{"x": 0, "y": 0, "width": "wide", "height": 5, "needed_sugar": 1}]}`, ErrInvalidConfiguration},
		{"negative grains", "l.json", `{"number_sugar_grains": -1, "statics": [], "buckets": []}`, ErrInvalidConfiguration},
		{"zero width bucket", "l.json", `{"number_sugar_grains": 1, "statics": [], "buckets": [{"x": 0, "y": 0, "width": 0, "height": 5, "needed_sugar": 1}]}`, ErrInvalidConfiguration},
		{"yaml sequence", "l.yaml", "- 1\n- 2\n", ErrLevelParse},
		{"yaml bad type", "l.yaml", "number_sugar_grains: lots\nstatics: []\nbuckets: []\n", ErrInvalidConfiguration},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, tc.file, tc.content)
			l, err := Load(path)
			if l != nil {
				t.Errorf("Expected nil level on error, got %+v", l)
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("Expected %v, got %v", tc.want, err)
			}
			if !IsExhausted(err) {
				t.Errorf("Load failure %v should count as exhausted sequence", err)
			}
		})
	}
}

func TestLoadOptionalFields(t *testing.T) {
	path := writeFile(t, "level1.json", `{
		"number_sugar_grains": 30,
		"statics": [{"x1": 0, "y1": 100, "x2": 200, "y2": 80, "color": "blue", "line_width": 3, "friction": 0.4, "restitution": 0.2}],
		"buckets": [{"x": 50, "y": 10, "width": 60, "height": 40, "needed_sugar": 12}]
	}`)

	l, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if l.SpoutX != 0 || l.SpoutY != 0 {
		t.Errorf("Expected spout to default to origin, got (%v, %v)", l.SpoutX, l.SpoutY)
	}
	if l.TimeToCompleteLevel != 0 {
		t.Errorf("Expected no time limit, got %d", l.TimeToCompleteLevel)
	}
	if len(l.Statics) != 1 || l.Statics[0].Color != "blue" {
		t.Errorf("Unexpected statics %+v", l.Statics)
	}
	if len(l.Buckets) != 1 || l.Buckets[0].NeededSugar != 12 {
		t.Errorf("Unexpected buckets %+v", l.Buckets)
	}
}

func TestSaveFailureIsReported(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "missing-dir", "level1.json"), sampleLevel())
	if !errors.Is(err, ErrPersist) {
		t.Fatalf("Expected ErrPersist, got %v", err)
	}

	if err := Save("", sampleLevel()); !errors.Is(err, ErrPersist) {
		t.Fatalf("Expected ErrPersist for empty path, got %v", err)
	}
}

func TestSaveKeepsExistingFileOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "level1.json")
	if err := Save(path, sampleLevel()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// A directory at the target path makes the final rename fail
	bad := filepath.Join(dir, "level2.json")
	if err := os.Mkdir(bad, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := Save(bad, sampleLevel()); !errors.Is(err, ErrPersist) {
		t.Errorf("Expected ErrPersist, got %v", err)
	}

	if _, err := Load(path); err != nil {
		t.Errorf("Original level should be intact: %v", err)
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		pattern string
		n       int
		want    string
	}{
		{"levels/levelX.json", 3, "levels/level3.json"},
		{"levelX.yaml", 12, "level12.yaml"},
		{"fixed.json", 1, "fixed.json"},
	}
	for _, tc := range tests {
		if got := FileName(tc.pattern, tc.n); got != tc.want {
			t.Errorf("FileName(%q, %d) = %q, want %q", tc.pattern, tc.n, got, tc.want)
		}
	}
}

func TestBuilderDefaults(t *testing.T) {
	l := New()
	l.AddStatic(1, 2, 3, 4)
	s := l.Statics[0]
	if s.Color != DefaultColor || s.LineWidth != DefaultLineWidth ||
		s.Friction != DefaultFriction || s.Restitution != DefaultRestitution {
		t.Errorf("AddStatic should apply defaults, got %+v", s)
	}
}
