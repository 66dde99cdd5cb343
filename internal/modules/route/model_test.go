package route

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultMatrix_Symmetric(t *testing.T) {
	m := DefaultMatrix()
	for _, a := range m.Stations() {
		for _, b := range m.Stations() {
			ab, err := m.Distance(a, b)
			if err != nil {
				t.Fatalf("Distance(%s,%s): %v", a, b, err)
			}
			ba, err := m.Distance(b, a)
			if err != nil {
				t.Fatalf("Distance(%s,%s): %v", b, a, err)
			}
			if ab != ba {
				t.Errorf("distance(%s,%s)=%d but distance(%s,%s)=%d", a, b, ab, b, a, ba)
			}
			if a == b && ab != 0 {
				t.Errorf("distance(%s,%s)=%d, want 0", a, a, ab)
			}
		}
	}
}

func TestDefaultMatrix_MumbaiDelhi(t *testing.T) {
	km, err := DefaultMatrix().Distance("Mumbai", "Delhi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if km != 1447 {
		t.Fatalf("distance(Mumbai,Delhi) = %d, want 1447", km)
	}
}

func TestDistance_UnknownStation(t *testing.T) {
	_, err := DefaultMatrix().Distance("Mumbai", "Pune")
	if !errors.Is(err, ErrUnknownStation) {
		t.Fatalf("expected ErrUnknownStation, got %v", err)
	}
}

func TestNewMatrix_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		stations []Station
		km       [][]int
	}{
		{name: "no stations", stations: nil, km: nil},
		{name: "row count mismatch", stations: []Station{"A", "B"}, km: [][]int{{0, 1}}},
		{name: "ragged row", stations: []Station{"A", "B"}, km: [][]int{{0, 1}, {1}}},
		{name: "non-zero diagonal", stations: []Station{"A", "B"}, km: [][]int{{3, 1}, {1, 0}}},
		{name: "asymmetric", stations: []Station{"A", "B"}, km: [][]int{{0, 1}, {2, 0}}},
		{name: "negative", stations: []Station{"A", "B"}, km: [][]int{{0, -1}, {-1, 0}}},
		{name: "duplicate station", stations: []Station{"A", "A"}, km: [][]int{{0, 1}, {1, 0}}},
		{name: "blank station", stations: []Station{"A", " "}, km: [][]int{{0, 1}, {1, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewMatrix(tt.stations, tt.km); !errors.Is(err, ErrInvalidMatrix) {
				t.Fatalf("expected ErrInvalidMatrix, got %v", err)
			}
		})
	}
}

func TestNewMatrix_CopiesInput(t *testing.T) {
	km := [][]int{{0, 7}, {7, 0}}
	m, err := NewMatrix([]Station{"A", "B"}, km)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	km[0][1] = 99
	if d, _ := m.Distance("A", "B"); d != 7 {
		t.Fatalf("matrix shares caller storage: distance = %d", d)
	}
	rows := m.Rows()
	rows[1][0] = 42
	if d, _ := m.Distance("B", "A"); d != 7 {
		t.Fatalf("Rows() leaks internal storage: distance = %d", d)
	}
}

func TestLookup_CaseInsensitive(t *testing.T) {
	m := DefaultMatrix()
	st, ok := m.Lookup("  kolkata ")
	if !ok || st != "Kolkata" {
		t.Fatalf("Lookup = %q, %v; want Kolkata, true", st, ok)
	}
	if _, ok := m.Lookup("Pune"); ok {
		t.Fatal("expected Pune to be unknown")
	}
}

func TestLoadMatrixFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "routes.json")
	body := `{"stations":["Pune","Goa"],"distances":[[0,450],[450,0]]}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	m, err := LoadMatrixFile(path)
	if err != nil {
		t.Fatalf("LoadMatrixFile: %v", err)
	}
	if d, _ := m.Distance("Goa", "Pune"); d != 450 {
		t.Fatalf("distance = %d, want 450", d)
	}

	if _, err := LoadMatrixFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
	bad := filepath.Join(dir, "bad.json")
	_ = os.WriteFile(bad, []byte(`{"stations":["A","B"],"distances":[[0,1],[2,0]]}`), 0o600)
	if _, err := LoadMatrixFile(bad); !errors.Is(err, ErrInvalidMatrix) {
		t.Fatalf("expected ErrInvalidMatrix, got %v", err)
	}
}

func TestTableRender(t *testing.T) {
	out := NewService(nil).Table().Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header + 4 rows, got %d lines:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[1], "Mumbai") || !strings.Contains(lines[1], "1447") {
		t.Errorf("unexpected Mumbai row: %q", lines[1])
	}
}
