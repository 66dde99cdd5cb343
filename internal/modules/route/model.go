// README: Stations and the symmetric distance table between them.
package route

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

type Station string

var (
	ErrUnknownStation = errors.New("unknown station")
	ErrInvalidMatrix  = errors.New("invalid distance matrix")
)

var DefaultStations = []Station{"Mumbai", "Delhi", "Chennai", "Kolkata"}

var DefaultDistances = [][]int{
	{0, 1447, 1384, 1690},
	{1447, 0, 1412, 2180},
	{1384, 1412, 0, 2000},
	{1690, 2180, 2000, 0},
}

// Matrix is immutable once built.
type Matrix struct {
	stations []Station
	index    map[Station]int
	km       [][]int
}

// NewMatrix copies its inputs and rejects tables that are not square,
// symmetric, zero on the diagonal and non-negative.
func NewMatrix(stations []Station, km [][]int) (*Matrix, error) {
	if len(stations) == 0 {
		return nil, fmt.Errorf("%w: no stations", ErrInvalidMatrix)
	}
	if len(km) != len(stations) {
		return nil, fmt.Errorf("%w: %d rows for %d stations", ErrInvalidMatrix, len(km), len(stations))
	}

	m := &Matrix{
		stations: make([]Station, len(stations)),
		index:    make(map[Station]int, len(stations)),
		km:       make([][]int, len(stations)),
	}
	for i, s := range stations {
		s = Station(strings.TrimSpace(string(s)))
		if s == "" {
			return nil, fmt.Errorf("%w: empty station name at %d", ErrInvalidMatrix, i)
		}
		if _, dup := m.index[s]; dup {
			return nil, fmt.Errorf("%w: duplicate station %q", ErrInvalidMatrix, s)
		}
		m.stations[i] = s
		m.index[s] = i
	}
	for i, row := range km {
		if len(row) != len(stations) {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidMatrix, i, len(row), len(stations))
		}
		m.km[i] = append([]int(nil), row...)
	}
	for i := range m.km {
		if m.km[i][i] != 0 {
			return nil, fmt.Errorf("%w: distance(%s,%s) = %d, want 0", ErrInvalidMatrix, m.stations[i], m.stations[i], m.km[i][i])
		}
		for j := i + 1; j < len(m.km); j++ {
			if m.km[i][j] < 0 {
				return nil, fmt.Errorf("%w: negative distance %s-%s", ErrInvalidMatrix, m.stations[i], m.stations[j])
			}
			if m.km[i][j] != m.km[j][i] {
				return nil, fmt.Errorf("%w: distance(%s,%s)=%d but distance(%s,%s)=%d", ErrInvalidMatrix,
					m.stations[i], m.stations[j], m.km[i][j], m.stations[j], m.stations[i], m.km[j][i])
			}
		}
	}
	return m, nil
}

func DefaultMatrix() *Matrix {
	m, err := NewMatrix(DefaultStations, DefaultDistances)
	if err != nil {
		panic(err)
	}
	return m
}

type matrixFile struct {
	Stations  []Station `json:"stations"`
	Distances [][]int   `json:"distances"`
}

// LoadMatrixFile reads {"stations": [...], "distances": [[...]]}.
func LoadMatrixFile(path string) (*Matrix, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read routes file %q: %w", path, err)
	}
	var f matrixFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode routes file %q: %w", path, err)
	}
	return NewMatrix(f.Stations, f.Distances)
}

func (m *Matrix) Distance(from, to Station) (int, error) {
	i, ok := m.index[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownStation, from)
	}
	j, ok := m.index[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownStation, to)
	}
	return m.km[i][j], nil
}

// Lookup resolves a station name case-insensitively.
func (m *Matrix) Lookup(name string) (Station, bool) {
	name = strings.TrimSpace(name)
	if _, ok := m.index[Station(name)]; ok {
		return Station(name), true
	}
	for _, s := range m.stations {
		if strings.EqualFold(string(s), name) {
			return s, true
		}
	}
	return "", false
}

func (m *Matrix) Stations() []Station {
	return append([]Station(nil), m.stations...)
}

func (m *Matrix) Rows() [][]int {
	out := make([][]int, len(m.km))
	for i, row := range m.km {
		out[i] = append([]int(nil), row...)
	}
	return out
}
