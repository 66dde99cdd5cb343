// README: Route service answers station and distance queries for the other modules.
package route

import (
	"fmt"
	"strings"
)

type Service struct {
	matrix *Matrix
}

func NewService(matrix *Matrix) *Service {
	if matrix == nil {
		matrix = DefaultMatrix()
	}
	return &Service{matrix: matrix}
}

// Table is the "Display Routes" view.
type Table struct {
	Stations  []Station `json:"stations"`
	Distances [][]int   `json:"distances"`
}

func (s *Service) Table() Table {
	return Table{Stations: s.matrix.Stations(), Distances: s.matrix.Rows()}
}

func (s *Service) Stations() []Station {
	return s.matrix.Stations()
}

func (s *Service) Distance(from, to Station) (int, error) {
	return s.matrix.Distance(from, to)
}

func (s *Service) Lookup(name string) (Station, bool) {
	return s.matrix.Lookup(name)
}

// Render formats the table with right-aligned columns for text output.
func (t Table) Render() string {
	width := 8
	for _, st := range t.Stations {
		if len(st)+2 > width {
			width = len(st) + 2
		}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%-*s", width, "")
	for _, st := range t.Stations {
		fmt.Fprintf(&b, "%*s", width, st)
	}
	b.WriteString("\n")
	for i, row := range t.Distances {
		fmt.Fprintf(&b, "%-*s", width, t.Stations[i])
		for _, km := range row {
			fmt.Fprintf(&b, "%*d", width, km)
		}
		b.WriteString("\n")
	}
	return b.String()
}
