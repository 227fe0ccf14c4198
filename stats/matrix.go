package stats

import (
	"gonum.org/v1/gonum/mat"

	"tba-stats-service/event"
)

// minAppearances is the participation count a team must exceed for its column
// to stay in the design matrix. Columns at or below it are too sparse to give
// a numerically stable regression.
const minAppearances = 8

// ParticipationMatrix is the 0/1 design matrix for an event's qualification
// matches: one row per alliance-in-match (red then blue, in canonical match
// order), one column per retained team in the event's team ordering.
type ParticipationMatrix struct {
	rows  int
	a     *mat.Dense
	teams []event.Team
}

// NewParticipationMatrix builds the participation matrix for an event and
// drops every column whose participation count is not strictly greater than
// minAppearances.
func NewParticipationMatrix(ev *event.Event) *ParticipationMatrix {
	quals := ev.QualMatches()
	teams := ev.Teams()
	rows := 2 * len(quals)
	if rows == 0 || len(teams) == 0 {
		return &ParticipationMatrix{rows: rows}
	}

	full := mat.NewDense(rows, len(teams), nil)
	counts := make([]int, len(teams))
	for i := range quals {
		for j, team := range teams {
			if in(quals[i].Alliances.Red.Teams, team.Key) {
				full.Set(2*i, j, 1)
				counts[j]++
			}
			if in(quals[i].Alliances.Blue.Teams, team.Key) {
				full.Set(2*i+1, j, 1)
				counts[j]++
			}
		}
	}

	var retained []int
	for j, count := range counts {
		if count > minAppearances {
			retained = append(retained, j)
		}
	}
	if len(retained) == 0 {
		return &ParticipationMatrix{rows: rows}
	}

	a := mat.NewDense(rows, len(retained), nil)
	kept := make([]event.Team, len(retained))
	for col, j := range retained {
		kept[col] = teams[j]
		for r := 0; r < rows; r++ {
			a.Set(r, col, full.At(r, j))
		}
	}

	return &ParticipationMatrix{rows: rows, a: a, teams: kept}
}

// Rows returns the row count: twice the qualification match count.
func (p *ParticipationMatrix) Rows() int { return p.rows }

// Teams returns the retained teams in column order.
func (p *ParticipationMatrix) Teams() []event.Team {
	return append([]event.Team(nil), p.teams...)
}

// Matrix exposes the filtered design matrix, or nil when no columns survived.
func (p *ParticipationMatrix) Matrix() mat.Matrix {
	if p.a == nil {
		return nil
	}
	return p.a
}

func in(teams []string, key string) bool {
	for _, t := range teams {
		if t == key {
			return true
		}
	}
	return false
}
