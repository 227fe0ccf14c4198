// Package stats derives per-team contribution ratings (OPR) from an event's
// qualification matches by solving the participation-matrix least-squares
// system for each requested statistic.
package stats

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"tba-stats-service/event"
)

// OPR solves, for every retained team and every requested statistic, the
// overdetermined system "each alliance's statistic equals the sum of its three
// teams' contributions" via the normal equations (AᵗA)x = Aᵗb.
//
// The TotalStat statistic (the alliance's raw match score) is always included.
// The result maps team key -> statistic name -> contribution; it is
// all-or-nothing, never partial.
func OPR(ev *event.Event, specs map[string]Spec) (map[string]map[string]float64, error) {
	merged := make(map[string]Spec, len(specs)+1)
	for name, s := range specs {
		if err := validateSpec(name, s); err != nil {
			return nil, err
		}
		merged[name] = s
	}
	if _, ok := merged[TotalStat]; !ok {
		merged[TotalStat] = TotalScorePath
	}

	names := make([]string, 0, len(merged))
	for name := range merged {
		names = append(names, name)
	}
	sort.Strings(names)

	pm := NewParticipationMatrix(ev)
	if pm.a == nil {
		return nil, fmt.Errorf("%w: event %s has no teams above the participation threshold", ErrSingularSystem, ev.Key())
	}

	scores, err := scoreMatrix(ev, names, merged, pm.rows)
	if err != nil {
		return nil, err
	}

	// AᵗA is symmetric positive definite exactly when A has full column
	// rank, so a failed Cholesky factorization is the singular case.
	var ata mat.SymDense
	ata.SymOuterK(1, pm.a.T())
	var chol mat.Cholesky
	if !chol.Factorize(&ata) {
		return nil, fmt.Errorf("%w: event %s", ErrSingularSystem, ev.Key())
	}

	result := make(map[string]map[string]float64, len(pm.teams))
	for _, team := range pm.teams {
		result[team.Key] = make(map[string]float64, len(names))
	}

	for j, name := range names {
		col := mat.Col(nil, j, scores)
		var atb mat.VecDense
		atb.MulVec(pm.a.T(), mat.NewVecDense(len(col), col))

		var x mat.VecDense
		if err := chol.SolveVecTo(&x, &atb); err != nil {
			return nil, fmt.Errorf("%w: statistic %q: %v", ErrSingularSystem, name, err)
		}
		for i, team := range pm.teams {
			result[team.Key][name] = x.AtVec(i)
		}
	}

	return result, nil
}

// scoreMatrix evaluates every statistic for every alliance-match row, in the
// same row order as the participation matrix.
func scoreMatrix(ev *event.Event, names []string, specs map[string]Spec, rows int) (*mat.Dense, error) {
	scores := mat.NewDense(rows, len(names), nil)
	quals := ev.QualMatches()
	r := 0
	for i := range quals {
		for _, alliance := range []event.AllianceColor{event.AllianceRed, event.AllianceBlue} {
			for j, name := range names {
				v, err := evalSpec(name, specs[name], &quals[i], alliance)
				if err != nil {
					return nil, err
				}
				scores.Set(r, j, v)
			}
			r++
		}
	}
	return scores, nil
}
