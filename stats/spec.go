package stats

import (
	"errors"
	"fmt"

	"tba-stats-service/event"
)

var (
	// ErrMalformedSpec reports a statistic spec that cannot be evaluated:
	// a nil Spec, a nil Func, or an empty Path.
	ErrMalformedSpec = errors.New("malformed statistic spec")

	// ErrSingularSystem reports that the normal-equations matrix is not
	// invertible: too few qualification matches, or too few teams above the
	// participation threshold.
	ErrSingularSystem = errors.New("singular participation system")
)

// TotalStat is the statistic name reserved for the alliance's raw match score.
// It is always included in OPR results; a caller-provided spec under the same
// name takes precedence.
const TotalStat = "total"

// TotalScorePath extracts the current alliance's raw match score.
const TotalScorePath = Path("/alliances/" + AllianceToken + "/score")

// Spec defines how one statistic is extracted from a match for a given
// alliance. It is a sealed union: either a Path or a Func.
type Spec interface {
	statSpec()
}

// Path is a slash-separated extractor path, optionally using AllianceToken and
// OpponentToken placeholders. See ResolvePath for root vs breakdown-relative
// semantics.
type Path string

func (Path) statSpec() {}

// Func computes a statistic directly from the match record and the current
// alliance's color. It is the only way to combine data from both alliances in
// a single value.
type Func func(m *event.Match, alliance event.AllianceColor) (float64, error)

func (Func) statSpec() {}

// validateSpec rejects specs that could never produce a value, before any
// matrix work starts.
func validateSpec(name string, s Spec) error {
	switch spec := s.(type) {
	case Path:
		if spec == "" {
			return fmt.Errorf("%w: statistic %q has an empty path", ErrMalformedSpec, name)
		}
	case Func:
		if spec == nil {
			return fmt.Errorf("%w: statistic %q has a nil function", ErrMalformedSpec, name)
		}
	default:
		return fmt.Errorf("%w: statistic %q must be a stats.Path or stats.Func", ErrMalformedSpec, name)
	}
	return nil
}

// evalSpec produces the statistic value for one (match, alliance) row.
func evalSpec(name string, s Spec, m *event.Match, alliance event.AllianceColor) (float64, error) {
	switch spec := s.(type) {
	case Func:
		return spec(m, alliance)
	case Path:
		concrete, fromRoot := ResolvePath(string(spec), alliance)
		doc := m.ScoreBreakdown
		if fromRoot {
			doc = m.Root()
		} else {
			concrete = string(alliance) + "/" + concrete
		}
		res, ok := lookup(doc, concrete)
		if !ok {
			return 0, fmt.Errorf("statistic %q: path %q not found in match %s", name, spec, m.Key)
		}
		return res.Float(), nil
	default:
		return 0, fmt.Errorf("%w: statistic %q", ErrMalformedSpec, name)
	}
}
