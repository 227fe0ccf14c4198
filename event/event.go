// Package event models a single competition event: its teams, matches, awards
// and rankings, normalized from upstream API payloads and immutable after
// construction.
package event

import (
	"errors"
	"sort"
)

// ErrMissingKey reports that neither the info block nor an override supplied
// the event key.
var ErrMissingKey = errors.New("event key missing")

// Round selects which portion of the schedule a team-match query covers.
type Round int

const (
	RoundAll Round = iota
	RoundQualification
	RoundPlayoffs
)

// Event owns the normalized data for one event. Matches are sorted once at
// construction and never re-sorted.
type Event struct {
	key      string
	info     Info
	teams    []Team
	matches  []Match
	awards   []Award
	rankings [][]any
}

// Option adjusts Event construction.
type Option func(*buildOptions)

type buildOptions struct {
	key         string
	keepNoShows bool
}

// WithKey overrides the event key embedded in the info block.
func WithKey(key string) Option {
	return func(o *buildOptions) { o.key = key }
}

// KeepNoShows disables the default removal of teams that appear in no match.
// OPR solving requires the filtered team set; keeping no-shows makes the
// participation matrix singular.
func KeepNoShows() Option {
	return func(o *buildOptions) { o.keepNoShows = true }
}

// New builds an Event from raw payloads. Teams absent from every match's
// alliance lists are dropped unless KeepNoShows is given.
func New(info Info, teams []Team, matches []Match, awards []Award, rankings [][]any, opts ...Option) (*Event, error) {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}

	key := o.key
	if key == "" {
		key = info.Key
	}
	if key == "" {
		return nil, ErrMissingKey
	}

	kept := teams
	if !o.keepNoShows {
		kept = make([]Team, 0, len(teams))
		for _, team := range teams {
			if playsIn(team.Key, matches) {
				kept = append(kept, team)
			}
		}
	}

	sorted := make([]Match, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SortKey() < sorted[j].SortKey()
	})

	return &Event{
		key:      key,
		info:     info,
		teams:    append([]Team(nil), kept...),
		matches:  sorted,
		awards:   append([]Award(nil), awards...),
		rankings: rankings,
	}, nil
}

func playsIn(teamKey string, matches []Match) bool {
	for i := range matches {
		if _, ok := matches[i].AllianceOf(teamKey); ok {
			return true
		}
	}
	return false
}

// Key returns the event key, e.g. "2016chcmp".
func (e *Event) Key() string { return e.key }

// Info returns the event's descriptive block.
func (e *Event) Info() Info { return e.info }

// Teams returns the event's teams in their construction order.
func (e *Event) Teams() []Team {
	return append([]Team(nil), e.teams...)
}

// Matches returns every match in canonical order.
func (e *Event) Matches() []Match {
	return append([]Match(nil), e.matches...)
}

// Awards returns the awards handed out at this event.
func (e *Event) Awards() []Award {
	return append([]Award(nil), e.awards...)
}

// Rankings returns the ranking table: a header row followed by data rows.
func (e *Event) Rankings() [][]any { return e.rankings }

// Match looks up a match by its within-event key, e.g. "qm12" or "sf1m2".
func (e *Event) Match(shortKey string) (Match, bool) {
	full := e.key + "_" + shortKey
	for i := range e.matches {
		if e.matches[i].Key == full {
			return e.matches[i], true
		}
	}
	return Match{}, false
}

// QualMatches returns the qualification matches in canonical order.
func (e *Event) QualMatches() []Match {
	return e.matchesWhere(func(m *Match) bool { return m.CompLevel == CompLevelQual })
}

// PlayoffMatches returns the elimination matches in canonical order.
func (e *Event) PlayoffMatches() []Match {
	return e.matchesWhere(func(m *Match) bool { return m.CompLevel != CompLevelQual })
}

func (e *Event) matchesWhere(keep func(*Match) bool) []Match {
	var out []Match
	for i := range e.matches {
		if keep(&e.matches[i]) {
			out = append(out, e.matches[i])
		}
	}
	return out
}

// TeamMatches lists the matches a team played in, each annotated with the
// team's alliance color and both scores.
func (e *Event) TeamMatches(id TeamID, round Round) ([]TeamMatch, error) {
	key, err := CanonicalTeamKey(id)
	if err != nil {
		return nil, err
	}

	pool := e.matches
	switch round {
	case RoundQualification:
		pool = e.QualMatches()
	case RoundPlayoffs:
		pool = e.PlayoffMatches()
	}

	var out []TeamMatch
	for i := range pool {
		color, ok := pool[i].AllianceOf(key)
		if !ok {
			continue
		}
		out = append(out, TeamMatch{
			Match:    pool[i],
			Alliance: color,
			Score:    pool[i].Alliance(color).Score,
			OppScore: pool[i].Alliance(color.Opponent()).Score,
		})
	}
	return out, nil
}

// TeamAwards lists the awards received by a team at this event.
func (e *Event) TeamAwards(id TeamID) ([]TeamAward, error) {
	number, err := teamNumberOf(id)
	if err != nil {
		return nil, err
	}

	var out []TeamAward
	for _, award := range e.awards {
		for _, recipient := range award.RecipientList {
			if recipient.TeamNumber == number {
				out = append(out, TeamAward{Award: award, Awardee: recipient.Awardee})
			}
		}
	}
	return out, nil
}
