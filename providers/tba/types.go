package tba

import (
	"encoding/json"

	"tba-stats-service/event"
)

// District pairs a district code with its display name.
type District struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// DistrictRanking is one row of a district's season standings.
type DistrictRanking struct {
	Rank        int             `json:"rank"`
	TeamKey     string          `json:"team_key"`
	PointTotal  float64         `json:"point_total"`
	RookieBonus float64         `json:"rookie_bonus,omitempty"`
	EventPoints json.RawMessage `json:"event_points,omitempty"`
}

// SeasonMatch is a match annotated with the queried team's alliance color,
// as produced by Client.TeamMatches.
type SeasonMatch struct {
	Match    event.Match
	Alliance event.AllianceColor
}

// AllianceScore returns the queried team's alliance score.
func (sm SeasonMatch) AllianceScore() int {
	return sm.Match.Alliance(sm.Alliance).Score
}

// OpponentScore returns the opposing alliance's score.
func (sm SeasonMatch) OpponentScore() int {
	return sm.Match.Alliance(sm.Alliance.Opponent()).Score
}
