package event

import "encoding/json"

// AllianceColor names one of the two alliances in a match.
type AllianceColor string

const (
	AllianceRed  AllianceColor = "red"
	AllianceBlue AllianceColor = "blue"
)

// Opponent returns the other alliance's color.
func (c AllianceColor) Opponent() AllianceColor {
	if c == AllianceRed {
		return AllianceBlue
	}
	return AllianceRed
}

// CompLevel is the competition level of a match.
type CompLevel string

const (
	CompLevelQual         CompLevel = "qm"
	CompLevelOctofinal    CompLevel = "ef"
	CompLevelQuarterfinal CompLevel = "qf"
	CompLevelSemifinal    CompLevel = "sf"
	CompLevelFinal        CompLevel = "f"
)

// levelOffsets spaces the levels far enough apart that set and match numbers
// never cross a level boundary.
var levelOffsets = map[CompLevel]int{
	CompLevelQual:         0,
	CompLevelOctofinal:    1000,
	CompLevelQuarterfinal: 2000,
	CompLevelSemifinal:    3000,
	CompLevelFinal:        4000,
}

// Alliance is one side of a match: an ordered team list and its score.
type Alliance struct {
	Teams []string `json:"teams"`
	Score int      `json:"score"`
}

// Alliances holds both sides of a match.
type Alliances struct {
	Red  Alliance `json:"red"`
	Blue Alliance `json:"blue"`
}

// Match is a single match record. Immutable once decoded.
type Match struct {
	Key            string          `json:"key"`
	EventKey       string          `json:"event_key,omitempty"`
	CompLevel      CompLevel       `json:"comp_level"`
	SetNumber      int             `json:"set_number"`
	MatchNumber    int             `json:"match_number"`
	Alliances      Alliances       `json:"alliances"`
	ScoreBreakdown json.RawMessage `json:"score_breakdown,omitempty"`

	raw json.RawMessage
}

// UnmarshalJSON keeps the original payload alongside the decoded fields so
// root-relative statistic paths can be resolved against it later.
func (m *Match) UnmarshalJSON(data []byte) error {
	type matchAlias Match
	var a matchAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*m = Match(a)
	m.raw = append(json.RawMessage(nil), data...)
	return nil
}

// Root returns the match as a JSON document. The original payload is returned
// when the match was decoded from one; otherwise the struct is marshaled.
func (m *Match) Root() []byte {
	if m.raw != nil {
		return m.raw
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil
	}
	return b
}

// Alliance returns the alliance of the given color.
func (m *Match) Alliance(color AllianceColor) Alliance {
	if color == AllianceBlue {
		return m.Alliances.Blue
	}
	return m.Alliances.Red
}

// AllianceOf reports which alliance, if any, lists the given canonical team key.
func (m *Match) AllianceOf(teamKey string) (AllianceColor, bool) {
	for _, t := range m.Alliances.Red.Teams {
		if t == teamKey {
			return AllianceRed, true
		}
	}
	for _, t := range m.Alliances.Blue.Teams {
		if t == teamKey {
			return AllianceBlue, true
		}
	}
	return "", false
}

// SortKey computes the canonical chronological ordering key: qualification
// matches first by match number, then playoff levels grouped by set and match
// number within each level.
func (m *Match) SortKey() int {
	key := levelOffsets[m.CompLevel]
	if m.CompLevel != CompLevelQual {
		key += 100 * m.SetNumber
	}
	return key + m.MatchNumber
}
