// Package testutil builds deterministic events for tests: a nine-team
// schedule whose participation matrix has full column rank and whose scores
// are exact sums of known per-team contributions, so least-squares solves
// recover the inputs exactly.
package testutil

import (
	"fmt"
	"strconv"
	"testing"

	"tba-stats-service/event"
)

// SyntheticEventKey is the key of the event built by SyntheticEvent.
const SyntheticEventKey = "2016test"

// qualSchedule is one cycle of alliance assignments over team indices 0-8.
// The red triples span all nine columns, so stacking any number of cycles
// keeps the participation matrix at full column rank. Each cycle gives every
// team at least five appearances; SyntheticEvent plays two cycles so every
// team clears the retention threshold.
var qualSchedule = [][2][3]int{
	{{0, 1, 2}, {4, 5, 6}},
	{{0, 1, 3}, {5, 6, 7}},
	{{0, 1, 4}, {6, 7, 8}},
	{{0, 1, 5}, {7, 8, 2}},
	{{0, 1, 6}, {8, 2, 3}},
	{{0, 1, 7}, {2, 3, 4}},
	{{0, 1, 8}, {3, 4, 5}},
	{{0, 2, 3}, {4, 5, 7}},
	{{1, 2, 3}, {4, 6, 8}},
}

// SyntheticTeams returns the nine fixture teams, numbered 101-109.
func SyntheticTeams() []event.Team {
	teams := make([]event.Team, 9)
	for i := range teams {
		number := 101 + i
		teams[i] = event.Team{
			Key:        "frc" + strconv.Itoa(number),
			TeamNumber: number,
			Nickname:   "Team " + strconv.Itoa(number),
		}
	}
	return teams
}

// SyntheticEvent builds an event with 18 qualification matches (two schedule
// cycles) plus two playoff matches. Alliance scores are exact sums of the
// given per-team contributions; each alliance's score breakdown carries
// teleopPoints (half the score) and towerEndStrength (8 minus a tenth of the
// opposing alliance's contribution sum).
func SyntheticEvent(tb testing.TB, contribs [9]int) *event.Event {
	tb.Helper()

	teams := SyntheticTeams()
	var matches []event.Match
	for cycle := 0; cycle < 2; cycle++ {
		for i, pair := range qualSchedule {
			n := cycle*len(qualSchedule) + i + 1
			matches = append(matches, qualMatch(n, pair[0], pair[1], contribs, teams))
		}
	}
	matches = append(matches,
		playoffMatch(event.CompLevelSemifinal, 1, 1, [3]int{0, 1, 2}, [3]int{3, 4, 5}, 40, 55, teams),
		playoffMatch(event.CompLevelFinal, 1, 1, [3]int{3, 4, 5}, [3]int{6, 7, 8}, 61, 48, teams),
	)

	awards := []event.Award{
		{
			Name:     "Regional Chairman's Award",
			EventKey: SyntheticEventKey,
			RecipientList: []event.AwardRecipient{
				{TeamNumber: teams[0].TeamNumber},
			},
		},
		{
			Name:     "Dean's List Finalist Award",
			EventKey: SyntheticEventKey,
			RecipientList: []event.AwardRecipient{
				{TeamNumber: teams[1].TeamNumber, Awardee: "Alex Example"},
			},
		},
	}

	rankings := [][]any{{"Rank", "Team", "Played"}}
	for i, team := range teams {
		rankings = append(rankings, []any{
			strconv.Itoa(i + 1),
			strconv.Itoa(team.TeamNumber),
			"18",
		})
	}

	ev, err := event.New(
		event.Info{Key: SyntheticEventKey, Name: "Synthetic Test Event", Year: 2016},
		teams, matches, awards, rankings,
	)
	if err != nil {
		tb.Fatalf("building synthetic event: %v", err)
	}
	return ev
}

// SmallEvent builds an event with too few qualification matches for any team
// to clear the participation threshold.
func SmallEvent(tb testing.TB) *event.Event {
	tb.Helper()

	teams := SyntheticTeams()
	contribs := [9]int{10, 10, 10, 10, 10, 10, 10, 10, 10}
	var matches []event.Match
	for i, pair := range qualSchedule[:3] {
		matches = append(matches, qualMatch(i+1, pair[0], pair[1], contribs, teams))
	}

	ev, err := event.New(
		event.Info{Key: "2016tiny", Name: "Tiny Event", Year: 2016},
		teams, matches, nil, nil,
	)
	if err != nil {
		tb.Fatalf("building small event: %v", err)
	}
	return ev
}

func qualMatch(number int, red, blue [3]int, contribs [9]int, teams []event.Team) event.Match {
	redScore := allianceSum(red, contribs)
	blueScore := allianceSum(blue, contribs)

	breakdown := fmt.Sprintf(
		`{"red":{"teleopPoints":%s,"towerEndStrength":%s},"blue":{"teleopPoints":%s,"towerEndStrength":%s}}`,
		half(redScore), tower(blueScore),
		half(blueScore), tower(redScore),
	)

	return event.Match{
		Key:            fmt.Sprintf("%s_qm%d", SyntheticEventKey, number),
		EventKey:       SyntheticEventKey,
		CompLevel:      event.CompLevelQual,
		MatchNumber:    number,
		Alliances:      alliances(red, blue, redScore, blueScore, teams),
		ScoreBreakdown: []byte(breakdown),
	}
}

func playoffMatch(level event.CompLevel, set, number int, red, blue [3]int, redScore, blueScore int, teams []event.Team) event.Match {
	return event.Match{
		Key:         fmt.Sprintf("%s_%s%dm%d", SyntheticEventKey, level, set, number),
		EventKey:    SyntheticEventKey,
		CompLevel:   level,
		SetNumber:   set,
		MatchNumber: number,
		Alliances:   alliances(red, blue, redScore, blueScore, teams),
	}
}

func alliances(red, blue [3]int, redScore, blueScore int, teams []event.Team) event.Alliances {
	return event.Alliances{
		Red:  event.Alliance{Teams: allianceKeys(red, teams), Score: redScore},
		Blue: event.Alliance{Teams: allianceKeys(blue, teams), Score: blueScore},
	}
}

func allianceKeys(indices [3]int, teams []event.Team) []string {
	keys := make([]string, len(indices))
	for i, idx := range indices {
		keys[i] = teams[idx].Key
	}
	return keys
}

func allianceSum(indices [3]int, contribs [9]int) int {
	sum := 0
	for _, idx := range indices {
		sum += contribs[idx]
	}
	return sum
}

func half(score int) string {
	return strconv.FormatFloat(float64(score)/2, 'f', -1, 64)
}

// tower encodes the opposing alliance's strength so that
// 8 - towerEndStrength recovers a tenth of that alliance's contribution sum.
func tower(oppScore int) string {
	return strconv.FormatFloat(8-float64(oppScore)/10, 'f', -1, 64)
}
