package event_test

import (
	"errors"
	"testing"

	"tba-stats-service/event"
	"tba-stats-service/internal/testutil"
)

func TestNewRequiresAKey(t *testing.T) {
	if _, err := event.New(event.Info{}, nil, nil, nil, nil); !errors.Is(err, event.ErrMissingKey) {
		t.Fatalf("expected ErrMissingKey, got %v", err)
	}

	ev, err := event.New(event.Info{}, nil, nil, nil, nil, event.WithKey("2016test"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Key() != "2016test" {
		t.Fatalf("expected key override, got %s", ev.Key())
	}
}

func TestNewPrefersKeyOverride(t *testing.T) {
	ev, err := event.New(event.Info{Key: "2016other"}, nil, nil, nil, nil, event.WithKey("2016test"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Key() != "2016test" {
		t.Fatalf("expected override to win, got %s", ev.Key())
	}
}

func TestNewFiltersNoShowTeams(t *testing.T) {
	teams := testutil.SyntheticTeams()
	noShow := event.Team{Key: "frc999", TeamNumber: 999}
	all := append(append([]event.Team(nil), teams...), noShow)

	played := testutil.SyntheticEvent(t, [9]int{10, 10, 10, 10, 10, 10, 10, 10, 10})

	filtered, err := event.New(event.Info{Key: "2016test"}, all, played.Matches(), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(filtered.Teams()) != len(teams) {
		t.Fatalf("expected %d teams after filtering, got %d", len(teams), len(filtered.Teams()))
	}
	for _, team := range filtered.Teams() {
		if team.Key == "frc999" {
			t.Fatalf("no-show team survived filtering")
		}
	}

	unfiltered, err := event.New(event.Info{Key: "2016test"}, all, played.Matches(), nil, nil, event.KeepNoShows())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(unfiltered.Teams()) != len(all) {
		t.Fatalf("expected %d teams with KeepNoShows, got %d", len(all), len(unfiltered.Teams()))
	}
}

func TestMatchLookupUsesShortKey(t *testing.T) {
	ev := testutil.SyntheticEvent(t, [9]int{10, 11, 12, 13, 14, 15, 16, 17, 18})

	m, ok := ev.Match("qm3")
	if !ok {
		t.Fatalf("expected qm3 to exist")
	}
	if m.Key != "2016test_qm3" || m.MatchNumber != 3 {
		t.Fatalf("unexpected match: %+v", m)
	}

	if _, ok := ev.Match("an invalid key"); ok {
		t.Fatalf("expected lookup miss for invalid key")
	}
}

func TestQualAndPlayoffPartition(t *testing.T) {
	ev := testutil.SyntheticEvent(t, [9]int{10, 10, 10, 10, 10, 10, 10, 10, 10})

	quals := ev.QualMatches()
	playoffs := ev.PlayoffMatches()
	if len(quals) != 18 {
		t.Fatalf("expected 18 qual matches, got %d", len(quals))
	}
	if len(playoffs) != 2 {
		t.Fatalf("expected 2 playoff matches, got %d", len(playoffs))
	}
	if len(quals)+len(playoffs) != len(ev.Matches()) {
		t.Fatalf("partition should cover every match")
	}
	for _, m := range quals {
		if m.CompLevel != event.CompLevelQual {
			t.Fatalf("non-qual match in qual partition: %s", m.Key)
		}
	}
}

func TestMatchesAreSortedCanonically(t *testing.T) {
	ev := testutil.SyntheticEvent(t, [9]int{10, 10, 10, 10, 10, 10, 10, 10, 10})

	matches := ev.Matches()
	for i := 1; i < len(matches); i++ {
		if matches[i-1].SortKey() > matches[i].SortKey() {
			t.Fatalf("matches out of order at %d: %s after %s", i, matches[i].Key, matches[i-1].Key)
		}
	}
	if matches[len(matches)-1].CompLevel != event.CompLevelFinal {
		t.Fatalf("final should sort last, got %s", matches[len(matches)-1].Key)
	}
}

func TestTeamMatchesAnnotatesAllianceAndScores(t *testing.T) {
	contribs := [9]int{10, 11, 12, 13, 14, 15, 16, 17, 18}
	ev := testutil.SyntheticEvent(t, contribs)

	// Team 101 (index 0) plays red in qm1 with alliance {101,102,103}.
	matches, err := ev.TeamMatches(event.TeamNumber(101), event.RoundQualification)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("expected qualification matches for frc101")
	}
	first := matches[0]
	if first.Match.Key != "2016test_qm1" {
		t.Fatalf("expected qm1 first, got %s", first.Match.Key)
	}
	if first.Alliance != event.AllianceRed {
		t.Fatalf("expected red alliance, got %s", first.Alliance)
	}
	wantScore := contribs[0] + contribs[1] + contribs[2]
	wantOpp := contribs[4] + contribs[5] + contribs[6]
	if first.Score != wantScore || first.OppScore != wantOpp {
		t.Fatalf("expected scores %d/%d, got %d/%d", wantScore, wantOpp, first.Score, first.OppScore)
	}

	playoffs, err := ev.TeamMatches(event.TeamKey("101"), event.RoundPlayoffs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, tm := range playoffs {
		if tm.Match.CompLevel == event.CompLevelQual {
			t.Fatalf("qual match in playoff filter: %s", tm.Match.Key)
		}
	}

	all, err := ev.TeamMatches(event.TeamNumber(101), event.RoundAll)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != len(matches)+len(playoffs) {
		t.Fatalf("unfiltered list should cover both rounds")
	}

	if _, err := ev.TeamMatches(event.TeamKey("not a team"), event.RoundAll); !errors.Is(err, event.ErrInvalidTeamFormat) {
		t.Fatalf("expected ErrInvalidTeamFormat, got %v", err)
	}
}

func TestTeamAwardsMatchesRecipientNumbers(t *testing.T) {
	ev := testutil.SyntheticEvent(t, [9]int{10, 10, 10, 10, 10, 10, 10, 10, 10})

	awards, err := ev.TeamAwards(event.TeamNumber(102))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(awards) != 1 {
		t.Fatalf("expected one award for 102, got %d", len(awards))
	}
	if awards[0].Award.Name != "Dean's List Finalist Award" || awards[0].Awardee != "Alex Example" {
		t.Fatalf("unexpected award: %+v", awards[0])
	}

	none, err := ev.TeamAwards(event.TeamNumber(109))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no awards for 109, got %d", len(none))
	}
}

func TestTeamRankingRowAndMap(t *testing.T) {
	ev := testutil.SyntheticEvent(t, [9]int{10, 10, 10, 10, 10, 10, 10, 10, 10})

	row, ok, err := ev.TeamRankingRow(event.TeamKey("frc103"))
	if err != nil || !ok {
		t.Fatalf("expected ranking row, ok=%v err=%v", ok, err)
	}
	if row[0] != "3" {
		t.Fatalf("expected rank 3 for frc103, got %v", row[0])
	}

	ranking, ok, err := ev.TeamRanking(event.TeamNumber(103))
	if err != nil || !ok {
		t.Fatalf("expected ranking map, ok=%v err=%v", ok, err)
	}
	if ranking["Rank"] != "3" || ranking["Team"] != "103" || ranking["Played"] != "18" {
		t.Fatalf("unexpected ranking map: %+v", ranking)
	}

	if _, ok, err := ev.TeamRanking(event.TeamNumber(999)); err != nil || ok {
		t.Fatalf("expected absence for unknown team, ok=%v err=%v", ok, err)
	}
}
