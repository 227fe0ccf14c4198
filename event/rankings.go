package event

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// TeamRankingRow returns a team's raw ranking row. The second column of each
// data row holds the team number. ok is false when the team has no row.
func (e *Event) TeamRankingRow(id TeamID) ([]any, bool, error) {
	number, err := teamNumberOf(id)
	if err != nil {
		return nil, false, err
	}
	want := strconv.Itoa(number)

	for _, row := range e.rankings {
		if len(row) < 2 {
			continue
		}
		if cellString(row[1]) == want {
			return row, true, nil
		}
	}
	return nil, false, nil
}

// TeamRanking returns a team's ranking row keyed by the table's header names.
func (e *Event) TeamRanking(id TeamID) (map[string]any, bool, error) {
	row, ok, err := e.TeamRankingRow(id)
	if err != nil || !ok {
		return nil, ok, err
	}
	if len(e.rankings) == 0 {
		return nil, false, nil
	}

	headers := e.rankings[0]
	out := make(map[string]any, len(headers))
	for col, header := range headers {
		if col >= len(row) {
			break
		}
		out[cellString(header)] = row[col]
	}
	return out, true, nil
}

// cellString renders a ranking cell for comparison. Upstream tables mix
// strings and numbers; whole floats print without a decimal point.
func cellString(v any) string {
	switch c := v.(type) {
	case string:
		return c
	case float64:
		if c == math.Trunc(c) {
			return strconv.FormatInt(int64(c), 10)
		}
		return strconv.FormatFloat(c, 'f', -1, 64)
	case int:
		return strconv.Itoa(c)
	case json.Number:
		return c.String()
	default:
		return fmt.Sprint(v)
	}
}
