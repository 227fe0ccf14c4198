// Package tba is the concrete client for The Blue Alliance competition-results
// API: event fetching for the core model plus the thin per-team and district
// accessors.
package tba

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"tba-stats-service/event"
	"tba-stats-service/internal/metrics"
	"tba-stats-service/providers"
)

// Client fetches competition data from the API and decodes it into the event
// model. It implements providers.Source.
type Client struct {
	baseURL    string
	appID      string
	httpClient httpDoer
	logger     *slog.Logger
	recorder   *metrics.Recorder
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		appID:      cfg.AppID,
		httpClient: resolveHTTPClient(cfg),
		logger:     cfg.Logger,
		recorder:   cfg.Recorder,
	}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

// get performs one API request and decodes the JSON response into v.
func (c *Client) get(ctx context.Context, path string, v any) error {
	if c.appID == "" {
		return fmt.Errorf("tba: %w: set Config.AppID via AppID()", providers.ErrMissingCredentials)
	}

	url := c.baseURL + "/" + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set(appIDHeader, c.appID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.recorder.RecordFetch(sourceName, time.Since(start), err)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return &providers.StatusError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	return json.NewDecoder(resp.Body).Decode(v)
}

// FetchEvent retrieves all five event payloads and builds the Event. No-show
// teams are filtered unless the caller passes event.KeepNoShows().
func (c *Client) FetchEvent(ctx context.Context, key string, opts ...event.Option) (*event.Event, error) {
	base := "event/" + key

	var info event.Info
	if err := c.get(ctx, base, &info); err != nil {
		return nil, err
	}
	var teams []event.Team
	if err := c.get(ctx, base+"/teams", &teams); err != nil {
		return nil, err
	}
	var matches []event.Match
	if err := c.get(ctx, base+"/matches", &matches); err != nil {
		return nil, err
	}
	var awards []event.Award
	if err := c.get(ctx, base+"/awards", &awards); err != nil {
		return nil, err
	}
	var rankings [][]any
	if err := c.get(ctx, base+"/rankings", &rankings); err != nil {
		return nil, err
	}

	opts = append([]event.Option{event.WithKey(key)}, opts...)
	return event.New(info, teams, matches, awards, rankings, opts...)
}

// Team fetches the info record for a single team.
func (c *Client) Team(ctx context.Context, id event.TeamID) (event.Team, error) {
	key, err := event.CanonicalTeamKey(id)
	if err != nil {
		return event.Team{}, err
	}
	var team event.Team
	if err := c.get(ctx, "team/"+key, &team); err != nil {
		return event.Team{}, err
	}
	return team, nil
}

// TeamEvents fetches the events attended by a team in a given year.
func (c *Client) TeamEvents(ctx context.Context, id event.TeamID, year int) ([]event.Info, error) {
	key, err := event.CanonicalTeamKey(id)
	if err != nil {
		return nil, err
	}
	var infos []event.Info
	if err := c.get(ctx, "team/"+key+"/"+strconv.Itoa(year)+"/events", &infos); err != nil {
		return nil, err
	}
	return infos, nil
}

// TeamMatches aggregates every match a team played across its events in a
// year, each annotated with the team's alliance color. A failed per-event
// fetch aborts the aggregation and propagates, naming the event.
func (c *Client) TeamMatches(ctx context.Context, id event.TeamID, year int) ([]SeasonMatch, error) {
	key, err := event.CanonicalTeamKey(id)
	if err != nil {
		return nil, err
	}
	infos, err := c.TeamEvents(ctx, id, year)
	if err != nil {
		return nil, err
	}

	var out []SeasonMatch
	for _, info := range infos {
		var matches []event.Match
		if err := c.get(ctx, "team/"+key+"/event/"+info.Key+"/matches", &matches); err != nil {
			return nil, fmt.Errorf("event %s: %w", info.Key, err)
		}
		for _, m := range matches {
			color, ok := m.AllianceOf(key)
			if !ok {
				continue
			}
			out = append(out, SeasonMatch{Match: m, Alliance: color})
		}
	}
	return out, nil
}

// Match fetches a single match by its full key, e.g. "2016vabla_qm28".
func (c *Client) Match(ctx context.Context, matchKey string) (event.Match, error) {
	var m event.Match
	if err := c.get(ctx, "match/"+matchKey, &m); err != nil {
		return event.Match{}, err
	}
	return m, nil
}

// Districts fetches the active districts for a year as a code-to-name map.
func (c *Client) Districts(ctx context.Context, year int) (map[string]string, error) {
	var districts []District
	if err := c.get(ctx, "districts/"+strconv.Itoa(year), &districts); err != nil {
		return nil, err
	}
	out := make(map[string]string, len(districts))
	for _, d := range districts {
		out[d.Key] = d.Name
	}
	return out, nil
}

// DistrictEvents fetches the events for a district in a year.
func (c *Client) DistrictEvents(ctx context.Context, code string, year int) ([]event.Info, error) {
	var infos []event.Info
	if err := c.get(ctx, "district/"+code+"/"+strconv.Itoa(year)+"/events", &infos); err != nil {
		return nil, err
	}
	return infos, nil
}

// DistrictRankings fetches a district's season standings, sorted by total
// points upstream.
func (c *Client) DistrictRankings(ctx context.Context, code string, year int) ([]DistrictRanking, error) {
	var rankings []DistrictRanking
	if err := c.get(ctx, "district/"+code+"/"+strconv.Itoa(year)+"/rankings", &rankings); err != nil {
		return nil, err
	}
	return rankings, nil
}

// DistrictTeamRanking returns one team's district standing. ok is false when
// the team has no row.
func (c *Client) DistrictTeamRanking(ctx context.Context, code string, year int, id event.TeamID) (DistrictRanking, bool, error) {
	key, err := event.CanonicalTeamKey(id)
	if err != nil {
		return DistrictRanking{}, false, err
	}
	rankings, err := c.DistrictRankings(ctx, code, year)
	if err != nil {
		return DistrictRanking{}, false, err
	}
	for _, row := range rankings {
		if row.TeamKey == key {
			return row, true, nil
		}
	}
	return DistrictRanking{}, false, nil
}

// DistrictTeams fetches the teams registered in a district for a year.
func (c *Client) DistrictTeams(ctx context.Context, code string, year int) ([]event.Team, error) {
	var teams []event.Team
	if err := c.get(ctx, "district/"+code+"/"+strconv.Itoa(year)+"/teams", &teams); err != nil {
		return nil, err
	}
	return teams, nil
}
