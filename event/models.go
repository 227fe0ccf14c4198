package event

// Team represents a competing team as returned by the upstream API. Identity is
// the canonical key; the rest is descriptive metadata.
type Team struct {
	Key        string `json:"key"`
	TeamNumber int    `json:"team_number"`
	Nickname   string `json:"nickname,omitempty"`
	Name       string `json:"name,omitempty"`
	Locality   string `json:"locality,omitempty"`
	Region     string `json:"region,omitempty"`
	Country    string `json:"country_name,omitempty"`
	RookieYear int    `json:"rookie_year,omitempty"`
}

// Info holds the basic descriptive block for an event.
type Info struct {
	Key       string `json:"key"`
	Name      string `json:"name,omitempty"`
	ShortName string `json:"short_name,omitempty"`
	EventCode string `json:"event_code,omitempty"`
	Year      int    `json:"year,omitempty"`
	Location  string `json:"location,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	Official  bool   `json:"official,omitempty"`
}

// AwardRecipient is a single (team, person) pair on an award's recipient list.
type AwardRecipient struct {
	TeamNumber int    `json:"team_number"`
	Awardee    string `json:"awardee,omitempty"`
}

// Award is a single award handed out at an event.
type Award struct {
	Name          string           `json:"name"`
	AwardType     int              `json:"award_type,omitempty"`
	EventKey      string           `json:"event_key,omitempty"`
	Year          int              `json:"year,omitempty"`
	RecipientList []AwardRecipient `json:"recipient_list"`
}

// TeamMatch describes one match from a single team's perspective.
type TeamMatch struct {
	Match    Match
	Alliance AllianceColor
	Score    int
	OppScore int
}

// TeamAward pairs an award with the individual recipient, if any.
type TeamAward struct {
	Award   Award
	Awardee string
}
