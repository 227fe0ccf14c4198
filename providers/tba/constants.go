package tba

import "time"

const (
	sourceName  = "tba"
	appIDHeader = "X-TBA-App-Id"

	defaultBaseURL     = "https://www.thebluealliance.com/api/v2"
	defaultHTTPTimeout = 10 * time.Second

	errorBodyLimit = 512
)
