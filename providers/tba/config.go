package tba

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/caarlos0/env/v11"

	"tba-stats-service/internal/metrics"
)

// Config controls how the client reaches the upstream API. AppID is the
// required X-TBA-App-Id header value; build one with AppID().
type Config struct {
	BaseURL      string        `env:"TBA_BASE_URL"`
	AppID        string        `env:"TBA_APP_ID"`
	Timeout      time.Duration `env:"TBA_HTTP_TIMEOUT"`
	DisableCache bool          `env:"TBA_DISABLE_CACHE"`

	HTTPClient *http.Client      `env:"-"`
	Logger     *slog.Logger      `env:"-"`
	Recorder   *metrics.Recorder `env:"-"`
}

// ConfigFromEnv reads client settings from the environment, leaving defaults
// in place for anything unset.
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		BaseURL: defaultBaseURL,
		Timeout: defaultHTTPTimeout,
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// AppID joins the identification fields into the header format the API
// expects: "name:description:version".
func AppID(name, description, version string) string {
	return name + ":" + description + ":" + version
}
