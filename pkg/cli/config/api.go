package config

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/taskflow/memberctl/pkg/service/taskflow"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

const (
	defaultAPIURL = "http://localhost:8001/api"
	defaultWebURL = "http://localhost:8000"
)

// Profile is the YAML file given by --config
type Profile struct {
	APIURL         string   `yaml:"api_url"`
	AuthURL        string   `yaml:"auth_url"`
	WebURL         string   `yaml:"web_url"`
	SuccessMarkers []string `yaml:"success_markers"`
}

// LoadProfile loads a profile from a YAML file
func LoadProfile(path string) (*Profile, error) {
	if path == "" {
		return nil, goerr.New("profile path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "profile not found", goerr.V("path", path))
		}
		return nil, goerr.Wrap(err, "failed to read profile", goerr.V("path", path))
	}

	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, goerr.Wrap(err, "failed to parse YAML profile", goerr.V("path", path))
	}
	return &profile, nil
}

// API holds the backend endpoints and request settings
type API struct {
	ConfigFile     string
	APIURL         string
	AuthURL        string
	WebURL         string
	SuccessMarkers []string
	Timeout        time.Duration
}

// Flags returns CLI flags for API configuration
func (a *API) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "YAML profile with endpoints and success markers",
			Category:    "API",
			Sources:     cli.EnvVars("MEMBERCTL_CONFIG"),
			Destination: &a.ConfigFile,
		},
		&cli.StringFlag{
			Name:        "api-url",
			Usage:       "Base URL of the REST API (default " + defaultAPIURL + ")",
			Category:    "API",
			Sources:     cli.EnvVars("MEMBERCTL_API_URL"),
			Destination: &a.APIURL,
		},
		&cli.StringFlag{
			Name:        "auth-url",
			Usage:       "Base URL of the auth endpoints (default <api-url>/auth)",
			Category:    "API",
			Sources:     cli.EnvVars("MEMBERCTL_AUTH_URL"),
			Destination: &a.AuthURL,
		},
		&cli.StringFlag{
			Name:        "web-url",
			Usage:       "Base URL of the web front (default " + defaultWebURL + ")",
			Category:    "API",
			Sources:     cli.EnvVars("MEMBERCTL_WEB_URL"),
			Destination: &a.WebURL,
		},
		&cli.StringSliceFlag{
			Name:        "success-marker",
			Usage:       "Message fragment that marks a successful member change (repeatable)",
			Category:    "API",
			Sources:     cli.EnvVars("MEMBERCTL_SUCCESS_MARKERS"),
			Destination: &a.SuccessMarkers,
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "Time limit of a command, 0 for none",
			Category:    "API",
			Value:       0,
			Sources:     cli.EnvVars("MEMBERCTL_TIMEOUT"),
			Destination: &a.Timeout,
		},
	}
}

// Resolve fills settings not given by flags from the profile, then from
// defaults
func (a *API) Resolve() error {
	if a.ConfigFile != "" {
		profile, err := LoadProfile(a.ConfigFile)
		if err != nil {
			return err
		}
		a.APIURL = firstNonEmpty(a.APIURL, profile.APIURL)
		a.AuthURL = firstNonEmpty(a.AuthURL, profile.AuthURL)
		a.WebURL = firstNonEmpty(a.WebURL, profile.WebURL)
		if len(a.SuccessMarkers) == 0 {
			a.SuccessMarkers = profile.SuccessMarkers
		}
	}

	a.APIURL = firstNonEmpty(a.APIURL, defaultAPIURL)
	a.AuthURL = firstNonEmpty(a.AuthURL, strings.TrimRight(a.APIURL, "/")+"/auth")
	a.WebURL = firstNonEmpty(a.WebURL, defaultWebURL)
	return a.Validate()
}

// Configure creates the backend client. jar is shared with the cookie
// credential store.
func (a *API) Configure(jar http.CookieJar) (*taskflow.Client, error) {
	return taskflow.New(taskflow.Endpoints{
		API:  a.APIURL,
		Auth: a.AuthURL,
		Web:  a.WebURL,
	}, jar)
}

// LogValue returns structured log value
func (a API) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("config", a.ConfigFile),
		slog.String("api_url", a.APIURL),
		slog.String("auth_url", a.AuthURL),
		slog.String("web_url", a.WebURL),
		slog.Any("success_markers", a.SuccessMarkers),
		slog.Duration("timeout", a.Timeout),
	)
}

// Validate validates the API configuration
func (a *API) Validate() error {
	for name, v := range map[string]string{"api-url": a.APIURL, "auth-url": a.AuthURL, "web-url": a.WebURL} {
		if !strings.HasPrefix(v, "http://") && !strings.HasPrefix(v, "https://") {
			return goerr.New("endpoint must be an http(s) URL", goerr.V("flag", name), goerr.V("value", v))
		}
	}
	if a.Timeout < 0 {
		return goerr.New("timeout must not be negative", goerr.V("timeout", a.Timeout))
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
