package config

import (
	"errors"

	"github.com/spf13/viper"
)

// ErrNoServer is returned when no endpoint can be resolved from CLI
// flags, environment variables, or the profile file.
var ErrNoServer = errors.New("no server configured. Use 'unraid config add <name>' to add a server, " +
	"or set UNRAID_URL and UNRAID_API_KEY environment variables")

// Endpoint is the effective (url, api key) pair for one invocation.
// It is never persisted.
type Endpoint struct {
	URL      string
	APIKey   string
	Insecure bool
}

// Options carries the CLI-provided values into Resolve. Empty strings
// mean "not given".
type Options struct {
	// ConfigPath overrides the profile file location; empty selects
	// DefaultPath.
	ConfigPath string

	Server   string
	URL      string
	APIKey   string
	Insecure bool
}

// Resolve merges CLI flags, UNRAID_* environment variables, and the
// profile file into a single endpoint.
//
// Priority, strictly:
//  1. Both --url and --api-key given: used verbatim, nothing else is read.
//  2. Both UNRAID_URL and UNRAID_API_KEY set: used, with an individually
//     given CLI flag overriding just that field.
//  3. The profile named by --server, else UNRAID_SERVER, else the file's
//     default, again with per-field CLI overrides.
//
// A complete environment pair short-circuits the profile file entirely.
func Resolve(opts Options) (*Endpoint, error) {
	if opts.URL != "" && opts.APIKey != "" {
		return &Endpoint{URL: opts.URL, APIKey: opts.APIKey, Insecure: opts.Insecure}, nil
	}

	env := viper.New()
	env.SetEnvPrefix("UNRAID")
	env.AutomaticEnv()

	envURL := env.GetString("url")
	envAPIKey := env.GetString("api_key")
	envServer := env.GetString("server")
	envInsecure := env.GetBool("insecure")

	if envURL != "" && envAPIKey != "" {
		return &Endpoint{
			URL:      firstNonEmpty(opts.URL, envURL),
			APIKey:   firstNonEmpty(opts.APIKey, envAPIKey),
			Insecure: opts.Insecure || envInsecure,
		}, nil
	}

	path := opts.ConfigPath
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}

	f, err := Load(path)
	if err != nil {
		return nil, err
	}

	name := firstNonEmpty(opts.Server, envServer)
	if server, ok := f.Server(name); ok {
		return &Endpoint{
			URL:      firstNonEmpty(opts.URL, server.URL),
			APIKey:   firstNonEmpty(opts.APIKey, server.APIKey),
			Insecure: opts.Insecure || envInsecure || server.Insecure,
		}, nil
	}

	return nil, ErrNoServer
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
