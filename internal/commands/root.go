package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/unraid-tools/unraid-cli/internal/config"
	"github.com/unraid-tools/unraid-cli/internal/logger"
	"github.com/unraid-tools/unraid-cli/internal/version"
	"github.com/unraid-tools/unraid-cli/pkg/unraid/client"
)

var (
	cfgFile      string
	flagServer   string
	flagURL      string
	flagAPIKey   string
	flagInsecure bool
	flagLogLevel string

	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "unraid",
	Short: "CLI client for the Unraid API",
	Long: `unraid talks to an Unraid server's GraphQL API.

Server profiles are stored locally; one invocation resolves a single
endpoint from CLI flags, UNRAID_* environment variables, and the
profile file, then performs the requested operation.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = logger.New(flagLogLevel)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "profile file (default: <user config dir>/unraid/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "", "server name from config to use (env: UNRAID_SERVER)")
	rootCmd.PersistentFlags().StringVar(&flagURL, "url", "", "server URL, overrides config (env: UNRAID_URL)")
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "API key, overrides config (env: UNRAID_API_KEY)")
	rootCmd.PersistentFlags().BoolVar(&flagInsecure, "insecure", false, "accept self-signed TLS certificates (env: UNRAID_INSECURE)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(dockerCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "%s" .Version}}
`)
}

// configPath returns the profile file in use for this invocation.
func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return config.DefaultPath()
}

// apiClient resolves the endpoint for this invocation and builds a
// client for it.
func apiClient() (*client.Client, error) {
	endpoint, err := config.Resolve(config.Options{
		ConfigPath: cfgFile,
		Server:     flagServer,
		URL:        flagURL,
		APIKey:     flagAPIKey,
		Insecure:   flagInsecure,
	})
	if err != nil {
		return nil, err
	}

	opts := []client.Option{client.WithLogger(log)}
	if endpoint.Insecure {
		opts = append(opts, client.WithInsecureTLS())
	}
	return client.New(endpoint.URL, endpoint.APIKey, opts...)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		fmt.Println(info.String())

		if cmd.Flag("verbose").Changed {
			fmt.Printf("\nDetails:\n")
			fmt.Printf("  Version:    %s\n", info.Version)
			fmt.Printf("  Git Commit: %s\n", info.GitCommit)
			fmt.Printf("  Built:      %s\n", info.BuildTime)
			fmt.Printf("  Go Version: %s\n", info.GoVersion)
			fmt.Printf("  Platform:   %s\n", info.Platform)
		}
	},
}

func init() {
	versionCmd.Flags().BoolP("verbose", "v", false, "verbose version output")
}
