package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unraid-tools/unraid-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage server profiles",
}

var configAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a server profile",
	Long: `Add a named server profile to the local configuration.

The first profile added becomes the default server.

Examples:
  unraid config add tower --url https://192.168.1.100 --api-key abc123
  unraid config add backup --url https://192.168.1.101 --api-key def456 --insecure`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigAdd,
}

var configRemoveCmd = &cobra.Command{
	Use:   "remove [name]",
	Short: "Remove a server profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigRemove,
}

var configDefaultCmd = &cobra.Command{
	Use:   "default [name]",
	Short: "Set the default server",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigDefault,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured servers",
	RunE:  runConfigList,
}

var (
	addURL      string
	addAPIKey   string
	addInsecure bool
)

func init() {
	configAddCmd.Flags().StringVar(&addURL, "url", "", "server URL (e.g. https://192.168.1.100)")
	configAddCmd.Flags().StringVar(&addAPIKey, "api-key", "", "API key for authentication")
	configAddCmd.Flags().BoolVar(&addInsecure, "insecure", false, "accept self-signed TLS certificates for this server")
	_ = configAddCmd.MarkFlagRequired("url")     //nolint:errcheck
	_ = configAddCmd.MarkFlagRequired("api-key") //nolint:errcheck

	configCmd.AddCommand(configAddCmd)
	configCmd.AddCommand(configRemoveCmd)
	configCmd.AddCommand(configDefaultCmd)
	configCmd.AddCommand(configListCmd)
}

func runConfigAdd(cmd *cobra.Command, args []string) error {
	name := args[0]

	path, err := configPath()
	if err != nil {
		return err
	}
	f, err := config.Load(path)
	if err != nil {
		return err
	}

	isFirst := len(f.Servers) == 0
	if err := f.AddServer(name, config.Server{URL: addURL, APIKey: addAPIKey, Insecure: addInsecure}); err != nil {
		return err
	}
	if isFirst {
		f.Default = name
	}

	if err := f.Save(path); err != nil {
		return err
	}

	fmt.Printf("Server '%s' added successfully.\n", name)
	if isFirst {
		fmt.Println("Set as default server.")
	}
	return nil
}

func runConfigRemove(cmd *cobra.Command, args []string) error {
	name := args[0]

	path, err := configPath()
	if err != nil {
		return err
	}
	f, err := config.Load(path)
	if err != nil {
		return err
	}

	if !f.RemoveServer(name) {
		fmt.Printf("Server '%s' not found.\n", name)
		return nil
	}
	if err := f.Save(path); err != nil {
		return err
	}

	fmt.Printf("Server '%s' removed successfully.\n", name)
	return nil
}

func runConfigDefault(cmd *cobra.Command, args []string) error {
	name := args[0]

	path, err := configPath()
	if err != nil {
		return err
	}
	f, err := config.Load(path)
	if err != nil {
		return err
	}

	if err := f.SetDefault(name); err != nil {
		return err
	}
	if err := f.Save(path); err != nil {
		return err
	}

	fmt.Printf("Default server set to '%s'.\n", name)
	return nil
}

func runConfigList(cmd *cobra.Command, args []string) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	f, err := config.Load(path)
	if err != nil {
		return err
	}

	if len(f.Servers) == 0 {
		fmt.Println("No servers configured.")
		fmt.Println("Use 'unraid config add <name> --url <url> --api-key <key>' to add a server.")
		return nil
	}

	fmt.Println("Configured servers:")
	fmt.Println()
	for name, server := range f.Servers {
		marker := ""
		if f.Default == name {
			marker = " (default)"
		}
		fmt.Printf("  %s%s\n", name, marker)
		fmt.Printf("    URL: %s\n", server.URL)
		fmt.Printf("    API Key: %s...\n", maskKey(server.APIKey))
		if server.Insecure {
			fmt.Println("    Insecure: accepts self-signed certificates")
		}
		fmt.Println()
	}
	return nil
}

// maskKey shows only a short prefix of an API key.
func maskKey(key string) string {
	if len(key) > 8 {
		return key[:8]
	}
	return key
}
