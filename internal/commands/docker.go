package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/unraid-tools/unraid-cli/models"
	"github.com/unraid-tools/unraid-cli/pkg/unraid/client"
)

var dockerCmd = &cobra.Command{
	Use:   "docker",
	Short: "Docker container management",
}

var dockerListCmd = &cobra.Command{
	Use:     "list-containers",
	Aliases: []string{"ls"},
	Short:   "List Docker containers",
	Long: `List Docker containers on the server.

By default only running containers are shown.

Examples:
  unraid docker list-containers
  unraid docker ls --all
  unraid docker ls --all --format json`,
	RunE: runDockerList,
}

var dockerStartCmd = &cobra.Command{
	Use:   "start [name]",
	Short: "Start a container",
	Args:  cobra.ExactArgs(1),
	RunE:  containerAction("start", "started", (*client.Client).StartContainer),
}

var dockerStopCmd = &cobra.Command{
	Use:   "stop [name]",
	Short: "Stop a container",
	Args:  cobra.ExactArgs(1),
	RunE:  containerAction("stop", "stopped", (*client.Client).StopContainer),
}

var dockerRestartCmd = &cobra.Command{
	Use:   "restart [name]",
	Short: "Restart a container (stop, then start)",
	Args:  cobra.ExactArgs(1),
	RunE:  containerAction("restart", "restarted", (*client.Client).RestartContainer),
}

var dockerUpdateCmd = &cobra.Command{
	Use:   "update [name]",
	Short: "Update a container to the latest image",
	Args:  cobra.ExactArgs(1),
	RunE:  containerAction("update", "updated", (*client.Client).UpdateContainer),
}

var (
	listAll    bool
	listFormat string
)

func init() {
	dockerListCmd.Flags().BoolVarP(&listAll, "all", "a", false, "show all containers (default: only running)")
	dockerListCmd.Flags().StringVar(&listFormat, "format", "table", "output format (table, json)")

	dockerCmd.AddCommand(dockerListCmd)
	dockerCmd.AddCommand(dockerStartCmd)
	dockerCmd.AddCommand(dockerStopCmd)
	dockerCmd.AddCommand(dockerRestartCmd)
	dockerCmd.AddCommand(dockerUpdateCmd)
}

func runDockerList(cmd *cobra.Command, args []string) error {
	api, err := apiClient()
	if err != nil {
		return err
	}

	containers, err := api.Containers(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list containers: %w", err)
	}

	if !listAll {
		running := containers[:0]
		for _, c := range containers {
			if c.State == models.StateRunning {
				running = append(running, c)
			}
		}
		containers = running
	}

	if listFormat == "json" {
		return printJSON(containers)
	}

	if len(containers) == 0 {
		if listAll {
			fmt.Println("No containers found.")
		} else {
			fmt.Println("No running containers found. Use --all to show all containers.")
		}
		return nil
	}

	renderContainers(os.Stdout, containers)
	return nil
}

// containerAction builds a RunE that resolves a container name to its
// id and applies one state-changing operation to it.
func containerAction(verb, done string, op func(*client.Client, context.Context, string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		name := args[0]

		api, err := apiClient()
		if err != nil {
			return err
		}

		ctx := context.Background()
		containers, err := api.Containers(ctx)
		if err != nil {
			return fmt.Errorf("failed to list containers: %w", err)
		}

		id, err := client.ResolveContainerID(containers, name)
		if err != nil {
			return err
		}

		if err := op(api, ctx, id); err != nil {
			return fmt.Errorf("failed to %s container %q: %w", verb, name, err)
		}

		fmt.Printf("Container '%s' %s.\n", name, done)
		return nil
	}
}

func renderContainers(w io.Writer, containers []models.Container) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tIMAGE\tSTATE\tSTATUS")
	for _, c := range containers {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			truncate(c.DisplayName(), 29),
			truncate(c.Image, 39),
			c.State.Display(),
			truncate(c.Status, 19),
		)
	}
	tw.Flush()
	fmt.Fprintf(w, "\nTotal: %d containers\n", len(containers))
}

// truncate shortens s to at most maxLen characters, ellipsis included.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
