package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/depsight/graphops/pkg/buildinfo"
)

// Execute runs the graphops CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands, configures
// logging based on the --verbose flag, and executes the command tree.
// Errors are printed by main; the core packages never print.
func Execute(ctx context.Context) error {
	var verbose bool

	cfg := loadConfig()

	root := &cobra.Command{
		Use:          "graphops",
		Short:        "graphops analyzes and rewrites dependency graph snapshots",
		Long:         `graphops is a CLI tool for analyzing directed dependency graphs: reachability, strongly-connected components, transitive-reduction-like purification, tag-based filtering and GraphViz output.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newTagsCmd(cfg))
	root.AddCommand(newSCCCmd(cfg))
	root.AddCommand(newCyclesCmd(cfg))
	root.AddCommand(newPurifyCmd(cfg))
	root.AddCommand(newFilterCmd(cfg))
	root.AddCommand(newPruneCmd(cfg))
	root.AddCommand(newDotCmd(cfg))
	root.AddCommand(newSuperGraphCmd(cfg))
	root.AddCommand(newCSVCmd(cfg))

	return root.ExecuteContext(ctx)
}
