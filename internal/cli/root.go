package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/ratiosplit/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// The CLI logger is attached to the command context before any subcommand
// runs, so commands can use loggerFromContext. Callers that chain their own
// PersistentPreRunE must call the original one.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Ratiosplit divides integer space between weighted slots",
		Long:         `Ratiosplit splits a fixed amount of integer space (terminal cells, pixels, budget units) between slots with fixed sizes, ratios and minimums, and renders titled rules across the result.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVar(&c.jsonOutput, "json", false, "print results as JSON")

	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.reduceCommand())
	root.AddCommand(c.distributeCommand())
	root.AddCommand(c.ruleCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}
