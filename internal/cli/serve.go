package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/ratiosplit/pkg/server"
)

const defaultAddr = ":8080"

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the allocation functions over HTTP",
		Long: `Serve resolve, reduce, distribute and rule as JSON endpoints:

  POST /v1/resolve     {"total":10,"edges":[{"size":3},{"ratio":2}]}
  POST /v1/reduce      {"total":2,"ratios":[1,1],"maximums":[10,10],"values":[9,3]}
  POST /v1/distribute  {"total":7,"ratios":[1,1,1]}
  POST /v1/rule        {"title":"Hi","width":20}
  GET  /healthz

The server shuts down gracefully on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printInfo(cmd.OutOrStdout(), "Serving on %s", StyleValue.Render(addr))
			srv := server.New(c.newRunner(), loggerFromContext(cmd.Context()))
			if err := srv.ListenAndServe(cmd.Context(), addr); err != nil {
				printError(cmd.OutOrStdout(), "server stopped: %v", err)
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")

	return cmd
}
