package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ratiosplit/pkg/errors"
	rsio "github.com/matzehuels/ratiosplit/pkg/io"
	"github.com/matzehuels/ratiosplit/pkg/pipeline"
)

// outputOpts holds the output flags shared by the allocation commands.
type outputOpts struct {
	output string // JSON result file
}

func (o *outputOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "also write the JSON result to this file")
}

// resolveOpts holds the command-line flags for the resolve command.
type resolveOpts struct {
	outputOpts
	total  int      // space to divide; falls back to the layout, then the terminal
	edges  []string // --edge specs
	layout string   // layout file
	save   string   // write the edges back out as a layout file
}

// resolveCommand creates the resolve command.
func (c *CLI) resolveCommand() *cobra.Command {
	var opts resolveOpts

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Divide a total between fixed and flexible edges",
		Long: `Divide a total between edges. Fixed edges get exactly their size; the
rest is shared by ratio, and flexible edges that would fall below their
minimum are pinned to it first.

Edges come from --edge flags, a layout file (-f), or both (file first):

  ratiosplit resolve --total 80 --edge size=20 --edge ratio=3,min=10,name=main --edge ratio=1
  ratiosplit resolve -f layout.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runResolve(cmd, &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.total, "total", "t", 0, "space to divide (default: layout total, then terminal width)")
	cmd.Flags().StringArrayVarP(&opts.edges, "edge", "e", nil, "edge spec: size=N or ratio=N[,min=N][,name=S] (repeatable)")
	cmd.Flags().StringVarP(&opts.layout, "file", "f", "", "layout file (.toml, .yaml, .json)")
	cmd.Flags().StringVar(&opts.save, "save", "", "save the edges as a layout file")
	opts.register(cmd)

	return cmd
}

func (c *CLI) runResolve(cmd *cobra.Command, opts *resolveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	layout := &rsio.Layout{}
	if opts.layout != "" {
		l, err := rsio.ImportLayout(opts.layout)
		if err != nil {
			return err
		}
		layout = l
		logger.Debug("loaded layout", "path", opts.layout, "edges", len(l.Edges))
	}
	flagEdges, err := parseEdgeSpecs(opts.edges)
	if err != nil {
		return err
	}
	layout.Edges = append(layout.Edges, flagEdges...)
	if len(layout.Edges) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "no edges given (use --edge or --file)")
	}

	total := opts.total
	switch {
	case cmd.Flags().Changed("total"):
	case layout.Total != nil:
		total = *layout.Total
	default:
		total = terminalWidth()
		logger.Debug("using terminal width as total", "total", total)
	}

	if opts.save != "" {
		layout.Total = &total
		if err := saveLayout(layout, opts.save); err != nil {
			return err
		}
	}

	req := pipeline.Request{
		Op:    pipeline.OpResolve,
		Total: total,
		Edges: layout.RatioEdges(),
		Names: layout.Names(),
	}
	specs := make([]string, len(req.Edges))
	for i, e := range req.Edges {
		specs[i] = e.String()
	}
	if err := c.execute(ctx, cmd.OutOrStdout(), req, specs, opts.outputOpts); err != nil {
		return err
	}
	if opts.save != "" && !c.jsonOutput {
		printFile(cmd.OutOrStdout(), opts.save)
	}
	return nil
}

// reduceOpts holds the command-line flags for the reduce command.
type reduceOpts struct {
	outputOpts
	total    int
	ratios   []int
	maximums []int
	values   []int
}

// reduceCommand creates the reduce command.
func (c *CLI) reduceCommand() *cobra.Command {
	var opts reduceOpts

	cmd := &cobra.Command{
		Use:   "reduce",
		Short: "Remove a total from values, weighted by ratios",
		Long: `Remove a total from a list of values. Each value gives up a share
proportional to its ratio, capped at its maximum. Values with a maximum
of 0 are never touched.

  ratiosplit reduce --total 2 --ratios 1,1 --maximums 10,10 --values 9,3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.execute(cmd.Context(), cmd.OutOrStdout(), pipeline.Request{
				Op:       pipeline.OpReduce,
				Total:    opts.total,
				Ratios:   opts.ratios,
				Maximums: opts.maximums,
				Values:   opts.values,
			}, nil, opts.outputOpts)
		},
	}

	cmd.Flags().IntVarP(&opts.total, "total", "t", 0, "amount to remove")
	cmd.Flags().IntSliceVar(&opts.ratios, "ratios", nil, "weights (comma-separated)")
	cmd.Flags().IntSliceVar(&opts.maximums, "maximums", nil, "largest amount each value may lose")
	cmd.Flags().IntSliceVar(&opts.values, "values", nil, "values to reduce")
	_ = cmd.MarkFlagRequired("total")
	_ = cmd.MarkFlagRequired("ratios")
	opts.register(cmd)

	return cmd
}

// distributeOpts holds the command-line flags for the distribute command.
type distributeOpts struct {
	outputOpts
	total    int
	ratios   []int
	minimums []int
}

// distributeCommand creates the distribute command.
func (c *CLI) distributeCommand() *cobra.Command {
	var opts distributeOpts

	cmd := &cobra.Command{
		Use:   "distribute",
		Short: "Split a total into parts proportional to ratios",
		Long: `Split a total into parts proportional to ratios, rounding up as it
goes so earlier parts absorb the remainder. Minimums raise individual
parts; a part with minimum 0 is left out of the weighting.

  ratiosplit distribute --total 7 --ratios 1,1,1
  ratiosplit distribute --total 10 --ratios 1,2 --minimums 3,1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.execute(cmd.Context(), cmd.OutOrStdout(), pipeline.Request{
				Op:       pipeline.OpDistribute,
				Total:    opts.total,
				Ratios:   opts.ratios,
				Minimums: opts.minimums,
			}, nil, opts.outputOpts)
		},
	}

	cmd.Flags().IntVarP(&opts.total, "total", "t", 0, "amount to split")
	cmd.Flags().IntSliceVar(&opts.ratios, "ratios", nil, "weights (comma-separated)")
	cmd.Flags().IntSliceVar(&opts.minimums, "minimums", nil, "smallest size of each part")
	_ = cmd.MarkFlagRequired("total")
	_ = cmd.MarkFlagRequired("ratios")
	opts.register(cmd)

	return cmd
}

// execute runs req and prints the result in the selected format.
func (c *CLI) execute(ctx context.Context, w io.Writer, req pipeline.Request, specs []string, out outputOpts) error {
	prog := newProgress(loggerFromContext(ctx))

	res, err := c.newRunner().Execute(ctx, req)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("%s %d slots", opVerb(res.Op), len(res.Values)))

	if out.output != "" {
		if err := rsio.ExportJSON(res, out.output); err != nil {
			return err
		}
	}

	if c.jsonOutput {
		return rsio.WriteJSON(res, w)
	}
	printResult(w, res, req, specs)
	if out.output != "" {
		printFile(w, out.output)
	}
	return nil
}

// saveLayout writes l to path in the format implied by its extension.
func saveLayout(l *rsio.Layout, path string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	format, err := rsio.FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := rsio.WriteLayout(l, f, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

