package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ratiosplit/pkg/errors"
	rsio "github.com/matzehuels/ratiosplit/pkg/io"
	"github.com/matzehuels/ratiosplit/pkg/rule"
)

// ruleOpts holds the command-line flags for the rule command.
type ruleOpts struct {
	width      int    // 0 means terminal width
	characters string // line pattern
	align      string // left, center, right
	ascii      bool   // ASCII-only output
	plain      bool   // disable styling
}

// ruleCommand creates the rule command.
func (c *CLI) ruleCommand() *cobra.Command {
	opts := ruleOpts{characters: rule.DefaultCharacters}

	cmd := &cobra.Command{
		Use:   "rule [title]",
		Short: "Draw a horizontal rule with an optional title",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var title string
			if len(args) == 1 {
				title = args[0]
			}
			return c.runRule(cmd, title, &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "rule width in cells (default: terminal width)")
	cmd.Flags().StringVarP(&opts.characters, "characters", "c", opts.characters, "characters repeated to draw the line")
	cmd.Flags().StringVarP(&opts.align, "align", "a", string(rule.AlignCenter), "title alignment: left, center, right")
	cmd.Flags().BoolVar(&opts.ascii, "ascii", false, "replace non-ASCII line characters with '-'")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "disable colors")

	return cmd
}

func (c *CLI) runRule(cmd *cobra.Command, title string, opts *ruleOpts) error {
	width := opts.width
	switch {
	case width < 0:
		return errors.New(errors.ErrCodeInvalidInput, "width must be >= 0, got %d", width)
	case width == 0:
		width = terminalWidth()
	}

	align, err := rule.ParseAlign(opts.align)
	if err != nil {
		return err
	}
	options := []rule.Option{
		rule.WithCharacters(opts.characters),
		rule.WithAlign(align),
		rule.WithASCIIOnly(opts.ascii),
	}
	if !opts.plain && !c.jsonOutput {
		options = append(options, rule.WithStyle(StyleDim), rule.WithTitleStyle(StyleTitle))
	}

	r, err := rule.New(title, options...)
	if err != nil {
		return err
	}
	loggerFromContext(cmd.Context()).Debug("rendering rule", "rule", r, "width", width, "align", align)

	line := r.Render(width)
	if c.jsonOutput {
		return rsio.WriteJSON(map[string]string{"line": line}, cmd.OutOrStdout())
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), line)
	return err
}
