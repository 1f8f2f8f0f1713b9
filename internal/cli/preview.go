package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ratiosplit/pkg/errors"
	rsio "github.com/matzehuels/ratiosplit/pkg/io"
	"github.com/matzehuels/ratiosplit/pkg/ratio"
	"github.com/matzehuels/ratiosplit/pkg/rule"
)

// reloadDelay lets editors finish writing before the layout is re-read.
const reloadDelay = 100 * time.Millisecond

var columnStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(colorCyan),
	lipgloss.NewStyle().Foreground(colorGreen),
	lipgloss.NewStyle().Foreground(colorYellow),
	lipgloss.NewStyle().Foreground(colorGray),
}

// previewCommand creates the preview command.
func (c *CLI) previewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preview <layout>",
		Short: "Preview a layout at the current terminal width",
		Long: `Preview a layout file full-screen. The edges are resolved against the
terminal width and redrawn whenever the window is resized or the file
changes on disk.

Keys: r reload, q quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd.Context(), args[0])
		},
	}
}

func runPreview(ctx context.Context, path string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	logger := loggerFromContext(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	p := tea.NewProgram(newPreviewModel(path), tea.WithAltScreen(), tea.WithContext(ctx))
	go watchLayout(ctx, watcher, path, func(err error) {
		p.Send(reloadMsg{watchErr: err})
	})

	logger.Debug("starting preview", "path", path)
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}

// watchLayout calls notify whenever path is written, created or renamed,
// and with a non-nil error when the watcher reports one. It returns when
// ctx is done or the watcher is closed.
func watchLayout(ctx context.Context, watcher *fsnotify.Watcher, path string, notify func(error)) {
	target := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(reloadDelay):
			}
			notify(nil)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			notify(err)
		}
	}
}

// =============================================================================
// Preview Model
// =============================================================================

type (
	// reloadMsg asks the model to re-read the layout.
	reloadMsg struct{ watchErr error }

	// layoutMsg carries a freshly loaded layout.
	layoutMsg struct {
		layout *rsio.Layout
		err    error
	}
)

// previewModel is the bubbletea model for the preview command.
type previewModel struct {
	path    string
	layout  *rsio.Layout
	err     error
	width   int
	height  int
	reloads int
}

func newPreviewModel(path string) previewModel {
	return previewModel{path: path}
}

func (m previewModel) load() tea.Cmd {
	path := m.path
	return func() tea.Msg {
		l, err := rsio.ImportLayout(path)
		return layoutMsg{layout: l, err: err}
	}
}

func (m previewModel) Init() tea.Cmd {
	return m.load()
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			return m, m.load()
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case reloadMsg:
		if msg.watchErr != nil {
			m.err = fmt.Errorf("watch: %w", msg.watchErr)
			return m, nil
		}
		return m, m.load()
	case layoutMsg:
		m.reloads++
		m.err = msg.err
		if msg.err == nil {
			m.layout = msg.layout
		}
	}
	return m, nil
}

func (m previewModel) View() string {
	if m.width == 0 {
		return "loading…"
	}

	var b strings.Builder
	header, _ := rule.New(filepath.Base(m.path),
		rule.WithStyle(StyleDim), rule.WithTitleStyle(StyleTitle))
	b.WriteString(header.Render(m.width))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(styleIconError.Render(iconError) + " " + errors.UserMessage(m.err))
		b.WriteString("\n")
	case m.layout == nil:
		b.WriteString(StyleDim.Render("loading…"))
		b.WriteString("\n")
	default:
		body, err := renderPreview(m.layout, m.width)
		if err != nil {
			body = styleIconError.Render(iconError) + " " + errors.UserMessage(err) + "\n"
		}
		b.WriteString(body)
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("width %d · reloads %d · r reload  q quit", m.width, m.reloads)))
	return b.String()
}

// renderPreview resolves the layout against width and draws one titled
// rule per edge side by side, followed by a table of the sizes.
func renderPreview(l *rsio.Layout, width int) (string, error) {
	edges := l.RatioEdges()
	if len(edges) == 0 {
		return StyleDim.Render("no edges") + "\n", nil
	}
	sizes, err := ratio.Resolve(width, edges)
	if err != nil {
		return "", err
	}
	names := l.Names()

	var columns strings.Builder
	for i, size := range sizes {
		style := columnStyles[i%len(columnStyles)]
		r, err := rule.New(names[i], rule.WithStyle(style), rule.WithTitleStyle(style.Bold(true)))
		if err != nil {
			return "", err
		}
		columns.WriteString(r.Render(size))
	}

	rows := make([][]string, len(sizes))
	for i, size := range sizes {
		rows[i] = []string{names[i], edges[i].String(), strconv.Itoa(size)}
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("Edge", "Spec", "Size").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			return styleCell
		})

	return columns.String() + "\n\n" + t.Render() + "\n", nil
}
