// Package rule renders horizontal rules: a line of repeated characters,
// optionally with a title, that occupies exactly the requested number of
// terminal cells.
//
// Widths are measured in cells with [ansi.StringWidth], so wide runes and
// styled segments are handled. The rule computes its own left/right split;
// callers typically obtain the width from a layout, for example a column
// size returned by ratio.Resolve.
//
//	r, err := rule.New("Summary", rule.WithAlign(rule.AlignLeft))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(r.Render(80))
package rule

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/matzehuels/ratiosplit/pkg/errors"
)

// Align controls where the title sits on the line.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

const (
	// DefaultCharacters draws a light box-drawing line.
	DefaultCharacters = "─"

	// asciiFallback replaces non-ASCII characters when ASCIIOnly is set.
	asciiFallback = "-"

	// tabSize is the column stop used when expanding tabs in titles.
	tabSize = 8
)

// ParseAlign converts a user-supplied alignment name.
// The empty string selects [AlignCenter].
func ParseAlign(s string) (Align, error) {
	switch a := Align(strings.ToLower(strings.TrimSpace(s))); a {
	case "":
		return AlignCenter, nil
	case AlignLeft, AlignCenter, AlignRight:
		return a, nil
	}
	return "", errors.New(errors.ErrCodeInvalidAlign,
		`invalid value for align, expected "left", "center", "right" (not %q)`, s)
}

// Rule is a horizontal divider line.
type Rule struct {
	Title      string
	Characters string
	Align      Align
	Style      lipgloss.Style // applied to the line segments
	TitleStyle lipgloss.Style // applied to the title
	ASCIIOnly  bool           // replace non-ASCII Characters with "-"
}

// Option configures a [Rule].
type Option func(*Rule)

// WithCharacters sets the character(s) the line is drawn with.
func WithCharacters(chars string) Option {
	return func(r *Rule) { r.Characters = chars }
}

// WithAlign sets the title alignment.
func WithAlign(a Align) Option {
	return func(r *Rule) { r.Align = a }
}

// WithStyle sets the style of the line segments.
func WithStyle(s lipgloss.Style) Option {
	return func(r *Rule) { r.Style = s }
}

// WithTitleStyle sets the style of the title.
func WithTitleStyle(s lipgloss.Style) Option {
	return func(r *Rule) { r.TitleStyle = s }
}

// WithASCIIOnly makes the rule fall back to "-" when Characters contains
// non-ASCII runes.
func WithASCIIOnly(on bool) Option {
	return func(r *Rule) { r.ASCIIOnly = on }
}

// New creates a rule with the given title and options.
//
// It returns an error with code errors.ErrCodeInvalidInput when the
// characters measure less than one cell, and errors.ErrCodeInvalidAlign for
// an unknown alignment.
func New(title string, opts ...Option) (*Rule, error) {
	r := &Rule{
		Title:      title,
		Characters: DefaultCharacters,
		Align:      AlignCenter,
		Style:      lipgloss.NewStyle(),
		TitleStyle: lipgloss.NewStyle(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if ansi.StringWidth(r.Characters) < 1 {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"'characters' argument must have a cell width of at least 1")
	}
	align, err := ParseAlign(string(r.Align))
	if err != nil {
		return nil, err
	}
	r.Align = align
	return r, nil
}

// String implements fmt.Stringer.
func (r *Rule) String() string {
	return fmt.Sprintf("Rule(%q, %q)", r.Title, r.Characters)
}

// Render draws the rule into exactly width cells. A width of zero or less
// yields the empty string.
func (r *Rule) Render(width int) string {
	if width <= 0 {
		return ""
	}

	chars := r.Characters
	if r.ASCIIOnly && !isASCII(chars) {
		chars = asciiFallback
	}
	charsLen := max(ansi.StringWidth(chars), 1)

	if r.Title == "" {
		return r.Style.Render(fit(strings.Repeat(chars, width/charsLen+1), width))
	}

	title := expandTabs(strings.ReplaceAll(r.Title, "\n", " "))
	if ansi.StringWidth(title) > width-4 {
		title = ansi.Truncate(title, max(width-4, 0), "…")
	}
	titleLen := ansi.StringWidth(title)

	var b strings.Builder
	switch r.Align {
	case AlignLeft:
		b.WriteString(r.TitleStyle.Render(title))
		b.WriteString(" ")
		b.WriteString(r.Style.Render(repeat(chars, width-titleLen-1)))
	case AlignRight:
		b.WriteString(r.Style.Render(repeat(chars, width-titleLen-1)))
		b.WriteString(" ")
		b.WriteString(r.TitleStyle.Render(title))
	default:
		side := (width - titleLen) / 2
		left := truncate(strings.Repeat(chars, side/charsLen+1), side-1)
		rightLen := width - ansi.StringWidth(left) - titleLen
		right := truncate(strings.Repeat(chars, side/charsLen+1), rightLen)

		b.WriteString(r.Style.Render(left))
		b.WriteString(" ")
		b.WriteString(r.TitleStyle.Render(title))
		b.WriteString(" ")
		b.WriteString(r.Style.Render(right))
	}
	return fit(b.String(), width)
}

// fit truncates or pads s with spaces to exactly width cells.
func fit(s string, width int) string {
	if ansi.StringWidth(s) > width {
		s = ansi.Truncate(s, width, "")
	}
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

func truncate(s string, width int) string {
	return ansi.Truncate(s, max(width, 0), "")
}

func repeat(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s, n)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// expandTabs replaces each tab with spaces up to the next tab stop.
func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := tabSize - col%tabSize
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col += ansi.StringWidth(string(r))
	}
	return b.String()
}
