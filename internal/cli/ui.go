package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/ratiosplit/pkg/pipeline"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleHeader = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleCell   = lipgloss.NewStyle().Padding(0, 1)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printError prints an error message.
func printError(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+msg)
}

// printWarning prints a warning message.
func printWarning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printDetail prints a detail line (indented).
func printDetail(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, "  "+StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// =============================================================================
// Result Output
// =============================================================================

// resultTable renders one row per slot. specs, if non-nil, adds a column
// describing each input slot.
func resultTable(res *pipeline.Result, specs []string) string {
	headers := []string{"#", "Name", "Value"}
	if specs != nil {
		headers = []string{"#", "Name", "Spec", "Value"}
	}

	rows := make([][]string, len(res.Values))
	for i, v := range res.Values {
		name := ""
		if i < len(res.Names) {
			name = res.Names[i]
		}
		row := []string{strconv.Itoa(i + 1), name}
		if specs != nil {
			row = append(row, specs[i])
		}
		rows[i] = append(row, strconv.Itoa(v))
	}

	valueCol := len(headers) - 1
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader.Padding(0, 1)
			case col == valueCol:
				return styleCell.Foreground(colorCyan).Align(lipgloss.Right)
			default:
				return styleCell
			}
		}).
		Render()
}

// printResult prints the summary line, the per-slot table and a warning
// when the values do not account for the whole total.
func printResult(w io.Writer, res *pipeline.Result, req pipeline.Request, specs []string) {
	printSuccess(w, "%s %s slots over %s",
		opVerb(res.Op),
		StyleNumber.Render(strconv.Itoa(len(res.Values))),
		StyleNumber.Render(strconv.Itoa(res.Total)))
	if len(res.Values) > 0 {
		fmt.Fprintln(w, resultTable(res, specs))
	}
	printDetail(w, "sum %d · %s", res.Sum, res.Duration)
	if len(res.Values) > 0 && !res.Filled(req) {
		printWarning(w, "values do not account for the total of %d", res.Total)
	}
}

func opVerb(op pipeline.Op) string {
	switch op {
	case pipeline.OpResolve:
		return "Resolved"
	case pipeline.OpReduce:
		return "Reduced"
	default:
		return "Distributed"
	}
}
