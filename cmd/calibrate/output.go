package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme for console output
type Theme struct {
	Index   lipgloss.Style
	Value   lipgloss.Style
	Missing lipgloss.Style
	Answer  lipgloss.Style
}

// DefaultTheme is the default color scheme
var DefaultTheme = Theme{
	Index:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	Value:   lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
	Missing: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	Answer:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82")),
}

// PlainTheme renders text unchanged
var PlainTheme = Theme{
	Index:   lipgloss.NewStyle(),
	Value:   lipgloss.NewStyle(),
	Missing: lipgloss.NewStyle(),
	Answer:  lipgloss.NewStyle(),
}

// Printer writes results to an output stream using a theme
type Printer struct {
	w     io.Writer
	theme Theme
}

func NewPrinter(w io.Writer, theme Theme) *Printer {
	return &Printer{w: w, theme: theme}
}

// PrintLineValues prints one "nums[i] = v" line per terminated input line
func (p *Printer) PrintLineValues(values []LineValue) {
	for _, v := range values {
		value := p.theme.Value
		if !v.HasDigits {
			value = p.theme.Missing
		}
		fmt.Fprintf(p.w, "nums[%s] = %s\n",
			p.theme.Index.Render(strconv.Itoa(v.Index)),
			value.Render(strconv.Itoa(v.Value)))
	}
}

// PrintAnswer prints the final "Answer: N" line
func (p *Printer) PrintAnswer(sum int) {
	fmt.Fprintf(p.w, "Answer: %s\n", p.theme.Answer.Render(strconv.Itoa(sum)))
}

// WriteJSON writes the result as indented JSON
func (p *Printer) WriteJSON(r Result) error {
	out := JSONOutput{
		Lines:           len(r.Values),
		Answer:          r.Sum,
		Values:          make([]JSONValue, 0, len(r.Values)),
		DroppedTrailing: r.TrailingDropped,
	}
	for _, v := range r.Values {
		out.Values = append(out.Values, JSONValue{
			Index:     v.Index,
			Line:      v.Line,
			Value:     v.Value,
			HasDigits: v.HasDigits,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	if _, err := fmt.Fprintf(p.w, "%s\n", data); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	return nil
}

// BuildReport renders the result as a markdown document
func BuildReport(path string, r Result) string {
	var sb strings.Builder

	sb.WriteString("# Calibration\n\n")
	sb.WriteString(fmt.Sprintf("**Input:** `%s`  **Lines:** %d  **Answer:** %d\n\n", path, len(r.Values), r.Sum))

	if len(r.Values) > 0 {
		sb.WriteString("| Line | Text | Digits | Value |\n")
		sb.WriteString("|---:|---|:---:|---:|\n")
		for _, v := range r.Values {
			digits := "none"
			if v.HasDigits {
				digits = fmt.Sprintf("%d / %d", v.First, v.Last)
			}
			sb.WriteString(fmt.Sprintf("| %d | `%s` | %s | %d |\n", v.Line, escapeCell(v.Text), digits, v.Value))
		}
		sb.WriteString("\n")
	}

	if missing := r.Missing(); len(missing) > 0 {
		lines := make([]string, len(missing))
		for i, v := range missing {
			lines[i] = strconv.Itoa(v.Line)
		}
		sb.WriteString(fmt.Sprintf("> Lines without digits (counted as 0): %s\n\n", strings.Join(lines, ", ")))
	}

	if r.TrailingDropped {
		sb.WriteString(fmt.Sprintf("> Unterminated last line `%s` was not counted.\n\n", escapeCell(r.Trailing)))
	}

	return sb.String()
}

func escapeCell(s string) string {
	s = strings.TrimRight(s, "\r")
	s = strings.ReplaceAll(s, "`", "'")
	return strings.ReplaceAll(s, "|", "\\|")
}

// RenderReport renders markdown through glamour.
// An empty style picks dark or light from the terminal background.
func (p *Printer) RenderReport(markdown, style string) error {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(0)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	out, err := renderer.Render(markdown)
	if err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	_, err = io.WriteString(p.w, out)
	return err
}
