package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	m "crosswire.dev/pkg/crosswire/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	valueStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	pointStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
)

// chromeLines is the number of lines the pager reserves for its title and footer.
const chromeLines = 3

// TUI implements UI with lipgloss styling. Output taller than the terminal opens in a
// scrollable Bubble Tea pager.
type TUI struct {
	output io.Writer
	width  int
	height int
	run    func(tea.Model) error
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	t := &TUI{output: output}

	if f, ok := output.(*os.File); ok {
		width, height, err := term.GetSize(f.Fd())
		if err == nil {
			t.width = width
			t.height = height
		}
	}

	t.run = func(model tea.Model) error {
		program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
		_, err := program.Run()

		return err
	}

	return t
}

// DisplayResult shows both answers.
func (t *TUI) DisplayResult(ctx context.Context, result m.Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return t.show("crosswire", renderResult(result))
}

// DisplaySegments shows the normalized segments of each wire.
func (t *TUI) DisplaySegments(ctx context.Context, wires []m.Wire) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder

	for i, wire := range wires {
		if i > 0 {
			b.WriteString("\n")
		}

		fmt.Fprintf(&b, "%s %s %s\n",
			headerStyle.Render("Wire "+wire.Name), dimStyle.Render(wire.Raw), dimStyle.Render("-> "+wire.End.String()))
		writeRows(&b, segmentHeader, segmentRows(wire))
	}

	return t.show("segments", b.String())
}

// DisplayCandidates shows every raw intersection candidate.
func (t *TUI) DisplayCandidates(ctx context.Context, candidates []m.PointWithCost) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", headerStyle.Render(fmt.Sprintf("%d candidates", len(candidates))))
	writeRows(&b, candidateHeader, candidateRows(candidates))

	return t.show("candidates", b.String())
}

// DisplayReport shows a saved report.
func (t *TUI) DisplayReport(ctx context.Context, report m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", dimStyle.Render("generated"), report.Generated.Format(time.RFC3339))

	for i, wire := range report.Wires {
		segments := 0
		if i < len(report.Segments) {
			segments = report.Segments[i]
		}

		fmt.Fprintf(&b, "%s %s\n", headerStyle.Render(fmt.Sprintf("Wire %d (%d segments)", i+1, segments)), wire)
	}

	fmt.Fprintf(&b, "%s %d\n\n", dimStyle.Render("candidates"), report.Candidates)
	b.WriteString(renderResult(report.Result))

	return t.show("report", b.String())
}

func (t *TUI) show(title, content string) error {
	if t.height <= 0 || lipgloss.Height(content)+chromeLines <= t.height {
		_, err := fmt.Fprintf(t.output, "%s\n%s", titleStyle.Render(title), content)
		return err
	}

	return t.run(newPagerModel(title, content, t.width, t.height))
}

func renderResult(result m.Result) string {
	var b strings.Builder

	for _, row := range resultRows(result) {
		task, metric, value, point := row[0], row[1], row[2], row[3]
		if value == missingValue {
			fmt.Fprintf(&b, "  %s %-8s %s\n", headerStyle.Render(task), metric, warnStyle.Render(point))
			continue
		}

		fmt.Fprintf(&b, "  %s %-8s %s at %s\n", headerStyle.Render(task), metric, valueStyle.Render(value), pointStyle.Render(point))
	}

	return b.String()
}

func writeRows(b *strings.Builder, header []string, rows [][]string) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = len(h)
	}

	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}

	format := func(cells []string) string {
		padded := make([]string, len(cells))
		for i, cell := range cells {
			padded[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}

		return "  " + strings.TrimRight(strings.Join(padded, "  "), " ")
	}

	b.WriteString(dimStyle.Render(format(header)))
	b.WriteString("\n")

	for _, row := range rows {
		b.WriteString(format(row))
		b.WriteString("\n")
	}
}

// pagerModel is a Bubble Tea model that scrolls long output in a viewport.
type pagerModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
	quitting bool
}

func newPagerModel(title, content string, width, height int) pagerModel {
	pm := pagerModel{title: title, content: content}
	if width > 0 && height > 0 {
		pm = pm.resize(width, height)
	}

	return pm
}

func (pm pagerModel) resize(width, height int) pagerModel {
	if !pm.ready {
		pm.viewport = viewport.New(width, max(height-chromeLines, 1))
		pm.viewport.SetContent(pm.content)
		pm.ready = true

		return pm
	}

	pm.viewport.Width = width
	pm.viewport.Height = max(height-chromeLines, 1)

	return pm
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return pm.resize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			pm.quitting = true
			return pm, tea.Quit
		}
	}

	if !pm.ready {
		return pm, nil
	}

	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	if pm.quitting {
		return ""
	}

	if !pm.ready {
		return "loading..."
	}

	footer := dimStyle.Render(fmt.Sprintf("%3.f%%  j/k scroll  q quit", pm.viewport.ScrollPercent()*100))

	return fmt.Sprintf("%s\n%s\n%s", titleStyle.Render(pm.title), pm.viewport.View(), footer)
}
