package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/matzehuels/treeline/pkg/pipeline"
)

// panStep is the number of columns a single horizontal pan moves.
const panStep = 4

// viewCommand creates the view command for inspecting diagrams interactively.
func (c *CLI) viewCommand() *cobra.Command {
	var maxWidth int

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Pan across a rendered tree in the terminal",
		Long: `Pan across a rendered tree in the terminal.

Wide trees quickly outgrow the terminal. The view command renders the tree
once and opens a full-screen viewport that pans across the diagram.

Keys: arrows or h/j/k/l pan, g/G jump to top/bottom, 0 returns to the left
edge, q quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runView(cmd.Context(), args[0], maxWidth)
		},
	}

	cmd.Flags().IntVar(&maxWidth, "max-width", 0, "maximum display width per cell before clipping (default: from config)")

	return cmd
}

// runView renders the document as text and hands it to the viewport model.
func (c *CLI) runView(ctx context.Context, input string, maxWidth int) error {
	source, sourceName, err := readSource(input)
	if err != nil {
		return err
	}

	runner := c.newRunner(ctx, false)
	defer runner.Close()

	opts := pipeline.Options{
		Source:       source,
		Format:       pipeline.FormatASCII,
		MaxCellWidth: maxWidth,
		SourceName:   sourceName,
	}
	if opts.MaxCellWidth == 0 {
		opts.MaxCellWidth = c.Config.Render.MaxCellWidth
	}

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}
	if len(result.Output) == 0 {
		printInfo("Tree is empty, nothing to view")
		return nil
	}

	m := NewTreeViewModel(sourceName, string(result.Output), result.Stats.NodeCount)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// =============================================================================
// TreeViewModel - Full-screen diagram viewport
// =============================================================================

// TreeViewModel is the bubbletea model for panning across a rendered tree.
type TreeViewModel struct {
	Name  string   // source label shown in the header
	Lines []string // rendered diagram split into lines
	Nodes int      // node count shown in the footer

	XOff   int // columns panned right
	YOff   int // lines panned down
	Width  int // terminal width
	Height int // terminal height
}

// NewTreeViewModel creates a viewport model over a rendered diagram.
func NewTreeViewModel(name, text string, nodes int) TreeViewModel {
	return TreeViewModel{
		Name:   name,
		Lines:  strings.Split(text, "\n"),
		Nodes:  nodes,
		Width:  80,
		Height: 24,
	}
}

func (m TreeViewModel) Init() tea.Cmd {
	return nil
}

func (m TreeViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.XOff -= panStep
		case "right", "l":
			m.XOff += panStep
		case "up", "k":
			m.YOff--
		case "down", "j":
			m.YOff++
		case "pgup":
			m.YOff -= m.viewRows()
		case "pgdown", " ":
			m.YOff += m.viewRows()
		case "g":
			m.YOff = 0
		case "G":
			m.YOff = m.maxYOff()
		case "0":
			m.XOff = 0
		}
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
	}
	return m.clamp(), nil
}

func (m TreeViewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Name))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←↓↑→/hjkl pan  g/G top/bottom  0 left edge  q quit"))
	b.WriteString("\n\n")

	end := m.YOff + m.viewRows()
	if end > len(m.Lines) {
		end = len(m.Lines)
	}
	for i := m.YOff; i < end; i++ {
		line := runewidth.TruncateLeft(m.Lines[i], m.XOff, "")
		b.WriteString(runewidth.Truncate(line, m.Width, ""))
		b.WriteString("\n")
	}
	for i := end - m.YOff; i < m.viewRows(); i++ {
		b.WriteString("\n")
	}

	b.WriteString(StyleDim.Render(fmt.Sprintf("  [col %d  row %d/%d]  %d nodes",
		m.XOff, m.YOff+1, len(m.Lines), m.Nodes)))

	return b.String()
}

// viewRows returns the number of diagram rows visible between the header
// and the footer.
func (m TreeViewModel) viewRows() int {
	rows := m.Height - 4
	if rows < 1 {
		rows = 1
	}
	return rows
}

// contentWidth returns the display width of the widest diagram line.
func (m TreeViewModel) contentWidth() int {
	w := 0
	for _, line := range m.Lines {
		if lw := runewidth.StringWidth(line); lw > w {
			w = lw
		}
	}
	return w
}

func (m TreeViewModel) maxXOff() int {
	limit := m.contentWidth() - m.Width
	if limit < 0 {
		return 0
	}
	return limit
}

func (m TreeViewModel) maxYOff() int {
	limit := len(m.Lines) - m.viewRows()
	if limit < 0 {
		return 0
	}
	return limit
}

// clamp keeps the pan offsets inside the diagram.
func (m TreeViewModel) clamp() TreeViewModel {
	if m.XOff > m.maxXOff() {
		m.XOff = m.maxXOff()
	}
	if m.XOff < 0 {
		m.XOff = 0
	}
	if m.YOff > m.maxYOff() {
		m.YOff = m.maxYOff()
	}
	if m.YOff < 0 {
		m.YOff = 0
	}
	return m
}
