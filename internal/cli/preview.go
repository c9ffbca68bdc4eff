package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/snapblocks/snapblocks/pkg/block"
	"github.com/snapblocks/snapblocks/pkg/block/layout"
	"github.com/snapblocks/snapblocks/pkg/block/outline"
	"github.com/snapblocks/snapblocks/pkg/blockdef"
	"github.com/snapblocks/snapblocks/pkg/config"
)

// previewCommand creates the interactive layout preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var configRef string

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Interactively preview a block's layout in the terminal",
		Long: `Preview loads a block definition and shows its measured layout:
container size, per-row origins and the outline path. Connector flags and
the layout mode can be toggled live to see how they reshape the block.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configRef)
			if err != nil {
				return err
			}
			def, err := blockdef.ReadFile(args[0])
			if err != nil {
				return err
			}
			b, err := def.Block()
			if err != nil {
				return err
			}

			model := newPreviewModel(b, cfg.Metrics)
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&configRef, "config", "", "TOML config file with metrics overrides")
	return cmd
}

// Preview table styles.
var (
	previewHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	previewCellStyle   = lipgloss.NewStyle().Foreground(colorWhite).Padding(0, 1)
	previewOnStyle     = lipgloss.NewStyle().Foreground(colorGreen)
	previewOffStyle    = lipgloss.NewStyle().Foreground(colorDim)
)

// previewModel is the bubbletea model for the layout preview.
type previewModel struct {
	def     *block.Def
	metrics layout.Metrics

	res      layout.Result
	contours int
}

func newPreviewModel(def *block.Def, m layout.Metrics) previewModel {
	pm := previewModel{def: def, metrics: m}
	pm.measure()
	return pm
}

// measure reruns the layout and outline passes after a toggle.
func (m *previewModel) measure() {
	m.res = layout.Measure(m.def, block.Unbounded(), m.metrics)
	p := outline.Build(m.def, m.res, m.metrics)
	m.contours = p.Contours()
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "i":
			m.def.InputsInline = !m.def.InputsInline
		case "p":
			m.def.HasPrevious = !m.def.HasPrevious
		case "n":
			m.def.HasNext = !m.def.HasNext
		case "o":
			m.def.HasOutput = !m.def.HasOutput
		default:
			return m, nil
		}
		m.measure()
	}
	return m, nil
}

func (m previewModel) View() string {
	var b strings.Builder

	title := m.def.ID
	if title == "" {
		title = "block"
	}
	b.WriteString(StyleTitle.Render("Preview: " + title))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("i inline  p previous  n next  o output  q quit"))
	b.WriteString("\n\n")

	mode := "external"
	if m.def.InputsInline {
		mode = "inline"
	}
	b.WriteString(fmt.Sprintf("%s %s   %s %s %s %s\n",
		StyleDim.Render("mode:"), StyleHighlight.Render(mode),
		flag("prev", m.def.HasPrevious),
		flag("next", m.def.HasNext),
		flag("output", m.def.HasOutput),
		StyleDim.Render(fmt.Sprintf("contours: %d", m.contours)),
	))
	b.WriteString(fmt.Sprintf("%s %s\n\n",
		StyleDim.Render("size:"),
		StyleValue.Render(fmt.Sprintf("%d x %d", m.res.Width, m.res.Height)),
	))

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(StyleDim).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return previewHeaderStyle.Padding(0, 1)
			}
			return previewCellStyle
		}).
		Headers("#", "KIND", "ORIGIN", "FIELDS", "SIZE")

	for i, r := range m.def.Rows {
		origin := m.res.Origins[i]
		t.Row(
			fmt.Sprintf("%d", i),
			r.Kind.String(),
			fmt.Sprintf("(%d, %d)", origin.X, origin.Y),
			fmt.Sprintf("%d", r.FieldWidth),
			fmt.Sprintf("%d x %d", r.Width, r.Height),
		)
	}
	b.WriteString(t.Render())
	b.WriteString("\n")

	return b.String()
}

func flag(name string, on bool) string {
	if on {
		return previewOnStyle.Render("[" + name + "]")
	}
	return previewOffStyle.Render("[" + name + "]")
}
