// Package browse implements an interactive terminal browser over the
// expanded matrix. Combinations are presented as a filterable list; the
// selected combination's group bindings are shown in a detail pane.
package browse

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/storax/envmatrix/log"
	"github.com/storax/envmatrix/matrix"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4")).
			Padding(0, 1)

	detailHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("6")).
				Bold(true)

	groupStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	aliasStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	detailPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

// item adapts a [matrix.NamedCombination] to the [list.Item] interface.
type item struct {
	nc matrix.NamedCombination
}

func (i item) Title() string { return i.nc.Identifier }

func (i item) Description() string {
	parts := make([]string, 0, 4)

	for _, b := range i.nc.Bindings() {
		parts = append(parts, b.Group+"="+b.Value)
	}

	return strings.Join(parts, " ")
}

// FilterValue routes list filtering through the identifier, so typing "/"
// fuzzy-matches the same strings the expand command's --match flag does.
func (i item) FilterValue() string { return i.nc.Identifier }

// model is the Bubble Tea model for the browser.
type model struct {
	list     list.Model
	logger   log.Logger
	width    int
	height   int
	quitting bool
}

const (
	defaultWidth  = 80
	defaultHeight = 24

	// detailHeight is the number of rows reserved for the detail pane below
	// the list, including its border.
	detailHeight = 10
)

// Run starts the browser over the given matrix.
func Run(ctx context.Context, mat matrix.Matrix, logger log.Logger) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	logger.TraceContext(ctx, "browse start",
		slog.Int("combinations", len(mat)),
	)

	p := tea.NewProgram(newModel(mat, logger), tea.WithContext(ctx))
	_, err = p.Run()

	return err
}

func newModel(mat matrix.Matrix, logger log.Logger) model {
	items := make([]list.Item, len(mat))
	for i, nc := range mat {
		items[i] = item{nc: nc}
	}

	delegate := list.NewDefaultDelegate()

	l := list.New(items, delegate, defaultWidth, defaultHeight-detailHeight)
	l.Title = "environments"
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{
			key.NewBinding(
				key.WithKeys("q"),
				key.WithHelp("q", "quit"),
			),
		}
	}

	return model{
		list:   l,
		logger: logger,
		width:  defaultWidth,
		height: defaultHeight,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// "q" quits unless the filter input is capturing text.
		if msg.String() == "q" && m.list.FilterState() != list.Filtering {
			m.quitting = true

			return m, tea.Quit
		}

		if msg.Type == tea.KeyCtrlC {
			m.quitting = true

			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-detailHeight)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.list.View(), m.detail())
}

// detail renders the binding table for the selected combination.
func (m model) detail() string {
	selected, ok := m.list.SelectedItem().(item)
	if !ok {
		return detailPaneStyle.Width(m.width - 2).Render("no selection")
	}

	var b strings.Builder

	b.WriteString(detailHeaderStyle.Render(selected.nc.Identifier))
	b.WriteByte('\n')

	for _, binding := range selected.nc.Bindings() {
		b.WriteString(groupStyle.Render(binding.Group))
		b.WriteString(" = ")
		b.WriteString(valueStyle.Render(binding.Value))

		if binding.Alias != "" {
			b.WriteString(aliasStyle.Render(" (" + binding.Alias + ")"))
		}

		b.WriteByte('\n')
	}

	return detailPaneStyle.Width(m.width - 2).Render(
		strings.TrimRight(b.String(), "\n"),
	)
}
