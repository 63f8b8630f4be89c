package swatch

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/truncate"

	"github.com/packviz/swatch/internal/watcher"
)

// Preview opens a read-only terminal browser over the results directory: a
// file menu on the left, the selected table on the right with every product
// shown in its color. It never writes anything; augmented and un-augmented
// tables render the same way, since the color function works from the
// ProductId either way.
//
// Preview blocks until the user quits or ctx is canceled.
func Preview(ctx context.Context, dir string) error {
	zone.NewGlobal()

	m := &previewModel{dir: dir}
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithMouseCellMotion())

	events, stop, err := watcher.Watch(filepath.Join(dir, Pattern))
	if err != nil {
		return err
	}
	defer stop()
	go func() {
		for range events {
			p.Send(resultsChangedMsg{})
		}
	}()

	if _, err := p.Run(); err != nil && err != tea.ErrProgramKilled {
		return err
	}
	return nil
}

type resultsChangedMsg struct{}

type previewModel struct {
	dir string

	width  int
	height int

	listWidth int

	lastkey string
	didInit bool
	gotSize bool

	activeFile string

	list  list.Model
	table viewport.Model
	help  help.Model
}

func (m *previewModel) Init() tea.Cmd {
	m.table = viewport.New(0, 0)

	m.list = list.New(nil, fileDelegate{m}, 0, 0)
	m.list.SetShowStatusBar(false)
	m.list.SetFilteringEnabled(false)
	m.list.SetShowHelp(false)
	m.list.SetShowTitle(false)

	m.help.ShortSeparator = "   "

	m.reloadFiles()
	m.didInit = true

	return nil
}

func (m *previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{}

	switch msg := msg.(type) {

	case resultsChangedMsg:
		m.reloadFiles()
		m.updateTable()

	case tea.MouseMsg:
		if msg.Type == tea.MouseLeft {
			for i, it := range m.list.Items() {
				if zone.Get(string(it.(fileItem))).InBounds(msg) {
					m.list.Select(i)
				}
			}
		} else {
			cmds = append(cmds, m.passthrough(msg)...)
		}

	case tea.KeyMsg:
		if !m.didInit || !m.gotSize {
			return m, nil
		}
		switch true {
		case msg.String() == "g":
			if m.lastkey == "g" {
				m.list.Select(0)
			}
		case key.Matches(msg, previewKeymap.bottom):
			m.list.Select(len(m.list.Items()) - 1)
		case key.Matches(msg, previewKeymap.jump):
			n, err := strconv.Atoi(msg.String())
			if err != nil {
				panic(err)
			}
			if i := n - 1; i < len(m.list.Items()) {
				m.list.Select(i)
			}
		case key.Matches(msg, previewKeymap.down):
			m.list.CursorDown()
		case key.Matches(msg, previewKeymap.up):
			m.list.CursorUp()
		case key.Matches(msg, previewKeymap.reload):
			m.reloadFiles()
			m.updateTable()
		case key.Matches(msg, previewKeymap.exit):
			return m, tea.Quit
		}
		m.lastkey = msg.String()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		fileHelpStyle = fileHelpStyle.
			UnsetMaxWidth().MaxWidth(m.width).
			UnsetMaxHeight().MaxHeight(previewHelpHeight)
		fileHelpStyle = fileHelpStyle.
			UnsetWidth().Width(fileHelpStyle.GetMaxWidth() - fileHelpStyle.GetHorizontalFrameSize()).
			UnsetHeight().Height(fileHelpStyle.GetMaxHeight() - fileHelpStyle.GetVerticalFrameSize())

		fileListStyle = fileListStyle.
			UnsetMaxWidth().MaxWidth(m.listWidth).
			UnsetMaxHeight().MaxHeight(m.height - previewHelpHeight)
		fileListStyle = fileListStyle.
			UnsetWidth().Width(fileListStyle.GetMaxWidth() - fileListStyle.GetHorizontalFrameSize()).
			UnsetHeight().Height(fileListStyle.GetMaxHeight() - fileListStyle.GetVerticalFrameSize())
		m.list.SetSize(
			fileListStyle.GetMaxWidth()-fileListStyle.GetHorizontalFrameSize(),
			fileListStyle.GetMaxHeight()-fileListStyle.GetVerticalFrameSize())

		tableStyle = tableStyle.
			UnsetMaxWidth().MaxWidth(m.width - m.listWidth + 2).
			UnsetMaxHeight().MaxHeight(m.height - previewHelpHeight)
		tableStyle = tableStyle.
			UnsetWidth().Width(tableStyle.GetMaxWidth() - tableStyle.GetHorizontalFrameSize()).
			UnsetHeight().Height(tableStyle.GetMaxHeight() - tableStyle.GetVerticalFrameSize())
		m.table.Width = tableStyle.GetMaxWidth() - tableStyle.GetHorizontalFrameSize()
		m.table.Height = tableStyle.GetMaxHeight() - tableStyle.GetVerticalFrameSize()

		m.gotSize = true
		m.updateTable()

	default:
		cmds = append(cmds, m.passthrough(msg)...)
	}

	if it := m.list.SelectedItem(); it != nil {
		selected := string(it.(fileItem))
		if selected != m.activeFile {
			m.activeFile = selected
			m.updateTable()
			m.table.GotoTop()
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *previewModel) passthrough(msg tea.Msg) []tea.Cmd {
	var cmds []tea.Cmd

	newTable, cmd := m.table.Update(msg)
	cmds = append(cmds, cmd)
	m.table = newTable

	newList, cmd := m.list.Update(msg)
	cmds = append(cmds, cmd)
	m.list = newList

	return cmds
}

func (m *previewModel) reloadFiles() {
	names, err := Matches(m.dir)
	if err != nil {
		names = nil
	}

	longest := 0
	items := make([]list.Item, len(names))
	for i, name := range names {
		if len(name) > longest {
			longest = len(name)
		}
		items[i] = fileItem(name)
	}
	m.listWidth = longest + 8
	m.list.SetItems(items)
}

func (m *previewModel) updateTable() {
	if !m.gotSize || m.activeFile == "" {
		return
	}
	width := tableStyle.GetWidth()
	if width <= 0 {
		return
	}
	m.table.SetContent(m.renderTable(m.activeFile, width-3))
}

// renderTable draws the table with each row's ProductId and Color cells
// shown in the product's color. Lines are truncated, never wrapped, so
// columns stay aligned.
func (m *previewModel) renderTable(name string, width int) string {
	table, err := LoadTable(filepath.Join(m.dir, name))
	if err != nil {
		return errStyle.Render(err.Error())
	}

	widths := columnWidths(table)
	idIdx := table.Schema.Index(FieldProductID)

	palette := NewPalette()
	var b strings.Builder
	b.WriteString(truncate.String(headerRowStyle.Render(formatRow(table.Schema, widths)), uint(width)) + "\n")
	for _, rec := range table.Records {
		line := formatRow(rec, widths)
		if idIdx >= 0 && idIdx < len(rec) {
			line = lipgloss.NewStyle().
				Foreground(lipgloss.Color(palette.ColorFor(rec[idIdx]))).
				Render(line)
		}
		b.WriteString(truncate.String(line, uint(width)) + "\n")
	}
	return b.String()
}

const maxColumnWidth = 24

func columnWidths(t *Table) []int {
	widths := make([]int, len(t.Schema))
	for i, f := range t.Schema {
		widths[i] = len(f)
	}
	for _, rec := range t.Records {
		for i, v := range rec {
			if i < len(widths) && len(v) > widths[i] {
				widths[i] = len(v)
			}
		}
	}
	for i := range widths {
		if widths[i] > maxColumnWidth {
			widths[i] = maxColumnWidth
		}
	}
	return widths
}

func formatRow(values []string, widths []int) string {
	cells := make([]string, len(values))
	for i, v := range values {
		w := maxColumnWidth
		if i < len(widths) {
			w = widths[i]
		}
		cells[i] = fmt.Sprintf("%-*s", w, truncate.String(v, uint(w)))
	}
	return strings.Join(cells, "  ")
}

func (m *previewModel) View() string {
	if !m.didInit || !m.gotSize {
		return "......."
	}

	if len(m.list.Items()) == 0 {
		return fmt.Sprintf("No %s files in %s.\n\nPress q to quit.", Pattern, m.dir)
	}

	return zone.Scan(lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			fileListStyle.Render(m.list.View()),
			tableStyle.Render(m.table.View()),
		),
		fileHelpStyle.Render(m.help.View(previewKeymap)),
	))
}

type fileItem string

func (i fileItem) Title() string       { return string(i) }
func (i fileItem) FilterValue() string { return string(i) }

const previewHelpHeight = 3

type fileDelegate struct{ m *previewModel }

func (d fileDelegate) Height() int                             { return 1 }
func (d fileDelegate) Spacing() int                            { return 0 }
func (d fileDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d fileDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(fileItem)
	if !ok {
		return
	}
	name := string(i)

	var marker string
	if index == m.Index() {
		marker = ">"
	} else {
		marker = " "
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorFor(name)))
	str := fmt.Sprintf("%s %d. %s", marker, index+1, style.Render(name))
	fmt.Fprint(w, zone.Mark(name, str))
}

var (
	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F00")).
			Italic(true)

	headerRowStyle = lipgloss.NewStyle().
			Bold(true)

	fileListStyle = lipgloss.NewStyle().
			Align(lipgloss.Left, lipgloss.Top).
			BorderStyle(lipgloss.HiddenBorder()).
			Margin(0).Padding(0)
	tableStyle = lipgloss.NewStyle().
			Align(lipgloss.Left, lipgloss.Top).
			BorderStyle(lipgloss.NormalBorder()).
			Margin(0).Padding(0, 1, 1, 2)
	fileHelpStyle = lipgloss.NewStyle().
			Align(lipgloss.Left, lipgloss.Top).
			Foreground(lipgloss.Color("#CCC")).
			Italic(true).
			Margin(0).Padding(0)
)

type previewKeymaps struct {
	top    key.Binding
	bottom key.Binding
	up     key.Binding
	down   key.Binding
	jump   key.Binding
	reload key.Binding
	exit   key.Binding
}

var _ help.KeyMap = previewKeymaps{}

func (k previewKeymaps) ShortHelp() []key.Binding {
	return []key.Binding{k.exit, k.reload, k.up, k.down}
}

func (k previewKeymaps) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.up, k.down, k.jump}, {k.top, k.bottom}, {k.reload, k.exit}}
}

var previewKeymap = previewKeymaps{
	top: key.NewBinding(
		key.WithKeys("gg"),
		key.WithHelp("gg", "top"),
	),
	bottom: key.NewBinding(
		key.WithKeys("G"),
		key.WithHelp("G", "bottom"),
	),
	up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "move up"),
	),
	down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "move down"),
	),
	jump: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "jump"),
	),
	reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	exit: key.NewBinding(
		key.WithKeys("esc", "ctrl-c", "q"),
		key.WithHelp("q/esc", "exit"),
	),
}
