// Package browse implements udmctl's read-only TUI document browser: a
// tree pane with a property table rendered beneath it, adapted from
// the teacher's hiveexplorer split key-tree/value-table layout down to a
// single model, since UDM documents nest far shallower than a registry
// hive and don't need hiveexplorer's virtualized scrollback machinery.
package browse

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pragma-engine/udm"
)

var (
	primaryColor   = lipgloss.Color("#7D56F4")
	secondaryColor = lipgloss.Color("#00D7FF")
	mutedColor     = lipgloss.Color("#666666")
	borderColor    = lipgloss.Color("#383838")

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor).Padding(0, 1)
	pathStyle   = lipgloss.NewStyle().Foreground(secondaryColor).Italic(true)
	paneStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderColor).Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().Background(primaryColor).Foreground(lipgloss.Color("#FFFFFF")).Bold(true)
	statusStyle   = lipgloss.NewStyle().Foreground(mutedColor)
)

// node is one row of the flattened, currently-visible tree.
type node struct {
	name  string
	path  string
	el    *udm.Element // nil for a non-Element (leaf) property
	depth int
}

// Model is the browser's bubbletea model.
type Model struct {
	data   *udm.Data
	nodes  []node
	cursor int
	width  int
	height int
	status string
}

// New builds a browser Model rooted at d.
func New(d *udm.Data) Model {
	m := Model{data: d}
	m.nodes = flatten(d.Root(), "", 0)
	return m
}

func flatten(el *udm.Element, prefix string, depth int) []node {
	var out []node
	for _, key := range el.Keys() {
		prop := el.Get(key)
		path := key
		if prefix != "" {
			path = prefix + "/" + key
		}
		if prop.Type == udm.Element {
			child, _ := prop.Value.(*udm.Element)
			out = append(out, node{name: key, path: path, el: child, depth: depth})
			out = append(out, flatten(child, path, depth+1)...)
			continue
		}
		out = append(out, node{name: key, path: path, depth: depth})
	}
	return out
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.nodes)-1 {
				m.cursor++
			}
		case "y":
			if m.cursor < len(m.nodes) {
				path := m.nodes[m.cursor].path
				if err := clipboard.WriteAll(path); err != nil {
					m.status = "copy failed: " + err.Error()
				} else {
					m.status = "copied " + path
				}
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("udmctl browse") + "\n")
	var tree strings.Builder
	for i, n := range m.nodes {
		line := strings.Repeat("  ", n.depth) + n.name
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		tree.WriteString(line + "\n")
	}
	b.WriteString(paneStyle.Render(tree.String()))

	if m.cursor < len(m.nodes) {
		cur := m.nodes[m.cursor]
		b.WriteString("\n" + pathStyle.Render(cur.path) + "\n")
		b.WriteString(valueTable(m, cur))
	}
	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status))
	}
	b.WriteString("\n" + statusStyle.Render("↑/↓ navigate · y copy path · q quit"))
	return b.String()
}

// valueTable renders the non-Element properties of the selected Element,
// the analogue of hiveexplorer's values-of-the-selected-key pane; for a
// selected leaf it renders that property's type and value instead.
func valueTable(m Model, cur node) string {
	parent := cur.el
	if parent == nil {
		prop, err := m.data.LoadProperty(cur.path)
		if err != nil {
			return statusStyle.Render(fmt.Sprintf("(%s) %v", cur.name, err))
		}
		text, _ := prop.To(udm.String)
		return fmt.Sprintf("%s  %v", prop.Type, text)
	}
	var rows strings.Builder
	for _, key := range parent.Keys() {
		p := parent.Get(key)
		if p.Type == udm.Element {
			continue
		}
		text, _ := p.To(udm.String)
		rows.WriteString(fmt.Sprintf("%-20s %-12s %v\n", key, p.Type, text))
	}
	return paneStyle.Render(rows.String())
}

// Run starts the browser's bubbletea event loop.
func Run(d *udm.Data) error {
	_, err := tea.NewProgram(New(d), tea.WithAltScreen()).Run()
	return err
}
