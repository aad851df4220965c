package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/seriescoord/pkg/pipeline"
	"github.com/matzehuels/seriescoord/pkg/tree"
)

// exploreCommand starts an interactive drill-down through a hierarchy.
func (c *CLI) exploreCommand() *cobra.Command {
	var sort, viewRoot string

	cmd := &cobra.Command{
		Use:   "explore <fixture>",
		Short: "Drill through a hierarchical series interactively",
		Long: `Browse the completed hierarchy of a chart fixture. Enter drills into the
selected child, backspace returns to the parent and r reloads the fixture
from disk, moving the view root back to the root when the tree was rebuilt.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := c.newRunner(cmd)
			if err != nil {
				return err
			}
			defer r.Cache.Close()

			res, err := r.Execute(cmd.Context(), pipeline.Options{
				Fixture:  args[0],
				Sort:     sort,
				ViewRoot: splitPath(viewRoot),
			})
			if err != nil {
				return err
			}
			if res.Tree == nil {
				return fmt.Errorf("%s has no hierarchy", res.Chart)
			}

			// Reloads run while the TUI owns the terminal.
			quiet := log.New(io.Discard)
			reload := func() tea.Msg {
				res, err := r.Execute(cmd.Context(), pipeline.Options{
					Fixture: args[0],
					Sort:    sort,
					Logger:  quiet,
				})
				if err != nil {
					return reloadedMsg{err: err}
				}
				if res.Tree == nil {
					return reloadedMsg{err: fmt.Errorf("%s has no hierarchy", res.Chart)}
				}
				return reloadedMsg{tree: res.Tree.Tree}
			}

			p := tea.NewProgram(newExploreModel(res.Tree.Navigator, reload),
				tea.WithContext(cmd.Context()),
				tea.WithOutput(cmd.OutOrStdout()))
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&sort, "sort", "", "sibling order: desc, asc, none (default from fixture)")
	cmd.Flags().StringVar(&viewRoot, "view-root", "", "initial drill-down path, e.g. north/oslo")

	return cmd
}

var (
	exploreBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim)
	exploreHelpStyle = lipgloss.NewStyle().Foreground(colorDim)
)

type exploreKeys struct {
	Down   key.Binding
	Up     key.Binding
	Reload key.Binding
	Quit   key.Binding
}

var defaultExploreKeys = exploreKeys{
	Down:   key.NewBinding(key.WithKeys("enter", "right", "l"), key.WithHelp("⏎/→", "drill down")),
	Up:     key.NewBinding(key.WithKeys("backspace", "left", "h"), key.WithHelp("⌫/←", "up")),
	Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
}

// reloadedMsg carries a rebuilt tree, or the error that prevented it.
type reloadedMsg struct {
	tree *tree.Tree
	err  error
}

// exploreModel lists the children of the navigator's view root. Entering a
// child drills into it; backspace returns to the parent. reload, when set,
// rebuilds the tree.
type exploreModel struct {
	nav      *tree.Navigator
	reload   tea.Cmd
	keys     exploreKeys
	tbl      table.Model
	children []tree.NodeID
	status   string
}

func newExploreModel(nav *tree.Navigator, reload tea.Cmd) exploreModel {
	m := exploreModel{
		nav:    nav,
		reload: reload,
		keys:   defaultExploreKeys,
		tbl:  table.New(
			table.WithColumns([]table.Column{
				{Title: "Node", Width: 24},
				{Title: "Index", Width: 6},
				{Title: "Value", Width: 16},
				{Title: "Children", Width: 9},
			}),
			table.WithFocused(true),
			table.WithHeight(12),
		),
	}
	m.refresh()
	return m
}

// refresh rebuilds the rows from the current view root.
func (m *exploreModel) refresh() {
	t := m.nav.Tree()
	m.children = t.Children(m.nav.ViewRoot())
	rows := make([]table.Row, len(m.children))
	for i, r := range childRows(t, m.children) {
		rows[i] = table.Row(r)
	}
	m.tbl.SetRows(rows)
	m.tbl.SetCursor(0)
}

// selected returns the child under the cursor.
func (m exploreModel) selected() (tree.NodeID, bool) {
	i := m.tbl.Cursor()
	if i < 0 || i >= len(m.children) {
		return tree.None, false
	}
	return m.children[i], true
}

func (m exploreModel) Init() tea.Cmd { return nil }

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(reloadedMsg); ok {
		if msg.err != nil {
			m.status = "reload failed: " + msg.err.Error()
			return m, nil
		}
		drilled := m.nav.ViewRoot() != m.nav.Tree().Root()
		if m.nav.SetTree(msg.tree) && drilled {
			m.status = "tree rebuilt, view root reset to the root"
		} else {
			m.status = "reloaded"
		}
		m.refresh()
		return m, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reload) && m.reload != nil:
			m.status = "reloading..."
			return m, m.reload
		case key.Matches(msg, m.keys.Down):
			id, ok := m.selected()
			if !ok || !m.nav.DrillDown(id) {
				m.status = "no node selected"
				return m, nil
			}
			m.status = ""
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Up):
			if !m.nav.DrillUp() {
				m.status = "already at the root"
				return m, nil
			}
			m.status = ""
			m.refresh()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}

func (m exploreModel) View() string {
	t := m.nav.Tree()
	view := m.nav.ViewRoot()

	var b strings.Builder
	names := []string{t.Name(t.Root())}
	names = append(names, t.NamePath(view)...)
	b.WriteString(StyleTitle.Render(strings.Join(names, " "+iconArrow+" ")))
	b.WriteString("  " + StyleDim.Render(t.Value(view).String()))
	b.WriteString("\n\n")

	if len(m.children) == 0 {
		b.WriteString(StyleDim.Render("  (leaf, index " + strconv.Itoa(t.DataIndex(view)) + ")"))
	} else {
		b.WriteString(exploreBoxStyle.Render(m.tbl.View()))
	}
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(StyleWarning.Render(m.status) + "\n")
	}
	help := []string{"↑/↓ move"}
	bindings := []key.Binding{m.keys.Down, m.keys.Up}
	if m.reload != nil {
		bindings = append(bindings, m.keys.Reload)
	}
	for _, k := range append(bindings, m.keys.Quit) {
		h := k.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	b.WriteString(exploreHelpStyle.Render(strings.Join(help, "  ")))
	return b.String()
}
