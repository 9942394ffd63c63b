package choose

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/simonhull/clytia/terminal"
)

// Choice is one option in a multichoice list.
type Choice struct {
	Label    string
	Selected bool
}

// multiModel is the bubbletea model behind Selector.Multi.
type multiModel struct {
	choices   []Choice
	cursor    Cursor
	keys      keyMap
	help      help.Model
	showHelp  bool
	styles    terminal.Styles
	done      bool
	cancelled bool
}

func newMultiModel(choices []Choice, policy EdgePolicy, styles terminal.Styles, showHelp bool) multiModel {
	return multiModel{
		choices:  slices.Clone(choices),
		cursor:   NewCursor(len(choices), policy),
		keys:     defaultKeyMap(true),
		help:     help.New(),
		showHelp: showHelp,
		styles:   styles,
	}
}

func (m multiModel) Init() tea.Cmd {
	return nil
}

func (m multiModel) finished() bool {
	return m.done || m.cancelled
}

func (m multiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		if m.done || m.cancelled {
			return m, tea.Quit
		}
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Confirm):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.cursor = m.cursor.Up()
		case key.Matches(msg, m.keys.Down):
			m.cursor = m.cursor.Down()
		case key.Matches(msg, m.keys.Toggle):
			m.choices = slices.Clone(m.choices)
			i := m.cursor.Index()
			m.choices[i].Selected = !m.choices[i].Selected
		case key.Matches(msg, m.keys.All):
			all := !slices.ContainsFunc(m.choices, func(c Choice) bool { return !c.Selected })
			m.choices = slices.Clone(m.choices)
			for i := range m.choices {
				m.choices[i].Selected = !all
			}
		}
	}
	return m, nil
}

func (m multiModel) View() string {
	if m.cancelled {
		return ""
	}

	var b strings.Builder
	if m.done {
		// Only the answer stays on screen.
		for _, c := range m.choices {
			if c.Selected {
				b.WriteString(m.styles.Success.Render("[X] "+c.Label) + "\n")
			}
		}
		return b.String()
	}

	for i, c := range m.choices {
		box := "[ ] "
		if c.Selected {
			box = "[X] "
		}
		switch {
		case i == m.cursor.Index():
			b.WriteString(m.styles.Highlight.Render("> " + box + c.Label))
		case c.Selected:
			b.WriteString("  " + m.styles.Selected.Render(box+c.Label))
		default:
			b.WriteString("  " + box + c.Label)
		}
		b.WriteString("\n")
	}
	if m.showHelp {
		b.WriteString("\n" + m.help.View(m.keys) + "\n")
	}
	return b.String()
}

func (m multiModel) selection() Selection {
	sel := Selection{Cursor: m.cursor.Index()}
	for i, c := range m.choices {
		if c.Selected {
			sel.Indices = append(sel.Indices, i)
			sel.Labels = append(sel.Labels, c.Label)
		}
	}
	return sel
}

// menuModel is the bubbletea model behind Selector.One.
type menuModel struct {
	options   []string
	cursor    Cursor
	keys      keyMap
	help      help.Model
	showHelp  bool
	styles    terminal.Styles
	done      bool
	cancelled bool
}

func newMenuModel(options []string, policy EdgePolicy, styles terminal.Styles, showHelp bool) menuModel {
	return menuModel{
		options:  options,
		cursor:   NewCursor(len(options), policy),
		keys:     defaultKeyMap(false),
		help:     help.New(),
		showHelp: showHelp,
		styles:   styles,
	}
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) finished() bool {
	return m.done || m.cancelled
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		if m.done || m.cancelled {
			return m, tea.Quit
		}
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Confirm):
			m.done = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.cursor = m.cursor.Up()
		case key.Matches(msg, m.keys.Down):
			m.cursor = m.cursor.Down()
		}
	}
	return m, nil
}

func (m menuModel) View() string {
	if m.cancelled {
		return ""
	}
	if m.done {
		return m.styles.Success.Render("=> "+m.options[m.cursor.Index()]) + "\n"
	}

	var b strings.Builder
	for i, opt := range m.options {
		if i == m.cursor.Index() {
			b.WriteString(m.styles.Highlight.Render("=> " + opt))
		} else {
			b.WriteString("   " + opt)
		}
		b.WriteString("\n")
	}
	if m.showHelp {
		b.WriteString("\n" + m.help.View(m.keys) + "\n")
	}
	return b.String()
}
