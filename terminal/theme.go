package terminal

import "github.com/charmbracelet/lipgloss"

// Theme holds the colours used by every component. Values are anything
// lipgloss.Color accepts: ANSI indexes ("4", "240") or hex ("#00ADD8").
type Theme struct {
	Prompt    string `yaml:"prompt" mapstructure:"prompt"`
	Hint      string `yaml:"hint" mapstructure:"hint"`
	Error     string `yaml:"error" mapstructure:"error"`
	Highlight string `yaml:"highlight" mapstructure:"highlight"`
	Selected  string `yaml:"selected" mapstructure:"selected"`
	Success   string `yaml:"success" mapstructure:"success"`
	Failure   string `yaml:"failure" mapstructure:"failure"`
	Muted     string `yaml:"muted" mapstructure:"muted"`
}

// DefaultTheme is blue prompts with magenta hints, green for success and
// red for anything that went wrong.
func DefaultTheme() Theme {
	return Theme{
		Prompt:    "4",
		Hint:      "5",
		Error:     "1",
		Highlight: "4",
		Selected:  "6",
		Success:   "2",
		Failure:   "1",
		Muted:     "240",
	}
}

func (t Theme) withDefaults() Theme {
	d := DefaultTheme()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&t.Prompt, d.Prompt)
	fill(&t.Hint, d.Hint)
	fill(&t.Error, d.Error)
	fill(&t.Highlight, d.Highlight)
	fill(&t.Selected, d.Selected)
	fill(&t.Success, d.Success)
	fill(&t.Failure, d.Failure)
	fill(&t.Muted, d.Muted)
	return t
}

// Styles are the rendered form of a Theme.
type Styles struct {
	Prompt    lipgloss.Style
	Hint      lipgloss.Style
	Error     lipgloss.Style
	Highlight lipgloss.Style
	Selected  lipgloss.Style
	Success   lipgloss.Style
	Failure   lipgloss.Style
	Muted     lipgloss.Style
}

// Styles builds lipgloss styles for t on renderer r.
func (t Theme) Styles(r *lipgloss.Renderer) Styles {
	t = t.withDefaults()
	color := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}
	return Styles{
		Prompt:    color(t.Prompt).Bold(true),
		Hint:      color(t.Hint),
		Error:     color(t.Error),
		Highlight: color(t.Highlight).Bold(true),
		Selected:  color(t.Selected),
		Success:   color(t.Success).Bold(true),
		Failure:   color(t.Failure).Bold(true),
		Muted:     color(t.Muted),
	}
}
