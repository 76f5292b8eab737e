package clean

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Presenter renders a cleanup plan for human review. It only reads the plan.
type Presenter struct {
	w io.Writer

	bold    lipgloss.Style
	heading lipgloss.Style
	keep    lipgloss.Style
	remove  lipgloss.Style
	pattern lipgloss.Style
}

// NewPresenter creates a Presenter writing to w. Styling degrades to plain
// text automatically when the output is not a terminal.
func NewPresenter(w io.Writer) *Presenter {
	return &Presenter{
		w:       w,
		bold:    lipgloss.NewStyle().Bold(true),
		heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		keep:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		remove:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		pattern: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	}
}

// Render writes the full report: policy summary, legend, the gcroot section
// (sorted by target), then one section per profile with generations listed
// most recent first.
func (p *Presenter) Render(plan *Plan) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.bold.Render("Welcome to nixclean"))
	fmt.Fprintf(p.w, "Keeping %s generation(s)\n", p.keep.Render(fmt.Sprintf("%d", plan.Policy.Keep)))
	fmt.Fprintf(p.w, "Keeping paths newer than %s\n", p.keep.Render(plan.Policy.KeepSince.String()))
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, "legend:")
	fmt.Fprintf(p.w, "%s: path to be kept\n", p.keep.Render("OK"))
	fmt.Fprintf(p.w, "%s: path to be removed\n", p.remove.Render("DEL"))
	fmt.Fprintln(p.w)

	if len(plan.GcRoots) > 0 {
		fmt.Fprintln(p.w, p.heading.Render("gcroots (matching the following patterns)"))
		for _, pattern := range plan.Patterns {
			fmt.Fprintf(p.w, "- %s  %s\n", p.pattern.Render("RE"), pattern)
		}
		for _, root := range plan.GcRoots {
			p.renderPath(root.Target, root.Remove)
		}
		fmt.Fprintln(p.w)
	}

	for _, profile := range plan.Profiles.SortedProfiles() {
		fmt.Fprintln(p.w, p.heading.Render(profile))
		generations := plan.Profiles[profile]
		for i := len(generations) - 1; i >= 0; i-- {
			p.renderPath(generations[i].Path, generations[i].Remove)
		}
		fmt.Fprintln(p.w)
	}
}

func (p *Presenter) renderPath(path string, remove bool) {
	if remove {
		fmt.Fprintf(p.w, "- %s %s\n", p.remove.Render("DEL"), path)
	} else {
		fmt.Fprintf(p.w, "- %s  %s\n", p.keep.Render("OK"), path)
	}
}
