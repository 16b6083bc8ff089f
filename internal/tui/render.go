package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// ---------------------------------------------------------------------------
// Styles (Catppuccin Mocha)
// ---------------------------------------------------------------------------

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)

	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Background(colorMantle).
			Bold(true).
			Padding(0, 2)

	labelStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	operatorStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			Padding(0, 2)

	cellStyle        = lipgloss.NewStyle().Foreground(colorText)
	focusedCellStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2)

	statusErrStyle = statusBarStyle.Foreground(colorError)

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorError).
			Padding(0, 1)

	modalTitleStyle = lipgloss.NewStyle().Foreground(colorError).Bold(true)

	helpKeyStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	hintStyle = lipgloss.NewStyle().Foreground(colorOverlay1).Italic(true)
)

func renderHeader(title string, width int) string {
	if width <= 0 {
		return headerBarStyle.Render(title)
	}
	return headerBarStyle.Width(width).Render(title)
}

func (a *App) renderSection(title, content string) string {
	sep := lipgloss.NewStyle().Foreground(colorSurface2).
		Render(strings.Repeat("─", max(lipgloss.Width(content), lipgloss.Width(title))))
	return sectionStyle.Render(titleStyle.Render(title) + "\n" + sep + "\n" + content)
}

func (a *App) renderFooter(bindings []key.Binding) string {
	// Every character carries the footer background.
	bg := colorMantle
	keyStyle := helpKeyStyle.Background(bg)
	descStyle := helpDescStyle.Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(help.Key)+space+descStyle.Render(help.Desc))
	}
	content := strings.Join(parts, sep)

	if a.width == 0 {
		return footerStyle.Render(content)
	}
	return footerStyle.Width(a.width).Render(content)
}

func (a *App) renderStatus() string {
	style := statusBarStyle
	if a.statusErr {
		style = statusErrStyle
	}
	flat := strings.ReplaceAll(a.status, "\n", " ")
	if a.width == 0 {
		return style.Render(flat)
	}
	return style.Width(a.width).Render(flat)
}

// placeWithFooter pins the status line and footer to the bottom of the screen.
func (a *App) placeWithFooter(body, statusLine, footer string) string {
	if a.height == 0 {
		return body + "\n\n" + statusLine + "\n" + footer
	}
	contentHeight := max(a.height-2, 1)
	if lipgloss.Height(body) >= contentHeight {
		return body + "\n" + statusLine + "\n" + footer
	}
	// Place pads every row to full width, which clears leftovers from the
	// previous frame.
	main := lipgloss.Place(a.width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	return main + "\n" + statusLine + "\n" + footer
}

func (a *App) composeModal(base, statusLine, footer string) string {
	baseView := a.placeWithFooter(base, statusLine, footer)
	content := modalTitleStyle.Render(a.modal.title) + "\n\n" + a.modal.message + "\n\n" +
		hintStyle.Render("enter/esc to dismiss")
	if a.height == 0 || a.width == 0 {
		return baseView + "\n\n" + modalStyle.Render(content)
	}
	modal := modalStyle.Render(lipgloss.NewStyle().Width(min(60, max(a.width-10, 20))).Render(content))
	return centerModal(baseView, modal, a.width, max(a.height-2, 1))
}
