package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/shelfview/internal/display"
	"github.com/rshade/shelfview/internal/engine"
)

const (
	prevLabel = "[< Prev]"
	nextLabel = "[Next >]"

	listHelp   = "[/] Search  [t] Title  [p] Price  [z] Page size  [←/→] Page  [↑↓] Move  [Enter] Details  [r] Refresh  [q] Quit"
	errorHelp  = "[r] Retry  [q] Quit"
	detailHelp = "[Esc] Back to list  [q] Quit"
)

// View renders the current view (Bubble Tea interface).
func (m ProductsModel) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateLoading:
		return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), "", RenderLoading(m.loading))
	case ViewStateError:
		return m.renderErrorView()
	case ViewStateDetail:
		return m.renderDetailView()
	case ViewStateList:
		return m.renderListView()
	default:
		return ""
	}
}

func (m ProductsModel) renderHeader() string {
	return HeaderStyle.Render("SHELFVIEW") + "  " + SubtleStyle.Render("product catalog")
}

// renderSummary shows counts, search term and sort order.
func (m ProductsModel) renderSummary() string {
	var sb strings.Builder
	sb.WriteString(LabelStyle.Render("Products: "))
	sb.WriteString(ValueStyle.Render(m.formatter.Count(len(m.view.Visible()))))
	if m.view.Search() != "" {
		sb.WriteString(LabelStyle.Render(" of "))
		sb.WriteString(ValueStyle.Render(m.formatter.Count(len(m.view.All()))))
	}
	sb.WriteString(LabelStyle.Render("    Sort: "))
	sb.WriteString(ValueStyle.Render(sortLabel(m.view.Sorting())))
	sb.WriteString(LabelStyle.Render("    Page size: "))
	sb.WriteString(ValueStyle.Render(m.formatter.Count(m.view.PageSize())))
	return sb.String()
}

func (m ProductsModel) renderSearch() string {
	if m.searching {
		return m.textInput.View()
	}
	if term := m.view.Search(); term != "" {
		return LabelStyle.Render("Search: ") + ValueStyle.Render(fmt.Sprintf("%q", term)) +
			SubtleStyle.Render("  (esc to clear)")
	}
	return SubtleStyle.Render("Press / to search")
}

// renderPager renders the prev/next markers around the page indicator.
func (m ProductsModel) renderPager() string {
	page := m.view.Page()

	prev := NavDisabledStyle.Render(prevLabel)
	if page.HasPrev {
		prev = NavEnabledStyle.Render(prevLabel)
	}
	next := NavDisabledStyle.Render(nextLabel)
	if page.HasNext {
		next = NavEnabledStyle.Render(nextLabel)
	}
	return prev + "  " + display.PageIndicator(page) + "  " + next
}

func (m ProductsModel) renderListView() string {
	body := m.table.View()
	if m.view.Page().Empty() {
		body = InfoStyle.Render(display.NoProducts)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderSummary(),
		m.renderSearch(),
		"",
		body,
		"",
		m.renderPager(),
		SubtleStyle.Render(listHelp),
	)
}

// renderErrorView shows the fetch error in place of the table.
func (m ProductsModel) renderErrorView() string {
	width := max(m.width-borderPadding, filterInputWidth)
	message := fmt.Sprintf("Failed to load products.\n\n%v", m.err)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		"",
		ErrorBoxStyle.Width(width).Render(message),
		"",
		SubtleStyle.Render(errorHelp),
	)
}

func (m ProductsModel) renderDetailView() string {
	row, ok := m.selectedRow()
	if !ok {
		return "No product selected.\n\n" + detailHelp
	}
	return RenderProductDetail(row, m.width)
}

// RenderProductDetail renders a detailed view of a single product row.
func RenderProductDetail(row display.Row, width int) string {
	var content strings.Builder

	content.WriteString(HeaderStyle.Render("PRODUCT DETAIL"))
	content.WriteString("\n\n")

	fields := []struct{ label, value string }{
		{"ID:          ", fmt.Sprintf("%d", row.ID)},
		{"Title:       ", row.Title},
		{"Price:       ", row.Price},
		{"Category:    ", row.Category},
		{"Image:       ", row.ImageURL},
	}
	for _, f := range fields {
		content.WriteString(LabelStyle.Render(f.label))
		content.WriteString(ValueStyle.Render(f.value))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(LabelStyle.Render("Description"))
	content.WriteString("\n")
	content.WriteString(lipgloss.NewStyle().Width(max(width-2*borderPadding, filterInputWidth)).Render(row.Description))
	content.WriteString("\n\n")
	content.WriteString(SubtleStyle.Render(detailHelp))

	return BoxStyle.Width(max(width-borderPadding, filterInputWidth)).Render(content.String())
}

func sortLabel(cfg engine.SortConfig) string {
	switch cfg.Column {
	case engine.SortTitle, engine.SortPrice:
		arrow := "↑"
		if cfg.Direction == engine.Descending {
			arrow = "↓"
		}
		return string(cfg.Column) + " " + arrow
	default:
		return "none"
	}
}
