package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/formcraft/formcraft-cli/pkg/reorder"
)

// Screen geometry shared by the renderer and the mouse hit testing. Rows
// are counted from the top of the builder view:
//
//	0      title
//	1      blank
//	2      column top border
//	3      column heading
//	4      blank
//	5...   column body (field cards start here)
const (
	titleRows     = 2
	columnHeadRow = titleRows + 1
	bodyTopRow    = columnHeadRow + 2
	cardHeight    = 3

	outerPadding = 1
	columnGap    = 1

	// title, column borders, blank before help, help pane, status bar
	reservedRows = titleRows + 2 + 1 + 4 + 1
	minContent   = 8
)

// SharedLayout provides the column calculations and rendering helpers the
// builder view and its hit testing agree on.
type SharedLayout struct {
	Width       int
	Height      int
	ShowPreview bool

	// Cached computed values
	contentHeight int
	columnWidth   int
}

// NewSharedLayout creates a new shared layout with given dimensions
func NewSharedLayout(width, height int, showPreview bool) *SharedLayout {
	sl := &SharedLayout{
		Width:       width,
		Height:      height,
		ShowPreview: showPreview,
	}
	sl.recalculateDimensions()
	return sl
}

// SetSize updates the layout dimensions and recalculates cached values
func (sl *SharedLayout) SetSize(width, height int) {
	sl.Width = width
	sl.Height = height
	sl.recalculateDimensions()
}

// SetShowPreview updates the preview visibility and recalculates dimensions
func (sl *SharedLayout) SetShowPreview(show bool) {
	sl.ShowPreview = show
	sl.recalculateDimensions()
}

func (sl *SharedLayout) recalculateDimensions() {
	cols := sl.ColumnCount()
	// outer padding both sides, gaps between columns, two border cells per column
	sl.columnWidth = (sl.Width - 2*outerPadding - (cols-1)*columnGap - 2*cols) / cols
	if sl.columnWidth < 10 {
		sl.columnWidth = 10
	}

	sl.contentHeight = sl.Height - reservedRows
	if sl.contentHeight < minContent {
		sl.contentHeight = minContent
	}
}

// ColumnCount is 3 with the preview shown, 2 without
func (sl *SharedLayout) ColumnCount() int {
	if sl.ShowPreview {
		return 3
	}
	return 2
}

// GetContentHeight returns the inner height of each column
func (sl *SharedLayout) GetContentHeight() int {
	return sl.contentHeight
}

// GetColumnWidth returns the inner width of each column
func (sl *SharedLayout) GetColumnWidth() int {
	return sl.columnWidth
}

// BodyHeight is the number of rows below a column's heading
func (sl *SharedLayout) BodyHeight() int {
	return sl.contentHeight - 2
}

// VisibleCards is how many field cards fit in the fields column
func (sl *SharedLayout) VisibleCards() int {
	n := sl.BodyHeight() / cardHeight
	if n < 1 {
		n = 1
	}
	return n
}

// ColumnAt returns which column x falls in, or -1 for gaps and padding
func (sl *SharedLayout) ColumnAt(x int) column {
	left := outerPadding
	for c := 0; c < sl.ColumnCount(); c++ {
		right := left + sl.columnWidth + 2
		if x >= left && x < right {
			return column(c)
		}
		left = right + columnGap
	}
	return -1
}

// CardSlotAt maps a screen row to a visible card slot, or -1
func (sl *SharedLayout) CardSlotAt(y int) int {
	if y < bodyTopRow {
		return -1
	}
	slot := (y - bodyTopRow) / cardHeight
	if slot >= sl.VisibleCards() {
		return -1
	}
	return slot
}

// CardBox is the vertical extent of a visible card slot
func (sl *SharedLayout) CardBox(slot int) reorder.Box {
	top := float64(bodyTopRow + slot*cardHeight)
	return reorder.Box{Top: top, Bottom: top + cardHeight}
}

// RenderTitle renders the top line with an optional right aligned badge
func (sl *SharedLayout) RenderTitle(title, badge string) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorActive)).
		Bold(true)

	left := titleStyle.Render(title)
	space := sl.Width - 2*outerPadding - lipgloss.Width(left) - lipgloss.Width(badge)
	if space < 1 {
		space = 1
	}

	line := left + strings.Repeat(" ", space) + badge
	return ContentPaddingStyle.Render(line) + "\n"
}

// RenderHeader renders a heading followed by a rule of colons
func (sl *SharedLayout) RenderHeader(heading string, active bool, badge string, availableWidth int) string {
	headerStyle := GetActiveHeaderStyle(active)
	colonStyle := GetActiveColonStyle(active)

	badgeWidth := 0
	if badge != "" {
		badgeWidth = lipgloss.Width(badge) + 1
	}

	colonSpace := availableWidth - len(heading) - badgeWidth - 1
	if colonSpace < 3 {
		colonSpace = 3
	}

	var result strings.Builder
	result.WriteString(headerStyle.Render(heading))
	result.WriteString(" ")
	result.WriteString(colonStyle.Render(strings.Repeat(":", colonSpace)))
	if badge != "" {
		result.WriteString(" ")
		result.WriteString(badge)
	}

	return result.String()
}

// ColumnHeaderConfig holds configuration for rendering column headers
type ColumnHeaderConfig struct {
	Heading string
	Active  bool
	Badge   string
}

// RenderColumn draws one bordered column: heading, a blank row, then body
// truncated to fit.
func (sl *SharedLayout) RenderColumn(config ColumnHeaderConfig, body string) string {
	inner := sl.columnWidth - 2 // content padding
	header := sl.RenderHeader(config.Heading, config.Active, config.Badge, inner)

	lines := strings.Split(strings.TrimRight(body, "\n"), "\n")
	if len(lines) > sl.BodyHeight() {
		lines = lines[:sl.BodyHeight()]
	}
	for i, line := range lines {
		lines[i] = truncate.StringWithTail(line, uint(inner), "…")
	}

	content := header + "\n\n" + strings.Join(lines, "\n")

	style := InactiveBorderStyle
	if config.Active {
		style = ActiveBorderStyle
	}
	return style.
		Width(sl.columnWidth).
		Height(sl.contentHeight).
		Padding(0, 1).
		Render(content)
}

// JoinColumns lays columns out left to right with the shared gap
func (sl *SharedLayout) JoinColumns(columns ...string) string {
	parts := make([]string, 0, len(columns)*2)
	for i, c := range columns {
		if i > 0 {
			parts = append(parts, strings.Repeat(" ", columnGap))
		}
		parts = append(parts, c)
	}
	return ContentPaddingStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
}

// RenderHelpPane renders the help text in a bordered pane
func (sl *SharedLayout) RenderHelpPane(helpRows [][]string) string {
	helpBorderStyle := HelpBorderStyle.
		Width(sl.Width-4). // Account for left/right padding (2) and borders (2)
		Padding(0, 1)

	helpContent := formatHelpTextRows(helpRows, sl.Width-8)
	return ContentPaddingStyle.Render(helpBorderStyle.Render(helpContent))
}

// formatHelpTextRows joins each row's entries with a separator, dropping
// entries that would overflow the width.
func formatHelpTextRows(rows [][]string, width int) string {
	sep := DescriptionStyle.Render(" • ")
	sepWidth := lipgloss.Width(sep)

	out := make([]string, 0, len(rows))
	for _, row := range rows {
		var line strings.Builder
		used := 0
		for i, item := range row {
			w := lipgloss.Width(item)
			if i > 0 {
				w += sepWidth
			}
			if used+w > width {
				break
			}
			if i > 0 {
				line.WriteString(sep)
			}
			line.WriteString(DescriptionStyle.Render(item))
			used += w
		}
		out = append(out, line.String())
	}
	return strings.Join(out, "\n")
}
