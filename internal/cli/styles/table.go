package styles

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/splitgrid/internal/domain/repository"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Background(theme.SurfaceVariant).
		Bold(true)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// LayoutTableColumns returns columns for the layouts table.
func LayoutTableColumns() []table.Column {
	return []table.Column{
		{Title: "Workspace", Width: 24},
		{Title: "Panes", Width: 7},
		{Title: "Size", Width: 10},
		{Title: "Saved", Width: 12},
	}
}

// LayoutRow converts a layout summary to a table row.
func LayoutRow(s repository.LayoutSummary, now time.Time) table.Row {
	return table.Row{
		string(s.WorkspaceID),
		fmt.Sprintf("%d", s.PaneCount),
		FormatBytes(s.SizeBytes),
		RelativeTime(time.Unix(s.UpdatedAt, 0), now),
	}
}
