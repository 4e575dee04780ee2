package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config command output with styled text.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// ConfigPaths lists the files splitgrid reads and writes.
type ConfigPaths struct {
	ConfigFile string
	SchemaFile string
	Database   string
	LogFile    string
}

// RenderPaths renders one line per known file. Empty paths are skipped.
func (r *ConfigRenderer) RenderPaths(p ConfigPaths) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Normal.Width(9)
	pathStyle := r.theme.Subtle

	out := "\n"
	for _, row := range []struct{ icon, key, path string }{
		{IconConfig, "Config", p.ConfigFile},
		{IconConfig, "Schema", p.SchemaFile},
		{IconDatabase, "Database", p.Database},
		{IconVersion, "Log", p.LogFile},
	} {
		if row.path == "" {
			continue
		}
		out += fmt.Sprintf("  %s %s %s\n", iconStyle.Render(row.icon), keyStyle.Render(row.key), pathStyle.Render(row.path))
	}
	return out
}

// RenderSchemaWritten renders the message after the schema file is written.
func (r *ConfigRenderer) RenderSchemaWritten(path string) string {
	return fmt.Sprintf("\n  %s Schema written to %s\n",
		lipgloss.NewStyle().Foreground(r.theme.Success).Render(IconCheck),
		r.theme.Subtle.Render(path),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	return fmt.Sprintf("\n  %s Config error: %v\n",
		lipgloss.NewStyle().Foreground(r.theme.Error).Render(IconX),
		err,
	)
}
