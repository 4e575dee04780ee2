package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/splitgrid/internal/domain/entity"
	"github.com/bnema/splitgrid/internal/domain/repository"
)

// LayoutsCLIRenderer renders non-interactive output for the layouts
// subcommands (e.g. `splitgrid layouts list`, `show`, `delete`).
type LayoutsCLIRenderer struct {
	theme *Theme
	now   func() time.Time
}

func NewLayoutsCLIRenderer(theme *Theme) *LayoutsCLIRenderer {
	return &LayoutsCLIRenderer{theme: theme, now: time.Now}
}

func (r *LayoutsCLIRenderer) RenderEmptyList() string {
	return r.theme.Subtle.Render("No saved layouts found.")
}

func (r *LayoutsCLIRenderer) RenderList(items []repository.LayoutSummary) string {
	if len(items) == 0 {
		return r.RenderEmptyList()
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconLayout), r.theme.Title.Render("Layouts")))
	b.WriteString("\n\n")
	for _, s := range items {
		b.WriteString(r.renderOne(s))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(r.theme.Subtle.Render("Tip: use `splitgrid layouts` for the interactive browser."))
	return b.String()
}

func (r *LayoutsCLIRenderer) renderOne(s repository.LayoutSummary) string {
	return fmt.Sprintf("  %s  %s %s  %s",
		r.theme.Highlight.Render(string(s.WorkspaceID)),
		r.theme.BadgeMuted.Render(fmt.Sprintf("%d panes", s.PaneCount)),
		r.theme.BadgeMuted.Render(FormatBytes(s.SizeBytes)),
		r.theme.Subtle.Render(RelativeTime(time.Unix(s.UpdatedAt, 0), r.now())),
	)
}

// RenderShow renders a saved layout with its pane tree.
func (r *LayoutsCLIRenderer) RenderShow(snap *entity.LayoutSnapshot) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s  %s\n\n",
		r.theme.Highlight.Render(IconLayout),
		r.theme.Title.Render(string(snap.WorkspaceID)),
		r.theme.Subtle.Render(fmt.Sprintf("saved %s", RelativeTime(snap.SavedAt, r.now()))),
	))
	b.WriteString(LayoutTree(r.theme, snap, "  "))
	return b.String()
}

func (r *LayoutsCLIRenderer) RenderDeleted(id entity.WorkspaceID) string {
	return fmt.Sprintf("%s Layout %s deleted.",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(string(id)),
	)
}

func (r *LayoutsCLIRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %v", r.theme.ErrorStyle.Render(IconX), err)
}

// LayoutTree draws the pane tree of snap, one node per line, each line
// starting with indent. Axes show each child's share of the space.
func LayoutTree(theme *Theme, snap *entity.LayoutSnapshot, indent string) string {
	if snap == nil || snap.Root == nil {
		return indent + theme.Subtle.Render("(empty)") + "\n"
	}
	tr := treeRenderer{
		theme:  theme,
		snap:   snap,
		branch: lipgloss.NewStyle().Foreground(theme.Border),
	}
	var b strings.Builder
	tr.node(&b, snap.Root, indent, false, "", 0)
	return b.String()
}

type treeRenderer struct {
	theme  *Theme
	snap   *entity.LayoutSnapshot
	branch lipgloss.Style
}

func (tr treeRenderer) node(b *strings.Builder, n *entity.MemberSnapshot, indent string, last bool, share string, depth int) {
	if n == nil {
		return
	}
	t := tr.theme

	var label string
	if n.Pane != nil {
		id := *n.Pane
		label = fmt.Sprintf("%s %s", t.Subtle.Render(IconPane), t.Normal.Render(string(id)))
		if id == tr.snap.ActivePaneID {
			label += " " + t.Badge.Render("active")
		}
		if id == tr.snap.ZoomedPaneID {
			label += " " + t.BadgeMuted.Render(IconZoom+" zoomed")
		}
	} else {
		icon := IconSplitH
		if n.Axis == entity.AxisVertical {
			icon = IconSplitV
		}
		label = fmt.Sprintf("%s %s", t.Subtle.Render(icon), t.Subtle.Render(n.Axis.String()))
	}
	if share != "" {
		label += " " + t.Subtle.Render(share)
	}
	prefix := ""
	if depth > 0 {
		prefix = "├── "
		if last {
			prefix = "└── "
		}
		prefix = tr.branch.Render(prefix)
	}
	fmt.Fprintf(b, "%s%s%s\n", indent, prefix, label)

	if len(n.Members) == 0 {
		return
	}

	childIndent := indent
	switch {
	case depth == 0:
	case last:
		childIndent += "    "
	default:
		childIndent += tr.branch.Render("│   ")
	}

	total := 0.0
	for _, f := range n.Flexes {
		total += f
	}
	for i, child := range n.Members {
		childShare := ""
		if total > 0 && i < len(n.Flexes) {
			childShare = fmt.Sprintf("%.0f%%", n.Flexes[i]/total*100)
		}
		tr.node(b, child, childIndent, i == len(n.Members)-1, childShare, depth+1)
	}
}
