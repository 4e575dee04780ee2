// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/splitgrid/internal/application/usecase"
	"github.com/bnema/splitgrid/internal/cli/styles"
	"github.com/bnema/splitgrid/internal/domain/entity"
	"github.com/bnema/splitgrid/internal/domain/repository"
	"github.com/bnema/splitgrid/internal/logging"
)

const (
	defaultLayoutsWidth  = 80
	defaultLayoutsHeight = 24
	// Rows taken by the header, status, detail spacing and help.
	layoutsChromeHeight = 10
	minTableHeight      = 3
)

// LayoutsModel is the Bubble Tea model for the interactive layout browser.
type LayoutsModel struct {
	help    help.Model
	keys    layoutsKeyMap
	table   table.Model
	confirm *styles.ConfirmModel

	items         []repository.LayoutSummary
	detail        *entity.LayoutSnapshot
	width         int
	height        int
	err           error
	statusMessage string

	ctx     context.Context
	layouts *usecase.ManageLayoutsUseCase
	theme   *styles.Theme
	now     func() time.Time
}

type layoutsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Show    key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k layoutsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Show, k.Delete, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k layoutsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Show},
		{k.Delete, k.Refresh},
		{k.Help, k.Quit},
	}
}

func defaultLayoutsKeyMap() layoutsKeyMap {
	return layoutsKeyMap{
		// Movement is handled by the table; these only feed the help view.
		Up:      key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		Show:    key.NewBinding(key.WithKeys("enter", "tab"), key.WithHelp("enter", "show tree")),
		Delete:  key.NewBinding(key.WithKeys("x", "d"), key.WithHelp("x", "delete")),
		Refresh: key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "refresh")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// LayoutsModelConfig holds the dependencies of the layouts model.
type LayoutsModelConfig struct {
	Layouts *usecase.ManageLayoutsUseCase
	// Now defaults to time.Now.
	Now func() time.Time
}

// NewLayoutsModel creates a new layout browser model.
func NewLayoutsModel(ctx context.Context, theme *styles.Theme, cfg LayoutsModelConfig) LayoutsModel {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return LayoutsModel{
		help:    help.New(),
		keys:    defaultLayoutsKeyMap(),
		table:   styles.NewStyledTable(theme, styles.LayoutTableColumns(), nil, defaultLayoutsWidth, defaultLayoutsHeight-layoutsChromeHeight),
		width:   defaultLayoutsWidth,
		height:  defaultLayoutsHeight,
		ctx:     ctx,
		layouts: cfg.Layouts,
		theme:   theme,
		now:     now,
	}
}

// Init implements tea.Model.
func (m LayoutsModel) Init() tea.Cmd {
	return m.loadLayouts
}

type layoutsLoadedMsg struct {
	items []repository.LayoutSummary
	err   error
}

type layoutDetailMsg struct {
	id   entity.WorkspaceID
	snap *entity.LayoutSnapshot
	err  error
}

type layoutDeletedMsg struct {
	id  entity.WorkspaceID
	err error
}

func (m LayoutsModel) loadLayouts() tea.Msg {
	log := logging.FromContext(m.ctx)
	if m.layouts == nil {
		return layoutsLoadedMsg{err: fmt.Errorf("layout storage not available")}
	}

	items, err := m.layouts.List(m.ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load layouts")
		return layoutsLoadedMsg{err: err}
	}
	log.Debug().Int("count", len(items)).Msg("loaded layouts")
	return layoutsLoadedMsg{items: items}
}

func (m LayoutsModel) showLayout(id entity.WorkspaceID) tea.Cmd {
	return func() tea.Msg {
		snap, err := m.layouts.Get(m.ctx, id)
		return layoutDetailMsg{id: id, snap: snap, err: err}
	}
}

func (m LayoutsModel) deleteLayout(id entity.WorkspaceID) tea.Cmd {
	return func() tea.Msg {
		logging.FromContext(m.ctx).Info().Str("workspace_id", string(id)).Msg("deleting layout")
		return layoutDeletedMsg{id: id, err: m.layouts.Delete(m.ctx, id)}
	}
}

// Update implements tea.Model.
func (m LayoutsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		return m.handleConfirmModal(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table.SetWidth(msg.Width)
		m.table.SetHeight(max(msg.Height-layoutsChromeHeight, minTableHeight))
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case layoutsLoadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.items = msg.items
			rows := make([]table.Row, 0, len(msg.items))
			now := m.now()
			for _, item := range msg.items {
				rows = append(rows, styles.LayoutRow(item, now))
			}
			m.table.SetRows(rows)
			if m.table.Cursor() >= len(rows) {
				m.table.SetCursor(max(len(rows)-1, 0))
			}
		}
		return m, nil

	case layoutDetailMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("Error: %v", msg.err)
			m.detail = nil
			return m, nil
		}
		m.detail = msg.snap
		return m, nil

	case layoutDeletedMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}
		m.statusMessage = fmt.Sprintf("Layout %s deleted", msg.id)
		if m.detail != nil && m.detail.WorkspaceID == msg.id {
			m.detail = nil
		}
		return m, m.loadLayouts
	}

	return m, nil
}

func (m LayoutsModel) handleConfirmModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	confirm, cmd := m.confirm.Update(msg)
	m.confirm = &confirm
	if !m.confirm.Done() {
		return m, cmd
	}
	if m.confirm.Result() {
		if item, ok := m.selected(); ok {
			cmd = m.deleteLayout(item.WorkspaceID)
		}
	}
	m.confirm = nil
	return m, cmd
}

func (m LayoutsModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Show):
		item, ok := m.selected()
		if !ok {
			return m, nil
		}
		if m.detail != nil && m.detail.WorkspaceID == item.WorkspaceID {
			m.detail = nil
			return m, nil
		}
		return m, m.showLayout(item.WorkspaceID)

	case key.Matches(msg, m.keys.Delete):
		if item, ok := m.selected(); ok {
			confirm := styles.NewConfirm(m.theme, fmt.Sprintf("Delete layout %s?", item.WorkspaceID))
			m.confirm = &confirm
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.statusMessage = ""
		return m, m.loadLayouts

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	before := m.table.Cursor()
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	if m.table.Cursor() != before {
		m.detail = nil
	}
	return m, cmd
}

func (m LayoutsModel) selected() (repository.LayoutSummary, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.items) {
		return repository.LayoutSummary{}, false
	}
	return m.items[i], true
}

// View implements tea.Model.
func (m LayoutsModel) View() string {
	if m.confirm != nil {
		return m.confirm.View()
	}

	t := m.theme
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(t.ErrorStyle.Render(fmt.Sprintf("%s Error: %v", styles.IconX, m.err)))
		b.WriteString("\n\n")
	}
	if m.statusMessage != "" {
		b.WriteString(t.Subtle.Render(m.statusMessage))
		b.WriteString("\n\n")
	}

	if len(m.items) == 0 {
		b.WriteString(t.Subtle.Render("  No saved layouts found."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	if m.detail != nil {
		b.WriteString("\n")
		b.WriteString(styles.LayoutTree(t, m.detail, "  "))
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m LayoutsModel) renderHeader() string {
	t := m.theme
	icon := lipgloss.NewStyle().Foreground(t.Accent).Render(styles.IconLayout)
	title := t.Title.MarginLeft(1).Render("Layouts")

	panes := 0
	for _, item := range m.items {
		panes += item.PaneCount
	}
	stats := t.Subtle.Render(fmt.Sprintf("  %d saved  %s %d panes", len(m.items), styles.IconPane, panes))
	return icon + title + stats
}

var _ tea.Model = (*LayoutsModel)(nil)
