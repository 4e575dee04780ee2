package termhost

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/bnema/splitgrid/internal/application/usecase"
	"github.com/bnema/splitgrid/internal/domain/entity"
)

const (
	keyQuit     = tcell.KeyCtrlQ
	keyPaneMode = tcell.KeyCtrlP
)

var (
	focusKeys = map[rune]entity.SplitDirection{
		'h': entity.SplitLeft,
		'j': entity.SplitDown,
		'k': entity.SplitUp,
		'l': entity.SplitRight,
	}
	swapKeys = map[rune]entity.SplitDirection{
		'H': entity.SplitLeft,
		'J': entity.SplitDown,
		'K': entity.SplitUp,
		'L': entity.SplitRight,
	}
	splitKeys = map[rune]entity.SplitDirection{
		'r': entity.SplitRight,
		'R': entity.SplitLeft,
		'd': entity.SplitDown,
		'D': entity.SplitUp,
	}
	arrowKeys = map[tcell.Key]entity.SplitDirection{
		tcell.KeyLeft:  entity.SplitLeft,
		tcell.KeyDown:  entity.SplitDown,
		tcell.KeyUp:    entity.SplitUp,
		tcell.KeyRight: entity.SplitRight,
	}
)

// handleKey reports whether the key quits the host.
func (h *Host) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == keyQuit {
		return true
	}
	if h.paneMode {
		h.handlePaneKey(ev)
		return false
	}

	pane, ok := h.registry.Lookup(h.ws.ActivePaneID)
	switch ev.Key() {
	case keyPaneMode:
		h.paneMode = true
		h.status = ""
	case tcell.KeyEnter:
		if ok {
			pane.Commit()
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if ok {
			pane.Backspace()
		}
	case tcell.KeyRune:
		if ok {
			pane.Type(ev.Rune())
		}
	}
	return false
}

// handlePaneKey runs pane commands until Esc leaves pane mode.
func (h *Host) handlePaneKey(ev *tcell.EventKey) {
	h.status = ""

	if dir, ok := arrowKeys[ev.Key()]; ok {
		h.focusDirection(dir)
		return
	}
	switch ev.Key() {
	case tcell.KeyEsc, tcell.KeyEnter, keyPaneMode:
		h.paneMode = false
		return
	case tcell.KeyTab:
		h.panes.ActivateNextPane(h.ctx, h.ws)
		return
	case tcell.KeyBacktab:
		h.panes.ActivatePreviousPane(h.ctx, h.ws)
		return
	case tcell.KeyRune:
	default:
		return
	}

	r := ev.Rune()
	if dir, ok := focusKeys[r]; ok {
		h.focusDirection(dir)
		return
	}
	if dir, ok := swapKeys[r]; ok {
		if !h.panes.SwapPaneInDirection(h.ctx, h.ws, dir) {
			h.status = fmt.Sprintf("no pane %s", dir)
		}
		return
	}
	if dir, ok := splitKeys[r]; ok {
		h.split(dir)
		return
	}

	switch {
	case r == 'x':
		h.closeActive()
	case r == 'z':
		if _, err := h.panes.ToggleZoom(h.ctx, h.ws); err != nil {
			h.status = err.Error()
		}
	case r == 'n':
		h.panes.ActivateNextPane(h.ctx, h.ws)
	case r == 'p':
		h.panes.ActivatePreviousPane(h.ctx, h.ws)
	case r >= '1' && r <= '9':
		id, err := h.panes.ActivatePaneAtIndex(h.ctx, h.ws, int(r-'1'))
		switch {
		case err != nil:
			h.status = err.Error()
		case id == "":
			h.status = fmt.Sprintf("no pane %c", r)
		}
	case r == '=':
		h.equalize()
	}
}

func (h *Host) focusDirection(dir entity.SplitDirection) {
	if !h.panes.ActivatePaneInDirection(h.ctx, h.ws, dir) {
		h.status = fmt.Sprintf("no pane %s", dir)
	}
}

func (h *Host) split(dir entity.SplitDirection) {
	out, err := h.panes.SplitPane(h.ctx, usecase.SplitPaneInput{
		Workspace: h.ws,
		Direction: dir,
	})
	if err != nil {
		h.logger.Warn().Err(err).Str("direction", dir.String()).Msg("split failed")
		h.status = err.Error()
		return
	}
	h.status = fmt.Sprintf("opened %s", out.NewPane.Title())
}

func (h *Host) closeActive() {
	removed, err := h.panes.RemovePane(h.ctx, h.ws, h.ws.ActivePaneID)
	switch {
	case err != nil:
		h.status = err.Error()
	case !removed:
		h.status = "cannot close the last pane"
	}
}

// equalize resets every axis to uniform flexes.
func (h *Host) equalize() {
	h.ws.Center.Walk(func(axis *entity.PaneAxis) bool {
		axis.ResetFlexes()
		return true
	})
	h.serialize()
}
