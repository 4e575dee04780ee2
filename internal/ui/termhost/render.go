package termhost

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/bnema/splitgrid/internal/domain/entity"
	"github.com/bnema/splitgrid/internal/ui/layout"
)

var (
	borderStyle       = tcell.StyleDefault.Foreground(tcell.ColorGray)
	activeBorderStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	textStyle         = tcell.StyleDefault
	statusStyle       = tcell.StyleDefault.Reverse(true)
	modeStyle         = tcell.StyleDefault.Background(tcell.ColorGreen).Foreground(tcell.ColorBlack).Bold(true)
)

const (
	normalHint = "ctrl+p panes  ctrl+q quit"
	paneHint   = "hjkl focus  HJKL swap  r/R/d/D split  x close  z zoom  n/p cycle  1-9 goto  = equalize  esc done"
)

// Render lays the workspace out and redraws the whole screen.
func (h *Host) Render() {
	frame := h.engine.Layout(h.ws, h.container())

	h.screen.Clear()
	if frame.Zoomed != nil {
		h.drawPane(*frame.Zoomed)
	} else {
		for _, region := range frame.Panes {
			h.drawPane(region)
		}
		for _, div := range frame.Dividers {
			h.drawDivider(div)
		}
	}
	h.drawStatus()
	h.screen.Show()
}

func (h *Host) drawPane(region layout.PaneRegion) {
	x0, y0, x1, y1 := h.cellRect(region.Bounds)
	if x1-x0 < 2 || y1-y0 < 2 {
		return
	}

	style := borderStyle
	if region.Active {
		style = activeBorderStyle
	}
	h.drawBox(x0, y0, x1-1, y1-1, style)

	pane, ok := h.registry.Lookup(region.Pane)
	title := string(region.Pane)
	if ok {
		title = pane.Title()
	}
	if h.ws.IsZoomed(region.Pane) {
		title += " [zoom]"
	}
	width := x1 - x0 - 2
	h.drawText(x0+1, y0, runewidth.Truncate(" "+title+" ", width, "…"), style)

	rows := y1 - y0 - 2
	if !ok || rows <= 0 || width <= 0 {
		return
	}
	lines, input := pane.Content()
	if region.Active {
		input += "_"
	}
	lines = append(lines, input)
	if len(lines) > rows {
		lines = lines[len(lines)-rows:]
	}
	for i, line := range lines {
		h.drawText(x0+1, y0+1+i, runewidth.Truncate(line, width, "…"), textStyle)
	}
}

// drawDivider paints a divider rect as line runes, at least one cell thick.
func (h *Host) drawDivider(b entity.Bounds) {
	x0, y0, x1, y1 := h.cellRect(b)
	r := tcell.RuneVLine
	if b.Size.Width >= b.Size.Height {
		r = tcell.RuneHLine
	}
	if r == tcell.RuneVLine {
		x1 = max(x1, x0+1)
	} else {
		y1 = max(y1, y0+1)
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			h.screen.SetContent(x, y, r, nil, borderStyle)
		}
	}
}

func (h *Host) drawBox(x0, y0, x1, y1 int, style tcell.Style) {
	for x := x0 + 1; x < x1; x++ {
		h.screen.SetContent(x, y0, tcell.RuneHLine, nil, style)
		h.screen.SetContent(x, y1, tcell.RuneHLine, nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		h.screen.SetContent(x0, y, tcell.RuneVLine, nil, style)
		h.screen.SetContent(x1, y, tcell.RuneVLine, nil, style)
	}
	h.screen.SetContent(x0, y0, tcell.RuneULCorner, nil, style)
	h.screen.SetContent(x1, y0, tcell.RuneURCorner, nil, style)
	h.screen.SetContent(x0, y1, tcell.RuneLLCorner, nil, style)
	h.screen.SetContent(x1, y1, tcell.RuneLRCorner, nil, style)
}

// drawText writes s from (x, y) and returns the column after it.
func (h *Host) drawText(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		h.screen.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

func (h *Host) drawStatus() {
	cols, rows := h.screen.Size()
	if rows == 0 {
		return
	}
	y := rows - 1
	for x := 0; x < cols; x++ {
		h.screen.SetContent(x, y, ' ', nil, statusStyle)
	}

	mode, hint := " NORMAL ", normalHint
	if h.paneMode {
		mode, hint = " PANE ", paneHint
	}
	x := h.drawText(0, y, mode, modeStyle)

	info := fmt.Sprintf(" %s  %d panes  ", h.ws.ID, h.ws.PaneCount())
	if h.status != "" {
		info += h.status + "  "
	}
	info += hint
	h.drawText(x, y, runewidth.Truncate(info, max(cols-x, 0), "…"), statusStyle)
}
