package layout

import "github.com/bnema/splitgrid/internal/domain/entity"

// Default geometry constants in device pixels.
const (
	DefaultHandleSize  = 4.0
	DefaultDividerSize = 1.0
	DefaultMinWidth    = 80.0
	DefaultMinHeight   = 100.0
)

// Options tunes the layout engine.
type Options struct {
	// MinWidth is the smallest width a resize may leave a pane in a
	// horizontal axis.
	MinWidth float64
	// MinHeight is the smallest height a resize may leave a pane in a
	// vertical axis.
	MinHeight float64
	// HandleSize is the thickness of the resize hit region between siblings.
	// Directional lookup reuses it as the probe margin.
	HandleSize float64
	// DividerSize is the thickness of the visual divider between siblings.
	DividerSize float64
}

// DefaultOptions returns the stock geometry.
func DefaultOptions() Options {
	return Options{
		MinWidth:    DefaultMinWidth,
		MinHeight:   DefaultMinHeight,
		HandleSize:  DefaultHandleSize,
		DividerSize: DefaultDividerSize,
	}
}

// MinSize returns the minimum primary-axis extent for the given axis.
func (o Options) MinSize(axis entity.Axis) float64 {
	if axis == entity.AxisVertical {
		return o.MinHeight
	}
	return o.MinWidth
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.MinWidth <= 0 {
		o.MinWidth = d.MinWidth
	}
	if o.MinHeight <= 0 {
		o.MinHeight = d.MinHeight
	}
	if o.HandleSize <= 0 {
		o.HandleSize = d.HandleSize
	}
	if o.DividerSize <= 0 {
		o.DividerSize = d.DividerSize
	}
	return o
}
