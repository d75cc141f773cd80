package rendering

import "context"

// Viewport describes the capture surface.
type Viewport struct {
	Width  int64
	Height int64
	Scale  float64
}

// DefaultViewport matches the portfolio page layout: a 1200x1600 canvas
// captured at 2x density for crisp output.
var DefaultViewport = Viewport{Width: 1200, Height: 1600, Scale: 2.0}

// Engine captures rendered HTML as a full-page PNG.
type Engine interface {
	CapturePNG(ctx context.Context, html string, vp Viewport) ([]byte, error)
}
