package rendering

import (
	"context"
	"encoding/base64"
)

// Artifact is a finished capture: the raw PNG bytes and the same bytes as a
// data URL for direct embedding in API responses.
type Artifact struct {
	PNG     []byte
	DataURL string
}

// Renderer turns portfolio data into a PNG artifact via a rendering engine.
type Renderer struct {
	engine   Engine
	viewport Viewport
}

func NewRenderer(engine Engine) *Renderer {
	return &Renderer{engine: engine, viewport: DefaultViewport}
}

// Render builds the portfolio page and captures it. Nil data is rejected
// before the engine is touched.
func (r *Renderer) Render(ctx context.Context, data *PortfolioData) (*Artifact, error) {
	if data == nil {
		return nil, &MissingInputError{Field: "portfolio_data"}
	}
	html, err := BuildHTML(data)
	if err != nil {
		return nil, err
	}
	png, err := r.engine.CapturePNG(ctx, html, r.viewport)
	if err != nil {
		return nil, err
	}
	return &Artifact{
		PNG:     png,
		DataURL: "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
	}, nil
}
