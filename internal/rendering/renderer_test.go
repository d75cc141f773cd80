package rendering

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/projecthub/portfolio-engine/internal/generation"
	"github.com/projecthub/portfolio-engine/internal/types"
)

// mockEngine records captures without launching a browser.
type mockEngine struct {
	calls int
	html  string
	vp    Viewport
	png   []byte
	err   error
}

func (m *mockEngine) CapturePNG(_ context.Context, html string, vp Viewport) ([]byte, error) {
	m.calls++
	m.html = html
	m.vp = vp
	if m.err != nil {
		return nil, m.err
	}
	return m.png, nil
}

func TestRender_NilDataNeverLaunchesEngine(t *testing.T) {
	engine := &mockEngine{}
	r := NewRenderer(engine)

	_, err := r.Render(context.Background(), nil)
	var missing *MissingInputError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, 0, engine.calls)
}

func TestRender_ProducesDataURL(t *testing.T) {
	engine := &mockEngine{png: []byte{0x89, 'P', 'N', 'G'}}
	r := NewRenderer(engine)

	artifact, err := r.Render(context.Background(), sampleData())
	require.NoError(t, err)
	require.Equal(t, engine.png, artifact.PNG)
	require.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(engine.png), artifact.DataURL)
	require.Equal(t, DefaultViewport, engine.vp)
	require.True(t, strings.Contains(engine.html, "Ava Osman"))
}

func TestRender_EngineErrorPassesThrough(t *testing.T) {
	engine := &mockEngine{err: &EngineError{Stage: "launch", Cause: errors.New("chrome not found")}}
	r := NewRenderer(engine)

	_, err := r.Render(context.Background(), sampleData())
	var engineErr *EngineError
	require.ErrorAs(t, err, &engineErr)
	require.Equal(t, "launch", engineErr.Stage)
}

func TestRender_LocalDocumentRoundTrip(t *testing.T) {
	intake := &types.Intake{
		FirstName: "Ava",
		LastName:  "Osman",
		College:   "Greenfield Institute",
		Skills:    []types.Skill{{Name: "Soldering", Proficiency: 4}},
		Projects: []types.ProjectIntake{
			{Name: "Solar Lamp", Description: "A lamp for off-grid homes.", ToolsUsed: []string{"Soldering iron"}},
		},
	}
	gen := generation.NewLocalGenerator()
	doc, err := gen.Generate(context.Background(), intake, "land a hardware internship")
	require.NoError(t, err)

	engine := &mockEngine{png: []byte("png")}
	r := NewRenderer(engine)
	artifact, err := r.Render(context.Background(), FromDocument(doc, intake, ""))
	require.NoError(t, err)
	require.NotEmpty(t, artifact.DataURL)
	require.Contains(t, engine.html, "Ava Osman")
	require.Contains(t, engine.html, "Solar Lamp")
}

func TestFontFamilyFor_TotalMapping(t *testing.T) {
	for _, style := range types.FontStyles() {
		require.NotEmpty(t, FontFamilyFor(style))
	}
	require.Equal(t, FontFamilyFor(types.FontModern), FontFamilyFor("unheard-of"))
}
