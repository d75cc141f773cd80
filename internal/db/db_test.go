package db

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/projecthub/portfolio-engine/internal/types"
)

func TestConnect_MalformedURL(t *testing.T) {
	_, err := Connect(context.Background(), "://not-a-url")
	require.Error(t, err)
}

func TestPortfolioRecord_JSONShape(t *testing.T) {
	intakeID := uuid.New()
	rec := PortfolioRecord{
		ID:       uuid.New(),
		IntakeID: &intakeID,
		Strategy: "local",
		Document: &types.PortfolioDocument{
			Headline: "Maker",
			Projects: []types.ProjectSummary{
				{Title: "Solar Lamp", PointProblem: "p", PointAction: "a", PointResult: "r"},
			},
			VisualStyle: types.VisualStyle{
				ThemeColor:              "#667eea",
				BackgroundGradientStart: "#1e3a5f",
				BackgroundGradientEnd:   "#0f1c2e",
				FontStyle:               types.FontModern,
			},
		},
	}

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "local", decoded["strategy"])
	require.Contains(t, decoded, "intake_id")
	require.Contains(t, decoded, "document")
}
