package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/projecthub/portfolio-engine/internal/generation"
	"github.com/projecthub/portfolio-engine/internal/rendering"
	"github.com/projecthub/portfolio-engine/internal/types"
)

// GenerateRequest represents the request body for /portfolio/generate.
// The intake payload is accepted under either key; user_data wins when both
// are present.
type GenerateRequest struct {
	UserData *types.Intake `json:"user_data,omitempty"`
	Intake   *types.Intake `json:"intake,omitempty"`
	UserGoal string        `json:"user_goal,omitempty"`
	Strategy string        `json:"strategy,omitempty"`
}

// GenerateResponse represents the response for /portfolio/generate
type GenerateResponse struct {
	Success       bool                     `json:"success"`
	Strategy      string                   `json:"strategy"`
	PortfolioData *types.PortfolioDocument `json:"portfolio_data"`
	PortfolioID   string                   `json:"portfolio_id,omitempty"`
}

// RenderRequest represents the request body for /portfolio/render
type RenderRequest struct {
	PortfolioData *rendering.PortfolioData `json:"portfolio_data"`
}

// RenderResponse represents the response for /portfolio/render
type RenderResponse struct {
	Success bool   `json:"success"`
	Image   string `json:"image"`
}

// handleGenerate runs the configured generation strategy over an intake
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	intake := req.UserData
	if intake == nil {
		intake = req.Intake
	}
	if intake == nil {
		s.errorResponse(w, http.StatusBadRequest, "user_data is required")
		return
	}
	if err := intake.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	strategy := s.cfg.Strategy
	if req.Strategy != "" {
		strategy = generation.ParseStrategy(req.Strategy)
	}

	doc, err := s.newGenerator(strategy).Generate(r.Context(), intake, req.UserGoal)
	if err != nil {
		log.Printf("Generation failed (strategy=%s): %v", strategy, err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resp := GenerateResponse{
		Success:       true,
		Strategy:      string(strategy),
		PortfolioData: doc,
	}
	if id := s.archivePortfolio(intake, string(strategy), doc); id != uuid.Nil {
		resp.PortfolioID = id.String()
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleRender captures a portfolio as a PNG and returns it as a data URL
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	artifact, err := s.renderer.Render(r.Context(), req.PortfolioData)
	if err != nil {
		log.Printf("Render failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, RenderResponse{Success: true, Image: artifact.DataURL})
}

// handleListPortfolios returns recent archived portfolios
func (s *Server) handleListPortfolios(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "portfolio archiving is disabled")
		return
	}

	records, err := s.db.ListPortfolios(r.Context(), 50)
	if err != nil {
		log.Printf("Failed to list portfolios: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to list portfolios")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"success": true, "portfolios": records})
}

// handleGetPortfolio returns one archived portfolio by ID
func (s *Server) handleGetPortfolio(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "portfolio archiving is disabled")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid portfolio ID")
		return
	}

	record, err := s.db.GetPortfolio(r.Context(), id)
	if err != nil {
		log.Printf("Failed to get portfolio %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to get portfolio")
		return
	}
	if record == nil {
		s.errorResponse(w, http.StatusNotFound, "portfolio not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"success": true, "portfolio": record})
}

// archivePortfolio stores the intake and document when a database is
// configured. Archiving is best effort: failures are logged and never block
// the response.
func (s *Server) archivePortfolio(intake *types.Intake, strategy string, doc *types.PortfolioDocument) uuid.UUID {
	if s.db == nil {
		return uuid.Nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	intakeID, err := s.db.SaveIntake(ctx, intake)
	if err != nil {
		log.Printf("Failed to archive intake: %v", err)
	}
	portfolioID, err := s.db.SavePortfolio(ctx, intakeID, strategy, doc)
	if err != nil {
		log.Printf("Failed to archive portfolio: %v", err)
		return uuid.Nil
	}
	return portfolioID
}
