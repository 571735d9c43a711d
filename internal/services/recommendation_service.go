package services

import (
	"context"
	"errors"

	"moneyharbor/internal/catalog"
	"moneyharbor/internal/llm"
	"moneyharbor/internal/logger"
	"moneyharbor/internal/models"
	"moneyharbor/internal/recommend"
)

// recommendationService picks three options, preferring the model and
// falling back to the rules engine.
type recommendationService struct {
	catalog *catalog.Catalog
	engine  *recommend.Engine
	ai      AIRecommender
	history HistoryServicer
}

// NewRecommendationService creates a new RecommendationServicer. ai and
// history may be nil.
func NewRecommendationService(cat *catalog.Catalog, engine *recommend.Engine, ai AIRecommender, history HistoryServicer) RecommendationServicer {
	return &recommendationService{catalog: cat, engine: engine, ai: ai, history: history}
}

// Recommend never fails on the model path: any model error or opt-out
// yields the rules result. Saving history is best effort.
func (s *recommendationService) Recommend(ctx context.Context, prefs recommend.UserPreferences, clientID string) (*RecommendationResult, error) {
	options := s.catalog.Options()
	result := &RecommendationResult{}

	if s.ai != nil && s.ai.Configured() {
		rec, err := s.ai.Recommend(ctx, options, prefs)
		switch {
		case err == nil:
			result.Recommendations = rec.Results
			result.Source = models.SourceAI
		case errors.Is(err, llm.ErrFallback):
			logger.Get().Infow("model requested fallback to rules engine")
		default:
			logger.Get().Warnw("model recommendation failed, using rules engine", "error", err)
		}
	}

	if result.Source == "" {
		result.Recommendations = s.engine.TopRecommendations(options, prefs)
		result.Source = models.SourceRules
	}

	if clientID != "" && s.history != nil {
		batch, err := s.history.SaveBatch(clientID, prefs, result.Source, result.Recommendations)
		if err != nil {
			logger.Get().Errorw("failed to save search batch", "client_id", clientID, "error", err)
		} else {
			result.BatchID = batch.ID
		}
	}

	return result, nil
}
