package services

import (
	"context"

	"github.com/shopspring/decimal"

	"moneyharbor/internal/catalog"
	apperrors "moneyharbor/internal/errors"
	"moneyharbor/internal/llm"
)

// guideService expands a catalog option into an educational guide.
type guideService struct {
	catalog *catalog.Catalog
	writer  GuideWriter
}

// NewGuideService creates a new GuideServicer.
func NewGuideService(cat *catalog.Catalog, writer GuideWriter) GuideServicer {
	return &guideService{catalog: cat, writer: writer}
}

func (s *guideService) ExpandGuide(ctx context.Context, investmentID string, userAmount decimal.Decimal) (*llm.Guide, error) {
	if s.writer == nil || !s.writer.Configured() {
		return nil, apperrors.ErrLLMNotConfigured
	}

	opt, ok := s.catalog.Find(investmentID)
	if !ok {
		return nil, apperrors.ErrInvestmentNotFound
	}

	guide, err := s.writer.ExpandGuide(ctx, opt, userAmount)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrLLMUnavailable, err)
	}
	return guide, nil
}
