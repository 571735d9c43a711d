package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"moneyharbor/internal/catalog"
	apperrors "moneyharbor/internal/errors"
	"moneyharbor/internal/llm"
	"moneyharbor/internal/testutil"
)

func TestExpandGuide(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		var gotID string
		var gotAmount decimal.Decimal
		writer := &mockAI{
			configured: true,
			guideFn: func(_ context.Context, opt catalog.InvestmentOption, amount decimal.Decimal) (*llm.Guide, error) {
				gotID = opt.ID
				gotAmount = amount
				return &llm.Guide{WhatIsIt: "A fund tracking the 500 largest US companies."}, nil
			},
		}
		svc := NewGuideService(defaultCatalog(t), writer)

		guide, err := svc.ExpandGuide(ctx, "sp500-index-fund", decimal.NewFromInt(15000))
		testutil.AssertNoError(t, err)

		if guide.WhatIsIt == "" {
			t.Error("expected guide content")
		}
		if gotID != "sp500-index-fund" {
			t.Errorf("expected option sp500-index-fund, got %s", gotID)
		}
		if !gotAmount.Equal(decimal.NewFromInt(15000)) {
			t.Errorf("expected amount 15000, got %s", gotAmount)
		}
	})

	t.Run("not_configured", func(t *testing.T) {
		svc := NewGuideService(defaultCatalog(t), &mockAI{})

		_, err := svc.ExpandGuide(ctx, "sp500-index-fund", decimal.Zero)
		testutil.AssertAppError(t, err, apperrors.ErrLLMNotConfigured)
	})

	t.Run("nil_writer", func(t *testing.T) {
		svc := NewGuideService(defaultCatalog(t), nil)

		_, err := svc.ExpandGuide(ctx, "sp500-index-fund", decimal.Zero)
		testutil.AssertAppError(t, err, apperrors.ErrLLMNotConfigured)
	})

	t.Run("unknown_investment", func(t *testing.T) {
		svc := NewGuideService(defaultCatalog(t), &mockAI{configured: true})

		_, err := svc.ExpandGuide(ctx, "lottery-tickets", decimal.Zero)
		testutil.AssertAppError(t, err, apperrors.ErrInvestmentNotFound)
	})

	t.Run("model_failure", func(t *testing.T) {
		writer := &mockAI{
			configured: true,
			guideFn: func(context.Context, catalog.InvestmentOption, decimal.Decimal) (*llm.Guide, error) {
				return nil, errors.New("timeout")
			},
		}
		svc := NewGuideService(defaultCatalog(t), writer)

		_, err := svc.ExpandGuide(ctx, "bitcoin", decimal.Zero)
		testutil.AssertAppError(t, err, apperrors.ErrLLMUnavailable)
	})
}
