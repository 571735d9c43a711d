package services

import (
	"context"
	"errors"
	"testing"

	"moneyharbor/internal/catalog"
	"moneyharbor/internal/llm"
	"moneyharbor/internal/models"
	"moneyharbor/internal/recommend"
	"moneyharbor/internal/testutil"
)

func defaultCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	return cat
}

func TestRecommend(t *testing.T) {
	ctx := context.Background()

	t.Run("rules_when_ai_not_configured", func(t *testing.T) {
		svc := NewRecommendationService(defaultCatalog(t), recommend.NewEngine(recommend.WithSeed(1)), &mockAI{}, nil)

		result, err := svc.Recommend(ctx, testPrefs(), "")
		testutil.AssertNoError(t, err)

		if result.Source != models.SourceRules {
			t.Errorf("expected rules source, got %s", result.Source)
		}
		if len(result.Recommendations) != recommend.TopN {
			t.Errorf("expected %d recommendations, got %d", recommend.TopN, len(result.Recommendations))
		}
	})

	t.Run("nil_ai", func(t *testing.T) {
		svc := NewRecommendationService(defaultCatalog(t), recommend.NewEngine(), nil, nil)

		result, err := svc.Recommend(ctx, testPrefs(), "")
		testutil.AssertNoError(t, err)
		if result.Source != models.SourceRules {
			t.Errorf("expected rules source, got %s", result.Source)
		}
	})

	t.Run("ai_result", func(t *testing.T) {
		ai := &mockAI{
			configured: true,
			recommendFn: func(_ context.Context, options []catalog.InvestmentOption, _ recommend.UserPreferences) (*llm.Recommendation, error) {
				return &llm.Recommendation{Results: []recommend.ScoredInvestment{
					{InvestmentOption: options[0], Score: 100, MatchReason: "broad market exposure"},
				}}, nil
			},
		}
		svc := NewRecommendationService(defaultCatalog(t), recommend.NewEngine(), ai, nil)

		result, err := svc.Recommend(ctx, testPrefs(), "")
		testutil.AssertNoError(t, err)

		if result.Source != models.SourceAI {
			t.Errorf("expected ai source, got %s", result.Source)
		}
		if len(result.Recommendations) != 1 || result.Recommendations[0].MatchReason != "broad market exposure" {
			t.Errorf("unexpected ai recommendations: %+v", result.Recommendations)
		}
	})

	t.Run("fallback_signal", func(t *testing.T) {
		ai := &mockAI{configured: true}
		svc := NewRecommendationService(defaultCatalog(t), recommend.NewEngine(), ai, nil)

		result, err := svc.Recommend(ctx, testPrefs(), "")
		testutil.AssertNoError(t, err)
		if result.Source != models.SourceRules {
			t.Errorf("expected rules source, got %s", result.Source)
		}
	})

	t.Run("ai_error", func(t *testing.T) {
		ai := &mockAI{
			configured: true,
			recommendFn: func(context.Context, []catalog.InvestmentOption, recommend.UserPreferences) (*llm.Recommendation, error) {
				return nil, errors.New("connection reset")
			},
		}
		svc := NewRecommendationService(defaultCatalog(t), recommend.NewEngine(), ai, nil)

		result, err := svc.Recommend(ctx, testPrefs(), "")
		testutil.AssertNoError(t, err)
		if result.Source != models.SourceRules || len(result.Recommendations) != recommend.TopN {
			t.Errorf("expected rules fallback, got %+v", result)
		}
	})

	t.Run("saves_batch_with_client_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		history := NewHistoryService(db)
		svc := NewRecommendationService(defaultCatalog(t), recommend.NewEngine(), nil, history)

		result, err := svc.Recommend(ctx, testPrefs(), "client-9")
		testutil.AssertNoError(t, err)

		if result.BatchID == "" {
			t.Fatal("expected batch ID")
		}
		batches, err := history.ListBatches("client-9")
		testutil.AssertNoError(t, err)
		if len(batches) != 1 || batches[0].Source != models.SourceRules {
			t.Errorf("expected one rules batch, got %+v", batches)
		}
	})

	t.Run("no_batch_without_client_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewRecommendationService(defaultCatalog(t), recommend.NewEngine(), nil, NewHistoryService(db))

		result, err := svc.Recommend(ctx, testPrefs(), "")
		testutil.AssertNoError(t, err)
		if result.BatchID != "" {
			t.Errorf("expected no batch, got %s", result.BatchID)
		}

		var count int64
		db.Model(&models.SearchBatch{}).Count(&count)
		if count != 0 {
			t.Errorf("expected no stored batches, got %d", count)
		}
	})
}
