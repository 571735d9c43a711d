package services

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"moneyharbor/internal/catalog"
	"moneyharbor/internal/llm"
	"moneyharbor/internal/mailer"
	"moneyharbor/internal/recommend"
)

type mockAI struct {
	configured  bool
	recommendFn func(ctx context.Context, options []catalog.InvestmentOption, prefs recommend.UserPreferences) (*llm.Recommendation, error)
	guideFn     func(ctx context.Context, opt catalog.InvestmentOption, userAmount decimal.Decimal) (*llm.Guide, error)
	newsFn      func(ctx context.Context) (*llm.Briefing, error)
}

var (
	_ AIRecommender = (*mockAI)(nil)
	_ GuideWriter   = (*mockAI)(nil)
	_ NewsWriter    = (*mockAI)(nil)
)

func (m *mockAI) Configured() bool { return m.configured }

func (m *mockAI) Model() string { return "test-model" }

func (m *mockAI) Recommend(ctx context.Context, options []catalog.InvestmentOption, prefs recommend.UserPreferences) (*llm.Recommendation, error) {
	if m.recommendFn != nil {
		return m.recommendFn(ctx, options, prefs)
	}
	return nil, llm.ErrFallback
}

func (m *mockAI) ExpandGuide(ctx context.Context, opt catalog.InvestmentOption, userAmount decimal.Decimal) (*llm.Guide, error) {
	if m.guideFn != nil {
		return m.guideFn(ctx, opt, userAmount)
	}
	return nil, llm.ErrEmptyResponse
}

func (m *mockAI) NewsBriefing(ctx context.Context) (*llm.Briefing, error) {
	if m.newsFn != nil {
		return m.newsFn(ctx)
	}
	return nil, llm.ErrEmptyResponse
}

// fakeSender records every message it is asked to send.
type fakeSender struct {
	mu     sync.Mutex
	sent   []mailer.Message
	sendFn func(msg mailer.Message) (string, error)
}

var _ mailer.Sender = (*fakeSender)(nil)

func (f *fakeSender) Send(_ context.Context, msg mailer.Message) (string, error) {
	if f.sendFn != nil {
		id, err := f.sendFn(msg)
		if err != nil {
			return "", err
		}
		f.record(msg)
		return id, nil
	}
	f.record(msg)
	return "<msg-1@brevo>", nil
}

func (f *fakeSender) record(msg mailer.Message) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
}

func (f *fakeSender) messages() []mailer.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]mailer.Message(nil), f.sent...)
}
