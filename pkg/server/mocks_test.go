package server

import (
	"context"

	"github.com/shouni/gemini-relay/pkg/domain"
)

// --- Mocks ---

type mockTextAsker struct {
	askFunc func(q domain.TextQuery) (*domain.TextAnswer, error)
	called  int
}

func (m *mockTextAsker) AskText(ctx context.Context, q domain.TextQuery) (*domain.TextAnswer, error) {
	m.called++
	if m.askFunc != nil {
		return m.askFunc(q)
	}
	return &domain.TextAnswer{Answer: "ok"}, nil
}

type mockImageAsker struct {
	askFunc func(q domain.ImageQuery) (*domain.ImageResult, error)
	called  int
}

func (m *mockImageAsker) AskImage(ctx context.Context, q domain.ImageQuery) (*domain.ImageResult, error) {
	m.called++
	if m.askFunc != nil {
		return m.askFunc(q)
	}
	return &domain.ImageResult{}, nil
}
