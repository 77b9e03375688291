package generator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/gemini-relay/pkg/domain"
	"google.golang.org/genai"
)

// GeminiTextGenerator は /ask/text の処理を担当するジェネレーターです。
type GeminiTextGenerator struct {
	aiClient ContentGenerator
	opts     TextOptions
}

// NewGeminiTextGenerator は GeminiTextGenerator を初期化します。
// Model と MaxOutputTokens が未指定の場合は既定値を使います。
func NewGeminiTextGenerator(aiClient ContentGenerator, opts TextOptions) (*GeminiTextGenerator, error) {
	if aiClient == nil {
		return nil, fmt.Errorf("aiClient (ContentGenerator) is required")
	}
	if opts.Model == "" {
		opts.Model = DefaultTextModel
	}
	if opts.MaxOutputTokens <= 0 {
		opts.MaxOutputTokens = DefaultMaxOutputTokens
	}

	return &GeminiTextGenerator{
		aiClient: aiClient,
		opts:     opts,
	}, nil
}

// Model は使用するテキストモデル名を返します。
func (g *GeminiTextGenerator) Model() string { return g.opts.Model }

// AskText はクエリを Gemini に送り、応答中のテキストを 1 つの回答にまとめます。
func (g *GeminiTextGenerator) AskText(ctx context.Context, q domain.TextQuery) (*domain.TextAnswer, error) {
	if strings.TrimSpace(q.Query) == "" {
		return nil, InvalidQuery(ErrEmptyQuery)
	}

	contents := []*genai.Content{
		{Role: roleUser, Parts: []*genai.Part{{Text: q.Query}}},
	}
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(g.opts.Temperature),
		MaxOutputTokens: g.opts.MaxOutputTokens,
	}

	slog.DebugContext(ctx, "Geminiにテキスト生成をリクエストします", "model", g.opts.Model, "query_len", len(q.Query))
	resp, err := g.aiClient.GenerateContent(ctx, g.opts.Model, contents, config)
	if err != nil {
		slog.WarnContext(ctx, "Geminiテキスト生成に失敗しました", "model", g.opts.Model, "error", err)
		return nil, newError(KindProvider, err)
	}

	payload, err := NewPayload(resp)
	if err != nil {
		return nil, err
	}
	logUsage(ctx, g.opts.Model, payload, resp)

	return &domain.TextAnswer{Answer: payload.Answer()}, nil
}

func logUsage(ctx context.Context, model string, payload Payload, resp *genai.GenerateContentResponse) {
	attrs := []any{"model", model, "shape", payload.Kind.String(), "candidates", len(resp.Candidates)}
	if u := resp.UsageMetadata; u != nil {
		attrs = append(attrs, "prompt_tokens", u.PromptTokenCount, "total_tokens", u.TotalTokenCount)
	}
	slog.DebugContext(ctx, "Geminiから応答を受信しました", attrs...)
}
