package generator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/gemini-relay/pkg/domain"
	"google.golang.org/genai"
)

// GeminiImageGenerator は /ask/image の処理を担当するジェネレーターです。
type GeminiImageGenerator struct {
	aiClient ContentGenerator
	opts     ImageOptions
}

// NewGeminiImageGenerator は GeminiImageGenerator を初期化します。
func NewGeminiImageGenerator(aiClient ContentGenerator, opts ImageOptions) (*GeminiImageGenerator, error) {
	if aiClient == nil {
		return nil, fmt.Errorf("aiClient (ContentGenerator) is required")
	}
	if opts.Model == "" {
		opts.Model = DefaultImageModel
	}

	return &GeminiImageGenerator{
		aiClient: aiClient,
		opts:     opts,
	}, nil
}

// Model は使用する画像モデル名を返します。
func (g *GeminiImageGenerator) Model() string { return g.opts.Model }

// AskImage はプロンプトを user ロールの 1 メッセージとして送り、
// 応答中のインライン画像をすべて取り出します。画像が 1 枚も無ければ ErrNoImages です。
func (g *GeminiImageGenerator) AskImage(ctx context.Context, q domain.ImageQuery) (*domain.ImageResult, error) {
	if strings.TrimSpace(q.Prompt) == "" {
		return nil, InvalidQuery(ErrEmptyPrompt)
	}

	contents := []*genai.Content{
		{Role: roleUser, Parts: []*genai.Part{{Text: q.Prompt}}},
	}
	config := &genai.GenerateContentConfig{
		Temperature:        genai.Ptr(g.opts.Temperature),
		ResponseModalities: imageModalities,
	}

	slog.InfoContext(ctx, "Geminiに画像生成をリクエストします", "model", g.opts.Model)
	resp, err := g.aiClient.GenerateContent(ctx, g.opts.Model, contents, config)
	if err != nil {
		slog.WarnContext(ctx, "Gemini画像生成に失敗しました", "model", g.opts.Model, "error", err)
		return nil, newError(KindProvider, err)
	}

	payload, err := NewPayload(resp)
	if err != nil {
		return nil, err
	}
	logUsage(ctx, g.opts.Model, payload, resp)

	images := payload.Images()
	if len(images) == 0 {
		// 安全フィルター等によるブロックの確認
		slog.WarnContext(ctx, "画像データが見つかりませんでした",
			"model", g.opts.Model, "finish_reasons", abnormalFinishReasons(resp))
		return nil, newError(KindNoContent, ErrNoImages)
	}

	return &domain.ImageResult{Images: images}, nil
}

// abnormalFinishReasons は STOP 以外で終了した候補の FinishReason を返します。
func abnormalFinishReasons(resp *genai.GenerateContentResponse) []string {
	var reasons []string
	for _, c := range resp.Candidates {
		if c == nil {
			continue
		}
		if c.FinishReason != genai.FinishReasonUnspecified && c.FinishReason != genai.FinishReasonStop {
			reasons = append(reasons, string(c.FinishReason))
		}
	}
	return reasons
}
