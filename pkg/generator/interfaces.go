package generator

import (
	"context"

	"github.com/shouni/gemini-relay/pkg/domain"
	"google.golang.org/genai"
)

// ContentGenerator は Gemini の generateContent 呼び出しを抽象化するインターフェースです。
// *genai.Models (genai.Client.Models) がそのまま満たします。
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// TextAsker はテキスト生成の窓口です。
type TextAsker interface {
	AskText(ctx context.Context, q domain.TextQuery) (*domain.TextAnswer, error)
}

// ImageAsker は画像生成の窓口です。
type ImageAsker interface {
	AskImage(ctx context.Context, q domain.ImageQuery) (*domain.ImageResult, error)
}
