package generator

import (
	"context"

	"google.golang.org/genai"
)

// Unavailable は Gemini クライアントを作れなかった場合の ContentGenerator です。
// 呼び出しのたびに作成時のエラーを返すので、起動自体は継続できます。
type Unavailable struct {
	Err error
}

func (u Unavailable) GenerateContent(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return nil, u.Err
}
