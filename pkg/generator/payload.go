package generator

import (
	"net/http"
	"strings"

	"github.com/shouni/gemini-relay/pkg/domain"
	"google.golang.org/genai"
)

// PayloadKind は Payload がどちらの応答形状を保持しているかを示します。
type PayloadKind int

const (
	// PayloadParts は候補が 1 つだけで、その Parts を直接扱える形状です。
	PayloadParts PayloadKind = iota + 1
	// PayloadCandidates は候補ごとに Parts を持つ形状です (候補 0 件・複数件を含む)。
	PayloadCandidates
)

func (k PayloadKind) String() string {
	switch k {
	case PayloadParts:
		return "parts"
	case PayloadCandidates:
		return "candidates"
	default:
		return "unknown"
	}
}

// Payload はプロバイダー応答のタグ付き共用体です。
// Kind が PayloadParts なら Parts、PayloadCandidates なら Candidates のみが有効です。
type Payload struct {
	Kind       PayloadKind
	Parts      []*genai.Part
	Candidates []*genai.Candidate
}

// NewPayload は応答の形状を判定して Payload に変換します。
// 判定はここでだけ行い、以降の走査は Kind に従います。
func NewPayload(resp *genai.GenerateContentResponse) (Payload, error) {
	if resp == nil {
		return Payload{}, newError(KindProvider, ErrNilResponse)
	}

	if len(resp.Candidates) == 1 && resp.Candidates[0] != nil && resp.Candidates[0].Content != nil {
		return Payload{Kind: PayloadParts, Parts: resp.Candidates[0].Content.Parts}, nil
	}
	return Payload{Kind: PayloadCandidates, Candidates: resp.Candidates}, nil
}

// EachPart は Payload 内のすべての Part を出現順に fn へ渡します。nil は飛ばします。
func (p Payload) EachPart(fn func(*genai.Part)) {
	switch p.Kind {
	case PayloadParts:
		for _, part := range p.Parts {
			if part != nil {
				fn(part)
			}
		}
	case PayloadCandidates:
		for _, cand := range p.Candidates {
			if cand == nil || cand.Content == nil {
				continue
			}
			for _, part := range cand.Content.Parts {
				if part != nil {
					fn(part)
				}
			}
		}
	}
}

// Texts は空でないテキスト断片を出現順に返します。思考 (Thought) パーツは含めません。
func (p Payload) Texts() []string {
	var texts []string
	p.EachPart(func(part *genai.Part) {
		if part.Thought || part.Text == "" {
			return
		}
		texts = append(texts, part.Text)
	})
	return texts
}

// Answer はテキスト断片を改行で連結し、前後の空白を除いた回答を返します。
// 結果が空なら NoTextSentinel を返します。
func (p Payload) Answer() string {
	answer := strings.TrimSpace(strings.Join(p.Texts(), "\n"))
	if answer == "" {
		return NoTextSentinel
	}
	return answer
}

// Images はインラインデータを持つ Part を 1 件ずつ domain.Image に変換します。
func (p Payload) Images() []domain.Image {
	var images []domain.Image
	p.EachPart(func(part *genai.Part) {
		if part.InlineData == nil || len(part.InlineData.Data) == 0 {
			return
		}
		images = append(images, domain.Image{
			MimeType: mimeTypeOf(part.InlineData),
			Data:     part.InlineData.Data,
		})
	})
	return images
}

// mimeTypeOf は Blob の MIME タイプを返します。空の場合はバイト列から推定します。
func mimeTypeOf(blob *genai.Blob) string {
	if blob.MIMEType != "" {
		return blob.MIMEType
	}
	return http.DetectContentType(blob.Data)
}
