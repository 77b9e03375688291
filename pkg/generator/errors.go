package generator

import (
	"errors"
	"fmt"
)

// Kind は失敗の分類です。HTTP 層はこれをステータスコードに対応付けます。
type Kind int

const (
	// KindProvider はプロバイダー呼び出し自体の失敗 (通信、認証、クォータ等) です。
	KindProvider Kind = iota + 1
	// KindNoContent はプロバイダーが応答したものの、使える内容が無かった場合です。
	KindNoContent
	// KindInvalidQuery はプロバイダーを呼ぶ前に入力を拒否した場合です。
	KindInvalidQuery
)

func (k Kind) String() string {
	switch k {
	case KindProvider:
		return "provider"
	case KindNoContent:
		return "no_content"
	case KindInvalidQuery:
		return "invalid_query"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

var (
	ErrNoImages    = errors.New("❌ Gemini returned no images")
	ErrEmptyQuery  = errors.New("query must not be empty")
	ErrEmptyPrompt = errors.New("prompt must not be empty")
	ErrNilResponse = errors.New("Gemini returned an empty response")
)

// Error は分類付きのエラーです。Error() は包んだエラーのメッセージをそのまま返します。
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string { return e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// InvalidQuery は入力エラーを KindInvalidQuery として包みます。
func InvalidQuery(err error) *Error {
	return newError(KindInvalidQuery, err)
}

// KindOf は err の分類を返します。分類の無いエラーは KindProvider とみなします。
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindProvider
}
