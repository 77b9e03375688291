package domain

// TextQuery はテキスト生成エンドポイント (/ask/text) への入力です。
type TextQuery struct {
	Query string `json:"query"`
}

// TextAnswer はテキスト生成の正規化済み結果です。Answer は空になりません。
type TextAnswer struct {
	Answer string `json:"answer"`
}
