package domain

// ImageQuery は画像生成エンドポイント (/ask/image) への入力です。
type ImageQuery struct {
	Prompt string `json:"prompt"`
}

// Image はプロバイダーが返したインライン画像 1 枚分です。
// Data は生のバイト列で、JSON では標準 base64 (パディングあり) として出力されます。
type Image struct {
	MimeType string `json:"mimeType"`
	Data     []byte `json:"data"`
}

// ImageResult は画像生成の正規化済み結果です。成功時は必ず 1 件以上の Image を含みます。
type ImageResult struct {
	Images []Image `json:"images"`
}
