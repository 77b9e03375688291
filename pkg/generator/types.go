package generator

const (
	// NoTextSentinel はプロバイダーがテキストを 1 つも返さなかった場合の回答です。
	NoTextSentinel = "⚠️ Gemini returned no text."

	DefaultTextModel       = "gemini-2.5-pro"
	DefaultImageModel      = "gemini-2.5-flash-image"
	DefaultTemperature     = float32(0.7)
	DefaultMaxOutputTokens = int32(4096)

	roleUser = "user"
)

// imageModalities は画像モデルに画像出力を要求するためのモダリティです。
var imageModalities = []string{"TEXT", "IMAGE"}

// TextOptions は GeminiTextGenerator の生成パラメータです。
type TextOptions struct {
	Model           string
	Temperature     float32
	MaxOutputTokens int32
}

// ImageOptions は GeminiImageGenerator の生成パラメータです。
type ImageOptions struct {
	Model       string
	Temperature float32
}
