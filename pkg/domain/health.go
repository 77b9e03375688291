package domain

// StatusRunning は /health が常に返すステータス文字列です。
const StatusRunning = "running"

// Health は /health の応答です。
type Health struct {
	Status string `json:"status"`
	Model  string `json:"model"`
}

// ErrorBody は失敗時の応答ボディです。
type ErrorBody struct {
	Detail string `json:"detail"`
}
