package respond

import (
	"regexp"
)

var (
	// APIキーパターン（より具体的なパターンから適用する）
	anthropicKeyPattern = regexp.MustCompile(`sk-ant-[a-zA-Z0-9-_]+`)
	// マスク済み文字列（*を含む）にはマッチしない
	openaiKeyPattern = regexp.MustCompile(`sk-[a-zA-Z0-9]{10,}`)
	// Google API keys (Gemini)
	geminiKeyPattern = regexp.MustCompile(`AIza[0-9A-Za-z_-]{20,}`)

	// URLクエリ内のキー (?apiKey=... / ?key=...)
	queryKeyPattern = regexp.MustCompile(`(?i)([?&](?:apikey|api_key|key)=)[^&\s"]+`)
)

// SanitizeError は機密情報をマスクしたエラーメッセージを返す
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()

	msg = anthropicKeyPattern.ReplaceAllString(msg, "sk-ant-****")
	msg = openaiKeyPattern.ReplaceAllString(msg, "sk-****")
	msg = geminiKeyPattern.ReplaceAllString(msg, "AIza****")
	msg = queryKeyPattern.ReplaceAllString(msg, "${1}****")

	return msg
}
