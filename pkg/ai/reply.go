package ai

import "strings"

// cleanReply removes Markdown code fences and keeps the text between the
// first '{' and the last '}'. Text without a brace pair is returned trimmed.
func cleanReply(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	s = strings.TrimSpace(s)

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}
