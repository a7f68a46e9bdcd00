package vision

import (
	"encoding/json"
	"strings"

	"bookr/internal/entity"
)

// parseBookInfo decodes the model's JSON answer into an AIBookInfo. Models
// occasionally wrap the object in a markdown code fence; strip it first.
// Returns nil when the payload holds no usable fields.
func parseBookInfo(raw string) *entity.AIBookInfo {
	cleaned := stripJSONFence(raw)
	if cleaned == "" {
		return nil
	}

	var decoded struct {
		Title     *string `json:"title"`
		Author    *string `json:"author"`
		Publisher *string `json:"publisher"`
		ISBN      *string `json:"isbn"`
	}
	if err := json.Unmarshal([]byte(cleaned), &decoded); err != nil {
		return nil
	}

	info := entity.AIBookInfo{
		Title:     derefTrimmed(decoded.Title),
		Author:    derefTrimmed(decoded.Author),
		Publisher: derefTrimmed(decoded.Publisher),
		ISBN:      derefTrimmed(decoded.ISBN),
	}
	if info.Title == "" && info.Author == "" && info.Publisher == "" && info.ISBN == "" {
		return nil
	}
	return &info
}

func derefTrimmed(value *string) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}

func stripJSONFence(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		// 去掉 ```json 这类语言标记行
		first := strings.TrimSpace(trimmed[:idx])
		if first == "" || strings.EqualFold(first, "json") {
			trimmed = trimmed[idx+1:]
		}
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
