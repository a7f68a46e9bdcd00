// Package vision extracts bibliographic data from book cover photos. The
// extractor is picked once at construction time from configuration; when no
// provider is configured a fixed-response stub takes its place so book
// creation keeps working without credentials.
package vision

import (
	"context"
	"fmt"
	"strings"

	"bookr/internal/config"
	"bookr/internal/entity"

	"github.com/sirupsen/logrus"
)

const (
	ProviderGemini     = "gemini"
	ProviderVolcengine = "volcengine"
	ProviderStub       = "stub"
)

// extractPrompt 与各家模型共用的提取指令。
const extractPrompt = "Analyze this image of a book cover. Extract the title, author(s), publisher, and ISBN. " +
	"Return the result as a JSON object with keys 'title', 'author', 'publisher', and 'isbn'. " +
	"If a piece of information is not visible, use null for its value."

// Extractor reads title/author/publisher/ISBN off a cover image. A nil info
// with nil error means the provider could not recognise anything.
type Extractor interface {
	ProviderID() string
	ExtractBookInfo(ctx context.Context, image []byte, mimeType string) (*entity.AIBookInfo, error)
}

// NewExtractor 根据配置实例化封面识别服务。
func NewExtractor(cfg config.Config) (Extractor, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.VisionProvider))

	if provider == "" {
		switch {
		case strings.TrimSpace(cfg.GeminiAPIKey) != "":
			provider = ProviderGemini
		case strings.TrimSpace(cfg.VolcengineAPIKey) != "":
			provider = ProviderVolcengine
		default:
			logrus.Warn("no vision api key configured, falling back to stub extractor")
			provider = ProviderStub
		}
	}

	switch provider {
	case ProviderGemini:
		return NewGeminiExtractor(cfg)
	case ProviderVolcengine:
		return NewVolcengineExtractor(cfg)
	case ProviderStub:
		return NewStubExtractor(), nil
	default:
		return nil, fmt.Errorf("unsupported vision provider: %s", cfg.VisionProvider)
	}
}
