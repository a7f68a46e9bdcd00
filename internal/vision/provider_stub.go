package vision

import (
	"context"
	"errors"

	"bookr/internal/entity"
)

// StubExtractor answers every request with a fixed sample book. It stands in
// for a real provider when no API key is configured, mainly for local
// development and demos.
type StubExtractor struct{}

func NewStubExtractor() *StubExtractor {
	return &StubExtractor{}
}

func (s *StubExtractor) ProviderID() string {
	return ProviderStub
}

func (s *StubExtractor) ExtractBookInfo(ctx context.Context, image []byte, mimeType string) (*entity.AIBookInfo, error) {
	if len(image) == 0 {
		return nil, errors.New("empty cover image")
	}
	return &entity.AIBookInfo{
		Title:     "React权威指南",
		Author:    "Stoyan Stefanov",
		Publisher: "人民邮电出版社",
		ISBN:      "9787115392634",
	}, nil
}

var _ Extractor = (*StubExtractor)(nil)
