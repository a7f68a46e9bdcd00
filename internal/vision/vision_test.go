package vision

import (
	"context"
	"testing"

	"bookr/internal/config"
)

func TestNewExtractorSelection(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantID  string
		wantErr bool
	}{
		{
			name:   "显式指定 stub",
			cfg:    config.Config{VisionProvider: "stub"},
			wantID: ProviderStub,
		},
		{
			name:   "有 Gemini Key 时自动选择 gemini",
			cfg:    config.Config{GeminiAPIKey: "key"},
			wantID: ProviderGemini,
		},
		{
			name:   "有火山 Key 时自动选择 volcengine",
			cfg:    config.Config{VolcengineAPIKey: "key"},
			wantID: ProviderVolcengine,
		},
		{
			name:   "无任何 Key 时退化为 stub",
			cfg:    config.Config{},
			wantID: ProviderStub,
		},
		{
			name:    "指定 gemini 但缺少 Key",
			cfg:     config.Config{VisionProvider: "gemini"},
			wantErr: true,
		},
		{
			name:    "未知提供方",
			cfg:     config.Config{VisionProvider: "dalle"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extractor, err := NewExtractor(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := extractor.ProviderID(); got != tt.wantID {
				t.Fatalf("expected provider %s, got %s", tt.wantID, got)
			}
		})
	}
}

func TestStubExtractor(t *testing.T) {
	stub := NewStubExtractor()

	info, err := stub.ExtractBookInfo(context.Background(), []byte{0xFF, 0xD8}, "image/jpeg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info == nil || info.Title != "React权威指南" {
		t.Fatalf("unexpected stub info: %+v", info)
	}
	if info.ISBN != "9787115392634" {
		t.Fatalf("unexpected stub isbn: %s", info.ISBN)
	}

	if _, err := stub.ExtractBookInfo(context.Background(), nil, ""); err == nil {
		t.Fatal("expected error for empty image")
	}
}

func TestParseBookInfo(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantNil   bool
		wantTitle string
		wantISBN  string
	}{
		{
			name:      "标准 JSON",
			raw:       `{"title":"三体","author":"刘慈欣","publisher":"重庆出版社","isbn":"9787536692930"}`,
			wantTitle: "三体",
			wantISBN:  "9787536692930",
		},
		{
			name:      "markdown 代码块包裹",
			raw:       "```json\n{\"title\":\"三体\",\"author\":null,\"publisher\":null,\"isbn\":null}\n```",
			wantTitle: "三体",
		},
		{
			name:      "无语言标记的代码块",
			raw:       "```\n{\"title\":\" 三体 \"}\n```",
			wantTitle: "三体",
		},
		{
			name:    "全部字段为 null",
			raw:     `{"title":null,"author":null,"publisher":null,"isbn":null}`,
			wantNil: true,
		},
		{
			name:    "空字符串",
			raw:     "",
			wantNil: true,
		},
		{
			name:    "非 JSON 文本",
			raw:     "无法识别封面内容",
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := parseBookInfo(tt.raw)
			if tt.wantNil {
				if info != nil {
					t.Fatalf("expected nil, got %+v", info)
				}
				return
			}
			if info == nil {
				t.Fatal("expected info, got nil")
			}
			if info.Title != tt.wantTitle {
				t.Fatalf("expected title %q, got %q", tt.wantTitle, info.Title)
			}
			if info.ISBN != tt.wantISBN {
				t.Fatalf("expected isbn %q, got %q", tt.wantISBN, info.ISBN)
			}
		})
	}
}

func TestStripJSONFence(t *testing.T) {
	if got := stripJSONFence("```json\n{}\n```"); got != "{}" {
		t.Fatalf("expected {}, got %q", got)
	}
	if got := stripJSONFence("{}"); got != "{}" {
		t.Fatalf("expected {}, got %q", got)
	}
	if got := stripJSONFence("  {\"a\":1}  "); got != `{"a":1}` {
		t.Fatalf("unexpected %q", got)
	}
}
