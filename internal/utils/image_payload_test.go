package utils

import (
	"encoding/base64"
	"strings"
	"testing"
)

// 1x1 PNG
var pngBytes = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A,
	0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1F, 0x15, 0xC4,
	0x89, 0x00, 0x00, 0x00, 0x0A, 0x49, 0x44, 0x41,
	0x54, 0x78, 0x9C, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0D, 0x0A, 0x2D, 0xB4, 0x00,
	0x00, 0x00, 0x00, 0x49, 0x45, 0x4E, 0x44, 0xAE,
	0x42, 0x60, 0x82,
}

func TestDecodeMediaPayload(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString(pngBytes)

	t.Run("完整 data URL", func(t *testing.T) {
		data, mimeType, ext, err := DecodeMediaPayload("data:image/png;base64," + encoded)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(data) != len(pngBytes) {
			t.Fatalf("expected %d bytes, got %d", len(pngBytes), len(data))
		}
		if mimeType != "image/png" {
			t.Fatalf("expected image/png, got %s", mimeType)
		}
		if ext != "png" {
			t.Fatalf("expected png extension, got %s", ext)
		}
	})

	t.Run("裸 base64 按内容嗅探", func(t *testing.T) {
		_, mimeType, ext, err := DecodeMediaPayload(encoded)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ext != "png" {
			t.Fatalf("expected png extension, got %s (mime %s)", ext, mimeType)
		}
	})

	t.Run("空负载报错", func(t *testing.T) {
		if _, _, _, err := DecodeMediaPayload("   "); err == nil {
			t.Fatal("expected error for empty payload")
		}
	})

	t.Run("非法 base64 报错", func(t *testing.T) {
		if _, _, _, err := DecodeMediaPayload("data:image/png;base64,%%%"); err == nil {
			t.Fatal("expected error for invalid base64")
		}
	})
}

func TestExtensionFromMime(t *testing.T) {
	cases := map[string]string{
		"image/png":                "png",
		"image/jpeg":               "jpg",
		"image/jpg":                "jpg",
		"image/webp":               "webp",
		"image/png; charset=utf-8": "png",
		"application/octet-stream": "",
		"":                         "",
	}
	for input, want := range cases {
		if got := ExtensionFromMime(input); got != want {
			t.Errorf("ExtensionFromMime(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestDataURLHelpers(t *testing.T) {
	if got := EnsureDataURL("abc"); got != "data:image/jpeg;base64,abc" {
		t.Fatalf("EnsureDataURL: unexpected %q", got)
	}
	if got := EnsureDataURL("data:image/png;base64,xyz"); got != "data:image/png;base64,xyz" {
		t.Fatalf("EnsureDataURL should keep existing data URL, got %q", got)
	}

	mimeType, payload := SplitDataURL("data:image/png;base64,xyz")
	if mimeType != "image/png" || payload != "xyz" {
		t.Fatalf("SplitDataURL: got %q %q", mimeType, payload)
	}
	mimeType, payload = SplitDataURL("rawpayload")
	if mimeType != "" || payload != "rawpayload" {
		t.Fatalf("SplitDataURL raw: got %q %q", mimeType, payload)
	}

	url := EncodeDataURL([]byte("hello"), "image/png")
	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Fatalf("EncodeDataURL: unexpected prefix in %q", url)
	}
}
