package api

import (
	"testing"

	"bookr/internal/entity"
)

func TestNormalisePublicBase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"空值回退 /files", "", "/files"},
		{"补全前导斜杠", "covers", "/covers"},
		{"去除尾部斜杠", "/files/", "/files"},
		{"完整 URL 保留", "https://cdn.example.com/files/", "https://cdn.example.com/files"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalisePublicBase(tt.input); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestPublicURL(t *testing.T) {
	h := &HTTPHandler{storagePublicBase: "/files"}

	if got := h.publicURL(""); got != "" {
		t.Errorf("empty path should stay empty, got %q", got)
	}
	if got := h.publicURL("covers/2026/08/31/a.jpg"); got != "/files/covers/2026/08/31/a.jpg" {
		t.Errorf("unexpected %q", got)
	}
	if got := h.publicURL("https://example.com/cover.jpg"); got != "https://example.com/cover.jpg" {
		t.Errorf("external URL should pass through, got %q", got)
	}
}

func TestRequestUserIsAdmin(t *testing.T) {
	var nilUser *RequestUser
	if nilUser.IsAdmin() {
		t.Error("nil user must not be admin")
	}
	if (&RequestUser{Role: entity.UserRoleUser}).IsAdmin() {
		t.Error("plain user must not be admin")
	}
	if !(&RequestUser{Role: entity.UserRoleAdmin}).IsAdmin() {
		t.Error("admin role should be admin")
	}
}

func TestSanitizeRole(t *testing.T) {
	if got := sanitizeRole(" Admin "); got != entity.UserRoleAdmin {
		t.Errorf("expected admin, got %q", got)
	}
	if got := sanitizeRole("USER"); got != entity.UserRoleUser {
		t.Errorf("expected user, got %q", got)
	}
	if got := sanitizeRole("root"); got != "" {
		t.Errorf("unknown role should map to empty, got %q", got)
	}
}
