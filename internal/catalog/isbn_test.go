package catalog

import "testing"

func TestValidateISBN(t *testing.T) {
	tests := []struct {
		isbn string
		want bool
	}{
		{"", true},   // 可选字段
		{"  ", true}, // 纯空白等同于未填写
		{"979-0-306-40615-7", true},
		{"9787111562286", true},
		{"0-306-40615-2", true},
		{"030640615X", true},
		{"030640615x", true},
		{"0 306 40615 2", true},
		{"12345", false},
		{"030640615Y", false},
		{"978711156228", false},   // 12 位
		{"97871115622866", false}, // 14 位
		{"X306406152", false},     // X 只允许在末位
		{"abcdefghij", false},
	}

	for _, tt := range tests {
		t.Run(tt.isbn, func(t *testing.T) {
			if got := ValidateISBN(tt.isbn); got != tt.want {
				t.Errorf("ValidateISBN(%q) = %v, want %v", tt.isbn, got, tt.want)
			}
		})
	}
}
