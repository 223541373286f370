package errors

import (
	"strings"
	"testing"
)

func TestValidateNodeValue(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid number", "42", false},
		{"valid word", "root", false},
		{"valid with spaces", "a b", false},
		{"valid unicode", "日本", false},
		{"empty", "", false},

		{"too long", strings.Repeat("x", 2000), true},
		{"newline", "foo\nbar", true},
		{"carriage return", "foo\rbar", true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNodeValue(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNodeValue(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateMaxCellWidth(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		wantErr bool
	}{
		{"default", 80, false},
		{"minimum", 1, false},
		{"large", 4096, false},

		{"zero", 0, true},
		{"negative", -5, true},
		{"absurd", 1 << 20, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMaxCellWidth(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateMaxCellWidth(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid relative", "out.txt", false},
		{"valid nested", "renders/tree.svg", false},
		{"valid absolute", "/tmp/tree.txt", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a/", 300), true},
		{"null byte", "out\x00.txt", true},
		{"control char", "out\x01.txt", true},
		{"trailing slash", "renders/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
