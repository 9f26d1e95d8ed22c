package util

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestStrNotEmpty(t *testing.T) {
	v := validator.New()
	if err := v.RegisterValidation("strNotEmpty", StrNotEmpty); err != nil {
		t.Fatalf("Failed to register validation: %v", err)
	}

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"Plain string", "Amina Yusuf", false},
		{"Empty string", "", true},
		{"Whitespace only", "   ", true},
		{"Tabs and newlines", "\t\n", true},
		{"Padded string", "  S100  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.value, "strNotEmpty")
			if (err != nil) != tt.wantErr {
				t.Errorf("strNotEmpty(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}
