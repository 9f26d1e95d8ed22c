package certgen

import (
	"os"
	"path/filepath"
	"testing"
)

func TestVerificationURL(t *testing.T) {
	tests := []struct {
		name     string
		frontend string
		number   string
		expected string
	}{
		{
			name:     "Plain base URL",
			frontend: "https://verify.example.edu",
			number:   "PSU-1A2B3C4D",
			expected: "https://verify.example.edu/verify/PSU-1A2B3C4D",
		},
		{
			name:     "Trailing slash stripped",
			frontend: "https://verify.example.edu/",
			number:   "PSU-1A2B3C4D",
			expected: "https://verify.example.edu/verify/PSU-1A2B3C4D",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VerificationURL(tt.frontend, tt.number)
			if got != tt.expected {
				t.Errorf("VerificationURL() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestGenerateQRCode(t *testing.T) {
	dir := t.TempDir()
	outputPath := filepath.Join(dir, "1.png")

	link := VerificationURL("https://verify.example.edu", "PSU-1A2B3C4D")
	if err := GenerateQRCode(link, outputPath, 512); err != nil {
		t.Fatalf("GenerateQRCode() error = %v", err)
	}

	info, err := os.Stat(outputPath)
	if err != nil {
		t.Fatalf("Expected QR file at %s: %v", outputPath, err)
	}
	if info.Size() == 0 {
		t.Error("Expected non-empty QR file")
	}

	// Regenerating for the same inputs overwrites in place.
	if err := GenerateQRCode(link, outputPath, 512); err != nil {
		t.Fatalf("GenerateQRCode() on regenerate error = %v", err)
	}
}
