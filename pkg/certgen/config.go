package certgen

import (
	"fmt"
	"os"
)

type Config struct {
	// Base URL of the public verification page encoded into QR payloads.
	FrontendURL string
	// Directory where certificate PDFs are stored, one per certificate id.
	CertDir string
	// Directory where QR code images are stored, one per certificate id.
	QrDir string
	// Directory holding signature image assets (president.png, dean.png).
	SignatureDir string
	// Directory where temporary files are stored during compositing.
	TmpDir string
	// Optional path to a TTF/OTF used for the certificate text. When empty,
	// a system serif font is used.
	FontPath string
}

func NewDefaultConfig(frontendURL string) *Config {
	cfg := Config{
		FrontendURL:  frontendURL,
		CertDir:      "static/certificates",
		QrDir:        "static/qrcodes",
		SignatureDir: "static/signatures",
		TmpDir:       fmt.Sprintf("%s/certserve/generate/tmp", os.TempDir()),
	}

	cfg.EnsureDirs()

	return &cfg
}

// EnsureDirs creates the artifact directories if they do not exist.
// 0755 mean owner can read, write and execute
func (c *Config) EnsureDirs() {
	for _, dir := range []string{c.CertDir, c.QrDir, c.SignatureDir, c.TmpDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Printf("Error creating directory %s: %v\n", dir, err)
		}
	}
}
