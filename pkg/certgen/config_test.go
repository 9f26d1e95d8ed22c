package certgen

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigEnsureDirs(t *testing.T) {
	base := t.TempDir()
	cfg := Config{
		FrontendURL:  "https://verify.example.edu",
		CertDir:      filepath.Join(base, "certificates"),
		QrDir:        filepath.Join(base, "qrcodes"),
		SignatureDir: filepath.Join(base, "signatures"),
		TmpDir:       filepath.Join(base, "tmp"),
	}

	cfg.EnsureDirs()

	for _, dir := range []string{cfg.CertDir, cfg.QrDir, cfg.SignatureDir, cfg.TmpDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Errorf("Expected directory %s to exist: %v", dir, err)
			continue
		}
		if !info.IsDir() {
			t.Errorf("Expected %s to be a directory", dir)
		}
	}
}
