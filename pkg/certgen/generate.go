package certgen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/tdewolff/canvas"
)

// GeneratedResult points at the two artifacts of one certificate, with paths
// relative to the configured output directories.
type GeneratedResult struct {
	QrcodeFile string
	PdfFile    string
}

// Generator produces the verification artifacts for a certificate record:
// a QR code PNG encoding the public verification URL and the certificate
// document PDF. Output files are named by certificate id so regeneration
// overwrites in place.
type Generator struct {
	cfg        *Config
	fontFamily *canvas.FontFamily
}

func NewGenerator(cfg *Config) (*Generator, error) {
	fontFamily, err := LoadFontFamily(cfg)
	if err != nil {
		return nil, err
	}

	cfg.EnsureDirs()

	return &Generator{cfg: cfg, fontFamily: fontFamily}, nil
}

func (g *Generator) tmpFile(pattern string) string {
	return filepath.Join(g.cfg.TmpDir, fmt.Sprintf(pattern, uuid.NewString()))
}

// Apply an image watermark to a PDF file, anchored by pos with offsets in
// points. In pdfcpu, positive y offset moves up from the anchor.
func applyImageStamp(inFile, outFile, imageFile, description string) error {
	onTop := true
	if err := api.AddImageWatermarksFile(inFile, outFile, nil, onTop, imageFile, description, nil); err != nil {
		return fmt.Errorf("failed to apply image stamp: %w", err)
	}
	return nil
}

// embedQRCode stamps the QR image centered above the signature blocks.
// The stored QR is 512px; 0.234 abs scales it to roughly 120pt on page.
func (g *Generator) embedQRCode(inFile, outFile, qrCodePath string) error {
	description := "pos: bc, off: 0 220, scale: 0.234 abs, rotation: 0"
	if err := applyImageStamp(inFile, outFile, qrCodePath, description); err != nil {
		return fmt.Errorf("failed to embed QR code in PDF: %w", err)
	}
	return nil
}

// embedSignatures stamps the president and dean signature images when the
// assets exist. Assets are expected pre-sized (about 160x70); missing assets
// were already rendered as placeholder lines in the template layer.
func (g *Generator) embedSignatures(inputFile string) (string, error) {
	currentFile := inputFile

	stamps := []struct {
		asset       string
		description string
	}{
		{"president.png", "pos: bl, off: 80 100, scale: 1 abs, rotation: 0"},
		{"dean.png", "pos: br, off: -100 100, scale: 1 abs, rotation: 0"},
	}

	for _, s := range stamps {
		signatureFile := filepath.Join(g.cfg.SignatureDir, s.asset)
		if _, err := os.Stat(signatureFile); os.IsNotExist(err) {
			continue
		}

		tmpOut := g.tmpFile("certserve_sig_%s.pdf")
		if err := applyImageStamp(currentFile, tmpOut, signatureFile, s.description); err != nil {
			return "", fmt.Errorf("failed to apply signature stamp %s: %w", s.asset, err)
		}

		currentFile = tmpOut
	}

	return currentFile, nil
}

func (g *Generator) signatureAssetMissing(name string) bool {
	_, err := os.Stat(filepath.Join(g.cfg.SignatureDir, name))
	return os.IsNotExist(err)
}

// Generate produces both artifacts for the given certificate id. The QR
// payload is deterministic for a certificate number; the pixel/byte output
// is not guaranteed stable across runs.
func (g *Generator) Generate(certificateId uint, data CertificateData) (*GeneratedResult, error) {
	g.cfg.EnsureDirs()

	qrFilename := fmt.Sprintf("%d.png", certificateId)
	qrPath := filepath.Join(g.cfg.QrDir, qrFilename)

	link := VerificationURL(g.cfg.FrontendURL, data.CertificateNumber)
	if err := GenerateQRCode(link, qrPath, 512); err != nil {
		return nil, err
	}

	basePdf := g.tmpFile("certserve_base_%s.pdf")
	presPlaceholder := g.signatureAssetMissing("president.png")
	deanPlaceholder := g.signatureAssetMissing("dean.png")
	if err := renderTemplate(g.fontFamily, data, presPlaceholder, deanPlaceholder, basePdf); err != nil {
		return nil, err
	}
	defer os.Remove(basePdf)

	withQr := g.tmpFile("certserve_qr_%s.pdf")
	if err := g.embedQRCode(basePdf, withQr, qrPath); err != nil {
		return nil, err
	}
	defer os.Remove(withQr)

	finalPdf, err := g.embedSignatures(withQr)
	if err != nil {
		return nil, err
	}

	pdfFilename := fmt.Sprintf("%d.pdf", certificateId)
	pdfPath := filepath.Join(g.cfg.CertDir, pdfFilename)
	if err := copyFile(finalPdf, pdfPath); err != nil {
		return nil, err
	}
	if finalPdf != withQr {
		os.Remove(finalPdf)
	}

	return &GeneratedResult{
		QrcodeFile: qrFilename,
		PdfFile:    pdfFilename,
	}, nil
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return err
	}

	return destFile.Sync()
}
