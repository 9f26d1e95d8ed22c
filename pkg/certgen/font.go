package certgen

import (
	"fmt"
	"os"

	"github.com/tdewolff/canvas"
	"golang.org/x/image/font/sfnt"
)

type FontMetadata struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

func getFontMetadataByPath(fontPath string) (*FontMetadata, error) {
	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	font, err := sfnt.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}

	name, err := font.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return nil, fmt.Errorf("retrieving font name: %w", err)
	}

	return &FontMetadata{
		Name: name,
		Path: fontPath,
	}, nil
}

// LoadFontFamily loads the configured certificate font, falling back to a
// system serif font. canvas matches the closest available style when a face
// requests bold/italic, so loading the regular cut is enough.
func LoadFontFamily(cfg *Config) (*canvas.FontFamily, error) {
	family := canvas.NewFontFamily("certificate")

	if cfg.FontPath != "" {
		meta, err := getFontMetadataByPath(cfg.FontPath)
		if err != nil {
			return nil, fmt.Errorf("invalid certificate font %q: %w", cfg.FontPath, err)
		}

		if err := family.LoadFontFile(meta.Path, canvas.FontRegular); err != nil {
			return nil, fmt.Errorf("loading certificate font %q: %w", meta.Name, err)
		}
		return family, nil
	}

	if err := family.LoadSystemFont("serif", canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("loading system serif font: %w", err)
	}

	return family, nil
}
