package raster

import (
	"fmt"
	"log"
	"os"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// SystemEmojiFonts are tried in order when no font path is configured
var SystemEmojiFonts = []string{
	"/usr/share/fonts/truetype/noto/NotoColorEmoji.ttf",
	"/usr/share/fonts/noto-emoji/NotoColorEmoji.ttf",
	"/usr/share/fonts/google-noto-emoji/NotoColorEmoji.ttf",
	"/System/Library/Fonts/Apple Color Emoji.ttc",
	"/System/Library/Fonts/Supplemental/Apple Color Emoji.ttc",
	`C:\Windows\Fonts\seguiemj.ttf`,
}

// LoadFont opens the configured font, else the first usable system emoji
// font, else the embedded Go Regular font
func LoadFont(path string) (*text.FontSource, error) {
	if path != "" {
		src, err := text.NewFontSourceFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load font %s: %w", path, err)
		}
		return src, nil
	}

	for _, candidate := range SystemEmojiFonts {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		src, err := text.NewFontSourceFromFile(candidate)
		if err != nil {
			log.Printf("Skipping emoji font %s: %v", candidate, err)
			continue
		}
		return src, nil
	}

	return DefaultFont()
}

// DefaultFont returns the embedded Go Regular font
func DefaultFont() (*text.FontSource, error) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded font: %w", err)
	}
	return src, nil
}
