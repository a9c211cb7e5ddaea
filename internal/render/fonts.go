package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	sfnt "github.com/tdewolff/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/ppiankov/civcards/internal/cache"
	"github.com/ppiankov/civcards/internal/model"
)

// FontSet holds the parsed fonts used on a card. Parsed fonts are shared
// between goroutines; faces are not and are created per render.
type FontSet struct {
	Title        *opentype.Font
	SectionTitle *opentype.Font
	Normal       *opentype.Font
	Bold         *opentype.Font
}

// LoadFonts parses the configured fonts. A missing or unreadable file falls
// back to the built-in Go font of the same weight with a warning on w.
func LoadFonts(cfg *model.Config, assets cache.Cache, w io.Writer) (*FontSet, error) {
	if w == nil {
		w = io.Discard
	}

	load := func(role, path string, bold bool) (*opentype.Font, error) {
		if path != "" {
			f, err := LoadFont(cfg.Resolve(path), assets, cfg.Cache.TTL)
			if err == nil {
				return f, nil
			}
			_, _ = fmt.Fprintf(w, "⚠️  %s font: %v, using built-in font\n", role, err)
		}
		return builtinFont(bold)
	}

	var set FontSet
	var err error
	if set.Title, err = load("title", cfg.FontPaths.Title, true); err != nil {
		return nil, err
	}
	if set.SectionTitle, err = load("section title", cfg.FontPaths.SectionTitle, true); err != nil {
		return nil, err
	}
	if set.Normal, err = load("normal", cfg.FontPaths.Normal, false); err != nil {
		return nil, err
	}
	if set.Bold, err = load("bold", cfg.FontPaths.Bold, true); err != nil {
		return nil, err
	}
	return &set, nil
}

// LoadFont reads and parses a TTF, OTF or WOFF2 file
func LoadFont(path string, assets cache.Cache, ttl time.Duration) (*opentype.Font, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("font %s: %w", path, err)
	}

	data, err := cache.ReadFile(assets, path, ttl)
	if err != nil {
		return nil, err
	}

	data, err = maybeConvertWOFF2(path, data)
	if err != nil {
		return nil, err
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return f, nil
}

func builtinFont(bold bool) (*opentype.Font, error) {
	data := goregular.TTF
	if bold {
		data = gobold.TTF
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse built-in font: %w", err)
	}
	return f, nil
}

// maybeConvertWOFF2 converts WOFF2 font data to SFNT format if needed
func maybeConvertWOFF2(path string, data []byte) ([]byte, error) {
	if isWOFF2(path, data) {
		out, err := sfnt.ToSFNT(data)
		if err != nil {
			return nil, fmt.Errorf("convert woff2 to sfnt: %w", err)
		}
		return out, nil
	}
	return data, nil
}

// isWOFF2 checks the extension or the "wOF2" magic
func isWOFF2(path string, data []byte) bool {
	if strings.HasSuffix(strings.ToLower(path), ".woff2") {
		return true
	}
	return len(data) >= 4 && string(data[:4]) == "wOF2"
}

// faces creates and owns the font faces of one render
type faces struct {
	created map[faceKey]font.Face
}

type faceKey struct {
	font *opentype.Font
	size int
}

func newFaces() *faces {
	return &faces{created: make(map[faceKey]font.Face)}
}

func (f *faces) get(otf *opentype.Font, size int) (font.Face, error) {
	if size <= 0 {
		size = 12
	}
	key := faceKey{font: otf, size: size}
	if face, ok := f.created[key]; ok {
		return face, nil
	}

	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	f.created[key] = face
	return face, nil
}

func (f *faces) close() {
	for _, face := range f.created {
		_ = face.Close()
	}
}
