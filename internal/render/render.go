package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ppiankov/civcards/internal/cache"
	"github.com/ppiankov/civcards/internal/model"
	"github.com/ppiankov/civcards/internal/worker"
)

// ErrNoCivilization is returned when there is no record to render
var ErrNoCivilization = errors.New("no civilization record")

// Renderer draws civilization infocards. It is safe for concurrent use: the
// parsed fonts and the asset cache are shared, faces are per render.
type Renderer struct {
	cfg      *model.Config
	fonts    *FontSet
	assets   cache.Cache
	iconsDir string
	progress io.Writer
}

// NewRenderer loads the configured fonts. assets may be nil to disable
// caching; progress may be nil to discard warnings.
func NewRenderer(cfg *model.Config, assets cache.Cache, progress io.Writer) (*Renderer, error) {
	if progress == nil {
		progress = io.Discard
	}
	if cfg.Image.Width <= 0 {
		return nil, fmt.Errorf("invalid image width %d", cfg.Image.Width)
	}
	if _, err := encoderFor(cfg.Output.Format); err != nil {
		return nil, err
	}

	fonts, err := LoadFonts(cfg, assets, progress)
	if err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}

	return &Renderer{
		cfg:      cfg,
		fonts:    fonts,
		assets:   assets,
		iconsDir: cfg.Resolve(cfg.Paths.IconsDir),
		progress: progress,
	}, nil
}

// Draw renders rec into an image
func (r *Renderer) Draw(rec *model.CivilizationRecord) (*image.NRGBA, error) {
	if rec == nil {
		return nil, ErrNoCivilization
	}

	fs := newFaces()
	defer fs.close()

	content, height, err := r.drawContent(rec, fs)
	if err != nil {
		return nil, err
	}

	cfg := r.cfg.Image
	bg := withOpacity(r.color(cfg.BackgroundColor), cfg.BackgroundOpacity)
	card := image.NewNRGBA(image.Rect(0, 0, cfg.Width, height))
	draw.Draw(card, card.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	r.drawBackground(card, rec)
	draw.Draw(card, card.Bounds(), content, image.Point{}, draw.Over)

	if cfg.Border.Enabled {
		drawBorder(card, r.color(cfg.Border.Color), cfg.Border.Width, cfg.Border.Radius)
	}
	return card, nil
}

func (r *Renderer) drawBackground(card *image.NRGBA, rec *model.CivilizationRecord) {
	cfg := r.cfg.Image

	if path := strings.TrimSpace(cfg.BackgroundImage); path != "" {
		img, err := loadImage(r.assets, r.cfg.Resolve(path), r.cfg.Cache.TTL)
		if err == nil {
			applyBackgroundImage(card, img)
			return
		}
		r.warnf("background %s: %v", path, err)
	}

	if cfg.UseHeraldryBackground && rec.Icon != nil {
		path := filepath.Join(r.iconsDir, filepath.FromSlash(*rec.Icon))
		img, err := loadImage(r.assets, path, r.cfg.Cache.TTL)
		if err != nil {
			r.warnf("heraldry %s: %v", *rec.Icon, err)
			return
		}
		applyHeraldry(card, img, cfg.HeraldryOpacity)
	}
}

// Encode writes img in the configured format
func (r *Renderer) Encode(w io.Writer, img *image.NRGBA) error {
	enc, err := encoderFor(r.cfg.Output.Format)
	if err != nil {
		return err
	}
	return enc(w, img, r)
}

type encodeFunc func(io.Writer, *image.NRGBA, *Renderer) error

func encoderFor(format string) (encodeFunc, error) {
	switch strings.ToLower(format) {
	case "png", "":
		return func(w io.Writer, img *image.NRGBA, _ *Renderer) error {
			return png.Encode(w, img)
		}, nil
	case "jpg", "jpeg":
		return func(w io.Writer, img *image.NRGBA, r *Renderer) error {
			quality := r.cfg.Output.JPGQuality
			if quality <= 0 || quality > 100 {
				quality = jpeg.DefaultQuality
			}
			flat := flatten(img, r.color(r.cfg.Image.BackgroundColor))
			return jpeg.Encode(w, flat, &jpeg.Options{Quality: quality})
		}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

// OutputPath expands the output path template for a civilization name
func (r *Renderer) OutputPath(civName string) string {
	format := strings.ToLower(r.cfg.Output.Format)
	if format == "" {
		format = "png"
	}
	path := strings.NewReplacer("{civ_name}", civName, "{format}", format).Replace(r.cfg.Output.OutputPath)
	return r.cfg.Resolve(path)
}

// Render draws rec and writes it to its output path
func (r *Renderer) Render(ctx context.Context, rec *model.CivilizationRecord) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	img, err := r.Draw(rec)
	if err != nil {
		return "", err
	}

	path := r.OutputPath(rec.Name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := r.Encode(f, img); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// RenderAll renders the named records concurrently, keyed by record name.
// Results keep the order of names; a name without a record reports
// ErrNoCivilization.
func (r *Renderer) RenderAll(ctx context.Context, records []*model.CivilizationRecord, names []string, workers int) []*worker.TaskResult[string] {
	byName := make(map[string]*model.CivilizationRecord, len(records))
	for _, rec := range records {
		byName[rec.Name] = rec
	}
	if len(names) == 0 {
		for _, rec := range records {
			names = append(names, rec.Name)
		}
	}

	batch := worker.NewBatch[string](workers)
	return batch.Run(ctx, names, func(ctx context.Context, name string) (string, error) {
		rec, ok := byName[name]
		if !ok {
			return "", fmt.Errorf("%s: %w", name, ErrNoCivilization)
		}
		return r.Render(ctx, rec)
	})
}

func (r *Renderer) warnf(format string, args ...any) {
	if r.cfg.Verbose {
		_, _ = fmt.Fprintf(r.progress, "⚠️  "+format+"\n", args...)
	}
}
