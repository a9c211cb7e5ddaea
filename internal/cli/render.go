package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/ppiankov/civcards/internal/cache"
	"github.com/ppiankov/civcards/internal/pipeline"
	"github.com/ppiankov/civcards/internal/render"
	"github.com/spf13/cobra"
)

var (
	renderFormat  string
	renderOutput  string
	renderWidth   int
	renderHeight  int
	renderNoCache bool
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render [civ-name...]",
	Short: "Render infocard images from extracted records",
	Long: `Render draws one infocard per civilization record found in the data
directory. Names are localized civilization names as written by extract.

Example:
  civcards render
  civcards render Византийцы Британцы --format jpg
  civcards render --output-path "cards/{civ_name}.{format}" --width 600`,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVar(&civsFile, "civs-file", "", "file with civilization names, one per line")
	renderCmd.Flags().IntVar(&workers, "workers", 0, "number of concurrent workers (default from config)")
	renderCmd.Flags().StringVar(&dataDir, "data-dir", "", "directory with extracted JSON records")
	renderCmd.Flags().StringVar(&iconsDir, "icons-dir", "", "directory with copied icons")
	renderCmd.Flags().StringVar(&renderFormat, "format", "", "image format: png, jpg")
	renderCmd.Flags().StringVar(&renderOutput, "output-path", "", "output path template ({civ_name}, {format})")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "card width in pixels")
	renderCmd.Flags().IntVar(&renderHeight, "height", 0, "card height in pixels, 0 fits the content")
	renderCmd.Flags().BoolVar(&renderNoCache, "no-cache", false, "disable the in-memory asset cache")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	overrideString(flags.Changed("data-dir"), &cfg.Paths.DataDir, dataDir)
	overrideString(flags.Changed("icons-dir"), &cfg.Paths.IconsDir, iconsDir)
	overrideString(flags.Changed("format"), &cfg.Output.Format, renderFormat)
	overrideString(flags.Changed("output-path"), &cfg.Output.OutputPath, renderOutput)
	if flags.Changed("width") {
		cfg.Image.Width = renderWidth
	}
	if flags.Changed("height") {
		cfg.Image.Height = renderHeight
	}
	if flags.Changed("workers") {
		cfg.Concurrency.Workers = workers
	}
	if renderNoCache {
		cfg.Cache.Enabled = false
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	inDir := cfg.Resolve(cfg.Paths.DataDir)
	records, err := pipeline.LoadRecords(inDir)
	if err != nil {
		return fmt.Errorf("load records from %s: %w", inDir, err)
	}

	known := make([]string, 0, len(records))
	for _, rec := range records {
		known = append(known, rec.Name)
	}
	names, err := selectNames(args, civsFile, known, "civilization")
	if err != nil {
		return err
	}

	banner("civcards Render")
	fmt.Fprintf(os.Stderr, "  Records:      %d\n", len(records))
	fmt.Fprintf(os.Stderr, "  Format:       %s\n", cfg.Output.Format)
	fmt.Fprintf(os.Stderr, "  Width:        %d\n", cfg.Image.Width)
	fmt.Fprintf(os.Stderr, "  Cache:        %s\n", cacheStatus(cfg.Cache.Enabled, cfg.Cache.TTL))
	fmt.Fprintf(os.Stderr, "\n")

	var assets cache.Cache
	if cfg.Cache.Enabled {
		assets = cache.NewMemoryCache(cfg.Cache.TTL, 2*cfg.Cache.TTL)
	}

	renderer, err := render.NewRenderer(cfg, assets, progressWriter(cfg.Verbose))
	if err != nil {
		return err
	}

	results := renderer.RenderAll(ctx, records, names, cfg.Concurrency.Workers)

	ok, failed := 0, 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s %s: %v\n", failMark(), res.Key, res.Err)
			continue
		}
		ok++
		fmt.Fprintf(os.Stderr, "%s %s -> %s\n", okMark(), res.Key, res.Value)
	}

	summary("Render Complete", len(results), ok, failed, cfg.Resolve(cfg.Paths.BaseDir))
	if failed > 0 {
		return fmt.Errorf("%d cards failed", failed)
	}
	return nil
}

func cacheStatus(enabled bool, ttl time.Duration) string {
	if !enabled {
		return "disabled"
	}
	return fmt.Sprintf("memory (ttl %s)", ttl)
}
