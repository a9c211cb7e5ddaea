package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/ppiankov/civcards/internal/model"
	"github.com/ppiankov/civcards/internal/pipeline"
	"github.com/ppiankov/civcards/internal/score"
	"github.com/ppiankov/civcards/internal/worker"
	"github.com/spf13/cobra"
)

var (
	civsFile   string
	workers    int
	repoDir    string
	locale     string
	dataDir    string
	iconsDir   string
	headerMode string
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract [civ...]",
	Short: "Extract civilization data from an aoe2techtree checkout",
	Long: `Extract reads data/data.json and the locale strings of a local
aoe2techtree checkout and writes one JSON record per civilization:
- description and bonuses split from the help text
- bonus classification (economic, military, unit_specific, tech_specific, other)
- keyword-matched bonus icons, unique unit/technology icons and heraldry,
  copied into the icons directory

Without arguments every civilization is extracted and
data/all_civilizations.json is written as well.

Example:
  civcards extract
  civcards extract Britons Byzantines --workers 2
  civcards extract --civs-file civs.txt --repo ~/src/aoe2techtree`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(&civsFile, "civs-file", "", "file with civilization ids, one per line")
	extractCmd.Flags().IntVar(&workers, "workers", 0, "number of concurrent workers (default from config)")
	extractCmd.Flags().StringVar(&repoDir, "repo", "", "aoe2techtree checkout")
	extractCmd.Flags().StringVar(&locale, "locale", "", "locale to read strings from")
	extractCmd.Flags().StringVar(&dataDir, "data-dir", "", "output directory for JSON records")
	extractCmd.Flags().StringVar(&iconsDir, "icons-dir", "", "output directory for copied icons")
	extractCmd.Flags().StringVar(&headerMode, "header-match", "", "section header matching: prefix or exact")
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	overrideString(flags.Changed("repo"), &cfg.Source.RepoDir, repoDir)
	overrideString(flags.Changed("locale"), &cfg.Source.Locale, locale)
	overrideString(flags.Changed("data-dir"), &cfg.Paths.DataDir, dataDir)
	overrideString(flags.Changed("icons-dir"), &cfg.Paths.IconsDir, iconsDir)
	overrideString(flags.Changed("header-match"), &cfg.Segment.HeaderMatch, headerMode)
	if flags.Changed("workers") {
		cfg.Concurrency.Workers = workers
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	banner("civcards Extract")
	fmt.Fprintf(os.Stderr, "  Repository:   %s\n", cfg.Resolve(cfg.Source.RepoDir))
	fmt.Fprintf(os.Stderr, "  Locale:       %s\n", cfg.Source.Locale)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", cfg.Concurrency.Workers)
	fmt.Fprintf(os.Stderr, "\n")

	fmt.Fprintf(os.Stderr, "⚙️  Loading dataset...\n")
	extractor, err := pipeline.NewExtractorFromConfig(cfg, progressWriter(cfg.Verbose))
	if err != nil {
		return err
	}
	known := extractor.Dataset().CivIDs()
	fmt.Fprintf(os.Stderr, "%s Loaded %d civilizations\n", okMark(), len(known))

	ids, err := selectNames(args, civsFile, known, "civilization")
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "⚙️  Extracting...\n\n")
	results := extractor.ExtractAll(ctx, ids, cfg.Concurrency.Workers)

	outDir := cfg.Resolve(cfg.Paths.DataDir)
	records, failed := writeRecords(outDir, results, cfg.Verbose)

	if len(ids) == 0 && len(records) > 0 {
		path, err := pipeline.WriteAll(outDir, records)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "%s Wrote %s\n", okMark(), path)
	}

	summary("Extract Complete", len(results), len(records), failed, outDir)
	if failed > 0 {
		return fmt.Errorf("%d civilizations failed", failed)
	}
	return nil
}

func writeRecords(outDir string, results []*worker.TaskResult[*model.CivilizationRecord], verbose bool) ([]*model.CivilizationRecord, int) {
	var records []*model.CivilizationRecord
	failed := 0
	scorer := score.NewScorer()

	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s %s: %v\n", failMark(), res.Key, res.Err)
			continue
		}
		path, err := pipeline.WriteRecord(outDir, res.Value)
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s %s: %v\n", failMark(), res.Key, err)
			continue
		}
		records = append(records, res.Value)

		quality := scorer.Calculate(res.Value)
		fmt.Fprintf(os.Stderr, "%s %s (%d bonuses, quality %d/%s) -> %s\n",
			okMark(), res.Value.Name, len(res.Value.Bonuses), quality.Index, quality.Confidence, path)
		if verbose {
			for _, sig := range quality.Issues() {
				fmt.Fprintf(os.Stderr, "    %s %s\n", warnMark(), sig.Description)
			}
		}
	}
	return records, failed
}

// selectNames merges positional names with a names file and checks each
// against known. An empty result means "all".
func selectNames(args []string, file string, known []string, kind string) ([]string, error) {
	names := append([]string(nil), args...)
	if file != "" {
		fromFile, err := worker.ReadKeysFromFile(file)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		names = append(names, fromFile...)
	}

	set := make(map[string]bool, len(known))
	for _, k := range known {
		set[k] = true
	}

	var out []string
	seen := make(map[string]bool)
	for _, name := range names {
		if !set[name] {
			return nil, unknownError(kind, name, known)
		}
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out, nil
}

func overrideString(changed bool, dst *string, value string) {
	if changed {
		*dst = value
	}
}
