package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/ppiankov/civcards/internal/dataset"
	"github.com/ppiankov/civcards/internal/extract"
	"github.com/ppiankov/civcards/internal/model"
	"github.com/ppiankov/civcards/internal/worker"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]`)

// Options configures an Extractor
type Options struct {
	RepoDir  string    // aoe2techtree checkout; icons are read from <RepoDir>/img
	IconsDir string    // Destination for copied icons
	Progress io.Writer // Status output, nil discards
	Verbose  bool
}

// Extractor builds civilization records from an aoe2techtree dataset
type Extractor struct {
	ds       *dataset.Dataset
	bonuses  *extract.BonusBuilder
	imgDir   string
	iconsDir string
	progress io.Writer
	verbose  bool

	mu     sync.Mutex
	copied map[string]bool
}

// NewExtractor creates an extractor. A nil builder selects the defaults.
func NewExtractor(ds *dataset.Dataset, bonuses *extract.BonusBuilder, opts Options) *Extractor {
	if bonuses == nil {
		bonuses = extract.NewBonusBuilder(nil, nil, nil)
	}
	progress := opts.Progress
	if progress == nil {
		progress = io.Discard
	}

	return &Extractor{
		ds:       ds,
		bonuses:  bonuses,
		imgDir:   filepath.Join(opts.RepoDir, "img"),
		iconsDir: opts.IconsDir,
		progress: progress,
		verbose:  opts.Verbose,
		copied:   make(map[string]bool),
	}
}

// NewExtractorFromConfig opens the configured dataset and wires the
// segmenter, classifier and icon table from cfg
func NewExtractorFromConfig(cfg *model.Config, progress io.Writer) (*Extractor, error) {
	repoDir := cfg.Resolve(cfg.Source.RepoDir)

	ds, err := dataset.Open(repoDir, cfg.Source.Locale)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}

	return NewExtractor(ds, NewBonusBuilder(cfg), Options{
		RepoDir:  repoDir,
		IconsDir: cfg.Resolve(cfg.Paths.IconsDir),
		Progress: progress,
		Verbose:  cfg.Verbose,
	}), nil
}

// NewBonusBuilder builds the bonus pipeline described by cfg
func NewBonusBuilder(cfg *model.Config) *extract.BonusBuilder {
	segmenter := extract.NewSegmenter(
		cfg.Segment.Headers,
		cfg.Segment.Bullet,
		extract.ParseHeaderMatch(cfg.Segment.HeaderMatch),
	)

	var extra []extract.IconKeyword
	for _, kw := range cfg.Icons.Keywords {
		extra = append(extra, extract.IconKeyword{Keyword: kw.Keyword, Icon: kw.Icon})
	}

	return extract.NewBonusBuilder(segmenter, extract.NewClassifier(nil), extract.DefaultIconTable(extra))
}

// Dataset returns the underlying dataset
func (e *Extractor) Dataset() *dataset.Dataset {
	return e.ds
}

// Extract builds the record of one civilization
func (e *Extractor) Extract(ctx context.Context, civID string) (*model.CivilizationRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	civ, err := e.ds.Civ(civID)
	if err != nil {
		return nil, err
	}
	strs := e.ds.Strings()

	if e.verbose {
		_, _ = fmt.Fprintf(e.progress, "⚙️  Processing %s\n", civID)
	}

	helpText := extract.CleanMarkup(strs.Get(civ.HelpTextID, ""))
	description, bonuses := e.bonuses.Split(helpText)
	for i := range bonuses {
		bonuses[i].Icon = e.iconRef(bonuses[i].IconPath())
	}
	if len(bonuses) == 0 {
		bonuses = e.datasetBonuses(civ.BonusIDs)
	}

	rec := &model.CivilizationRecord{
		ID:          civ.ID,
		Name:        strs.Get(civ.NameID, civ.ID),
		Description: description,
		Type:        civ.Type,
		Bonuses:     bonuses,
		UniqueUnits: e.uniqueUnits(civ),
		UniqueTechs: e.uniqueTechs(civ),
		TeamBonus:   e.teamBonus(civ.TeamBonusID),
		Icon:        e.heraldry(civ.ID),
	}

	return rec, nil
}

// ExtractAll extracts the given civilizations (all when ids is empty)
// concurrently. Results keep input order; failures are reported per id.
func (e *Extractor) ExtractAll(ctx context.Context, ids []string, workers int) []*worker.TaskResult[*model.CivilizationRecord] {
	if len(ids) == 0 {
		ids = e.ds.CivIDs()
	}

	batch := worker.NewBatch[*model.CivilizationRecord](workers)
	return batch.Run(ctx, ids, e.Extract)
}

func (e *Extractor) datasetBonuses(ids []string) []model.BonusRecord {
	strs := e.ds.Strings()
	records := make([]model.BonusRecord, 0, len(ids))

	for _, id := range ids {
		rec := e.bonuses.Record(extract.CleanMarkup(strs.Get(id, id)))
		rec.ID = id
		if icon := e.iconRef("Techs/" + id + ".png"); icon != nil {
			rec.Icon = icon
		} else {
			rec.Icon = e.iconRef(rec.IconPath())
		}
		records = append(records, rec)
	}
	return records
}

func (e *Extractor) uniqueUnits(civ dataset.Civ) []model.UniqueUnit {
	strs := e.ds.Strings()
	units := []model.UniqueUnit{}

	for _, id := range civ.UnitIDs() {
		entry, ok := e.ds.Unit(id)
		if !ok {
			continue
		}
		units = append(units, model.UniqueUnit{
			ID:   id,
			Name: strs.Get(entry.LanguageNameID, "Unit_"+id),
			Icon: e.iconRef("Units/" + id + ".png"),
		})
	}
	return units
}

func (e *Extractor) uniqueTechs(civ dataset.Civ) []model.UniqueTech {
	strs := e.ds.Strings()
	techs := []model.UniqueTech{}

	ages := []struct {
		id, age, icon string
	}{
		{civ.CastleTechID, "castle", "Techs/unique_tech_1.png"},
		{civ.ImperialTechID, "imperial", "Techs/unique_tech_2.png"},
	}
	seen := make(map[string]bool)

	for _, a := range ages {
		if a.id == "" || seen[a.id] {
			continue
		}
		seen[a.id] = true

		entry, ok := e.ds.Tech(a.id)
		if !ok {
			continue
		}
		raw := extract.CleanMarkup(strs.Get(entry.LanguageHelpID, ""))
		techs = append(techs, model.UniqueTech{
			ID:             a.id,
			Name:           strs.Get(entry.LanguageNameID, "Tech_"+a.id),
			Age:            a.age,
			RawDescription: raw,
			Description:    extract.StripResearchLine(raw),
			Icon:           e.iconRef(a.icon),
		})
	}
	return techs
}

// teamBonus classifies each non-empty line of the team bonus text
func (e *Extractor) teamBonus(id string) []model.BonusRecord {
	records := []model.BonusRecord{}
	if id == "" {
		return records
	}

	text := extract.CleanMarkup(e.ds.Strings().Get(id, id))
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), extract.DefaultBullet))
		if line == "" {
			continue
		}
		rec := e.bonuses.Record(line)
		rec.Icon = e.iconRef(rec.IconPath())
		records = append(records, rec)
	}
	return records
}

func (e *Extractor) heraldry(civID string) *string {
	for _, slug := range heraldrySlugs(civID) {
		if icon := e.iconRef("Civs/" + slug + ".png"); icon != nil {
			return icon
		}
	}
	return nil
}

// heraldrySlugs lists candidate file names for a civilization's heraldry
func heraldrySlugs(civID string) []string {
	candidates := []string{
		nonSlugChars.ReplaceAllString(strings.ToLower(civID), ""),
		strings.ToLower(civID),
	}
	if civID == "Hindustanis" {
		candidates = append(candidates, "indians")
	}

	var slugs []string
	seen := make(map[string]bool)
	for _, c := range candidates {
		if c != "" && !seen[c] {
			seen[c] = true
			slugs = append(slugs, c)
		}
	}
	return slugs
}

// iconRef copies an img-relative icon into the icons dir once and returns
// the reference, or nil when ref is empty or the copy failed
func (e *Extractor) iconRef(ref string) *string {
	if ref == "" {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	ok, done := e.copied[ref]
	if !done {
		err := copyFile(filepath.Join(e.imgDir, filepath.FromSlash(ref)), filepath.Join(e.iconsDir, filepath.FromSlash(ref)))
		ok = err == nil
		e.copied[ref] = ok
		if err != nil && e.verbose {
			_, _ = fmt.Fprintf(e.progress, "  skip icon %s: %v\n", ref, err)
		}
	}
	if !ok {
		return nil
	}
	return model.StringPtr(ref)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open icon: %w", err)
	}
	defer func() { _ = in.Close() }()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("create icon dir: %w", err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create icon: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copy icon: %w", err)
	}
	return out.Close()
}
