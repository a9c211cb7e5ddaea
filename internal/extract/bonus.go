package extract

import (
	"github.com/ppiankov/civcards/internal/model"
)

// BonusBuilder turns help text into classified, icon-matched bonus records.
// All of its parts are read-only after construction.
type BonusBuilder struct {
	segmenter  *Segmenter
	classifier *Classifier
	icons      *IconTable
}

// NewBonusBuilder wires a segmenter, classifier and icon table together.
// Nil arguments select the defaults.
func NewBonusBuilder(segmenter *Segmenter, classifier *Classifier, icons *IconTable) *BonusBuilder {
	if segmenter == nil {
		segmenter = NewSegmenter(nil, "", HeaderMatchPrefix)
	}
	if classifier == nil {
		classifier = NewClassifier(nil)
	}
	if icons == nil {
		icons = DefaultIconTable()
	}

	return &BonusBuilder{
		segmenter:  segmenter,
		classifier: classifier,
		icons:      icons,
	}
}

// Record classifies a single bonus text
func (b *BonusBuilder) Record(text string) model.BonusRecord {
	rec := model.BonusRecord{
		Text:           text,
		Classification: b.classifier.Classify(text),
	}
	if icon, ok := b.icons.FindIcon(text); ok {
		rec.Icon = &icon
	}
	return rec
}

// Records classifies each text in order
func (b *BonusBuilder) Records(texts []string) []model.BonusRecord {
	records := make([]model.BonusRecord, 0, len(texts))
	for _, text := range texts {
		records = append(records, b.Record(text))
	}
	return records
}

// Split segments help text and returns the description with its bonus records
func (b *BonusBuilder) Split(helpText string) (string, []model.BonusRecord) {
	desc, lines := b.segmenter.Segment(helpText)
	return desc, b.Records(lines)
}

// Icons exposes the icon table the builder matches against
func (b *BonusBuilder) Icons() *IconTable {
	return b.icons
}
