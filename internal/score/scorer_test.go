package score

import (
	"testing"

	"github.com/ppiankov/civcards/internal/model"
)

func bonus(text string, category model.Category, icon string) model.BonusRecord {
	return model.BonusRecord{Text: text, Classification: category, Icon: model.StringPtr(icon)}
}

func completeRecord() *model.CivilizationRecord {
	return &model.CivilizationRecord{
		ID:          "Britons",
		Name:        "Британцы",
		Description: "Цивилизация лучников",
		Bonuses: []model.BonusRecord{
			bonus("Городские центры стоят на 50% меньше дерева", model.CategoryEconomic, "Buildings/109.png"),
			bonus("Пастухи работают на 25% быстрее", model.CategoryEconomic, "Units/592.png"),
			bonus("Лучники получают +1 к дальности", model.CategoryMilitary, "Units/4.png"),
			bonus("Стрельбища работают на 20% быстрее", model.CategoryEconomic, "Buildings/87.png"),
		},
		UniqueUnits: []model.UniqueUnit{{ID: "8", Name: "Лучник с длинным луком", Icon: model.StringPtr("Units/8.png")}},
		UniqueTechs: []model.UniqueTech{{ID: "3", Name: "Йомены", Age: "castle"}},
		TeamBonus:   []model.BonusRecord{bonus("Стрельбища работают на 10% быстрее", model.CategoryEconomic, "")},
		Icon:        model.StringPtr("Civs/britons.png"),
	}
}

func findSignal(signals []model.Signal, typ model.SignalType) (model.Signal, bool) {
	for _, s := range signals {
		if s.Type == typ {
			return s, true
		}
	}
	return model.Signal{}, false
}

func TestScorer_Calculate_CompleteRecord(t *testing.T) {
	result := NewScorer().Calculate(completeRecord())

	if result.Index != 100 {
		t.Errorf("Expected index 100 for a complete record, got %d", result.Index)
	}
	if result.Confidence != "high" {
		t.Errorf("Expected high confidence, got %s", result.Confidence)
	}
	if len(result.Issues()) != 0 {
		t.Errorf("Expected no issues, got %+v", result.Issues())
	}
	if _, ok := findSignal(result.Signals, model.SignalFallbackName); ok {
		t.Error("Did not expect a fallback name signal")
	}
}

func TestScorer_Calculate_EmptyRecord(t *testing.T) {
	result := NewScorer().Calculate(&model.CivilizationRecord{ID: "Atlanteans", Name: "Атланты"})

	if result.Index != 0 {
		t.Errorf("Expected index 0 for an empty record, got %d", result.Index)
	}
	if result.Confidence != "low" {
		t.Errorf("Expected low confidence, got %s", result.Confidence)
	}

	sig, ok := findSignal(result.Signals, model.SignalIconCoverage)
	if !ok || sig.Severity != model.SeverityCritical {
		t.Errorf("Expected critical icon coverage signal, got %+v", sig)
	}
	sig, ok = findSignal(result.Signals, model.SignalCompleteness)
	if !ok || sig.Severity != model.SeverityCritical {
		t.Errorf("Expected critical completeness signal, got %+v", sig)
	}
}

func TestScorer_Calculate_PartialRecord(t *testing.T) {
	rec := completeRecord()
	rec.Bonuses[0].Icon = nil
	rec.Bonuses[1].Icon = nil
	rec.Bonuses[3].Classification = model.CategoryOther
	rec.TeamBonus = nil
	rec.Icon = nil
	rec.UniqueUnits[0].Icon = nil

	result := NewScorer().Calculate(rec)

	// icons 2/4 -> 20, classified 3/4 -> 23, 3 sections -> 15, assets 0
	if result.Index != 58 {
		t.Errorf("Expected index 58, got %d", result.Index)
	}
	if result.Confidence != "low" {
		t.Errorf("Expected low confidence, got %s", result.Confidence)
	}

	sig, _ := findSignal(result.Signals, model.SignalCompleteness)
	if sig.Severity != model.SeverityWarning || sig.Description != "Missing section: team_bonus" {
		t.Errorf("Unexpected completeness signal: %+v", sig)
	}
	sig, _ = findSignal(result.Signals, model.SignalClassification)
	if sig.Data["other"] != 1 {
		t.Errorf("Expected one other bonus, got %v", sig.Data["other"])
	}
	sig, _ = findSignal(result.Signals, model.SignalAssets)
	if sig.Severity != model.SeverityWarning {
		t.Errorf("Expected warning for missing heraldry, got %s", sig.Severity)
	}
}

func TestScorer_Calculate_FallbackNames(t *testing.T) {
	rec := completeRecord()
	rec.Name = rec.ID
	rec.UniqueTechs[0].Name = "Tech_3"

	result := NewScorer().Calculate(rec)

	if result.Index != 90 {
		t.Errorf("Expected index 90 after the penalty, got %d", result.Index)
	}
	if result.Confidence != "low-medium" {
		t.Errorf("Expected low-medium confidence, got %s", result.Confidence)
	}

	sig, ok := findSignal(result.Signals, model.SignalFallbackName)
	if !ok {
		t.Fatal("Expected fallback name signal")
	}
	names, _ := sig.Data["names"].([]string)
	if len(names) != 2 || names[0] != "Britons" || names[1] != "Tech_3" {
		t.Errorf("Unexpected fallback names: %v", names)
	}
}

func TestScorer_Calculate_NilRecord(t *testing.T) {
	result := NewScorer().Calculate(nil)

	if result.Index != 0 || result.Confidence != "low" {
		t.Errorf("Unexpected score for nil record: %+v", result)
	}
	if len(result.Issues()) != 1 {
		t.Errorf("Expected one issue, got %d", len(result.Issues()))
	}
}
