package score

import (
	"fmt"
	"math"
	"strings"

	"github.com/ppiankov/civcards/internal/model"
)

// Scorer rates how complete an extracted civilization record is
type Scorer struct{}

// NewScorer creates a new scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// Calculate scores rec and generates diagnostic signals
func (s *Scorer) Calculate(rec *model.CivilizationRecord) model.Score {
	if rec == nil {
		return model.Score{
			Confidence: "low",
			Signals: []model.Signal{{
				Type:        model.SignalCompleteness,
				Severity:    model.SeverityCritical,
				Description: "No record",
			}},
		}
	}

	var signals []model.Signal

	// 1. Icon coverage (0-40 points)
	iconScore, iconSignal := s.calculateIconCoverage(rec)
	signals = append(signals, iconSignal)

	// 2. Classification (0-30 points)
	classScore, classSignal := s.calculateClassification(rec)
	signals = append(signals, classSignal)

	// 3. Completeness (0-20 points)
	completeScore, completeSignal := s.calculateCompleteness(rec)
	signals = append(signals, completeSignal)

	// 4. Assets (0-10 points)
	assetScore, assetSignal := s.calculateAssets(rec)
	signals = append(signals, assetSignal)

	// 5. Fallback names (penalty)
	fallback, fallbackSignal := s.detectFallbackNames(rec)
	if fallback {
		signals = append(signals, fallbackSignal)
	}

	total := iconScore + classScore + completeScore + assetScore
	if fallback {
		total -= 10
		if total < 0 {
			total = 0
		}
	}

	return model.Score{
		Index:      total,
		Confidence: s.determineConfidence(total, len(rec.Bonuses), fallback),
		Signals:    signals,
	}
}

// calculateIconCoverage scores the share of bonuses with an icon (0-40 points)
func (s *Scorer) calculateIconCoverage(rec *model.CivilizationRecord) (int, model.Signal) {
	total := len(rec.Bonuses)
	if total == 0 {
		return 0, model.Signal{
			Type:        model.SignalIconCoverage,
			Severity:    model.SeverityCritical,
			Description: "No bonuses extracted",
			Data:        map[string]interface{}{"bonuses": 0},
		}
	}

	withIcon := 0
	for _, b := range rec.Bonuses {
		if b.Icon != nil {
			withIcon++
		}
	}

	ratio := float64(withIcon) / float64(total)
	score := int(math.Round(ratio * 40))

	severity := model.SeverityInfo
	if ratio < 0.5 {
		severity = model.SeverityWarning
	}

	return score, model.Signal{
		Type:        model.SignalIconCoverage,
		Severity:    severity,
		Description: fmt.Sprintf("Bonus icons: %d/%d", withIcon, total),
		Data: map[string]interface{}{
			"bonuses":   total,
			"with_icon": withIcon,
			"ratio":     ratio,
			"score":     score,
			"formula":   "round(with_icon / bonuses * 40)",
		},
	}
}

// calculateClassification scores the share of bonuses outside "other" (0-30 points)
func (s *Scorer) calculateClassification(rec *model.CivilizationRecord) (int, model.Signal) {
	total := len(rec.Bonuses)
	if total == 0 {
		return 0, model.Signal{
			Type:        model.SignalClassification,
			Severity:    model.SeverityWarning,
			Description: "No bonuses to classify",
			Data:        map[string]interface{}{"bonuses": 0},
		}
	}

	counts := make(map[model.Category]int)
	for _, b := range rec.Bonuses {
		counts[b.Classification]++
	}
	classified := total - counts[model.CategoryOther]

	ratio := float64(classified) / float64(total)
	score := int(math.Round(ratio * 30))

	severity := model.SeverityInfo
	if ratio < 0.5 {
		severity = model.SeverityWarning
	}

	data := map[string]interface{}{
		"bonuses":    total,
		"classified": classified,
		"ratio":      ratio,
		"score":      score,
		"formula":    "round(classified / bonuses * 30)",
	}
	for _, c := range model.Categories() {
		data[string(c)] = counts[c]
	}

	return score, model.Signal{
		Type:        model.SignalClassification,
		Severity:    severity,
		Description: fmt.Sprintf("Classified bonuses: %d/%d (%d other)", classified, total, counts[model.CategoryOther]),
		Data:        data,
	}
}

// calculateCompleteness gives 5 points each for description, unique units,
// unique techs and team bonus (0-20 points)
func (s *Scorer) calculateCompleteness(rec *model.CivilizationRecord) (int, model.Signal) {
	parts := map[string]bool{
		"description":  strings.TrimSpace(rec.Description) != "",
		"unique_units": len(rec.UniqueUnits) > 0,
		"unique_techs": len(rec.UniqueTechs) > 0,
		"team_bonus":   len(rec.TeamBonus) > 0,
	}

	var missing []string
	for _, name := range []string{"description", "unique_units", "unique_techs", "team_bonus"} {
		if !parts[name] {
			missing = append(missing, name)
		}
	}
	score := 5 * (len(parts) - len(missing))

	severity := model.SeverityInfo
	description := "All sections present"
	switch {
	case len(missing) >= 2:
		severity = model.SeverityCritical
		description = "Missing sections: " + strings.Join(missing, ", ")
	case len(missing) == 1:
		severity = model.SeverityWarning
		description = "Missing section: " + missing[0]
	}

	return score, model.Signal{
		Type:        model.SignalCompleteness,
		Severity:    severity,
		Description: description,
		Data: map[string]interface{}{
			"missing": missing,
			"score":   score,
			"formula": "5 * present_sections",
		},
	}
}

// calculateAssets scores heraldry (5 points) and unique unit icons (0-5 points)
func (s *Scorer) calculateAssets(rec *model.CivilizationRecord) (int, model.Signal) {
	score := 0
	if rec.Icon != nil {
		score += 5
	}

	unitIcons := 0
	for _, u := range rec.UniqueUnits {
		if u.Icon != nil {
			unitIcons++
		}
	}
	if n := len(rec.UniqueUnits); n > 0 {
		score += int(math.Round(float64(unitIcons) / float64(n) * 5))
	}

	severity := model.SeverityInfo
	description := fmt.Sprintf("Unit icons: %d/%d, heraldry present", unitIcons, len(rec.UniqueUnits))
	if rec.Icon == nil {
		severity = model.SeverityWarning
		description = fmt.Sprintf("Unit icons: %d/%d, heraldry missing", unitIcons, len(rec.UniqueUnits))
	}

	return score, model.Signal{
		Type:        model.SignalAssets,
		Severity:    severity,
		Description: description,
		Data: map[string]interface{}{
			"heraldry":   rec.Icon != nil,
			"unit_icons": unitIcons,
			"units":      len(rec.UniqueUnits),
			"score":      score,
			"formula":    "5 * heraldry + round(unit_icons / units * 5)",
		},
	}
}

// detectFallbackNames finds names that are ids because the locale string was
// missing
func (s *Scorer) detectFallbackNames(rec *model.CivilizationRecord) (bool, model.Signal) {
	var fallbacks []string
	if rec.Name == rec.ID && rec.ID != "" {
		fallbacks = append(fallbacks, rec.Name)
	}
	for _, u := range rec.UniqueUnits {
		if strings.HasPrefix(u.Name, "Unit_") {
			fallbacks = append(fallbacks, u.Name)
		}
	}
	for _, t := range rec.UniqueTechs {
		if strings.HasPrefix(t.Name, "Tech_") {
			fallbacks = append(fallbacks, t.Name)
		}
	}

	if len(fallbacks) == 0 {
		return false, model.Signal{}
	}
	return true, model.Signal{
		Type:        model.SignalFallbackName,
		Severity:    model.SeverityWarning,
		Description: fmt.Sprintf("Untranslated names: %s", strings.Join(fallbacks, ", ")),
		Data: map[string]interface{}{
			"names":   fallbacks,
			"penalty": 10,
		},
	}
}

// determineConfidence maps the index to a confidence level
func (s *Scorer) determineConfidence(score int, bonusCount int, fallback bool) string {
	if fallback {
		return "low-medium"
	}

	if bonusCount < 3 {
		return "low"
	}

	if score >= 80 {
		return "high"
	} else if score >= 60 {
		return "medium"
	} else {
		return "low"
	}
}
