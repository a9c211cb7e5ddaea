package model

// Score is the transparent quality breakdown of one extracted record
type Score struct {
	Index      int      `json:"index"`      // Overall quality index (0-100)
	Confidence string   `json:"confidence"` // "low", "medium", "high"
	Signals    []Signal `json:"signals"`    // Diagnostic signals with transparent data
}

// Signal is a diagnostic finding about an extracted record
type Signal struct {
	Type        SignalType             `json:"type"`
	Severity    SignalSeverity         `json:"severity"`
	Description string                 `json:"description"`
	Data        map[string]interface{} `json:"data,omitempty"` // Inputs and formula behind the score
}

// SignalType classifies the type of diagnostic signal
type SignalType string

const (
	SignalIconCoverage   SignalType = "icon_coverage"  // Bonuses with a matched icon
	SignalClassification SignalType = "classification" // Bonuses outside "other"
	SignalCompleteness   SignalType = "completeness"   // Description, units, techs, team bonus
	SignalAssets         SignalType = "assets"         // Heraldry and unique unit icons
	SignalFallbackName   SignalType = "fallback_name"  // Locale string missing, id used instead
)

// SignalSeverity indicates the importance of the signal
type SignalSeverity string

const (
	SeverityInfo     SignalSeverity = "info"
	SeverityWarning  SignalSeverity = "warning"
	SeverityCritical SignalSeverity = "critical"
)

// Issues returns the signals above info severity
func (s Score) Issues() []Signal {
	var out []Signal
	for _, sig := range s.Signals {
		if sig.Severity != SeverityInfo {
			out = append(out, sig)
		}
	}
	return out
}
