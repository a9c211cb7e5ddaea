package model

// Category is the coarse semantic tag attached to a bonus line
type Category string

const (
	CategoryEconomic     Category = "economic"      // Gathering, trade, cost reductions
	CategoryMilitary     Category = "military"      // Attack, armor, unit classes
	CategoryUnitSpecific Category = "unit_specific" // Named unit types
	CategoryTechSpecific Category = "tech_specific" // Research and tech buildings
	CategoryOther        Category = "other"         // Nothing matched
)

// Categories lists every category in classification priority order, with the
// fallback last
func Categories() []Category {
	return []Category{
		CategoryUnitSpecific,
		CategoryMilitary,
		CategoryEconomic,
		CategoryTechSpecific,
		CategoryOther,
	}
}

// Valid reports whether c is one of the defined categories
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// BonusRecord is one classified bonus statement
type BonusRecord struct {
	ID             string   `json:"id,omitempty"`   // Locale id when the bonus came from the dataset
	Text           string   `json:"text"`           // Plain bonus text
	Classification Category `json:"classification"` // Exactly one category
	Icon           *string  `json:"icon"`           // Icon path relative to the icons dir, nil when absent
}

// IconPath returns the icon reference or "" when absent
func (b BonusRecord) IconPath() string {
	if b.Icon == nil {
		return ""
	}
	return *b.Icon
}

// UniqueUnit is a civilization's castle or imperial age unique unit
type UniqueUnit struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Type string  `json:"type"`
	Icon *string `json:"icon"`
}

// UniqueTech is a civilization's castle or imperial age unique technology
type UniqueTech struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Age            string  `json:"age"`             // castle, imperial
	RawDescription string  `json:"raw_description"` // Help text as found in the locale
	Description    string  `json:"description"`     // Help text without the research line
	Icon           *string `json:"icon"`
}

// CivilizationRecord is the extracted, localized view of one civilization.
// It is built once per dataset entry and treated as immutable afterwards.
type CivilizationRecord struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Type        string        `json:"type"`
	Bonuses     []BonusRecord `json:"bonuses"`
	UniqueUnits []UniqueUnit  `json:"unique_units"`
	UniqueTechs []UniqueTech  `json:"unique_techs"`
	TeamBonus   []BonusRecord `json:"team_bonus"`
	Icon        *string       `json:"icon"`
}

// StringPtr returns a pointer to s, or nil for the empty string
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
