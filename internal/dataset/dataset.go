package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
)

// ErrNotFound is returned for missing files and unknown ids
var ErrNotFound = errors.New("not found")

// Civ is the raw techtree entry of one civilization
type Civ struct {
	ID             string
	NameID         string   // Locale id of the civilization name
	HelpTextID     string   // Locale id of the help text
	Type           string
	BonusIDs       []string // Locale ids of individual bonuses, if the dataset lists them
	TeamBonusID    string
	CastleUnitID   string
	ImperialUnitID string
	CastleTechID   string
	ImperialTechID string
}

// UnitIDs returns the non-empty unique unit ids, castle age first
func (c Civ) UnitIDs() []string {
	return nonEmpty(c.CastleUnitID, c.ImperialUnitID)
}

// Entry is a unit or technology record
type Entry struct {
	ID             string
	LanguageNameID string
	LanguageHelpID string
}

// Dataset gives read access to aoe2techtree data.json and one locale
type Dataset struct {
	data    gjson.Result
	strings Strings
}

// Open loads data/data.json and data/locales/<locale>/strings.json from a
// local aoe2techtree checkout
func Open(repoDir, locale string) (*Dataset, error) {
	dataPath := filepath.Join(repoDir, "data", "data.json")
	stringsPath := filepath.Join(repoDir, "data", "locales", locale, "strings.json")

	data, err := readFile(dataPath)
	if err != nil {
		return nil, err
	}
	strs, err := readFile(stringsPath)
	if err != nil {
		return nil, err
	}

	return Load(data, strs)
}

// Load parses already-read data.json and strings.json contents
func Load(dataJSON, stringsJSON []byte) (*Dataset, error) {
	if !gjson.ValidBytes(dataJSON) {
		return nil, fmt.Errorf("parse data.json: invalid JSON")
	}
	strs, err := ParseStrings(stringsJSON)
	if err != nil {
		return nil, err
	}

	return &Dataset{
		data:    gjson.ParseBytes(dataJSON),
		strings: strs,
	}, nil
}

// Strings returns the locale string table
func (d *Dataset) Strings() Strings {
	return d.strings
}

// CivIDs returns civilization ids in the order they appear in techtrees
func (d *Dataset) CivIDs() []string {
	var ids []string
	d.data.Get("techtrees").ForEach(func(key, _ gjson.Result) bool {
		ids = append(ids, key.String())
		return true
	})
	return ids
}

// Civ returns the techtree entry of one civilization
func (d *Dataset) Civ(id string) (Civ, error) {
	tree := d.data.Get("techtrees." + gjson.Escape(id))
	if !tree.Exists() {
		return Civ{}, fmt.Errorf("civilization %q: %w", id, ErrNotFound)
	}

	unique := tree.Get("unique")
	civ := Civ{
		ID:             id,
		NameID:         d.data.Get("civ_names." + gjson.Escape(id)).String(),
		HelpTextID:     d.data.Get("civ_helptexts." + gjson.Escape(id)).String(),
		Type:           tree.Get("type").String(),
		TeamBonusID:    idString(tree.Get("team_bonus")),
		CastleUnitID:   idString(unique.Get("castleAgeUniqueUnit")),
		ImperialUnitID: idString(unique.Get("imperialAgeUniqueUnit")),
		CastleTechID:   idString(unique.Get("castleAgeUniqueTech")),
		ImperialTechID: idString(unique.Get("imperialAgeUniqueTech")),
	}

	for _, b := range tree.Get("bonuses").Array() {
		if bonusID := idString(b); bonusID != "" {
			civ.BonusIDs = append(civ.BonusIDs, bonusID)
		}
	}

	return civ, nil
}

// Unit looks up data.units.<id>
func (d *Dataset) Unit(id string) (Entry, bool) {
	return d.entry("units", id)
}

// Tech looks up data.techs.<id>
func (d *Dataset) Tech(id string) (Entry, bool) {
	return d.entry("techs", id)
}

func (d *Dataset) entry(kind, id string) (Entry, bool) {
	r := d.data.Get("data." + kind + "." + gjson.Escape(id))
	if !r.Exists() {
		return Entry{}, false
	}
	return Entry{
		ID:             id,
		LanguageNameID: idString(r.Get("LanguageNameId")),
		LanguageHelpID: idString(r.Get("LanguageHelpId")),
	}, true
}

// idString renders a string or numeric id; null, false and 0 count as absent
func idString(r gjson.Result) string {
	switch r.Type {
	case gjson.String:
		return r.Str
	case gjson.Number:
		if r.Num == 0 {
			return ""
		}
		return r.Raw
	default:
		return ""
	}
}

func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read %s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
