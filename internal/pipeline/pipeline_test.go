package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ppiankov/civcards/internal/dataset"
	"github.com/ppiankov/civcards/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureData = `{
  "civ_names": {"Byzantines": "10279", "Britons": "10271", "Hindustanis": "10300"},
  "civ_helptexts": {"Byzantines": "120157"},
  "techtrees": {
    "Byzantines": {
      "type": "Defensive",
      "unique": {"castleAgeUniqueUnit": 40, "castleAgeUniqueTech": 464, "imperialAgeUniqueTech": 61},
      "team_bonus": "120300"
    },
    "Britons": {
      "bonuses": ["3001", "3002"],
      "unique": {"castleAgeUniqueUnit": 8}
    },
    "Hindustanis": {}
  },
  "data": {
    "units": {"40": {"LanguageNameId": 5062}, "8": {"LanguageNameId": 5083}},
    "techs": {
      "464": {"LanguageNameId": 7257, "LanguageHelpId": 28257},
      "61": {"LanguageNameId": 7061, "LanguageHelpId": 28061}
    }
  }
}`

const fixtureStrings = `{
  "10279": "Византийцы",
  "10271": "Британцы",
  "120157": "Оборонительная цивилизация<br>\n<br>\n• Кавалерия имеет +2 к атаке<br>\n• Монахи лечат быстрее<br>\n<br>\n<b>Уникальный юнит:</b> Катафракт",
  "120300": "• Монахи лечат быстрее",
  "3001": "Лучники <b>дальше</b> стреляют",
  "5062": "Катафракт",
  "7257": "Греческий огонь",
  "28257": "Изучить Греческий огонь (‹cost›)<br>\n<br>\nБрандеры получают +1 к дальности.",
  "7061": "Логистика",
  "28061": "Катафракты наносят урон по площади."
}`

func writeFixture(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func newFixtureExtractor(t *testing.T) (*Extractor, string) {
	t.Helper()

	repo := t.TempDir()
	writeFixture(t, repo, "data/data.json", fixtureData)
	writeFixture(t, repo, "data/locales/ru/strings.json", fixtureStrings)
	for _, icon := range []string{
		"Units/40.png", "Units/8.png", "Buildings/101.png", "Techs/3001.png",
		"Techs/unique_tech_1.png", "Techs/unique_tech_2.png", "Civs/byzantines.png", "Civs/indians.png",
	} {
		writeFixture(t, repo, "img/"+icon, "png:"+icon)
	}

	ds, err := dataset.Open(repo, "ru")
	require.NoError(t, err)

	iconsDir := filepath.Join(t.TempDir(), "icons")
	return NewExtractor(ds, nil, Options{RepoDir: repo, IconsDir: iconsDir}), iconsDir
}

func TestExtractor_Extract(t *testing.T) {
	e, iconsDir := newFixtureExtractor(t)

	rec, err := e.Extract(context.Background(), "Byzantines")
	require.NoError(t, err)

	assert.Equal(t, "Byzantines", rec.ID)
	assert.Equal(t, "Византийцы", rec.Name)
	assert.Equal(t, "Оборонительная цивилизация", rec.Description)
	assert.Equal(t, "Defensive", rec.Type)

	require.Len(t, rec.Bonuses, 2)
	assert.Equal(t, "Кавалерия имеет +2 к атаке", rec.Bonuses[0].Text)
	assert.Equal(t, model.CategoryMilitary, rec.Bonuses[0].Classification)
	assert.Equal(t, "Buildings/101.png", rec.Bonuses[0].IconPath())
	assert.Equal(t, "Монахи лечат быстрее", rec.Bonuses[1].Text)
	assert.Nil(t, rec.Bonuses[1].Icon, "icon missing from the checkout stays absent")

	require.Len(t, rec.UniqueUnits, 1)
	assert.Equal(t, "Катафракт", rec.UniqueUnits[0].Name)
	assert.Equal(t, "Units/40.png", *rec.UniqueUnits[0].Icon)

	require.Len(t, rec.UniqueTechs, 2)
	assert.Equal(t, "Греческий огонь", rec.UniqueTechs[0].Name)
	assert.Equal(t, "castle", rec.UniqueTechs[0].Age)
	assert.Equal(t, "Брандеры получают +1 к дальности.", rec.UniqueTechs[0].Description)
	assert.Contains(t, rec.UniqueTechs[0].RawDescription, "Изучить Греческий огонь")
	assert.Equal(t, "Techs/unique_tech_1.png", *rec.UniqueTechs[0].Icon)
	assert.Equal(t, "imperial", rec.UniqueTechs[1].Age)
	assert.Equal(t, "Techs/unique_tech_2.png", *rec.UniqueTechs[1].Icon)

	require.Len(t, rec.TeamBonus, 1)
	assert.Equal(t, "Монахи лечат быстрее", rec.TeamBonus[0].Text)
	assert.Equal(t, model.CategoryOther, rec.TeamBonus[0].Classification)

	require.NotNil(t, rec.Icon)
	assert.Equal(t, "Civs/byzantines.png", *rec.Icon)

	copied, err := os.ReadFile(filepath.Join(iconsDir, "Units", "40.png"))
	require.NoError(t, err)
	assert.Equal(t, "png:Units/40.png", string(copied))
}

func TestExtractor_DatasetBonusFallback(t *testing.T) {
	e, _ := newFixtureExtractor(t)

	rec, err := e.Extract(context.Background(), "Britons")
	require.NoError(t, err)

	assert.Equal(t, "", rec.Description)
	require.Len(t, rec.Bonuses, 2)

	assert.Equal(t, "3001", rec.Bonuses[0].ID)
	assert.Equal(t, "Лучники дальше стреляют", rec.Bonuses[0].Text)
	assert.Equal(t, "Techs/3001.png", rec.Bonuses[0].IconPath())

	assert.Equal(t, "3002", rec.Bonuses[1].ID)
	assert.Equal(t, "3002", rec.Bonuses[1].Text)
	assert.Nil(t, rec.Bonuses[1].Icon)

	require.Len(t, rec.UniqueUnits, 1)
	assert.Equal(t, "Unit_8", rec.UniqueUnits[0].Name)
	assert.Empty(t, rec.TeamBonus)
	assert.Nil(t, rec.Icon)
}

func TestExtractor_HeraldryAlternateSlug(t *testing.T) {
	e, _ := newFixtureExtractor(t)

	rec, err := e.Extract(context.Background(), "Hindustanis")
	require.NoError(t, err)

	assert.Equal(t, "Hindustanis", rec.Name, "missing name falls back to the id")
	require.NotNil(t, rec.Icon)
	assert.Equal(t, "Civs/indians.png", *rec.Icon)
	assert.Empty(t, rec.Bonuses)
	assert.Empty(t, rec.UniqueUnits)
	assert.Empty(t, rec.UniqueTechs)
}

func TestExtractor_UnknownCivilization(t *testing.T) {
	e, _ := newFixtureExtractor(t)

	_, err := e.Extract(context.Background(), "Atlanteans")
	assert.True(t, errors.Is(err, dataset.ErrNotFound))
}

func TestExtractor_ExtractAllKeepsOrder(t *testing.T) {
	e, _ := newFixtureExtractor(t)

	results := e.ExtractAll(context.Background(), nil, 3)

	require.Len(t, results, 3)
	for i, id := range []string{"Byzantines", "Britons", "Hindustanis"} {
		require.NoError(t, results[i].Err)
		assert.Equal(t, id, results[i].Value.ID)
	}

	results = e.ExtractAll(context.Background(), []string{"Britons", "Atlanteans"}, 2)
	require.Len(t, results, 2)
	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)
}

func TestHeraldrySlugs(t *testing.T) {
	assert.Equal(t, []string{"byzantines"}, heraldrySlugs("Byzantines"))
	assert.Equal(t, []string{"hindustanis", "indians"}, heraldrySlugs("Hindustanis"))
	assert.Equal(t, []string{"maceaux", "mac-eaux"}, heraldrySlugs("Mac-Eaux"))
}

func TestWriteAndLoadRecords(t *testing.T) {
	e, _ := newFixtureExtractor(t)
	dataDir := filepath.Join(t.TempDir(), "data")

	var records []*model.CivilizationRecord
	for _, res := range e.ExtractAll(context.Background(), nil, 2) {
		require.NoError(t, res.Err)
		_, err := WriteRecord(dataDir, res.Value)
		require.NoError(t, err)
		records = append(records, res.Value)
	}
	allPath, err := WriteAll(dataDir, records)
	require.NoError(t, err)

	loaded, err := LoadRecords(dataDir)
	require.NoError(t, err)
	assert.Len(t, loaded, 3, "combined file is not a record")

	byz, err := LoadRecord(dataDir, "Византийцы")
	require.NoError(t, err)
	assert.Equal(t, records[0], byz)

	_, err = LoadRecord(dataDir, "Атланты")
	assert.True(t, errors.Is(err, ErrRecordNotFound))

	raw, err := os.ReadFile(allPath)
	require.NoError(t, err)
	var all map[string]model.CivilizationRecord
	require.NoError(t, json.Unmarshal(raw, &all))
	assert.Contains(t, all, "Британцы")
	assert.Contains(t, string(raw), "\n  \"Византийцы\": {", "two-space indent in dataset order")
	assert.Less(t, strings.Index(string(raw), "Византийцы"), strings.Index(string(raw), "Британцы"))
	assert.NotContains(t, string(raw), `<`)
}

func TestLoadRecords_MissingDir(t *testing.T) {
	_, err := LoadRecords(filepath.Join(t.TempDir(), "nope"))
	assert.True(t, errors.Is(err, ErrRecordNotFound))
}

func TestNewBonusBuilder_ConfigKeywords(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Icons.Keywords = []model.IconKeywordConfig{{Keyword: "монах", Icon: "Units/775.png"}}

	rec := NewBonusBuilder(cfg).Record("Монахи лечат быстрее")
	assert.Equal(t, "Units/775.png", rec.IconPath())
}
