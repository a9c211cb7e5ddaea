package extract

import (
	"testing"

	"github.com/ppiankov/civcards/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBonusBuilder_Split(t *testing.T) {
	b := NewBonusBuilder(nil, nil, nil)

	desc, bonuses := b.Split("Крестьяне собирают еду на 15% быстрее.\n• Кавалерия имеет +2 к атаке")

	assert.Equal(t, "Крестьяне собирают еду на 15% быстрее.", desc)
	require.Len(t, bonuses, 1)
	assert.Equal(t, "Кавалерия имеет +2 к атаке", bonuses[0].Text)
	assert.Equal(t, model.CategoryMilitary, bonuses[0].Classification)
	require.NotNil(t, bonuses[0].Icon)
	assert.Equal(t, "Buildings/101.png", *bonuses[0].Icon)
}

func TestBonusBuilder_Deterministic(t *testing.T) {
	b := NewBonusBuilder(nil, nil, nil)
	text := "Описание\n• Рыцари +1 броня\n• Крестьяне работают быстрее\n• Что-то ещё\nКомандный бонус:\nМонахи"

	desc1, first := b.Split(text)
	desc2, second := b.Split(text)

	assert.Equal(t, desc1, desc2)
	assert.Equal(t, first, second)
	require.Len(t, first, 3)
	assert.Equal(t, model.CategoryUnitSpecific, first[0].Classification)
	assert.Equal(t, model.CategoryEconomic, first[1].Classification)
	assert.Equal(t, model.CategoryOther, first[2].Classification)
}

func TestBonusBuilder_RecordWithoutIcon(t *testing.T) {
	table := NewIconTable([]IconKeyword{{"рыцар", "Units/38.png"}})
	b := NewBonusBuilder(nil, nil, table)

	rec := b.Record("Монахи лечат быстрее")

	assert.Nil(t, rec.Icon)
	assert.Equal(t, "", rec.IconPath())
	assert.Equal(t, model.CategoryOther, rec.Classification)
}

func TestBonusBuilder_EmptyInput(t *testing.T) {
	b := NewBonusBuilder(nil, nil, nil)

	desc, bonuses := b.Split("")

	assert.Equal(t, "", desc)
	assert.Empty(t, bonuses)
	assert.Empty(t, b.Records(nil))
}

func TestBonusBuilder_UsesInjectedParts(t *testing.T) {
	seg := NewSegmenter([]string{"Стоп:"}, "*", HeaderMatchExact)
	cls := NewClassifier([]CategoryRule{{Category: model.CategoryTechSpecific, Keywords: []string{"тест"}}})
	icons := NewIconTable([]IconKeyword{{"тест", "Techs/1.png"}})
	b := NewBonusBuilder(seg, cls, icons)

	desc, bonuses := b.Split("Шапка\n* тестовый бонус\nСтоп:\n* пропущен")

	assert.Equal(t, "Шапка", desc)
	require.Len(t, bonuses, 1)
	assert.Equal(t, model.CategoryTechSpecific, bonuses[0].Classification)
	assert.Equal(t, "Techs/1.png", bonuses[0].IconPath())
	assert.Same(t, icons, b.Icons())
}
