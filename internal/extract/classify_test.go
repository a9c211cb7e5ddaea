package extract

import (
	"testing"

	"github.com/ppiankov/civcards/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestClassifier_Classify(t *testing.T) {
	c := NewClassifier(nil)

	tests := []struct {
		name string
		text string
		want model.Category
	}{
		{"empty", "", model.CategoryOther},
		{"whitespace", "   ", model.CategoryOther},
		{"unit name", "Копейщики стоят на 25% меньше", model.CategoryUnitSpecific},
		{"military word", "Кавалерия имеет +2 к атаке", model.CategoryMilitary},
		{"economic word", "Крестьяне собирают еду на 15% быстрее", model.CategoryEconomic},
		{"tech word", "Кузница и университет дают больше", model.CategoryTechSpecific},
		{"english resource", "+100 gold at start", model.CategoryEconomic},
		{"nothing", "Начинают с дополнительным разведчиком", model.CategoryOther},
		{"upper case", "РЫЦАРИ ПОЛУЧАЮТ БОНУС", model.CategoryUnitSpecific},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.text))
		})
	}
}

func TestClassifier_UnitBeatsMilitaryRegardlessOfPosition(t *testing.T) {
	c := NewClassifier(nil)

	assert.Equal(t, model.CategoryUnitSpecific, c.Classify("Рыцари получают +1 броня"))
	assert.Equal(t, model.CategoryUnitSpecific, c.Classify("броня +1 получают рыцари"))
}

func TestClassifier_MilitaryBeatsEconomic(t *testing.T) {
	c := NewClassifier(nil)

	// "дешевле" is economic, "корабли" is military
	assert.Equal(t, model.CategoryMilitary, c.Classify("Корабли на 10% дешевле"))
}

func TestClassifier_NormalizesDecomposedLetters(t *testing.T) {
	c := NewClassifier(nil)

	// "войска" written with a combining breve instead of a precomposed й
	assert.Equal(t, model.CategoryMilitary, c.Classify("Вои\u0306ска двигаются быстрее"))
}

func TestClassifier_AlwaysReturnsKnownCategory(t *testing.T) {
	c := NewClassifier(nil)
	inputs := []string{
		"", "•", "12345", "hp", "HP +10", "эпоха", "совершенно посторонний текст",
		"\n\n\t", "日本語", "Лучники и арбалетчики", "бесплатно",
	}

	for _, in := range inputs {
		got := c.Classify(in)
		assert.True(t, got.Valid(), "input %q gave %q", in, got)
	}
}

func TestClassifier_CustomRules(t *testing.T) {
	c := NewClassifier([]CategoryRule{
		{Category: model.CategoryEconomic, Keywords: []string{"Мельница"}},
		{Category: model.CategoryMilitary, Keywords: []string{"мельница", ""}},
	})

	assert.Equal(t, model.CategoryEconomic, c.Classify("мельница бесплатна"))
	assert.Equal(t, model.CategoryOther, c.Classify("рыцари"))
}

func TestClassifier_EmptyRulesFallBack(t *testing.T) {
	c := NewClassifier([]CategoryRule{})

	assert.Equal(t, model.CategoryOther, c.Classify("рыцари"))
}
