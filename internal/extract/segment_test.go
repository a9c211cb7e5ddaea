package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmenter_StopsAtTeamBonus(t *testing.T) {
	s := NewSegmenter(nil, "", HeaderMatchPrefix)

	desc, bonuses := s.Segment("Основной текст\n• Бонус 1\n• Бонус 2\nКомандный бонус:\nИгнорируется")

	assert.Equal(t, "Основной текст", desc)
	assert.Equal(t, []string{"Бонус 1", "Бонус 2"}, bonuses)
}

func TestSegmenter_StopsAtTeamBonus_Exact(t *testing.T) {
	s := NewSegmenter(nil, "", HeaderMatchExact)

	desc, bonuses := s.Segment("Основной текст\n• Бонус 1\n• Бонус 2\nКомандный бонус:\nИгнорируется")

	assert.Equal(t, "Основной текст", desc)
	assert.Equal(t, []string{"Бонус 1", "Бонус 2"}, bonuses)
}

func TestSegmenter_CollapsesBlankLines(t *testing.T) {
	s := NewSegmenter(nil, "", HeaderMatchPrefix)

	desc, bonuses := s.Segment("Первый абзац\n\n\n\n   \nВторой абзац\n• Бонус")

	assert.Equal(t, "Первый абзац\n\nВторой абзац", desc)
	assert.Equal(t, []string{"Бонус"}, bonuses)
	assert.NotContains(t, desc, "\n\n\n")
}

func TestSegmenter_KeepsInnerIndentation(t *testing.T) {
	s := NewSegmenter(nil, "", HeaderMatchPrefix)

	desc, _ := s.Segment("  Пехотная цивилизация\n  вторая строка  \n")

	assert.Equal(t, "Пехотная цивилизация\n  вторая строка", desc)
}

func TestSegmenter_HeaderEndsDescriptionWithoutBullets(t *testing.T) {
	s := NewSegmenter(nil, "", HeaderMatchExact)

	desc, bonuses := s.Segment("Описание\nКласс:\n• не бонус")

	assert.Equal(t, "Описание", desc)
	assert.Empty(t, bonuses)
}

func TestSegmenter_MatchModes(t *testing.T) {
	text := "Описание\n• Бонус 1\nУникальный юнит: Катафракт\n• Бонус 2"

	tests := []struct {
		name  string
		match HeaderMatch
		want  []string
	}{
		{"prefix stops on labelled line", HeaderMatchPrefix, []string{"Бонус 1"}},
		{"exact ignores labelled line", HeaderMatchExact, []string{"Бонус 1", "Бонус 2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, bonuses := NewSegmenter(nil, "", tt.match).Segment(text)
			assert.Equal(t, tt.want, bonuses)
		})
	}
}

func TestSegmenter_BulletWinsOverHeader(t *testing.T) {
	s := NewSegmenter([]string{"• Особый"}, "", HeaderMatchPrefix)

	desc, bonuses := s.Segment("Описание\n• Особый бонус\n• Ещё один")

	assert.Equal(t, "Описание", desc)
	assert.Equal(t, []string{"Особый бонус", "Ещё один"}, bonuses)
}

func TestSegmenter_DropsEmptyBullets(t *testing.T) {
	s := NewSegmenter(nil, "", HeaderMatchPrefix)

	_, bonuses := s.Segment("•\n   •   Бонус с отступом  \n• \n\nпродолжение без маркера\n• Последний")

	assert.Equal(t, []string{"Бонус с отступом", "Последний"}, bonuses)
}

func TestSegmenter_CustomBullet(t *testing.T) {
	s := NewSegmenter(nil, "-", HeaderMatchPrefix)

	desc, bonuses := s.Segment("Описание\n- раз\n- два")

	assert.Equal(t, "Описание", desc)
	assert.Equal(t, []string{"раз", "два"}, bonuses)
}

func TestSegmenter_EmptyInput(t *testing.T) {
	s := NewSegmenter(nil, "", HeaderMatchPrefix)

	desc, bonuses := s.Segment("")

	assert.Equal(t, "", desc)
	assert.Empty(t, bonuses)
}

func TestSegmenter_NoBulletsIsAllDescription(t *testing.T) {
	s := NewSegmenter(nil, "", HeaderMatchPrefix)
	text := "Строка один\nСтрока два"

	desc, bonuses := s.Segment(text)

	assert.Equal(t, text, desc)
	assert.Empty(t, bonuses)
}

func TestSegmenter_RealisticHelpText(t *testing.T) {
	s := NewSegmenter(nil, "", HeaderMatchPrefix)
	text := strings.Join([]string{
		"Кавалерийская и морская цивилизация",
		"",
		"• Рыцари имеют +20% к здоровью",
		"• Постройки корабля на 10% дешевле",
		"",
		"Уникальный юнит: Катафракт",
		"",
		"Уникальные технологии: Греческий огонь, Логистика",
		"",
		"Командный бонус:",
		"Монахи лечат на 50% быстрее",
	}, "\n")

	desc, bonuses := s.Segment(text)

	assert.Equal(t, "Кавалерийская и морская цивилизация", desc)
	assert.Equal(t, []string{"Рыцари имеют +20% к здоровью", "Постройки корабля на 10% дешевле"}, bonuses)
}

func TestParseHeaderMatch(t *testing.T) {
	assert.Equal(t, HeaderMatchExact, ParseHeaderMatch("exact"))
	assert.Equal(t, HeaderMatchExact, ParseHeaderMatch(" EXACT "))
	assert.Equal(t, HeaderMatchPrefix, ParseHeaderMatch("prefix"))
	assert.Equal(t, HeaderMatchPrefix, ParseHeaderMatch(""))
	assert.Equal(t, "exact", HeaderMatchExact.String())
	assert.Equal(t, "prefix", HeaderMatchPrefix.String())
}
