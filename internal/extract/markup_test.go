package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanMarkup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "Пехотная цивилизация", "Пехотная цивилизация"},
		{"br forms", "a<br>b<BR />c<br/>d", "a\nb\nc\nd"},
		{"bold label", "<b>Уникальный юнит:</b> Катафракт", "Уникальный юнит: Катафракт"},
		{"entities", "Рыцари &amp; паладины", "Рыцари & паладины"},
		{"script dropped", "до<script>alert(1)</script>после", "допосле"},
		{"keeps blank lines", "a<br>\n<br>b", "a\n\n\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanMarkup(tt.in))
		})
	}
}

func TestCleanMarkup_FeedsSegmenter(t *testing.T) {
	raw := "Кавалерийская цивилизация<br>\n<br>\n• Рыцари <i>+20%</i> к здоровью<br>\n<br>\n<b>Уникальный юнит:</b> Катафракт"

	desc, bonuses := NewSegmenter(nil, "", HeaderMatchPrefix).Segment(CleanMarkup(raw))

	assert.Equal(t, "Кавалерийская цивилизация", desc)
	assert.Equal(t, []string{"Рыцари +20% к здоровью"}, bonuses)
}

func TestStripCostPlaceholder(t *testing.T) {
	assert.Equal(t, "Рыцарь", StripCostPlaceholder("Рыцарь (‹cost›)"))
	assert.Equal(t, "Лучник", StripCostPlaceholder("Лучник ( <COST> )"))
	assert.Equal(t, "Без цены", StripCostPlaceholder("  Без цены  "))
	assert.Equal(t, "", StripCostPlaceholder(""))
}

func TestStripResearchLine(t *testing.T) {
	in := "Изучить Греческий огонь (‹cost›)\n\n\nБрандеры получают +1 к дальности."
	assert.Equal(t, "Брандеры получают +1 к дальности.", StripResearchLine(in))

	plain := "Брандеры получают +1 к дальности."
	assert.Equal(t, plain, StripResearchLine(plain))

	notFirst := "Описание\nИзучить Логистику (‹cost›)"
	assert.Equal(t, notFirst, StripResearchLine(notFirst))

	assert.Equal(t, "", StripResearchLine(""))
}
