package extract

import (
	"strings"

	"github.com/ppiankov/civcards/internal/model"
	"golang.org/x/text/unicode/norm"
)

// CategoryRule pairs a category with the keywords that select it
type CategoryRule struct {
	Category model.Category
	Keywords []string
}

// DefaultRules returns the bonus classification rules in priority order.
// Unit names come first so that they are not swallowed by generic military
// words.
func DefaultRules() []CategoryRule {
	return []CategoryRule{
		{
			Category: model.CategoryUnitSpecific,
			Keywords: []string{
				"копейщики", "мечники", "арбалетчики", "рыцари", "верблюды", "слоны", "требушеты", "скауты",
			},
		},
		{
			Category: model.CategoryMilitary,
			Keywords: []string{
				"атака", "урон", "скорость атаки", "броня", "защита", "здоровье", "hp", "жизни",
				"скорость передвижения", "дальность", "юниты", "войска", "армия", "пехота", "лучники",
				"конница", "кавалерия", "осадные", "корабли", "флот",
			},
		},
		{
			Category: model.CategoryEconomic,
			Keywords: []string{
				"скорость сбора", "работают", "экономика", "ресурсы", "food", "wood", "gold", "stone",
				"золото", "дерево", "еда", "камень", "крестьяне", "фермеры", "лесорубы", "шахтеры",
				"рыбаки", "торговля", "рынок", "дешевле", "стоимость", "бесплатно",
			},
		},
		{
			Category: model.CategoryTechSpecific,
			Keywords: []string{
				"технологии", "улучшения", "исследования", "кузница", "университет", "монастырь", "эпоха",
			},
		},
	}
}

// Classifier assigns one category to a bonus text
type Classifier struct {
	rules []CategoryRule
}

// NewClassifier creates a classifier over the given rules. The rules are
// copied and normalized; nil selects DefaultRules.
func NewClassifier(rules []CategoryRule) *Classifier {
	if rules == nil {
		rules = DefaultRules()
	}

	copied := make([]CategoryRule, 0, len(rules))
	for _, rule := range rules {
		keywords := make([]string, 0, len(rule.Keywords))
		for _, kw := range rule.Keywords {
			if kw = normalize(kw); kw != "" {
				keywords = append(keywords, kw)
			}
		}
		copied = append(copied, CategoryRule{Category: rule.Category, Keywords: keywords})
	}

	return &Classifier{rules: copied}
}

// Classify returns the category of the first rule with a keyword contained in
// text, or CategoryOther
func (c *Classifier) Classify(text string) model.Category {
	lower := normalize(text)
	if lower == "" {
		return model.CategoryOther
	}

	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Category
			}
		}
	}

	return model.CategoryOther
}

// normalize puts text into NFC form and lowercases it so that composed and
// decomposed Cyrillic letters compare equal
func normalize(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}
