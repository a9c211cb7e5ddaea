package extract

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// IconKeyword maps a term found in bonus text to an icon path relative to the
// icon root
type IconKeyword struct {
	Keyword string
	Icon    string
}

// IconTable looks up icons by the longest keyword contained in a text.
// It is immutable once built and safe for concurrent use.
type IconTable struct {
	entries []IconKeyword // normalized, longest keyword first
	values  map[string]struct{}
}

// NewIconTable builds a table from one or more ordered keyword lists. Lists
// are concatenated in argument order. A repeated keyword replaces the icon of
// the earlier entry but keeps that entry's position.
func NewIconTable(lists ...[]IconKeyword) *IconTable {
	var (
		ordered []IconKeyword
		index   = make(map[string]int)
	)

	for _, list := range lists {
		for _, e := range list {
			kw := normalize(strings.TrimSpace(e.Keyword))
			if kw == "" || e.Icon == "" {
				continue
			}
			if i, ok := index[kw]; ok {
				ordered[i].Icon = e.Icon
				continue
			}
			index[kw] = len(ordered)
			ordered = append(ordered, IconKeyword{Keyword: kw, Icon: e.Icon})
		}
	}

	// Stable: equal lengths keep insertion order
	sort.SliceStable(ordered, func(i, j int) bool {
		return utf8.RuneCountInString(ordered[i].Keyword) > utf8.RuneCountInString(ordered[j].Keyword)
	})

	values := make(map[string]struct{}, len(ordered))
	for _, e := range ordered {
		values[e.Icon] = struct{}{}
	}

	return &IconTable{entries: ordered, values: values}
}

// FindIcon returns the icon of the longest keyword contained in text
func (t *IconTable) FindIcon(text string) (string, bool) {
	lower := normalize(text)
	if lower == "" {
		return "", false
	}

	for _, e := range t.entries {
		if strings.Contains(lower, e.Keyword) {
			return e.Icon, true
		}
	}

	return "", false
}

// Len returns the number of distinct keywords
func (t *IconTable) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the table in lookup order
func (t *IconTable) Entries() []IconKeyword {
	out := make([]IconKeyword, len(t.entries))
	copy(out, t.entries)
	return out
}

// HasIcon reports whether icon is one of the table's values
func (t *IconTable) HasIcon(icon string) bool {
	_, ok := t.values[icon]
	return ok
}

// Icons returns the distinct icon values in lookup order
func (t *IconTable) Icons() []string {
	seen := make(map[string]bool, len(t.values))
	out := make([]string, 0, len(t.values))
	for _, e := range t.entries {
		if !seen[e.Icon] {
			seen[e.Icon] = true
			out = append(out, e.Icon)
		}
	}
	return out
}
