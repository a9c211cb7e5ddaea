package extract

import (
	"regexp"
	"strings"
)

// HeaderMatch selects how a line is compared against section headers
type HeaderMatch int

const (
	// HeaderMatchPrefix treats a line as a header when it starts with one
	HeaderMatchPrefix HeaderMatch = iota
	// HeaderMatchExact treats a line as a header only on full equality
	HeaderMatchExact
)

// ParseHeaderMatch maps a config value to a HeaderMatch. Unknown values fall
// back to prefix matching.
func ParseHeaderMatch(s string) HeaderMatch {
	if strings.EqualFold(strings.TrimSpace(s), "exact") {
		return HeaderMatchExact
	}
	return HeaderMatchPrefix
}

func (m HeaderMatch) String() string {
	if m == HeaderMatchExact {
		return "exact"
	}
	return "prefix"
}

// DefaultBullet marks a bonus line in civilization help text
const DefaultBullet = "•"

// DefaultHeaders are the section labels that end the description and bonus
// list in Russian civilization help text
var DefaultHeaders = []string{
	"Уникальный юнит:",
	"Уникальные юниты:",
	"Уникальные технологии:",
	"Командный бонус:",
	"Класс:",
	"Особенности цивилизации:",
}

var (
	manyBlankLines  = regexp.MustCompile(`\n(\s*\n){2,}`)
	spacedBlankLine = regexp.MustCompile(`\n[ \t\r\f\v]+\n`)
)

// Segmenter splits help text into a main description and bullet-marked bonus
// lines. It holds no mutable state and is safe for concurrent use.
type Segmenter struct {
	headers []string
	bullet  string
	match   HeaderMatch
}

// NewSegmenter creates a segmenter. Empty headers or bullet select the
// defaults.
func NewSegmenter(headers []string, bullet string, match HeaderMatch) *Segmenter {
	if len(headers) == 0 {
		headers = DefaultHeaders
	}
	if bullet == "" {
		bullet = DefaultBullet
	}

	h := make([]string, 0, len(headers))
	for _, header := range headers {
		if header = strings.TrimSpace(header); header != "" {
			h = append(h, header)
		}
	}

	return &Segmenter{
		headers: h,
		bullet:  bullet,
		match:   match,
	}
}

// Segment returns the description and the bonus lines in source order
func (s *Segmenter) Segment(text string) (string, []string) {
	var (
		desc            []string
		bonuses         []string
		parsingMainDesc = true
	)

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		isBullet := strings.HasPrefix(trimmed, s.bullet)

		if parsingMainDesc {
			if !isBullet && !s.isHeader(trimmed) {
				if trimmed == "" {
					if len(desc) > 0 && desc[len(desc)-1] == "" {
						continue
					}
					desc = append(desc, "")
					continue
				}
				desc = append(desc, line)
				continue
			}
			parsingMainDesc = false
		}

		if isBullet {
			if bonus := strings.TrimSpace(strings.TrimPrefix(trimmed, s.bullet)); bonus != "" {
				bonuses = append(bonuses, bonus)
			}
			continue
		}
		if s.isHeader(trimmed) {
			break
		}
	}

	return tidyDescription(strings.Join(desc, "\n")), bonuses
}

// isHeader compares a trimmed line against the section headers
func (s *Segmenter) isHeader(trimmed string) bool {
	if trimmed == "" {
		return false
	}
	for _, header := range s.headers {
		switch s.match {
		case HeaderMatchExact:
			if trimmed == header {
				return true
			}
		default:
			if strings.HasPrefix(trimmed, header) {
				return true
			}
		}
	}
	return false
}

// tidyDescription collapses runs of blank lines and trims the result
func tidyDescription(s string) string {
	s = manyBlankLines.ReplaceAllString(s, "\n\n")
	s = spacedBlankLine.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
