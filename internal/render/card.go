package render

import (
	"image"
	"image/color"
	"path/filepath"

	"github.com/ppiankov/civcards/internal/extract"
	"github.com/ppiankov/civcards/internal/model"
)

// Section titles as printed on the card
const (
	SectionBonuses     = "Бонусы:"
	SectionUniqueUnits = "Уникальные юниты:"
	SectionUniqueTechs = "Уникальные технологии:"
	SectionTeamBonus   = "Командный бонус:"

	untitled = "Без названия"

	// Content is laid out on a canvas this tall and cropped afterwards
	maxCanvasHeight = 4000
)

type cardItem struct {
	name string
	desc string
	icon string
}

type cardSection struct {
	title    string
	items    []cardItem
	iconSize int
	style    model.TextStyle
	boldName bool
}

// sections lists the card sections of rec in print order, empty ones included
func (r *Renderer) sections(rec *model.CivilizationRecord) []cardSection {
	icons := r.cfg.Icons
	text := r.cfg.Text

	bonusItems := func(records []model.BonusRecord) []cardItem {
		items := make([]cardItem, 0, len(records))
		for _, b := range records {
			items = append(items, cardItem{name: b.Text, icon: b.IconPath()})
		}
		return items
	}

	units := make([]cardItem, 0, len(rec.UniqueUnits))
	for _, u := range rec.UniqueUnits {
		units = append(units, cardItem{name: u.Name, icon: deref(u.Icon)})
	}

	techs := make([]cardItem, 0, len(rec.UniqueTechs))
	for _, t := range rec.UniqueTechs {
		techs = append(techs, cardItem{name: t.Name, desc: t.Description, icon: deref(t.Icon)})
	}

	return []cardSection{
		{title: SectionBonuses, items: bonusItems(rec.Bonuses), iconSize: icons.BonusIconSize, style: text.Bonus},
		{title: SectionUniqueUnits, items: units, iconSize: icons.UnitIconSize, style: text.Bonus},
		{title: SectionUniqueTechs, items: techs, iconSize: icons.TechIconSize, style: text.Bonus, boldName: true},
		{title: SectionTeamBonus, items: bonusItems(rec.TeamBonus), iconSize: 0, style: text.TeamBonus},
	}
}

// layout tracks the pen position while content is drawn
type layout struct {
	canvas  *image.NRGBA
	width   int
	fixed   int // fixed card height, 0 when the card fits its content
	padding int
	compact float64
	y       int
	maxY    int
}

// overflows reports whether content ending at bottom would cross the bottom
// padding of a fixed-height card
func (l *layout) overflows(bottom int) bool {
	return l.fixed > 0 && bottom > l.fixed-l.padding
}

func (l *layout) scaled(v int) int {
	return int(float64(v) * l.compact)
}

func (l *layout) track(y int) {
	if y > l.maxY {
		l.maxY = y
	}
}

// drawContent lays out the card content on a transparent canvas and returns
// it with the height the card needs
func (r *Renderer) drawContent(rec *model.CivilizationRecord, fs *faces) (*image.NRGBA, int, error) {
	cfg := r.cfg
	canvasH := maxCanvasHeight
	if cfg.Image.Height > 0 {
		canvasH = cfg.Image.Height
	}

	l := &layout{
		canvas:  image.NewNRGBA(image.Rect(0, 0, cfg.Image.Width, canvasH)),
		width:   cfg.Image.Width,
		fixed:   cfg.Image.Height,
		padding: cfg.Layout.Padding,
		compact: cfg.Layout.TextCompactness,
	}
	l.y, l.maxY = l.padding, l.padding

	titleFace, err := fs.get(r.fonts.Title, cfg.Text.Title.FontSize)
	if err != nil {
		return nil, 0, err
	}

	// Title
	title := extract.StripCostPlaceholder(rec.Name)
	if title == "" {
		title = untitled
	}
	titleTop := l.y
	titleH := textHeight(titleFace)
	if !l.overflows(l.y + titleH) {
		drawText(l.canvas, titleFace, r.color(cfg.Text.Title.Color), (l.width-textWidth(titleFace, title))/2, l.y, title)
		l.y += int(float64(titleH) * cfg.Text.Title.LineHeight * l.compact)
	}
	l.track(l.y)

	// Civilization icon
	l.y = r.drawCivIcon(l, rec, titleTop, titleH)
	l.track(l.y)

	// Description
	if desc := extract.StripCostPlaceholder(rec.Description); desc != "" {
		style := cfg.Text.Description
		face, err := fs.get(r.fonts.Normal, style.FontSize)
		if err != nil {
			return nil, 0, err
		}
		lineH := int(float64(style.FontSize) * style.LineHeight)
		if !l.overflows(l.y + lineH) {
			l.y = drawWrapped(l.canvas, face, r.color(style.Color), desc, l.padding, l.y, l.width-2*l.padding, lineH, l.compact)
			l.y += l.scaled(cfg.Layout.SectionSpacing)
		}
	}
	l.track(l.y)

	// Sections
	sections := r.sections(rec)
	sectionFace, err := fs.get(r.fonts.SectionTitle, cfg.Text.SectionTitle.FontSize)
	if err != nil {
		return nil, 0, err
	}

	for i, sec := range sections {
		if len(sec.items) == 0 {
			continue
		}

		secH := textHeight(sectionFace)
		if l.overflows(l.y + secH) {
			break
		}
		drawText(l.canvas, sectionFace, r.color(cfg.Text.SectionTitle.Color), l.padding, l.y, sec.title)
		l.y += secH + l.scaled(cfg.Layout.ItemSpacing)
		l.track(l.y)

		if err := r.drawItems(l, sec, fs); err != nil {
			return nil, 0, err
		}
		if l.overflows(l.y) {
			break
		}

		l.y = l.maxY
		if laterContent(sections[i+1:]) {
			l.y += l.scaled(cfg.Layout.SectionSpacing)
			l.track(l.y)
		}
	}

	height := cfg.Image.Height
	if height <= 0 {
		height = l.maxY + l.padding
		if l.maxY > l.padding {
			height -= l.scaled(cfg.Layout.ItemSpacing)
		}
		height = max(height, 2*l.padding+50)
		height = min(height, canvasH)
	}

	return l.canvas, height, nil
}

func (r *Renderer) drawItems(l *layout, sec cardSection, fs *faces) error {
	cfg := r.cfg
	style := sec.style
	itemColor := r.color(style.Color)
	itemLineH := int(float64(style.FontSize) * style.LineHeight)

	descStyle := cfg.Text.Description
	descLineH := int(float64(descStyle.FontSize) * descStyle.LineHeight)
	descFace, err := fs.get(r.fonts.Normal, descStyle.FontSize)
	if err != nil {
		return err
	}

	for _, item := range sec.items {
		name := extract.StripCostPlaceholder(item.name)
		desc := extract.StripCostPlaceholder(item.desc)
		if desc != "" && sec.boldName {
			desc = "(" + desc + ")"
		}

		start := l.y
		textX := l.padding
		iconH := 0

		if item.icon != "" && sec.iconSize > 0 && !l.overflows(start+sec.iconSize) {
			if icon := r.icon(item.icon, sec.iconSize); icon != nil {
				paste(l.canvas, icon, l.padding, start)
				textX = l.padding + sec.iconSize + cfg.Icons.IconTextSpacing
				iconH = sec.iconSize
			}
		}

		nameFont := r.fonts.Normal
		if sec.boldName && name != "" {
			nameFont = r.fonts.Bold
		}
		nameFace, err := fs.get(nameFont, style.FontSize)
		if err != nil {
			return err
		}

		textW := l.width - textX - l.padding
		afterName := start
		if name != "" {
			if !l.overflows(start + itemLineH) {
				afterName = drawWrapped(l.canvas, nameFace, itemColor, name, textX, start, textW, itemLineH, l.compact)
			} else {
				desc = ""
			}
		}

		afterDesc := afterName
		if desc != "" {
			descY := start
			if name != "" {
				descY = afterName + l.scaled(3)
			}
			if !l.overflows(descY + descLineH) {
				afterDesc = drawWrapped(l.canvas, descFace, itemColor, desc, textX, descY, textW, descLineH, l.compact)
			}
		}

		l.y = start + max(iconH, afterDesc-start) + l.scaled(cfg.Layout.ItemSpacing)
		l.track(l.y)
		if l.overflows(l.y) {
			break
		}
	}
	return nil
}

// drawCivIcon places the heraldry next to or below the title and returns the
// y where the description starts
func (r *Renderer) drawCivIcon(l *layout, rec *model.CivilizationRecord, titleTop, titleH int) int {
	next := l.y
	ref := deref(rec.Icon)
	size := r.cfg.Icons.CivIconSize
	if ref == "" || size <= 0 {
		return next
	}

	icon := r.icon(ref, size)
	if icon == nil {
		return next
	}

	beside := max(l.padding, titleTop+(titleH-size)/2)
	var x, y int
	switch r.cfg.Layout.CivIconPosition {
	case "top-left":
		x, y = l.padding, beside
	case "top-center":
		x, y = (l.width-size)/2, l.y
		next = l.y + size + l.scaled(r.cfg.Layout.SectionSpacing)
	default:
		x, y = l.width-l.padding-size, beside
	}

	if !l.overflows(y + size) {
		paste(l.canvas, icon, x, y)
		l.track(y + size)
	}
	return next
}

// icon loads an icon from the icons dir scaled to size, nil when unavailable
func (r *Renderer) icon(ref string, size int) image.Image {
	path := filepath.Join(r.iconsDir, filepath.FromSlash(ref))
	img, err := loadImage(r.assets, path, r.cfg.Cache.TTL)
	if err != nil {
		r.warnf("icon %s: %v", ref, err)
		return nil
	}
	return scale(img, size, size)
}

// color parses a configured colour, falling back to black
func (r *Renderer) color(s string) color.NRGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		return color.NRGBA{A: 255}
	}
	return c
}

func laterContent(sections []cardSection) bool {
	for _, s := range sections {
		if len(s.items) > 0 {
			return true
		}
	}
	return false
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
