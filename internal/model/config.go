package model

import (
	"path/filepath"
	"runtime"
	"time"
)

// Config holds the complete civcards configuration.
// Field tags serve both viper (mapstructure) and `config show` (yaml).
type Config struct {
	Source      SourceConfig      `yaml:"source" mapstructure:"source"`
	Paths       PathsConfig       `yaml:"paths" mapstructure:"paths"`
	Segment     SegmentConfig     `yaml:"segment" mapstructure:"segment"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
	Image       ImageConfig       `yaml:"image" mapstructure:"image"`
	Layout      LayoutConfig      `yaml:"layout" mapstructure:"layout"`
	Icons       IconsConfig       `yaml:"icons" mapstructure:"icons"`
	Text        TextConfig        `yaml:"text" mapstructure:"text"`
	FontPaths   FontPathsConfig   `yaml:"font_paths" mapstructure:"font_paths"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Verbose     bool              `yaml:"verbose" mapstructure:"verbose"`
}

// SourceConfig points at a local aoe2techtree checkout
type SourceConfig struct {
	RepoDir string `yaml:"repo_dir" mapstructure:"repo_dir"`
	Locale  string `yaml:"locale" mapstructure:"locale"`
}

// PathsConfig controls where extracted data and icons are written.
// DataDir and IconsDir are resolved against BaseDir when relative.
type PathsConfig struct {
	BaseDir  string `yaml:"base_dir" mapstructure:"base_dir"`
	DataDir  string `yaml:"data_dir" mapstructure:"data_dir"`
	IconsDir string `yaml:"icons_dir" mapstructure:"icons_dir"`
}

// SegmentConfig tunes how help text is split into description and bonuses
type SegmentConfig struct {
	HeaderMatch string   `yaml:"header_match" mapstructure:"header_match"` // exact, prefix
	Headers     []string `yaml:"headers" mapstructure:"headers"`
	Bullet      string   `yaml:"bullet" mapstructure:"bullet"`
}

// OutputConfig controls the rendered image files
type OutputConfig struct {
	Format     string `yaml:"format" mapstructure:"format"`           // png, jpg, jpeg
	OutputPath string `yaml:"output_path" mapstructure:"output_path"` // {civ_name} and {format} are substituted
	JPGQuality int    `yaml:"jpg_quality" mapstructure:"jpg_quality"`
}

// BorderConfig draws an outline around the card
type BorderConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Width   int    `yaml:"width" mapstructure:"width"`
	Radius  int    `yaml:"radius" mapstructure:"radius"`
	Color   string `yaml:"color" mapstructure:"color"`
}

// ImageConfig controls canvas size and background
type ImageConfig struct {
	Width                 int          `yaml:"width" mapstructure:"width"`
	Height                int          `yaml:"height" mapstructure:"height"` // 0 = fit content
	BackgroundColor       string       `yaml:"background_color" mapstructure:"background_color"`
	BackgroundOpacity     float64      `yaml:"background_opacity" mapstructure:"background_opacity"`
	BackgroundImage       string       `yaml:"background_image" mapstructure:"background_image"`
	UseHeraldryBackground bool         `yaml:"use_heraldry_background" mapstructure:"use_heraldry_background"`
	HeraldryOpacity       float64      `yaml:"heraldry_opacity" mapstructure:"heraldry_opacity"`
	Border                BorderConfig `yaml:"border" mapstructure:"border"`
}

// LayoutConfig controls spacing
type LayoutConfig struct {
	Padding         int     `yaml:"padding" mapstructure:"padding"`
	SectionSpacing  int     `yaml:"section_spacing" mapstructure:"section_spacing"`
	ItemSpacing     int     `yaml:"item_spacing" mapstructure:"item_spacing"`
	TextCompactness float64 `yaml:"text_compactness" mapstructure:"text_compactness"`
	CivIconPosition string  `yaml:"civ_icon_position" mapstructure:"civ_icon_position"` // top-left, top-right, top-center
}

// IconKeywordConfig extends the built-in keyword icon table
type IconKeywordConfig struct {
	Keyword string `yaml:"keyword" mapstructure:"keyword"`
	Icon    string `yaml:"icon" mapstructure:"icon"`
}

// IconsConfig controls icon sizes and keyword table extensions
type IconsConfig struct {
	IconTextSpacing int                 `yaml:"icon_text_spacing" mapstructure:"icon_text_spacing"`
	CivIconSize     int                 `yaml:"civ_icon_size" mapstructure:"civ_icon_size"`
	BonusIconSize   int                 `yaml:"bonus_icon_size" mapstructure:"bonus_icon_size"`
	UnitIconSize    int                 `yaml:"unit_icon_size" mapstructure:"unit_icon_size"`
	TechIconSize    int                 `yaml:"tech_icon_size" mapstructure:"tech_icon_size"`
	Keywords        []IconKeywordConfig `yaml:"keywords,omitempty" mapstructure:"keywords"`
}

// TextStyle is a font size, colour and line height multiplier
type TextStyle struct {
	FontSize   int     `yaml:"font_size" mapstructure:"font_size"`
	Color      string  `yaml:"color" mapstructure:"color"`
	LineHeight float64 `yaml:"line_height" mapstructure:"line_height"`
}

// TextConfig groups the text styles used on a card
type TextConfig struct {
	Title        TextStyle `yaml:"title" mapstructure:"title"`
	SectionTitle TextStyle `yaml:"section_title" mapstructure:"section_title"`
	Description  TextStyle `yaml:"description" mapstructure:"description"`
	Bonus        TextStyle `yaml:"bonus" mapstructure:"bonus"`
	TeamBonus    TextStyle `yaml:"team_bonus" mapstructure:"team_bonus"`
}

// FontPathsConfig lists font files; empty or missing paths fall back to the
// built-in Go fonts
type FontPathsConfig struct {
	Title        string `yaml:"title" mapstructure:"title"`
	SectionTitle string `yaml:"section_title" mapstructure:"section_title"`
	Normal       string `yaml:"normal" mapstructure:"normal"`
	Bold         string `yaml:"bold" mapstructure:"bold"`
}

// ConcurrencyConfig controls the worker pool
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// CacheConfig controls the in-memory asset cache
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			RepoDir: "aoe2techtree",
			Locale:  "ru",
		},
		Paths: PathsConfig{
			BaseDir:  ".",
			DataDir:  "data",
			IconsDir: "icons",
		},
		Segment: SegmentConfig{
			HeaderMatch: "prefix",
			Headers: []string{
				"Уникальный юнит:",
				"Уникальные юниты:",
				"Уникальные технологии:",
				"Командный бонус:",
				"Класс:",
				"Особенности цивилизации:",
			},
			Bullet: "•",
		},
		Output: OutputConfig{
			Format:     "png",
			OutputPath: "ru/{civ_name}/{civ_name}.{format}",
			JPGQuality: 90,
		},
		Image: ImageConfig{
			Width:             400,
			Height:            0,
			BackgroundColor:   "#FFFFFF",
			BackgroundOpacity: 1.0,
			HeraldryOpacity:   0.2,
			Border: BorderConfig{
				Width: 2,
				Color: "#000000",
			},
		},
		Layout: LayoutConfig{
			Padding:         15,
			SectionSpacing:  10,
			ItemSpacing:     5,
			TextCompactness: 0.9,
			CivIconPosition: "top-right",
		},
		Icons: IconsConfig{
			IconTextSpacing: 8,
			CivIconSize:     50,
			BonusIconSize:   20,
			UnitIconSize:    28,
			TechIconSize:    28,
		},
		Text: TextConfig{
			Title:        TextStyle{FontSize: 32, Color: "#000000", LineHeight: 1.2},
			SectionTitle: TextStyle{FontSize: 18, Color: "#000000", LineHeight: 1.2},
			Description:  TextStyle{FontSize: 16, Color: "#000000", LineHeight: 1.2},
			Bonus:        TextStyle{FontSize: 14, Color: "#000000", LineHeight: 1.2},
			TeamBonus:    TextStyle{FontSize: 14, Color: "#000000", LineHeight: 1.2},
		},
		Concurrency: ConcurrencyConfig{
			Workers: runtime.NumCPU(),
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     30 * time.Minute,
		},
	}
}

// Resolve joins a relative path onto BaseDir; absolute and empty paths are
// returned unchanged
func (c *Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || c.Paths.BaseDir == "" {
		return path
	}
	return filepath.Join(c.Paths.BaseDir, path)
}
