package models

import (
	"strings"
	"time"
)

// Course is a catalog entry. Text fields are stored per locale; the Uzbek
// columns are the required defaults, Russian and English may be empty.
type Course struct {
	ID uint `gorm:"primaryKey"`

	TitleUz string `gorm:"not null"`
	TitleRu string
	TitleEn string

	DescriptionUz string `gorm:"type:text;not null"`
	DescriptionRu string `gorm:"type:text"`
	DescriptionEn string `gorm:"type:text"`

	DurationUz string
	DurationRu string
	DurationEn string

	PriceUz string
	PriceRu string
	PriceEn string

	StartDateUz string
	StartDateRu string
	StartDateEn string

	// Newline-separated bullet points, optional.
	FeaturesUz string `gorm:"type:text"`
	FeaturesRu string `gorm:"type:text"`
	FeaturesEn string `gorm:"type:text"`

	ImageURL string
	Color    string

	CategoryID uint     `gorm:"index"`
	Category   Category `gorm:"foreignKey:CategoryID"`

	Active bool `gorm:"default:true;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Title returns the localized title, falling back to Uzbek.
func (c *Course) Title(lang string) string {
	return pick(lang, c.TitleUz, c.TitleRu, c.TitleEn)
}

func (c *Course) Description(lang string) string {
	return pick(lang, c.DescriptionUz, c.DescriptionRu, c.DescriptionEn)
}

func (c *Course) Duration(lang string) string {
	return pick(lang, c.DurationUz, c.DurationRu, c.DurationEn)
}

func (c *Course) Price(lang string) string {
	return pick(lang, c.PriceUz, c.PriceRu, c.PriceEn)
}

func (c *Course) StartDate(lang string) string {
	return pick(lang, c.StartDateUz, c.StartDateRu, c.StartDateEn)
}

// FeatureList splits the localized feature block into lines, skipping blanks.
func (c *Course) FeatureList(lang string) []string {
	raw := pick(lang, c.FeaturesUz, c.FeaturesRu, c.FeaturesEn)
	if raw == "" {
		return nil
	}
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func pick(lang, uz, ru, en string) string {
	switch lang {
	case "ru":
		if ru != "" {
			return ru
		}
	case "en":
		if en != "" {
			return en
		}
	}
	return uz
}
