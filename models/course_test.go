package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourseLocaleFallback(t *testing.T) {
	course := Course{
		TitleUz: "Arab tili",
		TitleRu: "Арабский язык",
	}

	assert.Equal(t, "Arab tili", course.Title("uz"))
	assert.Equal(t, "Арабский язык", course.Title("ru"))
	// No English translation stored: Uzbek is the fallback.
	assert.Equal(t, "Arab tili", course.Title("en"))
	assert.Equal(t, "Arab tili", course.Title("de"))
}

func TestFeatureList(t *testing.T) {
	course := Course{
		FeaturesUz: "Noldan boshlab\n\n  Grammatika  \n",
		FeaturesEn: "From scratch\nGrammar",
	}

	assert.Equal(t, []string{"Noldan boshlab", "Grammatika"}, course.FeatureList("uz"))
	assert.Equal(t, []string{"From scratch", "Grammar"}, course.FeatureList("en"))

	empty := Course{}
	assert.Nil(t, empty.FeatureList("uz"))
}
