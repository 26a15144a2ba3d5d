package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalizedTextResolve(t *testing.T) {
	tests := []struct {
		name    string
		text    LocalizedText
		locale  string
		generic string
		want    string
	}{
		{
			name:    "locale value wins",
			text:    LocalizedText{AR: "برغر", EN: "Burger"},
			locale:  LocaleAR,
			generic: "Generic",
			want:    "برغر",
		},
		{
			name:    "generic fills a missing locale value",
			text:    LocalizedText{EN: "Burger"},
			locale:  LocaleAR,
			generic: "Generic",
			want:    "Generic",
		},
		{
			name:   "other locale is the last resort",
			text:   LocalizedText{EN: "Burger"},
			locale: LocaleAR,
			want:   "Burger",
		},
		{
			name:   "english only item under arabic locale is never blank",
			text:   LocalizedText{EN: "Club Sandwich"},
			locale: LocaleAR,
			want:   "Club Sandwich",
		},
		{
			name:   "arabic only item under english locale is never blank",
			text:   LocalizedText{AR: "كبسة"},
			locale: LocaleEN,
			want:   "كبسة",
		},
		{
			name:   "everything empty stays empty",
			text:   LocalizedText{},
			locale: LocaleEN,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.text.Resolve(tt.locale, tt.generic))
		})
	}
}

func TestDirection(t *testing.T) {
	assert.Equal(t, "rtl", Direction(LocaleAR))
	assert.Equal(t, "ltr", Direction(LocaleEN))
	assert.Equal(t, "ltr", Direction(""))
}

func TestNormalizeLocale(t *testing.T) {
	assert.Equal(t, LocaleAR, NormalizeLocale("ar"))
	assert.Equal(t, LocaleEN, NormalizeLocale("en"))
	assert.Equal(t, LocaleEN, NormalizeLocale("fr"))
	assert.Equal(t, LocaleEN, NormalizeLocale(""))
}
