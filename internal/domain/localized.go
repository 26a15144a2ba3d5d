package domain

const (
	LocaleAR = "ar"
	LocaleEN = "en"
)

// LocalizedText is the canonical bilingual value for every display string.
// The backend serves two competing shapes (flat nameAr/nameEn and nested
// translations.ar/en); adapters fold both into this type so nothing past
// the adapter boundary branches on shape.
type LocalizedText struct {
	AR string `json:"ar,omitempty" bson:"ar,omitempty"`
	EN string `json:"en,omitempty" bson:"en,omitempty"`
}

func (t LocalizedText) IsZero() bool {
	return t.AR == "" && t.EN == ""
}

// Resolve returns the display string for a locale. Fallback order: the
// locale-specific value, the generic value, the other locale, empty string.
// A string must never come back empty while any of the three is set.
func (t LocalizedText) Resolve(locale, generic string) string {
	primary, secondary := t.EN, t.AR
	if locale == LocaleAR {
		primary, secondary = t.AR, t.EN
	}

	if primary != "" {
		return primary
	}
	if generic != "" {
		return generic
	}

	return secondary
}

// Direction returns the text direction for a locale.
func Direction(locale string) string {
	if locale == LocaleAR {
		return "rtl"
	}
	return "ltr"
}

// NormalizeLocale clamps arbitrary input to a supported locale.
func NormalizeLocale(locale string) string {
	if locale == LocaleAR {
		return LocaleAR
	}
	return LocaleEN
}
