package view

import "time"

// Template selects one of the public menu skins. Each skin fixes its own
// policy for empty categories, uncategorized items, and ad rotation speed.
type Template string

const (
	TemplateDefault Template = "default"
	TemplateNeon    Template = "neon"
	TemplateCoffee  Template = "coffee"
	TemplateSky     Template = "sky"
)

type policy struct {
	hideEmpty         bool
	keepUncategorized bool
	adRotation        time.Duration
}

var policies = map[Template]policy{
	TemplateDefault: {hideEmpty: true, keepUncategorized: true, adRotation: 5 * time.Second},
	TemplateNeon:    {hideEmpty: false, keepUncategorized: false, adRotation: 6 * time.Second},
	TemplateCoffee:  {hideEmpty: true, keepUncategorized: false, adRotation: 5 * time.Second},
	TemplateSky:     {hideEmpty: false, keepUncategorized: true, adRotation: 6 * time.Second},
}

// Normalize clamps arbitrary input to a known template.
func Normalize(t string) Template {
	switch Template(t) {
	case TemplateNeon:
		return TemplateNeon
	case TemplateCoffee:
		return TemplateCoffee
	case TemplateSky:
		return TemplateSky
	default:
		return TemplateDefault
	}
}
