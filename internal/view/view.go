// Package view derives the render model for a public menu page from the raw
// backend payload: items grouped by category, display strings resolved for
// the requested locale, prices formatted for the menu currency.
package view

import (
	"sort"

	"github.com/restomenu/restomenu/internal/domain"
)

type MenuView struct {
	Template  Template   `json:"template"`
	Locale    string     `json:"locale"`
	Direction string     `json:"direction"`
	Menu      MenuHeader `json:"menu"`
	Sections  []Section  `json:"sections"`
	Ads       AdSlot     `json:"ads"`
}

type MenuHeader struct {
	ID           string                `json:"id"`
	Slug         string                `json:"slug"`
	Name         string                `json:"name"`
	Description  string                `json:"description,omitempty"`
	LogoURL      string                `json:"logo_url,omitempty"`
	Theme        string                `json:"theme,omitempty"`
	Currency     string                `json:"currency"`
	Branding     domain.Branding       `json:"branding"`
	WorkingHours []domain.WorkingHours `json:"working_hours,omitempty"`
}

// Section is one category block. Placeholder is set for templates that show
// a "no items" section instead of hiding empty categories.
type Section struct {
	CategoryID  string `json:"category_id,omitempty"`
	Name        string `json:"name"`
	ImageURL    string `json:"image_url,omitempty"`
	Items       []Item `json:"items"`
	Placeholder bool   `json:"placeholder,omitempty"`
}

type Item struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	PriceLabel  string  `json:"price_label"`
	ImageURL    string  `json:"image_url,omitempty"`
}

// AdSlot tells the client which ad pool to rotate and how fast. Rotation,
// hover pause and the per-session closed flag stay client-side.
type AdSlot struct {
	Source           string   `json:"source"` // global | menu
	Ads              []AdView `json:"ads"`
	RotationInterval int      `json:"rotation_interval_ms"`
}

type AdView struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	LinkURL  string `json:"link_url,omitempty"`
	Position string `json:"position"`
}

// Build derives the full render model. It is a pure function of its inputs.
func Build(data domain.MenuData, tmpl Template, locale string) MenuView {
	locale = domain.NormalizeLocale(locale)
	pol := policies[Normalize(string(tmpl))]

	v := MenuView{
		Template:  Normalize(string(tmpl)),
		Locale:    locale,
		Direction: domain.Direction(locale),
		Menu: MenuHeader{
			ID:           data.Menu.ID,
			Slug:         data.Menu.Slug,
			Name:         data.Menu.NameI18n.Resolve(locale, data.Menu.Name),
			Description:  data.Menu.DescI18n.Resolve(locale, data.Menu.Description),
			LogoURL:      data.Menu.LogoURL,
			Theme:        data.Menu.Theme,
			Currency:     data.Menu.Currency,
			Branding:     data.Menu.Branding,
			WorkingHours: data.Menu.WorkingHours,
		},
		Sections: buildSections(data, pol, locale),
		Ads:      buildAdSlot(data, pol, locale),
	}

	return v
}

func buildSections(data domain.MenuData, pol policy, locale string) []Section {
	// single pass over items; uncategorized ones keep an empty key
	itemsByCategory := make(map[string][]domain.MenuItem, len(data.Categories))
	for _, item := range data.Items {
		if !item.Available {
			continue
		}
		itemsByCategory[item.CategoryID] = append(itemsByCategory[item.CategoryID], item)
	}

	categories := make([]domain.Category, 0, len(data.Categories))
	for _, c := range data.Categories {
		if c.IsActive {
			categories = append(categories, c)
		}
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].SortOrder < categories[j].SortOrder
	})

	sections := make([]Section, 0, len(categories)+1)
	for _, c := range categories {
		items := itemsByCategory[c.ID]
		if len(items) == 0 && pol.hideEmpty {
			continue
		}

		sections = append(sections, Section{
			CategoryID:  c.ID,
			Name:        c.NameI18n.Resolve(locale, c.Name),
			ImageURL:    c.ImageURL,
			Items:       buildItems(items, data.Menu.Currency, locale),
			Placeholder: len(items) == 0,
		})
	}

	if pol.keepUncategorized {
		if orphans := itemsByCategory[""]; len(orphans) > 0 {
			name := "Other"
			if locale == domain.LocaleAR {
				name = "أخرى"
			}
			sections = append(sections, Section{
				Name:  name,
				Items: buildItems(orphans, data.Menu.Currency, locale),
			})
		}
	}

	return sections
}

func buildItems(items []domain.MenuItem, currency, locale string) []Item {
	// items keep the backend-provided order inside a category
	out := make([]Item, 0, len(items))
	for _, it := range items {
		out = append(out, Item{
			ID:          it.ID,
			Name:        it.NameI18n.Resolve(locale, it.Name),
			Description: it.DescI18n.Resolve(locale, it.Description),
			Price:       it.Price,
			PriceLabel:  FormatPrice(it.Price, currency, locale),
			ImageURL:    it.ImageURL,
		})
	}
	return out
}

func buildAdSlot(data domain.MenuData, pol policy, locale string) AdSlot {
	source := domain.AdTypeMenu
	if data.Menu.OwnerPlanType == domain.PlanFree {
		source = domain.AdTypeGlobal
	}

	slot := AdSlot{
		Source:           source,
		Ads:              []AdView{},
		RotationInterval: int(pol.adRotation.Milliseconds()),
	}

	for _, ad := range data.Ads {
		if !ad.IsActive {
			continue
		}
		slot.Ads = append(slot.Ads, AdView{
			ID:       ad.ID,
			Title:    ad.TitleI18n.Resolve(locale, ad.Title),
			Content:  ad.ContentI18n.Resolve(locale, ad.Content),
			ImageURL: ad.ImageURL,
			LinkURL:  ad.LinkURL,
			Position: ad.Position,
		})
	}

	return slot
}
