package view

import (
	"testing"

	"github.com/restomenu/restomenu/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMenuData() domain.MenuData {
	return domain.MenuData{
		Menu: domain.Menu{
			ID:            "m1",
			Slug:          "burger-house",
			Name:          "Burger House",
			Currency:      "SAR",
			IsActive:      true,
			OwnerPlanType: domain.PlanPro,
		},
		Categories: []domain.Category{
			{ID: "cat5", Name: "Burgers", SortOrder: 1, IsActive: true},
			{ID: "cat9", Name: "Drinks", SortOrder: 2, IsActive: true},
		},
		Items: []domain.MenuItem{
			{ID: "1", CategoryID: "cat5", Name: "Classic", Price: 25, Available: true},
			{ID: "2", CategoryID: "cat5", Name: "Double", Price: 35, Available: true},
			{ID: "3", CategoryID: "", Name: "Water", Price: 2, Available: true},
		},
	}
}

func TestBuildGroupsItemsByCategory(t *testing.T) {
	v := Build(testMenuData(), TemplateDefault, "en")

	// default: empty Drinks hidden, orphan kept under Other
	require.Len(t, v.Sections, 2)

	assert.Equal(t, "cat5", v.Sections[0].CategoryID)
	require.Len(t, v.Sections[0].Items, 2)
	assert.Equal(t, "1", v.Sections[0].Items[0].ID)
	assert.Equal(t, "2", v.Sections[0].Items[1].ID)

	assert.Equal(t, "Other", v.Sections[1].Name)
	assert.Empty(t, v.Sections[1].CategoryID)
	require.Len(t, v.Sections[1].Items, 1)
	assert.Equal(t, "3", v.Sections[1].Items[0].ID)
}

func TestBuildNeonDropsOrphansKeepsEmpty(t *testing.T) {
	v := Build(testMenuData(), TemplateNeon, "en")

	// neon: empty Drinks shown as placeholder, orphan dropped
	require.Len(t, v.Sections, 2)
	assert.Equal(t, "cat5", v.Sections[0].CategoryID)
	assert.Equal(t, "cat9", v.Sections[1].CategoryID)
	assert.True(t, v.Sections[1].Placeholder)
	assert.Empty(t, v.Sections[1].Items)
}

func TestBuildCoffeeDropsBothEmptyAndOrphans(t *testing.T) {
	v := Build(testMenuData(), TemplateCoffee, "en")

	require.Len(t, v.Sections, 1)
	assert.Equal(t, "cat5", v.Sections[0].CategoryID)
}

func TestBuildSkyKeepsBoth(t *testing.T) {
	v := Build(testMenuData(), TemplateSky, "en")

	require.Len(t, v.Sections, 3)
	assert.Equal(t, "cat9", v.Sections[1].CategoryID)
	assert.True(t, v.Sections[1].Placeholder)
	assert.Equal(t, "Other", v.Sections[2].Name)
}

func TestBuildSortsCategoriesBySortOrder(t *testing.T) {
	data := testMenuData()
	data.Categories = []domain.Category{
		{ID: "b", Name: "Second", SortOrder: 2, IsActive: true},
		{ID: "a", Name: "First", SortOrder: 1, IsActive: true},
	}
	data.Items = []domain.MenuItem{
		{ID: "1", CategoryID: "a", Available: true},
		{ID: "2", CategoryID: "b", Available: true},
	}

	v := Build(data, TemplateDefault, "en")

	require.Len(t, v.Sections, 2)
	assert.Equal(t, "a", v.Sections[0].CategoryID)
	assert.Equal(t, "b", v.Sections[1].CategoryID)
}

func TestBuildSkipsUnavailableItemsAndInactiveCategories(t *testing.T) {
	data := testMenuData()
	data.Categories = append(data.Categories, domain.Category{
		ID: "hidden", Name: "Hidden", SortOrder: 0, IsActive: false,
	})
	data.Items = append(data.Items, domain.MenuItem{
		ID: "4", CategoryID: "cat5", Name: "Sold Out", Available: false,
	})

	v := Build(data, TemplateDefault, "en")

	for _, s := range v.Sections {
		assert.NotEqual(t, "hidden", s.CategoryID)
		for _, it := range s.Items {
			assert.NotEqual(t, "4", it.ID)
		}
	}
}

func TestBuildArabicLocaleFallsBackToEnglish(t *testing.T) {
	data := testMenuData()
	data.Items = []domain.MenuItem{
		// only an English name; the Arabic page must still label it
		{ID: "1", CategoryID: "cat5", NameI18n: domain.LocalizedText{EN: "Club Sandwich"}, Price: 18, Available: true},
	}

	v := Build(data, TemplateDefault, "ar")

	assert.Equal(t, "ar", v.Locale)
	assert.Equal(t, "rtl", v.Direction)
	require.NotEmpty(t, v.Sections)
	require.NotEmpty(t, v.Sections[0].Items)
	assert.Equal(t, "Club Sandwich", v.Sections[0].Items[0].Name)
}

func TestBuildArabicUncategorizedName(t *testing.T) {
	v := Build(testMenuData(), TemplateDefault, "ar")

	require.Len(t, v.Sections, 2)
	assert.Equal(t, "أخرى", v.Sections[1].Name)
}

func TestBuildPriceLabels(t *testing.T) {
	v := Build(testMenuData(), TemplateDefault, "en")
	require.NotEmpty(t, v.Sections[0].Items)
	assert.Equal(t, "25 SAR", v.Sections[0].Items[0].PriceLabel)

	vAr := Build(testMenuData(), TemplateDefault, "ar")
	assert.Equal(t, "25 ر.س", vAr.Sections[0].Items[0].PriceLabel)
}

func TestBuildAdSlot(t *testing.T) {
	data := testMenuData()
	data.Ads = []domain.Ad{
		{ID: "ad1", Title: "Promo", Position: "top", IsActive: true},
		{ID: "ad2", Title: "Stale", Position: "top", IsActive: false},
	}

	v := Build(data, TemplateDefault, "en")

	assert.Equal(t, domain.AdTypeMenu, v.Ads.Source)
	assert.Equal(t, 5000, v.Ads.RotationInterval)
	require.Len(t, v.Ads.Ads, 1)
	assert.Equal(t, "ad1", v.Ads.Ads[0].ID)
}

func TestBuildAdSlotFreePlanUsesGlobalSource(t *testing.T) {
	data := testMenuData()
	data.Menu.OwnerPlanType = domain.PlanFree

	v := Build(data, TemplateNeon, "en")

	assert.Equal(t, domain.AdTypeGlobal, v.Ads.Source)
	assert.Equal(t, 6000, v.Ads.RotationInterval)
}

func TestNormalizeTemplate(t *testing.T) {
	assert.Equal(t, TemplateNeon, Normalize("neon"))
	assert.Equal(t, TemplateSky, Normalize("sky"))
	assert.Equal(t, TemplateDefault, Normalize(""))
	assert.Equal(t, TemplateDefault, Normalize("no-such-skin"))
}

func TestCurrencySymbol(t *testing.T) {
	assert.Equal(t, "$", CurrencySymbol("usd", "en"))
	assert.Equal(t, "SAR", CurrencySymbol("SAR", "en"))
	assert.Equal(t, "ر.س", CurrencySymbol("SAR", "ar"))
	assert.Equal(t, "XYZ", CurrencySymbol("XYZ", "en"))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "25 SAR", FormatPrice(25, "SAR", "en"))
	assert.Equal(t, "25.5 SAR", FormatPrice(25.5, "SAR", "en"))
	assert.Equal(t, "2.75 $", FormatPrice(2.75, "USD", "en"))
}
