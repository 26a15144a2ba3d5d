package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/restomenu/restomenu/internal/backend"
	"github.com/restomenu/restomenu/internal/domain"
	"go.uber.org/zap"
)

type Menus struct {
	client     *backend.Client
	categories *Categories
	products   *Products
	ads        *Ads
	cache      CacheInvalidator
	logger     *zap.SugaredLogger
}

func NewMenus(client *backend.Client, categories *Categories, products *Products, ads *Ads, cache CacheInvalidator, logger *zap.SugaredLogger) *Menus {
	return &Menus{
		client:     client,
		categories: categories,
		products:   products,
		ads:        ads,
		cache:      cache,
		logger:     logger,
	}
}

func (a *Menus) Get(ctx context.Context, menuID string) (*domain.Menu, error) {
	raw, err := a.client.Do(ctx, http.MethodGet, "/menus/"+menuID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch menu: %w", err)
	}

	var w menuWire
	if err := json.Unmarshal(backend.NormalizeObject(raw), &w); err != nil {
		return nil, fmt.Errorf("failed to decode menu: %w", err)
	}

	menu := w.toDomain()
	return &menu, nil
}

// FetchMenuData assembles the full public-menu payload. Menu metadata is
// required; category/item/ad fetches degrade independently so a partial
// backend outage still renders something.
func (a *Menus) FetchMenuData(ctx context.Context, menuID string) (*domain.MenuData, error) {
	menu, err := a.Get(ctx, menuID)
	if err != nil {
		return nil, err
	}

	data := &domain.MenuData{
		Menu:       *menu,
		Categories: a.categories.List(ctx, menuID),
		Items:      a.products.List(ctx, menuID),
	}

	// free-plan menus carry platform ads, pro menus their own
	if menu.OwnerPlanType == domain.PlanFree {
		data.Ads = a.ads.ListPublic(ctx, "", 0)
	} else {
		data.Ads = a.ads.ListForMenu(ctx, menuID)
	}

	return data, nil
}

type BrandingInput struct {
	Phone     string `json:"phone,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
	WhatsApp  string `json:"whatsapp,omitempty"`
	Website   string `json:"website,omitempty" validate:"omitempty,url"`
}

// UpdateBranding is the only menu mutation this service issues; everything
// else on the menu is backend-owned.
func (a *Menus) UpdateBranding(ctx context.Context, menuID string, in BrandingInput) error {
	body := map[string]any{
		"phone":     in.Phone,
		"instagram": in.Instagram,
		"facebook":  in.Facebook,
		"tiktok":    in.TikTok,
		"whatsapp":  in.WhatsApp,
		"website":   in.Website,
	}

	if _, err := a.client.Do(ctx, http.MethodPut, "/menus/"+menuID, body); err != nil {
		return fmt.Errorf("failed to update menu branding: %w", err)
	}

	if err := a.cache.Invalidate(ctx, menuID); err != nil {
		a.logger.Warnw("failed to invalidate menu cache", "menu_id", menuID, "error", err)
	}

	return nil
}
