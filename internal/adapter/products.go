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

type Products struct {
	client *backend.Client
	cache  CacheInvalidator
	logger *zap.SugaredLogger
}

func NewProducts(client *backend.Client, cache CacheInvalidator, logger *zap.SugaredLogger) *Products {
	return &Products{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

type ProductInput struct {
	CategoryID    string  `json:"category_id" validate:"required"`
	NameEn        string  `json:"name_en" validate:"required_without=NameAr"`
	NameAr        string  `json:"name_ar" validate:"required_without=NameEn"`
	DescriptionEn string  `json:"description_en,omitempty"`
	DescriptionAr string  `json:"description_ar,omitempty"`
	Price         float64 `json:"price" validate:"gte=0"`
	ImageURL      string  `json:"image_url,omitempty" validate:"omitempty,url"`
	SortOrder     int     `json:"sort_order"`
	Available     *bool   `json:"available,omitempty"`
}

func (in ProductInput) toWire() map[string]any {
	body := map[string]any{
		"categoryId":    in.CategoryID,
		"name":          firstNonEmpty(in.NameEn, in.NameAr),
		"nameEn":        in.NameEn,
		"nameAr":        in.NameAr,
		"descriptionEn": in.DescriptionEn,
		"descriptionAr": in.DescriptionAr,
		"price":         in.Price,
		"sortOrder":     in.SortOrder,
		"available":     boolOr(in.Available, true),
	}
	if in.ImageURL != "" {
		body["imageUrl"] = in.ImageURL
	}
	return body
}

// List fetches all items of a menu, degrading to empty on failure.
func (a *Products) List(ctx context.Context, menuID string) []domain.MenuItem {
	raw, err := a.client.Do(ctx, http.MethodGet, "/menus/"+menuID+"/items", nil)
	if err != nil {
		a.logger.Errorw("failed to fetch menu items", "menu_id", menuID, "error", err)
		return []domain.MenuItem{}
	}

	var wires []itemWire
	if err := backend.DecodeList(raw, &wires, "items", "products"); err != nil {
		a.logger.Errorw("failed to decode menu items", "menu_id", menuID, "error", err)
		return []domain.MenuItem{}
	}

	out := make([]domain.MenuItem, 0, len(wires))
	for _, w := range wires {
		out = append(out, w.toDomain())
	}

	return out
}

func (a *Products) Get(ctx context.Context, menuID, itemID string) (*domain.MenuItem, error) {
	raw, err := a.client.Do(ctx, http.MethodGet, "/menus/"+menuID+"/items/"+itemID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch item: %w", err)
	}

	var w itemWire
	if err := json.Unmarshal(backend.NormalizeObject(raw), &w); err != nil {
		return nil, fmt.Errorf("failed to decode item: %w", err)
	}

	item := w.toDomain()
	return &item, nil
}

func (a *Products) Create(ctx context.Context, menuID string, in ProductInput) (*domain.MenuItem, error) {
	raw, err := a.client.Do(ctx, http.MethodPost, "/menus/"+menuID+"/items", in.toWire())
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	var w itemWire
	if err := json.Unmarshal(backend.NormalizeObject(raw), &w); err != nil {
		return nil, fmt.Errorf("failed to decode created item: %w", err)
	}

	a.invalidate(ctx, menuID)

	item := w.toDomain()
	return &item, nil
}

func (a *Products) Update(ctx context.Context, menuID, itemID string, in ProductInput) (*domain.MenuItem, error) {
	raw, err := a.client.Do(ctx, http.MethodPut, "/menus/"+menuID+"/items/"+itemID, in.toWire())
	if err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	var w itemWire
	if err := json.Unmarshal(backend.NormalizeObject(raw), &w); err != nil {
		return nil, fmt.Errorf("failed to decode updated item: %w", err)
	}

	a.invalidate(ctx, menuID)

	item := w.toDomain()
	return &item, nil
}

func (a *Products) Delete(ctx context.Context, menuID, itemID string) error {
	if _, err := a.client.Do(ctx, http.MethodDelete, "/menus/"+menuID+"/items/"+itemID, nil); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	a.invalidate(ctx, menuID)

	return nil
}

// SetAvailability toggles an item without going through a full update.
// Last write wins on overlapping toggles; there is no sequencing token.
func (a *Products) SetAvailability(ctx context.Context, menuID, itemID string, available bool) error {
	body := map[string]any{
		"itemId":    itemID,
		"available": available,
	}
	if _, err := a.client.Do(ctx, http.MethodPatch, "/menus/"+menuID+"/status", body); err != nil {
		return fmt.Errorf("failed to update item availability: %w", err)
	}

	a.invalidate(ctx, menuID)

	return nil
}

func (a *Products) invalidate(ctx context.Context, menuID string) {
	if err := a.cache.Invalidate(ctx, menuID); err != nil {
		a.logger.Warnw("failed to invalidate menu cache", "menu_id", menuID, "error", err)
	}
}
