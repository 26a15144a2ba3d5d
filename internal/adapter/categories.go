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

type Categories struct {
	client *backend.Client
	cache  CacheInvalidator
	logger *zap.SugaredLogger
}

func NewCategories(client *backend.Client, cache CacheInvalidator, logger *zap.SugaredLogger) *Categories {
	return &Categories{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

type CategoryInput struct {
	NameEn    string `json:"name_en" validate:"required_without=NameAr"`
	NameAr    string `json:"name_ar" validate:"required_without=NameEn"`
	ImageURL  string `json:"image_url,omitempty" validate:"omitempty,url"`
	SortOrder int    `json:"sort_order"`
	IsActive  *bool  `json:"is_active,omitempty"`
}

func (in CategoryInput) toWire() map[string]any {
	body := map[string]any{
		"name":      firstNonEmpty(in.NameEn, in.NameAr),
		"nameEn":    in.NameEn,
		"nameAr":    in.NameAr,
		"sortOrder": in.SortOrder,
		"isActive":  boolOr(in.IsActive, true),
	}
	// undefined, not empty string, when no image was uploaded
	if in.ImageURL != "" {
		body["imageUrl"] = in.ImageURL
	}
	return body
}

// List fetches all categories of a menu. A failed fetch degrades to an empty
// list so the page renders "no items" instead of crashing.
func (a *Categories) List(ctx context.Context, menuID string) []domain.Category {
	raw, err := a.client.Do(ctx, http.MethodGet, "/menus/"+menuID+"/categories", nil)
	if err != nil {
		a.logger.Errorw("failed to fetch categories", "menu_id", menuID, "error", err)
		return []domain.Category{}
	}

	var wires []categoryWire
	if err := backend.DecodeList(raw, &wires, "categories", "items"); err != nil {
		a.logger.Errorw("failed to decode categories", "menu_id", menuID, "error", err)
		return []domain.Category{}
	}

	out := make([]domain.Category, 0, len(wires))
	for _, w := range wires {
		out = append(out, w.toDomain())
	}

	return out
}

func (a *Categories) Get(ctx context.Context, menuID, categoryID string) (*domain.Category, error) {
	raw, err := a.client.Do(ctx, http.MethodGet, "/menus/"+menuID+"/categories/"+categoryID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch category: %w", err)
	}

	var w categoryWire
	if err := json.Unmarshal(backend.NormalizeObject(raw), &w); err != nil {
		return nil, fmt.Errorf("failed to decode category: %w", err)
	}

	cat := w.toDomain()
	return &cat, nil
}

func (a *Categories) Create(ctx context.Context, menuID string, in CategoryInput) (*domain.Category, error) {
	raw, err := a.client.Do(ctx, http.MethodPost, "/menus/"+menuID+"/categories", in.toWire())
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	var w categoryWire
	if err := json.Unmarshal(backend.NormalizeObject(raw), &w); err != nil {
		return nil, fmt.Errorf("failed to decode created category: %w", err)
	}

	a.invalidate(ctx, menuID)

	cat := w.toDomain()
	return &cat, nil
}

func (a *Categories) Update(ctx context.Context, menuID, categoryID string, in CategoryInput) (*domain.Category, error) {
	raw, err := a.client.Do(ctx, http.MethodPut, "/menus/"+menuID+"/categories/"+categoryID, in.toWire())
	if err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	var w categoryWire
	if err := json.Unmarshal(backend.NormalizeObject(raw), &w); err != nil {
		return nil, fmt.Errorf("failed to decode updated category: %w", err)
	}

	a.invalidate(ctx, menuID)

	cat := w.toDomain()
	return &cat, nil
}

func (a *Categories) Delete(ctx context.Context, menuID, categoryID string) error {
	if _, err := a.client.Do(ctx, http.MethodDelete, "/menus/"+menuID+"/categories/"+categoryID, nil); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	a.invalidate(ctx, menuID)

	return nil
}

func (a *Categories) invalidate(ctx context.Context, menuID string) {
	if err := a.cache.Invalidate(ctx, menuID); err != nil {
		a.logger.Warnw("failed to invalidate menu cache", "menu_id", menuID, "error", err)
	}
}
