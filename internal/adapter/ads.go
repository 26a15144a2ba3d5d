package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/restomenu/restomenu/internal/backend"
	"github.com/restomenu/restomenu/internal/domain"
	"go.uber.org/zap"
)

type Ads struct {
	client *backend.Client
	logger *zap.SugaredLogger
}

func NewAds(client *backend.Client, logger *zap.SugaredLogger) *Ads {
	return &Ads{
		client: client,
		logger: logger,
	}
}

type AdInput struct {
	Title     string `json:"title" validate:"required_without=TitleAr"`
	TitleAr   string `json:"title_ar" validate:"required_without=Title"`
	Content   string `json:"content,omitempty"`
	ContentAr string `json:"content_ar,omitempty"`
	ImageURL  string `json:"image_url,omitempty" validate:"omitempty,url"`
	LinkURL   string `json:"link_url,omitempty" validate:"omitempty,url"`
	Position  string `json:"position" validate:"required,oneof=top middle bottom banner"`
	AdType    string `json:"ad_type" validate:"required,oneof=global menu"`
	MenuID    string `json:"menu_id,omitempty" validate:"required_if=AdType menu"`
	IsActive  *bool  `json:"is_active,omitempty"`
}

func (in AdInput) toWire() map[string]any {
	body := map[string]any{
		"title":     in.Title,
		"titleAr":   in.TitleAr,
		"content":   in.Content,
		"contentAr": in.ContentAr,
		"position":  in.Position,
		"adType":    in.AdType,
		"isActive":  boolOr(in.IsActive, true),
	}
	if in.ImageURL != "" {
		body["imageUrl"] = in.ImageURL
	}
	if in.LinkURL != "" {
		body["linkUrl"] = in.LinkURL
	}
	if in.MenuID != "" {
		body["menuId"] = in.MenuID
	}
	return body
}

// ListAdmin returns the platform-wide ad inventory, empty on failure.
func (a *Ads) ListAdmin(ctx context.Context) []domain.Ad {
	return a.list(ctx, "/admin/ads")
}

// ListForMenu returns the ads a menu owns (pro-plan menus).
func (a *Ads) ListForMenu(ctx context.Context, menuID string) []domain.Ad {
	return a.list(ctx, "/menus/"+menuID+"/ads")
}

// ListPublic returns active global ads for a placement slot (free-plan menus).
func (a *Ads) ListPublic(ctx context.Context, position string, limit int) []domain.Ad {
	q := url.Values{}
	if position != "" {
		q.Set("position", position)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	path := "/public/ads"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	return a.list(ctx, path)
}

func (a *Ads) list(ctx context.Context, path string) []domain.Ad {
	raw, err := a.client.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		a.logger.Errorw("failed to fetch ads", "path", path, "error", err)
		return []domain.Ad{}
	}

	var wires []adWire
	if err := backend.DecodeList(raw, &wires, "ads", "items"); err != nil {
		a.logger.Errorw("failed to decode ads", "path", path, "error", err)
		return []domain.Ad{}
	}

	out := make([]domain.Ad, 0, len(wires))
	for _, w := range wires {
		out = append(out, w.toDomain())
	}

	return out
}

func (a *Ads) Create(ctx context.Context, in AdInput) (*domain.Ad, error) {
	raw, err := a.client.Do(ctx, http.MethodPost, "/admin/ads", in.toWire())
	if err != nil {
		return nil, fmt.Errorf("failed to create ad: %w", err)
	}

	var w adWire
	if err := json.Unmarshal(backend.NormalizeObject(raw), &w); err != nil {
		return nil, fmt.Errorf("failed to decode created ad: %w", err)
	}

	ad := w.toDomain()
	return &ad, nil
}

func (a *Ads) Update(ctx context.Context, adID string, in AdInput) (*domain.Ad, error) {
	raw, err := a.client.Do(ctx, http.MethodPut, "/ads/"+adID, in.toWire())
	if err != nil {
		return nil, fmt.Errorf("failed to update ad: %w", err)
	}

	var w adWire
	if err := json.Unmarshal(backend.NormalizeObject(raw), &w); err != nil {
		return nil, fmt.Errorf("failed to decode updated ad: %w", err)
	}

	ad := w.toDomain()
	return &ad, nil
}

func (a *Ads) Delete(ctx context.Context, adID string) error {
	if _, err := a.client.Do(ctx, http.MethodDelete, "/ads/"+adID, nil); err != nil {
		return fmt.Errorf("failed to delete ad: %w", err)
	}
	return nil
}

// ForwardMetric pushes an impression/click increment to the backend counter.
func (a *Ads) ForwardMetric(ctx context.Context, adID, eventType string) error {
	var path string
	switch eventType {
	case domain.AdEventImpression:
		path = "/ads/" + adID + "/impression"
	case domain.AdEventClick:
		path = "/ads/" + adID + "/click"
	default:
		return fmt.Errorf("unknown ad event type %q", eventType)
	}

	if _, err := a.client.Do(ctx, http.MethodPost, path, nil); err != nil {
		return fmt.Errorf("failed to forward ad metric: %w", err)
	}

	return nil
}
