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

type Admin struct {
	client *backend.Client
	logger *zap.SugaredLogger
}

func NewAdmin(client *backend.Client, logger *zap.SugaredLogger) *Admin {
	return &Admin{
		client: client,
		logger: logger,
	}
}

// UserPage is a server-paginated slice of the user base. The backend owns
// the pagination for users; this service only forwards page/limit/search.
type UserPage struct {
	Users []domain.User `json:"users"`
	Total int           `json:"total"`
}

func (a *Admin) Stats(ctx context.Context) domain.AdminStats {
	raw, err := a.client.Do(ctx, http.MethodGet, "/admin/stats", nil)
	if err != nil {
		a.logger.Errorw("failed to fetch admin stats", "error", err)
		return domain.AdminStats{}
	}

	var stats domain.AdminStats
	if err := json.Unmarshal(backend.NormalizeObject(raw), &stats); err != nil {
		a.logger.Errorw("failed to decode admin stats", "error", err)
		return domain.AdminStats{}
	}

	return stats
}

func (a *Admin) Users(ctx context.Context, page, limit int, search string) UserPage {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	if search != "" {
		q.Set("search", search)
	}

	raw, err := a.client.Do(ctx, http.MethodGet, "/admin/users?"+q.Encode(), nil)
	if err != nil {
		a.logger.Errorw("failed to fetch users", "error", err)
		return UserPage{Users: []domain.User{}}
	}

	var envelope struct {
		Total int `json:"total"`
		Data  struct {
			Total int `json:"total"`
		} `json:"data"`
	}
	_ = json.Unmarshal(raw, &envelope)

	var wires []userWire
	if err := backend.DecodeList(raw, &wires, "users", "items"); err != nil {
		a.logger.Errorw("failed to decode users", "error", err)
		return UserPage{Users: []domain.User{}}
	}

	users := make([]domain.User, 0, len(wires))
	for _, w := range wires {
		users = append(users, w.toDomain())
	}

	total := envelope.Total
	if total == 0 {
		total = envelope.Data.Total
	}
	if total == 0 {
		total = len(users)
	}

	return UserPage{Users: users, Total: total}
}

// UserDetails intentionally propagates errors instead of degrading; the
// detail page needs to distinguish "not found" from "empty".
func (a *Admin) UserDetails(ctx context.Context, userID string) (*domain.User, error) {
	raw, err := a.client.Do(ctx, http.MethodGet, "/admin/users/"+userID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user details: %w", err)
	}

	var w userWire
	if err := json.Unmarshal(backend.NormalizeObject(raw), &w); err != nil {
		return nil, fmt.Errorf("failed to decode user details: %w", err)
	}

	u := w.toDomain()
	return &u, nil
}

type SubscriptionUpdate struct {
	PlanID       string `json:"plan_id" validate:"required"`
	BillingCycle string `json:"billing_cycle" validate:"required,oneof=monthly yearly"`
}

func (a *Admin) UpdateSubscription(ctx context.Context, userID string, in SubscriptionUpdate) error {
	body := map[string]any{
		"planId":       in.PlanID,
		"billingCycle": in.BillingCycle,
	}
	if _, err := a.client.Do(ctx, http.MethodPut, "/admin/users/"+userID+"/subscription", body); err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}
	return nil
}

func (a *Admin) ApplyFreeLimits(ctx context.Context, userID string) error {
	if _, err := a.client.Do(ctx, http.MethodPost, "/admin/users/"+userID+"/apply-free-limits", nil); err != nil {
		return fmt.Errorf("failed to apply free limits: %w", err)
	}
	return nil
}

func (a *Admin) SetSuspended(ctx context.Context, userID string, suspended bool) error {
	body := map[string]any{"suspended": suspended}
	if _, err := a.client.Do(ctx, http.MethodPut, "/admin/users/"+userID+"/suspend", body); err != nil {
		return fmt.Errorf("failed to update suspension: %w", err)
	}
	return nil
}

func (a *Admin) Plans(ctx context.Context) []domain.Plan {
	raw, err := a.client.Do(ctx, http.MethodGet, "/admin/plans", nil)
	if err != nil {
		a.logger.Errorw("failed to fetch plans", "error", err)
		return []domain.Plan{}
	}

	var wires []planWire
	if err := backend.DecodeList(raw, &wires, "plans", "items"); err != nil {
		a.logger.Errorw("failed to decode plans", "error", err)
		return []domain.Plan{}
	}

	plans := make([]domain.Plan, 0, len(wires))
	for _, w := range wires {
		plans = append(plans, w.toDomain())
	}

	return plans
}

// SubscriptionPlans propagates errors like UserDetails; the subscription
// modal cannot fall back to an empty plan list.
func (a *Admin) SubscriptionPlans(ctx context.Context) ([]domain.Plan, error) {
	raw, err := a.client.Do(ctx, http.MethodGet, "/admin/plans/subscription", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subscription plans: %w", err)
	}

	var wires []planWire
	if err := backend.DecodeList(raw, &wires, "plans", "items"); err != nil {
		return nil, fmt.Errorf("failed to decode subscription plans: %w", err)
	}

	plans := make([]domain.Plan, 0, len(wires))
	for _, w := range wires {
		plans = append(plans, w.toDomain())
	}

	return plans, nil
}

func (a *Admin) UpdatePlan(ctx context.Context, planID string, in domain.PlanUpdate) error {
	body := map[string]any{}
	if in.PriceMonthly != nil {
		body["priceMonthly"] = *in.PriceMonthly
	}
	if in.PriceYearly != nil {
		body["priceYearly"] = *in.PriceYearly
	}
	if in.MaxMenus != nil {
		body["maxMenus"] = *in.MaxMenus
	}
	if in.MaxProductsPerMenu != nil {
		body["maxProductsPerMenu"] = *in.MaxProductsPerMenu
	}

	if _, err := a.client.Do(ctx, http.MethodPut, "/admin/plans/"+planID, body); err != nil {
		return fmt.Errorf("failed to update plan: %w", err)
	}
	return nil
}

func (a *Admin) Admins(ctx context.Context) []domain.User {
	raw, err := a.client.Do(ctx, http.MethodGet, "/admin/admins", nil)
	if err != nil {
		a.logger.Errorw("failed to fetch admins", "error", err)
		return []domain.User{}
	}

	var wires []userWire
	if err := backend.DecodeList(raw, &wires, "admins", "users", "items"); err != nil {
		a.logger.Errorw("failed to decode admins", "error", err)
		return []domain.User{}
	}

	admins := make([]domain.User, 0, len(wires))
	for _, w := range wires {
		admins = append(admins, w.toDomain())
	}

	return admins
}

type AdminInput struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

func (a *Admin) CreateAdmin(ctx context.Context, in AdminInput) (*domain.User, error) {
	body := map[string]any{
		"email":    in.Email,
		"name":     in.Name,
		"password": in.Password,
	}

	raw, err := a.client.Do(ctx, http.MethodPost, "/admin/admins", body)
	if err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	var w userWire
	if err := json.Unmarshal(backend.NormalizeObject(raw), &w); err != nil {
		return nil, fmt.Errorf("failed to decode created admin: %w", err)
	}

	u := w.toDomain()
	return &u, nil
}
