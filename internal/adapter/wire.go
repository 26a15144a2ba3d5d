package adapter

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/restomenu/restomenu/internal/domain"
)

// flexID tolerates the backend serving IDs as either strings or numbers.
type flexID string

func (id *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = flexID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = flexID(n.String())

	return nil
}

// The backend serves translations in two competing shapes: flat
// nameAr/nameEn fields and a nested translations.{ar,en} object. Wire types
// accept both and fold them into domain.LocalizedText here, once.
type translationsWire struct {
	AR localeFieldsWire `json:"ar"`
	EN localeFieldsWire `json:"en"`
}

type localeFieldsWire struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func foldName(ar, en string, t *translationsWire) domain.LocalizedText {
	out := domain.LocalizedText{AR: ar, EN: en}
	if t != nil {
		if out.AR == "" {
			out.AR = t.AR.Name
		}
		if out.EN == "" {
			out.EN = t.EN.Name
		}
	}
	return out
}

func foldDescription(ar, en string, t *translationsWire) domain.LocalizedText {
	out := domain.LocalizedText{AR: ar, EN: en}
	if t != nil {
		if out.AR == "" {
			out.AR = t.AR.Description
		}
		if out.EN == "" {
			out.EN = t.EN.Description
		}
	}
	return out
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

type categoryWire struct {
	ID           flexID            `json:"id"`
	MenuID       flexID            `json:"menuId"`
	Name         string            `json:"name"`
	NameAr       string            `json:"nameAr"`
	NameEn       string            `json:"nameEn"`
	Image        string            `json:"image"`
	ImageURL     string            `json:"imageUrl"`
	SortOrder    int               `json:"sortOrder"`
	IsActive     *bool             `json:"isActive"`
	Translations *translationsWire `json:"translations"`
}

func (w categoryWire) toDomain() domain.Category {
	return domain.Category{
		ID:        string(w.ID),
		MenuID:    string(w.MenuID),
		Name:      w.Name,
		NameI18n:  foldName(w.NameAr, w.NameEn, w.Translations),
		ImageURL:  firstNonEmpty(w.ImageURL, w.Image),
		SortOrder: w.SortOrder,
		IsActive:  boolOr(w.IsActive, true),
	}
}

type itemWire struct {
	ID            flexID            `json:"id"`
	CategoryID    flexID            `json:"categoryId"`
	Name          string            `json:"name"`
	NameAr        string            `json:"nameAr"`
	NameEn        string            `json:"nameEn"`
	Description   string            `json:"description"`
	DescriptionAr string            `json:"descriptionAr"`
	DescriptionEn string            `json:"descriptionEn"`
	Price         float64           `json:"price"`
	Image         string            `json:"image"`
	ImageURL      string            `json:"imageUrl"`
	Available     *bool             `json:"available"`
	SortOrder     int               `json:"sortOrder"`
	Translations  *translationsWire `json:"translations"`
}

func (w itemWire) toDomain() domain.MenuItem {
	return domain.MenuItem{
		ID:          string(w.ID),
		CategoryID:  string(w.CategoryID),
		Name:        w.Name,
		NameI18n:    foldName(w.NameAr, w.NameEn, w.Translations),
		Description: w.Description,
		DescI18n:    foldDescription(w.DescriptionAr, w.DescriptionEn, w.Translations),
		Price:       w.Price,
		ImageURL:    firstNonEmpty(w.ImageURL, w.Image),
		Available:   boolOr(w.Available, true),
		SortOrder:   w.SortOrder,
	}
}

type adWire struct {
	ID              flexID `json:"id"`
	Title           string `json:"title"`
	TitleAr         string `json:"titleAr"`
	Content         string `json:"content"`
	ContentAr       string `json:"contentAr"`
	ImageURL        string `json:"imageUrl"`
	LinkURL         string `json:"linkUrl"`
	Position        string `json:"position"`
	AdType          string `json:"adType"`
	MenuID          flexID `json:"menuId"`
	IsActive        *bool  `json:"isActive"`
	ImpressionCount int64  `json:"impressionCount"`
	ClickCount      int64  `json:"clickCount"`
}

func (w adWire) toDomain() domain.Ad {
	adType := w.AdType
	if adType == "" {
		adType = domain.AdTypeGlobal
	}

	return domain.Ad{
		ID:              string(w.ID),
		Title:           w.Title,
		TitleI18n:       domain.LocalizedText{AR: w.TitleAr, EN: w.Title},
		Content:         w.Content,
		ContentI18n:     domain.LocalizedText{AR: w.ContentAr, EN: w.Content},
		ImageURL:        w.ImageURL,
		LinkURL:         w.LinkURL,
		Position:        w.Position,
		AdType:          adType,
		MenuID:          string(w.MenuID),
		IsActive:        boolOr(w.IsActive, true),
		ImpressionCount: w.ImpressionCount,
		ClickCount:      w.ClickCount,
	}
}

type subscriptionWire struct {
	PlanID       flexID     `json:"planId"`
	BillingCycle string     `json:"billingCycle"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
}

type userWire struct {
	ID           flexID            `json:"id"`
	Email        string            `json:"email"`
	Name         string            `json:"name"`
	Role         string            `json:"role"`
	PlanType     string            `json:"planType"`
	IsSuspended  bool              `json:"isSuspended"`
	Subscription *subscriptionWire `json:"subscription"`
	CreatedAt    *time.Time        `json:"createdAt"`
}

func (w userWire) toDomain() domain.User {
	u := domain.User{
		ID:          string(w.ID),
		Email:       w.Email,
		Name:        w.Name,
		Role:        w.Role,
		PlanType:    w.PlanType,
		IsSuspended: w.IsSuspended,
	}
	if w.Subscription != nil {
		u.Subscription = &domain.Subscription{
			PlanID:       string(w.Subscription.PlanID),
			BillingCycle: w.Subscription.BillingCycle,
			StartDate:    w.Subscription.StartDate,
			EndDate:      w.Subscription.EndDate,
		}
	}
	if w.CreatedAt != nil {
		u.CreatedAt = *w.CreatedAt
	}
	return u
}

type planWire struct {
	ID                 flexID   `json:"id"`
	Name               string   `json:"name"`
	PriceMonthly       float64  `json:"priceMonthly"`
	PriceYearly        float64  `json:"priceYearly"`
	Currency           string   `json:"currency"`
	MaxMenus           int      `json:"maxMenus"`
	MaxProductsPerMenu int      `json:"maxProductsPerMenu"`
	Features           []string `json:"features"`
}

func (w planWire) toDomain() domain.Plan {
	return domain.Plan{
		ID:                 string(w.ID),
		Name:               w.Name,
		PriceMonthly:       w.PriceMonthly,
		PriceYearly:        w.PriceYearly,
		Currency:           w.Currency,
		MaxMenus:           w.MaxMenus,
		MaxProductsPerMenu: w.MaxProductsPerMenu,
		Features:           w.Features,
	}
}

type menuWire struct {
	ID            flexID                `json:"id"`
	Slug          string                `json:"slug"`
	Name          string                `json:"name"`
	NameAr        string                `json:"nameAr"`
	NameEn        string                `json:"nameEn"`
	Description   string                `json:"description"`
	DescriptionAr string                `json:"descriptionAr"`
	DescriptionEn string                `json:"descriptionEn"`
	Logo          string                `json:"logo"`
	Theme         string                `json:"theme"`
	Currency      string                `json:"currency"`
	IsActive      *bool                 `json:"isActive"`
	OwnerPlanType string                `json:"ownerPlanType"`
	Phone         string                `json:"phone"`
	Instagram     string                `json:"instagram"`
	Facebook      string                `json:"facebook"`
	TikTok        string                `json:"tiktok"`
	WhatsApp      string                `json:"whatsapp"`
	Website       string                `json:"website"`
	WorkingHours  []domain.WorkingHours `json:"workingHours"`
	Branches      []branchWire          `json:"branches"`
	Translations  *translationsWire     `json:"translations"`
}

type branchWire struct {
	ID      flexID `json:"id"`
	Name    string `json:"name"`
	NameAr  string `json:"nameAr"`
	NameEn  string `json:"nameEn"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func (w menuWire) toDomain() domain.Menu {
	planType := w.OwnerPlanType
	if planType == "" {
		planType = domain.PlanFree
	}

	m := domain.Menu{
		ID:            string(w.ID),
		Slug:          w.Slug,
		Name:          w.Name,
		NameI18n:      foldName(w.NameAr, w.NameEn, w.Translations),
		Description:   w.Description,
		DescI18n:      foldDescription(w.DescriptionAr, w.DescriptionEn, w.Translations),
		LogoURL:       w.Logo,
		Theme:         w.Theme,
		Currency:      w.Currency,
		IsActive:      boolOr(w.IsActive, true),
		OwnerPlanType: planType,
		Branding: domain.Branding{
			Phone:     w.Phone,
			Instagram: w.Instagram,
			Facebook:  w.Facebook,
			TikTok:    w.TikTok,
			WhatsApp:  w.WhatsApp,
			Website:   w.Website,
		},
		WorkingHours: w.WorkingHours,
	}

	for _, b := range w.Branches {
		m.Branches = append(m.Branches, domain.Branch{
			ID:       string(b.ID),
			Name:     b.Name,
			NameI18n: domain.LocalizedText{AR: b.NameAr, EN: b.NameEn},
			Address:  b.Address,
			Phone:    b.Phone,
		})
	}

	return m
}
