package domain

type Plan struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	PriceMonthly       float64  `json:"price_monthly"`
	PriceYearly        float64  `json:"price_yearly"`
	Currency           string   `json:"currency,omitempty"`
	MaxMenus           int      `json:"max_menus"`
	MaxProductsPerMenu int      `json:"max_products_per_menu"`
	Features           []string `json:"features,omitempty"`
}

// PlanUpdate carries the only fields an admin may edit on a plan.
type PlanUpdate struct {
	PriceMonthly       *float64 `json:"price_monthly,omitempty"`
	PriceYearly        *float64 `json:"price_yearly,omitempty"`
	MaxMenus           *int     `json:"max_menus,omitempty"`
	MaxProductsPerMenu *int     `json:"max_products_per_menu,omitempty"`
}
