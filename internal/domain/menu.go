package domain

// Plan types as served by the backend. Free-plan menus show platform ads,
// pro-plan menus show their own.
const (
	PlanFree = "free"
	PlanPro  = "pro"
)

type Menu struct {
	ID            string         `json:"id"`
	Slug          string         `json:"slug"`
	Name          string         `json:"name"`
	NameI18n      LocalizedText  `json:"name_i18n"`
	Description   string         `json:"description,omitempty"`
	DescI18n      LocalizedText  `json:"description_i18n"`
	LogoURL       string         `json:"logo_url,omitempty"`
	Theme         string         `json:"theme,omitempty"`
	Currency      string         `json:"currency"`
	IsActive      bool           `json:"is_active"`
	OwnerPlanType string         `json:"owner_plan_type"`
	Branding      Branding       `json:"branding"`
	WorkingHours  []WorkingHours `json:"working_hours,omitempty"`
	Branches      []Branch       `json:"branches,omitempty"`
}

type Branding struct {
	Phone     string `json:"phone,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
	WhatsApp  string `json:"whatsapp,omitempty"`
	Website   string `json:"website,omitempty"`
}

type WorkingHours struct {
	Day   string `json:"day"`
	Open  string `json:"open"`
	Close string `json:"close"`
}

type Branch struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	NameI18n LocalizedText `json:"name_i18n"`
	Address  string        `json:"address,omitempty"`
	Phone    string        `json:"phone,omitempty"`
}

type Category struct {
	ID        string        `json:"id"`
	MenuID    string        `json:"menu_id,omitempty"`
	Name      string        `json:"name"`
	NameI18n  LocalizedText `json:"name_i18n"`
	ImageURL  string        `json:"image_url,omitempty"`
	SortOrder int           `json:"sort_order"`
	IsActive  bool          `json:"is_active"`
}

type MenuItem struct {
	ID          string        `json:"id"`
	CategoryID  string        `json:"category_id,omitempty"`
	Name        string        `json:"name"`
	NameI18n    LocalizedText `json:"name_i18n"`
	Description string        `json:"description,omitempty"`
	DescI18n    LocalizedText `json:"description_i18n"`
	Price       float64       `json:"price"`
	ImageURL    string        `json:"image_url,omitempty"`
	Available   bool          `json:"available"`
	SortOrder   int           `json:"sort_order"`
}

// MenuData is the full payload a public menu page renders from.
type MenuData struct {
	Menu       Menu       `json:"menu"`
	Categories []Category `json:"categories"`
	Items      []MenuItem `json:"items"`
	Ads        []Ad       `json:"ads,omitempty"`
}
