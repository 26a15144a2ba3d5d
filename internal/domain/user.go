package domain

import "time"

type User struct {
	ID           string        `json:"id"`
	Email        string        `json:"email"`
	Name         string        `json:"name"`
	Role         string        `json:"role"`
	PlanType     string        `json:"plan_type"`
	IsSuspended  bool          `json:"is_suspended"`
	Subscription *Subscription `json:"subscription,omitempty"`
	CreatedAt    time.Time     `json:"created_at,omitempty"`
}

type Subscription struct {
	PlanID       string     `json:"plan_id,omitempty"`
	BillingCycle string     `json:"billing_cycle,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
}

type AdminStats struct {
	TotalUsers      int `json:"total_users"`
	ActiveUsers     int `json:"active_users"`
	SuspendedUsers  int `json:"suspended_users"`
	TotalMenus      int `json:"total_menus"`
	ProSubscribers  int `json:"pro_subscribers"`
	FreeSubscribers int `json:"free_subscribers"`
}
