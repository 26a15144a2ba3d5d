package domain

import "time"

const (
	AdTypeGlobal = "global"
	AdTypeMenu   = "menu"
)

type Ad struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	TitleI18n       LocalizedText `json:"title_i18n"`
	Content         string        `json:"content,omitempty"`
	ContentI18n     LocalizedText `json:"content_i18n"`
	ImageURL        string        `json:"image_url,omitempty"`
	LinkURL         string        `json:"link_url,omitempty"`
	Position        string        `json:"position"`
	AdType          string        `json:"ad_type"`
	MenuID          string        `json:"menu_id,omitempty"`
	IsActive        bool          `json:"is_active"`
	ImpressionCount int64         `json:"impression_count"`
	ClickCount      int64         `json:"click_count"`
}

const (
	AdEventImpression = "ad.impression"
	AdEventClick      = "ad.click"
)

// AdMetricEvent is the queue message for an impression/click beacon.
// Increments are commutative, so consumption order does not matter.
type AdMetricEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	AdID      string    `json:"ad_id"`
	MenuID    string    `json:"menu_id,omitempty"`
	Locale    string    `json:"locale,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
