package telemetry

import "time"

type EventType string

const (
	EventActionApplied     EventType = "action_applied"
	EventDayAdvanced       EventType = "day_advanced"
	EventCardDrawn         EventType = "card_drawn"
	EventBillsSettled      EventType = "bills_settled"
	EventWheelSpun         EventType = "wheel_spun"
	EventItemPurchased     EventType = "item_purchased"
	EventAchievementEarned EventType = "achievement_earned"
	EventGameReset         EventType = "game_reset"
)

type Event struct {
	ID        int       `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}
