package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"
)

// Favorite event types.
const (
	FavoriteAdded   = "favorite.added"
	FavoriteRemoved = "favorite.removed"
)

// FavoriteEvent describes a favorite that was saved or removed.
type FavoriteEvent struct {
	Type        string    `json:"type"`
	FavoriteID  uint      `json:"favorite_id"`
	UserID      uint      `json:"user_id"`
	PlanetID    *uint     `json:"planet_id"`
	CharacterID *uint     `json:"character_id"`
	Name        string    `json:"name"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// DecodeFavoriteEvent parses a message body produced by PublishFavoriteEvent.
func DecodeFavoriteEvent(body []byte) (FavoriteEvent, error) {
	var event FavoriteEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return FavoriteEvent{}, fmt.Errorf("failed to decode favorite event: %w", err)
	}
	if event.Type != FavoriteAdded && event.Type != FavoriteRemoved {
		return FavoriteEvent{}, fmt.Errorf("unknown favorite event type %q", event.Type)
	}
	return event, nil
}
