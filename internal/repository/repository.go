package repository

import (
	"context"

	"github.com/kritsada-dev/tickethub/internal/domain"
)

// EventListFilter narrows event listing queries.
type EventListFilter struct {
	CategoryID   string
	City         string
	FeaturedOnly bool
	Limit        int
	Offset       int
}

// SetDefaults sets default values for pagination
func (f *EventListFilter) SetDefaults() {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

// EventRepository provides access to event listings and their ticket tiers.
// Events and tiers are fetched at request time; nothing is preloaded at
// startup.
type EventRepository interface {
	// ListPublished returns published, non-deleted events plus the total
	// count matching the filter.
	ListPublished(ctx context.Context, filter EventListFilter) ([]*domain.Event, int, error)
	// GetBySlug returns an event by slug, or nil when not found.
	GetBySlug(ctx context.Context, slug string) (*domain.Event, error)
	// GetByID returns an event by ID, or nil when not found.
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	// TiersByEvent returns the ticket tiers for one event in display order.
	TiersByEvent(ctx context.Context, eventID string) ([]domain.TicketTier, error)
	// TiersByEvents returns ticket tiers for a batch of events, keyed by
	// event ID. Events with no tiers are absent from the map.
	TiersByEvents(ctx context.Context, eventIDs []string) (map[string][]domain.TicketTier, error)
}

// CategoryRepository provides access to event categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]*domain.Category, error)
}

// VenueRepository provides access to venues.
type VenueRepository interface {
	List(ctx context.Context) ([]*domain.Venue, error)
}
