package dto

import (
	"time"

	"github.com/kritsada-dev/tickethub/internal/domain"
	"github.com/kritsada-dev/tickethub/internal/inventory"
)

const timeFormat = time.RFC3339

// EventListFilter represents query filters for listing events
type EventListFilter struct {
	CategoryID string `form:"category_id"`
	City       string `form:"city"`
	Featured   bool   `form:"featured"`
	Limit      int    `form:"limit"`
	Offset     int    `form:"offset"`
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

// TierResponse is the per-tier view exposed by the API
type TierResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description,omitempty"`
	RawPrice       float64 `json:"raw_price"`
	ServiceFee     float64 `json:"service_fee"`
	TotalPrice     float64 `json:"total_price"`
	FormattedPrice string  `json:"formatted_price"`
	IsAvailable    bool    `json:"is_available"`
	MaxStock       int     `json:"max_stock"`
}

// EventCard is the list-view representation of an event: core listing fields
// plus the computed inventory summary and lifecycle status.
type EventCard struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Slug             string  `json:"slug"`
	ShortDescription string  `json:"short_description,omitempty"`
	PosterURL        string  `json:"poster_url,omitempty"`
	City             string  `json:"city,omitempty"`
	Country          string  `json:"country,omitempty"`
	StartDate        *string `json:"start_date,omitempty"`
	EndDate          *string `json:"end_date,omitempty"`
	IsFeatured       bool    `json:"is_featured"`

	Status       string  `json:"status"`
	PriceDisplay string  `json:"price_display"`
	MinPrice     float64 `json:"min_price"`
	MaxPrice     float64 `json:"max_price"`
	TotalStock   int     `json:"total_stock"`
	HasInventory bool    `json:"has_inventory"`
	IsLowStock   bool    `json:"is_low_stock"`
}

// EventDetail is the detail-view representation: the card plus long-form
// fields and the enriched tier list.
type EventDetail struct {
	EventCard

	Description string         `json:"description,omitempty"`
	BannerURL   string         `json:"banner_url,omitempty"`
	Tiers       []TierResponse `json:"tiers"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	ImageURL string `json:"image_url,omitempty"`
}

// VenueResponse represents a venue in API responses
type VenueResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
	City     string `json:"city,omitempty"`
	Country  string `json:"country,omitempty"`
	Capacity int    `json:"capacity"`
	ImageURL string `json:"image_url,omitempty"`
}

// NewEventCard builds an EventCard from a domain event, its computed
// inventory summary and lifecycle status.
func NewEventCard(event *domain.Event, sum inventory.Summary, status inventory.EventStatus) EventCard {
	card := EventCard{
		ID:               event.ID,
		Name:             event.Name,
		Slug:             event.Slug,
		ShortDescription: event.ShortDescription,
		PosterURL:        event.PosterURL,
		City:             event.City,
		Country:          event.Country,
		IsFeatured:       event.IsFeatured,
		Status:           status.String(),
		PriceDisplay:     sum.PriceDisplay,
		MinPrice:         sum.MinPrice,
		MaxPrice:         sum.MaxPrice,
		TotalStock:       sum.TotalStock,
		HasInventory:     sum.HasInventory,
		IsLowStock:       sum.IsLowStock,
	}
	card.StartDate = formatTime(event.StartDate)
	card.EndDate = formatTime(event.EndDate)
	return card
}

// NewEventDetail builds an EventDetail from a domain event, its computed
// inventory summary and lifecycle status.
func NewEventDetail(event *domain.Event, sum inventory.Summary, status inventory.EventStatus) EventDetail {
	detail := EventDetail{
		EventCard:   NewEventCard(event, sum, status),
		Description: event.Description,
		BannerURL:   event.BannerURL,
		Tiers:       make([]TierResponse, 0, len(sum.Tiers)),
	}
	for _, tier := range sum.Tiers {
		detail.Tiers = append(detail.Tiers, TierResponse{
			ID:             tier.ID,
			Name:           tier.Name,
			Description:    tier.Description,
			RawPrice:       tier.RawPrice,
			ServiceFee:     tier.ServiceFee,
			TotalPrice:     tier.TotalPrice,
			FormattedPrice: tier.FormattedPrice,
			IsAvailable:    tier.IsAvailable,
			MaxStock:       tier.MaxStock,
		})
	}
	return detail
}

// NewCategoryResponse builds a CategoryResponse from a domain category
func NewCategoryResponse(category *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:       category.ID,
		Name:     category.Name,
		Slug:     category.Slug,
		ImageURL: category.ImageURL,
	}
}

// NewVenueResponse builds a VenueResponse from a domain venue
func NewVenueResponse(venue *domain.Venue) VenueResponse {
	return VenueResponse{
		ID:       venue.ID,
		Name:     venue.Name,
		Address:  venue.Address,
		City:     venue.City,
		Country:  venue.Country,
		Capacity: venue.Capacity,
		ImageURL: venue.ImageURL,
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(timeFormat)
	return &s
}
