package domain

import "time"

// Event represents a marketplace event listing
type Event struct {
	ID               string     `json:"id"`
	OrganizerID      string     `json:"organizer_id"`
	CategoryID       *string    `json:"category_id,omitempty"`
	VenueID          *string    `json:"venue_id,omitempty"`
	Name             string     `json:"name"`
	Slug             string     `json:"slug"`
	Description      string     `json:"description"`
	ShortDescription string     `json:"short_description"`
	PosterURL        string     `json:"poster_url"`
	BannerURL        string     `json:"banner_url"`
	City             string     `json:"city"`
	Country          string     `json:"country"`
	StartDate        *time.Time `json:"start_date,omitempty"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	IsFeatured       bool       `json:"is_featured"`
	IsPublished      bool       `json:"is_published"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	DeletedAt        *time.Time `json:"deleted_at,omitempty"`
}

// Category groups events for browsing
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Venue represents a venue where events are held
type Venue struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	Capacity  int       `json:"capacity"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TicketTier represents one purchasable ticket type/price point for an event.
// Records imported from the legacy catalog may carry the remaining count under
// tickets_available instead of available_tickets; both are kept and resolved
// at aggregation time.
type TicketTier struct {
	ID          string `json:"id,omitempty"`
	EventID     string `json:"event_id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// Face value before service fee. Malformed source values are stored
	// as-is and sanitized during aggregation, never rejected.
	Price float64 `json:"price"`
	// Remaining purchasable units. Nil means the field was absent.
	AvailableTickets *int `json:"available_tickets,omitempty"`
	// Legacy alias for AvailableTickets, kept for old catalog records.
	TicketsAvailable *int `json:"tickets_available,omitempty"`
	// Free-text marker from the source system. The literal "sold out"
	// forces non-availability regardless of the remaining count.
	Status    string     `json:"status,omitempty"`
	SortOrder int        `json:"sort_order,omitempty"`
	CreatedAt time.Time  `json:"created_at,omitempty"`
	UpdatedAt time.Time  `json:"updated_at,omitempty"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}
