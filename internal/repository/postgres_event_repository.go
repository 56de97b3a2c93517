package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kritsada-dev/tickethub/internal/domain"
)

// eventColumns defines the columns to select for events
const eventColumns = `id, organizer_id, category_id, venue_id, name, slug,
	COALESCE(description, '') as description,
	COALESCE(short_description, '') as short_description,
	COALESCE(poster_url, '') as poster_url,
	COALESCE(banner_url, '') as banner_url,
	COALESCE(city, '') as city,
	COALESCE(country, '') as country,
	start_date, end_date, is_featured, is_published,
	created_at, updated_at, deleted_at`

// tierColumns defines the columns to select for ticket tiers
const tierColumns = `id, event_id, name, COALESCE(description, '') as description,
	COALESCE(price, 0) as price,
	available_tickets, tickets_available,
	COALESCE(status, '') as status,
	COALESCE(sort_order, 0) as sort_order,
	created_at, updated_at, deleted_at`

// PostgresEventRepository implements EventRepository using PostgreSQL
type PostgresEventRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresEventRepository creates a new PostgresEventRepository
func NewPostgresEventRepository(pool *pgxpool.Pool) *PostgresEventRepository {
	return &PostgresEventRepository{pool: pool}
}

func scanEvent(row pgx.Row) (*domain.Event, error) {
	event := &domain.Event{}
	err := row.Scan(
		&event.ID,
		&event.OrganizerID,
		&event.CategoryID,
		&event.VenueID,
		&event.Name,
		&event.Slug,
		&event.Description,
		&event.ShortDescription,
		&event.PosterURL,
		&event.BannerURL,
		&event.City,
		&event.Country,
		&event.StartDate,
		&event.EndDate,
		&event.IsFeatured,
		&event.IsPublished,
		&event.CreatedAt,
		&event.UpdatedAt,
		&event.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return event, nil
}

// ListPublished returns published events matching the filter with pagination
func (r *PostgresEventRepository) ListPublished(ctx context.Context, filter EventListFilter) ([]*domain.Event, int, error) {
	where := []string{"is_published = true", "deleted_at IS NULL"}
	args := []interface{}{}
	arg := 1

	if filter.CategoryID != "" {
		where = append(where, fmt.Sprintf("category_id = $%d", arg))
		args = append(args, filter.CategoryID)
		arg++
	}
	if filter.City != "" {
		where = append(where, fmt.Sprintf("city = $%d", arg))
		args = append(args, filter.City)
		arg++
	}
	if filter.FeaturedOnly {
		where = append(where, "is_featured = true")
	}
	whereClause := strings.Join(where, " AND ")

	countQuery := `SELECT COUNT(*) FROM events WHERE ` + whereClause
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM events WHERE %s
		ORDER BY start_date ASC NULLS LAST, created_at DESC
		LIMIT $%d OFFSET $%d`, eventColumns, whereClause, arg, arg+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, 0, err
		}
		events = append(events, event)
	}
	return events, total, rows.Err()
}

// GetBySlug retrieves a published event by slug
func (r *PostgresEventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE slug = $1 AND is_published = true AND deleted_at IS NULL`
	return scanEvent(r.pool.QueryRow(ctx, query, slug))
}

// GetByID retrieves an event by ID
func (r *PostgresEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1 AND deleted_at IS NULL`
	return scanEvent(r.pool.QueryRow(ctx, query, id))
}

// TiersByEvent retrieves ticket tiers for one event in display order
func (r *PostgresEventRepository) TiersByEvent(ctx context.Context, eventID string) ([]domain.TicketTier, error) {
	query := `SELECT ` + tierColumns + ` FROM ticket_tiers
		WHERE event_id = $1 AND deleted_at IS NULL
		ORDER BY sort_order ASC, created_at ASC`
	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTiers(rows)
}

// TiersByEvents retrieves ticket tiers for a batch of events keyed by event ID
func (r *PostgresEventRepository) TiersByEvents(ctx context.Context, eventIDs []string) (map[string][]domain.TicketTier, error) {
	result := make(map[string][]domain.TicketTier, len(eventIDs))
	if len(eventIDs) == 0 {
		return result, nil
	}

	query := `SELECT ` + tierColumns + ` FROM ticket_tiers
		WHERE event_id = ANY($1) AND deleted_at IS NULL
		ORDER BY event_id, sort_order ASC, created_at ASC`
	rows, err := r.pool.Query(ctx, query, eventIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tiers, err := scanTiers(rows)
	if err != nil {
		return nil, err
	}
	for _, tier := range tiers {
		result[tier.EventID] = append(result[tier.EventID], tier)
	}
	return result, nil
}

func scanTiers(rows pgx.Rows) ([]domain.TicketTier, error) {
	var tiers []domain.TicketTier
	for rows.Next() {
		var tier domain.TicketTier
		err := rows.Scan(
			&tier.ID,
			&tier.EventID,
			&tier.Name,
			&tier.Description,
			&tier.Price,
			&tier.AvailableTickets,
			&tier.TicketsAvailable,
			&tier.Status,
			&tier.SortOrder,
			&tier.CreatedAt,
			&tier.UpdatedAt,
			&tier.DeletedAt,
		)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, tier)
	}
	return tiers, rows.Err()
}
