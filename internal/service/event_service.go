package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/kritsada-dev/tickethub/internal/cache"
	"github.com/kritsada-dev/tickethub/internal/domain"
	"github.com/kritsada-dev/tickethub/internal/dto"
	"github.com/kritsada-dev/tickethub/internal/inventory"
	"github.com/kritsada-dev/tickethub/internal/logger"
	"github.com/kritsada-dev/tickethub/internal/repository"
	"github.com/kritsada-dev/tickethub/internal/stream"
	"github.com/kritsada-dev/tickethub/internal/telemetry"
)

// EventService errors
var (
	ErrEventNotFound = errors.New("event not found")
)

// EventService exposes the read-side event catalog: listings and detail
// views with computed inventory summaries and lifecycle statuses.
type EventService interface {
	ListEvents(ctx context.Context, filter *dto.EventListFilter) ([]dto.EventCard, int, error)
	GetEvent(ctx context.Context, slug string) (*dto.EventDetail, error)
	RefreshEvent(ctx context.Context, id string) (*dto.EventDetail, error)
}

// eventService implements the EventService interface
type eventService struct {
	eventRepo repository.EventRepository
	analyzer  *inventory.Analyzer
	cache     *cache.SummaryCache
	publisher stream.Publisher
	log       *logger.Logger

	// now is swappable in tests
	now func() time.Time

	classifications *telemetry.Counter
	cacheLookups    *telemetry.Counter
}

// NewEventService creates a new EventService. The cache and publisher may be
// nil; both degrade to "always recompute" and "no alerts".
func NewEventService(
	eventRepo repository.EventRepository,
	analyzer *inventory.Analyzer,
	summaryCache *cache.SummaryCache,
	publisher stream.Publisher,
	log *logger.Logger,
) EventService {
	if publisher == nil {
		publisher = stream.NopPublisher{}
	}
	if log == nil {
		log = logger.Get()
	}

	classifications, err := telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "tickethub.event.classifications",
		Description: "Event lifecycle classifications by resulting status",
		Unit:        "{classification}",
	})
	if err != nil {
		log.Warn("failed to create classifications counter", zap.Error(err))
	}
	cacheLookups, err := telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "tickethub.event.cache_lookups",
		Description: "Event card cache lookups by result",
		Unit:        "{lookup}",
	})
	if err != nil {
		log.Warn("failed to create cache lookups counter", zap.Error(err))
	}

	return &eventService{
		eventRepo:       eventRepo,
		analyzer:        analyzer,
		cache:           summaryCache,
		publisher:       publisher,
		log:             log,
		now:             time.Now,
		classifications: classifications,
		cacheLookups:    cacheLookups,
	}
}

// ListEvents lists published events with computed inventory and status
func (s *eventService) ListEvents(ctx context.Context, filter *dto.EventListFilter) ([]dto.EventCard, int, error) {
	ctx, span := telemetry.StartSpan(ctx, "EventService.ListEvents")
	defer span.End()

	filter.SetDefaults()

	events, total, err := s.eventRepo.ListPublished(ctx, repository.EventListFilter{
		CategoryID:   filter.CategoryID,
		City:         filter.City,
		FeaturedOnly: filter.Featured,
		Limit:        filter.Limit,
		Offset:       filter.Offset,
	})
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		return nil, 0, err
	}

	eventIDs := make([]string, len(events))
	for i, event := range events {
		eventIDs[i] = event.ID
	}
	tiersByEvent, err := s.eventRepo.TiersByEvents(ctx, eventIDs)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		return nil, 0, err
	}

	now := s.now()
	cards := make([]dto.EventCard, len(events))
	for i, event := range events {
		sum := s.analyzer.Analyze(tiersByEvent[event.ID])
		status := s.classify(ctx, sum, event, now)
		cards[i] = dto.NewEventCard(event, sum, status)
	}
	return cards, total, nil
}

// GetEvent returns the detail view for a published event by slug. The
// computed view is cached per event with a short TTL; cache failures fall
// back to recomputation.
func (s *eventService) GetEvent(ctx context.Context, slug string) (*dto.EventDetail, error) {
	ctx, span := telemetry.StartSpan(ctx, "EventService.GetEvent")
	defer span.End()

	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	if cached := s.cachedDetail(ctx, event.ID); cached != nil {
		return cached, nil
	}

	detail, err := s.computeDetail(ctx, event)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		return nil, err
	}

	s.storeDetail(ctx, event.ID, detail)
	return detail, nil
}

// RefreshEvent recomputes the detail view for an event and overwrites the
// cached copy. Used by the admin surface after inventory changes.
func (s *eventService) RefreshEvent(ctx context.Context, id string) (*dto.EventDetail, error) {
	ctx, span := telemetry.StartSpan(ctx, "EventService.RefreshEvent")
	defer span.End()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	detail, err := s.computeDetail(ctx, event)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		return nil, err
	}

	s.storeDetail(ctx, event.ID, detail)
	return detail, nil
}

// computeDetail fetches the event's tiers and runs aggregation and
// classification. Low-stock results trigger an alert record.
func (s *eventService) computeDetail(ctx context.Context, event *domain.Event) (*dto.EventDetail, error) {
	tiers, err := s.eventRepo.TiersByEvent(ctx, event.ID)
	if err != nil {
		return nil, err
	}

	sum := s.analyzer.Analyze(tiers)
	status := s.classify(ctx, sum, event, s.now())

	if sum.IsLowStock {
		alert := stream.LowStockAlert{
			EventID:    event.ID,
			EventSlug:  event.Slug,
			TotalStock: sum.TotalStock,
			Threshold:  s.analyzer.Config().LowStockThreshold,
			ObservedAt: s.now(),
		}
		if err := s.publisher.PublishLowStock(ctx, alert); err != nil {
			s.log.WarnContext(ctx, "failed to publish low-stock alert",
				zap.String("event_id", event.ID),
				zap.Error(err),
			)
		}
	}

	detail := dto.NewEventDetail(event, sum, status)
	return &detail, nil
}

func (s *eventService) classify(ctx context.Context, sum inventory.Summary, event *domain.Event, now time.Time) inventory.EventStatus {
	status := inventory.Classify(sum, event.StartDate, event.EndDate, now)
	if s.classifications != nil {
		s.classifications.Inc(ctx, telemetry.EventStatusAttr(status.String()))
	}
	return status
}

// cachedDetail returns the cached detail view, or nil on miss, decode
// failure, or cache error.
func (s *eventService) cachedDetail(ctx context.Context, eventID string) *dto.EventDetail {
	if s.cache == nil {
		return nil
	}

	payload, ok, err := s.cache.Get(ctx, eventID)
	if err != nil {
		s.log.WarnContext(ctx, "event card cache read failed",
			zap.String("event_id", eventID),
			zap.Error(err),
		)
		return nil
	}
	if !ok {
		if s.cacheLookups != nil {
			s.cacheLookups.Inc(ctx, telemetry.CacheResultAttr("miss"))
		}
		return nil
	}

	var detail dto.EventDetail
	if err := json.Unmarshal(payload, &detail); err != nil {
		s.log.WarnContext(ctx, "event card cache decode failed",
			zap.String("event_id", eventID),
			zap.Error(err),
		)
		return nil
	}

	if s.cacheLookups != nil {
		s.cacheLookups.Inc(ctx, telemetry.CacheResultAttr("hit"))
	}
	return &detail
}

func (s *eventService) storeDetail(ctx context.Context, eventID string, detail *dto.EventDetail) {
	if s.cache == nil {
		return
	}

	payload, err := json.Marshal(detail)
	if err != nil {
		s.log.WarnContext(ctx, "event card cache encode failed",
			zap.String("event_id", eventID),
			zap.Error(err),
		)
		return
	}
	if err := s.cache.Set(ctx, eventID, payload); err != nil {
		s.log.WarnContext(ctx, "event card cache write failed",
			zap.String("event_id", eventID),
			zap.Error(err),
		)
	}
}
