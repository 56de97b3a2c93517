package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kritsada-dev/tickethub/internal/dto"
	"github.com/kritsada-dev/tickethub/internal/response"
	"github.com/kritsada-dev/tickethub/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubEventService struct {
	cards  []dto.EventCard
	total  int
	detail *dto.EventDetail
	err    error
}

func (s *stubEventService) ListEvents(_ context.Context, _ *dto.EventListFilter) ([]dto.EventCard, int, error) {
	return s.cards, s.total, s.err
}

func (s *stubEventService) GetEvent(_ context.Context, _ string) (*dto.EventDetail, error) {
	return s.detail, s.err
}

func (s *stubEventService) RefreshEvent(_ context.Context, _ string) (*dto.EventDetail, error) {
	return s.detail, s.err
}

func newEventRouter(svc service.EventService) *gin.Engine {
	h := NewEventHandler(svc)
	router := gin.New()
	router.GET("/api/v1/events", h.List)
	router.GET("/api/v1/events/:slug", h.Get)
	router.POST("/api/v1/admin/events/:id/refresh", h.Refresh)
	return router
}

func TestEventHandler_List(t *testing.T) {
	t.Run("returns paginated cards", func(t *testing.T) {
		svc := &stubEventService{
			cards: []dto.EventCard{
				{ID: "evt-1", Name: "Summer Fest", Status: "ONGOING", PriceDisplay: "From $40.00"},
				{ID: "evt-2", Name: "Expo", Status: "SOLD_OUT", PriceDisplay: "$0.00"},
			},
			total: 2,
		}
		router := newEventRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp response.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		require.NotNil(t, resp.Meta)
		assert.Equal(t, int64(2), resp.Meta.Total)
		assert.Equal(t, 1, resp.Meta.Page)
	})

	t.Run("service error maps to 500", func(t *testing.T) {
		svc := &stubEventService{err: errors.New("boom")}
		router := newEventRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestEventHandler_Get(t *testing.T) {
	t.Run("returns detail", func(t *testing.T) {
		svc := &stubEventService{
			detail: &dto.EventDetail{
				EventCard: dto.EventCard{ID: "evt-1", Slug: "summer-fest", Status: "UPCOMING"},
				Tiers:     []dto.TierResponse{},
			},
		}
		router := newEventRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/events/summer-fest", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Success bool            `json:"success"`
			Data    dto.EventDetail `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "summer-fest", resp.Data.Slug)
		assert.Equal(t, "UPCOMING", resp.Data.Status)
	})

	t.Run("unknown slug maps to 404", func(t *testing.T) {
		svc := &stubEventService{err: service.ErrEventNotFound}
		router := newEventRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/events/missing", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)

		var resp response.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, response.ErrCodeNotFound, resp.Error.Code)
	})
}

func TestEventHandler_Refresh(t *testing.T) {
	t.Run("recomputes and returns detail", func(t *testing.T) {
		svc := &stubEventService{
			detail: &dto.EventDetail{
				EventCard: dto.EventCard{ID: "evt-1", Status: "LAST_CHANCE", IsLowStock: true},
				Tiers:     []dto.TierResponse{},
			},
		}
		router := newEventRouter(svc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/events/evt-1/refresh", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data dto.EventDetail `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "LAST_CHANCE", resp.Data.Status)
		assert.True(t, resp.Data.IsLowStock)
	})

	t.Run("unknown id maps to 404", func(t *testing.T) {
		svc := &stubEventService{err: service.ErrEventNotFound}
		router := newEventRouter(svc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/events/nope/refresh", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
