package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kritsada-dev/tickethub/internal/domain"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestClassify_Cascade(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)
	nextWeek := now.AddDate(0, 0, 7)

	ample := Summary{TotalStock: 200, HasInventory: true}
	low := Summary{TotalStock: 5, HasInventory: true, IsLowStock: true}
	exhausted := Summary{TotalStock: 0}

	tests := []struct {
		name  string
		sum   Summary
		start *time.Time
		end   *time.Time
		want  EventStatus
	}{
		{"no inventory", exhausted, nil, nil, StatusSoldOut},
		{"no inventory outranks future start", exhausted, timePtr(nextWeek), timePtr(nextWeek), StatusSoldOut},
		{"low stock outranks ongoing schedule", low, timePtr(yesterday), timePtr(tomorrow), StatusLastChance},
		{"low stock outranks upcoming schedule", low, timePtr(nextWeek), nil, StatusLastChance},
		{"future start", ample, timePtr(nextWeek), nil, StatusUpcoming},
		{"future start with end", ample, timePtr(tomorrow), timePtr(nextWeek), StatusUpcoming},
		{"within schedule window", ample, timePtr(yesterday), timePtr(tomorrow), StatusOngoing},
		{"past end of day of end date", ample, timePtr(now.AddDate(0, 0, -7)), timePtr(yesterday), StatusCompleted},
		{"start known but end unknown, already started", ample, timePtr(yesterday), nil, StatusTBA},
		{"no schedule at all", ample, nil, nil, StatusTBA},
		{"end without start", ample, nil, timePtr(tomorrow), StatusTBA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.sum, tt.start, tt.end, now))
		})
	}
}

func TestClassify_EndOfDayBoundary(t *testing.T) {
	// Event ends March 10; the lifecycle flips to COMPLETED only after
	// 23:59:59.999 on that date.
	end := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	start := end.AddDate(0, 0, -1)
	ample := Summary{TotalStock: 500, HasInventory: true}

	lastInstant := time.Date(2026, time.March, 10, 23, 59, 59, 999_000_000, time.UTC)
	assert.Equal(t, StatusOngoing, Classify(ample, &start, &end, lastInstant))

	justAfter := lastInstant.Add(time.Millisecond)
	assert.Equal(t, StatusCompleted, Classify(ample, &start, &end, justAfter))
}

// End-to-end scenarios: raw tiers through Analyze into Classify.

func TestEndToEnd_LastChanceRegardlessOfSchedule(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())
	now := time.Now()

	sum := a.Analyze([]domain.TicketTier{{Price: 50, AvailableTickets: intPtr(3)}})

	assert.Equal(t, 3, sum.TotalStock)
	assert.True(t, sum.HasInventory)
	assert.True(t, sum.IsLowStock)

	schedules := []struct {
		start *time.Time
		end   *time.Time
	}{
		{nil, nil},
		{timePtr(now.AddDate(0, 0, 7)), nil},
		{timePtr(now.AddDate(0, 0, -1)), timePtr(now.AddDate(0, 0, 1))},
	}
	for _, s := range schedules {
		assert.Equal(t, StatusLastChance, Classify(sum, s.start, s.end, now))
	}
}

func TestEndToEnd_SoldOut(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())

	sum := a.Analyze([]domain.TicketTier{
		{Price: 20, AvailableTickets: intPtr(0)},
		{Price: 30, AvailableTickets: intPtr(0)},
	})

	assert.Equal(t, 0, sum.TotalStock)
	assert.Equal(t, StatusSoldOut, Classify(sum, nil, nil, time.Now()))
}

func TestEndToEnd_Upcoming(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())
	now := time.Now()
	start := now.AddDate(0, 0, 7)

	sum := a.Analyze([]domain.TicketTier{{Price: 100, AvailableTickets: intPtr(50)}})

	assert.True(t, sum.HasInventory)
	assert.False(t, sum.IsLowStock)
	assert.Equal(t, StatusUpcoming, Classify(sum, &start, nil, now))
}

func TestEndToEnd_Completed(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())
	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)

	sum := a.Analyze([]domain.TicketTier{{Price: 10, AvailableTickets: intPtr(200)}})

	assert.Equal(t, StatusCompleted, Classify(sum, &yesterday, &yesterday, now))
}

func TestEndToEnd_TBA(t *testing.T) {
	a := NewAnalyzer(DefaultConfig())

	sum := a.Analyze([]domain.TicketTier{{Price: 10, AvailableTickets: intPtr(200)}})

	assert.Equal(t, StatusTBA, Classify(sum, nil, nil, time.Now()))
}
