package inventory

import "time"

// EventStatus is the coarse lifecycle state shown on event cards. Exactly one
// status applies at a time.
type EventStatus string

const (
	StatusTBA        EventStatus = "TBA"
	StatusSoldOut    EventStatus = "SOLD_OUT"
	StatusLastChance EventStatus = "LAST_CHANCE"
	StatusUpcoming   EventStatus = "UPCOMING"
	StatusOngoing    EventStatus = "ONGOING"
	StatusCompleted  EventStatus = "COMPLETED"
)

// String returns the wire form of the status.
func (s EventStatus) String() string {
	return string(s)
}

// Classify derives the event lifecycle status from an inventory summary and
// the event schedule. Rules form an ordered cascade; the first match wins:
//
//  1. no inventory            -> SOLD_OUT
//  2. low stock               -> LAST_CHANCE
//  3. now before start        -> UPCOMING
//  4. start and end known     -> COMPLETED after end of the end date,
//                                otherwise ONGOING
//  5. no usable schedule      -> TBA
//
// Exhaustion and scarcity outrank temporal state: a sold-out future event
// reads "Sold Out", not "Upcoming". Unknown dates are passed as nil and can
// only reach rule 5.
func Classify(sum Summary, start, end *time.Time, now time.Time) EventStatus {
	switch {
	case !sum.HasInventory:
		return StatusSoldOut
	case sum.IsLowStock:
		return StatusLastChance
	case start != nil && now.Before(*start):
		return StatusUpcoming
	case start != nil && end != nil:
		if now.After(endOfDay(*end)) {
			return StatusCompleted
		}
		return StatusOngoing
	default:
		return StatusTBA
	}
}

// endOfDay returns the last representable millisecond of t's calendar day in
// t's location (23:59:59.999).
func endOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, 999_000_000, t.Location())
}
